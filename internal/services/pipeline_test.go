package services

import (
	"testing"

	"motoroutes/internal/domain"
)

func pipelineFixture() []domain.Itinerary {
	return []domain.Itinerary{
		{ID: 1, Kind: domain.KindDay, Places: []string{"Santos", "Guarujá"}, DistanceKm: 120},
		{ID: 2, Kind: domain.KindOvernight, Places: []string{"Campos do Jordão"}, DistanceKm: 380},
		{ID: 3, Kind: domain.KindDay, Places: []string{"Atibaia"}, DistanceKm: 120},
		{ID: 4, Kind: domain.KindDay, Places: []string{"Águas de Lindóia"}, DistanceKm: 260},
	}
}

func TestApplyQueryDefaultIsIdentityOrder(t *testing.T) {
	items := pipelineFixture()
	view := ApplyQuery(items, domain.Query{})
	if len(view) != len(items) {
		t.Fatalf("default query must keep everything, got %d", len(view))
	}
	for i := range view {
		if view[i].ID != items[i].ID {
			t.Fatalf("order changed at %d: %d", i, view[i].ID)
		}
	}
}

func TestApplyQueryKindFilter(t *testing.T) {
	view := ApplyQuery(pipelineFixture(), domain.Query{Kind: string(domain.KindOvernight)})
	if len(view) != 1 || view[0].ID != 2 {
		t.Fatalf("kind filter wrong: %+v", view)
	}
}

func TestApplyQuerySearchAnyPlaceSubstring(t *testing.T) {
	// mid-word, case-insensitive, matching the second place of record 1
	view := ApplyQuery(pipelineFixture(), domain.Query{Search: "UARU"})
	if len(view) != 1 || view[0].ID != 1 {
		t.Fatalf("substring search wrong: %+v", view)
	}
}

func TestApplyQueryStableDistanceSort(t *testing.T) {
	view := ApplyQuery(pipelineFixture(), domain.Query{Sort: domain.SortDistanceAsc})
	// records 1 and 3 share 120 km and must keep their relative order
	if view[0].ID != 1 || view[1].ID != 3 {
		t.Fatalf("equal keys must preserve pre-sort order: %d then %d", view[0].ID, view[1].ID)
	}

	desc := ApplyQuery(pipelineFixture(), domain.Query{Sort: domain.SortDistanceDesc})
	if desc[0].ID != 2 {
		t.Fatalf("desc sort wrong head: %d", desc[0].ID)
	}
	if desc[1].ID != 4 {
		t.Fatalf("desc sort wrong second: %d", desc[1].ID)
	}
	if desc[2].ID != 1 || desc[3].ID != 3 {
		t.Fatalf("equal keys must preserve pre-sort order: %d then %d", desc[2].ID, desc[3].ID)
	}
}

func TestApplyQueryAlphabeticalUsesCollation(t *testing.T) {
	view := ApplyQuery(pipelineFixture(), domain.Query{Sort: domain.SortAlphabetical})
	// pt-BR collation puts Águas with the As, before Atibaia; byte order would sink it last
	if view[0].ID != 4 {
		t.Fatalf("collation should sort Águas first, got id %d", view[0].ID)
	}
	if view[len(view)-1].ID != 1 {
		t.Fatalf("Santos should sort last, got id %d", view[len(view)-1].ID)
	}
}

func TestApplyQueryDoesNotMutateInput(t *testing.T) {
	items := pipelineFixture()
	_ = ApplyQuery(items, domain.Query{Sort: domain.SortDistanceDesc})
	if items[0].ID != 1 || items[3].ID != 4 {
		t.Fatalf("pipeline must not reorder its input: %+v", items)
	}
}

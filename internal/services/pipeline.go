package services

import (
	"sort"
	"strings"

	"motoroutes/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ApplyQuery is the pure filter-sort pipeline: fixed stage order, each stage a
// no-op at its default. The input slice is never mutated and the sort is
// stable, so records with equal keys keep their pre-sort relative order.
func ApplyQuery(items []domain.Itinerary, q domain.Query) []domain.Itinerary {
	view := make([]domain.Itinerary, 0, len(items))

	kind := q.KindFilter()
	term := domain.NormalizePlace(q.Search)
	for _, it := range items {
		if kind != domain.KindAll && string(it.Kind) != kind {
			continue
		}
		if term != "" && !anyPlaceContains(it.Places, term) {
			continue
		}
		view = append(view, it)
	}

	switch q.Sort {
	case domain.SortDistanceDesc:
		sort.SliceStable(view, func(i, j int) bool {
			return view[i].DistanceKm > view[j].DistanceKm
		})
	case domain.SortDistanceAsc:
		sort.SliceStable(view, func(i, j int) bool {
			return view[i].DistanceKm < view[j].DistanceKm
		})
	case domain.SortAlphabetical:
		// place names are pt-BR; byte order misplaces accented municipios
		col := collate.New(language.BrazilianPortuguese)
		sort.SliceStable(view, func(i, j int) bool {
			return col.CompareString(firstPlace(view[i]), firstPlace(view[j])) < 0
		})
	}
	return view
}

func anyPlaceContains(places []string, term string) bool {
	for _, p := range places {
		if strings.Contains(domain.NormalizePlace(p), term) {
			return true
		}
	}
	return false
}

func firstPlace(it domain.Itinerary) string {
	if len(it.Places) == 0 {
		return ""
	}
	return it.Places[0]
}

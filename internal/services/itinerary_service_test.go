package services

import (
	"testing"

	"motoroutes/internal/domain"
	"motoroutes/internal/repositories"
)

const sourceText = "tipo,municipios,distancia_total_km,custo_combustivel,custo_pedagio,custo_alimentacao,custo_estadia,custo_total\n" +
	"Dia,\"[Santos, Guarujá]\",120,30.5,15,40,0,85.5\n" +
	"Final de Semana (Pernoite),\"[Campos do Jordão]\",380,96.5,36.4,160,220,512.9\n"

func TestInitParsesAndPersistsWhenNoSnapshot(t *testing.T) {
	gw := newMemoryGateway()
	svc := &ItineraryService{Gateway: gw}

	if err := svc.Init(sourceText); err != nil {
		t.Fatalf("init error: %v", err)
	}
	items := svc.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 records, got %d", len(items))
	}
	if _, ok := gw.snapshots[repositories.KeyItineraries]; !ok {
		t.Fatalf("fresh ingestion must persist immediately")
	}
}

func TestInitRestoresSnapshotVerbatim(t *testing.T) {
	gw := newMemoryGateway()
	first := &ItineraryService{Gateway: gw}
	if err := first.Init(sourceText); err != nil {
		t.Fatalf("init error: %v", err)
	}
	if _, err := first.EditField(1, "fuel_cost", "77.5"); err != nil {
		t.Fatalf("edit error: %v", err)
	}

	// new service over the same store must see the edit, not the source text
	second := &ItineraryService{Gateway: gw}
	if err := second.Init(sourceText); err != nil {
		t.Fatalf("re-init error: %v", err)
	}
	it, err := second.Get(1)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if it.FuelCost != 77.5 {
		t.Fatalf("edit lost across reload: %v", it.FuelCost)
	}
	if it.ID != 1 {
		t.Fatalf("id must stay stable across reload, got %d", it.ID)
	}
}

func TestEditFieldLenientCoercion(t *testing.T) {
	gw := newMemoryGateway()
	svc := &ItineraryService{Gateway: gw}
	if err := svc.Init(sourceText); err != nil {
		t.Fatalf("init error: %v", err)
	}

	it, err := svc.EditField(1, "toll_cost", "not-a-number")
	if err != nil {
		t.Fatalf("lenient policy must not reject bad input: %v", err)
	}
	if it.TollCost != 0 {
		t.Fatalf("invalid input should coerce to 0, got %v", it.TollCost)
	}
	// only the targeted field changes
	if it.FuelCost != 30.5 || it.DistanceKm != 120 {
		t.Fatalf("untouched fields changed: %+v", it)
	}
}

func TestEditFieldRejectsUnknownFieldAndID(t *testing.T) {
	gw := newMemoryGateway()
	svc := &ItineraryService{Gateway: gw}
	if err := svc.Init(sourceText); err != nil {
		t.Fatalf("init error: %v", err)
	}

	if _, err := svc.EditField(1, "places", "x"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.EditField(99, "fuel_cost", "1"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestEditFieldPersistsWholeCollection(t *testing.T) {
	gw := newMemoryGateway()
	svc := &ItineraryService{Gateway: gw}
	if err := svc.Init(sourceText); err != nil {
		t.Fatalf("init error: %v", err)
	}
	before := gw.saves

	if _, err := svc.EditField(2, "total_cost", "600"); err != nil {
		t.Fatalf("edit error: %v", err)
	}
	if gw.saves != before+1 {
		t.Fatalf("every mutation must persist, saves=%d", gw.saves)
	}

	var persisted []domain.Itinerary
	if err := gw.Load(repositories.KeyItineraries, &persisted); err != nil {
		t.Fatalf("load error: %v", err)
	}
	if len(persisted) != 2 || persisted[1].TotalCost != 600 {
		t.Fatalf("persisted snapshot wrong: %+v", persisted)
	}
}

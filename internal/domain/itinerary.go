package domain

import "strings"

// Kind classifies an itinerary as a single-day ride or an overnight trip.
type Kind string

const (
	KindDay       Kind = "Dia"
	KindOvernight Kind = "Final de Semana (Pernoite)"
)

// KindAll is the filter value that keeps every record.
const KindAll = "All"

// Itinerary is one predefined trip record from the catalogue. IDs are assigned
// at ingestion (1-based row order) and stay stable across reloads; records are
// never deleted, only field-edited.
type Itinerary struct {
	ID          int      `json:"id"`
	Kind        Kind     `json:"kind"`
	Places      []string `json:"places"`
	DistanceKm  float64  `json:"distance_km"`
	FuelCost    float64  `json:"fuel_cost"`
	TollCost    float64  `json:"toll_cost"`
	FoodCost    float64  `json:"food_cost"`
	LodgingCost float64  `json:"lodging_cost"`
	TotalCost   float64  `json:"total_cost"`
}

// CompletionState maps itinerary id to its visited flag. Absent key means false.
type CompletionState map[int]bool

// EditableFields lists the numeric fields EditField may touch. total_cost is
// deliberately included: it is stored independently of the breakdown and is
// never recomputed from it.
var EditableFields = map[string]bool{
	"distance_km":  true,
	"fuel_cost":    true,
	"toll_cost":    true,
	"food_cost":    true,
	"lodging_cost": true,
	"total_cost":   true,
}

// SetField writes one editable numeric field. Returns false for unknown or
// immutable field names.
func (it *Itinerary) SetField(field string, value float64) bool {
	switch field {
	case "distance_km":
		it.DistanceKm = value
	case "fuel_cost":
		it.FuelCost = value
	case "toll_cost":
		it.TollCost = value
	case "food_cost":
		it.FoodCost = value
	case "lodging_cost":
		it.LodgingCost = value
	case "total_cost":
		it.TotalCost = value
	default:
		return false
	}
	return true
}

// NormalizePlace is the single normalization used everywhere place names are
// compared: search filter and overlay matching. Trim plus case-fold, nothing
// else; diacritic differences are NOT corrected.
func NormalizePlace(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

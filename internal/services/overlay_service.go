package services

import (
	"encoding/json"

	"motoroutes/internal/domain"
	"motoroutes/internal/geo"
)

// OverlayService maps completion state onto the named boundary features. It
// is constructed once at startup; when the dataset failed to load it stays
// unavailable for the life of the process.
type OverlayService struct {
	boundaries *geo.BoundarySet
}

func NewOverlayService(set *geo.BoundarySet) *OverlayService {
	return &OverlayService{boundaries: set}
}

// FeatureStatus is one boundary feature with its derived classification.
type FeatureStatus struct {
	Name     string          `json:"name"`
	Visited  bool            `json:"visited"`
	Geometry json.RawMessage `json:"geometry"`
}

// Available reports whether the boundary dataset loaded.
func (s *OverlayService) Available() bool {
	return s != nil && s.boundaries != nil
}

// Classify derives the visited/pending flag per feature: visited iff the
// feature's normalized name appears among the place names of itineraries
// whose completion flag is true. Matching is exact post-normalization
// equality; a spelling or diacritic mismatch silently reads as pending.
func (s *OverlayService) Classify(items []domain.Itinerary, state domain.CompletionState) ([]FeatureStatus, error) {
	if !s.Available() {
		return nil, domain.UnavailableError{Resource: "boundary dataset"}
	}

	visited := map[string]bool{}
	for _, it := range items {
		if !state[it.ID] {
			continue
		}
		for _, place := range it.Places {
			visited[domain.NormalizePlace(place)] = true
		}
	}

	out := make([]FeatureStatus, 0, len(s.boundaries.Features))
	for _, f := range s.boundaries.Features {
		out = append(out, FeatureStatus{
			Name:     f.Name(),
			Visited:  visited[domain.NormalizePlace(f.Name())],
			Geometry: f.Geometry,
		})
	}
	return out, nil
}

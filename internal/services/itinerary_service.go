package services

import (
	"fmt"
	"sync"

	"motoroutes/internal/domain"
	"motoroutes/internal/ingest"
	"motoroutes/internal/repositories"
	"motoroutes/internal/utils"
)

// ItineraryService owns the authoritative in-memory catalogue. It is seeded
// from a persisted snapshot when one exists, so prior edits survive reload
// without re-parsing; otherwise it parses the source text and persists the
// result immediately.
type ItineraryService struct {
	Gateway repositories.Gateway

	mu    sync.RWMutex
	items []domain.Itinerary
}

// Init loads the snapshot or falls back to fresh ingestion.
func (s *ItineraryService) Init(sourceText string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []domain.Itinerary
	err := s.Gateway.Load(repositories.KeyItineraries, &items)
	if err == nil {
		s.items = items
		utils.LogEvent("", "itinerary", "restore", fmt.Sprintf("records=%d", len(items)))
		return nil
	}
	if !domain.IsNotFound(err) {
		return err
	}

	s.items = ingest.Parse(sourceText)
	utils.LogEvent("", "itinerary", "ingest", fmt.Sprintf("records=%d", len(s.items)))
	return s.Gateway.Save(repositories.KeyItineraries, s.items)
}

// Items returns a copy of the current collection.
func (s *ItineraryService) Items() []domain.Itinerary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Itinerary, len(s.items))
	copy(out, s.items)
	return out
}

// Get finds one record by id.
func (s *ItineraryService) Get(id int) (domain.Itinerary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, nil
		}
	}
	return domain.Itinerary{}, domain.NotFoundError{Resource: "itinerary"}
}

// EditField replaces one editable numeric field on the matching record and
// persists the entire collection. Raw values go through the lenient coercion
// policy: invalid or empty input becomes 0, never an error.
func (s *ItineraryService) EditField(id int, field, raw string) (domain.Itinerary, error) {
	if !domain.EditableFields[field] {
		return domain.Itinerary{}, domain.ValidationError{Field: field, Msg: "not an editable field"}
	}
	value := domain.CoerceEditValue(raw)

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		s.items[i].SetField(field, value)
		if err := s.Gateway.Save(repositories.KeyItineraries, s.items); err != nil {
			return domain.Itinerary{}, err
		}
		utils.LogEvent("", "itinerary", "edit_field",
			fmt.Sprintf("id=%d field=%s value=%v", id, field, value))
		return s.items[i], nil
	}
	return domain.Itinerary{}, domain.NotFoundError{Resource: "itinerary"}
}

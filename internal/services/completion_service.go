package services

import (
	"fmt"
	"sync"

	"motoroutes/internal/domain"
	"motoroutes/internal/repositories"
	"motoroutes/internal/utils"
)

// CompletionService tracks which itineraries the rider marked visited and
// derives the pending aggregates from the current catalogue.
type CompletionService struct {
	Gateway repositories.Gateway

	mu    sync.RWMutex
	state domain.CompletionState
}

// Summary aggregates the records whose completion flag is false.
type Summary struct {
	TotalCount        int     `json:"total_count"`
	CompletedCount    int     `json:"completed_count"`
	PendingCount      int     `json:"pending_count"`
	PendingDistanceKm float64 `json:"pending_distance_km"`
	PendingTotalCost  float64 `json:"pending_total_cost"`
	PendingPlaceCount int     `json:"pending_place_count"`
	CompletedPercent  float64 `json:"completed_percent"`
}

// Init restores the persisted map; a missing snapshot starts empty (entries
// are only created on first toggle).
func (s *CompletionService) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := domain.CompletionState{}
	err := s.Gateway.Load(repositories.KeyCompletion, &state)
	if err != nil && !domain.IsNotFound(err) {
		return err
	}
	s.state = state
	return nil
}

// State returns a copy of the completion map.
func (s *CompletionService) State() domain.CompletionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(domain.CompletionState, len(s.state))
	for id, done := range s.state {
		out[id] = done
	}
	return out
}

// Toggle flips the flag for id (absent counts as false) and persists the
// whole map. Returns the new value.
func (s *CompletionService) Toggle(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state[id] = !s.state[id]
	if err := s.Gateway.Save(repositories.KeyCompletion, s.state); err != nil {
		return false, err
	}
	utils.LogEvent("", "completion", "toggle", fmt.Sprintf("id=%d done=%t", id, s.state[id]))
	return s.state[id], nil
}

// Summarize recomputes the pending aggregates for the given catalogue.
// NaN-contaminated fields contribute 0 so one malformed row cannot poison the
// totals. Percentage is defined as 0 on an empty catalogue.
func (s *CompletionService) Summarize(items []domain.Itinerary) Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := Summary{TotalCount: len(items)}
	for _, it := range items {
		if s.state[it.ID] {
			out.CompletedCount++
			continue
		}
		out.PendingCount++
		out.PendingDistanceKm += domain.SumGuard(it.DistanceKm)
		out.PendingTotalCost += domain.SumGuard(it.TotalCost)
		out.PendingPlaceCount += len(it.Places)
	}
	if out.TotalCount > 0 {
		out.CompletedPercent = float64(out.CompletedCount) / float64(out.TotalCount) * 100
	}
	return out
}

package services

import (
	"encoding/json"
	"errors"

	"motoroutes/internal/domain"
)

// memoryGateway stands in for the snapshot repository in service tests.
type memoryGateway struct {
	snapshots map[string][]byte
	saves     int
	failSave  bool
}

func newMemoryGateway() *memoryGateway {
	return &memoryGateway{snapshots: map[string][]byte{}}
}

func (g *memoryGateway) Save(key string, v any) error {
	if g.failSave {
		return errors.New("save failed")
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	g.snapshots[key] = data
	g.saves++
	return nil
}

func (g *memoryGateway) Load(key string, dst any) error {
	data, ok := g.snapshots[key]
	if !ok {
		return domain.NotFoundError{Resource: "snapshot " + key}
	}
	return json.Unmarshal(data, dst)
}

// Package geo loads the external boundary dataset the overlay resolver
// classifies against. Geometry is carried opaquely for the map widget; only
// the feature name is consumed here.
package geo

import (
	"encoding/json"
	"os"
)

// Feature is one named region polygon from the boundary dataset.
type Feature struct {
	Type       string            `json:"type"`
	Properties map[string]string `json:"properties"`
	Geometry   json.RawMessage   `json:"geometry"`
}

// Name returns the feature's name property, empty when absent.
func (f Feature) Name() string {
	return f.Properties["name"]
}

// BoundarySet is the parsed feature collection, loaded once at startup.
type BoundarySet struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Parse decodes a GeoJSON feature collection.
func Parse(data []byte) (*BoundarySet, error) {
	var set BoundarySet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, err
	}
	return &set, nil
}

// LoadFile reads and parses the dataset at path. Callers treat a failure as a
// permanently unavailable overlay; there is no retry.
func LoadFile(path string) (*BoundarySet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

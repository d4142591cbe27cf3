package ingest

import (
	"os"

	_ "embed"
)

// The catalogue ships with the binary so a fresh install works without any
// external data file.
//
//go:embed roteiros_sp_moto.csv
var seedCSV string

// SourceText returns the raw catalogue text: the file at path when set and
// readable, otherwise the embedded seed.
func SourceText(path string) string {
	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			return string(data)
		}
	}
	return seedCSV
}

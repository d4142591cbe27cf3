// Package ingest turns the raw delimited catalogue text into validated
// itinerary records. Parsing is pure and idempotent: the same input always
// yields the same records with the same ids.
package ingest

import (
	"strings"

	"motoroutes/internal/domain"
)

// Parse reads a header line plus N data lines and returns one Itinerary per
// data line, ids assigned as 1-based ingestion order. Malformed numeric cells
// become NaN sentinels, never errors.
func Parse(raw string) []domain.Itinerary {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	if len(lines) <= 1 {
		return []domain.Itinerary{}
	}

	records := make([]domain.Itinerary, 0, len(lines)-1)
	for _, line := range lines[1:] {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := splitQuoted(line)
		// positional columns; short rows read as empty cells
		field := func(i int) string {
			if i < len(values) {
				return values[i]
			}
			return ""
		}

		records = append(records, domain.Itinerary{
			ID:          len(records) + 1,
			Kind:        domain.Kind(strings.TrimSpace(field(0))),
			Places:      splitPlaces(field(1)),
			DistanceKm:  domain.ParseNumeric(field(2)),
			FuelCost:    domain.ParseNumeric(field(3)),
			TollCost:    domain.ParseNumeric(field(4)),
			FoodCost:    domain.ParseNumeric(field(5)),
			LodgingCost: domain.ParseNumeric(field(6)),
			TotalCost:   domain.ParseNumeric(field(7)),
		})
	}
	return records
}

// splitQuoted splits a line on commas, except inside an open double quote.
// Quote characters toggle state and are dropped from the output.
func splitQuoted(line string) []string {
	var values []string
	var current strings.Builder
	insideQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			insideQuotes = !insideQuotes
		case ch == ',' && !insideQuotes:
			values = append(values, current.String())
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	values = append(values, current.String())
	return values
}

var placeStripper = strings.NewReplacer("[", "", "]", "", "'", "", "\"", "")

// splitPlaces unwraps the bracket/quote-wrapped place list into trimmed,
// non-empty tokens in travel order.
func splitPlaces(cell string) []string {
	out := []string{}
	for _, tok := range strings.Split(placeStripper.Replace(cell), ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		out = append(out, tok)
	}
	return out
}

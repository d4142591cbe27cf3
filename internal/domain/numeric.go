package domain

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumeric parses an ingestion token with locale-invariant float rules.
// A malformed token resolves to NaN instead of an error so one bad cell never
// aborts the whole parse.
func ParseNumeric(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// CoerceEditValue is the lenient edit policy: invalid or empty input coerces
// to 0 rather than being rejected. Field edits must never fail on bad input.
func CoerceEditValue(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// SumGuard returns 0 for NaN so a contaminated record contributes nothing to
// aggregate sums instead of poisoning them.
func SumGuard(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

package domain

// SortKey selects the pipeline's sort stage.
type SortKey string

const (
	SortNone         SortKey = ""
	SortDistanceDesc SortKey = "distance_desc"
	SortDistanceAsc  SortKey = "distance_asc"
	SortAlphabetical SortKey = "alphabetical"
)

// Query is the ephemeral view state. It is rebuilt per request and never
// persisted.
type Query struct {
	Search string  `form:"search"`
	Kind   string  `form:"kind"`
	Sort   SortKey `form:"sort"`
}

// KindFilter returns the effective kind filter, defaulting to KindAll.
func (q Query) KindFilter() string {
	if q.Kind == "" {
		return KindAll
	}
	return q.Kind
}

package domain

import "strings"

// MediaKind is resolved once at ingestion from the mime type so render sites
// never re-derive it from the raw string.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
	MediaOther MediaKind = "other"
)

// ClassifyMime maps a mime type onto its MediaKind variant.
func ClassifyMime(mimeType string) MediaKind {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	switch {
	case strings.HasPrefix(mt, "image/"):
		return MediaImage
	case strings.HasPrefix(mt, "video/"):
		return MediaVideo
	default:
		return MediaOther
	}
}

// Attachment is one trip media item. Content holds the base64-encoded payload
// so the whole record is embeddable; the payload is opaque beyond Kind.
type Attachment struct {
	Name     string    `json:"name"`
	MimeType string    `json:"mime_type"`
	Kind     MediaKind `json:"kind"`
	Content  string    `json:"content"`
}

// MediaState maps itinerary id to its ordered attachment list.
type MediaState map[int][]Attachment

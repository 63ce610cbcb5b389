package docstore

import "time"

// Document is one persisted record as the store sees it: an opaque identifier
// assigned at creation, the kind-specific fields as a loose map, and the
// server-assigned creation timestamp. The id is immutable once assigned.
type Document struct {
	ID        string
	Fields    map[string]any
	CreatedAt time.Time
}

// Package docstore implements the generic document store behind the portal's
// content repository: a single PostgreSQL-backed table of schemaless documents
// grouped into collections, with a fixed per-kind ordering contract.
package docstore

// Kind identifies one of the fixed set of record shapes managed by the portal.
type Kind string

const (
	KindNews         Kind = "news"
	KindAnnouncement Kind = "announcement"
	KindAlbum        Kind = "album"
	KindGame         Kind = "game"
	KindBook         Kind = "book"
	KindEvent        Kind = "event"
	KindAdmission    Kind = "admission"
	KindFeedback     Kind = "feedback"
)

// Direction is the sort direction of a kind's ordering contract.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Location describes where a kind's documents live and how lists of them are
// ordered. The ordering contract is fixed for the lifetime of the system;
// changing it changes observable list order but never mutates stored records.
//
// SortField names a document field, except the special value "createdAt"
// which refers to the server-assigned creation timestamp.
type Location struct {
	Collection string
	SortField  string
	Direction  Direction
}

// registry maps every kind to its storage location. Pure configuration; the
// set of kinds is closed.
var registry = map[Kind]Location{
	KindNews:         {Collection: "news", SortField: "date", Direction: Desc},
	KindAnnouncement: {Collection: "announcements", SortField: "date", Direction: Desc},
	KindAlbum:        {Collection: "albums", SortField: "date", Direction: Desc},
	KindGame:         {Collection: "games", SortField: "date", Direction: Desc},
	KindBook:         {Collection: "books", SortField: "title", Direction: Asc},
	KindEvent:        {Collection: "events", SortField: "date", Direction: Asc},
	KindAdmission:    {Collection: "admissions", SortField: "month", Direction: Asc},
	KindFeedback:     {Collection: "feedback", SortField: "createdAt", Direction: Desc},
}

// Kinds returns every registered kind in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindNews, KindAnnouncement, KindAlbum, KindGame,
		KindBook, KindEvent, KindAdmission, KindFeedback,
	}
}

// Locate returns the storage location registered for kind.
func Locate(kind Kind) (Location, bool) {
	loc, ok := registry[kind]
	return loc, ok
}

package admin

import "github.com/gremioaf/portal/internal/content"

// Snapshot is the most recent full read of every kind's record list, in each
// kind's registered order. It is replaced wholesale after initial load and
// after every successful mutation, never patched in place, so readers never
// observe a mix of old and new kinds.
type Snapshot struct {
	News          []content.Record[content.NewsFields]
	Announcements []content.Record[content.AnnouncementFields]
	Albums        []content.Record[content.AlbumFields]
	Games         []content.Record[content.GameFields]
	Books         []content.Record[content.BookFields]
	Events        []content.Record[content.EventFields]
	Admissions    []content.Record[content.AdmissionFields]
	Feedback      []content.Record[content.FeedbackFields]
}

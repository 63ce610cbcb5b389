package content

import "github.com/gremioaf/portal/internal/content/docstore"

// Store bundles the typed facade for every entity kind over one backend.
type Store struct {
	News          Collection[NewsFields, NewsForm]
	Announcements Collection[AnnouncementFields, AnnouncementForm]
	Albums        AlbumCollection
	Games         Collection[GameFields, GameForm]
	Books         Collection[BookFields, BookFields]
	Events        Collection[EventFields, EventFields]
	Admissions    Collection[AdmissionFields, AdmissionFields]
	Feedback      Mailbox
}

// NewStore wires every per-kind facade to the given backend.
func NewStore(backend Backend) *Store {
	return &Store{
		News:          NewCollection[NewsFields, NewsForm](docstore.KindNews, backend),
		Announcements: NewCollection[AnnouncementFields, AnnouncementForm](docstore.KindAnnouncement, backend),
		Albums:        NewAlbumCollection(backend),
		Games:         NewCollection[GameFields, GameForm](docstore.KindGame, backend),
		Books:         NewCollection[BookFields, BookFields](docstore.KindBook, backend),
		Events:        NewCollection[EventFields, EventFields](docstore.KindEvent, backend),
		Admissions:    NewCollection[AdmissionFields, AdmissionFields](docstore.KindAdmission, backend),
		Feedback:      NewMailbox(backend),
	}
}

package admin

import (
	"github.com/gremioaf/portal/internal/content"
	"github.com/gremioaf/portal/internal/content/docstore"
)

// Drafts holds one form buffer per editable kind, all at once. Switching the
// active kind resets only the newly-active buffer, so unsaved input in the
// other kinds' buffers survives tab changes. Feedback has no buffer: mailbox
// entries are created by the public form and only deleted here.
type Drafts struct {
	News         content.NewsForm
	Announcement content.AnnouncementForm
	Album        content.AlbumForm
	Game         content.GameForm
	Book         content.BookFields
	Event        content.EventFields
	Admission    content.AdmissionFields
}

// Reset returns the given kind's buffer to its empty default, leaving every
// other buffer untouched.
func (d *Drafts) Reset(kind docstore.Kind) {
	switch kind {
	case docstore.KindNews:
		d.News = content.NewsForm{}
	case docstore.KindAnnouncement:
		d.Announcement = content.AnnouncementForm{}
	case docstore.KindAlbum:
		d.Album = content.AlbumForm{}
	case docstore.KindGame:
		d.Game = content.GameForm{}
	case docstore.KindBook:
		d.Book = content.BookFields{}
	case docstore.KindEvent:
		d.Event = content.EventFields{}
	case docstore.KindAdmission:
		d.Admission = content.AdmissionFields{}
	case docstore.KindFeedback:
		// no form buffer
	}
}

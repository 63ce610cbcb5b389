// Package admin implements the administrative editing session: the
// authentication gate, the active-kind and per-kind form state, and the CRUD
// orchestration over the typed content facades. All session state is mutated
// exclusively through the transitions defined here.
package admin

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gremioaf/portal/internal/auth"
	"github.com/gremioaf/portal/internal/common"
	"github.com/gremioaf/portal/internal/config"
	"github.com/gremioaf/portal/internal/content"
	"github.com/gremioaf/portal/internal/content/docstore"
	"github.com/gremioaf/portal/internal/logging"
)

// member is one entry of the fixed credential allow-list. Credentials are
// checked by exact match, no normalization; there is no lockout or rate
// limiting (single shared low-stakes credential set).
type member struct {
	identity string
	secret   string
}

var members = []member{
	{identity: "presidente", secret: "americo2026"},
	{identity: "secretaria", secret: "gremio2026"},
	{identity: "admin", secret: "AF2026"},
}

// Session is the editing session. It starts unauthenticated, in create mode,
// with empty drafts and an empty snapshot.
type Session struct {
	store         *content.Store
	logger        logging.Logger
	secret        []byte
	tokenValidity time.Duration

	mu           sync.Mutex
	identity     string
	token        string
	active       docstore.Kind
	editTargetID string
	editSeeded   map[docstore.Kind]bool
	drafts       Drafts
	busy         bool

	snapshot atomic.Pointer[Snapshot]
}

// NewSession constructs an unauthenticated session over the content store.
func NewSession(store *content.Store, cfg *config.Config, logger logging.Logger) *Session {
	s := &Session{
		store:         store,
		logger:        logger,
		secret:        []byte(cfg.SessionSecret),
		tokenValidity: cfg.SessionTokenValidity,
		active:        docstore.KindNews,
		editSeeded:    make(map[docstore.Kind]bool),
	}
	s.snapshot.Store(&Snapshot{})
	return s
}

// LoggedIn reports whether the session is authenticated.
func (s *Session) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity != ""
}

// Identity returns the allow-list identity of the authenticated member, or
// the empty string.
func (s *Session) Identity() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// Token returns the signed session token minted at login.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Login checks the submitted credential pair against the allow-list. On a
// match it mints a session token and performs the initial resynchronization
// of every kind. Non-matching credentials leave the session unchanged.
func (s *Session) Login(ctx context.Context, identity, secret string) error {
	var found bool
	for _, m := range members {
		if m.identity == identity && m.secret == secret {
			found = true
			break
		}
	}
	if !found {
		return common.ErrorAccessDenied
	}

	token, err := auth.GenerateToken(identity, s.secret, s.tokenValidity)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.identity = identity
	s.token = token
	s.active = docstore.KindNews
	s.editTargetID = ""
	s.editSeeded = make(map[docstore.Kind]bool)
	s.drafts = Drafts{}
	s.mu.Unlock()

	s.logger.Info(ctx, "admin logged in", "identity", identity)
	s.Resync(ctx)
	return nil
}

// Logout clears the snapshot and all session state.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	identity := s.identity
	s.identity = ""
	s.token = ""
	s.active = docstore.KindNews
	s.editTargetID = ""
	s.editSeeded = make(map[docstore.Kind]bool)
	s.drafts = Drafts{}
	s.mu.Unlock()

	s.snapshot.Store(&Snapshot{})
	if identity != "" {
		s.logger.Info(ctx, "admin logged out", "identity", identity)
	}
}

// ActiveKind returns the kind currently being administered.
func (s *Session) ActiveKind() docstore.Kind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// EditTargetID returns the id of the record being edited, or the empty
// string in create mode.
func (s *Session) EditTargetID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editTargetID
}

// Drafts returns a copy of every form buffer.
func (s *Session) Drafts() Drafts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drafts
}

// Snapshot returns the current snapshot. Never nil.
func (s *Session) Snapshot() *Snapshot {
	return s.snapshot.Load()
}

// SwitchKind makes kind the active one. The edit target is cleared, and if
// the newly-active kind's draft was seeded by a now-abandoned edit it is
// reset to its empty default. Create-mode input survives switching away and
// back; every other kind's draft is left untouched either way.
func (s *Session) SwitchKind(kind docstore.Kind) error {
	if _, ok := docstore.Locate(kind); !ok {
		return common.ErrorNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == "" {
		return common.ErrorNotLoggedIn
	}
	s.active = kind
	s.editTargetID = ""
	if s.editSeeded[kind] {
		s.drafts.Reset(kind)
		delete(s.editSeeded, kind)
	}
	return nil
}

// CancelEdit returns to create mode: the edit target is cleared and the
// active kind's draft reset, without touching storage.
func (s *Session) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editTargetID = ""
	delete(s.editSeeded, s.active)
	s.drafts.Reset(s.active)
}

// startEdit records the edit target and seeds the matching draft. The
// record's kind must be the active one; the seed closure copies domain
// fields only, never the id or creation timestamp.
func (s *Session) startEdit(kind docstore.Kind, id string, seed func(*Drafts)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == "" {
		return common.ErrorNotLoggedIn
	}
	if kind != s.active {
		return common.ErrorKindMismatch
	}
	s.editTargetID = id
	s.editSeeded[kind] = true
	seed(&s.drafts)
	return nil
}

// EditNews seeds the news draft from an existing record and enters edit mode.
func (s *Session) EditNews(rec content.Record[content.NewsFields]) error {
	return s.startEdit(docstore.KindNews, rec.ID, func(d *Drafts) {
		d.News = rec.Fields.NewsForm
	})
}

func (s *Session) EditAnnouncement(rec content.Record[content.AnnouncementFields]) error {
	return s.startEdit(docstore.KindAnnouncement, rec.ID, func(d *Drafts) {
		d.Announcement = rec.Fields.AnnouncementForm
	})
}

// EditAlbum seeds the album draft, joining the stored image links back into
// the form's comma-separated representation.
func (s *Session) EditAlbum(rec content.Record[content.AlbumFields]) error {
	return s.startEdit(docstore.KindAlbum, rec.ID, func(d *Drafts) {
		d.Album = content.AlbumForm{
			Title:      rec.Fields.Title,
			CoverImage: rec.Fields.CoverImage,
			Images:     content.JoinImageLinks(rec.Fields.Images),
		}
	})
}

func (s *Session) EditGame(rec content.Record[content.GameFields]) error {
	return s.startEdit(docstore.KindGame, rec.ID, func(d *Drafts) {
		d.Game = rec.Fields.GameForm
	})
}

func (s *Session) EditBook(rec content.Record[content.BookFields]) error {
	return s.startEdit(docstore.KindBook, rec.ID, func(d *Drafts) {
		d.Book = rec.Fields
	})
}

func (s *Session) EditEvent(rec content.Record[content.EventFields]) error {
	return s.startEdit(docstore.KindEvent, rec.ID, func(d *Drafts) {
		d.Event = rec.Fields
	})
}

func (s *Session) EditAdmission(rec content.Record[content.AdmissionFields]) error {
	return s.startEdit(docstore.KindAdmission, rec.ID, func(d *Drafts) {
		d.Admission = rec.Fields
	})
}

// SetNewsDraft replaces the news form buffer.
func (s *Session) SetNewsDraft(form content.NewsForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts.News = form
}

func (s *Session) SetAnnouncementDraft(form content.AnnouncementForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts.Announcement = form
}

func (s *Session) SetAlbumDraft(form content.AlbumForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts.Album = form
}

func (s *Session) SetGameDraft(form content.GameForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts.Game = form
}

func (s *Session) SetBookDraft(form content.BookFields) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts.Book = form
}

func (s *Session) SetEventDraft(form content.EventFields) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts.Event = form
}

func (s *Session) SetAdmissionDraft(form content.AdmissionFields) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts.Admission = form
}

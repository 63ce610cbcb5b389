package admin

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gremioaf/portal/internal/common"
	"github.com/gremioaf/portal/internal/content"
	"github.com/gremioaf/portal/internal/content/docstore"
)

// defaultDisplayDate is the season label stamped on kinds whose forms do not
// collect a display date.
const defaultDisplayDate = "2026"

// beginMutation reserves the session's single mutation slot and returns the
// state the mutation should operate on.
func (s *Session) beginMutation() (docstore.Kind, string, Drafts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == "" {
		return "", "", Drafts{}, common.ErrorNotLoggedIn
	}
	if s.busy {
		return "", "", Drafts{}, common.ErrorBusy
	}
	s.busy = true
	return s.active, s.editTargetID, s.drafts, nil
}

func (s *Session) endMutation() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

// Submit applies the active kind's draft: an update of the edit target when
// one is set, a create otherwise. On success the draft is reset, the edit
// target cleared, and the whole snapshot resynchronized. On failure the
// draft and edit target are left exactly as they were so the user can retry
// without re-entering data.
func (s *Session) Submit(ctx context.Context) error {
	kind, target, drafts, err := s.beginMutation()
	if err != nil {
		return err
	}
	defer s.endMutation()

	if err := s.dispatch(ctx, kind, target, drafts); err != nil {
		s.logger.Error(ctx, "submit failed", "kind", string(kind), "edit_target", target, "error", err)
		return fmt.Errorf("saving failed: %w", err)
	}

	s.mu.Lock()
	s.drafts.Reset(kind)
	s.editTargetID = ""
	delete(s.editSeeded, kind)
	s.mu.Unlock()

	s.Resync(ctx)
	return nil
}

// dispatch routes the mutation to the active kind's facade. In create mode,
// fields the form does not collect are defaulted here: the season display
// date for news, albums and games, today's date for announcements, and the
// finished status for games.
func (s *Session) dispatch(ctx context.Context, kind docstore.Kind, target string, d Drafts) error {
	editing := target != ""

	switch kind {
	case docstore.KindNews:
		if editing {
			return s.store.News.Update(ctx, target, d.News)
		}
		_, err := s.store.News.Create(ctx, content.NewsFields{NewsForm: d.News, Date: defaultDisplayDate})
		return err

	case docstore.KindAnnouncement:
		if editing {
			return s.store.Announcements.Update(ctx, target, d.Announcement)
		}
		_, err := s.store.Announcements.Create(ctx, content.AnnouncementFields{
			AnnouncementForm: d.Announcement,
			Date:             time.Now().Format("02/01/2006"),
		})
		return err

	case docstore.KindAlbum:
		if editing {
			return s.store.Albums.Update(ctx, target, d.Album)
		}
		_, err := s.store.Albums.Create(ctx, d.Album, defaultDisplayDate)
		return err

	case docstore.KindGame:
		if editing {
			return s.store.Games.Update(ctx, target, d.Game)
		}
		_, err := s.store.Games.Create(ctx, content.GameFields{
			GameForm: d.Game,
			Status:   content.StatusFinished,
			Date:     defaultDisplayDate,
		})
		return err

	case docstore.KindBook:
		if editing {
			return s.store.Books.Update(ctx, target, d.Book)
		}
		_, err := s.store.Books.Create(ctx, d.Book)
		return err

	case docstore.KindEvent:
		if editing {
			return s.store.Events.Update(ctx, target, d.Event)
		}
		_, err := s.store.Events.Create(ctx, d.Event)
		return err

	case docstore.KindAdmission:
		if editing {
			return s.store.Admissions.Update(ctx, target, d.Admission)
		}
		_, err := s.store.Admissions.Create(ctx, d.Admission)
		return err

	case docstore.KindFeedback:
		return common.ErrorKindReadOnly

	default:
		return fmt.Errorf("unregistered kind %q", kind)
	}
}

// Remove deletes one record of the given kind. The confirmed flag is the
// explicit yes/no gate: without it nothing is touched. On success the
// snapshot is resynchronized; on failure it is left as-is and the next
// resync will correct it.
func (s *Session) Remove(ctx context.Context, kind docstore.Kind, id string, confirmed bool) error {
	if !confirmed {
		return common.ErrorNotConfirmed
	}

	if _, _, _, err := s.beginMutation(); err != nil {
		return err
	}
	defer s.endMutation()

	var err error
	switch kind {
	case docstore.KindNews:
		err = s.store.News.Delete(ctx, id)
	case docstore.KindAnnouncement:
		err = s.store.Announcements.Delete(ctx, id)
	case docstore.KindAlbum:
		err = s.store.Albums.Delete(ctx, id)
	case docstore.KindGame:
		err = s.store.Games.Delete(ctx, id)
	case docstore.KindBook:
		err = s.store.Books.Delete(ctx, id)
	case docstore.KindEvent:
		err = s.store.Events.Delete(ctx, id)
	case docstore.KindAdmission:
		err = s.store.Admissions.Delete(ctx, id)
	case docstore.KindFeedback:
		err = s.store.Feedback.Delete(ctx, id)
	default:
		err = fmt.Errorf("unregistered kind %q", kind)
	}
	if err != nil {
		s.logger.Error(ctx, "delete failed", "kind", string(kind), "id", id, "error", err)
		return fmt.Errorf("deletion failed: %w", err)
	}

	s.Resync(ctx)
	return nil
}

// Resync re-lists every kind and replaces the snapshot wholesale. The lists
// are read-only and touch disjoint collections, so they run concurrently;
// the swap happens once, after all of them finish, so readers never see a
// partially-updated snapshot. Every kind is re-fetched even when only one
// changed: dataset sizes are small and consistency wins over efficiency.
func (s *Session) Resync(ctx context.Context) {
	next := &Snapshot{}

	var wg sync.WaitGroup
	wg.Add(8)
	go func() { defer wg.Done(); next.News = s.store.News.List(ctx) }()
	go func() { defer wg.Done(); next.Announcements = s.store.Announcements.List(ctx) }()
	go func() { defer wg.Done(); next.Albums = s.store.Albums.List(ctx) }()
	go func() { defer wg.Done(); next.Games = s.store.Games.List(ctx) }()
	go func() { defer wg.Done(); next.Books = s.store.Books.List(ctx) }()
	go func() { defer wg.Done(); next.Events = s.store.Events.List(ctx) }()
	go func() { defer wg.Done(); next.Admissions = s.store.Admissions.List(ctx) }()
	go func() { defer wg.Done(); next.Feedback = s.store.Feedback.List(ctx) }()
	wg.Wait()

	s.snapshot.Store(next)
}

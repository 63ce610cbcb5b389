package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gremioaf/portal/internal/common"
	"github.com/gremioaf/portal/internal/content"
	"github.com/gremioaf/portal/internal/content/docstore"
)

func TestSubmit_RequiresLogin(t *testing.T) {
	s := newTestSession(newMemBackend())
	assert.ErrorIs(t, s.Submit(context.Background()), common.ErrorNotLoggedIn)
}

func TestSubmit_CreateNewsStampsSeasonDate(t *testing.T) {
	backend := newMemBackend()
	s := newTestSession(backend)
	mustLogin(t, s)

	s.SetNewsDraft(content.NewsForm{Title: "Festival", Excerpt: "short", Content: "long", Image: "img.jpg"})
	require.NoError(t, s.Submit(context.Background()))

	doc, found := backend.find(docstore.KindNews, "doc-1")
	require.True(t, found)
	assert.Equal(t, "Festival", doc.Fields["title"])
	assert.Equal(t, "2026", doc.Fields["date"])

	assert.Empty(t, s.Drafts().News.Title, "draft must reset after a successful save")
	require.Len(t, s.Snapshot().News, 1)
	assert.Equal(t, "Festival", s.Snapshot().News[0].Fields.Title)
}

func TestSubmit_CreateGameDefaultsStatusAndDate(t *testing.T) {
	backend := newMemBackend()
	s := newTestSession(backend)
	mustLogin(t, s)
	require.NoError(t, s.SwitchKind(docstore.KindGame))

	s.SetGameDraft(content.GameForm{
		TeamA: "Turma 1A", ScoreA: 3,
		TeamB: "Turma 2B", ScoreB: 1,
		Sport: content.SportIndoorSoccer,
	})
	require.NoError(t, s.Submit(context.Background()))

	doc, found := backend.find(docstore.KindGame, "doc-1")
	require.True(t, found)
	assert.Equal(t, string(content.StatusFinished), doc.Fields["status"])
	assert.Equal(t, "2026", doc.Fields["date"])
	assert.Equal(t, "Turma 1A", doc.Fields["teamA"])
}

func TestSubmit_CreateAnnouncementStampsToday(t *testing.T) {
	backend := newMemBackend()
	s := newTestSession(backend)
	mustLogin(t, s)
	require.NoError(t, s.SwitchKind(docstore.KindAnnouncement))

	s.SetAnnouncementDraft(content.AnnouncementForm{Title: "Exam week", Content: "Study!", Category: content.CategoryGeneral})
	require.NoError(t, s.Submit(context.Background()))

	doc, found := backend.find(docstore.KindAnnouncement, "doc-1")
	require.True(t, found)
	assert.Equal(t, time.Now().Format("02/01/2006"), doc.Fields["date"])
}

func TestSubmit_EditMergesWithoutClobberingDate(t *testing.T) {
	backend := newMemBackend()
	id := backend.seed(docstore.KindNews, map[string]any{
		"title": "Old title", "excerpt": "e", "content": "c", "image": "i", "date": "2025",
	})
	s := newTestSession(backend)
	mustLogin(t, s)

	require.NoError(t, s.EditNews(s.Snapshot().News[0]))
	draft := s.Drafts().News
	draft.Title = "New title"
	s.SetNewsDraft(draft)
	require.NoError(t, s.Submit(context.Background()))

	doc, found := backend.find(docstore.KindNews, id)
	require.True(t, found)
	assert.Equal(t, "New title", doc.Fields["title"])
	assert.Equal(t, "2025", doc.Fields["date"], "display date is not form-collected and must survive an edit")

	assert.Empty(t, s.EditTargetID(), "session returns to create mode after saving")
	assert.Empty(t, s.Drafts().News.Title)
}

func TestSubmit_UnchangedEditIsLossless(t *testing.T) {
	backend := newMemBackend()
	id := backend.seed(docstore.KindBook, map[string]any{
		"title": "Dom Casmurro", "author": "Machado de Assis", "grade": "3rd year",
	})
	s := newTestSession(backend)
	mustLogin(t, s)
	require.NoError(t, s.SwitchKind(docstore.KindBook))

	require.NoError(t, s.EditBook(s.Snapshot().Books[0]))
	require.NoError(t, s.Submit(context.Background()))

	doc, found := backend.find(docstore.KindBook, id)
	require.True(t, found)
	assert.Equal(t, map[string]any{
		"title": "Dom Casmurro", "author": "Machado de Assis", "grade": "3rd year",
	}, doc.Fields)
}

func TestSubmit_FailureLeavesDraftAndTarget(t *testing.T) {
	backend := newMemBackend()
	backend.seed(docstore.KindNews, map[string]any{"title": "Old", "date": "2025"})
	s := newTestSession(backend)
	mustLogin(t, s)

	require.NoError(t, s.EditNews(s.Snapshot().News[0]))
	draft := s.Drafts().News
	draft.Title = "New"
	s.SetNewsDraft(draft)

	backend.failUpdate = true
	err := s.Submit(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving failed")

	assert.Equal(t, "doc-1", s.EditTargetID(), "failed save must not drop the edit target")
	assert.Equal(t, "New", s.Drafts().News.Title, "failed save must not discard the draft")

	backend.failUpdate = false
	require.NoError(t, s.Submit(context.Background()))
	doc, _ := backend.find(docstore.KindNews, "doc-1")
	assert.Equal(t, "New", doc.Fields["title"])
}

func TestSubmit_FeedbackIsReadOnly(t *testing.T) {
	s := newTestSession(newMemBackend())
	mustLogin(t, s)
	require.NoError(t, s.SwitchKind(docstore.KindFeedback))

	err := s.Submit(context.Background())
	assert.ErrorIs(t, err, common.ErrorKindReadOnly)
}

// blockingBackend parks the first Create until released, so a second
// mutation can be attempted while one is in flight.
type blockingBackend struct {
	*memBackend
	entered chan struct{}
	release chan struct{}
}

func (b *blockingBackend) Create(ctx context.Context, kind docstore.Kind, fields map[string]any) (docstore.Document, error) {
	close(b.entered)
	<-b.release
	return b.memBackend.Create(ctx, kind, fields)
}

func TestSubmit_RejectsOverlappingMutations(t *testing.T) {
	backend := &blockingBackend{
		memBackend: newMemBackend(),
		entered:    make(chan struct{}),
		release:    make(chan struct{}),
	}
	s := newTestSession(backend)
	mustLogin(t, s)
	s.SetNewsDraft(content.NewsForm{Title: "Festival"})

	done := make(chan error, 1)
	go func() { done <- s.Submit(context.Background()) }()
	<-backend.entered

	assert.ErrorIs(t, s.Submit(context.Background()), common.ErrorBusy)
	assert.ErrorIs(t, s.Remove(context.Background(), docstore.KindNews, "doc-1", true), common.ErrorBusy)

	close(backend.release)
	require.NoError(t, <-done)

	require.Len(t, s.Snapshot().News, 1)
	require.NoError(t, s.Remove(context.Background(), docstore.KindNews, s.Snapshot().News[0].ID, true),
		"the mutation slot is free again once the first mutation resolves")
	assert.Empty(t, s.Snapshot().News)
}

func TestRemove_RequiresConfirmation(t *testing.T) {
	backend := newMemBackend()
	id := backend.seed(docstore.KindBook, map[string]any{"title": "Iracema", "author": "José de Alencar", "grade": "2nd year"})
	s := newTestSession(backend)
	mustLogin(t, s)

	err := s.Remove(context.Background(), docstore.KindBook, id, false)
	assert.ErrorIs(t, err, common.ErrorNotConfirmed)

	_, found := backend.find(docstore.KindBook, id)
	assert.True(t, found, "unconfirmed delete must not touch storage")
}

func TestRemove_DeletesAndResyncs(t *testing.T) {
	backend := newMemBackend()
	id := backend.seed(docstore.KindBook, map[string]any{"title": "Iracema", "author": "José de Alencar", "grade": "2nd year"})
	s := newTestSession(backend)
	mustLogin(t, s)
	require.Len(t, s.Snapshot().Books, 1)

	require.NoError(t, s.Remove(context.Background(), docstore.KindBook, id, true))

	_, found := backend.find(docstore.KindBook, id)
	assert.False(t, found)
	assert.Empty(t, s.Snapshot().Books)
}

func TestRemove_FeedbackEntries(t *testing.T) {
	backend := newMemBackend()
	id := backend.seed(docstore.KindFeedback, map[string]any{"name": "Ana", "category": "idea", "message": "hi"})
	s := newTestSession(backend)
	mustLogin(t, s)

	require.NoError(t, s.Remove(context.Background(), docstore.KindFeedback, id, true))
	assert.Empty(t, s.Snapshot().Feedback)
}

func TestRemove_FailureKeepsSnapshot(t *testing.T) {
	backend := newMemBackend()
	id := backend.seed(docstore.KindBook, map[string]any{"title": "Iracema", "author": "José de Alencar", "grade": "2nd year"})
	s := newTestSession(backend)
	mustLogin(t, s)

	backend.failDelete = true
	err := s.Remove(context.Background(), docstore.KindBook, id, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deletion failed")

	require.Len(t, s.Snapshot().Books, 1, "snapshot is corrected on the next resync, not dropped on failure")
}

func TestResync_ReplacesSnapshotWholesale(t *testing.T) {
	backend := newMemBackend()
	s := newTestSession(backend)
	mustLogin(t, s)
	before := s.Snapshot()

	backend.seed(docstore.KindNews, map[string]any{"title": "Festival", "date": "2026"})
	backend.seed(docstore.KindEvent, map[string]any{"title": "Assembly", "date": "15/02", "type": "general"})
	backend.seed(docstore.KindAdmission, map[string]any{"name": "Entrance exam", "month": "March"})
	s.Resync(context.Background())

	after := s.Snapshot()
	assert.NotSame(t, before, after)
	assert.Len(t, after.News, 1)
	assert.Len(t, after.Events, 1)
	assert.Len(t, after.Admissions, 1)
	assert.Empty(t, before.News, "old snapshot is immutable")
}

package cli

import (
	"context"
	"fmt"

	"github.com/gremioaf/portal/internal/content"
	"github.com/gremioaf/portal/internal/content/docstore"
)

// Form prompts for the active kind's fields, prefilled from its draft
// buffer, stores the result back into the session, and submits. An empty
// answer keeps the draft's current value, so an edit submitted unchanged is
// a faithful round trip of the record's fields.
func (a *App) Form(ctx context.Context) error {
	drafts := a.session.Drafts()

	switch a.session.ActiveKind() {
	case docstore.KindNews:
		f := drafts.News
		f.Title = getText(a.reader, "Title", f.Title, a.out)
		f.Excerpt = getText(a.reader, "Excerpt", f.Excerpt, a.out)
		f.Content = getText(a.reader, "Content", f.Content, a.out)
		f.Image = getText(a.reader, "Cover image URL", f.Image, a.out)
		f.YouTubeURL = getText(a.reader, "YouTube link (optional)", f.YouTubeURL, a.out)
		a.session.SetNewsDraft(f)

	case docstore.KindAnnouncement:
		f := drafts.Announcement
		f.Title = getText(a.reader, "Title", f.Title, a.out)
		f.Content = getText(a.reader, "Content", f.Content, a.out)
		f.Category = content.AnnouncementCategory(getText(a.reader,
			"Category (general/urgent/event)", string(f.Category), a.out))
		a.session.SetAnnouncementDraft(f)

	case docstore.KindAlbum:
		f := drafts.Album
		f.Title = getText(a.reader, "Album title", f.Title, a.out)
		f.CoverImage = getText(a.reader, "Cover URL", f.CoverImage, a.out)
		f.Images = getText(a.reader, "Photo links (comma-separated)", f.Images, a.out)
		a.session.SetAlbumDraft(f)

	case docstore.KindGame:
		f := drafts.Game
		f.TeamA = getText(a.reader, "Team A", f.TeamA, a.out)
		f.ScoreA = getInt(a.reader, "Score A", f.ScoreA, a.out)
		f.TeamB = getText(a.reader, "Team B", f.TeamB, a.out)
		f.ScoreB = getInt(a.reader, "Score B", f.ScoreB, a.out)
		f.Sport = content.Sport(getText(a.reader,
			"Sport (indoor-soccer/table-tennis/chess)", string(f.Sport), a.out))
		a.session.SetGameDraft(f)

	case docstore.KindBook:
		f := drafts.Book
		f.Title = getText(a.reader, "Book title", f.Title, a.out)
		f.Author = getText(a.reader, "Author", f.Author, a.out)
		f.Grade = getText(a.reader, "Grade level", f.Grade, a.out)
		a.session.SetBookDraft(f)

	case docstore.KindEvent:
		f := drafts.Event
		f.Title = getText(a.reader, "Title", f.Title, a.out)
		f.Date = getText(a.reader, "Date (e.g. 15/05)", f.Date, a.out)
		f.Type = content.EventType(getText(a.reader,
			"Type (general/exam/admission-exam)", string(f.Type), a.out))
		a.session.SetEventDraft(f)

	case docstore.KindAdmission:
		f := drafts.Admission
		f.Name = getText(a.reader, "Name (e.g. FUVEST)", f.Name, a.out)
		f.Month = getText(a.reader, "Month (e.g. November)", f.Month, a.out)
		a.session.SetAdmissionDraft(f)

	default:
		printlnFn("The feedback mailbox has no form; use 'delete' to remove entries.")
		return nil
	}

	if err := a.session.Submit(ctx); err != nil {
		printlnFn("Could not save:", err)
		return err
	}
	printlnFn("Saved.")
	return nil
}

// Edit seeds the active kind's draft from the n-th listed record and opens
// the form on it.
func (a *App) Edit(ctx context.Context, n int) error {
	snap := a.session.Snapshot()

	var err error
	switch a.session.ActiveKind() {
	case docstore.KindNews:
		if n < 1 || n > len(snap.News) {
			err = fmt.Errorf("no item %d", n)
		} else {
			err = a.session.EditNews(snap.News[n-1])
		}
	case docstore.KindAnnouncement:
		if n < 1 || n > len(snap.Announcements) {
			err = fmt.Errorf("no item %d", n)
		} else {
			err = a.session.EditAnnouncement(snap.Announcements[n-1])
		}
	case docstore.KindAlbum:
		if n < 1 || n > len(snap.Albums) {
			err = fmt.Errorf("no item %d", n)
		} else {
			err = a.session.EditAlbum(snap.Albums[n-1])
		}
	case docstore.KindGame:
		if n < 1 || n > len(snap.Games) {
			err = fmt.Errorf("no item %d", n)
		} else {
			err = a.session.EditGame(snap.Games[n-1])
		}
	case docstore.KindBook:
		if n < 1 || n > len(snap.Books) {
			err = fmt.Errorf("no item %d", n)
		} else {
			err = a.session.EditBook(snap.Books[n-1])
		}
	case docstore.KindEvent:
		if n < 1 || n > len(snap.Events) {
			err = fmt.Errorf("no item %d", n)
		} else {
			err = a.session.EditEvent(snap.Events[n-1])
		}
	case docstore.KindAdmission:
		if n < 1 || n > len(snap.Admissions) {
			err = fmt.Errorf("no item %d", n)
		} else {
			err = a.session.EditAdmission(snap.Admissions[n-1])
		}
	default:
		err = fmt.Errorf("feedback entries cannot be edited")
	}
	if err != nil {
		printlnFn("Cannot edit:", err)
		return err
	}

	return a.Form(ctx)
}

// Delete removes the n-th listed record of the active kind after an explicit
// confirmation.
func (a *App) Delete(ctx context.Context, n int) error {
	kind := a.session.ActiveKind()
	id, ok := a.recordID(kind, n)
	if !ok {
		printlnFn("No item", n)
		return fmt.Errorf("no item %d", n)
	}

	answer, err := GetSimpleText(a.reader, "Delete permanently? (y/n)", a.out)
	if err != nil {
		return err
	}
	confirmed := answer == "y" || answer == "yes"

	if err := a.session.Remove(ctx, kind, id, confirmed); err != nil {
		printlnFn("Not deleted:", err)
		return err
	}
	printlnFn("Deleted.")
	return nil
}

// recordID resolves the n-th (1-based) snapshot entry of a kind to its id.
func (a *App) recordID(kind docstore.Kind, n int) (string, bool) {
	snap := a.session.Snapshot()
	pick := func(ln int, id func(int) string) (string, bool) {
		if n < 1 || n > ln {
			return "", false
		}
		return id(n - 1), true
	}

	switch kind {
	case docstore.KindNews:
		return pick(len(snap.News), func(i int) string { return snap.News[i].ID })
	case docstore.KindAnnouncement:
		return pick(len(snap.Announcements), func(i int) string { return snap.Announcements[i].ID })
	case docstore.KindAlbum:
		return pick(len(snap.Albums), func(i int) string { return snap.Albums[i].ID })
	case docstore.KindGame:
		return pick(len(snap.Games), func(i int) string { return snap.Games[i].ID })
	case docstore.KindBook:
		return pick(len(snap.Books), func(i int) string { return snap.Books[i].ID })
	case docstore.KindEvent:
		return pick(len(snap.Events), func(i int) string { return snap.Events[i].ID })
	case docstore.KindAdmission:
		return pick(len(snap.Admissions), func(i int) string { return snap.Admissions[i].ID })
	case docstore.KindFeedback:
		return pick(len(snap.Feedback), func(i int) string { return snap.Feedback[i].ID })
	}
	return "", false
}

package cli

import (
	"context"
	"fmt"

	"github.com/gremioaf/portal/internal/content/docstore"
)

// List prints the active kind's records in their registered order.
func (a *App) List(ctx context.Context) error {
	snap := a.session.Snapshot()

	switch a.session.ActiveKind() {
	case docstore.KindNews:
		for i, r := range snap.News {
			printlnFn(fmt.Sprintf("%d. %s", i+1, r.Fields.Title))
		}
	case docstore.KindAnnouncement:
		for i, r := range snap.Announcements {
			printlnFn(fmt.Sprintf("%d. [%s] %s", i+1, r.Fields.Category, r.Fields.Title))
		}
	case docstore.KindAlbum:
		for i, r := range snap.Albums {
			printlnFn(fmt.Sprintf("%d. %s (%d photos)", i+1, r.Fields.Title, len(r.Fields.Images)))
		}
	case docstore.KindGame:
		for i, r := range snap.Games {
			printlnFn(fmt.Sprintf("%d. %s %d x %d %s (%s)",
				i+1, r.Fields.TeamA, r.Fields.ScoreA, r.Fields.ScoreB, r.Fields.TeamB, r.Fields.Sport))
		}
	case docstore.KindBook:
		for i, r := range snap.Books {
			printlnFn(fmt.Sprintf("%d. %s by %s (%s)", i+1, r.Fields.Title, r.Fields.Author, r.Fields.Grade))
		}
	case docstore.KindEvent:
		for i, r := range snap.Events {
			printlnFn(fmt.Sprintf("%d. %s (%s, %s)", i+1, r.Fields.Title, r.Fields.Date, r.Fields.Type))
		}
	case docstore.KindAdmission:
		for i, r := range snap.Admissions {
			printlnFn(fmt.Sprintf("%d. %s (%s)", i+1, r.Fields.Name, r.Fields.Month))
		}
	case docstore.KindFeedback:
		for i, r := range snap.Feedback {
			printlnFn(fmt.Sprintf("%d. %s - %s: %q", i+1, r.Fields.Name, r.Fields.Category, r.Fields.Message))
		}
	}
	return nil
}

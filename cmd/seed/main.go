// Command seed populates the document store with sample content for local
// development, going through the typed facades so the data matches what the
// admin console produces.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/gremioaf/portal/internal/config"
	"github.com/gremioaf/portal/internal/content"
	"github.com/gremioaf/portal/internal/content/docstore"
	"github.com/gremioaf/portal/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	db, err := docstore.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("error initializing database: %s", err.Error())
	}
	defer db.Close()

	store := content.NewStore(docstore.NewStore(db, logger))

	if _, err := store.News.Create(ctx, content.NewsFields{
		NewsForm: content.NewsForm{
			Title:   "Welcome back",
			Excerpt: "The new council takes office.",
			Content: "The student council for the 2026 season has been sworn in.",
			Image:   "https://example.org/photos/council.jpg",
		},
		Date: "2026",
	}); err != nil {
		log.Fatalf("seeding news: %s", err.Error())
	}

	if _, err := store.Events.Create(ctx, content.EventFields{
		Title: "First assembly",
		Date:  "15/02",
		Type:  content.EventGeneral,
	}); err != nil {
		log.Fatalf("seeding events: %s", err.Error())
	}

	if _, err := store.Games.Create(ctx, content.GameFields{
		GameForm: content.GameForm{
			TeamA:  "Turma 1A",
			ScoreA: 2,
			TeamB:  "Turma 2B",
			ScoreB: 1,
			Sport:  content.SportIndoorSoccer,
		},
		Status: content.StatusFinished,
		Date:   "2026",
	}); err != nil {
		log.Fatalf("seeding games: %s", err.Error())
	}

	if _, err := store.Books.Create(ctx, content.BookFields{
		Title:  "Dom Casmurro",
		Author: "Machado de Assis",
		Grade:  "3rd year",
	}); err != nil {
		log.Fatalf("seeding books: %s", err.Error())
	}

	if _, err := store.Feedback.Create(ctx, content.FeedbackFields{
		Name:     "Ana",
		Category: "suggestion",
		Message:  "More chess boards in the courtyard, please.",
	}); err != nil {
		log.Fatalf("seeding feedback: %s", err.Error())
	}

	log.Println("seed complete")
}

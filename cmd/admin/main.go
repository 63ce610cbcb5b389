package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/gremioaf/portal/internal/admin"
	"github.com/gremioaf/portal/internal/admin/cli"
	"github.com/gremioaf/portal/internal/config"
	"github.com/gremioaf/portal/internal/content"
	"github.com/gremioaf/portal/internal/content/docstore"
	"github.com/gremioaf/portal/internal/logging"
	"github.com/gremioaf/portal/internal/media"
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
	session := admin.NewSession(store, cfg, logger)

	app := cli.NewApp(session, media.NewService(cfg))
	app.Run(ctx)
}

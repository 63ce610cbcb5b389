// Package cli implements the interactive administration console: a small
// REPL that drives the editing session (login, tab switching, forms,
// deletion) against the content store.
package cli

import (
	"bufio"
	"io"
	"os"

	"github.com/gremioaf/portal/internal/admin"
	"github.com/gremioaf/portal/internal/media"
)

type App struct {
	session *admin.Session
	media   *media.Service
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(session *admin.Session, media *media.Service) *App {
	return &App{
		session: session,
		media:   media,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/gremioaf/portal/internal/content/docstore"
)

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}

// Tab switches the active kind, abandoning any edit in progress.
func (a *App) Tab(ctx context.Context, kind string) error {
	if err := a.session.SwitchKind(docstore.Kind(kind)); err != nil {
		printlnFn("Unknown tab:", kind)
		return err
	}
	return a.List(ctx)
}

// Cancel abandons the edit in progress without touching storage.
func (a *App) Cancel(ctx context.Context) error {
	a.session.CancelEdit()
	printlnFn("Edit cancelled.")
	return nil
}

// Resync re-fetches every kind on request.
func (a *App) Resync(ctx context.Context) error {
	a.session.Resync(ctx)
	printlnFn("Synchronized.")
	return nil
}

// status renders the REPL prompt segment: identity, active tab, and whether
// an edit is in progress.
func (a *App) status() string {
	if !a.session.LoggedIn() {
		return "login required"
	}
	mode := "create"
	if a.session.EditTargetID() != "" {
		mode = "edit"
	}
	return fmt.Sprintf("%s @ %s (%s)", a.session.Identity(), a.session.ActiveKind(), mode)
}

// Run runs the console until EOF or exit.
func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

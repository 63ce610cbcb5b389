package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Tab(ctx context.Context, kind string) error
	List(ctx context.Context) error
	Form(ctx context.Context) error
	Edit(ctx context.Context, n int) error
	Cancel(ctx context.Context) error
	Delete(ctx context.Context, n int) error
	Upload(ctx context.Context) error
	Resync(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the administration console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands when not logged in: help, login, exit.
// Commands when logged in: help, tab <kind>, list, new, edit <n>, cancel,
// delete <n>, upload, resync, logout, exit.
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("portal> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: tab <kind>, (l)ist, new, edit <n>, cancel, delete <n>, upload, resync, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "tab":
			_ = a.Tab(ctx, arg)

		case "l", "list":
			_ = a.List(ctx)

		case "new":
			_ = a.Form(ctx)

		case "edit":
			if n, err := strconv.Atoi(arg); err == nil {
				_ = a.Edit(ctx, n)
			} else {
				printlnFn("Usage: edit <n>")
			}

		case "cancel":
			_ = a.Cancel(ctx)

		case "delete":
			if n, err := strconv.Atoi(arg); err == nil {
				_ = a.Delete(ctx, n)
			} else {
				printlnFn("Usage: delete <n>")
			}

		case "upload":
			_ = a.Upload(ctx)

		case "resync":
			_ = a.Resync(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	sessionExpired() bool
	touch()
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	About(ctx context.Context) error
	Learn(ctx context.Context) error
	Progress(ctx context.Context) error
	Settings(ctx context.Context) error
	Certificate(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the tutor CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - reset          — reset a forgotten password
//	  - about          — program description
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - learn          — open the learning portal
//	  - progress       — detailed progress statistics
//	  - settings       — change preferences
//	  - cert           — reprint the completion certificate
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Before dispatching, an idle session past its timeout is logged out; the
// expired command is discarded. Any errors returned by command handlers are
// ignored here; handlers report their own failures. This keeps the REPL loop
// resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("tutor %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if a.sessionExpired() {
			printlnFn("Session timed out; please log in again.")
			_ = a.Logout(ctx)
			continue
		}
		a.touch()

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: learn, progress, settings, cert, logout, exit")
			} else {
				printlnFn("Available commands: register, login, reset, about, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "reset":
			_ = a.ResetPassword(ctx)

		case "about":
			_ = a.About(ctx)

		case "learn":
			_ = a.Learn(ctx)

		case "progress":
			_ = a.Progress(ctx)

		case "settings":
			_ = a.Settings(ctx)

		case "cert":
			_ = a.Certificate(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

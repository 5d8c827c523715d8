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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	Popular(ctx context.Context) error
	Year(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Fav(ctx context.Context, args []string) error
	Unfav(ctx context.Context, args []string) error
	Favs(ctx context.Context) error
}

const (
	helpGuest    = "Available commands: register, login, search <query> [page], popular, year <yyyy> [query], show <id>, exit"
	helpLoggedIn = "Available commands: search <query> [page], popular, year <yyyy> [query], show <id>, fav <id>, unfav <id>, favs, whoami, logout, exit"
)

// runREPL starts a read–eval–print loop for the MovieKeeper shell.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a' with the remaining tokens as
// arguments. The loop exits on scanner EOF or when the user types "exit" or
// "quit".
//
// Prompt & Commands
//
//	Always:
//	  - help                     — show available commands
//	  - search <query> [page]    — search titles
//	  - popular                  — a sample of popular movies
//	  - year <yyyy> [query]      — titles released in a year
//	  - show <id>                — movie details
//	  - exit | quit              — leave the program
//
//	Not logged in:
//	  - register                 — create an account
//	  - login                    — start a session
//
//	Logged in:
//	  - fav <id> / unfav <id>    — add or remove a favorite
//	  - favs                     — list favorites
//	  - whoami                   — show the current account
//	  - logout                   — end the session
//
// Errors returned by command handlers are ignored here; handlers report and
// log their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("mk %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpGuest)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "search":
			_ = a.Search(ctx, args)

		case "popular":
			_ = a.Popular(ctx)

		case "year":
			_ = a.Year(ctx, args)

		case "show":
			_ = a.Show(ctx, args)

		case "fav":
			_ = a.Fav(ctx, args)

		case "unfav":
			_ = a.Unfav(ctx, args)

		case "favs":
			_ = a.Favs(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

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
	MyGames(ctx context.Context) error
	LocalGames(ctx context.Context) error
	Create(ctx context.Context) error
	Edit(ctx context.Context, gameID string) error
	Join(ctx context.Context, gameID string) error
	Leave(ctx context.Context, gameID string) error
	DeleteAccount(ctx context.Context) error
	Show(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the Sport Together CLI.
//
// Prompt & Commands
//
//	Not logged in:
//	  - help           - show available commands
//	  - register       - create an account
//	  - login          - authenticate
//	  - exit | quit    - leave the program
//
//	Logged in:
//	  - mygames        - games you own or joined
//	  - local          - games at your university
//	  - create         - create a game
//	  - edit <id>      - edit a game you own
//	  - join <id>      - join a game
//	  - leave <id>     - leave a game (an owner leaving orphans it)
//	  - delete-account - delete your account and log out
//	  - show           - write the current page
//	  - logout         - log out
//	  - exit | quit    - leave the program
//
// Errors returned by command handlers were already shown to the user by the
// page controllers, so the loop only moves on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("st> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: mygames, local, create, edit <id>, join <id>, leave <id>, show, logout, delete-account, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "mygames", "my":
			_ = a.MyGames(ctx)

		case "local":
			_ = a.LocalGames(ctx)

		case "create":
			_ = a.Create(ctx)

		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "join":
			if len(args) == 0 {
				printlnFn("Usage: join <id>")
				continue
			}
			_ = a.Join(ctx, args[0])

		case "leave":
			if len(args) == 0 {
				printlnFn("Usage: leave <id>")
				continue
			}
			_ = a.Leave(ctx, args[0])

		case "delete-account":
			_ = a.DeleteAccount(ctx)

		case "show":
			_ = a.Show(ctx)

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

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
	DeleteAccount(ctx context.Context) error
	Language(ctx context.Context, args []string) error
	Theme(ctx context.Context, args []string) error
	Status(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the jobseekr CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not signed in:
//	  help             show available commands
//	  register         create an account
//	  login            authenticate
//	  lang [code]      show or set the language preference
//	  theme [name]     show or set the theme preference
//	  status           session and connectivity overview
//	  exit | quit      leave the program
//
//	Signed in (additionally):
//	  whoami           re-sync with the server and show the account
//	  delete-account   permanently remove the account
//	  logout           drop the session
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("jobseekr %s> ", statusFn()))
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
				printlnFn("Available commands: whoami, lang, theme, status, delete-account, logout, exit")
			} else {
				printlnFn("Available commands: register, login, lang, theme, status, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "delete-account":
			_ = a.DeleteAccount(ctx)

		case "lang":
			_ = a.Language(ctx, args)

		case "theme":
			_ = a.Theme(ctx, args)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

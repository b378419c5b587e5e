package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Categories(ctx context.Context) error
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Delete(ctx context.Context, selection string) error
	Report(ctx context.Context, selection string) error
	Logout(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: login, exit"
	helpLoggedIn  = "Available commands: whoami, categories, (l)ist, add, delete <rows>, report <rows>, logout | switch, exit\n" +
		"Rows refer to the last listing: 1,3-5 or all"
)

// runREPL reads commands line by line from r and dispatches them to a.
// Ledger commands are refused until a session exists. Command errors are
// printed and the loop continues. It returns on EOF, "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ledger%s> ", statusFn()))

		line, err := r.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		// "delete 1 3" and "delete 1, 3" both mean rows 1 and 3.
		arg := strings.Join(parts[1:], ",")

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "login":
			cmdErr = a.Login(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "whoami", "categories", "l", "list", "add", "delete", "report", "logout", "switch":
			if !a.isLoggedIn() {
				printlnFn("Please login first")
				continue
			}
			switch cmd {
			case "whoami":
				cmdErr = a.WhoAmI(ctx)
			case "categories":
				cmdErr = a.Categories(ctx)
			case "l", "list":
				cmdErr = a.List(ctx)
			case "add":
				cmdErr = a.Add(ctx)
			case "delete":
				cmdErr = a.Delete(ctx, arg)
			case "report":
				cmdErr = a.Report(ctx, arg)
			case "logout":
				cmdErr = a.Logout(ctx)
			case "switch":
				if cmdErr = a.Logout(ctx); cmdErr == nil {
					cmdErr = a.Login(ctx)
				}
			}

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
		if err != nil {
			return
		}
	}
}

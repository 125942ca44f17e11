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
	Signup(ctx context.Context) error
	Signin(ctx context.Context) error
	Me(ctx context.Context) error
	Update(ctx context.Context) error
	Items(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Upload(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Like(ctx context.Context, args []string) error
	Unlike(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
}

// runREPL reads one command per line from reader, dispatches it to a and
// prints any error the command returns. The loop ends on EOF or on "exit"
// or "quit".
//
//	Anyone:
//	  - help                 show available commands
//	  - signup               create an account
//	  - signin               authenticate and save the token
//	  - items [weather]      list items, optionally only cold, warm or hot
//	  - exit | quit          leave the program
//
//	Signed in:
//	  - me                   show the profile
//	  - update               change name or avatar
//	  - add                  create an item
//	  - upload <file>        upload an image and print its URL
//	  - delete <id>          delete an own item
//	  - like <id>            like an item
//	  - unlike <id>          remove a like
//	  - logout               forget the saved token
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("wtwr %s > ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist|items [weather], me, update, add, upload <file>, delete <id>, like <id>, unlike <id>, logout, exit")
			} else {
				printlnFn("Available commands: signup, signin, (l)ist|items [weather], exit")
			}

		case "signup", "register":
			cmdErr = a.Signup(ctx)
		case "signin", "login":
			cmdErr = a.Signin(ctx)
		case "l", "list", "items":
			cmdErr = a.Items(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "me", "update", "add", "upload", "delete", "like", "unlike", "logout":
			if !a.isLoggedIn() {
				printlnFn("Sign in first (type 'signin')")
				continue
			}
			cmdErr = dispatchProtected(ctx, a, cmd, args)

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", describe(cmdErr))
		}
	}
}

func dispatchProtected(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "me":
		return a.Me(ctx)
	case "update":
		return a.Update(ctx)
	case "add":
		return a.Add(ctx)
	case "upload":
		return a.Upload(ctx, args)
	case "delete":
		return a.Delete(ctx, args)
	case "like":
		return a.Like(ctx, args)
	case "unlike":
		return a.Unlike(ctx, args)
	default:
		return a.Logout(ctx)
	}
}

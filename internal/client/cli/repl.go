package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: search, request, requests, accept, reject, contacts, online, " +
		"open, older, send, reply, react, typing, export, logout, forget, exit"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Forget(ctx context.Context) error

	Search(ctx context.Context, args []string) error
	Request(ctx context.Context, args []string) error
	Requests(ctx context.Context) error
	Accept(ctx context.Context, args []string) error
	Reject(ctx context.Context, args []string) error
	Contacts(ctx context.Context) error
	Online(ctx context.Context) error

	Open(ctx context.Context, args []string) error
	Older(ctx context.Context) error
	Send(ctx context.Context, args []string) error
	Reply(ctx context.Context, args []string) error
	React(ctx context.Context, args []string) error
	Typing(ctx context.Context) error
	Export(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the chat CLI.
//
// It reads a line from reader (shared with the interactive prompts), parses the first token as the
// command and the rest as its arguments, and dispatches to methods on 'a'.
// The loop exits at end of input or when the user types "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - register                create an account and identity key
//	  - login                   unlock the identity (online, or offline fallback)
//
//	Logged in:
//	  - search <query>          find users
//	  - request <user>          send a friend request
//	  - requests                list incoming requests
//	  - accept|reject <id>      answer a request
//	  - contacts, online        list contacts / online users
//	  - open <user>             open a conversation and show the latest messages
//	  - older                   load the page before the oldest shown message
//	  - send [text]             send to the open conversation
//	  - reply <#n> [text]       reply to a message of the open conversation
//	  - react <#n> <emoji>      toggle a reaction
//	  - typing                  tell the peer you are typing
//	  - export [user]           download and decrypt the history
//	  - logout, forget          log out / log out and wipe the local cache
//
// Command errors are printed and do not stop the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("pc %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		err = nil
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "forget":
			err = a.Forget(ctx)

		case "search":
			err = a.Search(ctx, args)
		case "request":
			err = a.Request(ctx, args)
		case "requests":
			err = a.Requests(ctx)
		case "accept":
			err = a.Accept(ctx, args)
		case "reject":
			err = a.Reject(ctx, args)
		case "contacts":
			err = a.Contacts(ctx)
		case "online":
			err = a.Online(ctx)

		case "open":
			err = a.Open(ctx, args)
		case "older":
			err = a.Older(ctx)
		case "send", "s":
			err = a.Send(ctx, args)
		case "reply":
			err = a.Reply(ctx, args)
		case "react":
			err = a.React(ctx, args)
		case "typing":
			err = a.Typing(ctx)
		case "export":
			err = a.Export(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}

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
	Profile(ctx context.Context) error
	Products(ctx context.Context) error
	Show(ctx context.Context) error
	AddToCart(ctx context.Context) error
	ShowCart(ctx context.Context) error
	RemoveItem(ctx context.Context) error
	ClearCart(ctx context.Context) error
	Checkout(ctx context.Context) error
	Orders(ctx context.Context) error
	Feed(ctx context.Context) error
	FeedMore(ctx context.Context) error
	Post(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the storefront CLI.
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
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - products       — browse the catalog
//	  - show           — inspect a single product
//	  - feed | more    — read the social feed
//	  - exit | quit    — leave the program
//
//	Logged in, additionally:
//	  - profile        — show the cached account profile
//	  - add            — add a product to the cart
//	  - cart           — show the cart
//	  - remove         — remove a cart item
//	  - clear          — empty the cart
//	  - checkout       — place an order
//	  - orders         — list past orders
//	  - post           — publish a feed post (paid tiers)
//	  - logout         — log out
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("zoura %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: products, show, add, cart, remove, clear, checkout, orders, feed, more, post, profile, logout, exit")
			} else {
				printlnFn("Available commands: register, login, products, show, feed, more, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "p", "products":
			_ = a.Products(ctx)

		case "show":
			_ = a.Show(ctx)

		case "add":
			_ = a.AddToCart(ctx)

		case "cart":
			_ = a.ShowCart(ctx)

		case "remove":
			_ = a.RemoveItem(ctx)

		case "clear":
			_ = a.ClearCart(ctx)

		case "checkout":
			_ = a.Checkout(ctx)

		case "orders":
			_ = a.Orders(ctx)

		case "feed":
			_ = a.Feed(ctx)

		case "more":
			_ = a.FeedMore(ctx)

		case "post":
			_ = a.Post(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

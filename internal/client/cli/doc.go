// Package cli provides the interactive Zoura storefront command-line client.
//
// It wires configuration, local token storage, the REST API client, and an
// interactive REPL. Typical flow: silently restore the previous session,
// refresh the cart mirror, and execute user commands.
//
// Key features:
//   - Register / Login / Logout with silent session restore
//   - Browse the catalog and inspect product variants
//   - Add to / remove from / clear the server cart
//   - Checkout with shipping details
//   - Read the social feed and publish posts (paid tiers)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli

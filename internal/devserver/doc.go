// Package devserver is an in-memory rendition of the storefront backend,
// meant for local development and end-to-end tests of the client. It speaks
// the same wire shapes the mobile client consumes: JWT bearer auth, a
// server-computed cart, orders and a social feed with multipart uploads.
//
// Nothing here persists; restarting the server loses all state. Seed data
// gives the client something to browse right away.
package devserver

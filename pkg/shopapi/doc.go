// Package shopapi is the client for the remote commerce API.
//
// The client owns the bearer-token plumbing for the whole storefront: every
// authenticated request picks up the current access token from its
// TokenSource, and an authorization failure (401/403) triggers exactly one
// silent refresh-and-retry cycle before the error is handed back. Callers
// never deal with tokens directly.
//
// Unauthenticated operations (public product lookups, login) bypass the token
// plumbing entirely.
package shopapi

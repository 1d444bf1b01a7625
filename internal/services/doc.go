// Package services implements the typed REST client for the kitapinceleme
// bookstore API.
//
// # Client
//
// [Client] wraps a single base URL and HTTP client. Every endpoint of the
// backend has a corresponding method grouped by resource: books and catalog
// queries (books.go), users and profiles (users.go), reviews (reviews.go)
// and favorites (favorites.go).
//
// # Authentication
//
// Mutating and user-scoped endpoints require a bearer token. The client pulls
// the token lazily from a [TokenSource] on each request, so a login performed
// mid-session is picked up without rebuilding the client.
//
// # Errors
//
// Non-2xx responses are mapped onto the shared sentinel taxonomy
// (shared.ErrAuth, shared.ErrNotFound, shared.ErrFetch) with the server's
// message attached when the body carries one. Callers branch with
// [errors.Is]; no HTTP status codes leak past this package.
package services

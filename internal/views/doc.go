// Package views holds the screen-level view-models: catalog browsing, book
// detail with reviews, the user profile with favorites, and the admin
// console. Each view-model orchestrates the API client, the session store
// and the local cache, and keeps its derived state re-computable from what
// it last fetched.
package views

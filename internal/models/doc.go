// Package models contains plain data structures shared across the client:
// the wire types returned by the bookstore API (books, genres, reviews,
// favorites, users, profiles) and the locally persisted cache row types.
//
// Wire types carry the API's camelCase JSON field names verbatim; nothing in
// this package performs I/O.
package models

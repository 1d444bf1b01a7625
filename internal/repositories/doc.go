// Package repositories provides the local SQLite persistence layer: the
// session key-value store and the catalog cache.
//
// The session table mirrors the browser client's localStorage keys
// (authToken, userInfo, rememberedUser); the books table holds the last
// successfully fetched catalog for offline favorite lookups. Schema lives in
// internal/shared/sql and is applied by shared.RunMigrations.
package repositories

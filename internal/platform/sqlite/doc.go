// Package sqlite provides a SQLite-backed implementation of the data storage
// interfaces defined in the internal/store package. It is primarily intended
// for local development and tests that need a real database without a
// PostgreSQL server.
package sqlite

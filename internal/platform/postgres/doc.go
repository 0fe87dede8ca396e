// Package postgres contains PostgreSQL implementations of the store
// interfaces defined in internal/store.
package postgres

// Package store defines the persistence interfaces consumed by the
// service layer, along with the pagination types and sentinel errors
// shared by all store implementations.
package store

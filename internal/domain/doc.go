// Package domain defines the core business entities and errors for the
// user-manager application. Types in this package have no dependencies on
// transport or persistence concerns.
package domain

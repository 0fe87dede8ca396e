// Package service contains the business-rule and orchestration logic that
// sits between the transport layer and the persistence layer. Services
// receive already-deserialized typed values, enforce the application's
// invariants against the store interfaces, and return typed results or
// typed failures.
package service

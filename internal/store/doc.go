// Package store defines the persistence interfaces for users and tasks.
// The interfaces keep the query engine and the handlers independent of the
// backing database; the postgres package provides the production
// implementations.
package store

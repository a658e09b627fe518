package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// SavePoint marks a named savepoint inside the active transaction.
	// Returns error if no active transaction.
	SavePoint(ctx context.Context, name string) error

	// RollbackTo discards the changes made since the named savepoint while
	// keeping the transaction itself open. On postgres this also clears the
	// aborted state a failed statement leaves the transaction in, so
	// subsequent statements succeed again.
	RollbackTo(ctx context.Context, name string) error

	// OrderRepository returns an OrderRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	OrderRepository() OrderRepository

	// RejectionTrackerRepository returns a RejectionTrackerRepository instance
	// bound to the current transaction.
	RejectionTrackerRepository() RejectionTrackerRepository
}

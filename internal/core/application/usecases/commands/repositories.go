// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"ordermail/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls. Savepoints
	// let a handler discard one failed unit of writes without losing the
	// rest of the transaction.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
		SavePoint(ctx context.Context, name string) error
		RollbackTo(ctx context.Context, name string) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TrackerRepoFactory provides access to the rejection tracker repository
	// within a transaction.
	TrackerRepoFactory interface {
		RejectionTrackerRepository() ports.RejectionTrackerRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// RejectionUoW manages transactions spanning the order aggregate and its
	// rejection trackers. Used by the status processing pass, which moves the
	// order onto hold and upserts trackers in the same transaction.
	RejectionUoW interface {
		TxManager
		OrderRepoFactory
		TrackerRepoFactory
	}

	// RejectionUoWFactory creates new rejection unit of work instances.
	RejectionUoWFactory interface {
		Create() RejectionUoW
	}
)

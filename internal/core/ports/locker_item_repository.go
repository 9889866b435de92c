// Package ports defines repository interfaces for the parcelhub domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/locker"
)

// LockerItemRepository defines the persistence contract for the registry of
// items waiting in lockers. Items live in the registry from arrival until a
// consolidation consumes them.
type LockerItemRepository interface {
	// Add persists a newly arrived item to the registry.
	// The item must be valid and not already exist in the repository.
	Add(ctx context.Context, item *locker.Item) error

	// Get retrieves a single pending item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*locker.Item, error)

	// GetPendingByLocker retrieves all pending items registered under the
	// given locker code, in arrival order.
	GetPendingByLocker(ctx context.Context, lockerCode string) ([]*locker.Item, error)

	// RemoveItems deletes the given items from the registry. Called when a
	// consolidation consumes them, in the same transaction that persists the
	// resulting shipment.
	RemoveItems(ctx context.Context, ids []kernel.UUID) error
}

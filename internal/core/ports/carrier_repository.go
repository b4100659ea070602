// Package ports defines the contracts between the quoting core and its
// infrastructure: carrier persistence, external distance resolution, and
// the pricing configuration source. These interfaces enable dependency
// inversion and testability.
package ports

import (
	"context"

	"quoting/internal/core/domain/model/carrier"
	"quoting/internal/core/domain/model/kernel"
)

// CarrierRepository defines the persistence contract for carrier aggregates.
type CarrierRepository interface {
	// Add persists a new carrier aggregate to storage.
	// The carrier must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *carrier.Carrier) error

	// Update persists changes to an existing carrier aggregate.
	// The carrier must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *carrier.Carrier) error

	// Get retrieves a carrier aggregate by its unique identifier.
	// Returns the complete carrier with its service areas and declared routes.
	Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error)

	// GetAllApprovedByServiceArea retrieves approved carriers whose service
	// areas cover the given city key. Used for intracity matching.
	GetAllApprovedByServiceArea(ctx context.Context, cityKey string) ([]*carrier.Carrier, error)

	// GetAllApprovedWithRoutes retrieves approved carriers that declare at
	// least one intercity or international route. Exact corridor matching is
	// a domain concern; the repository only narrows the candidate set.
	GetAllApprovedWithRoutes(ctx context.Context) ([]*carrier.Carrier, error)
}

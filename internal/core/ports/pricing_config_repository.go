package ports

import (
	"context"

	"quoting/internal/core/domain/model/pricing"
)

// PricingConfigRepository defines the persistence contract for the
// platform's pricing configuration. The store holds at most one active
// configuration row.
type PricingConfigRepository interface {
	// Get retrieves the stored configuration.
	// Returns an ObjectNotFoundError when none has been saved yet.
	Get(ctx context.Context) (pricing.Config, error)

	// Save replaces the stored configuration.
	Save(ctx context.Context, cfg pricing.Config) error
}

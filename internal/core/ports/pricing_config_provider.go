package ports

import (
	"context"

	"quoting/internal/core/domain/model/pricing"
)

// PricingConfigProvider is the contract for reading the platform's pricing
// configuration. The configuration rarely changes, so implementations may
// cache it for the process lifetime; Invalidate discards the cached copy
// after an administrative update.
type PricingConfigProvider interface {
	// Config returns the current pricing configuration. Implementations
	// fall back to the built-in defaults when no stored configuration
	// exists.
	Config(ctx context.Context) (pricing.Config, error)

	// Invalidate discards any cached configuration so the next Config call
	// re-reads the store.
	Invalidate()
}

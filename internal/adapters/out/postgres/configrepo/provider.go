package configrepo

import (
	"context"
	"errors"
	"sync"

	"quoting/internal/core/domain/model/pricing"
	"quoting/internal/core/ports"
	"quoting/internal/pkg/errs"
)

// CachedPricingConfigProvider serves the pricing configuration from an
// in-memory copy, re-reading the store only after Invalidate. When no
// configuration has been saved yet it falls back to the built-in defaults.
//
// Safe for concurrent use; quoting reads vastly outnumber administrative
// updates.
type CachedPricingConfigProvider struct {
	repository ports.PricingConfigRepository

	mu     sync.RWMutex
	cached *pricing.Config
}

// NewCachedPricingConfigProvider creates a provider backed by the given repository.
func NewCachedPricingConfigProvider(repository ports.PricingConfigRepository) (*CachedPricingConfigProvider, error) {
	if repository == nil {
		return nil, errors.New("pricing config repository is required")
	}

	return &CachedPricingConfigProvider{repository: repository}, nil
}

// Config returns the current pricing configuration, loading it on first use.
func (p *CachedPricingConfigProvider) Config(ctx context.Context) (pricing.Config, error) {
	p.mu.RLock()
	cached := p.cached
	p.mu.RUnlock()

	if cached != nil {
		return *cached, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Another goroutine may have loaded the config while we waited for the lock
	if p.cached != nil {
		return *p.cached, nil
	}

	cfg, err := p.repository.Get(ctx)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return pricing.Config{}, err
		}
		cfg = pricing.DefaultConfig()
	}

	p.cached = &cfg
	return cfg, nil
}

// Invalidate discards the cached configuration.
func (p *CachedPricingConfigProvider) Invalidate() {
	p.mu.Lock()
	p.cached = nil
	p.mu.Unlock()
}

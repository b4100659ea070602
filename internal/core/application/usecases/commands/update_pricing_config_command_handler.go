package commands

import (
	"context"
)

// ConfigCacheInvalidator discards any cached pricing configuration so
// subsequent reads observe the stored update. Satisfied by
// ports.PricingConfigProvider.
type ConfigCacheInvalidator interface {
	Invalidate()
}

// UpdatePricingConfigCommandHandler persists a replacement pricing
// configuration and invalidates the per-process configuration cache once
// the transaction commits.
type UpdatePricingConfigCommandHandler struct {
	uowFactory  PricingConfigUoWFactory
	invalidator ConfigCacheInvalidator
}

// NewUpdatePricingConfigCommandHandler creates a handler for pricing
// configuration updates.
func NewUpdatePricingConfigCommandHandler(
	uowFactory PricingConfigUoWFactory,
	invalidator ConfigCacheInvalidator,
) UpdatePricingConfigCommandHandler {
	return UpdatePricingConfigCommandHandler{
		uowFactory:  uowFactory,
		invalidator: invalidator,
	}
}

// Handle processes the configuration update command.
// Saves the new configuration within a transaction and invalidates the
// cache only after a successful commit.
func (h *UpdatePricingConfigCommandHandler) Handle(
	ctx context.Context, cmd UpdatePricingConfigCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.PricingConfigRepository().Save(ctx, cmd.Config()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.invalidator.Invalidate()
	return nil
}

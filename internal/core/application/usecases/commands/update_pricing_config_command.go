package commands

import (
	"errors"

	"quoting/internal/core/domain/model/pricing"
	"quoting/internal/pkg/guard"
)

var ErrUpdatePricingConfigCommandIsNotConstructed = errors.New(
	"UpdatePricingConfigCommand must be created via NewUpdatePricingConfigCommand constructor",
)

// UpdatePricingConfigCommand represents an administrative update of the
// platform's default rates, fee bounds, and weight limit. Quotes already
// returned are not affected; the new configuration applies from the next
// quoting request after cache invalidation.
type UpdatePricingConfigCommand struct { //nolint:recvcheck //using for validation
	config pricing.Config

	guard guard.ConstructorGuard
}

// NewUpdatePricingConfigCommand creates a command carrying the replacement
// configuration.
func NewUpdatePricingConfigCommand(config pricing.Config) (UpdatePricingConfigCommand, error) {
	command := UpdatePricingConfigCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setConfig(config); err != nil {
		return UpdatePricingConfigCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePricingConfigCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePricingConfigCommandIsNotConstructed)
}

// Config returns the replacement configuration from the command.
func (c UpdatePricingConfigCommand) Config() pricing.Config {
	return c.config
}

func (c *UpdatePricingConfigCommand) setConfig(config pricing.Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	c.config = config
	return nil
}

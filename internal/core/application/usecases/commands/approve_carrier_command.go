package commands

import (
	"errors"

	"quoting/internal/core/domain/model/kernel"
	"quoting/internal/pkg/guard"
)

var ErrApproveCarrierCommandIsNotConstructed = errors.New(
	"ApproveCarrierCommand must be created via NewApproveCarrierCommand constructor",
)

// ApproveCarrierCommand represents an administrative decision to admit a
// pending carrier into quoting.
type ApproveCarrierCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveCarrierCommand creates a command to approve the given carrier.
func NewApproveCarrierCommand(carrierID kernel.UUID) (ApproveCarrierCommand, error) {
	command := ApproveCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCarrierID(carrierID); err != nil {
		return ApproveCarrierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveCarrierCommand) Validate() error {
	return c.guard.Validate(ErrApproveCarrierCommandIsNotConstructed)
}

// CarrierID returns the carrier ID from the command.
func (c ApproveCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c *ApproveCarrierCommand) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.carrierID = id
	return nil
}

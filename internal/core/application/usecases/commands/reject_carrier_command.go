package commands

import (
	"errors"

	"quoting/internal/core/domain/model/kernel"
	"quoting/internal/pkg/guard"
)

var ErrRejectCarrierCommandIsNotConstructed = errors.New(
	"RejectCarrierCommand must be created via NewRejectCarrierCommand constructor",
)

// RejectCarrierCommand represents an administrative decision to reject a
// pending carrier, or to delist an approved one.
type RejectCarrierCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectCarrierCommand creates a command to reject the given carrier.
func NewRejectCarrierCommand(carrierID kernel.UUID) (RejectCarrierCommand, error) {
	command := RejectCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCarrierID(carrierID); err != nil {
		return RejectCarrierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectCarrierCommand) Validate() error {
	return c.guard.Validate(ErrRejectCarrierCommandIsNotConstructed)
}

// CarrierID returns the carrier ID from the command.
func (c RejectCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c *RejectCarrierCommand) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.carrierID = id
	return nil
}

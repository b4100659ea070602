package commands

import (
	"errors"

	"quoting/internal/core/domain/model/carrier"
	"quoting/internal/core/domain/model/kernel"
	"quoting/internal/pkg/guard"
)

var (
	ErrCreateCarrierCommandIsNotConstructed = errors.New(
		"CreateCarrierCommand must be created via NewCreateCarrierCommand constructor",
	)
	ErrCarrierNameIsRequired = errors.New("name is required")
)

// CreateCarrierCommand represents a request to register a new logistics
// partner. The carrier starts in pending status and must be approved before
// it participates in quoting.
//
// Example:
//
//	cmd, err := NewCreateCarrierCommand("Swift Logistics", areas, routes, rateCard)
//	if err != nil {
//	    return fmt.Errorf("invalid carrier data: %w", err)
//	}
//
//	handler := NewCreateCarrierCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register carrier: %w", err)
//	}
//	fmt.Printf("Registered carrier with ID: %s", cmd.CarrierID())
type CreateCarrierCommand struct { //nolint:recvcheck //using for validation
	carrierID    kernel.UUID
	name         string
	serviceAreas []string
	routes       []carrier.DeclaredRoute
	rateCard     carrier.RateCard

	guard guard.ConstructorGuard
}

// NewCreateCarrierCommand creates a command to register a new carrier.
// Automatically generates a unique ID for the carrier.
func NewCreateCarrierCommand(
	name string,
	serviceAreas []string,
	routes []carrier.DeclaredRoute,
	rateCard carrier.RateCard,
) (CreateCarrierCommand, error) {
	command := CreateCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCarrierID(kernel.NewUUID()),
		command.setName(name),
		command.setRateCard(rateCard),
	); err != nil {
		return CreateCarrierCommand{}, err
	}

	command.serviceAreas = serviceAreas
	command.routes = routes

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCarrierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCarrierCommandIsNotConstructed)
}

// CarrierID returns the generated carrier ID from the command.
func (c CreateCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Name returns the carrier name from the command.
func (c CreateCarrierCommand) Name() string {
	return c.name
}

// ServiceAreas returns the declared service areas from the command.
func (c CreateCarrierCommand) ServiceAreas() []string {
	return c.serviceAreas
}

// Routes returns the declared routes from the command.
func (c CreateCarrierCommand) Routes() []carrier.DeclaredRoute {
	return c.routes
}

// RateCard returns the carrier's rate card from the command.
func (c CreateCarrierCommand) RateCard() carrier.RateCard {
	return c.rateCard
}

func (c *CreateCarrierCommand) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.carrierID = id
	return nil
}

func (c *CreateCarrierCommand) setName(name string) error {
	if name == "" {
		return ErrCarrierNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCarrierCommand) setRateCard(rateCard carrier.RateCard) error {
	if err := rateCard.Validate(); err != nil {
		return err
	}

	c.rateCard = rateCard
	return nil
}

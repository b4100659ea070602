package commands

import (
	"context"

	"quoting/internal/core/domain/model/carrier"
)

// CreateCarrierCommandHandler handles the business logic for carrier
// registration. Creates and persists new carrier aggregates in pending
// status.
//
// Example:
//
//	handler := NewCreateCarrierCommandHandler(uowFactory)
//	cmd, _ := NewCreateCarrierCommand("Swift Logistics", areas, routes, rateCard)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("carrier registration failed: %w", err)
//	}
type CreateCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewCreateCarrierCommandHandler creates a handler for carrier registration.
// Requires a CarrierUoWFactory for transactional persistence operations.
func NewCreateCarrierCommandHandler(uowFactory CarrierUoWFactory) CreateCarrierCommandHandler {
	return CreateCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the carrier registration command.
// Creates a new carrier aggregate and persists it within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h *CreateCarrierCommandHandler) Handle(ctx context.Context, cmd CreateCarrierCommand) error {
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

	carrierRepo := uow.CarrierRepository()
	aggregate, err := carrier.NewCarrier(
		cmd.CarrierID(), cmd.Name(), cmd.ServiceAreas(), cmd.Routes(), cmd.RateCard())
	if err != nil {
		return err
	}

	if err = carrierRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package commands

import (
	"context"
)

// RejectCarrierCommandHandler handles rejecting a pending carrier or
// delisting an approved one. The status transition is enforced by the
// carrier aggregate.
type RejectCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewRejectCarrierCommandHandler creates a handler for carrier rejection.
func NewRejectCarrierCommandHandler(uowFactory CarrierUoWFactory) RejectCarrierCommandHandler {
	return RejectCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection command.
// Loads the carrier, applies the status transition, and persists the change
// within a transaction.
func (h *RejectCarrierCommandHandler) Handle(ctx context.Context, cmd RejectCarrierCommand) error {
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
	aggregate, err := carrierRepo.Get(ctx, cmd.CarrierID())
	if err != nil {
		return err
	}

	if err = aggregate.Reject(); err != nil {
		return err
	}

	if err = carrierRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

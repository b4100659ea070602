package commands

import (
	"context"
)

// ApproveCarrierCommandHandler handles admitting a pending carrier into
// quoting. The status transition is enforced by the carrier aggregate.
type ApproveCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewApproveCarrierCommandHandler creates a handler for carrier approval.
func NewApproveCarrierCommandHandler(uowFactory CarrierUoWFactory) ApproveCarrierCommandHandler {
	return ApproveCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval command.
// Loads the carrier, applies the status transition, and persists the change
// within a transaction.
func (h *ApproveCarrierCommandHandler) Handle(ctx context.Context, cmd ApproveCarrierCommand) error {
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

	if err = aggregate.Approve(); err != nil {
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

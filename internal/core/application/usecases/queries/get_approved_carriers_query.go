package queries

import (
	"errors"

	"quoting/internal/core/domain/model/kernel"
	"quoting/internal/pkg/guard"
)

var ErrGetApprovedCarriersQueryIsNotConstructed = errors.New(
	"GetApprovedCarriersQuery must be created via NewGetApprovedCarriersQuery constructor",
)

// GetApprovedCarriersQuery retrieves the approved carrier directory for
// administrative dashboards.
//
// Example:
//
//	query := NewGetApprovedCarriersQuery()
//	handler := NewGetApprovedCarriersQueryHandler(db)
//
//	carriers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve carriers: %w", err)
//	}
type GetApprovedCarriersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetApprovedCarriersQuery creates a query to retrieve all approved carriers.
func NewGetApprovedCarriersQuery() GetApprovedCarriersQuery {
	return GetApprovedCarriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetApprovedCarriersQuery) Validate() error {
	return q.guard.Validate(ErrGetApprovedCarriersQueryIsNotConstructed)
}

// GetApprovedCarriersQueryResponse represents carrier information in the
// read model.
type GetApprovedCarriersQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Rating       float64
	ServiceAreas int
	Routes       int
}

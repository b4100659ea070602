package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quoting/internal/core/domain/model/kernel"
)

// GetApprovedCarriersQueryHandler retrieves approved carrier information
// from the database. Uses direct SQL queries for optimal read performance
// in the CQRS pattern.
//
// Example:
//
//	handler := NewGetApprovedCarriersQueryHandler(db)
//	query := NewGetApprovedCarriersQuery()
//
//	carriers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get carriers: %v", err)
//	    return err
//	}
type GetApprovedCarriersQueryHandler struct {
	db *gorm.DB
}

// NewGetApprovedCarriersQueryHandler creates a handler for carrier
// directory queries. Requires a GORM database connection.
func NewGetApprovedCarriersQueryHandler(db *gorm.DB) GetApprovedCarriersQueryHandler {
	return GetApprovedCarriersQueryHandler{db: db}
}

// Handle executes the query to retrieve all approved carriers.
// Returns carrier read models sorted by name, with coverage counts for
// dashboard display.
func (h GetApprovedCarriersQueryHandler) Handle(
	ctx context.Context,
	query GetApprovedCarriersQuery,
) ([]GetApprovedCarriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	carriers := make([]GetApprovedCarriersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.rating,
			COUNT(DISTINCT a.id) AS service_areas,
			COUNT(DISTINCT r.id) AS routes
		FROM carriers c
		LEFT JOIN carrier_service_areas a ON a.carrier_id = c.id
		LEFT JOIN carrier_routes r ON r.carrier_id = c.id
		WHERE c.status = 'approved'
		GROUP BY c.id, c.name, c.rating
		ORDER BY c.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetApprovedCarriersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&response.Name,
			&response.Rating,
			&response.ServiceAreas,
			&response.Routes,
		)
		if err != nil {
			return nil, err
		}

		carrierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = carrierID

		carriers = append(carriers, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return carriers, nil
}

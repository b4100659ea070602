// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"quoting/internal/core/domain/model/quote"
	"quoting/internal/pkg/guard"
)

var (
	ErrGetDeliveryOptionsQueryIsNotConstructed = errors.New(
		"GetDeliveryOptionsQuery must be created via NewGetDeliveryOptionsQuery constructor",
	)
	ErrPickupIsRequired  = errors.New("pickup address is required")
	ErrDropoffIsRequired = errors.New("dropoff address is required")
)

// GetDeliveryOptionsQuery represents one quoting request: a pickup, a
// drop-off, a parcel weight, and the requested service levels.
//
// Example:
//
//	query, err := NewGetDeliveryOptionsQuery(
//	    "Ikeja, Lagos, Nigeria", "Yaba, Lagos, Nigeria",
//	    decimal.NewFromInt(2), nil, time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid quoting request: %w", err)
//	}
//
//	options, err := handler.Handle(ctx, query)
type GetDeliveryOptionsQuery struct { //nolint:recvcheck //using for validation
	pickup         string
	dropoff        string
	weightKg       decimal.Decimal
	requestedTypes []quote.DeliveryType
	timestamp      time.Time

	guard guard.ConstructorGuard
}

// NewGetDeliveryOptionsQuery creates a quoting query. When requestedTypes
// is empty both standard and express options are quoted. A zero timestamp
// defaults to the current time.
func NewGetDeliveryOptionsQuery(
	pickup string,
	dropoff string,
	weightKg decimal.Decimal,
	requestedTypes []quote.DeliveryType,
	timestamp time.Time,
) (GetDeliveryOptionsQuery, error) {
	query := GetDeliveryOptionsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setPickup(pickup),
		query.setDropoff(dropoff),
		query.setRequestedTypes(requestedTypes),
	); err != nil {
		return GetDeliveryOptionsQuery{}, err
	}

	query.weightKg = weightKg
	query.timestamp = timestamp
	if query.timestamp.IsZero() {
		query.timestamp = time.Now()
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryOptionsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryOptionsQueryIsNotConstructed)
}

// Pickup returns the raw pickup address from the query.
func (q GetDeliveryOptionsQuery) Pickup() string {
	return q.pickup
}

// Dropoff returns the raw drop-off address from the query.
func (q GetDeliveryOptionsQuery) Dropoff() string {
	return q.dropoff
}

// WeightKg returns the parcel weight from the query.
func (q GetDeliveryOptionsQuery) WeightKg() decimal.Decimal {
	return q.weightKg
}

// RequestedTypes returns the service levels to quote.
func (q GetDeliveryOptionsQuery) RequestedTypes() []quote.DeliveryType {
	return q.requestedTypes
}

// Timestamp returns the time-of-request used for pricing.
func (q GetDeliveryOptionsQuery) Timestamp() time.Time {
	return q.timestamp
}

func (q *GetDeliveryOptionsQuery) setPickup(pickup string) error {
	if pickup == "" {
		return ErrPickupIsRequired
	}

	q.pickup = pickup
	return nil
}

func (q *GetDeliveryOptionsQuery) setDropoff(dropoff string) error {
	if dropoff == "" {
		return ErrDropoffIsRequired
	}

	q.dropoff = dropoff
	return nil
}

func (q *GetDeliveryOptionsQuery) setRequestedTypes(requestedTypes []quote.DeliveryType) error {
	if len(requestedTypes) == 0 {
		q.requestedTypes = []quote.DeliveryType{quote.Standard, quote.Express}
		return nil
	}

	for _, deliveryType := range requestedTypes {
		if err := deliveryType.Validate(); err != nil {
			return err
		}
	}

	q.requestedTypes = requestedTypes
	return nil
}

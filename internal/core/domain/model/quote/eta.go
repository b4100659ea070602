package quote

import (
	"math"

	"github.com/shopspring/decimal"

	"quoting/internal/core/domain/model/route"
)

// ETA is the estimated delivery window for one option: a base transit time
// in hours, a customer-facing label, and a numeric estimate in days.
//
// Base hours are banded by distance, then sped up for express service and
// for intracity routes where pickup and drop-off share a courier pool.
type ETA struct {
	hours int
	label string
}

// EstimateETA derives the delivery window from the travel distance, the
// route category, and the service level.
func EstimateETA(distanceKm decimal.Decimal, category route.Category, deliveryType DeliveryType) ETA {
	km, _ := distanceKm.Float64()

	hours := 48
	switch {
	case km < 10:
		hours = 4
	case km < 25:
		hours = 8
	case km < 50:
		hours = 12
	case km < 100:
		hours = 24
	}

	if deliveryType == Express {
		hours = int(math.Ceil(float64(hours) * 0.5))
	}
	if category == route.Intracity {
		hours = int(math.Ceil(float64(hours) * 0.8))
	}

	return ETA{hours: hours, label: renderLabel(hours)}
}

func renderLabel(hours int) string {
	switch {
	case hours <= 4:
		return "Same Day"
	case hours <= 24:
		return "Next Day"
	case hours <= 48:
		return "2 Days"
	case hours <= 72:
		return "3 Days"
	default:
		return "3-5 Days"
	}
}

// Hours returns the estimated transit time in hours.
func (e ETA) Hours() int {
	return e.hours
}

// Label returns the customer-facing window, e.g. "Next Day".
func (e ETA) Label() string {
	return e.label
}

// EstimatedDays returns the window as whole days, minimum 1.
func (e ETA) EstimatedDays() int {
	days := (e.hours + 23) / 24
	if days < 1 {
		days = 1
	}
	return days
}

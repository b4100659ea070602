package route

import (
	"errors"

	"quoting/internal/pkg/errs"
	"quoting/internal/pkg/guard"
)

// ErrRouteIsNotConstructed is returned when using a zero-value Route.
var ErrRouteIsNotConstructed = errs.NewValueIsRequiredError(
	"Route must be created via NewRoute")

// Route is the categorized pickup/drop-off pair attached to every quote.
// It is derived per request and never persisted on its own.
//
// The low-confidence flag marks routes where a city could not be resolved and
// the categorizer degraded to the coarsest determinable category; callers
// surface this on the quote rather than silently trusting the classification.
type Route struct { //nolint:recvcheck //using for validation
	category      Category
	from          string
	to            string
	lowConfidence bool

	guard guard.ConstructorGuard
}

// NewRoute creates a Route with display labels for both endpoints.
// The category must be one of the valid route categories.
func NewRoute(category Category, from string, to string, lowConfidence bool) (Route, error) {
	r := Route{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(r.setCategory(category), r.setEndpoints(from, to)); err != nil {
		return Route{}, err
	}
	r.lowConfidence = lowConfidence

	return r, nil
}

// Validate ensures the Route was created through its constructor.
func (r Route) Validate() error {
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// Category returns the geographic classification of the route.
func (r Route) Category() Category {
	return r.category
}

// From returns the display label for the pickup endpoint.
func (r Route) From() string {
	return r.from
}

// To returns the display label for the drop-off endpoint.
func (r Route) To() string {
	return r.to
}

// LowConfidence reports whether the classification degraded because a city
// was unresolved on either side.
func (r Route) LowConfidence() bool {
	return r.lowConfidence
}

func (r *Route) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	r.category = category
	return nil
}

func (r *Route) setEndpoints(from string, to string) error {
	r.from = from
	r.to = to
	return nil
}

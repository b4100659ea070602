package ports

import (
	"context"
	"errors"

	"quoting/internal/core/domain/model/address"
	"quoting/internal/core/domain/model/route"
)

// ErrRouteNotFound is returned when the mapping capability cannot resolve
// a distance between two addresses, including timeouts. Callers must treat
// this as a hard stop for quoting; no fee can be honestly computed without
// a distance.
var ErrRouteNotFound = errors.New("route not found")

// DistanceResolver is the contract for the external mapping capability.
// It is the sole network-bound step in a quoting operation and must be
// invoked with a request timeout.
type DistanceResolver interface {
	// ResolveDistance returns the travel distance and estimated transit
	// duration between two addresses, or ErrRouteNotFound when the mapping
	// capability cannot resolve the pair.
	ResolveDistance(ctx context.Context, origin, destination address.Address) (route.Distance, error)
}

// Package services provides domain services that orchestrate quoting
// decisions across multiple domain entities. It implements business logic
// that spans aggregates and value objects rather than belonging to any
// single one.
//
// The package includes:
//   - RouteCategorizer: classifies a pickup/drop-off pair by geography
//   - PartnerMatcher: selects the carriers eligible to quote a route
//   - PricingEngine: computes a priced option per candidate and service level
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services

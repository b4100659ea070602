// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"quoting/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CarrierRepoFactory provides access to the carrier repository within a transaction.
	CarrierRepoFactory interface {
		CarrierRepository() ports.CarrierRepository
	}

	// PricingConfigRepoFactory provides access to the pricing configuration
	// repository within a transaction.
	PricingConfigRepoFactory interface {
		PricingConfigRepository() ports.PricingConfigRepository
	}

	// CarrierUoW manages transactions for carrier-only operations.
	CarrierUoW interface {
		TxManager
		CarrierRepoFactory
	}

	// CarrierUoWFactory creates new carrier unit of work instances.
	CarrierUoWFactory interface {
		Create() CarrierUoW
	}

	// PricingConfigUoW manages transactions for pricing configuration updates.
	PricingConfigUoW interface {
		TxManager
		PricingConfigRepoFactory
	}

	// PricingConfigUoWFactory creates new pricing configuration unit of work instances.
	PricingConfigUoWFactory interface {
		Create() PricingConfigUoW
	}
)

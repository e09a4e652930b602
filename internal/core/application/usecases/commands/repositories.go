// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler declares the narrowest composite it needs, so tests mock only
// the repositories a command actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PartnerRepoFactory provides access to the partner repository within a transaction.
	PartnerRepoFactory interface {
		PartnerRepository() ports.PartnerRepository
	}

	// AreaRepoFactory provides access to the service area repository within a transaction.
	AreaRepoFactory interface {
		ServiceAreaRepository() ports.ServiceAreaRepository
	}

	// VendorRepoFactory provides access to the vendor repository within a transaction.
	VendorRepoFactory interface {
		VendorRepository() ports.VendorRepository
	}

	// SlotRepoFactory provides access to the meal slot repository within a transaction.
	SlotRepoFactory interface {
		MealSlotRepository() ports.MealSlotRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages transactions for order creation, which reads
	// vendor and meal slot state alongside the order write.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		VendorRepoFactory
		SlotRepoFactory
	}

	// CreateOrderUoWFactory creates new order creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// AcceptOrderUoW manages transactions for courier acceptance, which
	// updates both the order and the accepting partner.
	AcceptOrderUoW interface {
		TxManager
		OrderRepoFactory
		PartnerRepoFactory
	}

	// AcceptOrderUoWFactory creates new acceptance unit of work instances.
	AcceptOrderUoWFactory interface {
		Create() AcceptOrderUoW
	}

	// MatchingUoW manages transactions for a matching round, which reads the
	// order, its vendor, the vendor's service area, and the area's partners.
	MatchingUoW interface {
		TxManager
		OrderRepoFactory
		PartnerRepoFactory
		VendorRepoFactory
		AreaRepoFactory
	}

	// MatchingUoWFactory creates new matching unit of work instances.
	MatchingUoWFactory interface {
		Create() MatchingUoW
	}

	// AreaUoW manages transactions for service area administration.
	AreaUoW interface {
		TxManager
		AreaRepoFactory
	}

	// AreaUoWFactory creates new area unit of work instances.
	AreaUoWFactory interface {
		Create() AreaUoW
	}

	// SlotUoW manages transactions for meal slot administration, which
	// verifies the owning vendor exists.
	SlotUoW interface {
		TxManager
		SlotRepoFactory
		VendorRepoFactory
	}

	// SlotUoWFactory creates new slot unit of work instances.
	SlotUoWFactory interface {
		Create() SlotUoW
	}

	// PartnerUoW manages transactions for partner-only operations.
	PartnerUoW interface {
		TxManager
		PartnerRepoFactory
	}

	// PartnerUoWFactory creates new partner unit of work instances.
	PartnerUoWFactory interface {
		Create() PartnerUoW
	}
)

// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the fulfillment system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - ServiceAreaResolver: resolves geographic points to service areas with a
//     read-through cache
//   - FulfillmentPolicy: validates that a vendor can fulfill an order via a
//     requested method
//   - CandidateSelector: selects delivery partners eligible for an order
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services

// Package order implements the Order aggregate and its lifecycle state machine.
//
// An order moves through a fixed set of statuses from Pending to Delivered,
// with Cancelled and Rejected as terminal side branches. Every status change
// is validated against the allowed successor set and recorded in an
// append-only history, so the current status is always the status of the
// last transition entry.
//
// The aggregate also owns courier assignment: a courier can be attached to
// an order exactly once, while it is ready for pickup. The persistence layer
// backs this rule with a conditional update so that two concurrent
// acceptance attempts cannot both succeed.
package order

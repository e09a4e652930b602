// Package courier implements the DeliveryPartner aggregate: an agent with an
// availability status and a live location who fulfills delivery orders.
//
// A partner's location is only meaningful while they are on shift; it is
// cleared when the partner goes offline, and matching skips partners without
// a current location. Availability transitions are driven by order
// acceptance and completion.
package courier

package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// FulfillmentMethod describes how the customer receives the order.
type FulfillmentMethod int

const (
	// MethodUnknown represents an invalid or undefined fulfillment method.
	MethodUnknown FulfillmentMethod = iota

	// EatIn means the customer eats at the vendor's premises.
	EatIn

	// Pickup means the customer collects the order themselves.
	Pickup

	// Delivery means a courier brings the order to a delivery address.
	Delivery
)

// getMethodStrings returns a map of FulfillmentMethod values to their string representations.
func getMethodStrings() map[FulfillmentMethod]string {
	return map[FulfillmentMethod]string{
		MethodUnknown: "Unknown",
		EatIn:         "EatIn",
		Pickup:        "Pickup",
		Delivery:      "Delivery",
	}
}

// Validate checks if the FulfillmentMethod value is one of the defined methods.
func (m FulfillmentMethod) Validate() error {
	switch m {
	case EatIn, Pickup, Delivery:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("fulfillment method is invalid",
			fmt.Errorf("%d is not a valid fulfillment method", m))
	}
}

// String returns the human-readable name of the fulfillment method.
// This method implements the fmt.Stringer interface.
func (m FulfillmentMethod) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

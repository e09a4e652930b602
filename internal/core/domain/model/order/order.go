package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrAlreadyAssigned is the unwrap target for courier assignment conflicts.
	ErrAlreadyAssigned = errors.New("order is already assigned to a courier")

	// ErrDeliveryAddressIsRequired is returned when creating a Delivery order without an address.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("delivery address")

	// ErrScheduleNotAllowed is returned when attaching a meal slot to an order
	// that has already left the Pending status.
	ErrScheduleNotAllowed = errors.New("meal slot can only be attached while the order is pending")

	// ErrHistoryIsInconsistent is returned when restoring an order whose history
	// contains a transition that the status machine does not allow.
	ErrHistoryIsInconsistent = errors.New("order history contains an invalid transition")
)

// AlreadyAssignedError reports a losing courier acceptance attempt: the order
// already has an assigned courier. It unwraps to ErrAlreadyAssigned.
type AlreadyAssignedError struct {
	OrderID   kernel.UUID
	CourierID kernel.UUID
}

func (e *AlreadyAssignedError) Error() string {
	return fmt.Sprintf("order %s is already assigned to courier %s", e.OrderID, e.CourierID)
}

func (e *AlreadyAssignedError) Unwrap() error {
	return ErrAlreadyAssigned
}

// HistoryEntry is a single append-only record of the order's status history.
// Entries whose status equals the previous entry's status are annotations
// (notes), not transitions.
type HistoryEntry struct {
	status Status
	at     time.Time
	note   string
}

// NewHistoryEntry creates a history entry. Used by the aggregate and by the
// persistence layer when restoring orders.
func NewHistoryEntry(status Status, at time.Time, note string) (HistoryEntry, error) {
	if err := status.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	return HistoryEntry{status: status, at: at, note: note}, nil
}

// Status returns the status recorded by the entry.
func (h HistoryEntry) Status() Status { return h.status }

// At returns the time the entry was recorded.
func (h HistoryEntry) At() time.Time { return h.at }

// Note returns the optional free-form note attached to the entry.
func (h HistoryEntry) Note() string { return h.note }

// DeliveryWindow is the customer's preferred delivery time window.
type DeliveryWindow struct {
	Start kernel.TimeOfDay
	End   kernel.TimeOfDay
}

// Order is the aggregate root for a placed order. It owns the order's status
// machine, its append-only status history, and courier assignment.
//
// Invariants:
//   - status always equals the status of the last history entry
//   - consecutive history entries with different statuses are connected by a
//     single valid transition
//   - a courier is assigned at most once, while the order is ReadyForPickup
//   - Delivery orders always carry a delivery address
//
// Orders are never deleted; they only reach a terminal status.
type Order struct {
	id        kernel.UUID
	vendorID  kernel.UUID
	method    FulfillmentMethod
	status    Status
	address   *DeliveryAddress
	courierID *kernel.UUID

	mealSlotID      *kernel.UUID
	preferredWindow *DeliveryWindow

	history []HistoryEntry

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with a seeded history entry.
//
// A Delivery order must carry a delivery address; for Pickup and EatIn orders
// the address is optional and ignored for routing purposes.
func NewOrder(id kernel.UUID, vendorID kernel.UUID, method FulfillmentMethod, address *DeliveryAddress) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setVendorID(vendorID),
		o.setMethod(method),
		o.setAddress(method, address),
	); err != nil {
		return nil, err
	}

	o.history = []HistoryEntry{{status: Pending, at: time.Now()}}
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence.
// The history must be non-empty, its last entry's status must equal status,
// and every consecutive pair must be either a same-status annotation or a
// valid transition. Violations fail with ErrHistoryIsInconsistent.
func RestoreOrder(
	id kernel.UUID,
	vendorID kernel.UUID,
	method FulfillmentMethod,
	status Status,
	address *DeliveryAddress,
	courierID *kernel.UUID,
	mealSlotID *kernel.UUID,
	preferredWindow *DeliveryWindow,
	history []HistoryEntry,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setVendorID(vendorID),
		o.setMethod(method),
		o.setAddress(method, address),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = status

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		o.courierID = courierID
	}

	if mealSlotID != nil {
		if err := mealSlotID.Validate(); err != nil {
			return nil, err
		}
		o.mealSlotID = mealSlotID
	}
	o.preferredWindow = preferredWindow

	if err := validateHistory(status, history); err != nil {
		return nil, err
	}
	o.history = history

	return o, nil
}

// validateHistory checks the append-only history invariant.
func validateHistory(current Status, history []HistoryEntry) error {
	if len(history) == 0 {
		return fmt.Errorf("%w: history is empty", ErrHistoryIsInconsistent)
	}

	for i := 1; i < len(history); i++ {
		prev, next := history[i-1].status, history[i].status
		if prev == next {
			continue // annotation entry
		}
		if !prev.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s -> %s", ErrHistoryIsInconsistent, prev, next)
		}
	}

	if last := history[len(history)-1].status; last != current {
		return fmt.Errorf("%w: status %s does not match last history entry %s",
			ErrHistoryIsInconsistent, current, last)
	}

	return nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// VendorID returns the identifier of the vendor preparing the order.
func (o *Order) VendorID() kernel.UUID { return o.vendorID }

// Method returns the order's fulfillment method.
func (o *Order) Method() FulfillmentMethod { return o.method }

// Status returns the current status of the order.
func (o *Order) Status() Status { return o.status }

// Address returns the delivery address, or nil for orders without one.
func (o *Order) Address() *DeliveryAddress { return o.address }

// Courier returns the assigned courier's ID, or nil if no courier is assigned.
func (o *Order) Courier() *kernel.UUID { return o.courierID }

// MealSlot returns the referenced meal slot's ID, or nil.
func (o *Order) MealSlot() *kernel.UUID { return o.mealSlotID }

// PreferredWindow returns the customer's preferred delivery window, or nil.
func (o *Order) PreferredWindow() *DeliveryWindow { return o.preferredWindow }

// History returns a copy of the order's append-only status history.
func (o *Order) History() []HistoryEntry {
	out := make([]HistoryEntry, len(o.history))
	copy(out, o.history)
	return out
}

// Schedule attaches a meal slot reference and preferred delivery window.
// Only allowed while the order is Pending; the scheduler is consulted at
// order creation, never during fulfillment.
func (o *Order) Schedule(mealSlotID kernel.UUID, window DeliveryWindow) error {
	if err := mealSlotID.Validate(); err != nil {
		return err
	}
	if o.status != Pending {
		return ErrScheduleNotAllowed
	}

	o.mealSlotID = &mealSlotID
	o.preferredWindow = &window
	return nil
}

// ValidateTransition reports whether requested is a valid next status.
// It never mutates state.
func (o *Order) ValidateTransition(requested Status) error {
	return o.status.ValidateTransition(requested)
}

// TransitionTo applies a status transition: it validates the transition,
// appends a history entry and updates the status. The two writes happen in
// one step on the aggregate, so a partially applied transition is not
// observable; callers serialize concurrent access per order.
//
// Invalid transitions are reported with an InvalidTransitionError carrying
// both statuses and leave the order untouched.
func (o *Order) TransitionTo(requested Status, note string) error {
	if err := o.status.ValidateTransition(requested); err != nil {
		return err
	}

	o.history = append(o.history, HistoryEntry{status: requested, at: time.Now(), note: note})
	o.status = requested
	return nil
}

// AppendNote records an annotation entry carrying the current status.
// Notes do not count as transitions; they exist for markers such as
// "requires manual assignment".
func (o *Order) AppendNote(note string) {
	o.history = append(o.history, HistoryEntry{status: o.status, at: time.Now(), note: note})
}

// AssignCourier attaches a courier to the order and advances it to
// AssignedToDelivery. Exactly one assignment may succeed: if a courier is
// already attached, the attempt fails with an AlreadyAssignedError naming
// the winner. Assignment is only valid while the order is ReadyForPickup.
//
// The in-memory check here is backed by a conditional update at the storage
// layer, so two concurrent acceptances racing on stale copies of the same
// order still resolve to a single winner.
func (o *Order) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if o.courierID != nil {
		return &AlreadyAssignedError{OrderID: o.id, CourierID: *o.courierID}
	}

	if err := o.TransitionTo(AssignedToDelivery, fmt.Sprintf("assigned to courier %s", courierID)); err != nil {
		return err
	}

	o.courierID = &courierID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	o.vendorID = vendorID
	return nil
}

func (o *Order) setMethod(method FulfillmentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.method = method
	return nil
}

func (o *Order) setAddress(method FulfillmentMethod, address *DeliveryAddress) error {
	if address != nil {
		if err := address.Validate(); err != nil {
			return err
		}
		o.address = address
		return nil
	}

	if method == Delivery {
		return ErrDeliveryAddressIsRequired
	}
	return nil
}

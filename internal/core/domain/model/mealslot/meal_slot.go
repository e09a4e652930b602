// Package mealslot implements the MealSlot aggregate: a vendor-defined
// ordering window with a cutoff time and deterministic delivery-window
// generation.
//
// All times are minute-granular times of day on a single calendar day.
// Slots spanning midnight (for example 23:00-01:00) are not supported: the
// ordering invariant cutoff < start < end makes them unconstructible. This
// is a deliberate limitation carried over from the product's semantics, not
// an oversight.
package mealslot

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrSlotIsNotConstructed is returned when using an improperly initialized MealSlot.
	ErrSlotIsNotConstructed = errors.New("MealSlot must be created via NewMealSlot constructor")

	// ErrCutoffNotBeforeStart is returned when cutoffTime is not strictly
	// before startTime. Equal values violate the rule too.
	ErrCutoffNotBeforeStart = errs.NewValueIsInvalidError("cutoffTime must be before startTime")

	// ErrStartNotBeforeEnd is returned when startTime is not strictly before endTime.
	ErrStartNotBeforeEnd = errs.NewValueIsInvalidError("startTime must be before endTime")

	// ErrDurationIsInvalid is returned for a non-positive window duration.
	ErrDurationIsInvalid = errs.NewValueIsInvalidError("timeWindowDuration must be greater than 0")

	// ErrWindowOutsideSlot is returned when a requested delivery window does
	// not fit inside the slot's [startTime, endTime] interval.
	ErrWindowOutsideSlot = errs.NewValueIsInvalidError("requested window is outside the slot")

	// ErrWindowBoundsInverted is returned when a requested delivery window
	// does not start before it ends.
	ErrWindowBoundsInverted = errs.NewValueIsInvalidError("requested window start must be before its end")
)

// Window is a single delivery sub-window generated from a slot.
type Window struct {
	Start kernel.TimeOfDay
	End   kernel.TimeOfDay
}

// ValidateCutoffBeforeStart reports whether cutoff is strictly before start.
// Equal values fail the rule.
func ValidateCutoffBeforeStart(cutoff, start kernel.TimeOfDay) bool {
	return cutoff.Before(start)
}

// MealSlot is a vendor-scoped ordering window. Orders against the slot must
// be placed before cutoffTime; deliveries happen in sub-windows of
// durationMinutes between startTime and endTime.
//
// Deactivation is a soft flag, never physical deletion, since historic
// orders reference the slot.
type MealSlot struct {
	id              kernel.UUID
	vendorID        kernel.UUID
	startTime       kernel.TimeOfDay
	endTime         kernel.TimeOfDay
	cutoffTime      kernel.TimeOfDay
	durationMinutes int
	isActive        bool

	isConstructed bool
}

// NewMealSlot creates a MealSlot from boundary "HH:MM" strings.
//
// Validation happens in two stages with a distinct error per violated rule,
// so callers can localize the exact failure:
//  1. each time field must parse as strict HH:MM (the returned error names
//     the offending field),
//  2. the ordering invariant cutoffTime < startTime < endTime must hold, and
//     the window duration must be positive.
func NewMealSlot(
	id kernel.UUID,
	vendorID kernel.UUID,
	startTime string,
	endTime string,
	cutoffTime string,
	durationMinutes int,
) (*MealSlot, error) {
	if err := errors.Join(id.Validate(), vendorID.Validate()); err != nil {
		return nil, err
	}

	start, err := kernel.ParseTimeOfDay("startTime", startTime)
	if err != nil {
		return nil, err
	}
	end, err := kernel.ParseTimeOfDay("endTime", endTime)
	if err != nil {
		return nil, err
	}
	cutoff, err := kernel.ParseTimeOfDay("cutoffTime", cutoffTime)
	if err != nil {
		return nil, err
	}

	if !ValidateCutoffBeforeStart(cutoff, start) {
		return nil, ErrCutoffNotBeforeStart
	}
	if !start.Before(end) {
		return nil, ErrStartNotBeforeEnd
	}
	if durationMinutes <= 0 {
		return nil, ErrDurationIsInvalid
	}

	return &MealSlot{
		id:              id,
		vendorID:        vendorID,
		startTime:       start,
		endTime:         end,
		cutoffTime:      cutoff,
		durationMinutes: durationMinutes,
		isActive:        true,
		isConstructed:   true,
	}, nil
}

// RestoreMealSlot reconstructs a MealSlot from persistence using
// minutes-since-midnight values.
func RestoreMealSlot(
	id kernel.UUID,
	vendorID kernel.UUID,
	startMinutes int,
	endMinutes int,
	cutoffMinutes int,
	durationMinutes int,
	isActive bool,
) (*MealSlot, error) {
	if err := errors.Join(id.Validate(), vendorID.Validate()); err != nil {
		return nil, err
	}

	start, err := kernel.TimeOfDayFromMinutes(startMinutes)
	if err != nil {
		return nil, err
	}
	end, err := kernel.TimeOfDayFromMinutes(endMinutes)
	if err != nil {
		return nil, err
	}
	cutoff, err := kernel.TimeOfDayFromMinutes(cutoffMinutes)
	if err != nil {
		return nil, err
	}

	if !ValidateCutoffBeforeStart(cutoff, start) {
		return nil, ErrCutoffNotBeforeStart
	}
	if !start.Before(end) {
		return nil, ErrStartNotBeforeEnd
	}
	if durationMinutes <= 0 {
		return nil, ErrDurationIsInvalid
	}

	return &MealSlot{
		id:              id,
		vendorID:        vendorID,
		startTime:       start,
		endTime:         end,
		cutoffTime:      cutoff,
		durationMinutes: durationMinutes,
		isActive:        isActive,
		isConstructed:   true,
	}, nil
}

// Validate ensures the MealSlot was properly constructed.
func (s *MealSlot) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSlotIsNotConstructed
	}
	return nil
}

// ID returns the slot's unique identifier.
func (s *MealSlot) ID() kernel.UUID { return s.id }

// VendorID returns the owning vendor's identifier.
func (s *MealSlot) VendorID() kernel.UUID { return s.vendorID }

// StartTime returns the slot's delivery start time.
func (s *MealSlot) StartTime() kernel.TimeOfDay { return s.startTime }

// EndTime returns the slot's delivery end time.
func (s *MealSlot) EndTime() kernel.TimeOfDay { return s.endTime }

// CutoffTime returns the latest time of day an order may be placed.
func (s *MealSlot) CutoffTime() kernel.TimeOfDay { return s.cutoffTime }

// DurationMinutes returns the length of each generated delivery window.
func (s *MealSlot) DurationMinutes() int { return s.durationMinutes }

// IsActive reports whether the slot currently accepts orders.
func (s *MealSlot) IsActive() bool { return s.isActive }

// Deactivate soft-disables the slot. Idempotent.
func (s *MealSlot) Deactivate() { s.isActive = false }

// Activate re-enables the slot. Idempotent.
func (s *MealSlot) Activate() { s.isActive = true }

// DeliveryWindows generates the slot's delivery sub-windows in order.
// It walks from startTime in steps of the window duration and emits a
// window only while windowStart+duration <= endTime, so a trailing partial
// window is dropped. The result is a pure function of the slot.
func (s *MealSlot) DeliveryWindows() []Window {
	windows := make([]Window, 0)

	current := s.startTime
	for {
		windowEnd, ok := current.AddMinutes(s.durationMinutes)
		if !ok || windowEnd.After(s.endTime) {
			break
		}
		windows = append(windows, Window{Start: current, End: windowEnd})
		current = windowEnd
	}

	return windows
}

// IsAvailable reports whether an order can be placed against the slot at
// the given time of day: the slot must be active and now must be strictly
// before the cutoff. Both operands are same-day times; availability across
// midnight is not supported.
func (s *MealSlot) IsAvailable(now kernel.TimeOfDay) bool {
	return s.isActive && now.Before(s.cutoffTime)
}

// ValidateDeliveryWindow checks a customer-requested delivery window given
// as "HH:MM" bounds: both must parse, the window must lie inside
// [startTime, endTime], and it must start before it ends.
func (s *MealSlot) ValidateDeliveryWindow(reqStart, reqEnd string) (Window, error) {
	start, err := kernel.ParseTimeOfDay("requestedStart", reqStart)
	if err != nil {
		return Window{}, err
	}
	end, err := kernel.ParseTimeOfDay("requestedEnd", reqEnd)
	if err != nil {
		return Window{}, err
	}

	if !start.Before(end) {
		return Window{}, ErrWindowBoundsInverted
	}
	if start.Before(s.startTime) || s.endTime.Before(end) {
		return Window{}, ErrWindowOutsideSlot
	}

	return Window{Start: start, End: end}, nil
}

package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

const minutesPerDay = 24 * 60

// TimeOfDay represents a minute-granular time of day as minutes since midnight.
// It is the internal model for every "HH:MM" value the application accepts, so
// ordering comparisons are plain integer comparisons instead of relying on
// lexicographic ordering of zero-padded strings.
//
// TimeOfDay carries no date and no timezone. Comparisons are only meaningful
// between values that belong to the same day; intervals crossing midnight
// cannot be expressed with this type.
//
// The zero value is a valid time (00:00).
type TimeOfDay struct {
	minutes int
}

// ParseTimeOfDay parses a strict "HH:MM" string into a TimeOfDay.
// The accepted shape is exactly two digits, a colon, and two digits, with
// hours 00-23 and minutes 00-59. Single-digit hours, out-of-range fields,
// and non-numeric input are rejected with a ValueIsInvalidError naming the
// parameter, so callers can report which field was malformed.
func ParseTimeOfDay(paramName, s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%q is not in HH:MM format", s))
	}

	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause(paramName,
				fmt.Errorf("%q is not in HH:MM format", s))
		}
	}

	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')

	if hours > 23 {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("hours %02d are out of range 00-23", hours))
	}
	if minutes > 59 {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("minutes %02d are out of range 00-59", minutes))
	}

	return TimeOfDay{minutes: hours*60 + minutes}, nil
}

// IsValidTimeFormat reports whether s is a strict "HH:MM" time string.
func IsValidTimeFormat(s string) bool {
	_, err := ParseTimeOfDay("time", s)
	return err == nil
}

// TimeOfDayFromMinutes creates a TimeOfDay from minutes since midnight.
// Values outside [0, 1439] are rejected.
func TimeOfDayFromMinutes(m int) (TimeOfDay, error) {
	if m < 0 || m >= minutesPerDay {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minutes", m, 0, minutesPerDay-1)
	}
	return TimeOfDay{minutes: m}, nil
}

// Minutes returns the number of minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.minutes
}

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

// After reports whether t is strictly later than other.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.minutes > other.minutes
}

// IsEqual reports whether t and other denote the same minute of the day.
func (t TimeOfDay) IsEqual(other TimeOfDay) bool {
	return t.minutes == other.minutes
}

// AddMinutes returns the time d minutes later, and whether the result still
// falls within the same day. Results that would cross midnight are reported
// as out of day rather than wrapped.
func (t TimeOfDay) AddMinutes(d int) (TimeOfDay, bool) {
	m := t.minutes + d
	if m < 0 || m >= minutesPerDay {
		return TimeOfDay{}, false
	}
	return TimeOfDay{minutes: m}, true
}

// String returns the zero-padded "HH:MM" representation.
// This method implements the fmt.Stringer interface.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

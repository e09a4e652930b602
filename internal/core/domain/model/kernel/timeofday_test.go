package kernel_test

import (
	"fmt"
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	t.Run("should parse valid HH:MM strings", func(t *testing.T) {
		testCases := []struct {
			input   string
			minutes int
		}{
			{"00:00", 0},
			{"08:30", 510},
			{"12:00", 720},
			{"23:59", 1439},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				tod, err := kernel.ParseTimeOfDay("time", tc.input)

				require.NoError(t, err)
				assert.Equal(t, tc.minutes, tod.Minutes())
				assert.Equal(t, tc.input, tod.String())
			})
		}
	})

	t.Run("should reject malformed strings", func(t *testing.T) {
		invalid := []string{
			"",
			"9:00",    // single-digit hour
			"09:0",    // single-digit minute
			"24:00",   // hour out of range
			"12:60",   // minute out of range
			"12.30",   // wrong separator
			"ab:cd",   // non-numeric
			"12:30:00",
			" 12:30",
			"12:3a",
		}

		for _, s := range invalid {
			t.Run(fmt.Sprintf("should reject %q", s), func(t *testing.T) {
				_, err := kernel.ParseTimeOfDay("startTime", s)

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Contains(t, err.Error(), "startTime")
			})
		}
	})
}

func TestIsValidTimeFormat(t *testing.T) {
	t.Run("should accept strict HH:MM only", func(t *testing.T) {
		assert.True(t, kernel.IsValidTimeFormat("09:00"))
		assert.True(t, kernel.IsValidTimeFormat("23:59"))
		assert.False(t, kernel.IsValidTimeFormat("9:00"))
		assert.False(t, kernel.IsValidTimeFormat("24:00"))
		assert.False(t, kernel.IsValidTimeFormat("12:61"))
		assert.False(t, kernel.IsValidTimeFormat("noon"))
	})
}

func TestTimeOfDayFromMinutes(t *testing.T) {
	t.Run("should accept values within the day", func(t *testing.T) {
		tod, err := kernel.TimeOfDayFromMinutes(510)

		require.NoError(t, err)
		assert.Equal(t, "08:30", tod.String())
	})

	t.Run("should reject values outside the day", func(t *testing.T) {
		for _, m := range []int{-1, 1440, 100000} {
			_, err := kernel.TimeOfDayFromMinutes(m)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}

func TestTimeOfDay_Comparisons(t *testing.T) {
	early, err := kernel.ParseTimeOfDay("time", "08:00")
	require.NoError(t, err)
	late, err := kernel.ParseTimeOfDay("time", "08:45")
	require.NoError(t, err)

	t.Run("should order values within the same day", func(t *testing.T) {
		assert.True(t, early.Before(late))
		assert.False(t, late.Before(early))
		assert.True(t, late.After(early))
		assert.False(t, early.Before(early))
	})

	t.Run("should compare equality by minute", func(t *testing.T) {
		same, err := kernel.ParseTimeOfDay("time", "08:00")
		require.NoError(t, err)

		assert.True(t, early.IsEqual(same))
		assert.False(t, early.IsEqual(late))
	})
}

func TestTimeOfDay_AddMinutes(t *testing.T) {
	t.Run("should add within the same day", func(t *testing.T) {
		start, err := kernel.ParseTimeOfDay("time", "12:00")
		require.NoError(t, err)

		end, ok := start.AddMinutes(60)

		require.True(t, ok)
		assert.Equal(t, "13:00", end.String())
	})

	t.Run("should report crossing midnight instead of wrapping", func(t *testing.T) {
		late, err := kernel.ParseTimeOfDay("time", "23:30")
		require.NoError(t, err)

		_, ok := late.AddMinutes(60)

		assert.False(t, ok)
	})
}

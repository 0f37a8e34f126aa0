//go:build unit

package ground_test

import (
	"testing"

	"turfbook/internal/domain/ground"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOperatingHours(t *testing.T) {
	cases := []struct {
		name  string
		open  string
		close string
		errIs error
	}{
		{name: "normal window", open: "09:00", close: "22:00"},
		{name: "single slot window", open: "09:00", close: "10:00"},
		{name: "open equals close", open: "09:00", close: "09:00", errIs: ground.ErrInvalidOperatingHrs},
		{name: "open after close", open: "18:00", close: "09:00", errIs: ground.ErrInvalidOperatingHrs},
		{name: "malformed open time", open: "9am", close: "18:00", errIs: ground.ErrInvalidTimeOfDay},
		{name: "malformed close time", open: "09:00", close: "25:61", errIs: ground.ErrInvalidTimeOfDay},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ground.NewOperatingHours(c.open, c.close)
			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestSlots(t *testing.T) {
	t.Run("covers the whole window in hour steps", func(t *testing.T) {
		hours, err := ground.NewOperatingHours("09:00", "12:00")
		require.NoError(t, err)

		expected := []ground.Slot{
			{Start: "09:00", End: "10:00"},
			{Start: "10:00", End: "11:00"},
			{Start: "11:00", End: "12:00"},
		}
		if diff := cmp.Diff(expected, hours.Slots()); diff != "" {
			t.Errorf("Slots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("drops a trailing partial hour", func(t *testing.T) {
		hours, err := ground.NewOperatingHours("09:00", "12:30")
		require.NoError(t, err)

		slots := hours.Slots()
		require.Len(t, slots, 3)
		assert.Equal(t, "12:00", slots[len(slots)-1].End)
	})

	t.Run("deterministic for the same window", func(t *testing.T) {
		hours, err := ground.NewOperatingHours("06:00", "23:00")
		require.NoError(t, err)

		first := hours.Slots()
		second := hours.Slots()
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Slots not deterministic (-first +second):\n%s", diff)
		}
	})

	t.Run("window shorter than one slot yields nothing", func(t *testing.T) {
		hours, err := ground.NewOperatingHours("09:00", "09:30")
		require.NoError(t, err)
		assert.Empty(t, hours.Slots())
	})
}

func TestContainsSlot(t *testing.T) {
	hours, err := ground.NewOperatingHours("09:00", "17:00")
	require.NoError(t, err)

	cases := []struct {
		name     string
		start    string
		end      string
		expected bool
	}{
		{name: "first slot of the day", start: "09:00", end: "10:00", expected: true},
		{name: "last slot of the day", start: "16:00", end: "17:00", expected: true},
		{name: "mid-day slot", start: "12:00", end: "13:00", expected: true},
		{name: "misaligned start", start: "09:30", end: "10:30", expected: false},
		{name: "two hour span", start: "09:00", end: "11:00", expected: false},
		{name: "zero length", start: "10:00", end: "10:00", expected: false},
		{name: "before opening", start: "08:00", end: "09:00", expected: false},
		{name: "past closing", start: "17:00", end: "18:00", expected: false},
		{name: "straddles closing", start: "16:30", end: "17:30", expected: false},
		{name: "malformed start", start: "nine", end: "10:00", expected: false},
		{name: "malformed end", start: "09:00", end: "ten", expected: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, hours.ContainsSlot(c.start, c.end))
		})
	}
}

package ground

import (
	"fmt"
	"time"

	"turfbook/internal/pkg/errs"
)

// All bookable intervals are one hour; shorter remainders at the end of the
// operating window are not offered.
const SlotDurationMinutes = 60

var (
	ErrInvalidTimeOfDay    = errs.New("invalid time of day, expected HH:MM")
	ErrInvalidOperatingHrs = errs.New("operating hours start must be before end")
)

// Slot is a bookable interval within a ground's operating hours, right-open,
// formatted "HH:MM" like the operating hours it derives from.
type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// OperatingHours is the daily open interval of a ground. It is the single
// producer of candidate slots: every booking start/end must be one of the
// pairs returned by Slots, which keeps availability checks exact-match
// (generated intervals are identical or disjoint, never partially
// overlapping).
type OperatingHours struct {
	openMin  int
	closeMin int
}

func NewOperatingHours(open, close string) (OperatingHours, error) {
	openMin, err := parseTimeOfDay(open)
	if err != nil {
		return OperatingHours{}, err
	}
	closeMin, err := parseTimeOfDay(close)
	if err != nil {
		return OperatingHours{}, err
	}
	if openMin >= closeMin {
		return OperatingHours{}, ErrInvalidOperatingHrs
	}
	return OperatingHours{openMin: openMin, closeMin: closeMin}, nil
}

func (h OperatingHours) Open() string  { return formatTimeOfDay(h.openMin) }
func (h OperatingHours) Close() string { return formatTimeOfDay(h.closeMin) }

// Slots walks the open interval in fixed steps. A trailing remainder shorter
// than one slot is dropped.
func (h OperatingHours) Slots() []Slot {
	var slots []Slot
	for start := h.openMin; start+SlotDurationMinutes <= h.closeMin; start += SlotDurationMinutes {
		slots = append(slots, Slot{
			Start: formatTimeOfDay(start),
			End:   formatTimeOfDay(start + SlotDurationMinutes),
		})
	}
	return slots
}

func (h OperatingHours) ContainsSlot(start, end string) bool {
	startMin, err := parseTimeOfDay(start)
	if err != nil {
		return false
	}
	endMin, err := parseTimeOfDay(end)
	if err != nil {
		return false
	}
	if endMin-startMin != SlotDurationMinutes {
		return false
	}
	if startMin < h.openMin || endMin > h.closeMin {
		return false
	}
	return (startMin-h.openMin)%SlotDurationMinutes == 0
}

func parseTimeOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, errs.Mark(err, ErrInvalidTimeOfDay)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatTimeOfDay(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

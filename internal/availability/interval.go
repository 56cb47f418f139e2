package availability

import (
	"fmt"
	"time"
)

// Bookable start slots run on the hour from 09:00 to 20:00. A booking may end
// past the last slot (e.g. 20:00 for 4 hours), it just cannot start there.
const (
	FirstSlotHour = 9
	LastSlotHour  = 20
)

// Slots returns the fixed set of bookable start times
func Slots() []string {
	slots := make([]string, 0, LastSlotHour-FirstSlotHour+1)
	for h := FirstSlotHour; h <= LastSlotHour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
	}
	return slots
}

// Interval is a concrete date/start/duration window on a venue's calendar.
// Durations are whole hours, minimum one.
type Interval struct {
	Date          time.Time `json:"date"` // normalized to midnight UTC
	StartHour     int       `json:"start_hour"`
	DurationHours int       `json:"duration_hours"`
}

// NewInterval builds a validated interval. startTime must be one of the fixed
// on-the-hour slots ("09:00" .. "20:00").
func NewInterval(date time.Time, startTime string, durationHours int) (Interval, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(startTime, "%d:%d", &hour, &minute); err != nil {
		return Interval{}, fmt.Errorf("invalid start time %q: %w", startTime, err)
	}
	if minute != 0 || hour < FirstSlotHour || hour > LastSlotHour {
		return Interval{}, fmt.Errorf("start time %q is not a bookable slot", startTime)
	}
	if durationHours < 1 {
		return Interval{}, fmt.Errorf("duration must be at least 1 hour, got %d", durationHours)
	}

	return Interval{
		Date:          NormalizeDate(date),
		StartHour:     hour,
		DurationHours: durationHours,
	}, nil
}

// NormalizeDate strips the time-of-day component, keeping the calendar day in UTC
func NormalizeDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// StartAt returns the absolute start of the interval
func (iv Interval) StartAt() time.Time {
	return iv.Date.Add(time.Duration(iv.StartHour) * time.Hour)
}

// EndAt returns the absolute end of the interval (exclusive)
func (iv Interval) EndAt() time.Time {
	return iv.StartAt().Add(time.Duration(iv.DurationHours) * time.Hour)
}

// StartTime formats the start slot as "HH:MM"
func (iv Interval) StartTime() string {
	return fmt.Sprintf("%02d:00", iv.StartHour)
}

// EndTime formats the end as "HH:MM". May be past the last slot.
func (iv Interval) EndTime() string {
	end := iv.EndAt()
	return fmt.Sprintf("%02d:%02d", end.Hour(), end.Minute())
}

// Overlaps reports whether the two half-open windows intersect. Back-to-back
// intervals (end1 == start2) do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.StartAt().Before(other.EndAt()) && other.StartAt().Before(iv.EndAt())
}

func (iv Interval) String() string {
	return fmt.Sprintf("%s %s-%s", iv.Date.Format("2006-01-02"), iv.StartTime(), iv.EndTime())
}

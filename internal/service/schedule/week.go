package schedule

import (
	"fmt"
	"time"

	"github.com/shiftgrid/scheduler-backend-go/internal/domain/schedule"
)

// The grid shows hourly slots from 06:00 through 22:00.
const (
	gridStartHour = 6
	gridEndHour   = 22
)

// Week is a Monday-start calendar week. Start is normalized to midnight
// UTC, so two Weeks computed from any two dates of the same calendar week
// compare equal.
type Week struct {
	Start time.Time
}

// WeekOf returns the week containing ref. Sunday belongs to the week of
// the previous Monday, not the upcoming one.
func WeekOf(ref time.Time) Week {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7
	return Week{Start: day.AddDate(0, 0, -offset)}
}

// End returns the Sunday of the week.
func (w Week) End() time.Time {
	return w.Start.AddDate(0, 0, 6)
}

// Days returns the 7 consecutive ISO dates starting at Monday.
func (w Week) Days() []string {
	days := make([]string, 7)
	for i := range days {
		days[i] = w.Start.AddDate(0, 0, i).Format(schedule.DateLayout)
	}
	return days
}

// Contains reports whether the ISO date falls inside the week.
func (w Week) Contains(date string) bool {
	for _, d := range w.Days() {
		if d == date {
			return true
		}
	}
	return false
}

func (w Week) Previous() Week {
	return Week{Start: w.Start.AddDate(0, 0, -7)}
}

func (w Week) Next() Week {
	return Week{Start: w.Start.AddDate(0, 0, 7)}
}

// TimeSlots returns the 17 hourly slot labels from 06:00 to 22:00.
func TimeSlots() []string {
	slots := make([]string, 0, gridEndHour-gridStartHour+1)
	for hour := gridStartHour; hour <= gridEndHour; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
	}
	return slots
}

package schedule

import (
	"math"

	"github.com/google/uuid"
	"github.com/shiftgrid/scheduler-backend-go/internal/domain/employee"
	"github.com/shiftgrid/scheduler-backend-go/internal/domain/schedule"
	"github.com/shiftgrid/scheduler-backend-go/internal/pkg/timehm"
	"github.com/shopspring/decimal"
)

// Entry layout: regular shifts are sized proportionally to their duration,
// clamped so very short and very long shifts stay readable. Holiday and
// day-off entries span the full cell instead.
const (
	pxPerHour       = 25
	minEntryWidthPx = 80
	maxEntryWidthPx = 140
)

// The creation dialog prefills a default shift.
const (
	defaultShiftStart = "09:00"
	defaultShiftEnd   = "17:00"
)

// palette holds the fixed employee colors.
var palette = []string{
	"#3b82f6", // blue
	"#10b981", // emerald
	"#f59e0b", // amber
	"#ef4444", // red
	"#8b5cf6", // violet
	"#ec4899", // pink
	"#06b6d4", // cyan
	"#84cc16", // lime
}

// ColorAssigner maps employee ids to palette slots. A slot is assigned the
// first time an id is seen and kept for the assigner's lifetime, so colors
// survive list reorderings and insertions.
type ColorAssigner struct {
	slots map[string]int
}

func NewColorAssigner() *ColorAssigner {
	return &ColorAssigner{slots: make(map[string]int)}
}

func (c *ColorAssigner) ColorFor(employeeID string) string {
	slot, ok := c.slots[employeeID]
	if !ok {
		slot = len(c.slots) % len(palette)
		c.slots[employeeID] = slot
	}
	return palette[slot]
}

// EntryWidthPx returns the pixel width for a shift of the given duration.
func EntryWidthPx(hours float64) int {
	width := hours * pxPerHour
	return int(math.Round(math.Min(math.Max(width, minEntryWidthPx), maxEntryWidthPx)))
}

// EntrySet is the working set of schedule entries for one visible week.
// Every aggregate recomputes from the full set on demand; there are no
// cached totals to invalidate.
type EntrySet struct {
	entries []schedule.Entry
}

func NewEntrySet(entries []schedule.Entry) *EntrySet {
	return &EntrySet{entries: entries}
}

// Add validates and appends a new entry with a freshly generated id.
// Regular shifts need both times and a positive duration; duplicates and
// overlaps are allowed and all get rendered.
func (s *EntrySet) Add(entry schedule.Entry) (schedule.Entry, error) {
	if entry.Type == schedule.EntryTypeShift {
		if entry.StartTime == "" || entry.EndTime == "" {
			return schedule.Entry{}, schedule.ErrShiftTimesRequired
		}
		d, err := timehm.Duration(entry.StartTime, entry.EndTime)
		if err != nil {
			return schedule.Entry{}, err
		}
		if d <= 0 {
			return schedule.Entry{}, schedule.ErrShiftTimesInverted
		}
	}

	entry.ID = uuid.NewString()
	s.entries = append(s.entries, entry)
	return entry, nil
}

// Remove drops the entry with the given id; it is a no-op when absent.
func (s *EntrySet) Remove(id string) {
	for i, entry := range s.entries {
		if entry.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

func (s *EntrySet) Len() int {
	return len(s.entries)
}

// For returns the entries for one employee on one day, matched by exact
// ISO date equality.
func (s *EntrySet) For(employeeID, date string) []schedule.Entry {
	var matched []schedule.Entry
	for _, entry := range s.entries {
		if entry.EmployeeID == employeeID && entry.Date == date {
			matched = append(matched, entry)
		}
	}
	return matched
}

// entryHours is the duration one entry contributes to hour aggregates.
// Only regular shifts count; holiday and day-off entries are zero no
// matter what their time fields hold. Unparseable and inverted times both
// count as zero, so a bad stored row can never drive an aggregate negative.
func entryHours(entry schedule.Entry) float64 {
	if entry.Type != schedule.EntryTypeShift {
		return 0
	}
	hours, err := timehm.Duration(entry.StartTime, entry.EndTime)
	if err != nil || hours < 0 {
		return 0
	}
	return hours
}

// HoursFor sums shift hours for one employee on one day.
func (s *EntrySet) HoursFor(employeeID, date string) float64 {
	var total float64
	for _, entry := range s.For(employeeID, date) {
		total += entryHours(entry)
	}
	return total
}

// HoursForDay sums shift hours across the given employees for one day.
func (s *EntrySet) HoursForDay(date string, employees []employee.Employee) float64 {
	var total float64
	for _, emp := range employees {
		total += s.HoursFor(emp.ID, date)
	}
	return total
}

// HoursForWeek sums one employee's shift hours over the 7 week dates.
func (s *EntrySet) HoursForWeek(employeeID string, week Week) float64 {
	var total float64
	for _, date := range week.Days() {
		total += s.HoursFor(employeeID, date)
	}
	return total
}

// TotalHours sums the week totals of the given employees.
func (s *EntrySet) TotalHours(week Week, employees []employee.Employee) float64 {
	var total float64
	for _, emp := range employees {
		total += s.HoursForWeek(emp.ID, week)
	}
	return total
}

// TotalLaborCost sums hours × denormalized entry rate over the week for
// the given employees.
func (s *EntrySet) TotalLaborCost(week Week, employees []employee.Employee) decimal.Decimal {
	total := decimal.Zero
	for _, emp := range employees {
		for _, date := range week.Days() {
			for _, entry := range s.For(emp.ID, date) {
				hours := entryHours(entry)
				if hours == 0 {
					continue
				}
				total = total.Add(entry.HourlyRate.Mul(decimal.NewFromFloat(hours)))
			}
		}
	}
	return total.Round(2)
}

// BuildGrid composes the employee × day matrix for one week. It is pure:
// everything derives from the arguments.
func BuildGrid(organizationID string, employees []employee.Employee, entries []schedule.Entry, week Week) schedule.GridResponse {
	set := NewEntrySet(entries)
	colors := NewColorAssigner()
	days := week.Days()

	grid := schedule.GridResponse{
		HasOrganization:   true,
		OrganizationID:    organizationID,
		WeekStart:         days[0],
		WeekEnd:           days[6],
		Days:              days,
		TimeSlots:         TimeSlots(),
		DefaultShiftStart: defaultShiftStart,
		DefaultShiftEnd:   defaultShiftEnd,
		Employees:         make([]schedule.GridEmployee, 0, len(employees)),
		DayHours:          make(map[string]float64, len(days)),
	}

	for _, emp := range employees {
		row := schedule.GridEmployee{
			ID:         emp.ID,
			Name:       emp.FullName(),
			Role:       emp.Role,
			HourlyRate: emp.HourlyRate,
			Color:      colors.ColorFor(emp.ID),
			Days:       make([]schedule.GridDay, 0, len(days)),
		}

		for _, date := range days {
			cell := schedule.GridDay{Date: date, Entries: []schedule.GridEntry{}}
			for _, entry := range set.For(emp.ID, date) {
				hours := entryHours(entry)
				ge := schedule.GridEntry{
					ID:         entry.ID,
					Type:       string(entry.Type),
					StartTime:  entry.StartTime,
					EndTime:    entry.EndTime,
					Role:       entry.Role,
					HourlyRate: entry.HourlyRate,
					Hours:      hours,
				}
				if entry.Type == schedule.EntryTypeShift {
					ge.WidthPx = EntryWidthPx(hours)
				} else {
					ge.FullWidth = true
				}
				cell.Entries = append(cell.Entries, ge)
			}
			cell.Hours = set.HoursFor(emp.ID, date)
			row.Days = append(row.Days, cell)
			row.WeekHours += cell.Hours
		}

		grid.Employees = append(grid.Employees, row)
	}

	for _, date := range days {
		grid.DayHours[date] = set.HoursForDay(date, employees)
	}
	grid.TotalHours = set.TotalHours(week, employees)
	grid.TotalLaborCost = set.TotalLaborCost(week, employees)

	return grid
}

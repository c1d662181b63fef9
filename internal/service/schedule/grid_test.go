package schedule

import (
	"testing"
	"time"

	"github.com/shiftgrid/scheduler-backend-go/internal/domain/employee"
	"github.com/shiftgrid/scheduler-backend-go/internal/domain/schedule"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday 2025-03-10 anchors most fixtures below.
var testWeek = WeekOf(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))

func testEmployee(id, firstName string, rate int64) employee.Employee {
	return employee.Employee{
		ID:         id,
		FirstName:  firstName,
		LastName:   "Test",
		Role:       "Server",
		HourlyRate: decimal.NewFromInt(rate),
		IsActive:   true,
	}
}

func shiftEntry(employeeID, date, start, end string) schedule.Entry {
	return schedule.Entry{
		EmployeeID: employeeID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		Type:       schedule.EntryTypeShift,
	}
}

func TestEntrySet_AddThenQueryThenRemove(t *testing.T) {
	t.Parallel()
	set := NewEntrySet(nil)

	added, err := set.Add(shiftEntry("emp-a", "2025-03-10", "09:00", "17:00"))
	require.NoError(t, err)
	require.NotEmpty(t, added.ID)

	got := set.For("emp-a", "2025-03-10")
	require.Len(t, got, 1)
	assert.Equal(t, added.ID, got[0].ID)

	// Other days and employees see nothing.
	assert.Empty(t, set.For("emp-a", "2025-03-11"))
	assert.Empty(t, set.For("emp-b", "2025-03-10"))

	set.Remove(added.ID)
	assert.Empty(t, set.For("emp-a", "2025-03-10"))

	// Removing again is a no-op.
	set.Remove(added.ID)
	assert.Equal(t, 0, set.Len())
}

func TestEntrySet_AddRejectsShiftWithoutTimes(t *testing.T) {
	t.Parallel()
	set := NewEntrySet(nil)

	_, err := set.Add(shiftEntry("emp-a", "2025-03-10", "", ""))
	assert.ErrorIs(t, err, schedule.ErrShiftTimesRequired)

	_, err = set.Add(shiftEntry("emp-a", "2025-03-10", "09:00", ""))
	assert.ErrorIs(t, err, schedule.ErrShiftTimesRequired)

	assert.Equal(t, 0, set.Len())
}

func TestEntrySet_AddRejectsInvertedShift(t *testing.T) {
	t.Parallel()
	set := NewEntrySet(nil)

	// Overnight shifts are rejected rather than wrapped past midnight.
	_, err := set.Add(shiftEntry("emp-a", "2025-03-10", "22:00", "06:00"))
	assert.ErrorIs(t, err, schedule.ErrShiftTimesInverted)

	_, err = set.Add(shiftEntry("emp-a", "2025-03-10", "09:00", "09:00"))
	assert.ErrorIs(t, err, schedule.ErrShiftTimesInverted)
}

func TestEntrySet_AllowsOverlappingEntries(t *testing.T) {
	t.Parallel()
	set := NewEntrySet(nil)

	_, err := set.Add(shiftEntry("emp-a", "2025-03-10", "09:00", "17:00"))
	require.NoError(t, err)
	_, err = set.Add(shiftEntry("emp-a", "2025-03-10", "09:00", "17:00"))
	require.NoError(t, err)

	assert.Len(t, set.For("emp-a", "2025-03-10"), 2)
	assert.InDelta(t, 16, set.HoursFor("emp-a", "2025-03-10"), 1e-9)
}

func TestEntrySet_HolidayAndDayOffContributeZeroHours(t *testing.T) {
	t.Parallel()

	// Populated time fields on non-shift entries never reach duration math.
	entries := []schedule.Entry{
		{ID: "1", EmployeeID: "emp-a", Date: "2025-03-10", StartTime: "09:00", EndTime: "17:00", Type: schedule.EntryTypeHoliday},
		{ID: "2", EmployeeID: "emp-a", Date: "2025-03-11", StartTime: "08:00", EndTime: "20:00", Type: schedule.EntryTypeDayOff},
	}
	set := NewEntrySet(entries)
	emps := []employee.Employee{testEmployee("emp-a", "Ann", 15)}

	assert.Zero(t, set.HoursFor("emp-a", "2025-03-10"))
	assert.Zero(t, set.HoursFor("emp-a", "2025-03-11"))
	assert.Zero(t, set.HoursForWeek("emp-a", testWeek))
	assert.Zero(t, set.TotalHours(testWeek, emps))
	assert.True(t, set.TotalLaborCost(testWeek, emps).IsZero())
}

func TestEntrySet_StoredInvertedShiftCountsAsZero(t *testing.T) {
	t.Parallel()

	// Creation rejects inverted shifts, but a bad row already in storage
	// must still never drive an aggregate negative.
	entries := []schedule.Entry{
		{ID: "1", EmployeeID: "emp-a", Date: "2025-03-10", StartTime: "17:00", EndTime: "09:00",
			Type: schedule.EntryTypeShift, HourlyRate: decimal.NewFromInt(15)},
		{ID: "2", EmployeeID: "emp-a", Date: "2025-03-10", StartTime: "10:00", EndTime: "14:00",
			Type: schedule.EntryTypeShift, HourlyRate: decimal.NewFromInt(15)},
	}
	set := NewEntrySet(entries)
	emps := []employee.Employee{testEmployee("emp-a", "Ann", 15)}

	assert.GreaterOrEqual(t, set.HoursFor("emp-a", "2025-03-10"), 0.0)
	assert.InDelta(t, 4, set.HoursFor("emp-a", "2025-03-10"), 1e-9)
	assert.InDelta(t, 4, set.HoursForWeek("emp-a", testWeek), 1e-9)
	assert.InDelta(t, 4, set.TotalHours(testWeek, emps), 1e-9)
	assert.Equal(t, "60", set.TotalLaborCost(testWeek, emps).String())
}

func TestEntrySet_MalformedTimesCountAsZero(t *testing.T) {
	t.Parallel()

	entries := []schedule.Entry{
		{ID: "1", EmployeeID: "emp-a", Date: "2025-03-10", StartTime: "garbage", EndTime: "17:00", Type: schedule.EntryTypeShift},
		{ID: "2", EmployeeID: "emp-a", Date: "2025-03-10", StartTime: "10:00", EndTime: "14:00", Type: schedule.EntryTypeShift},
	}
	set := NewEntrySet(entries)

	assert.InDelta(t, 4, set.HoursFor("emp-a", "2025-03-10"), 1e-9)
}

func TestEntrySet_WeekTotalEqualsSumOfDays(t *testing.T) {
	t.Parallel()

	entries := []schedule.Entry{
		{ID: "1", EmployeeID: "emp-a", Date: "2025-03-10", StartTime: "09:00", EndTime: "17:00", Type: schedule.EntryTypeShift},
		{ID: "2", EmployeeID: "emp-a", Date: "2025-03-12", StartTime: "08:00", EndTime: "12:30", Type: schedule.EntryTypeShift},
		{ID: "3", EmployeeID: "emp-a", Date: "2025-03-16", StartTime: "10:00", EndTime: "16:00", Type: schedule.EntryTypeShift},
		// Outside the week, must not count.
		{ID: "4", EmployeeID: "emp-a", Date: "2025-03-17", StartTime: "09:00", EndTime: "17:00", Type: schedule.EntryTypeShift},
	}
	set := NewEntrySet(entries)

	var sum float64
	for _, date := range testWeek.Days() {
		sum += set.HoursFor("emp-a", date)
	}
	assert.InDelta(t, sum, set.HoursForWeek("emp-a", testWeek), 1e-9)
	assert.InDelta(t, 18.5, set.HoursForWeek("emp-a", testWeek), 1e-9)

	// Empty set sums to zero.
	empty := NewEntrySet(nil)
	assert.Zero(t, empty.HoursForWeek("emp-a", testWeek))
}

func TestEntrySet_TwoEmployeeWeekScenario(t *testing.T) {
	t.Parallel()

	// A at $15/h works Monday 09:00-17:00, B at $20/h works Monday
	// 10:00-14:00.
	a := testEmployee("emp-a", "Ann", 15)
	b := testEmployee("emp-b", "Bob", 20)
	entries := []schedule.Entry{
		{ID: "1", EmployeeID: "emp-a", Date: "2025-03-10", StartTime: "09:00", EndTime: "17:00",
			Type: schedule.EntryTypeShift, HourlyRate: a.HourlyRate},
		{ID: "2", EmployeeID: "emp-b", Date: "2025-03-10", StartTime: "10:00", EndTime: "14:00",
			Type: schedule.EntryTypeShift, HourlyRate: b.HourlyRate},
	}
	set := NewEntrySet(entries)
	emps := []employee.Employee{a, b}

	assert.InDelta(t, 12, set.HoursForDay("2025-03-10", emps), 1e-9)
	assert.InDelta(t, 8, set.HoursForWeek("emp-a", testWeek), 1e-9)
	assert.InDelta(t, 12, set.TotalHours(testWeek, emps), 1e-9)

	// 8h * $15 + 4h * $20 = $200
	assert.Equal(t, "200", set.TotalLaborCost(testWeek, emps).String())
}

func TestEntrySet_SoftDeletedEmployeeLeavesAggregatesButKeepsEntries(t *testing.T) {
	t.Parallel()

	a := testEmployee("emp-a", "Ann", 15)
	b := testEmployee("emp-b", "Bob", 20)
	entries := []schedule.Entry{
		{ID: "1", EmployeeID: a.ID, Date: "2025-03-10", StartTime: "09:00", EndTime: "17:00", Type: schedule.EntryTypeShift},
		{ID: "2", EmployeeID: b.ID, Date: "2025-03-10", StartTime: "10:00", EndTime: "14:00", Type: schedule.EntryTypeShift},
	}
	set := NewEntrySet(entries)

	// B is soft deleted: aggregates scope to the remaining active list,
	// but B's entries stay in the working set.
	active := []employee.Employee{a}
	assert.InDelta(t, 8, set.HoursForDay("2025-03-10", active), 1e-9)
	assert.InDelta(t, 8, set.TotalHours(testWeek, active), 1e-9)
	assert.Len(t, set.For(b.ID, "2025-03-10"), 1)
}

func TestColorAssigner_StableAcrossReordering(t *testing.T) {
	t.Parallel()
	colors := NewColorAssigner()

	first := colors.ColorFor("emp-a")
	second := colors.ColorFor("emp-b")
	require.NotEqual(t, first, second)

	// Re-encountering in a different order keeps the original assignment.
	assert.Equal(t, second, colors.ColorFor("emp-b"))
	assert.Equal(t, first, colors.ColorFor("emp-a"))

	// A new id inserted ahead of the others does not displace them.
	colors.ColorFor("emp-new")
	assert.Equal(t, first, colors.ColorFor("emp-a"))
	assert.Equal(t, second, colors.ColorFor("emp-b"))
}

func TestColorAssigner_PaletteWrapsAround(t *testing.T) {
	t.Parallel()
	colors := NewColorAssigner()

	for i := 0; i < len(palette); i++ {
		colors.ColorFor(string(rune('a' + i)))
	}
	assert.Equal(t, colors.ColorFor("a"), colors.ColorFor("wrapped"))
}

func TestEntryWidthPx(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hours float64
		want  int
	}{
		{1, 80},    // 25px, clamped up to the minimum
		{3.2, 80},  // exactly the minimum
		{4, 100},   // proportional inside the range
		{4.5, 113}, // rounded
		{5.6, 140}, // exactly the maximum
		{8, 140},   // clamped down to the maximum
		{16, 140},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EntryWidthPx(tt.hours), "hours %v", tt.hours)
	}
}

func TestBuildGrid(t *testing.T) {
	t.Parallel()

	a := testEmployee("emp-a", "Ann", 15)
	b := testEmployee("emp-b", "Bob", 20)
	entries := []schedule.Entry{
		{ID: "1", EmployeeID: "emp-a", Date: "2025-03-10", StartTime: "09:00", EndTime: "17:00",
			Type: schedule.EntryTypeShift, HourlyRate: a.HourlyRate},
		{ID: "2", EmployeeID: "emp-b", Date: "2025-03-10", StartTime: "10:00", EndTime: "14:00",
			Type: schedule.EntryTypeShift, HourlyRate: b.HourlyRate},
		{ID: "3", EmployeeID: "emp-b", Date: "2025-03-12", Type: schedule.EntryTypeDayOff},
	}

	grid := BuildGrid("org-1", []employee.Employee{a, b}, entries, testWeek)

	assert.True(t, grid.HasOrganization)
	assert.Equal(t, "org-1", grid.OrganizationID)
	assert.Equal(t, "2025-03-10", grid.WeekStart)
	assert.Equal(t, "2025-03-16", grid.WeekEnd)
	require.Len(t, grid.Days, 7)
	require.Len(t, grid.TimeSlots, 17)
	assert.Equal(t, "09:00", grid.DefaultShiftStart)
	assert.Equal(t, "17:00", grid.DefaultShiftEnd)

	require.Len(t, grid.Employees, 2)
	rowA, rowB := grid.Employees[0], grid.Employees[1]
	assert.Equal(t, "Ann Test", rowA.Name)
	assert.NotEqual(t, rowA.Color, rowB.Color)
	assert.InDelta(t, 8, rowA.WeekHours, 1e-9)
	assert.InDelta(t, 4, rowB.WeekHours, 1e-9)

	// Monday cell of A holds the shift with its layout width.
	monday := rowA.Days[0]
	require.Len(t, monday.Entries, 1)
	assert.Equal(t, 140, monday.Entries[0].WidthPx)
	assert.False(t, monday.Entries[0].FullWidth)
	assert.InDelta(t, 8, monday.Hours, 1e-9)

	// Wednesday cell of B holds the day-off spanning the full cell.
	wednesday := rowB.Days[2]
	require.Len(t, wednesday.Entries, 1)
	assert.True(t, wednesday.Entries[0].FullWidth)
	assert.Zero(t, wednesday.Entries[0].WidthPx)
	assert.Zero(t, wednesday.Hours)

	assert.InDelta(t, 12, grid.DayHours["2025-03-10"], 1e-9)
	assert.Zero(t, grid.DayHours["2025-03-11"])
	assert.InDelta(t, 12, grid.TotalHours, 1e-9)
	assert.Equal(t, "200", grid.TotalLaborCost.String())
}

func TestBuildGrid_NoActiveEmployees(t *testing.T) {
	t.Parallel()

	grid := BuildGrid("org-1", nil, nil, testWeek)

	// An empty roster serializes as an empty list, not null.
	require.NotNil(t, grid.Employees)
	assert.Empty(t, grid.Employees)
	assert.True(t, grid.HasOrganization)
	assert.Zero(t, grid.TotalHours)
}

func TestBuildGrid_EmptyWeek(t *testing.T) {
	t.Parallel()

	a := testEmployee("emp-a", "Ann", 15)
	grid := BuildGrid("org-1", []employee.Employee{a}, nil, testWeek)

	require.Len(t, grid.Employees, 1)
	assert.Zero(t, grid.Employees[0].WeekHours)
	assert.Zero(t, grid.TotalHours)
	for _, cell := range grid.Employees[0].Days {
		assert.Empty(t, cell.Entries)
	}
}

package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekOf_MondayStart(t *testing.T) {
	t.Parallel()

	// 2025-03-12 is a Wednesday; its week starts Monday 2025-03-10.
	ref := time.Date(2025, time.March, 12, 15, 30, 0, 0, time.UTC)
	week := WeekOf(ref)

	assert.Equal(t, time.Monday, week.Start.Weekday())
	assert.Equal(t, "2025-03-10", week.Start.Format("2006-01-02"))
	assert.Equal(t, "2025-03-16", week.End().Format("2006-01-02"))
}

func TestWeekOf_SundayBelongsToPreviousMonday(t *testing.T) {
	t.Parallel()

	// 2025-03-16 is a Sunday; it belongs to the week of Monday 2025-03-10,
	// not the upcoming one.
	ref := time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC)
	week := WeekOf(ref)

	assert.Equal(t, "2025-03-10", week.Start.Format("2006-01-02"))
}

func TestWeekOf_TotalAndIdempotent(t *testing.T) {
	t.Parallel()

	// Walk a year of dates: every computed Monday is <= the reference and
	// within 6 days of it, and recomputing from any day of the produced
	// week yields the same week.
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 366; i++ {
		ref := start.AddDate(0, 0, i)
		week := WeekOf(ref)

		require.Equal(t, time.Monday, week.Start.Weekday(), "ref %s", ref)
		require.False(t, week.Start.After(ref), "monday after ref %s", ref)
		require.LessOrEqual(t, ref.Sub(week.Start).Hours(), float64(6*24), "ref %s", ref)

		for d := 0; d < 7; d++ {
			again := WeekOf(week.Start.AddDate(0, 0, d))
			require.Equal(t, week.Start, again.Start, "ref %s day %d", ref, d)
		}
	}
}

func TestWeek_DaysAreConsecutive(t *testing.T) {
	t.Parallel()

	week := WeekOf(time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC))
	days := week.Days()

	require.Len(t, days, 7)
	for i := 1; i < 7; i++ {
		prev, err := time.Parse("2006-01-02", days[i-1])
		require.NoError(t, err)
		cur, err := time.Parse("2006-01-02", days[i])
		require.NoError(t, err)
		assert.Equal(t, prev.AddDate(0, 0, 1), cur)
	}
}

func TestWeek_PreviousNextRoundTrip(t *testing.T) {
	t.Parallel()

	refs := []time.Time{
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.August, 31, 12, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.December, 28, 23, 59, 0, 0, time.UTC),
	}
	for _, ref := range refs {
		week := WeekOf(ref)
		assert.Equal(t, week.Start, week.Previous().Next().Start, "ref %s", ref)
		assert.Equal(t, week.Start, week.Next().Previous().Start, "ref %s", ref)
	}
}

func TestWeek_Contains(t *testing.T) {
	t.Parallel()

	week := WeekOf(time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC))

	assert.True(t, week.Contains("2025-03-10"))
	assert.True(t, week.Contains("2025-03-16"))
	assert.False(t, week.Contains("2025-03-09"))
	assert.False(t, week.Contains("2025-03-17"))
}

func TestTimeSlots(t *testing.T) {
	t.Parallel()

	slots := TimeSlots()

	require.Len(t, slots, 17)
	assert.Equal(t, "06:00", slots[0])
	assert.Equal(t, "22:00", slots[16])
	assert.Equal(t, "07:00", slots[1])
}

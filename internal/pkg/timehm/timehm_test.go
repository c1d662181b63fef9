package timehm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start string
		end   string
		want  float64
	}{
		{"full day shift", "09:00", "17:00", 8},
		{"half hour granularity", "08:00", "12:30", 4.5},
		{"quarter hours", "06:15", "06:45", 0.5},
		{"zero length", "10:00", "10:00", 0},
		{"whole grid span", "06:00", "22:00", 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Duration(tt.start, tt.end)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestDuration_NegativeWhenInverted(t *testing.T) {
	t.Parallel()

	got, err := Duration("17:00", "09:00")
	require.NoError(t, err)
	assert.InDelta(t, -8, got, 1e-9)
}

func TestDuration_MalformedInput(t *testing.T) {
	t.Parallel()

	_, err := Duration("9am", "17:00")
	assert.Error(t, err)

	_, err = Duration("09:00", "25:61")
	assert.Error(t, err)

	_, err = Duration("", "17:00")
	assert.Error(t, err)
}

func TestParse_AnchorsOnSharedDate(t *testing.T) {
	t.Parallel()

	a, err := Parse("06:00")
	require.NoError(t, err)
	b, err := Parse("22:00")
	require.NoError(t, err)

	assert.Equal(t, a.YearDay(), b.YearDay())
	assert.InDelta(t, 16, b.Sub(a).Hours(), 1e-9)
}

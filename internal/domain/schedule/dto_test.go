package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestUpdateScheduleRequest_ValidateAgainst(t *testing.T) {
	t.Parallel()

	storedShift := Entry{
		Type:      EntryTypeShift,
		StartTime: "09:00",
		EndTime:   "17:00",
	}
	storedDayOff := Entry{Type: EntryTypeDayOff}

	tests := []struct {
		name    string
		entry   Entry
		req     UpdateScheduleRequest
		wantErr error
	}{
		{
			name:  "shorten shift keeps order",
			entry: storedShift,
			req:   UpdateScheduleRequest{EndTime: strPtr("12:00")},
		},
		{
			name:    "new end before stored start",
			entry:   storedShift,
			req:     UpdateScheduleRequest{EndTime: strPtr("08:00")},
			wantErr: ErrShiftTimesInverted,
		},
		{
			name:    "new start after stored end",
			entry:   storedShift,
			req:     UpdateScheduleRequest{StartTime: strPtr("18:00")},
			wantErr: ErrShiftTimesInverted,
		},
		{
			name:    "both times patched inverted",
			entry:   storedShift,
			req:     UpdateScheduleRequest{StartTime: strPtr("22:00"), EndTime: strPtr("06:00")},
			wantErr: ErrShiftTimesInverted,
		},
		{
			name:  "day off may carry any times",
			entry: storedShift,
			req:   UpdateScheduleRequest{Type: strPtr("day-off"), EndTime: strPtr("08:00")},
		},
		{
			name:    "timeless entry flipped to shift",
			entry:   storedDayOff,
			req:     UpdateScheduleRequest{Type: strPtr("shift")},
			wantErr: ErrShiftTimesRequired,
		},
		{
			name:  "flip to shift with valid times",
			entry: storedDayOff,
			req: UpdateScheduleRequest{
				Type:      strPtr("shift"),
				StartTime: strPtr("09:00"),
				EndTime:   strPtr("17:00"),
			},
		},
		{
			name:    "zero length shift",
			entry:   storedShift,
			req:     UpdateScheduleRequest{StartTime: strPtr("17:00")},
			wantErr: ErrShiftTimesInverted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.ValidateAgainst(tt.entry)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

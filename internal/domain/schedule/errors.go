package schedule

import "errors"

var (
	ErrEntryNotFound      = errors.New("schedule entry not found")
	ErrInvalidEntryType   = errors.New("entry type must be shift, holiday or day-off")
	ErrShiftTimesRequired = errors.New("regular shifts require a start and end time")
	ErrShiftTimesInverted = errors.New("shift end time must be after its start time")
	ErrEmployeeNotInOrg   = errors.New("employee does not belong to this organization")
)

package schedule

import "context"

type ScheduleRepository interface {
	Create(ctx context.Context, entry Entry) (Entry, error)
	GetByID(ctx context.Context, id string) (Entry, error)
	// GetByOrganizationID returns all entries for the organization; a
	// non-nil date narrows the result to that calendar day.
	GetByOrganizationID(ctx context.Context, organizationID string, date *string) ([]Entry, error)
	GetForWeek(ctx context.Context, organizationID string, startDate, endDate string) ([]Entry, error)
	Update(ctx context.Context, id string, req UpdateScheduleRequest) (Entry, error)
	Delete(ctx context.Context, id string) error
}

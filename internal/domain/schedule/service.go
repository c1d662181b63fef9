package schedule

import (
	"context"
	"time"
)

type ScheduleService interface {
	Create(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error)
	List(ctx context.Context, organizationID string, date *string) ([]ScheduleResponse, error)
	ListForWeek(ctx context.Context, organizationID string, startDate, endDate string) ([]ScheduleResponse, error)
	Update(ctx context.Context, id string, req UpdateScheduleRequest) (ScheduleResponse, error)
	Delete(ctx context.Context, id string) error

	// Grid assembles the week view for the week containing ref.
	Grid(ctx context.Context, organizationID string, ref time.Time) (GridResponse, error)
}

package memory

import (
	"context"

	"equine-vet-dashboard/internal/domain/schedule"
)

type scheduleRepo struct {
	log *appendLog[schedule.Event]
}

func NewScheduleRepo(base map[string][]schedule.Event) schedule.Repository {
	return &scheduleRepo{log: newAppendLog[schedule.Event](base, nil)}
}

func (r *scheduleRepo) ListByHorse(ctx context.Context, horseID string) ([]schedule.Event, error) {
	return r.log.list(horseID), nil
}

func (r *scheduleRepo) Append(ctx context.Context, e schedule.Event) error {
	return r.log.append(e.HorseID, e)
}

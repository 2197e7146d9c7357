package memory

import (
	"context"

	"equine-vet-dashboard/internal/domain/history"
)

type historyRepo struct {
	log *appendLog[history.Event]
}

func NewHistoryRepo(base map[string][]history.Event) history.Repository {
	return &historyRepo{log: newAppendLog(base, history.Event.Clone)}
}

func (r *historyRepo) ListByHorse(ctx context.Context, horseID string) ([]history.Event, error) {
	return r.log.list(horseID), nil
}

func (r *historyRepo) Append(ctx context.Context, e history.Event) error {
	return r.log.append(e.HorseID, e)
}

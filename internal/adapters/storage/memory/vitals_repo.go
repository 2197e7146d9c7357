package memory

import (
	"context"

	"equine-vet-dashboard/internal/domain/vitals"
)

type vitalsRepo struct {
	log *appendLog[vitals.Reading]
}

func NewVitalsRepo(base map[string][]vitals.Reading) vitals.Repository {
	return &vitalsRepo{log: newAppendLog[vitals.Reading](base, nil)}
}

func (r *vitalsRepo) ListByHorse(ctx context.Context, horseID string) ([]vitals.Reading, error) {
	return r.log.list(horseID), nil
}

func (r *vitalsRepo) Append(ctx context.Context, v vitals.Reading) error {
	return r.log.append(v.HorseID, v)
}

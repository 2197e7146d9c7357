package memory

import (
	"context"

	"equine-vet-dashboard/internal/domain/cases"
)

type caseRepo struct {
	log *appendLog[cases.Case]
}

func NewCaseRepo(base map[string][]cases.Case) cases.Repository {
	return &caseRepo{log: newAppendLog(base, cases.Case.Clone)}
}

func (r *caseRepo) ListByHorse(ctx context.Context, horseID string) ([]cases.Case, error) {
	return r.log.list(horseID), nil
}

func (r *caseRepo) Append(ctx context.Context, c cases.Case) error {
	return r.log.append(c.HorseID, c)
}

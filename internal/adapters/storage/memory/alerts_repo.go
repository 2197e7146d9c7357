package memory

import (
	"context"

	"equine-vet-dashboard/internal/domain/alerts"
)

// Las alertas vienen pre-armadas en el seed; no hay alta desde la UI.
type alertRepo struct {
	log *appendLog[alerts.Alert]
}

func NewAlertRepo(base map[string][]alerts.Alert) alerts.Repository {
	return &alertRepo{log: newAppendLog(base, alerts.Alert.Clone)}
}

func (r *alertRepo) ListByHorse(ctx context.Context, horseID string) ([]alerts.Alert, error) {
	return r.log.list(horseID), nil
}

package alerts

import (
	"equine-vet-dashboard/internal/domain/clinical"
	"equine-vet-dashboard/internal/domain/vitals"
)

// Alert es un aviso pre-armado en el dataset. No se genera desde umbrales en vivo.
type Alert struct {
	ID      string
	HorseID string

	Severity    clinical.Severity
	Title       string
	Description string

	MetricKey vitals.MetricKey
	History   []vitals.Point

	RecommendedNextSteps []string
}

func (a Alert) Clone() Alert {
	if a.History != nil {
		a.History = append([]vitals.Point(nil), a.History...)
	}
	if a.RecommendedNextSteps != nil {
		a.RecommendedNextSteps = append([]string(nil), a.RecommendedNextSteps...)
	}
	return a
}

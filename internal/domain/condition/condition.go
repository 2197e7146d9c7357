package condition

import (
	"equine-vet-dashboard/internal/domain/cases"
	"equine-vet-dashboard/internal/domain/clinical"
	"equine-vet-dashboard/internal/domain/vitals"
)

const (
	TextNoData    = "No recent vitals data available"
	TextAttention = "Requires immediate attention"
	TextMonitor   = "Stable, monitoring recommended"
	TextGood      = "Good condition, all systems normal"
)

// Summary es el resultado del clasificador (tarjeta "Current Condition").
type Summary struct {
	Status clinical.Status
	Text   string
}

// Label es el texto del badge.
func (s Summary) Label() string {
	switch s.Status {
	case clinical.StatusGreen:
		return "Good"
	case clinical.StatusYellow:
		return "Monitor"
	default:
		return "Alert"
	}
}

// Classify evalúa en orden, gana la primera regla que aplica:
//  1. sin vitals -> yellow
//  2. caso active, recovery < 60 o inflammation > 7 -> red
//  3. recovery < 80 o inflammation > 5 -> yellow
//  4. green
//
// Solo mira el último snapshot, sin histéresis.
func Classify(latest *vitals.Reading, items []cases.Case) Summary {
	if latest == nil {
		return Summary{Status: clinical.StatusYellow, Text: TextNoData}
	}

	if cases.HasActive(items) || latest.RecoveryScore < 60 || latest.InflammationIndex > 7 {
		return Summary{Status: clinical.StatusRed, Text: TextAttention}
	}
	if latest.RecoveryScore < 80 || latest.InflammationIndex > 5 {
		return Summary{Status: clinical.StatusYellow, Text: TextMonitor}
	}
	return Summary{Status: clinical.StatusGreen, Text: TextGood}
}

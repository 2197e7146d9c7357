package clinical

import (
	"errors"
	"strings"
)

var (
	ErrInvalidSeverity = errors.New("invalid severity")
)

// Status es el semáforo que usa el dashboard (tarjetas, badges).
// @Enum green, yellow, red
type Status string

const (
	StatusGreen  Status = "green"
	StatusYellow Status = "yellow"
	StatusRed    Status = "red"
)

// Severity de eventos, alertas y hallazgos de lesión.
// @Enum low, med, high
type Severity string

const (
	SeverityLow  Severity = "low"
	SeverityMed  Severity = "med"
	SeverityHigh Severity = "high"
)

func ParseSeverity(s string) (Severity, error) {
	switch Severity(strings.ToLower(strings.TrimSpace(s))) {
	case SeverityLow:
		return SeverityLow, nil
	case SeverityMed:
		return SeverityMed, nil
	case SeverityHigh:
		return SeverityHigh, nil
	default:
		return "", ErrInvalidSeverity
	}
}

// rank: 0 = ausente / desconocida.
func (s Severity) rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMed:
		return 2
	case SeverityHigh:
		return 3
	default:
		return 0
	}
}

// Trend es la dirección de una serie numérica.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

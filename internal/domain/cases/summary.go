package cases

import "equine-vet-dashboard/internal/domain/clinical"

// Summary alimenta la tarjeta "Active Cases" y el detalle de métricas.
type Summary struct {
	Total      int
	Active     int
	Monitoring int
	Resolved   int

	// Highest es vacío si no hay casos.
	Highest clinical.Severity
}

// Summarize cuenta por estado. La severidad sale del estado: active=high, monitoring=med, resto=low.
func Summarize(items []Case) Summary {
	s := Summary{Total: len(items)}
	for _, c := range items {
		switch c.Status {
		case StatusActive:
			s.Active++
		case StatusMonitoring:
			s.Monitoring++
		case StatusResolved:
			s.Resolved++
		}
		s.Highest = clinical.HighestSeverity(s.Highest, SeverityOf(c.Status))
	}
	return s
}

func SeverityOf(st Status) clinical.Severity {
	switch st {
	case StatusActive:
		return clinical.SeverityHigh
	case StatusMonitoring:
		return clinical.SeverityMed
	default:
		return clinical.SeverityLow
	}
}

// HasActive: algún caso en estado active (dispara rojo en el clasificador).
func HasActive(items []Case) bool {
	for _, c := range items {
		if c.Status == StatusActive {
			return true
		}
	}
	return false
}

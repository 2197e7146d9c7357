package clinical

// SeverityToStatus mapea severidad a semáforo. Cualquier valor que no sea low/med es rojo.
func SeverityToStatus(s Severity) Status {
	switch s {
	case SeverityLow:
		return StatusGreen
	case SeverityMed:
		return StatusYellow
	default:
		return StatusRed
	}
}

// ScoreToStatus mapea un score 0-100. Cotas inferiores inclusivas: >=80 verde, >=60 amarillo.
func ScoreToStatus(score float64) Status {
	if score >= 80 {
		return StatusGreen
	}
	if score >= 60 {
		return StatusYellow
	}
	return StatusRed
}

// HighestSeverity devuelve la mayor de las dos (high > med > low).
// Un valor vacío cuenta como ausente.
func HighestSeverity(current, next Severity) Severity {
	if next.rank() > current.rank() {
		return next
	}
	return current
}

package condition

// Textos del detalle de métricas. Los cortes son distintos a los del clasificador.

func RecoveryBand(score float64) string {
	switch {
	case score >= 70:
		return "Good recovery status"
	case score >= 50:
		return "Moderate recovery"
	default:
		return "Poor recovery - requires attention"
	}
}

func InflammationBand(index float64) string {
	switch {
	case index <= 3:
		return "Normal inflammation levels"
	case index <= 6:
		return "Elevated - monitor closely"
	default:
		return "High - immediate attention needed"
	}
}

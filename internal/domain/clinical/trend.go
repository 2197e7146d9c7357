package clinical

// ComputeTrend compara el promedio de los últimos 3 puntos contra el de los primeros 3.
// Si la diferencia supera el 10% del rango (max-min) de la serie, reporta improving/declining.
// Series con menos de 2 puntos son stable.
func ComputeTrend(series []float64) Trend {
	if len(series) < 2 {
		return TrendStable
	}

	head := series[:min(3, len(series))]
	tail := series[max(0, len(series)-3):]

	diff := mean(tail) - mean(head)

	lo, hi := series[0], series[0]
	for _, v := range series[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	threshold := (hi - lo) * 0.1

	switch {
	case diff > threshold:
		return TrendImproving
	case diff < -threshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

package vitals

import "time"

// Tail devuelve las últimas r.Days() lecturas de una serie ya ordenada asc.
// Con muestreo irregular la cantidad devuelta no equivale a días calendario (ver Window).
func Tail(series []Reading, r Range) []Reading {
	n := r.Days()
	if len(series) <= n {
		return append([]Reading(nil), series...)
	}
	return append([]Reading(nil), series[len(series)-n:]...)
}

// Window devuelve las lecturas fechadas desde now-N días (inclusive), en el orden original.
func Window(series []Reading, r Range, now time.Time) []Reading {
	from := truncateDay(now).AddDate(0, 0, -r.Days())

	out := make([]Reading, 0, len(series))
	for _, v := range series {
		if v.Date.Before(from) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Slice aplica el modo de recorte elegido en la sesión.
func Slice(series []Reading, r Range, mode WindowMode, now time.Time) []Reading {
	if mode == WindowCalendar {
		return Window(series, r, now)
	}
	return Tail(series, r)
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

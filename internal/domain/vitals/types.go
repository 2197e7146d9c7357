package vitals

import (
	"errors"
	"strings"
)

var (
	ErrInvalidRange  = errors.New("range must be one of 7d, 30d, 6m")
	ErrInvalidWindow = errors.New("window must be tail or calendar")
)

// Range es el rango simbólico del selector del header.
// @Enum 7d, 30d, 6m
type Range string

const (
	Range7Days   Range = "7d"
	Range30Days  Range = "30d"
	Range6Months Range = "6m"
)

const DefaultRange = Range30Days

func ParseRange(s string) (Range, error) {
	switch r := Range(strings.TrimSpace(s)); r {
	case Range7Days, Range30Days, Range6Months:
		return r, nil
	default:
		return "", ErrInvalidRange
	}
}

// Days convierte el rango a cantidad de días (6m = 180).
func (r Range) Days() int {
	switch r {
	case Range7Days:
		return 7
	case Range30Days:
		return 30
	default:
		return 180
	}
}

// WindowMode define cómo se recorta la serie por rango.
// @Enum tail, calendar
type WindowMode string

const (
	// WindowTail: últimas N lecturas (N = días del rango), sin mirar fechas.
	WindowTail WindowMode = "tail"
	// WindowCalendar: lecturas con fecha dentro de los últimos N días calendario.
	WindowCalendar WindowMode = "calendar"
)

func ParseWindowMode(s string) (WindowMode, error) {
	switch m := WindowMode(strings.TrimSpace(s)); m {
	case "":
		return WindowTail, nil
	case WindowTail, WindowCalendar:
		return m, nil
	default:
		return "", ErrInvalidWindow
	}
}

package dashboard

import (
	"fmt"
	"strings"
)

// RecordKind son los tipos de alta del modal "Add Data".
// @Enum medical-event, active-case, vitals, upcoming-event
type RecordKind string

const (
	RecordMedicalEvent  RecordKind = "medical-event"
	RecordActiveCase    RecordKind = "active-case"
	RecordVitals        RecordKind = "vitals"
	RecordUpcomingEvent RecordKind = "upcoming-event"
)

var recordKinds = []RecordKind{RecordMedicalEvent, RecordActiveCase, RecordVitals, RecordUpcomingEvent}

func ParseRecordKind(s string) (RecordKind, error) {
	k := RecordKind(strings.TrimSpace(s))
	for _, known := range recordKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: unknown record kind %q", ErrInvalidInput, s)
}

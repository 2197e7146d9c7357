package history

import (
	"time"

	"equine-vet-dashboard/internal/domain/clinical"
)

type Attachment struct {
	Label string
	URL   string // placeholder, no hay storage de archivos
}

// Event es un evento clínico del historial. Inmutable una vez creado.
type Event struct {
	ID      string
	HorseID string

	Date     time.Time
	EndDate  *time.Time // opcional: tratamientos con fin conocido
	Category Category

	Title      string
	BodySystem BodySystem
	Severity   clinical.Severity
	Notes      string
	Clinician  string

	Attachments []Attachment
}

// Clone copia EndDate y Attachments para que la copia no comparta memoria con el original.
func (e Event) Clone() Event {
	if e.EndDate != nil {
		end := *e.EndDate
		e.EndDate = &end
	}
	if e.Attachments != nil {
		e.Attachments = append([]Attachment(nil), e.Attachments...)
	}
	return e
}

package cases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListByHorse respeta el orden de inserción (dataset base primero, luego agregados).
func (s *Service) ListByHorse(ctx context.Context, horseID string) ([]Case, error) {
	return s.repo.ListByHorse(ctx, horseID)
}

func (s *Service) GetByID(ctx context.Context, horseID, id string) (Case, bool, error) {
	items, err := s.repo.ListByHorse(ctx, horseID)
	if err != nil {
		return Case{}, false, err
	}
	for _, c := range items {
		if c.ID == id {
			return c, true, nil
		}
	}
	return Case{}, false, nil
}

type OpenInput struct {
	Diagnosis      string
	OnsetDate      time.Time
	Status         Status
	TreatmentPlan  string
	Meds           []Medication
	NextReviewDate time.Time
}

// Open registra un caso nuevo. Medicaciones con algún campo vacío se descartan
// (el formulario deja filas vacías al agregar).
func (s *Service) Open(ctx context.Context, horseID string, in OpenInput) (Case, error) {
	horseID = strings.TrimSpace(horseID)
	if horseID == "" {
		return Case{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Diagnosis) == "" {
		return Case{}, fmt.Errorf("%w: diagnosis required", ErrInvalidInput)
	}
	if in.OnsetDate.IsZero() {
		return Case{}, fmt.Errorf("%w: onset date required", ErrInvalidInput)
	}
	st := in.Status
	if st == "" {
		st = StatusActive
	}
	if !st.Valid() {
		return Case{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, in.Status)
	}
	if !in.NextReviewDate.IsZero() && in.NextReviewDate.Before(in.OnsetDate) {
		return Case{}, fmt.Errorf("%w: next review before onset", ErrInvalidInput)
	}

	meds := make([]Medication, 0, len(in.Meds))
	for _, m := range in.Meds {
		m = Medication{
			Name:      strings.TrimSpace(m.Name),
			Dose:      strings.TrimSpace(m.Dose),
			Frequency: strings.TrimSpace(m.Frequency),
		}
		if m.Name == "" || m.Dose == "" || m.Frequency == "" {
			continue
		}
		meds = append(meds, m)
	}

	c := Case{
		ID:             "c-" + uuid.NewString(),
		HorseID:        horseID,
		Diagnosis:      strings.TrimSpace(in.Diagnosis),
		OnsetDate:      in.OnsetDate,
		Status:         st,
		TreatmentPlan:  strings.TrimSpace(in.TreatmentPlan),
		Meds:           meds,
		NextReviewDate: in.NextReviewDate,
	}

	if err := s.repo.Append(ctx, c); err != nil {
		return Case{}, err
	}
	return c, nil
}

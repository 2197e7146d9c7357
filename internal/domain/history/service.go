package history

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"equine-vet-dashboard/internal/domain/clinical"

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

// ListByHorse devuelve el historial del más reciente al más antiguo.
func (s *Service) ListByHorse(ctx context.Context, horseID string) ([]Event, error) {
	items, err := s.repo.ListByHorse(ctx, horseID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
	return items, nil
}

// GetByID busca dentro del historial del caballo (los IDs son por caballo).
func (s *Service) GetByID(ctx context.Context, horseID, id string) (Event, bool, error) {
	items, err := s.repo.ListByHorse(ctx, horseID)
	if err != nil {
		return Event{}, false, err
	}
	for _, e := range items {
		if e.ID == id {
			return e, true, nil
		}
	}
	return Event{}, false, nil
}

type RecordInput struct {
	Date        time.Time
	EndDate     *time.Time
	Category    Category
	Title       string
	BodySystem  BodySystem
	Severity    clinical.Severity
	Notes       string
	Clinician   string
	Attachments []Attachment
}

func (s *Service) Record(ctx context.Context, horseID string, in RecordInput) (Event, error) {
	horseID = strings.TrimSpace(horseID)
	if horseID == "" {
		return Event{}, ErrInvalidInput
	}
	if in.Date.IsZero() {
		return Event{}, fmt.Errorf("%w: date required", ErrInvalidInput)
	}
	if !in.Category.Valid() {
		return Event{}, fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, in.Category)
	}
	if strings.TrimSpace(in.Title) == "" {
		return Event{}, fmt.Errorf("%w: title required", ErrInvalidInput)
	}
	sev, err := clinical.ParseSeverity(string(in.Severity))
	if err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bs := in.BodySystem
	if bs == "" {
		bs = BodySystemGeneral
	}
	if !bs.Valid() {
		return Event{}, fmt.Errorf("%w: unknown body system %q", ErrInvalidInput, bs)
	}
	if in.EndDate != nil && in.EndDate.Before(in.Date) {
		return Event{}, fmt.Errorf("%w: end date before date", ErrInvalidInput)
	}

	var end *time.Time
	if in.EndDate != nil {
		d := *in.EndDate
		end = &d
	}

	e := Event{
		ID:          "m-" + uuid.NewString(),
		HorseID:     horseID,
		Date:        in.Date,
		EndDate:     end,
		Category:    in.Category,
		Title:       strings.TrimSpace(in.Title),
		BodySystem:  bs,
		Severity:    sev,
		Notes:       strings.TrimSpace(in.Notes),
		Clinician:   strings.TrimSpace(in.Clinician),
		Attachments: append([]Attachment(nil), in.Attachments...),
	}

	if err := s.repo.Append(ctx, e); err != nil {
		return Event{}, err
	}
	return e, nil
}

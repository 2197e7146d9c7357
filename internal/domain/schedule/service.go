package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"
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

// ListByHorse devuelve los eventos ordenados por fecha/hora asc.
func (s *Service) ListByHorse(ctx context.Context, horseID string) ([]Event, error) {
	items, err := s.repo.ListByHorse(ctx, horseID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DateTime.Before(items[j].DateTime)
	})
	return items, nil
}

type RecordInput struct {
	DateTime time.Time
	Kind     Kind
	Title    string
	Priority Priority
}

func (s *Service) Record(ctx context.Context, horseID string, in RecordInput) (Event, error) {
	horseID = strings.TrimSpace(horseID)
	if horseID == "" {
		return Event{}, ErrInvalidInput
	}
	if in.DateTime.IsZero() {
		return Event{}, fmt.Errorf("%w: date/time required", ErrInvalidInput)
	}
	if !in.Kind.Valid() {
		return Event{}, fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, in.Kind)
	}
	if strings.TrimSpace(in.Title) == "" {
		return Event{}, fmt.Errorf("%w: title required", ErrInvalidInput)
	}
	p := in.Priority
	if p == "" {
		p = PriorityMed
	}
	if !p.Valid() {
		return Event{}, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, in.Priority)
	}

	e := Event{
		ID:       "u-" + uuid.NewString(),
		HorseID:  horseID,
		DateTime: in.DateTime,
		Kind:     in.Kind,
		Title:    strings.TrimSpace(in.Title),
		Priority: p,
	}
	if err := s.repo.Append(ctx, e); err != nil {
		return Event{}, err
	}
	return e, nil
}

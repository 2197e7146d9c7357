package vitals

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
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

// ListByHorse devuelve las lecturas ordenadas por fecha asc (estable: las agregadas
// el mismo día quedan después de las del dataset base).
func (s *Service) ListByHorse(ctx context.Context, horseID string) ([]Reading, error) {
	items, err := s.repo.ListByHorse(ctx, horseID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})
	return items, nil
}

type RecordInput struct {
	Date              time.Time
	RestingHR         float64
	TempC             float64
	RespRate          float64
	RecoveryScore     float64
	InflammationIndex float64
	SymmetryPct       float64
}

func (s *Service) Record(ctx context.Context, horseID string, in RecordInput) (Reading, error) {
	horseID = strings.TrimSpace(horseID)
	if horseID == "" {
		return Reading{}, ErrInvalidInput
	}
	if err := validate(in); err != nil {
		return Reading{}, err
	}

	r := Reading{
		HorseID:           horseID,
		Date:              truncateDay(in.Date),
		RestingHR:         in.RestingHR,
		TempC:             in.TempC,
		RespRate:          in.RespRate,
		RecoveryScore:     in.RecoveryScore,
		InflammationIndex: in.InflammationIndex,
		SymmetryPct:       in.SymmetryPct,
	}
	if err := s.repo.Append(ctx, r); err != nil {
		return Reading{}, err
	}
	return r, nil
}

func validate(in RecordInput) error {
	switch {
	case in.Date.IsZero():
		return fmt.Errorf("%w: date required", ErrInvalidInput)
	case in.RestingHR <= 0 || in.TempC <= 0 || in.RespRate <= 0:
		return fmt.Errorf("%w: heart rate, temperature and respiration must be positive", ErrInvalidInput)
	case in.RecoveryScore < 0 || in.RecoveryScore > 100:
		return fmt.Errorf("%w: recovery score must be 0-100", ErrInvalidInput)
	case in.InflammationIndex < 0 || in.InflammationIndex > 10:
		return fmt.Errorf("%w: inflammation index must be 0-10", ErrInvalidInput)
	case in.SymmetryPct < 0 || in.SymmetryPct > 100:
		return fmt.Errorf("%w: symmetry must be 0-100", ErrInvalidInput)
	}
	return nil
}

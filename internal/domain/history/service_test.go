package history

import (
	"context"
	"strings"
	"testing"
	"time"

	"equine-vet-dashboard/internal/domain/clinical"
)

type testRepo struct {
	byHorse map[string][]Event
}

func newTestRepo() *testRepo {
	return &testRepo{byHorse: map[string][]Event{}}
}

func (r *testRepo) ListByHorse(ctx context.Context, horseID string) ([]Event, error) {
	return append([]Event(nil), r.byHorse[horseID]...), nil
}

func (r *testRepo) Append(ctx context.Context, e Event) error {
	r.byHorse[e.HorseID] = append(r.byHorse[e.HorseID], e)
	return nil
}

func TestService_Record_DefaultsAndID(t *testing.T) {
	svc := NewService(newTestRepo())

	e, err := svc.Record(context.Background(), "1", RecordInput{
		Date:     time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Category: CategoryCheckup,
		Title:    "  Routine exam ",
		Severity: clinical.SeverityLow,
	})
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if !strings.HasPrefix(e.ID, "m-") {
		t.Fatalf("expected id with m- prefix, got %q", e.ID)
	}
	if e.BodySystem != BodySystemGeneral {
		t.Fatalf("expected default body system General, got %s", e.BodySystem)
	}
	if e.Title != "Routine exam" {
		t.Fatalf("expected trimmed title, got %q", e.Title)
	}
}

func TestService_Record_RejectsInvalid(t *testing.T) {
	svc := NewService(newTestRepo())
	date := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	before := date.AddDate(0, 0, -1)

	cases := []RecordInput{
		{Category: CategoryInjury, Title: "x", Severity: clinical.SeverityLow},
		{Date: date, Category: "Surgery", Title: "x", Severity: clinical.SeverityLow},
		{Date: date, Category: CategoryInjury, Title: " ", Severity: clinical.SeverityLow},
		{Date: date, Category: CategoryInjury, Title: "x", Severity: "extreme"},
		{Date: date, Category: CategoryInjury, Title: "x", Severity: clinical.SeverityLow, BodySystem: "Cardiac"},
		{Date: date, EndDate: &before, Category: CategoryTreatment, Title: "x", Severity: clinical.SeverityLow},
	}
	for i, in := range cases {
		if _, err := svc.Record(context.Background(), "1", in); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}

func TestService_ListByHorse_NewestFirst(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	for _, d := range []int{5, 20, 12} {
		_, err := svc.Record(ctx, "1", RecordInput{
			Date:     time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC),
			Category: CategoryTreatment,
			Title:    "t",
			Severity: clinical.SeverityMed,
		})
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	items, err := svc.ListByHorse(ctx, "1")
	if err != nil {
		t.Fatalf("ListByHorse: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 events, got %d", len(items))
	}
	if items[0].Date.Day() != 20 || items[2].Date.Day() != 5 {
		t.Fatalf("expected newest first, got %v, %v, %v", items[0].Date, items[1].Date, items[2].Date)
	}

	got, ok, err := svc.GetByID(ctx, "1", items[1].ID)
	if err != nil || !ok || got.ID != items[1].ID {
		t.Fatalf("expected GetByID to find event, ok=%v err=%v", ok, err)
	}
	if _, ok, _ := svc.GetByID(ctx, "2", items[1].ID); ok {
		t.Fatalf("event must be scoped to its horse")
	}
}

func TestPhaseOf(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	recent := Event{Date: now.AddDate(0, 0, -10)}
	old := Event{Date: now.AddDate(0, 0, -40)}
	endedRecently := now.AddDate(0, 0, -3)
	oldButEnded := Event{Date: now.AddDate(0, 0, -40), EndDate: &endedRecently}

	if got := PhaseOf(recent, now, 0); got != PhaseActive {
		t.Fatalf("expected Active for 10-day-old event, got %s", got)
	}
	if got := PhaseOf(Event{Date: now.AddDate(0, 0, -14)}, now, 14); got != PhaseActive {
		t.Fatalf("expected Active on the 14-day boundary, got %s", got)
	}
	if got := PhaseOf(old, now, 14); got != PhaseHistorical {
		t.Fatalf("expected Historical for 40-day-old event, got %s", got)
	}
	if got := PhaseOf(oldButEnded, now, 14); got != PhaseActive {
		t.Fatalf("expected Active when end date is recent, got %s", got)
	}
}

func TestService_Record_CopiesInput(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	end := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)
	atts := []Attachment{{Label: "Ultrasound", URL: "#"}}
	_, err := svc.Record(context.Background(), "1", RecordInput{
		Date:        time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     &end,
		Category:    CategoryTreatment,
		Title:       "Shockwave",
		Severity:    clinical.SeverityMed,
		Attachments: atts,
	})
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}

	atts[0].Label = "changed"
	end = end.AddDate(0, 1, 0)

	stored := repo.byHorse["1"][0]
	if stored.Attachments[0].Label != "Ultrasound" {
		t.Fatalf("attachments shared with caller: %q", stored.Attachments[0].Label)
	}
	if !stored.EndDate.Equal(time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("end date shared with caller: %v", stored.EndDate)
	}
}

func TestEvent_Clone(t *testing.T) {
	end := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)
	e := Event{EndDate: &end, Attachments: []Attachment{{Label: "a"}}}

	c := e.Clone()
	c.Attachments[0].Label = "b"
	*c.EndDate = end.AddDate(0, 0, 1)

	if e.Attachments[0].Label != "a" || !e.EndDate.Equal(end) {
		t.Fatalf("clone shares memory with original: %+v", e)
	}
}

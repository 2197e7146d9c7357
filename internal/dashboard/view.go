package dashboard

import (
	"context"
	"time"

	"equine-vet-dashboard/internal/domain/alerts"
	"equine-vet-dashboard/internal/domain/cases"
	"equine-vet-dashboard/internal/domain/clinical"
	"equine-vet-dashboard/internal/domain/condition"
	"equine-vet-dashboard/internal/domain/history"
	"equine-vet-dashboard/internal/domain/horses"
	"equine-vet-dashboard/internal/domain/injuries"
	"equine-vet-dashboard/internal/domain/schedule"
	"equine-vet-dashboard/internal/domain/vitals"
)

const dateLayout = "2006-01-02"

// View es el dashboard compuesto para el caballo seleccionado.
// Slices vacíos y punteros nil son los estados "No data" de la UI.
type View struct {
	State       State             `json:"state"`
	Horses      []horses.Response `json:"horses"`
	Horse       horses.Response   `json:"horse"`
	Summary     SummaryCards      `json:"summary"`
	ActiveCases []CaseItem        `json:"active_cases"`
	Timeline    []TimelineItem    `json:"timeline"`
	Vitals      []VitalsItem      `json:"vitals"`
	Injuries    InjuryPanel       `json:"injuries"`
	Alerts      []AlertItem       `json:"alerts"`
	Upcoming    []UpcomingItem    `json:"upcoming"`
	Detail      *Detail           `json:"detail,omitempty"`
}

type SummaryCards struct {
	Condition ConditionCard `json:"condition"`
	Cases     CasesCard     `json:"cases"`
	Recovery  *RecoveryCard `json:"recovery,omitempty"`
	// LastVisit: evento más reciente del historial. NextVisit: próximo evento agendado.
	LastVisit *time.Time `json:"last_visit,omitempty"`
	NextVisit *time.Time `json:"next_visit,omitempty"`
}

type ConditionCard struct {
	Status clinical.Status `json:"status"`
	Label  string          `json:"label"`
	Text   string          `json:"text"`
}

type CasesCard struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	Monitoring int `json:"monitoring"`
	Resolved   int `json:"resolved"`
	// Status vacío si no hay casos.
	Status clinical.Status `json:"status,omitempty"`
}

type RecoveryCard struct {
	Score  float64         `json:"score"`
	Status clinical.Status `json:"status"`
	Label  string          `json:"label"`
}

type MedicationItem struct {
	Name      string `json:"name"`
	Dose      string `json:"dose"`
	Frequency string `json:"frequency"`
}

type CaseItem struct {
	ID             string           `json:"id"`
	Diagnosis      string           `json:"diagnosis"`
	OnsetDate      time.Time        `json:"onset_date"`
	Status         cases.Status     `json:"status"`
	StatusColor    clinical.Status  `json:"status_color"`
	TreatmentPlan  string           `json:"treatment_plan"`
	Meds           []MedicationItem `json:"meds"`
	NextReviewDate *time.Time       `json:"next_review_date,omitempty"`
}

type AttachmentItem struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type TimelineItem struct {
	ID          string             `json:"id"`
	Date        time.Time          `json:"date"`
	EndDate     *time.Time         `json:"end_date,omitempty"`
	Type        history.Category   `json:"type"`
	Title       string             `json:"title"`
	BodySystem  history.BodySystem `json:"body_system"`
	Severity    clinical.Severity  `json:"severity"`
	Status      clinical.Status    `json:"status"`
	Phase       history.Phase      `json:"phase"`
	Notes       string             `json:"notes"`
	Clinician   string             `json:"clinician"`
	Attachments []AttachmentItem   `json:"attachments"`
}

type VitalsItem struct {
	Date              time.Time `json:"date"`
	RestingHR         float64   `json:"resting_hr"`
	TempC             float64   `json:"temp_c"`
	RespRate          float64   `json:"resp_rate"`
	RecoveryScore     float64   `json:"recovery_score"`
	InflammationIndex float64   `json:"inflammation_index"`
	SymmetryPct       float64   `json:"symmetry_pct"`
}

type PointItem struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

type AlertItem struct {
	ID                   string            `json:"id"`
	Severity             clinical.Severity `json:"severity"`
	Status               clinical.Status   `json:"status"`
	Title                string            `json:"title"`
	Description          string            `json:"description"`
	MetricKey            vitals.MetricKey  `json:"metric_key"`
	History              []PointItem       `json:"history"`
	RecommendedNextSteps []string          `json:"recommended_next_steps"`
}

type UpcomingItem struct {
	ID           string            `json:"id"`
	DateTime     time.Time         `json:"date_time"`
	Type         schedule.Kind     `json:"type"`
	Title        string            `json:"title"`
	Priority     schedule.Priority `json:"priority"`
	Status       clinical.Status   `json:"status"`
	Acknowledged bool              `json:"acknowledged"`
}

type RegionItem struct {
	Severity clinical.Severity `json:"severity"`
	Status   clinical.Status   `json:"status"`
}

// InjuryPanel alimenta el modelo 3D: severidad por zona + lesiones recientes.
type InjuryPanel struct {
	Regions map[injuries.Region]RegionItem `json:"regions"`
	Recent  []TimelineItem                 `json:"recent"`
}

// Detail es el contenido de la vista secundaria abierta. Solo uno de los campos viene cargado;
// si el destino ya no existe para el caballo actual, todos quedan nil.
type Detail struct {
	Kind    ViewKind        `json:"kind"`
	Case    *CaseItem       `json:"case,omitempty"`
	Event   *TimelineItem   `json:"event,omitempty"`
	Alert   *AlertItem      `json:"alert,omitempty"`
	Metric  *MetricDetail   `json:"metric,omitempty"`
	AddData *AddDataOptions `json:"add_data,omitempty"`
}

// AddDataOptions son los valores válidos de los formularios de alta.
type AddDataOptions struct {
	RecordKinds  []RecordKind         `json:"record_kinds"`
	Categories   []history.Category   `json:"categories"`
	BodySystems  []history.BodySystem `json:"body_systems"`
	Severities   []clinical.Severity  `json:"severities"`
	CaseStatuses []cases.Status       `json:"case_statuses"`
	EventTypes   []schedule.Kind      `json:"event_types"`
	Priorities   []schedule.Priority  `json:"priorities"`
}

// snapshot es lo leído de los repos para el caballo seleccionado.
type snapshot struct {
	horse    horses.Horse
	horses   []horses.Horse
	vitals   []vitals.Reading
	latest   *vitals.Reading
	history  []history.Event
	cases    []cases.Case
	alerts   []alerts.Alert
	upcoming []schedule.Event
}

func (s *Session) loadLocked(ctx context.Context) (snapshot, error) {
	var (
		snap snapshot
		err  error
	)
	if snap.horse, err = s.svc.horses.GetByID(ctx, s.horseID); err != nil {
		return snapshot{}, err
	}
	if snap.horses, err = s.svc.horses.List(ctx); err != nil {
		return snapshot{}, err
	}
	if snap.vitals, err = s.svc.vitals.ListByHorse(ctx, s.horseID); err != nil {
		return snapshot{}, err
	}
	if len(snap.vitals) > 0 {
		latest := snap.vitals[len(snap.vitals)-1]
		snap.latest = &latest
	}
	if snap.history, err = s.svc.history.ListByHorse(ctx, s.horseID); err != nil {
		return snapshot{}, err
	}
	if snap.cases, err = s.svc.cases.ListByHorse(ctx, s.horseID); err != nil {
		return snapshot{}, err
	}
	if snap.alerts, err = s.svc.alerts.ListByHorse(ctx, s.horseID); err != nil {
		return snapshot{}, err
	}
	if snap.upcoming, err = s.svc.upcoming.ListByHorse(ctx, s.horseID); err != nil {
		return snapshot{}, err
	}
	return snap, nil
}

// Compose arma el dashboard completo a partir del estado actual.
func (s *Session) Compose(ctx context.Context) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.loadLocked(ctx)
	if err != nil {
		return View{}, err
	}
	now := s.now()

	v := View{
		State:       s.stateLocked(),
		Horses:      make([]horses.Response, 0, len(snap.horses)),
		Horse:       horses.ToResponse(snap.horse),
		Summary:     summaryCards(snap),
		ActiveCases: caseItems(snap.cases),
		Timeline:    make([]TimelineItem, 0, len(snap.history)),
		Alerts:      make([]AlertItem, 0, len(snap.alerts)),
		Upcoming:    make([]UpcomingItem, 0, len(snap.upcoming)),
	}
	for _, h := range snap.horses {
		v.Horses = append(v.Horses, horses.ToResponse(h))
	}
	for _, e := range snap.history {
		v.Timeline = append(v.Timeline, s.toTimelineItem(e, now))
	}

	sliced := vitals.Slice(snap.vitals, s.rng, s.window, now)
	v.Vitals = make([]VitalsItem, 0, len(sliced))
	for _, r := range sliced {
		v.Vitals = append(v.Vitals, toVitalsItem(r))
	}

	v.Injuries = s.injuryPanel(snap.history, now)

	for _, a := range snap.alerts {
		v.Alerts = append(v.Alerts, toAlertItem(a))
	}
	for _, e := range snap.upcoming {
		v.Upcoming = append(v.Upcoming, toUpcomingItem(e, s.acks.Has(e.ID)))
	}

	if s.view != nil {
		v.Detail = s.detailLocked(snap, *s.view, now)
	}
	return v, nil
}

func summaryCards(snap snapshot) SummaryCards {
	cond := condition.Classify(snap.latest, snap.cases)
	sum := cases.Summarize(snap.cases)

	out := SummaryCards{
		Condition: ConditionCard{Status: cond.Status, Label: cond.Label(), Text: cond.Text},
		Cases: CasesCard{
			Total:      sum.Total,
			Active:     sum.Active,
			Monitoring: sum.Monitoring,
			Resolved:   sum.Resolved,
		},
	}
	if sum.Highest != "" {
		out.Cases.Status = clinical.SeverityToStatus(sum.Highest)
	}
	if snap.latest != nil {
		st := clinical.ScoreToStatus(snap.latest.RecoveryScore)
		out.Recovery = &RecoveryCard{Score: snap.latest.RecoveryScore, Status: st, Label: recoveryLabel(st)}
	}
	out.LastVisit, out.NextVisit = visits(snap)
	return out
}

func recoveryLabel(st clinical.Status) string {
	switch st {
	case clinical.StatusGreen:
		return "Good"
	case clinical.StatusYellow:
		return "Fair"
	default:
		return "Poor"
	}
}

// visits asume historial desc y próximos asc (así los devuelven los services).
func visits(snap snapshot) (last, next *time.Time) {
	if len(snap.history) > 0 {
		d := snap.history[0].Date
		last = &d
	}
	if len(snap.upcoming) > 0 {
		d := snap.upcoming[0].DateTime
		next = &d
	}
	return last, next
}

func (s *Session) injuryPanel(events []history.Event, now time.Time) InjuryPanel {
	regions := s.mapper.Map(events)
	p := InjuryPanel{
		Regions: make(map[injuries.Region]RegionItem, len(regions)),
		Recent:  make([]TimelineItem, 0),
	}
	for r, sev := range regions {
		p.Regions[r] = RegionItem{Severity: sev, Status: clinical.SeverityToStatus(sev)}
	}
	for _, e := range s.mapper.Recent(events) {
		p.Recent = append(p.Recent, s.toTimelineItem(e, now))
	}
	return p
}

func (s *Session) detailLocked(snap snapshot, ov OpenView, now time.Time) *Detail {
	d := &Detail{Kind: ov.Kind}
	switch ov.Kind {
	case ViewCase:
		for _, c := range snap.cases {
			if c.ID == ov.ID {
				item := toCaseItem(c)
				d.Case = &item
				break
			}
		}
	case ViewTimelineEvent:
		for _, e := range snap.history {
			if e.ID == ov.ID {
				item := s.toTimelineItem(e, now)
				d.Event = &item
				break
			}
		}
	case ViewAlert:
		for _, a := range snap.alerts {
			if a.ID == ov.ID {
				item := toAlertItem(a)
				d.Alert = &item
				break
			}
		}
	case ViewMetric:
		if m, err := ParseMetric(ov.ID); err == nil {
			md := metricDetail(m, snap, now)
			d.Metric = &md
		}
	case ViewAddData:
		d.AddData = addDataOptions()
	}
	return d
}

func addDataOptions() *AddDataOptions {
	return &AddDataOptions{
		RecordKinds: append([]RecordKind(nil), recordKinds...),
		Categories: []history.Category{
			history.CategoryInjury, history.CategoryTreatment, history.CategoryMedication,
			history.CategoryVaccination, history.CategoryCheckup,
		},
		BodySystems: []history.BodySystem{
			history.BodySystemMusculoskeletal, history.BodySystemRespiratory,
			history.BodySystemDigestive, history.BodySystemGeneral,
		},
		Severities:   []clinical.Severity{clinical.SeverityLow, clinical.SeverityMed, clinical.SeverityHigh},
		CaseStatuses: []cases.Status{cases.StatusActive, cases.StatusMonitoring, cases.StatusResolved},
		EventTypes: []schedule.Kind{
			schedule.KindVaccination, schedule.KindFollowUp, schedule.KindTreatmentEnd, schedule.KindLabReview,
		},
		Priorities: []schedule.Priority{schedule.PriorityLow, schedule.PriorityMed, schedule.PriorityHigh},
	}
}

func toCaseItem(c cases.Case) CaseItem {
	item := CaseItem{
		ID:            c.ID,
		Diagnosis:     c.Diagnosis,
		OnsetDate:     c.OnsetDate,
		Status:        c.Status,
		StatusColor:   clinical.SeverityToStatus(cases.SeverityOf(c.Status)),
		TreatmentPlan: c.TreatmentPlan,
		Meds:          make([]MedicationItem, 0, len(c.Meds)),
	}
	if !c.NextReviewDate.IsZero() {
		d := c.NextReviewDate
		item.NextReviewDate = &d
	}
	for _, m := range c.Meds {
		item.Meds = append(item.Meds, MedicationItem{Name: m.Name, Dose: m.Dose, Frequency: m.Frequency})
	}
	return item
}

func (s *Session) toTimelineItem(e history.Event, now time.Time) TimelineItem {
	item := TimelineItem{
		ID:          e.ID,
		Date:        e.Date,
		EndDate:     e.EndDate,
		Type:        e.Category,
		Title:       e.Title,
		BodySystem:  e.BodySystem,
		Severity:    e.Severity,
		Status:      clinical.SeverityToStatus(e.Severity),
		Phase:       history.PhaseOf(e, now, s.activeDays),
		Notes:       e.Notes,
		Clinician:   e.Clinician,
		Attachments: make([]AttachmentItem, 0, len(e.Attachments)),
	}
	for _, a := range e.Attachments {
		item.Attachments = append(item.Attachments, AttachmentItem{Label: a.Label, URL: a.URL})
	}
	return item
}

func toVitalsItem(r vitals.Reading) VitalsItem {
	return VitalsItem{
		Date:              r.Date,
		RestingHR:         r.RestingHR,
		TempC:             r.TempC,
		RespRate:          r.RespRate,
		RecoveryScore:     r.RecoveryScore,
		InflammationIndex: r.InflammationIndex,
		SymmetryPct:       r.SymmetryPct,
	}
}

func toPointItems(points []vitals.Point) []PointItem {
	out := make([]PointItem, 0, len(points))
	for _, p := range points {
		out = append(out, PointItem{Date: p.Date, Value: p.Value})
	}
	return out
}

func toAlertItem(a alerts.Alert) AlertItem {
	return AlertItem{
		ID:                   a.ID,
		Severity:             a.Severity,
		Status:               clinical.SeverityToStatus(a.Severity),
		Title:                a.Title,
		Description:          a.Description,
		MetricKey:            a.MetricKey,
		History:              toPointItems(a.History),
		RecommendedNextSteps: append([]string{}, a.RecommendedNextSteps...),
	}
}

func toUpcomingItem(e schedule.Event, acked bool) UpcomingItem {
	return UpcomingItem{
		ID:           e.ID,
		DateTime:     e.DateTime,
		Type:         e.Kind,
		Title:        e.Title,
		Priority:     e.Priority,
		Status:       clinical.SeverityToStatus(clinical.Severity(e.Priority)),
		Acknowledged: acked,
	}
}

package labor

import (
	"context"
	"time"
)

// Service computes the labor views. Every computation is a pure
// function of fetched rows and the explicit now/today parameters;
// nothing here reads an ambient clock, so identical inputs always
// yield identical output.
type Service struct {
	store       StoreAPI
	recentLimit int
}

func NewService(store StoreAPI, recentLimit int) *Service {
	if recentLimit <= 0 {
		recentLimit = 10
	}
	return &Service{store: store, recentLimit: recentLimit}
}

// Activity returns the per-employee activity snapshot. Events are
// fetched from the start of today's week so week-hours can be summed.
func (s *Service) Activity(ctx context.Context, companyID string, now, today time.Time) ([]EmployeeActivity, error) {
	weekStart, _ := WeekWindow(today)
	events, err := s.store.ListClockEvents(ctx, companyID, weekStart)
	if err != nil {
		return nil, err
	}
	roster, err := s.store.ListActiveEmployees(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return BuildActivity(roster, events, now, today), nil
}

// ReconciledTimesheet merges manual entries with clock-derived daily
// totals over [from, to], manual winning per employee-day. Hours are
// rounded at this boundary; the merge itself keeps full precision.
func (s *Service) ReconciledTimesheet(ctx context.Context, companyID string, from, to, now time.Time) ([]ReconciledEntry, error) {
	entries, err := s.reconcile(ctx, companyID, from, to, now)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Hours = RoundHours(entries[i].Hours)
	}
	return entries, nil
}

// Overview aggregates reconciled hours and cost for the date range.
func (s *Service) Overview(ctx context.Context, companyID string, from, to, now time.Time) (Overview, error) {
	entries, err := s.reconcile(ctx, companyID, from, to, now)
	if err != nil {
		return Overview{}, err
	}
	rates, err := s.store.ListCurrentRates(ctx, companyID)
	if err != nil {
		return Overview{}, err
	}
	roster, err := s.store.ListActiveEmployees(ctx, companyID)
	if err != nil {
		return Overview{}, err
	}
	projectNames, err := s.store.ListProjectNames(ctx, companyID)
	if err != nil {
		return Overview{}, err
	}
	return BuildOverview(entries, rates, roster, projectNames, s.recentLimit), nil
}

func (s *Service) reconcile(ctx context.Context, companyID string, from, to, now time.Time) ([]ReconciledEntry, error) {
	rangeStart, _ := DayWindow(from)
	_, rangeEnd := DayWindow(to)

	events, err := s.store.ListClockEvents(ctx, companyID, rangeStart)
	if err != nil {
		return nil, err
	}
	manual, err := s.store.ListTimeEntries(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}

	// Pair per employee so one employee's malformed events cannot
	// disturb another's sessions.
	byEmployee := map[string][]ClockEvent{}
	var employeeOrder []string
	for _, event := range events {
		if _, ok := byEmployee[event.EmployeeID]; !ok {
			employeeOrder = append(employeeOrder, event.EmployeeID)
		}
		byEmployee[event.EmployeeID] = append(byEmployee[event.EmployeeID], event)
	}

	loc := from.Location()
	var sessions []WorkSession
	for _, employeeID := range employeeOrder {
		for _, session := range PairSessions(byEmployee[employeeID], now) {
			if session.Start.Before(rangeStart) || !session.Start.Before(rangeEnd) {
				continue
			}
			sessions = append(sessions, session)
		}
	}

	derived := DeriveDailyEntries(sessions, loc)
	return Reconcile(manual, derived), nil
}

package labor

import (
	"testing"
	"time"
)

func mustLoc(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestPairSessionsClosedPair(t *testing.T) {
	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 5, 17, 0, 0, 0, time.UTC)
	now := time.Date(2026, 1, 5, 18, 0, 0, 0, time.UTC)

	sessions := PairSessions([]ClockEvent{
		{EmployeeID: "e1", Type: EventClockIn, Timestamp: start},
		{EmployeeID: "e1", Type: EventClockOut, Timestamp: end},
	}, now)

	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if sessions[0].Open() {
		t.Fatal("expected closed session")
	}
	if got := sessions[0].Duration.Hours(); got != 8 {
		t.Fatalf("expected 8h, got %v", got)
	}

	dayStart, dayEnd := DayWindow(start)
	if hours := RoundHours(HoursStartingIn(sessions, dayStart, dayEnd)); hours != 8.0 {
		t.Fatalf("expected today-hours 8.0, got %v", hours)
	}
}

func TestPairSessionsOpenSessionEndsAtNow(t *testing.T) {
	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	now := time.Date(2026, 1, 5, 13, 0, 0, 0, time.UTC)

	sessions := PairSessions([]ClockEvent{
		{EmployeeID: "e1", Type: EventClockIn, Timestamp: start},
	}, now)

	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if !sessions[0].Open() {
		t.Fatal("expected open session")
	}
	dayStart, dayEnd := DayWindow(start)
	if hours := RoundHours(HoursStartingIn(sessions, dayStart, dayEnd)); hours != 4.0 {
		t.Fatalf("expected today-hours 4.0, got %v", hours)
	}
}

func TestPairSessionsOrphanedClockOut(t *testing.T) {
	now := time.Date(2026, 1, 5, 13, 0, 0, 0, time.UTC)

	sessions := PairSessions([]ClockEvent{
		{EmployeeID: "e1", Type: EventClockOut, Timestamp: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)},
	}, now)

	if len(sessions) != 0 {
		t.Fatalf("expected orphaned clock_out to pair nothing, got %d sessions", len(sessions))
	}
}

func TestPairSessionsOutOfOrderInputNeverNegative(t *testing.T) {
	now := time.Date(2026, 1, 5, 20, 0, 0, 0, time.UTC)
	events := []ClockEvent{
		{EmployeeID: "e1", Type: EventClockOut, Timestamp: time.Date(2026, 1, 5, 17, 0, 0, 0, time.UTC)},
		{EmployeeID: "e1", Type: EventClockIn, Timestamp: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)},
		{EmployeeID: "e1", Type: EventClockOut, Timestamp: time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)},
	}

	sessions := PairSessions(events, now)
	var total time.Duration
	for _, session := range sessions {
		if session.Duration < 0 {
			t.Fatalf("negative duration: %v", session.Duration)
		}
		total += session.Duration
	}
	if total < 0 {
		t.Fatalf("negative total: %v", total)
	}
	if len(sessions) != 1 || sessions[0].Duration.Hours() != 8 {
		t.Fatalf("expected one 8h session after sorting, got %+v", sessions)
	}
}

func TestPairSessionsSkewedClockFloorsAtZero(t *testing.T) {
	// Open session whose clock_in is ahead of now.
	start := time.Date(2026, 1, 5, 14, 0, 0, 0, time.UTC)
	now := time.Date(2026, 1, 5, 13, 0, 0, 0, time.UTC)

	sessions := PairSessions([]ClockEvent{
		{EmployeeID: "e1", Type: EventClockIn, Timestamp: start},
	}, now)

	if len(sessions) != 1 || sessions[0].Duration != 0 {
		t.Fatalf("expected zero-duration open session, got %+v", sessions)
	}
}

func TestPairSessionsDoubleClockIn(t *testing.T) {
	now := time.Date(2026, 1, 5, 18, 0, 0, 0, time.UTC)
	events := []ClockEvent{
		{EmployeeID: "e1", Type: EventClockIn, Timestamp: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)},
		{EmployeeID: "e1", Type: EventClockIn, Timestamp: time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)},
		{EmployeeID: "e1", Type: EventClockOut, Timestamp: time.Date(2026, 1, 5, 17, 0, 0, 0, time.UTC)},
	}

	sessions := PairSessions(events, now)
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].Anomaly != AnomalyDoubleClockIn {
		t.Fatalf("expected first session flagged, got %+v", sessions[0])
	}
	if !sessions[0].Open() {
		t.Fatal("expected first session left open")
	}
	if sessions[1].Open() || sessions[1].Duration.Hours() != 7 {
		t.Fatalf("expected second session closed at 7h, got %+v", sessions[1])
	}
}

func TestPairSessionsEmpty(t *testing.T) {
	if sessions := PairSessions(nil, time.Now()); sessions != nil {
		t.Fatalf("expected nil for no events, got %+v", sessions)
	}
}

func TestWeekWindowMondayStart(t *testing.T) {
	// 2026-01-07 is a Wednesday.
	today := time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)
	start, end := WeekWindow(today)

	if start.Weekday() != time.Monday {
		t.Fatalf("expected Monday start, got %v", start.Weekday())
	}
	if !start.Equal(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected week start %v", start)
	}
	if !end.Equal(time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected week end %v", end)
	}

	// Sunday belongs to the same week.
	sunday := time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)
	sundayStart, _ := WeekWindow(sunday)
	if !sundayStart.Equal(start) {
		t.Fatalf("expected Sunday to share week start, got %v", sundayStart)
	}
}

func TestHoursStartingInUsesLocalDayBoundary(t *testing.T) {
	loc := mustLoc(t, "America/Chicago")
	// 23:00 local on Jan 5 is already Jan 6 in UTC.
	start := time.Date(2026, 1, 5, 23, 0, 0, 0, loc)
	end := start.Add(2 * time.Hour)
	now := end.Add(time.Hour)

	sessions := PairSessions([]ClockEvent{
		{EmployeeID: "e1", Type: EventClockIn, Timestamp: start.UTC()},
		{EmployeeID: "e1", Type: EventClockOut, Timestamp: end.UTC()},
	}, now)

	dayStart, dayEnd := DayWindow(time.Date(2026, 1, 5, 0, 0, 0, 0, loc))
	if hours := HoursStartingIn(sessions, dayStart, dayEnd); hours != 2 {
		t.Fatalf("expected session bucketed to local Jan 5, got %v", hours)
	}

	nextStart, nextEnd := DayWindow(time.Date(2026, 1, 6, 0, 0, 0, 0, loc))
	if hours := HoursStartingIn(sessions, nextStart, nextEnd); hours != 0 {
		t.Fatalf("expected nothing on local Jan 6, got %v", hours)
	}
}

func TestRounding(t *testing.T) {
	if got := RoundHours(7.25); got != 7.3 {
		t.Fatalf("expected 7.3, got %v", got)
	}
	if got := RoundHours(7.24); got != 7.2 {
		t.Fatalf("expected 7.2, got %v", got)
	}
	if got := RoundMoney(10.0 / 3.0); got != 3.33 {
		t.Fatalf("expected 3.33, got %v", got)
	}
	if got := RoundMoney(25 * 10.0); got != 250.0 {
		t.Fatalf("expected 250.00, got %v", got)
	}
}

package labor

import (
	"reflect"
	"testing"
	"time"
)

func TestClassifyStatus(t *testing.T) {
	in := ClockEvent{EmployeeID: "e1", Type: EventClockIn, Timestamp: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)}
	out := ClockEvent{EmployeeID: "e1", Type: EventClockOut, Timestamp: time.Date(2026, 1, 5, 17, 0, 0, 0, time.UTC)}

	if got := ClassifyStatus(nil); got != StatusNoActivity {
		t.Fatalf("expected no_activity, got %q", got)
	}
	if got := ClassifyStatus([]ClockEvent{in}); got != StatusClockedIn {
		t.Fatalf("expected clocked_in, got %q", got)
	}
	if got := ClassifyStatus([]ClockEvent{in, out}); got != StatusClockedOut {
		t.Fatalf("expected clocked_out, got %q", got)
	}
	// Retrieval order must not matter; the last event by timestamp decides.
	if got := ClassifyStatus([]ClockEvent{out, in}); got != StatusClockedOut {
		t.Fatalf("expected clocked_out regardless of order, got %q", got)
	}
}

func TestBuildActivityStatusOrdering(t *testing.T) {
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	today := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	roster := []Employee{
		{ID: "idle", Name: "Idle"},
		{ID: "out", Name: "Out"},
		{ID: "in", Name: "In"},
	}
	events := []ClockEvent{
		{EmployeeID: "out", Type: EventClockIn, Timestamp: time.Date(2026, 1, 5, 7, 0, 0, 0, time.UTC)},
		{EmployeeID: "out", Type: EventClockOut, Timestamp: time.Date(2026, 1, 5, 11, 0, 0, 0, time.UTC)},
		{EmployeeID: "in", Type: EventClockIn, Timestamp: time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)},
	}

	activities := BuildActivity(roster, events, now, today)
	var statuses []string
	for _, activity := range activities {
		statuses = append(statuses, activity.CurrentStatus)
	}
	want := []string{StatusClockedIn, StatusClockedOut, StatusNoActivity}
	if !reflect.DeepEqual(statuses, want) {
		t.Fatalf("expected order %v, got %v", want, statuses)
	}
}

func TestBuildActivityHoursAndLastEvent(t *testing.T) {
	now := time.Date(2026, 1, 7, 13, 0, 0, 0, time.UTC)
	today := time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)
	roster := []Employee{{ID: "e1", Name: "Dana"}}
	events := []ClockEvent{
		// Monday: full 8h day.
		{EmployeeID: "e1", Type: EventClockIn, Timestamp: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)},
		{EmployeeID: "e1", Type: EventClockOut, Timestamp: time.Date(2026, 1, 5, 17, 0, 0, 0, time.UTC)},
		// Wednesday: open since 09:00.
		{EmployeeID: "e1", Type: EventClockIn, Timestamp: time.Date(2026, 1, 7, 9, 0, 0, 0, time.UTC)},
	}

	activities := BuildActivity(roster, events, now, today)
	if len(activities) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(activities))
	}
	activity := activities[0]
	if activity.CurrentStatus != StatusClockedIn {
		t.Fatalf("expected clocked_in, got %q", activity.CurrentStatus)
	}
	if activity.TodayHours != 4.0 {
		t.Fatalf("expected today-hours 4.0, got %v", activity.TodayHours)
	}
	if activity.WeekHours != 12.0 {
		t.Fatalf("expected week-hours 12.0, got %v", activity.WeekHours)
	}
	if activity.LastEventTimestamp == nil || !activity.LastEventTimestamp.Equal(events[2].Timestamp) {
		t.Fatalf("unexpected last event timestamp %v", activity.LastEventTimestamp)
	}
	if len(activity.TodayEvents) != 1 || !activity.TodayEvents[0].Timestamp.Equal(events[2].Timestamp) {
		t.Fatalf("unexpected today events %+v", activity.TodayEvents)
	}
}

func TestBuildActivityNoEventsIsNormal(t *testing.T) {
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	today := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	activities := BuildActivity([]Employee{{ID: "e1", Name: "Dana"}}, nil, now, today)

	if len(activities) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(activities))
	}
	activity := activities[0]
	if activity.CurrentStatus != StatusNoActivity || activity.TodayHours != 0 || activity.WeekHours != 0 {
		t.Fatalf("expected zeroed no_activity snapshot, got %+v", activity)
	}
	if activity.LastEventTimestamp != nil {
		t.Fatalf("expected nil last event, got %v", activity.LastEventTimestamp)
	}
}

func TestBuildActivityIncludesOrphanedEmployees(t *testing.T) {
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	today := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	events := []ClockEvent{
		{EmployeeID: "ghost", Type: EventClockIn, Timestamp: time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)},
	}

	activities := BuildActivity(nil, events, now, today)
	if len(activities) != 1 || activities[0].EmployeeID != "ghost" {
		t.Fatalf("expected orphaned-but-active employee in output, got %+v", activities)
	}
	if activities[0].CurrentStatus != StatusClockedIn {
		t.Fatalf("expected clocked_in, got %q", activities[0].CurrentStatus)
	}
}

func TestBuildActivityIdempotent(t *testing.T) {
	now := time.Date(2026, 1, 5, 12, 30, 0, 0, time.UTC)
	today := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	roster := []Employee{{ID: "e1", Name: "Dana"}, {ID: "e2", Name: "Riley"}}
	events := []ClockEvent{
		{EmployeeID: "e2", Type: EventClockIn, Timestamp: time.Date(2026, 1, 5, 6, 0, 0, 0, time.UTC)},
		{EmployeeID: "e1", Type: EventClockIn, Timestamp: time.Date(2026, 1, 5, 7, 0, 0, 0, time.UTC)},
		{EmployeeID: "e1", Type: EventClockOut, Timestamp: time.Date(2026, 1, 5, 11, 0, 0, 0, time.UTC)},
	}

	first := BuildActivity(roster, events, now, today)
	second := BuildActivity(roster, events, now, today)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs must yield identical output:\n%+v\n%+v", first, second)
	}
}

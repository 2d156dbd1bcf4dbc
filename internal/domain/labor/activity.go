package labor

import (
	"sort"
	"time"
)

// BuildActivity derives the per-employee activity snapshot for the
// roster plus any employee that appears in events without a roster
// row. Sorting places clocked_in before clocked_out before
// no_activity, stable by roster order otherwise.
func BuildActivity(roster []Employee, events []ClockEvent, now, today time.Time) []EmployeeActivity {
	byEmployee := map[string][]ClockEvent{}
	var orphaned []string
	known := map[string]bool{}
	for _, employee := range roster {
		known[employee.ID] = true
	}

	for _, event := range events {
		if _, ok := byEmployee[event.EmployeeID]; !ok && !known[event.EmployeeID] {
			orphaned = append(orphaned, event.EmployeeID)
		}
		byEmployee[event.EmployeeID] = append(byEmployee[event.EmployeeID], event)
	}

	activities := make([]EmployeeActivity, 0, len(roster)+len(orphaned))
	for _, employee := range roster {
		activities = append(activities, employeeActivity(employee, byEmployee[employee.ID], now, today))
	}
	for _, employeeID := range orphaned {
		activities = append(activities, employeeActivity(Employee{ID: employeeID}, byEmployee[employeeID], now, today))
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return statusRank(activities[i].CurrentStatus) < statusRank(activities[j].CurrentStatus)
	})
	return activities
}

func employeeActivity(employee Employee, events []ClockEvent, now, today time.Time) EmployeeActivity {
	activity := EmployeeActivity{
		EmployeeID:    employee.ID,
		Name:          employee.Name,
		Title:         employee.Title,
		CurrentStatus: ClassifyStatus(events),
		TodayEvents:   []ClockEvent{},
	}

	if last := lastEvent(events); last != nil {
		ts := last.Timestamp
		activity.LastEventTimestamp = &ts
	}

	dayStart, dayEnd := DayWindow(today)
	weekStart, weekEnd := WeekWindow(today)
	sessions := PairSessions(events, now)
	activity.TodayHours = RoundHours(HoursStartingIn(sessions, dayStart, dayEnd))
	activity.WeekHours = RoundHours(HoursStartingIn(sessions, weekStart, weekEnd))

	// Today's raw events stay in retrieval order; consumers re-sort
	// for display if they need to.
	for _, event := range events {
		local := event.Timestamp.In(today.Location())
		if local.Year() == today.Year() && local.Month() == today.Month() && local.Day() == today.Day() {
			activity.TodayEvents = append(activity.TodayEvents, event)
		}
	}

	return activity
}

// ClassifyStatus reports the employee's current state from the
// chronologically last event.
func ClassifyStatus(events []ClockEvent) string {
	last := lastEvent(events)
	switch {
	case last == nil:
		return StatusNoActivity
	case last.Type == EventClockIn:
		return StatusClockedIn
	default:
		return StatusClockedOut
	}
}

func lastEvent(events []ClockEvent) *ClockEvent {
	var last *ClockEvent
	for i := range events {
		if last == nil || !events[i].Timestamp.Before(last.Timestamp) {
			last = &events[i]
		}
	}
	return last
}

func statusRank(status string) int {
	switch status {
	case StatusClockedIn:
		return 0
	case StatusClockedOut:
		return 1
	default:
		return 2
	}
}

package labor

import (
	"log/slog"
	"math"
	"sort"
	"time"
)

type pairState int

const (
	awaitingIn pairState = iota
	awaitingOut
)

// PairSessions pairs one employee's clock events into work sessions.
// Events are sorted by timestamp and scanned with a two-state machine:
// a clock_in opens a session, the next clock_out closes it. A second
// clock_in before any clock_out leaves the prior session open (ended
// at now) and is flagged, matching how the field devices misreport. A
// clock_out with no open session is ignored. Durations are floored at
// zero so skewed device clocks cannot produce negative time.
func PairSessions(events []ClockEvent, now time.Time) []WorkSession {
	if len(events) == 0 {
		return nil
	}

	sorted := make([]ClockEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	var sessions []WorkSession
	state := awaitingIn
	var opened ClockEvent

	for _, event := range sorted {
		switch state {
		case awaitingIn:
			switch event.Type {
			case EventClockIn:
				opened = event
				state = awaitingOut
			case EventClockOut:
				slog.Debug("orphaned clock_out ignored",
					"employee", event.EmployeeID,
					"at", event.Timestamp,
				)
			}
		case awaitingOut:
			switch event.Type {
			case EventClockOut:
				sessions = append(sessions, closedSession(opened, event.Timestamp))
				state = awaitingIn
			case EventClockIn:
				open := openSession(opened, now)
				open.Anomaly = AnomalyDoubleClockIn
				sessions = append(sessions, open)
				slog.Warn("clock_in without intervening clock_out",
					"employee", event.EmployeeID,
					"openedAt", opened.Timestamp,
					"repeatedAt", event.Timestamp,
				)
				opened = event
			}
		}
	}

	if state == awaitingOut {
		sessions = append(sessions, openSession(opened, now))
	}

	return sessions
}

func closedSession(opened ClockEvent, end time.Time) WorkSession {
	endCopy := end
	return WorkSession{
		EmployeeID: opened.EmployeeID,
		ProjectID:  opened.ProjectID,
		Start:      opened.Timestamp,
		End:        &endCopy,
		Duration:   flooredDuration(opened.Timestamp, end),
	}
}

func openSession(opened ClockEvent, now time.Time) WorkSession {
	return WorkSession{
		EmployeeID: opened.EmployeeID,
		ProjectID:  opened.ProjectID,
		Start:      opened.Timestamp,
		Duration:   flooredDuration(opened.Timestamp, now),
	}
}

func flooredDuration(start, end time.Time) time.Duration {
	d := end.Sub(start)
	if d < 0 {
		return 0
	}
	return d
}

// HoursStartingIn sums the durations of sessions whose start falls in
// [from, to). Accumulation keeps full precision; callers round at the
// point of exposure.
func HoursStartingIn(sessions []WorkSession, from, to time.Time) float64 {
	var total float64
	for _, session := range sessions {
		if session.Start.Before(from) || !session.Start.Before(to) {
			continue
		}
		total += session.Duration.Hours()
	}
	return total
}

// DayWindow returns the [start, end) instants of the calendar day
// containing day, in day's location.
func DayWindow(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1)
}

// WeekWindow returns the [start, end) instants of the Monday-start
// week containing today, in today's location.
func WeekWindow(today time.Time) (time.Time, time.Time) {
	weekday := int(today.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	start := time.Date(today.Year(), today.Month(), today.Day()-weekday+1, 0, 0, 0, 0, today.Location())
	return start, start.AddDate(0, 0, 7)
}

// RoundHours rounds to the nearest tenth of an hour.
func RoundHours(hours float64) float64 {
	return math.Round(hours*10) / 10
}

// RoundMoney rounds to the nearest cent.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}

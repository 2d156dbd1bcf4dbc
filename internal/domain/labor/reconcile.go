package labor

import (
	"sort"
	"time"
)

// dayKey identifies one employee's calendar day. It is a struct rather
// than a concatenated string so ids containing delimiter characters
// cannot collide.
type dayKey struct {
	employeeID string
	year       int
	month      time.Month
	day        int
}

func keyFor(employeeID string, instant time.Time, loc *time.Location) dayKey {
	local := instant.In(loc)
	return dayKey{
		employeeID: employeeID,
		year:       local.Year(),
		month:      local.Month(),
		day:        local.Day(),
	}
}

// calendarKey reads the Y/M/D of a date-valued time as written. Entry
// dates are calendar dates, not instants: a manual entry's date comes
// out of a DATE column as midnight UTC while a derived entry carries
// company-local midnight, and converting either into another location
// would shift it onto a neighboring day.
func calendarKey(employeeID string, date time.Time) dayKey {
	return dayKey{
		employeeID: employeeID,
		year:       date.Year(),
		month:      date.Month(),
		day:        date.Day(),
	}
}

// DeriveDailyEntries collapses sessions into one pending entry per
// employee per day that saw any worked time. Days whose sessions sum
// to zero contribute nothing. The entry keeps the project of the
// day's first session.
func DeriveDailyEntries(sessions []WorkSession, loc *time.Location) []ReconciledEntry {
	totals := map[dayKey]*ReconciledEntry{}
	var order []dayKey

	for _, session := range sessions {
		key := keyFor(session.EmployeeID, session.Start, loc)
		entry, ok := totals[key]
		if !ok {
			local := session.Start.In(loc)
			entry = &ReconciledEntry{
				EmployeeID: session.EmployeeID,
				EntryDate:  time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc),
				Status:     EntryStatusPending,
				ProjectID:  session.ProjectID,
				Source:     SourceDerived,
			}
			totals[key] = entry
			order = append(order, key)
		}
		entry.Hours += session.Duration.Hours()
	}

	var entries []ReconciledEntry
	for _, key := range order {
		if totals[key].Hours <= 0 {
			continue
		}
		entries = append(entries, *totals[key])
	}
	return entries
}

// Reconcile merges manual time entries with clock-derived ones.
// Manual entries are authoritative per (employee, date); derived
// entries only fill days that have no manual record. Both sides are
// keyed by the calendar date they carry. The result is sorted by
// entry date then employee for stable display.
func Reconcile(manual []TimeEntry, derived []ReconciledEntry) []ReconciledEntry {
	seen := map[dayKey]bool{}
	var merged []ReconciledEntry

	for _, entry := range manual {
		key := calendarKey(entry.EmployeeID, entry.EntryDate)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, ReconciledEntry{
			EmployeeID: entry.EmployeeID,
			EntryDate:  entry.EntryDate,
			Hours:      entry.Hours,
			Status:     entry.Status,
			ProjectID:  entry.ProjectID,
			Source:     SourceManual,
		})
	}

	for _, entry := range derived {
		key := calendarKey(entry.EmployeeID, entry.EntryDate)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, entry)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i].EntryDate, merged[j].EntryDate
		if !sameCalendarDay(a, b) {
			return calendarBefore(a, b)
		}
		return merged[i].EmployeeID < merged[j].EmployeeID
	})
	return merged
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// calendarBefore orders date-valued times by their written Y/M/D,
// ignoring location and time of day.
func calendarBefore(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}

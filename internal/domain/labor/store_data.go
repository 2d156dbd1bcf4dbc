package labor

import (
	"context"
	"time"
)

func (s *Store) ListClockEvents(ctx context.Context, companyID string, since time.Time) ([]ClockEvent, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, event_type, occurred_at,
           COALESCE(project_id::text, ''),
           COALESCE(notes, '')
    FROM clock_events
    WHERE company_id = $1 AND occurred_at >= $2
    ORDER BY occurred_at
  `, companyID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []ClockEvent
	for rows.Next() {
		var event ClockEvent
		if err := rows.Scan(&event.ID, &event.EmployeeID, &event.Type, &event.Timestamp, &event.ProjectID, &event.Notes); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (s *Store) ListTimeEntries(ctx context.Context, companyID string, from, to time.Time) ([]TimeEntry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, entry_date, hours, status,
           COALESCE(project_id::text, ''),
           COALESCE(notes, '')
    FROM time_entries
    WHERE company_id = $1 AND entry_date BETWEEN $2 AND $3
    ORDER BY entry_date, employee_id
  `, companyID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []TimeEntry
	for rows.Next() {
		var entry TimeEntry
		if err := rows.Scan(&entry.ID, &entry.EmployeeID, &entry.EntryDate, &entry.Hours, &entry.Status, &entry.ProjectID, &entry.Notes); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// ListCurrentRates flattens the rate history to the latest effective
// row per employee.
func (s *Store) ListCurrentRates(ctx context.Context, companyID string) ([]RateRecord, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT DISTINCT ON (employee_id) employee_id, hourly_rate
    FROM pay_rates
    WHERE company_id = $1 AND effective_date <= CURRENT_DATE
    ORDER BY employee_id, effective_date DESC
  `, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rates []RateRecord
	for rows.Next() {
		var rate RateRecord
		if err := rows.Scan(&rate.EmployeeID, &rate.HourlyRate); err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}
	return rates, rows.Err()
}

func (s *Store) ListActiveEmployees(ctx context.Context, companyID string) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, COALESCE(title, '')
    FROM employees
    WHERE company_id = $1 AND status = 'active'
    ORDER BY name, id
  `, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		var employee Employee
		if err := rows.Scan(&employee.ID, &employee.Name, &employee.Title); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, rows.Err()
}

func (s *Store) ListProjectNames(ctx context.Context, companyID string) (map[string]string, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name
    FROM projects
    WHERE company_id = $1
  `, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := map[string]string{}
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}

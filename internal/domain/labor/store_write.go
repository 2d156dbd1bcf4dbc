package labor

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

func (s *Store) RecordClockEvent(ctx context.Context, companyID string, event ClockEvent) (string, error) {
	if event.Type != EventClockIn && event.Type != EventClockOut {
		return "", ErrInvalidEventType
	}
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO clock_events (company_id, employee_id, event_type, occurred_at, project_id, notes)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id
  `, companyID, event.EmployeeID, event.Type, event.Timestamp, nullIfEmpty(event.ProjectID), event.Notes).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) CreateTimeEntry(ctx context.Context, companyID string, entry TimeEntry) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO time_entries (company_id, employee_id, entry_date, hours, status, project_id, notes)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id
  `, companyID, entry.EmployeeID, entry.EntryDate, entry.Hours, EntryStatusPending, nullIfEmpty(entry.ProjectID), entry.Notes).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// UpdateTimeEntryStatus moves a pending entry to approved or rejected.
func (s *Store) UpdateTimeEntryStatus(ctx context.Context, companyID, entryID, status string, decidedAt time.Time) error {
	if status != EntryStatusApproved && status != EntryStatusRejected {
		return ErrInvalidEntryStatus
	}
	var current string
	err := s.DB.QueryRow(ctx, `
    SELECT status FROM time_entries WHERE company_id = $1 AND id = $2
  `, companyID, entryID).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrEntryNotFound
	}
	if err != nil {
		return err
	}
	if current != EntryStatusPending {
		return ErrEntryNotPending
	}

	_, err = s.DB.Exec(ctx, `
    UPDATE time_entries SET status = $3, decided_at = $4 WHERE company_id = $1 AND id = $2
  `, companyID, entryID, status, decidedAt)
	return err
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}

package labor

import "errors"

var (
	ErrEntryNotFound      = errors.New("time entry not found")
	ErrEntryNotPending    = errors.New("time entry is not pending")
	ErrInvalidEventType   = errors.New("clock event type must be clock_in or clock_out")
	ErrInvalidEntryStatus = errors.New("time entry status is not recognized")
)

package labor

import (
	"context"
	"time"
)

// StoreAPI is the read-only data access the labor computations
// consume. All queries are company-scoped.
type StoreAPI interface {
	ListClockEvents(ctx context.Context, companyID string, since time.Time) ([]ClockEvent, error)
	ListTimeEntries(ctx context.Context, companyID string, from, to time.Time) ([]TimeEntry, error)
	ListCurrentRates(ctx context.Context, companyID string) ([]RateRecord, error)
	ListActiveEmployees(ctx context.Context, companyID string) ([]Employee, error)
	ListProjectNames(ctx context.Context, companyID string) (map[string]string, error)
}

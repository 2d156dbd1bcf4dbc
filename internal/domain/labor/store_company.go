package labor

import (
	"context"
	"log/slog"
	"time"
)

// CompanyLocation resolves the company's calendar timezone. Falls
// back to UTC when the stored name cannot be loaded so aggregation
// still proceeds.
func (s *Store) CompanyLocation(ctx context.Context, companyID string) (*time.Location, error) {
	var tz string
	if err := s.DB.QueryRow(ctx, "SELECT timezone FROM companies WHERE id = $1", companyID).Scan(&tz); err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		slog.Warn("unknown company timezone, using UTC", "companyId", companyID, "timezone", tz)
		return time.UTC, nil
	}
	return loc, nil
}

package db

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"buildops/internal/domain/auth"
	"buildops/internal/platform/config"
)

func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	companyID, err := ensureCompany(ctx, pool, cfg.SeedCompanyName, cfg.SeedTimezone)
	if err != nil {
		return err
	}

	if err := ensureAdminUser(ctx, pool, companyID, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
		return err
	}

	if cfg.Environment != "production" {
		return ensureSampleRoster(ctx, pool, companyID)
	}
	return nil
}

func ensureCompany(ctx context.Context, pool *pgxpool.Pool, name, timezone string) (string, error) {
	var id string
	err := pool.QueryRow(ctx, "SELECT id FROM companies WHERE name = $1", name).Scan(&id)
	if err == nil {
		return id, nil
	}

	if strings.TrimSpace(timezone) == "" {
		timezone = "UTC"
	}
	err = pool.QueryRow(ctx, "INSERT INTO companies (name, timezone) VALUES ($1, $2) RETURNING id", name, timezone).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func ensureAdminUser(ctx context.Context, pool *pgxpool.Pool, companyID, email, password string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE company_id = $1 AND email = $2", companyID, email).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
    INSERT INTO users (company_id, email, password_hash, role, status)
    VALUES ($1, $2, $3, $4, 'active')
  `, companyID, email, hash, auth.RoleAdmin)
	return err
}

// ensureSampleRoster gives a fresh non-production database something to
// look at: a couple of employees with rates and one project.
func ensureSampleRoster(ctx context.Context, pool *pgxpool.Pool, companyID string) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM employees WHERE company_id = $1", companyID).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if _, err := pool.Exec(ctx, `
    INSERT INTO projects (company_id, name, code, status)
    VALUES ($1, 'Main Street Build', 'MSB-01', 'active')
  `, companyID); err != nil {
		return err
	}

	samples := []struct {
		name, title string
		rate        float64
	}{
		{"Alex Mason", "Carpenter", 32.50},
		{"Priya Nair", "Electrician", 41.00},
		{"Sam Ortiz", "Laborer", 24.00},
	}
	for _, sample := range samples {
		var employeeID string
		if err := pool.QueryRow(ctx, `
      INSERT INTO employees (company_id, name, title, status)
      VALUES ($1, $2, $3, 'active')
      RETURNING id
    `, companyID, sample.name, sample.title).Scan(&employeeID); err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, `
      INSERT INTO pay_rates (company_id, employee_id, hourly_rate, effective_date)
      VALUES ($1, $2, $3, CURRENT_DATE)
    `, companyID, employeeID, sample.rate); err != nil {
			return err
		}
	}
	return nil
}

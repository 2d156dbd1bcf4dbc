package directory

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListEmployees(ctx context.Context, companyID string, limit, offset int) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT e.id, e.name, COALESCE(e.title, ''), e.status, r.hourly_rate, e.created_at
    FROM employees e
    LEFT JOIN LATERAL (
      SELECT hourly_rate
      FROM pay_rates
      WHERE employee_id = e.id AND effective_date <= CURRENT_DATE
      ORDER BY effective_date DESC
      LIMIT 1
    ) r ON true
    WHERE e.company_id = $1
    ORDER BY e.name, e.id
    LIMIT $2 OFFSET $3
  `, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		var employee Employee
		if err := rows.Scan(&employee.ID, &employee.Name, &employee.Title, &employee.Status, &employee.HourlyRate, &employee.CreatedAt); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, rows.Err()
}

func (s *Store) CreateEmployee(ctx context.Context, companyID, name, title string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (company_id, name, title, status)
    VALUES ($1, $2, $3, $4)
    RETURNING id
  `, companyID, name, title, EmployeeStatusActive).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) SetPayRate(ctx context.Context, companyID, employeeID string, hourlyRate float64, effectiveDate time.Time) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO pay_rates (company_id, employee_id, hourly_rate, effective_date)
    VALUES ($1, $2, $3, $4)
    ON CONFLICT (employee_id, effective_date) DO UPDATE SET hourly_rate = EXCLUDED.hourly_rate
  `, companyID, employeeID, hourlyRate, effectiveDate)
	return err
}

func (s *Store) ListProjects(ctx context.Context, companyID string, limit, offset int) ([]Project, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, COALESCE(code, ''), status, created_at
    FROM projects
    WHERE company_id = $1
    ORDER BY name, id
    LIMIT $2 OFFSET $3
  `, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var project Project
		if err := rows.Scan(&project.ID, &project.Name, &project.Code, &project.Status, &project.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

func (s *Store) CreateProject(ctx context.Context, companyID, name, code string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO projects (company_id, name, code, status)
    VALUES ($1, $2, $3, $4)
    RETURNING id
  `, companyID, name, code, ProjectStatusActive).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

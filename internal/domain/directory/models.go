package directory

import "time"

type Employee struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Title      string    `json:"title,omitempty"`
	Status     string    `json:"status"`
	HourlyRate *float64  `json:"hourlyRate,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"

	ProjectStatusActive = "active"
	ProjectStatusClosed = "closed"
)

package labor

import "time"

type ClockEvent struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Type       string    `json:"type"`
	Timestamp  time.Time `json:"timestamp"`
	ProjectID  string    `json:"projectId,omitempty"`
	Notes      string    `json:"notes,omitempty"`
}

// WorkSession is derived per aggregation request and never persisted.
// End is nil while the session is open; Duration is computed against
// the request's "now" in that case.
type WorkSession struct {
	EmployeeID string        `json:"employeeId"`
	ProjectID  string        `json:"projectId,omitempty"`
	Start      time.Time     `json:"start"`
	End        *time.Time    `json:"end"`
	Duration   time.Duration `json:"-"`
	Anomaly    string        `json:"anomaly,omitempty"`
}

func (s WorkSession) Open() bool {
	return s.End == nil
}

type TimeEntry struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	EntryDate  time.Time `json:"entryDate"`
	Hours      float64   `json:"hours"`
	Status     string    `json:"status"`
	ProjectID  string    `json:"projectId,omitempty"`
	Notes      string    `json:"notes,omitempty"`
}

// ReconciledEntry is the single authoritative hours record per
// employee per day after merging manual and clock-derived sources.
type ReconciledEntry struct {
	EmployeeID string    `json:"employeeId"`
	EntryDate  time.Time `json:"entryDate"`
	Hours      float64   `json:"hours"`
	Status     string    `json:"status"`
	ProjectID  string    `json:"projectId,omitempty"`
	Source     string    `json:"source"`
}

type EmployeeActivity struct {
	EmployeeID         string       `json:"employeeId"`
	Name               string       `json:"name"`
	Title              string       `json:"title,omitempty"`
	CurrentStatus      string       `json:"currentStatus"`
	LastEventTimestamp *time.Time   `json:"lastEventTimestamp"`
	TodayHours         float64      `json:"todayHours"`
	WeekHours          float64      `json:"weekHours"`
	TodayEvents        []ClockEvent `json:"todayEvents"`
}

type RateRecord struct {
	EmployeeID string  `json:"employeeId"`
	HourlyRate float64 `json:"hourlyRate"`
}

type Employee struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title,omitempty"`
}

type ProjectCost struct {
	ProjectID   string  `json:"projectId"`
	ProjectName string  `json:"projectName"`
	Cost        float64 `json:"cost"`
}

// RecentEntry is a presentation row for the overview. Rate and Cost
// are nil when the employee has no configured rate; that is a distinct
// state from a zero-dollar cost.
type RecentEntry struct {
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	EntryDate    time.Time `json:"entryDate"`
	Hours        float64   `json:"hours"`
	Rate         *float64  `json:"rate"`
	Cost         *float64  `json:"cost"`
	Status       string    `json:"status"`
	Source       string    `json:"source"`
}

type Overview struct {
	PendingHours        float64       `json:"pendingHours"`
	ApprovedHours       float64       `json:"approvedHours"`
	ActiveEmployeeCount int           `json:"activeEmployeeCount"`
	TotalLaborCost      float64       `json:"totalLaborCost"`
	CostByProject       []ProjectCost `json:"costByProject"`
	RecentEntries       []RecentEntry `json:"recentEntries"`
}

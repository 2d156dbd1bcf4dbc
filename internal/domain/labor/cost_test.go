package labor

import (
	"testing"
	"time"
)

func TestBuildOverviewCostAndUnavailableRate(t *testing.T) {
	date := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	entries := []ReconciledEntry{
		{EmployeeID: "rated", EntryDate: date, Hours: 10, Status: EntryStatusApproved, ProjectID: "p1", Source: SourceManual},
		{EmployeeID: "unrated", EntryDate: date, Hours: 6, Status: EntryStatusApproved, Source: SourceManual},
	}
	rates := []RateRecord{{EmployeeID: "rated", HourlyRate: 25}}
	roster := []Employee{{ID: "rated", Name: "Dana"}, {ID: "unrated", Name: "Riley"}}

	overview := BuildOverview(entries, rates, roster, map[string]string{"p1": "Airport Terminal"}, 10)

	if overview.TotalLaborCost != 250.00 {
		t.Fatalf("expected total 250.00, got %v", overview.TotalLaborCost)
	}
	if overview.ApprovedHours != 16.0 {
		t.Fatalf("expected approved hours 16.0 (hours count even without a rate), got %v", overview.ApprovedHours)
	}
	if overview.ActiveEmployeeCount != 2 {
		t.Fatalf("expected 2 active employees, got %d", overview.ActiveEmployeeCount)
	}

	if len(overview.CostByProject) != 1 {
		t.Fatalf("unrated employee's entry must not open a project bucket, got %+v", overview.CostByProject)
	}
	if overview.CostByProject[0].ProjectID != "p1" || overview.CostByProject[0].Cost != 250.00 {
		t.Fatalf("unexpected project rollup %+v", overview.CostByProject[0])
	}
	if overview.CostByProject[0].ProjectName != "Airport Terminal" {
		t.Fatalf("expected project name resolved, got %q", overview.CostByProject[0].ProjectName)
	}

	var unratedRow *RecentEntry
	for i := range overview.RecentEntries {
		if overview.RecentEntries[i].EmployeeID == "unrated" {
			unratedRow = &overview.RecentEntries[i]
		}
	}
	if unratedRow == nil {
		t.Fatal("expected unrated employee in recent entries")
	}
	if unratedRow.Cost != nil || unratedRow.Rate != nil {
		t.Fatalf("expected unavailable cost (nil), got %+v", unratedRow)
	}
}

func TestBuildOverviewPendingExcludedFromCost(t *testing.T) {
	date := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	entries := []ReconciledEntry{
		{EmployeeID: "e1", EntryDate: date, Hours: 7.5, Status: EntryStatusPending, ProjectID: "p1", Source: SourceDerived},
		{EmployeeID: "e1", EntryDate: date.AddDate(0, 0, 1), Hours: 8, Status: EntryStatusRejected, Source: SourceManual},
	}
	rates := []RateRecord{{EmployeeID: "e1", HourlyRate: 30}}

	overview := BuildOverview(entries, rates, nil, nil, 10)
	if overview.PendingHours != 7.5 {
		t.Fatalf("expected pending hours 7.5, got %v", overview.PendingHours)
	}
	if overview.ApprovedHours != 0 {
		t.Fatalf("expected no approved hours, got %v", overview.ApprovedHours)
	}
	if overview.TotalLaborCost != 0 || len(overview.CostByProject) != 0 {
		t.Fatalf("only approved entries may cost, got %+v", overview)
	}
}

func TestBuildOverviewUnassignedBucket(t *testing.T) {
	date := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	entries := []ReconciledEntry{
		{EmployeeID: "e1", EntryDate: date, Hours: 4, Status: EntryStatusApproved, Source: SourceManual},
	}
	rates := []RateRecord{{EmployeeID: "e1", HourlyRate: 20}}

	overview := BuildOverview(entries, rates, nil, nil, 10)
	if len(overview.CostByProject) != 1 {
		t.Fatalf("expected one bucket, got %+v", overview.CostByProject)
	}
	bucket := overview.CostByProject[0]
	if bucket.ProjectID != UnassignedProject || bucket.ProjectName != "Unassigned" || bucket.Cost != 80.00 {
		t.Fatalf("unexpected unassigned bucket %+v", bucket)
	}
}

func TestBuildOverviewRecentEntriesLimitAndOrder(t *testing.T) {
	base := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	var entries []ReconciledEntry
	for day := 0; day < 5; day++ {
		entries = append(entries, ReconciledEntry{
			EmployeeID: "e1",
			EntryDate:  base.AddDate(0, 0, day),
			Hours:      8,
			Status:     EntryStatusApproved,
			Source:     SourceManual,
		})
	}

	overview := BuildOverview(entries, nil, nil, nil, 3)
	if len(overview.RecentEntries) != 3 {
		t.Fatalf("expected 3 recent entries, got %d", len(overview.RecentEntries))
	}
	if !overview.RecentEntries[0].EntryDate.Equal(base.AddDate(0, 0, 4)) {
		t.Fatalf("expected most recent first, got %v", overview.RecentEntries[0].EntryDate)
	}
	if overview.RecentEntries[0].EntryDate.Before(overview.RecentEntries[1].EntryDate) {
		t.Fatal("recent entries must be date-descending")
	}
}

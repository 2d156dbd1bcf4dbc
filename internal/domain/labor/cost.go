package labor

import "sort"

// BuildOverview aggregates reconciled entries into the labor overview.
// Entries whose employee has no configured rate report a nil cost and
// are excluded from summed totals; folding them in as zero would make
// the aggregate look cheaper than it is. Cost rollups count approved
// entries only. Values are rounded here, at the exposure boundary.
func BuildOverview(entries []ReconciledEntry, rates []RateRecord, roster []Employee, projectNames map[string]string, recentLimit int) Overview {
	rateFor := map[string]float64{}
	for _, rate := range rates {
		rateFor[rate.EmployeeID] = rate.HourlyRate
	}
	nameFor := map[string]string{}
	for _, employee := range roster {
		nameFor[employee.ID] = employee.Name
	}

	overview := Overview{
		ActiveEmployeeCount: len(roster),
		CostByProject:       []ProjectCost{},
		RecentEntries:       []RecentEntry{},
	}

	projectTotals := map[string]float64{}
	var projectOrder []string
	var totalCost float64

	for _, entry := range entries {
		switch entry.Status {
		case EntryStatusApproved:
			overview.ApprovedHours += entry.Hours
		case EntryStatusPending:
			overview.PendingHours += entry.Hours
		}

		if entry.Status != EntryStatusApproved {
			continue
		}
		rate, ok := rateFor[entry.EmployeeID]
		if !ok {
			continue
		}

		cost := entry.Hours * rate
		totalCost += cost
		projectID := entry.ProjectID
		if projectID == "" {
			projectID = UnassignedProject
		}
		if _, seen := projectTotals[projectID]; !seen {
			projectOrder = append(projectOrder, projectID)
		}
		projectTotals[projectID] += cost
	}

	for _, projectID := range projectOrder {
		name := projectNames[projectID]
		if projectID == UnassignedProject {
			name = "Unassigned"
		}
		overview.CostByProject = append(overview.CostByProject, ProjectCost{
			ProjectID:   projectID,
			ProjectName: name,
			Cost:        RoundMoney(projectTotals[projectID]),
		})
	}
	sort.SliceStable(overview.CostByProject, func(i, j int) bool {
		if overview.CostByProject[i].Cost != overview.CostByProject[j].Cost {
			return overview.CostByProject[i].Cost > overview.CostByProject[j].Cost
		}
		return overview.CostByProject[i].ProjectID < overview.CostByProject[j].ProjectID
	})

	overview.RecentEntries = recentEntries(entries, rateFor, nameFor, recentLimit)
	overview.PendingHours = RoundHours(overview.PendingHours)
	overview.ApprovedHours = RoundHours(overview.ApprovedHours)
	overview.TotalLaborCost = RoundMoney(totalCost)
	return overview
}

func recentEntries(entries []ReconciledEntry, rateFor map[string]float64, nameFor map[string]string, limit int) []RecentEntry {
	ordered := make([]ReconciledEntry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].EntryDate.After(ordered[j].EntryDate)
	})
	if limit > 0 && len(ordered) > limit {
		ordered = ordered[:limit]
	}

	rows := make([]RecentEntry, 0, len(ordered))
	for _, entry := range ordered {
		row := RecentEntry{
			EmployeeID:   entry.EmployeeID,
			EmployeeName: nameFor[entry.EmployeeID],
			EntryDate:    entry.EntryDate,
			Hours:        RoundHours(entry.Hours),
			Status:       entry.Status,
			Source:       entry.Source,
		}
		if rate, ok := rateFor[entry.EmployeeID]; ok {
			rateCopy := rate
			cost := RoundMoney(entry.Hours * rate)
			row.Rate = &rateCopy
			row.Cost = &cost
		}
		rows = append(rows, row)
	}
	return rows
}

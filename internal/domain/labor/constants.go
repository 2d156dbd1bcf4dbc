package labor

const (
	EventClockIn  = "clock_in"
	EventClockOut = "clock_out"

	EntryStatusPending  = "pending"
	EntryStatusApproved = "approved"
	EntryStatusRejected = "rejected"

	StatusClockedIn  = "clocked_in"
	StatusClockedOut = "clocked_out"
	StatusNoActivity = "no_activity"

	SourceManual  = "manual"
	SourceDerived = "derived"

	AnomalyDoubleClockIn = "double_clock_in"

	UnassignedProject = "unassigned"
)

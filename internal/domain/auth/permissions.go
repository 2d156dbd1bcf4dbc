package auth

const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleWorker     = "worker"
)

const (
	PermDirectoryRead  = "directory.read"
	PermDirectoryWrite = "directory.write"
	PermLaborRead      = "labor.read"
	PermLaborClock     = "labor.clock"
	PermLaborWrite     = "labor.write"
	PermLaborApprove   = "labor.approve"
	PermMetricsRead    = "metrics.read"
)

var RolePermissions = map[string][]string{
	RoleWorker: {
		PermDirectoryRead,
		PermLaborClock,
		PermLaborWrite,
	},
	RoleSupervisor: {
		PermDirectoryRead,
		PermLaborRead,
		PermLaborClock,
		PermLaborWrite,
		PermLaborApprove,
	},
	RoleAdmin: {
		PermDirectoryRead,
		PermDirectoryWrite,
		PermLaborRead,
		PermLaborClock,
		PermLaborWrite,
		PermLaborApprove,
		PermMetricsRead,
	},
}

// HasPermission reports whether a role grants a permission. Unknown
// roles grant nothing.
func HasPermission(role, permission string) bool {
	for _, granted := range RolePermissions[role] {
		if granted == permission {
			return true
		}
	}
	return false
}

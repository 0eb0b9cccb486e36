package domain

// Capability names one category of management operation. Every restricted
// route and workflow action is gated by exactly one capability.
type Capability string

const (
	CapManageMembers       Capability = "manage-members"
	CapManageRooms         Capability = "manage-rooms"
	CapManageAccess        Capability = "manage-access"
	CapManageBlacklist     Capability = "manage-blacklist"
	CapManageCancellations Capability = "manage-cancellations"
	CapViewReports         Capability = "view-reports"
	CapManagePermissions   Capability = "manage-permissions"
)

// Can is the authorization guard: a pure function of (role, capability).
// Admins hold every capability; ordinary users hold none of them and are
// limited to self-service operations, which are not capability-gated.
func Can(role string, cap Capability) bool {
	if role != RoleAdmin {
		return false
	}
	switch cap {
	case CapManageMembers, CapManageRooms, CapManageAccess,
		CapManageBlacklist, CapManageCancellations,
		CapViewReports, CapManagePermissions:
		return true
	}
	return false
}

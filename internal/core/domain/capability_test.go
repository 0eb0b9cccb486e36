package domain

import "testing"

var allCapabilities = []Capability{
	CapManageMembers,
	CapManageRooms,
	CapManageAccess,
	CapManageBlacklist,
	CapManageCancellations,
	CapViewReports,
	CapManagePermissions,
}

func TestCan_AdminHoldsEveryCapability(t *testing.T) {
	for _, cap := range allCapabilities {
		if !Can(RoleAdmin, cap) {
			t.Errorf("Can(admin, %s) = false, want true", cap)
		}
	}
}

func TestCan_UserHoldsNoCapability(t *testing.T) {
	for _, cap := range allCapabilities {
		if Can(RoleUser, cap) {
			t.Errorf("Can(user, %s) = true, want false", cap)
		}
	}
}

func TestCan_UnknownInputs(t *testing.T) {
	if Can("", CapManageRooms) {
		t.Error("empty role must hold no capability")
	}
	if Can("superadmin", CapManageRooms) {
		t.Error("unknown role must hold no capability")
	}
	if Can(RoleAdmin, Capability("manage-everything")) {
		t.Error("unknown capability must be denied even for admin")
	}
}

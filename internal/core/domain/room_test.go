package domain

import "testing"

func TestRoomStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		name string
		from RoomStatus
		to   RoomStatus
		want bool
	}{
		{"available to approved", StatusAvailable, StatusApproved, true},
		{"available to closed", StatusAvailable, StatusClosed, true},
		{"unavailable to approved", StatusUnavailable, StatusApproved, true},
		{"maintenance to closed", StatusMaintenance, StatusClosed, true},
		{"pending to approved", StatusPendingApproval, StatusApproved, true},
		{"pending to closed", StatusPendingApproval, StatusClosed, true},
		{"approved to closed", StatusApproved, StatusClosed, true},
		{"approved to approved", StatusApproved, StatusApproved, false},
		{"closed to closed", StatusClosed, StatusClosed, true},
		{"closed to approved", StatusClosed, StatusApproved, false},
		{"closed to available", StatusClosed, StatusAvailable, false},
		{"available to pending", StatusAvailable, StatusPendingApproval, false},
		{"unknown status", RoomStatus("bogus"), StatusClosed, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
				t.Fatalf("CanTransitionTo(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestRoomStatus_IsBaseline(t *testing.T) {
	baseline := []RoomStatus{StatusAvailable, StatusUnavailable, StatusMaintenance}
	for _, s := range baseline {
		if !s.IsBaseline() {
			t.Errorf("expected %s to be baseline", s)
		}
	}
	workflow := []RoomStatus{StatusPendingApproval, StatusApproved, StatusClosed, RoomStatus("")}
	for _, s := range workflow {
		if s.IsBaseline() {
			t.Errorf("expected %s not to be baseline", s)
		}
	}
}

func TestValidBuilding(t *testing.T) {
	for _, b := range []string{BuildingA, BuildingB, BuildingC} {
		if !ValidBuilding(b) {
			t.Errorf("expected building %q to be valid", b)
		}
	}
	for _, b := range []string{"", "D", "a"} {
		if ValidBuilding(b) {
			t.Errorf("expected building %q to be invalid", b)
		}
	}
}

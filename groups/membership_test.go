package groups

import (
	"testing"
	"time"

	"campushub/models"
)

func TestValidateJoinCode(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{"ABC234", nil},
		{"abc234", nil},
		{"ABC23", ErrInvalidCode},
		{"ABC2345", ErrInvalidCode},
		{"", ErrInvalidCode},
	}
	for _, tt := range tests {
		if got := ValidateJoinCode(tt.code); got != tt.want {
			t.Errorf("ValidateJoinCode(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestCanLeave(t *testing.T) {
	tests := []struct {
		name        string
		isLeader    bool
		memberCount int
		want        error
	}{
		{"member leaves", false, 3, nil},
		{"leader with others", true, 2, ErrLeaderMustTransfer},
		{"sole leader", true, 1, nil},
		{"last member", false, 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanLeave(tt.isLeader, tt.memberCount); got != tt.want {
				t.Errorf("CanLeave(%v, %d) = %v, want %v", tt.isLeader, tt.memberCount, got, tt.want)
			}
		})
	}
}

func TestMemberSnapshotMirrorsStudent(t *testing.T) {
	now := time.Now()
	student := models.Student{
		UserID:       "u1",
		FirstName:    "A",
		LastName:     "B",
		RollNo:       "R1",
		Branch:       "CSE",
		ProfilePhoto: "/static/userpic/u1.jpg",
	}

	m := MemberSnapshot("g1", student, false, now)

	if m.GroupID != "g1" {
		t.Errorf("GroupID = %q, want g1", m.GroupID)
	}
	if m.UID != "u1" {
		t.Errorf("UID = %q, want u1", m.UID)
	}
	if m.FirstName != "A" || m.LastName != "B" {
		t.Errorf("name = %q %q, want A B", m.FirstName, m.LastName)
	}
	if m.RollNo != "R1" {
		t.Errorf("RollNo = %q, want R1", m.RollNo)
	}
	if m.Branch != "CSE" {
		t.Errorf("Branch = %q, want CSE", m.Branch)
	}
	if m.ProfilePhoto != "/static/userpic/u1.jpg" {
		t.Errorf("ProfilePhoto = %q", m.ProfilePhoto)
	}
	if m.Leader {
		t.Error("Leader = true, want false for a joiner")
	}
	if !m.JoinedAt.Equal(now) {
		t.Errorf("JoinedAt = %v, want %v", m.JoinedAt, now)
	}
}

func TestLeaderOf(t *testing.T) {
	members := []models.GroupMember{
		{UID: "u1", Leader: false},
		{UID: "u2", Leader: true},
		{UID: "u3", Leader: false},
	}

	leader, ok := LeaderOf(members)
	if !ok || leader.UID != "u2" {
		t.Errorf("LeaderOf = %v, %v; want u2, true", leader.UID, ok)
	}

	if _, ok := LeaderOf([]models.GroupMember{{UID: "u1"}}); ok {
		t.Error("LeaderOf found a leader in a leaderless group")
	}

	if _, ok := LeaderOf(nil); ok {
		t.Error("LeaderOf found a leader in an empty group")
	}
}

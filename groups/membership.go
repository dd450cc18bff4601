package groups

import (
	"errors"
	"time"

	"campushub/models"
)

const joinCodeLength = 6

var (
	ErrInvalidCode        = errors.New("join code must be exactly 6 characters")
	ErrAlreadyInGroup     = errors.New("already in a group")
	ErrGroupNotFound      = errors.New("group not found")
	ErrLeaderMustTransfer = errors.New("transfer leadership first")
	ErrNotLeader          = errors.New("only the leader can do this")
	ErrCannotRemoveSelf   = errors.New("leader cannot remove themselves")
)

// ValidateJoinCode accepts exactly 6 characters; anything else never
// matches a generated code.
func ValidateJoinCode(code string) error {
	if len(code) != joinCodeLength {
		return ErrInvalidCode
	}
	return nil
}

// CanLeave refuses a leader who would strand other members.
func CanLeave(isLeader bool, memberCount int) error {
	if isLeader && memberCount > 1 {
		return ErrLeaderMustTransfer
	}
	return nil
}

// MemberSnapshot copies the joining student's identity fields into the
// denormalized member entry.
func MemberSnapshot(groupID string, s models.Student, leader bool, now time.Time) models.GroupMember {
	return models.GroupMember{
		GroupID:      groupID,
		UID:          s.UserID,
		FirstName:    s.FirstName,
		LastName:     s.LastName,
		RollNo:       s.RollNo,
		Branch:       s.Branch,
		ProfilePhoto: s.ProfilePhoto,
		Leader:       leader,
		JoinedAt:     now,
	}
}

// LeaderOf returns the member flagged leader. The design assumes at most
// one such entry and does not defend against two.
func LeaderOf(members []models.GroupMember) (models.GroupMember, bool) {
	for _, m := range members {
		if m.Leader {
			return m, true
		}
	}
	return models.GroupMember{}, false
}

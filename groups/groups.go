package groups

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"campushub/models"
	"campushub/mq"
	"campushub/utils"

	"github.com/julienschmidt/httprouter"
)

// currentMembership resolves the caller's group: back-reference first,
// falling back to a createdBy query for leaders whose back-reference was
// never written.
func currentMembership(ctx context.Context, uid string) (*models.Group, error) {
	ref, err := store.RefByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if ref != nil {
		group, err := store.GroupByID(ctx, ref.GroupID)
		if err != nil {
			return nil, err
		}
		if group == nil {
			return nil, ErrGroupNotFound
		}
		return group, nil
	}
	return store.GroupByCreator(ctx, uid)
}

// CreateGroup starts a new group with the caller as leader, generating a
// unique shareable join code.
func CreateGroup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	uid := utils.GetUserIDFromRequest(r)

	existing, err := currentMembership(context.TODO(), uid)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		http.Error(w, ErrAlreadyInGroup.Error(), http.StatusConflict)
		return
	}

	student, err := store.Student(context.TODO(), uid)
	if err != nil {
		http.Error(w, "Student profile not found", http.StatusNotFound)
		return
	}

	// Re-roll the code until it is unused.
	code := utils.GenerateJoinCode(joinCodeLength)
	for {
		taken, err := store.GroupByCode(context.TODO(), code)
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if taken == nil {
			break
		}
		code = utils.GenerateJoinCode(joinCodeLength)
	}

	group := models.Group{
		GroupID:   utils.GenerateID(14),
		Code:      code,
		CreatedBy: uid,
		CreatedAt: time.Now(),
	}
	if err := store.InsertGroup(context.TODO(), group); err != nil {
		http.Error(w, "Failed to create group", http.StatusInternalServerError)
		return
	}

	member := MemberSnapshot(group.GroupID, *student, true, time.Now())
	if err := store.InsertMember(context.TODO(), member); err != nil {
		log.Printf("Failed to write leader member entry for group %s: %v", group.GroupID, err)
		http.Error(w, "Failed to create group", http.StatusInternalServerError)
		return
	}

	ref := models.GroupRef{UID: uid, GroupID: group.GroupID, Code: group.Code, CreatedBy: group.CreatedBy}
	if err := store.InsertRef(context.TODO(), ref); err != nil {
		// Second write failed; resolve still works via the createdBy
		// fallback, so report but keep the group.
		log.Printf("Failed to write group back-reference for %s: %v", uid, err)
	}

	go mq.Emit("group-created", models.Index{EntityType: "group", EntityId: group.GroupID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{
		"group":   group,
		"members": []models.GroupMember{member},
	})
}

// GetMyGroup resolves the caller's group and member list.
func GetMyGroup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	uid := utils.GetUserIDFromRequest(r)

	group, err := currentMembership(context.TODO(), uid)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if group == nil {
		utils.RespondWithJSON(w, http.StatusOK, map[string]any{"group": nil})
		return
	}

	members, err := store.Members(context.TODO(), group.GroupID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	leader, _ := LeaderOf(members)
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"group":    group,
		"members":  members,
		"leader":   leader.UID,
		"isLeader": leader.UID == uid,
	})
}

// JoinGroup adds the caller to the group matching the submitted code.
func JoinGroup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	uid := utils.GetUserIDFromRequest(r)

	var input struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if err := ValidateJoinCode(input.Code); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Membership check comes before code lookup: a bad code must still
	// report "already in a group" for a joined student.
	ref, err := store.RefByUID(context.TODO(), uid)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if ref != nil {
		http.Error(w, ErrAlreadyInGroup.Error(), http.StatusConflict)
		return
	}

	// First match wins if duplicate codes ever exist.
	group, err := store.GroupByCode(context.TODO(), input.Code)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if group == nil {
		http.Error(w, ErrGroupNotFound.Error(), http.StatusNotFound)
		return
	}

	student, err := store.Student(context.TODO(), uid)
	if err != nil {
		http.Error(w, "Student profile not found", http.StatusNotFound)
		return
	}

	member := MemberSnapshot(group.GroupID, *student, false, time.Now())
	if err := store.InsertMember(context.TODO(), member); err != nil {
		http.Error(w, "Failed to join group", http.StatusInternalServerError)
		return
	}

	newRef := models.GroupRef{UID: uid, GroupID: group.GroupID, Code: group.Code, CreatedBy: group.CreatedBy}
	if err := store.InsertRef(context.TODO(), newRef); err != nil {
		// Member entry exists without its back-reference; accepted
		// inconsistency window of the no-transaction design.
		log.Printf("Failed to write group back-reference for %s: %v", uid, err)
		http.Error(w, "Failed to join group", http.StatusInternalServerError)
		return
	}

	go mq.Emit("group-joined", models.Index{EntityType: "group", EntityId: group.GroupID, ItemId: uid, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"group": group, "member": member})
}

// LeaveGroup removes the caller from their group. A leader with other
// members present must transfer leadership first; the sole remaining
// leader takes the group document down too.
func LeaveGroup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	uid := utils.GetUserIDFromRequest(r)

	group, err := currentMembership(context.TODO(), uid)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if group == nil {
		http.Error(w, ErrGroupNotFound.Error(), http.StatusNotFound)
		return
	}

	members, err := store.Members(context.TODO(), group.GroupID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	isLeader := false
	for _, m := range members {
		if m.UID == uid && m.Leader {
			isLeader = true
			break
		}
	}

	if err := CanLeave(isLeader, len(members)); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	if _, err := store.DeleteMember(context.TODO(), group.GroupID, uid); err != nil {
		http.Error(w, "Failed to leave group", http.StatusInternalServerError)
		return
	}
	if err := store.DeleteRef(context.TODO(), uid); err != nil {
		log.Printf("Failed to delete group back-reference for %s: %v", uid, err)
	}

	if isLeader && len(members) == 1 {
		if err := store.DeleteGroup(context.TODO(), group.GroupID); err != nil {
			log.Printf("Failed to delete empty group %s: %v", group.GroupID, err)
		}
	}

	go mq.Emit("group-left", models.Index{EntityType: "group", EntityId: group.GroupID, ItemId: uid, Method: "DELETE"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"group": nil})
}

// TransferLeadership hands the leader flag to another member, unblocking
// the refused-leave path.
func TransferLeadership(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	uid := utils.GetUserIDFromRequest(r)

	var input struct {
		MemberUID string `json:"memberUid"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.MemberUID == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	group, err := currentMembership(context.TODO(), uid)
	if err != nil || group == nil {
		http.Error(w, ErrGroupNotFound.Error(), http.StatusNotFound)
		return
	}

	members, err := store.Members(context.TODO(), group.GroupID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	leader, ok := LeaderOf(members)
	if !ok || leader.UID != uid {
		http.Error(w, ErrNotLeader.Error(), http.StatusForbidden)
		return
	}
	if input.MemberUID == uid {
		http.Error(w, "Already the leader", http.StatusBadRequest)
		return
	}

	target := false
	for _, m := range members {
		if m.UID == input.MemberUID {
			target = true
			break
		}
	}
	if !target {
		http.Error(w, "Member not found", http.StatusNotFound)
		return
	}

	// Two single-document writes; leader uniqueness is best effort.
	if err := store.SetLeader(context.TODO(), group.GroupID, uid, false); err != nil {
		http.Error(w, "Failed to transfer leadership", http.StatusInternalServerError)
		return
	}
	if err := store.SetLeader(context.TODO(), group.GroupID, input.MemberUID, true); err != nil {
		log.Printf("Leadership transfer left group %s without a leader: %v", group.GroupID, err)
		http.Error(w, "Failed to transfer leadership", http.StatusInternalServerError)
		return
	}

	go mq.Emit("group-leader-changed", models.Index{EntityType: "group", EntityId: group.GroupID, ItemId: input.MemberUID, Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"leader": input.MemberUID})
}

// RemoveMember lets the leader remove another member, deleting both the
// member entry and the target's back-reference.
func RemoveMember(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	uid := utils.GetUserIDFromRequest(r)
	memberUID := ps.ByName("uid")

	group, err := currentMembership(context.TODO(), uid)
	if err != nil || group == nil {
		http.Error(w, ErrGroupNotFound.Error(), http.StatusNotFound)
		return
	}

	members, err := store.Members(context.TODO(), group.GroupID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	leader, ok := LeaderOf(members)
	if !ok || leader.UID != uid {
		http.Error(w, ErrNotLeader.Error(), http.StatusForbidden)
		return
	}
	if memberUID == uid {
		http.Error(w, ErrCannotRemoveSelf.Error(), http.StatusBadRequest)
		return
	}

	deleted, err := store.DeleteMember(context.TODO(), group.GroupID, memberUID)
	if err != nil || !deleted {
		http.Error(w, "Member not found", http.StatusNotFound)
		return
	}
	if err := store.DeleteRef(context.TODO(), memberUID); err != nil {
		log.Printf("Failed to delete group back-reference for removed member %s: %v", memberUID, err)
	}

	go mq.Emit("group-member-removed", models.Index{EntityType: "group", EntityId: group.GroupID, ItemId: memberUID, Method: "DELETE"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"removed": memberUID})
}

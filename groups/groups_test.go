package groups

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"campushub/globals"
	"campushub/models"
)

// fakeStore keeps everything in memory and records deletions so the
// handler write sequences can be asserted directly.
type fakeStore struct {
	groups        map[string]models.Group
	refs          map[string]models.GroupRef
	members       []models.GroupMember
	students      map[string]models.Student
	deletedGroups []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		groups:   make(map[string]models.Group),
		refs:     make(map[string]models.GroupRef),
		students: make(map[string]models.Student),
	}
}

func (f *fakeStore) RefByUID(_ context.Context, uid string) (*models.GroupRef, error) {
	if ref, ok := f.refs[uid]; ok {
		return &ref, nil
	}
	return nil, nil
}

func (f *fakeStore) GroupByID(_ context.Context, groupID string) (*models.Group, error) {
	if g, ok := f.groups[groupID]; ok {
		return &g, nil
	}
	return nil, nil
}

func (f *fakeStore) GroupByCode(_ context.Context, code string) (*models.Group, error) {
	for _, g := range f.groups {
		if g.Code == code {
			return &g, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GroupByCreator(_ context.Context, uid string) (*models.Group, error) {
	for _, g := range f.groups {
		if g.CreatedBy == uid {
			return &g, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Student(_ context.Context, uid string) (*models.Student, error) {
	if s, ok := f.students[uid]; ok {
		return &s, nil
	}
	return nil, errors.New("student not found")
}

func (f *fakeStore) Members(_ context.Context, groupID string) ([]models.GroupMember, error) {
	var out []models.GroupMember
	for _, m := range f.members {
		if m.GroupID == groupID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeStore) InsertGroup(_ context.Context, g models.Group) error {
	f.groups[g.GroupID] = g
	return nil
}

func (f *fakeStore) InsertMember(_ context.Context, m models.GroupMember) error {
	f.members = append(f.members, m)
	return nil
}

func (f *fakeStore) InsertRef(_ context.Context, ref models.GroupRef) error {
	f.refs[ref.UID] = ref
	return nil
}

func (f *fakeStore) SetLeader(_ context.Context, groupID, uid string, leader bool) error {
	for i, m := range f.members {
		if m.GroupID == groupID && m.UID == uid {
			f.members[i].Leader = leader
		}
	}
	return nil
}

func (f *fakeStore) DeleteMember(_ context.Context, groupID, uid string) (bool, error) {
	for i, m := range f.members {
		if m.GroupID == groupID && m.UID == uid {
			f.members = append(f.members[:i], f.members[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) DeleteRef(_ context.Context, uid string) error {
	delete(f.refs, uid)
	return nil
}

func (f *fakeStore) DeleteGroup(_ context.Context, groupID string) error {
	delete(f.groups, groupID)
	f.deletedGroups = append(f.deletedGroups, groupID)
	return nil
}

func swapStore(t *testing.T, f *fakeStore) {
	t.Helper()
	old := store
	store = f
	t.Cleanup(func() { store = old })
}

func authedRequest(method, target, body, uid string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), globals.UserIDKey, uid)
	return req.WithContext(ctx)
}

func TestJoinGroupWritesMemberAndBackRef(t *testing.T) {
	f := newFakeStore()
	f.groups["g1"] = models.Group{GroupID: "g1", Code: "ABC234", CreatedBy: "u0", CreatedAt: time.Now()}
	f.students["u1"] = models.Student{
		UserID: "u1", FirstName: "A", LastName: "B",
		RollNo: "R1", Branch: "CSE", ProfilePhoto: "/static/userpic/u1.jpg",
	}
	swapStore(t, f)

	rec := httptest.NewRecorder()
	JoinGroup(rec, authedRequest("POST", "/api/groups/join", `{"code":"ABC234"}`, "u1"), nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	if len(f.members) != 1 {
		t.Fatalf("members written = %d, want 1", len(f.members))
	}
	m := f.members[0]
	if m.GroupID != "g1" || m.UID != "u1" || m.Leader {
		t.Errorf("member = %+v, want g1/u1 with leader=false", m)
	}
	if m.FirstName != "A" || m.RollNo != "R1" || m.Branch != "CSE" {
		t.Errorf("member snapshot = %+v, want the student's identity fields", m)
	}

	ref, ok := f.refs["u1"]
	if !ok {
		t.Fatal("back-reference was not written")
	}
	if ref.GroupID != "g1" || ref.Code != "ABC234" || ref.CreatedBy != "u0" {
		t.Errorf("back-reference = %+v, want {g1 ABC234 u0}", ref)
	}
}

func TestJoinGroupRefusesSecondGroup(t *testing.T) {
	f := newFakeStore()
	f.groups["g1"] = models.Group{GroupID: "g1", Code: "ABC234", CreatedBy: "u0"}
	f.groups["g2"] = models.Group{GroupID: "g2", Code: "XYZ789", CreatedBy: "u9"}
	f.refs["u1"] = models.GroupRef{UID: "u1", GroupID: "g1", Code: "ABC234", CreatedBy: "u0"}
	swapStore(t, f)

	rec := httptest.NewRecorder()
	JoinGroup(rec, authedRequest("POST", "/api/groups/join", `{"code":"XYZ789"}`, "u1"), nil)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), ErrAlreadyInGroup.Error()) {
		t.Errorf("body = %q, want %q", rec.Body.String(), ErrAlreadyInGroup.Error())
	}
}

func TestJoinGroupUnknownCode(t *testing.T) {
	f := newFakeStore()
	swapStore(t, f)

	rec := httptest.NewRecorder()
	JoinGroup(rec, authedRequest("POST", "/api/groups/join", `{"code":"NOSUCH"}`, "u1"), nil)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), ErrGroupNotFound.Error()) {
		t.Errorf("body = %q, want %q", rec.Body.String(), ErrGroupNotFound.Error())
	}
}

func TestLeaveGroupSoleLeaderDeletesGroup(t *testing.T) {
	f := newFakeStore()
	f.groups["g1"] = models.Group{GroupID: "g1", Code: "ABC234", CreatedBy: "u1"}
	f.refs["u1"] = models.GroupRef{UID: "u1", GroupID: "g1", Code: "ABC234", CreatedBy: "u1"}
	f.members = []models.GroupMember{{GroupID: "g1", UID: "u1", Leader: true}}
	swapStore(t, f)

	rec := httptest.NewRecorder()
	LeaveGroup(rec, authedRequest("POST", "/api/groups/leave", "", "u1"), nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if len(f.members) != 0 {
		t.Errorf("members remaining = %d, want 0", len(f.members))
	}
	if _, ok := f.refs["u1"]; ok {
		t.Error("back-reference still present after leave")
	}
	if len(f.deletedGroups) != 1 || f.deletedGroups[0] != "g1" {
		t.Errorf("deleted groups = %v, want [g1]", f.deletedGroups)
	}
}

func TestLeaveGroupLeaderWithMembersRefused(t *testing.T) {
	f := newFakeStore()
	f.groups["g1"] = models.Group{GroupID: "g1", Code: "ABC234", CreatedBy: "u1"}
	f.refs["u1"] = models.GroupRef{UID: "u1", GroupID: "g1", Code: "ABC234", CreatedBy: "u1"}
	f.members = []models.GroupMember{
		{GroupID: "g1", UID: "u1", Leader: true},
		{GroupID: "g1", UID: "u2"},
	}
	swapStore(t, f)

	rec := httptest.NewRecorder()
	LeaveGroup(rec, authedRequest("POST", "/api/groups/leave", "", "u1"), nil)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	if len(f.members) != 2 {
		t.Errorf("members remaining = %d, want 2 (nothing deleted)", len(f.members))
	}
	if len(f.deletedGroups) != 0 {
		t.Errorf("deleted groups = %v, want none", f.deletedGroups)
	}
}

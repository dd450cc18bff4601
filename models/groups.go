package models

import "time"

type Group struct {
	GroupID   string    `json:"groupid" bson:"groupid"`
	Code      string    `json:"code" bson:"code"`
	CreatedBy string    `json:"createdBy" bson:"createdBy"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// GroupMember is a denormalized snapshot of the joining student, taken at
// join time. Exactly one member per group carries Leader=true.
type GroupMember struct {
	GroupID      string    `json:"groupid" bson:"groupid"`
	UID          string    `json:"uid" bson:"uid"`
	FirstName    string    `json:"firstName" bson:"firstName"`
	LastName     string    `json:"lastName" bson:"lastName"`
	RollNo       string    `json:"rollNo" bson:"rollNo"`
	Branch       string    `json:"branch" bson:"branch"`
	ProfilePhoto string    `json:"profilePhoto" bson:"profilePhoto"`
	Leader       bool      `json:"leader" bson:"leader"`
	JoinedAt     time.Time `json:"joined_at" bson:"joined_at"`
}

// GroupRef is the student-side back-reference to the group the student
// belongs to. Not an ownership relation; the member list is the source of
// truth.
type GroupRef struct {
	UID       string `json:"uid" bson:"uid"`
	GroupID   string `json:"groupid" bson:"groupid"`
	Code      string `json:"code" bson:"code"`
	CreatedBy string `json:"createdBy" bson:"createdBy"`
}

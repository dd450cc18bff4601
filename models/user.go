package models

import "time"

// Student is the canonical account record. It carries the credentials and
// the role pointer; Host and Admin records mirror its baseline identity
// fields and are materialized lazily on first login after a role change.
type Student struct {
	UserID        string    `json:"userid" bson:"userid"`
	Email         string    `json:"email" bson:"email"`
	Password      string    `json:"-" bson:"password"`
	FirstName     string    `json:"firstName" bson:"firstName"`
	LastName      string    `json:"lastName" bson:"lastName"`
	RollNo        string    `json:"rollNo,omitempty" bson:"rollNo,omitempty"`
	Branch        string    `json:"branch,omitempty" bson:"branch,omitempty"`
	Year          string    `json:"year,omitempty" bson:"year,omitempty"`
	Department    string    `json:"department,omitempty" bson:"department,omitempty"`
	ProfilePhoto  string    `json:"profilePhoto,omitempty" bson:"profilePhoto,omitempty"`
	Role          string    `json:"role" bson:"role"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
	LastLogin     time.Time `json:"last_login" bson:"last_login"`
	RefreshToken  string    `json:"-" bson:"refresh_token,omitempty"`
	RefreshExpiry time.Time `json:"-" bson:"refresh_expiry,omitempty"`
}

type Host struct {
	UserID       string    `json:"userid" bson:"userid"`
	Email        string    `json:"email" bson:"email"`
	FirstName    string    `json:"firstName" bson:"firstName"`
	LastName     string    `json:"lastName" bson:"lastName"`
	Organization string    `json:"organization,omitempty" bson:"organization,omitempty"`
	Contact      string    `json:"contact,omitempty" bson:"contact,omitempty"`
	ProfilePhoto string    `json:"profilePhoto,omitempty" bson:"profilePhoto,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

type Admin struct {
	UserID       string    `json:"userid" bson:"userid"`
	Email        string    `json:"email" bson:"email"`
	FirstName    string    `json:"firstName" bson:"firstName"`
	LastName     string    `json:"lastName" bson:"lastName"`
	Department   string    `json:"department,omitempty" bson:"department,omitempty"`
	ProfilePhoto string    `json:"profilePhoto,omitempty" bson:"profilePhoto,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// RoleRouting tells the client where to send the user after login.
type RoleRouting struct {
	Role            string `json:"role"`
	DetailsComplete bool   `json:"detailsComplete"`
}

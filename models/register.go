package models

import "time"

// Registration snapshots the registering student per (event, student) pair.
type Registration struct {
	EventID      string    `json:"eventid" bson:"eventid"`
	UID          string    `json:"uid" bson:"uid"`
	FirstName    string    `json:"firstName" bson:"firstName"`
	LastName     string    `json:"lastName" bson:"lastName"`
	Email        string    `json:"email" bson:"email"`
	OrderID      string    `json:"orderId,omitempty" bson:"orderId,omitempty"`
	RegisteredAt time.Time `json:"registered_at" bson:"registered_at"`
}

// PaymentReceipt is written only after the gateway signature verifies.
// Keyed by the gateway's payment id.
type PaymentReceipt struct {
	PaymentID string    `json:"paymentId" bson:"paymentId"`
	OrderID   string    `json:"orderId" bson:"orderId"`
	Signature string    `json:"signature" bson:"signature"`
	EventID   string    `json:"eventid" bson:"eventid"`
	UID       string    `json:"uid" bson:"uid"`
	Amount    int64     `json:"amount" bson:"amount"` // minor units (paise)
	Currency  string    `json:"currency" bson:"currency"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

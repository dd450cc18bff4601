package models

import "time"

// Event dates are stored as "2006-01-02" strings, matching the values the
// registration form submits. Times are "15:04" strings.
type Event struct {
	EventID               string    `json:"eventid" bson:"eventid"`
	Name                  string    `json:"name" bson:"name"`
	Committee             string    `json:"committee" bson:"committee"`
	Place                 string    `json:"place" bson:"place"`
	Description           string    `json:"description" bson:"description"`
	Branches              []string  `json:"branches,omitempty" bson:"branches,omitempty"`
	Years                 []string  `json:"years,omitempty" bson:"years,omitempty"`
	Departments           []string  `json:"departments,omitempty" bson:"departments,omitempty"`
	StartDate             string    `json:"startDate" bson:"startDate"`
	EndDate               string    `json:"endDate,omitempty" bson:"endDate,omitempty"`
	IsDateRangeEnabled    bool      `json:"isDateRangeEnabled" bson:"isDateRangeEnabled"`
	StartTime             string    `json:"startTime" bson:"startTime"`
	EndTime               string    `json:"endTime,omitempty" bson:"endTime,omitempty"`
	IsTimeRangeEnabled    bool      `json:"isTimeRangeEnabled" bson:"isTimeRangeEnabled"`
	BannerImage           string    `json:"bannerImage,omitempty" bson:"bannerImage,omitempty"`
	CreatorID             string    `json:"creatorid" bson:"creatorid"`
	RegistrationFeeOption bool      `json:"registrationFeeOption" bson:"registrationFeeOption"`
	RegistrationFee       string    `json:"registrationFee,omitempty" bson:"registrationFee,omitempty"`
	RefundOption          bool      `json:"refundOption" bson:"refundOption"`
	RefundAmount          string    `json:"refundAmount,omitempty" bson:"refundAmount,omitempty"`
	RefundDate            string    `json:"refundDate,omitempty" bson:"refundDate,omitempty"`
	CancellationDate      string    `json:"cancellationDate" bson:"cancellationDate"`
	CreatedAt             time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt             time.Time `json:"updated_at" bson:"updated_at"`
}

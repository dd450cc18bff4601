package events

import (
	"testing"

	"campushub/models"
)

func TestValidateCancellationDate(t *testing.T) {
	// Event starts 2025-06-10: the window is 2025-06-04 .. 2025-06-08.
	tests := []struct {
		name   string
		cancel string
		wantOK bool
	}{
		{"earliest accepted", "2025-06-04", true},
		{"latest accepted", "2025-06-08", true},
		{"middle of window", "2025-06-06", true},
		{"one day before start", "2025-06-09", false},
		{"too early", "2025-06-03", false},
		{"same day", "2025-06-10", false},
		{"malformed", "10-06-2025", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCancellationDate("2025-06-10", tt.cancel)
			if tt.wantOK && err != nil {
				t.Errorf("ValidateCancellationDate(%q) = %v, want nil", tt.cancel, err)
			}
			if !tt.wantOK && err == nil {
				t.Errorf("ValidateCancellationDate(%q) = nil, want error", tt.cancel)
			}
		})
	}
}

func validEvent() models.Event {
	return models.Event{
		Name:             "Hackathon",
		Committee:        "Tech Committee",
		Place:            "Seminar Hall",
		StartDate:        "2025-06-10",
		StartTime:        "10:00",
		CancellationDate: "2025-06-06",
	}
}

func TestValidateEvent(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Event)
		wantOK bool
	}{
		{"baseline", func(e *models.Event) {}, true},
		{"missing name", func(e *models.Event) { e.Name = "" }, false},
		{"missing place", func(e *models.Event) { e.Place = "" }, false},
		{"missing start date", func(e *models.Event) { e.StartDate = "" }, false},
		{"missing cancellation date", func(e *models.Event) { e.CancellationDate = "" }, false},
		{"date range without end date", func(e *models.Event) { e.IsDateRangeEnabled = true }, false},
		{"date range with end date", func(e *models.Event) {
			e.IsDateRangeEnabled = true
			e.EndDate = "2025-06-11"
		}, true},
		{"time range without end time", func(e *models.Event) { e.IsTimeRangeEnabled = true }, false},
		{"time range with end time", func(e *models.Event) {
			e.IsTimeRangeEnabled = true
			e.EndTime = "17:00"
		}, true},
		{"fee enabled but empty", func(e *models.Event) { e.RegistrationFeeOption = true }, false},
		{"fee enabled non-numeric", func(e *models.Event) {
			e.RegistrationFeeOption = true
			e.RegistrationFee = "abc"
		}, false},
		{"fee enabled zero", func(e *models.Event) {
			e.RegistrationFeeOption = true
			e.RegistrationFee = "0"
		}, false},
		{"fee enabled positive", func(e *models.Event) {
			e.RegistrationFeeOption = true
			e.RegistrationFee = "500"
		}, true},
		{"refund enabled without details", func(e *models.Event) { e.RefundOption = true }, false},
		{"refund enabled with details", func(e *models.Event) {
			e.RefundOption = true
			e.RefundAmount = "200"
			e.RefundDate = "2025-06-07"
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEvent()
			tt.mutate(&e)
			err := ValidateEvent(&e)
			if tt.wantOK && err != nil {
				t.Errorf("ValidateEvent() = %v, want nil", err)
			}
			if !tt.wantOK && err == nil {
				t.Errorf("ValidateEvent() = nil, want error")
			}
		})
	}
}

func TestValidateEventClearsEndDateForSingleDay(t *testing.T) {
	e := validEvent()
	e.EndDate = "2025-06-12"
	if err := ValidateEvent(&e); err != nil {
		t.Fatalf("ValidateEvent() = %v, want nil", err)
	}
	if e.EndDate != "" {
		t.Errorf("end date = %q after validation, want cleared", e.EndDate)
	}
}

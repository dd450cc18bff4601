package events

import (
	"errors"
	"strconv"
	"time"

	"campushub/models"
)

// Form dates arrive as "2006-01-02".
func ParseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

// ValidateCancellationDate enforces the cancellation window: the deadline
// must be at least two days before the start, and no more than five clear
// days before it (the deadline day itself is not counted).
func ValidateCancellationDate(startDate, cancellationDate string) error {
	start, err := ParseDate(startDate)
	if err != nil {
		return errors.New("invalid start date")
	}
	cancel, err := ParseDate(cancellationDate)
	if err != nil {
		return errors.New("invalid cancellation date")
	}

	earliest := start.AddDate(0, 0, -6)
	latest := start.AddDate(0, 0, -2)
	if cancel.Before(earliest) || cancel.After(latest) {
		return errors.New("cancellation date must be between 5 and 2 days before the event start")
	}
	return nil
}

// ValidateEvent checks the invariants the registration form promises.
func ValidateEvent(e *models.Event) error {
	if e.Name == "" || e.Committee == "" || e.Place == "" {
		return errors.New("name, committee and place are required")
	}
	if e.StartDate == "" {
		return errors.New("start date is required")
	}
	if _, err := ParseDate(e.StartDate); err != nil {
		return errors.New("invalid start date")
	}

	if e.IsDateRangeEnabled {
		if e.EndDate == "" {
			return errors.New("end date is required when a date range is enabled")
		}
		if _, err := ParseDate(e.EndDate); err != nil {
			return errors.New("invalid end date")
		}
	} else {
		// A single-day event carries no end date.
		e.EndDate = ""
	}

	if e.IsTimeRangeEnabled && e.EndTime == "" {
		return errors.New("end time is required when a time range is enabled")
	}

	if e.CancellationDate == "" {
		return errors.New("cancellation date is required")
	}
	if err := ValidateCancellationDate(e.StartDate, e.CancellationDate); err != nil {
		return err
	}

	if e.RegistrationFeeOption {
		fee, err := strconv.Atoi(e.RegistrationFee)
		if err != nil || fee <= 0 {
			return errors.New("registration fee must be a positive amount")
		}
	}

	if e.RefundOption {
		if e.RefundAmount == "" || e.RefundDate == "" {
			return errors.New("refund amount and refund date are required when refunds are enabled")
		}
		if _, err := ParseDate(e.RefundDate); err != nil {
			return errors.New("invalid refund date")
		}
	}

	return nil
}

package register

import "errors"

// The registration flow is a small linear state machine per
// (student, event) pair: Confirm → Reauthenticate → Pay → Success, with
// Pay skipped for free events. Keeping the transition function pure makes
// the retry semantics testable without a database.

type State string

const (
	StateConfirm        State = "confirm"
	StateReauthenticate State = "reauthenticate"
	StatePay            State = "pay"
	StateSuccess        State = "success"
)

type Input string

const (
	InputConfirm         Input = "confirm"
	InputReauthOK        Input = "reauth_ok"
	InputReauthFailed    Input = "reauth_failed"
	InputPaymentVerified Input = "payment_verified"
	InputPaymentFailed   Input = "payment_failed"
)

var ErrInvalidTransition = errors.New("invalid registration transition")

// Next computes the successor state. Failed reauthentication and failed
// payments keep the flow on the same state so the student can retry.
func Next(s State, in Input, feeMinorUnits int64) (State, error) {
	switch s {
	case StateConfirm:
		if in == InputConfirm {
			return StateReauthenticate, nil
		}
	case StateReauthenticate:
		switch in {
		case InputReauthOK:
			if feeMinorUnits > 0 {
				return StatePay, nil
			}
			return StateSuccess, nil
		case InputReauthFailed:
			return StateReauthenticate, nil
		}
	case StatePay:
		switch in {
		case InputPaymentVerified:
			return StateSuccess, nil
		case InputPaymentFailed:
			return StatePay, nil
		}
	}
	return s, ErrInvalidTransition
}

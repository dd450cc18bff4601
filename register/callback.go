package register

import "errors"

var (
	ErrMissingPaymentFields = errors.New("missing payment verification fields")
	ErrOrderMismatch        = errors.New("order does not belong to this registration")
)

// ValidateCallback checks the checkout callback against the order issued
// for this registration. The submitted order id must be the one created
// when the registration was written; otherwise a signature valid for some
// other (cheaper) order would complete this one.
func ValidateCallback(registrationOrderID, orderID, paymentID, signature string) error {
	if orderID == "" || paymentID == "" || signature == "" {
		return ErrMissingPaymentFields
	}
	if registrationOrderID == "" || registrationOrderID != orderID {
		return ErrOrderMismatch
	}
	return nil
}

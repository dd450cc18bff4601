package register

import "testing"

func TestValidateCallback(t *testing.T) {
	tests := []struct {
		name       string
		regOrderID string
		orderID    string
		paymentID  string
		signature  string
		want       error
	}{
		{"matching order", "order_A", "order_A", "pay_1", "sig", nil},
		{"foreign order", "order_A", "order_B", "pay_1", "sig", ErrOrderMismatch},
		{"registration without order", "", "order_B", "pay_1", "sig", ErrOrderMismatch},
		{"missing order id", "order_A", "", "pay_1", "sig", ErrMissingPaymentFields},
		{"missing payment id", "order_A", "order_A", "", "sig", ErrMissingPaymentFields},
		{"missing signature", "order_A", "order_A", "pay_1", "", ErrMissingPaymentFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateCallback(tt.regOrderID, tt.orderID, tt.paymentID, tt.signature)
			if got != tt.want {
				t.Errorf("ValidateCallback() = %v, want %v", got, tt.want)
			}
		})
	}
}

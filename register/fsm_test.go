package register

import "testing"

func TestNextTransitions(t *testing.T) {
	tests := []struct {
		name    string
		state   State
		input   Input
		fee     int64
		want    State
		wantErr bool
	}{
		{"confirm advances to reauth", StateConfirm, InputConfirm, 0, StateReauthenticate, false},
		{"reauth ok free event skips pay", StateReauthenticate, InputReauthOK, 0, StateSuccess, false},
		{"reauth ok paid event goes to pay", StateReauthenticate, InputReauthOK, 50000, StatePay, false},
		{"reauth failure stays for retry", StateReauthenticate, InputReauthFailed, 50000, StateReauthenticate, false},
		{"payment verified completes", StatePay, InputPaymentVerified, 50000, StateSuccess, false},
		{"payment failure stays for retry", StatePay, InputPaymentFailed, 50000, StatePay, false},
		{"confirm rejects payment input", StateConfirm, InputPaymentVerified, 0, StateConfirm, true},
		{"reauth rejects confirm input", StateReauthenticate, InputConfirm, 0, StateReauthenticate, true},
		{"pay rejects reauth input", StatePay, InputReauthOK, 50000, StatePay, true},
		{"success is terminal", StateSuccess, InputConfirm, 0, StateSuccess, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Next(tt.state, tt.input, tt.fee)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Next(%s, %s, %d) error = %v, wantErr %v", tt.state, tt.input, tt.fee, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Next(%s, %s, %d) = %s, want %s", tt.state, tt.input, tt.fee, got, tt.want)
			}
		})
	}
}

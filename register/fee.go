package register

import "strconv"

// FeeMinorUnits converts an event's registration fee, stored as a decimal
// string in whole currency units, into the paise amount the gateway
// expects. A missing or non-numeric fee means a free event.
func FeeMinorUnits(fee string) int64 {
	n, err := strconv.Atoi(fee)
	if err != nil || n <= 0 {
		return 0
	}
	return int64(n) * 100
}

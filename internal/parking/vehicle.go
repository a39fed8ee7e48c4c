package parking

import "strings"

// NormalizeVehicleNumber trims and upper-cases a plate as typed by a user.
func NormalizeVehicleNumber(vehicleNumber string) string {
	return strings.ToUpper(strings.TrimSpace(vehicleNumber))
}

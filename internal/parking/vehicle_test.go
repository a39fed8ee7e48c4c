package parking

import "testing"

func TestNormalizeVehicleNumber(t *testing.T) {
	cases := map[string]string{
		"abc-1234":    "ABC-1234",
		"  xyz-0001 ": "XYZ-0001",
		"KA01HH1234":  "KA01HH1234",
		"   ":         "",
	}

	for in, want := range cases {
		if got := NormalizeVehicleNumber(in); got != want {
			t.Errorf("NormalizeVehicleNumber(%q) = %q, want %q", in, got, want)
		}
	}
}

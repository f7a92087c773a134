package timezone

import "testing"

func TestIsValid(t *testing.T) {
	if !IsValid("Europe/Lisbon") || !IsValid("America/Sao_Paulo") {
		t.Fatalf("known timezones should be valid")
	}
	if IsValid("") || IsValid("Atlantis/Lost") {
		t.Fatalf("unknown timezones should be invalid")
	}
}

func TestLocation_FallsBackToDefault(t *testing.T) {
	if Location("Atlantis/Lost").String() != DefaultTimezone {
		t.Fatalf("invalid timezone should fall back to %s", DefaultTimezone)
	}
	if Location("").String() != DefaultTimezone {
		t.Fatalf("empty timezone should fall back to %s", DefaultTimezone)
	}
	if Location("UTC").String() != "UTC" {
		t.Fatalf("valid timezone should be honoured")
	}
}

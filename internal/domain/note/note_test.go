package note

import (
	"testing"

	"github.com/marcafacil/booking-api/internal/httperr"
)

func TestValidateType(t *testing.T) {
	got, err := ValidateType("")
	if err != nil || got != TypeGeneral {
		t.Fatalf("empty type should default to GENERAL, got %q (%v)", got, err)
	}

	for typ := range Known {
		if _, err := ValidateType(typ); err != nil {
			t.Fatalf("type %s should be accepted: %v", typ, err)
		}
	}

	if _, err := ValidateType("RANT"); !httperr.IsBusiness(err, "invalid_note_type") {
		t.Fatalf("expected invalid_note_type, got %v", err)
	}
}

func TestCheckOwnership(t *testing.T) {
	if err := CheckOwnership(7, 7); err != nil {
		t.Fatalf("author should pass: %v", err)
	}
	if err := CheckOwnership(7, 8); !httperr.IsBusiness(err, "not_note_owner") {
		t.Fatalf("expected not_note_owner, got %v", err)
	}
}

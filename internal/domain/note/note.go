// Package note valida os tipos de nota aceites pela API.
package note

import "github.com/marcafacil/booking-api/internal/httperr"

const (
	TypeGeneral        = "GENERAL"
	TypePreference     = "PREFERENCE"
	TypeIncident       = "INCIDENT"
	TypeFeedback       = "FEEDBACK"
	TypeFollowUp       = "FOLLOW_UP"
	TypeSpecialRequest = "SPECIAL_REQUEST"
)

var Known = map[string]bool{
	TypeGeneral:        true,
	TypePreference:     true,
	TypeIncident:       true,
	TypeFeedback:       true,
	TypeFollowUp:       true,
	TypeSpecialRequest: true,
}

// ValidateType aceita o tipo vazio (assume GENERAL) ou um dos tipos conhecidos.
func ValidateType(t string) (string, error) {
	if t == "" {
		return TypeGeneral, nil
	}
	if !Known[t] {
		return "", httperr.ErrBusiness("invalid_note_type")
	}
	return t, nil
}

// CheckOwnership garante que apenas o autor altera ou remove a nota.
func CheckOwnership(createdByID, staffID uint) error {
	if createdByID != staffID {
		return httperr.ErrBusiness("not_note_owner")
	}
	return nil
}

// Package validators contains pure request-validation helpers shared by the
// service layer. Each validator returns the first violated rule as a sentinel
// error; callers wrap it for user-facing presentation.
package validators

import (
	"net/mail"
	"strings"

	"github.com/vheb/biomap/models"
)

// ValidateRegistration checks a registration request: identity fields are
// present, the email parses, the password is confirmed, the role is known,
// and the role-specific payload is present and minimally filled.
func ValidateRegistration(req models.RegisterRequest) error {
	if strings.TrimSpace(req.Username) == "" {
		return ErrUsernameIsRequired
	}

	if err := validateEmail(req.Email); err != nil {
		return err
	}

	if req.Password == "" {
		return ErrPasswordIsRequired
	}
	if req.Password != req.PasswordConfirm {
		return ErrPasswordsDoNotMatch
	}

	if !req.Role.Valid() {
		return ErrUnknownRole
	}

	switch req.Role {
	case models.RoleResearcher:
		if req.Researcher == nil {
			return ErrResearcherPayloadRequired
		}
		if req.Institution != nil {
			return ErrPayloadDoesNotMatchRole
		}
	case models.RoleInstitution:
		if req.Institution == nil {
			return ErrInstitutionPayloadMissing
		}
		if req.Researcher != nil {
			return ErrPayloadDoesNotMatchRole
		}
		return validateInstitution(req.Institution)
	case models.RoleCommon:
		if req.Researcher != nil || req.Institution != nil {
			return ErrPayloadDoesNotMatchRole
		}
	}

	return nil
}

// ValidateProfileUpdate checks a profile update against the account's fixed
// role: a new email must parse, and a specialization payload is accepted only
// for the matching role.
func ValidateProfileUpdate(req models.ProfileUpdateRequest, role models.Role) error {
	if req.Email != "" {
		if err := validateEmail(req.Email); err != nil {
			return err
		}
	}

	if req.Researcher != nil && role != models.RoleResearcher {
		return ErrPayloadDoesNotMatchRole
	}
	if req.Institution != nil && role != models.RoleInstitution {
		return ErrPayloadDoesNotMatchRole
	}

	if req.Institution != nil {
		return validateInstitution(req.Institution)
	}

	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailIsRequired
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrEmailIsMalformed
	}
	return nil
}

func validateInstitution(inst *models.Institution) error {
	if strings.TrimSpace(inst.LegalName) == "" {
		return ErrLegalNameMissing
	}
	if strings.TrimSpace(inst.RegistrationNumber) == "" {
		return ErrRegistrationNumberMissing
	}
	return nil
}

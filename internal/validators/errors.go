package validators

import "errors"

var (
	ErrUsernameIsRequired        = errors.New("username is required")
	ErrEmailIsRequired           = errors.New("email is required")
	ErrEmailIsMalformed          = errors.New("email is malformed")
	ErrPasswordIsRequired        = errors.New("password is required")
	ErrPasswordsDoNotMatch       = errors.New("password and confirmation do not match")
	ErrUnknownRole               = errors.New("unknown role")
	ErrResearcherPayloadRequired = errors.New("researcher payload is required for the researcher role")
	ErrInstitutionPayloadMissing = errors.New("institution payload is required for the institution role")
	ErrPayloadDoesNotMatchRole   = errors.New("specialization payload does not match the account role")
	ErrRegistrationNumberMissing = errors.New("institution registration number is required")
	ErrLegalNameMissing          = errors.New("institution legal name is required")

	ErrScientificNameIsRequired = errors.New("scientific name is required")
	ErrTaxonomyIsIncomplete     = errors.New("kingdom, phylum, class, order, family and genus are all required")
)

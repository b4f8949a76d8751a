package models

import "time"

// Role classifies an account into exactly one of the three supported
// profiles. A user always carries exactly one role; the role decides which
// specialization row (if any) accompanies the base account record.
type Role string

const (
	// RoleCommon is a general visitor account with no specialization payload.
	RoleCommon Role = "common"

	// RoleResearcher is an account allowed to author species records.
	// It is accompanied by a Researcher specialization row.
	RoleResearcher Role = "researcher"

	// RoleInstitution is an educational-institution account. It is
	// accompanied by an Institution specialization row and may own
	// affiliated researchers.
	RoleInstitution Role = "institution"
)

// Valid reports whether r is one of the three supported roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCommon, RoleResearcher, RoleInstitution:
		return true
	}
	return false
}

// CanSubmitSpecies reports whether accounts with this role may author
// species records. Only researchers and institutions submit records.
func (r Role) CanSubmitSpecies() bool {
	return r == RoleResearcher || r == RoleInstitution
}

// User is the base account entity. Username and Email are globally unique.
// Every user has exactly one role; researcher and institution accounts carry
// an additional specialization record keyed by UserID.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique login identifier.
	Username string `json:"username"`

	// Email is the unique contact address used at registration.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Never plaintext, never serialized.
	PasswordHash string `json:"-"`

	// Role is the account classification. Immutable after registration.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// Researcher holds the researcher specialization payload.
	// Non-nil only when Role == RoleResearcher.
	Researcher *Researcher `json:"researcher,omitempty"`

	// Institution holds the institution specialization payload.
	// Non-nil only when Role == RoleInstitution.
	Institution *Institution `json:"institution,omitempty"`
}

// Researcher is the role-specific payload of a researcher account.
type Researcher struct {
	// UserID references the owning base account.
	UserID int64 `json:"-"`

	// BirthDate is the researcher's date of birth. Optional.
	BirthDate *time.Time `json:"birth_date,omitempty"`

	// AcademicBackground is a free-text description of formation/degrees.
	AcademicBackground string `json:"academic_background"`

	// InstitutionName is the free-text name of the institution the
	// researcher works at. Kept even when InstitutionID is set, since the
	// affiliation may point outside the registered institutions.
	InstitutionName string `json:"institution_name"`

	// CVLink is a URL to the researcher's curriculum vitae.
	CVLink string `json:"cv_link"`

	// InstitutionID optionally references a registered Institution account.
	// Nil means the researcher is unaffiliated.
	InstitutionID *int64 `json:"institution_id,omitempty"`
}

// Institution is the role-specific payload of an educational institution
// account.
type Institution struct {
	// UserID references the owning base account.
	UserID int64 `json:"-"`

	// LegalName is the registered name of the institution.
	LegalName string `json:"legal_name"`

	// RegistrationNumber is the unique legal registration number (CNPJ).
	RegistrationNumber string `json:"registration_number"`

	// Address is the institution's postal address.
	Address string `json:"address"`

	// Contact is a phone number or other contact handle.
	Contact string `json:"contact"`

	// Website is the institution's public website URL.
	Website string `json:"website"`
}

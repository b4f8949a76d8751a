package models

// RegisterRequest is the payload of POST /register. Role-specific fields are
// read only when the matching Role is selected; the rest are ignored.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	Role            Role   `json:"role"`

	// Researcher payload, used when Role == RoleResearcher.
	Researcher *Researcher `json:"researcher,omitempty"`

	// Institution payload, used when Role == RoleInstitution.
	Institution *Institution `json:"institution,omitempty"`
}

// LoginRequest is the payload of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ProfileUpdateRequest is the payload of PUT /profile. Zero-valued fields
// are left unchanged; the role itself is immutable.
type ProfileUpdateRequest struct {
	Email       string       `json:"email,omitempty"`
	Researcher  *Researcher  `json:"researcher,omitempty"`
	Institution *Institution `json:"institution,omitempty"`
}

// ContactMessage is the payload of POST /contact. It is relayed by email to
// the operator address configured for the deployment.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

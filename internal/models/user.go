package models

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleAgent Role = "AGENT"
	RoleUser  Role = "USER"
)

type AccountStatus string

const (
	AccountActive   AccountStatus = "ACTIF"
	AccountInactive AccountStatus = "INACTIF"
)

// User is the identity of the operator signed into the console.
type User struct {
	Email  string        `json:"email"`
	Role   Role          `json:"role"`
	Nom    string        `json:"nom,omitempty"`
	Statut AccountStatus `json:"statut,omitempty"`
}

// IsActive reports false only when a status is known and is not ACTIF.
func (u *User) IsActive() bool {
	return u.Statut == "" || u.Statut == AccountActive
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanUseConsole reports whether the role may sign into the backoffice.
func (u *User) CanUseConsole() bool {
	return u.Role == RoleAdmin || u.Role == RoleAgent
}

func (u *User) DisplayName() string {
	if u.Nom != "" {
		return u.Nom
	}
	return u.Email
}

// UserRef is the short user record embedded in tickets and disputes.
type UserRef struct {
	ID    int64  `json:"id"`
	Nom   string `json:"nom"`
	Email string `json:"email"`
}

type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	MotDePasse string `json:"motDePasse" validate:"required"`
}

type LoginResponse struct {
	Token  string        `json:"token"`
	Email  string        `json:"email"`
	Role   Role          `json:"role"`
	Nom    string        `json:"nom,omitempty"`
	Statut AccountStatus `json:"statut,omitempty"`
}

func (r *LoginResponse) User() *User {
	return &User{Email: r.Email, Role: r.Role, Nom: r.Nom, Statut: r.Statut}
}

type ChangePasswordRequest struct {
	AncienMotDePasse       string `json:"ancienMotDePasse" validate:"required"`
	NouveauMotDePasse      string `json:"nouveauMotDePasse" validate:"required,min=8,strongpassword"`
	ConfirmationMotDePasse string `json:"confirmationMotDePasse" validate:"required,eqfield=NouveauMotDePasse"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

package models

type Agent struct {
	ID    int64  `json:"id"`
	Nom   string `json:"nom"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Actif bool   `json:"actif"`
}

// AgentForm is the update dialog payload. An empty MotDePasse keeps the
// current password.
type AgentForm struct {
	Nom        string `json:"nom" validate:"required,notblank"`
	Email      string `json:"email" validate:"required,email"`
	MotDePasse string `json:"motDePasse,omitempty" validate:"omitempty,min=8"`
	Actif      *bool  `json:"actif,omitempty"`
}

// CreateAgentForm is the create dialog payload.
type CreateAgentForm struct {
	Nom        string `json:"nom" validate:"required,notblank"`
	Email      string `json:"email" validate:"required,email"`
	MotDePasse string `json:"motDePasse" validate:"required,min=8"`
}

type CreateAgentRequest struct {
	Nom        string `json:"nom"`
	Email      string `json:"email"`
	MotDePasse string `json:"motDePasse"`
	Role       Role   `json:"role"`
}

type UpdateAgentRequest struct {
	Nom        string `json:"nom,omitempty"`
	Email      string `json:"email,omitempty"`
	MotDePasse string `json:"motDePasse,omitempty"`
	Role       Role   `json:"role,omitempty"`
	Actif      *bool  `json:"actif,omitempty"`
}

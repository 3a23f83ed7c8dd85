package models

type OperatorStatus string

const (
	OperatorActive   OperatorStatus = "ACTIF"
	OperatorInactive OperatorStatus = "INACTIF"
)

type Operator struct {
	ID            int64          `json:"id"`
	Nom           string         `json:"nom"`
	Pays          string         `json:"pays"`
	CodeDetection string         `json:"codeDetection"`
	Statut        OperatorStatus `json:"statut"`
	LogoURL       string         `json:"logoUrl"`
	Actif         bool           `json:"actif"`
}

type OperatorForm struct {
	Nom           string         `json:"nom" validate:"required"`
	Pays          string         `json:"pays" validate:"required"`
	CodeDetection string         `json:"codeDetection" validate:"required"`
	Statut        OperatorStatus `json:"statut" validate:"required,oneof=ACTIF INACTIF"`
	LogoURL       string         `json:"logoUrl" validate:"required"`
	Actif         bool           `json:"actif"`
}

type ActivationRequest struct {
	Actif bool `json:"actif"`
}

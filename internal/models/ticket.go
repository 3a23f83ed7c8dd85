package models

type TicketStatus string

const (
	TicketOpen       TicketStatus = "OUVERT"
	TicketInProgress TicketStatus = "EN_COURS"
	TicketResolved   TicketStatus = "RESOLU"
	TicketClosed     TicketStatus = "FERME"
)

func (s TicketStatus) Color() Color {
	switch s {
	case TicketOpen:
		return ColorError
	case TicketInProgress:
		return ColorWarning
	case TicketResolved:
		return ColorSuccess
	}
	return ColorDefault
}

type SupportTicket struct {
	ID             int64        `json:"id"`
	User           UserRef      `json:"user"`
	Sujet          string       `json:"sujet"`
	Message        string       `json:"message"`
	Statut         TicketStatus `json:"statut"`
	Reponse        *string      `json:"reponse"`
	DateCreation   string       `json:"dateCreation"`
	DateResolution *string      `json:"dateResolution"`
}

type TicketFilter struct {
	Statut              string `json:"statut,omitempty" query:"statut"`
	UserID              int64  `json:"userId,omitempty" query:"userId"`
	DateCreationStart   string `json:"dateCreationStart,omitempty" query:"dateCreationStart"`
	DateCreationEnd     string `json:"dateCreationEnd,omitempty" query:"dateCreationEnd"`
	DateResolutionStart string `json:"dateResolutionStart,omitempty" query:"dateResolutionStart"`
	DateResolutionEnd   string `json:"dateResolutionEnd,omitempty" query:"dateResolutionEnd"`
	Search              string `json:"search,omitempty" query:"search"`
}

type CreateTicketRequest struct {
	UserID  int64  `json:"userId" validate:"required,gt=0"`
	Sujet   string `json:"sujet" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type RespondTicketRequest struct {
	Reponse string       `json:"reponse" validate:"required"`
	Statut  TicketStatus `json:"statut" validate:"omitempty,oneof=OUVERT EN_COURS RESOLU FERME"`
}

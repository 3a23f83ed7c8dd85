package errors

import "net/http"

var (
	ErrConfirmationRequired = &DomainError{
		Code:    "CONFIRMATION_REQUIRED",
		Message: "Cette action doit être confirmée",
		Status:  http.StatusPreconditionRequired,
	}
	ErrStockCardUsed = &DomainError{
		Code:    "STOCK_CARD_USED",
		Message: "Une carte utilisée ne peut être ni modifiée ni supprimée",
		Status:  http.StatusConflict,
	}
	ErrTicketClosed = &DomainError{
		Code:    "TICKET_CLOSED",
		Message: "Ce ticket est fermé",
		Status:  http.StatusConflict,
	}
	ErrDisputeRejected = &DomainError{
		Code:    "DISPUTE_REJECTED",
		Message: "Ce litige a été rejeté et ne peut plus être modifié",
		Status:  http.StatusConflict,
	}
	ErrDisputeStatusUnchanged = &DomainError{
		Code:    "DISPUTE_STATUS_UNCHANGED",
		Message: "Le nouveau statut doit être différent du statut actuel",
		Status:  http.StatusConflict,
	}
	ErrTicketNotFound = &DomainError{
		Code:    "TICKET_NOT_FOUND",
		Message: "Ticket introuvable",
		Status:  http.StatusNotFound,
	}
	ErrDisputeNotFound = &DomainError{
		Code:    "DISPUTE_NOT_FOUND",
		Message: "Litige introuvable",
		Status:  http.StatusNotFound,
	}
	ErrInvalidID = &DomainError{
		Code:    "INVALID_ID",
		Message: "Identifiant invalide",
		Status:  http.StatusBadRequest,
	}
	ErrInvalidBody = &DomainError{
		Code:    "INVALID_BODY",
		Message: "Format de requête invalide",
		Status:  http.StatusBadRequest,
	}
)

// Login refusals applied after a successful API response.
var (
	ErrInvalidLoginResponse = &DomainError{
		Code:    "INVALID_LOGIN_RESPONSE",
		Message: "Réponse invalide du serveur",
		Status:  http.StatusBadGateway,
	}
	ErrAccountInactive = &DomainError{
		Code:    "ACCOUNT_INACTIVE",
		Message: "Votre compte est inactif. Veuillez contacter l'administrateur.",
		Status:  http.StatusForbidden,
	}
	ErrRoleNotAllowed = &DomainError{
		Code:    "ROLE_NOT_ALLOWED",
		Message: "Accès réservé aux administrateurs et aux agents",
		Status:  http.StatusForbidden,
	}
)

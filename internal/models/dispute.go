package models

type DisputeStatus string

const (
	DisputeOpen       DisputeStatus = "OUVERT"
	DisputeInProgress DisputeStatus = "EN_COURS"
	DisputeResolved   DisputeStatus = "RESOLU"
	DisputeRefunded   DisputeStatus = "REMBOURSE"
	DisputeRejected   DisputeStatus = "REJETE"
)

func (s DisputeStatus) Color() Color {
	switch s {
	case DisputeOpen:
		return ColorError
	case DisputeInProgress:
		return ColorWarning
	case DisputeResolved:
		return ColorSuccess
	case DisputeRefunded:
		return ColorInfo
	}
	return ColorDefault
}

// IsTerminal reports whether the console still allows status updates.
func (s DisputeStatus) IsTerminal() bool {
	return s == DisputeRejected
}

type DisputeTransaction struct {
	ID             int64   `json:"id"`
	Montant        float64 `json:"montant"`
	DevisePaiement string  `json:"devisePaiement"`
	Statut         string  `json:"statut"`
}

type Dispute struct {
	ID             int64              `json:"id"`
	Transaction    DisputeTransaction `json:"transaction"`
	User           UserRef            `json:"user"`
	Motif          string             `json:"motif"`
	Statut         DisputeStatus      `json:"statut"`
	Commentaire    string             `json:"commentaire"`
	DateCreation   string             `json:"dateCreation"`
	DateResolution *string            `json:"dateResolution"`
}

type DisputeFilter struct {
	Statut              string `json:"statut,omitempty" query:"statut"`
	TransactionID       int64  `json:"transactionId,omitempty" query:"transactionId"`
	UserID              int64  `json:"userId,omitempty" query:"userId"`
	DateCreationStart   string `json:"dateCreationStart,omitempty" query:"dateCreationStart"`
	DateCreationEnd     string `json:"dateCreationEnd,omitempty" query:"dateCreationEnd"`
	DateResolutionStart string `json:"dateResolutionStart,omitempty" query:"dateResolutionStart"`
	DateResolutionEnd   string `json:"dateResolutionEnd,omitempty" query:"dateResolutionEnd"`
	Search              string `json:"search,omitempty" query:"search"`
}

type CreateDisputeRequest struct {
	TransactionID int64  `json:"transactionId" validate:"required,gt=0"`
	Motif         string `json:"motif" validate:"required"`
	Commentaire   string `json:"commentaire,omitempty"`
}

type DisputeStatusUpdate struct {
	Statut      DisputeStatus `json:"statut" validate:"required,oneof=OUVERT EN_COURS RESOLU REMBOURSE REJETE"`
	Commentaire string        `json:"commentaire,omitempty"`
}

package models

import "encoding/json"

type TransactionStatus string

const (
	TransactionValidated TransactionStatus = "VALIDEE"
	TransactionPending   TransactionStatus = "EN_ATTENTE"
	TransactionFailed    TransactionStatus = "ECHOUEE"
)

func (s TransactionStatus) Color() Color {
	switch s {
	case TransactionValidated:
		return ColorSuccess
	case TransactionPending:
		return ColorWarning
	case TransactionFailed:
		return ColorError
	}
	return ColorDefault
}

type ProcessingType string

const (
	ProcessingAutomatic ProcessingType = "AUTOMATIQUE"
	ProcessingManual    ProcessingType = "MANUELLE"
)

type Transaction struct {
	ID             int64             `json:"id"`
	Numero         string            `json:"numero"`
	Montant        float64           `json:"montant"`
	DevisePaiement string            `json:"devisePaiement"`
	Operateur      string            `json:"operateur"`
	Pays           string            `json:"pays"`
	Statut         TransactionStatus `json:"statut"`
	TypeTraitement ProcessingType    `json:"typeTraitement"`
	DateDemande    string            `json:"dateDemande"`
	ClientNom      string            `json:"clientNom"`
	ClientID       int64             `json:"clientId"`
}

type StatusChange struct {
	Statut      TransactionStatus `json:"statut"`
	Date        string            `json:"date"`
	Commentaire string            `json:"commentaire,omitempty"`
}

type TransactionClient struct {
	ID        int64  `json:"id"`
	Nom       string `json:"nom"`
	Email     string `json:"email"`
	Telephone string `json:"telephone,omitempty"`
}

type TransactionDetails struct {
	ID                int64              `json:"id"`
	Numero            string             `json:"numero,omitempty"`
	Operateur         string             `json:"operateur"`
	NumeroCible       string             `json:"numeroCible"`
	Montant           float64            `json:"montant"`
	Frais             float64            `json:"frais"`
	DevisePaiement    string             `json:"devisePaiement"`
	Statut            TransactionStatus  `json:"statut"`
	DateDemande       string             `json:"dateDemande"`
	DateTraitement    string             `json:"dateTraitement,omitempty"`
	TypeTraitement    ProcessingType     `json:"typeTraitement"`
	AgentNom          string             `json:"agentNom,omitempty"`
	AgentEmail        string             `json:"agentEmail,omitempty"`
	MontantCarte      float64            `json:"montantCarte"`
	DeviseCarte       string             `json:"deviseCarte"`
	TauxDeChange      float64            `json:"tauxDeChange"`
	FraisConversion   float64            `json:"fraisConversion"`
	Pays              string             `json:"pays"`
	Commission        float64            `json:"commission"`
	TypeCommission    string             `json:"typeCommission"`
	CommissionBase    float64            `json:"commissionBase"`
	ClientNom         string             `json:"clientNom"`
	ClientEmail       string             `json:"clientEmail"`
	Client            *TransactionClient `json:"client,omitempty"`
	StripeSessionID   string             `json:"stripeSessionId,omitempty"`
	HistoriqueStatuts []StatusChange     `json:"historiqueStatuts"`
}

// TransactionFilter is both the console query string and the API filter body.
type TransactionFilter struct {
	Statut         string   `json:"statut,omitempty" query:"statut"`
	TypeTraitement string   `json:"typeTraitement,omitempty" query:"typeTraitement"`
	Operateur      string   `json:"operateur,omitempty" query:"operateur"`
	Pays           string   `json:"pays,omitempty" query:"pays"`
	AgentID        int64    `json:"agentId,omitempty" query:"agentId"`
	DateDebut      string   `json:"dateDebut,omitempty" query:"dateDebut"`
	DateFin        string   `json:"dateFin,omitempty" query:"dateFin"`
	MontantMin     *float64 `json:"montantMin,omitempty" query:"montantMin"`
	MontantMax     *float64 `json:"montantMax,omitempty" query:"montantMax"`
	Page           int      `json:"page" query:"page"`
	Size           int      `json:"size" query:"size"`
}

type TransactionStatusUpdate struct {
	Statut      TransactionStatus `json:"statut" validate:"required,oneof=VALIDEE EN_ATTENTE ECHOUEE"`
	Commentaire string            `json:"commentaire,omitempty"`
}

type AssignRequest struct {
	AgentID int64 `json:"agentId" validate:"required,gt=0"`
}

type ExportFormat string

const (
	ExportCSV   ExportFormat = "CSV"
	ExportExcel ExportFormat = "EXCEL"
	ExportPDF   ExportFormat = "PDF"
)

// Extension is the file suffix used when the operator gave none.
func (f ExportFormat) Extension() string {
	switch f {
	case ExportExcel:
		return ".xlsx"
	case ExportPDF:
		return ".pdf"
	}
	return ".csv"
}

type ExportRequest struct {
	TransactionFilter
	Format     ExportFormat `json:"format" validate:"required,oneof=CSV EXCEL PDF"`
	NomFichier string       `json:"nomFichier,omitempty"`
}

// MarshalJSON sends the filter criteria without pagination: an export
// covers every matching transaction.
func (r ExportRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Statut         string       `json:"statut,omitempty"`
		TypeTraitement string       `json:"typeTraitement,omitempty"`
		Operateur      string       `json:"operateur,omitempty"`
		Pays           string       `json:"pays,omitempty"`
		AgentID        int64        `json:"agentId,omitempty"`
		DateDebut      string       `json:"dateDebut,omitempty"`
		DateFin        string       `json:"dateFin,omitempty"`
		MontantMin     *float64     `json:"montantMin,omitempty"`
		MontantMax     *float64     `json:"montantMax,omitempty"`
		Format         ExportFormat `json:"format"`
		NomFichier     string       `json:"nomFichier,omitempty"`
	}{
		Statut:         r.Statut,
		TypeTraitement: r.TypeTraitement,
		Operateur:      r.Operateur,
		Pays:           r.Pays,
		AgentID:        r.AgentID,
		DateDebut:      r.DateDebut,
		DateFin:        r.DateFin,
		MontantMin:     r.MontantMin,
		MontantMax:     r.MontantMax,
		Format:         r.Format,
		NomFichier:     r.NomFichier,
	})
}

// ExportFile is a downloaded export.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

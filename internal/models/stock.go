package models

type StockCardStatus string

const (
	CardAvailable StockCardStatus = "DISPONIBLE"
	CardUsed      StockCardStatus = "UTILISE"
)

func (s StockCardStatus) Color() Color {
	if s == CardAvailable {
		return ColorSuccess
	}
	return ColorDefault
}

// StockCardOperators and StockCardCountries are the choices offered by the card form.
var (
	StockCardOperators = []string{"Orange", "Free", "SFR", "Bouygues"}
	StockCardCountries = []string{"France", "Belgique", "Suisse", "Luxembourg"}
)

type CardTransaction struct {
	ID          int64   `json:"id"`
	NumeroCible string  `json:"numeroCible"`
	Montant     float64 `json:"montant"`
	Statut      string  `json:"statut"`
	DateDemande string  `json:"dateDemande"`
}

type StockCard struct {
	ID                     int64            `json:"id"`
	Operateur              string           `json:"operateur"`
	Montant                float64          `json:"montant"`
	Code                   string           `json:"code"`
	Statut                 StockCardStatus  `json:"statut"`
	DateAjout              string           `json:"dateAjout"`
	DateUtilisation        *string          `json:"dateUtilisation"`
	UtilisePourTransaction *CardTransaction `json:"utilisePourTransaction"`
	Pays                   string           `json:"pays"`
}

// IsUsed reports whether the card is consumed and therefore frozen.
func (c *StockCard) IsUsed() bool {
	return c.Statut == CardUsed
}

type StockCardForm struct {
	Operateur string  `json:"operateur" validate:"required,oneof=Orange Free SFR Bouygues"`
	Montant   float64 `json:"montant" validate:"gt=0"`
	Code      string  `json:"code" validate:"required"`
	Pays      string  `json:"pays" validate:"required,oneof=France Belgique Suisse Luxembourg"`
}

type StockCardFilter struct {
	Pays      string `json:"pays,omitempty" query:"pays"`
	Statut    string `json:"statut,omitempty" query:"statut"`
	Operateur string `json:"operateur,omitempty" query:"operateur"`
	Page      int    `json:"page" query:"page"`
	Size      int    `json:"size" query:"size"`
}

type RechargeStock struct {
	ID                int64   `json:"id"`
	Pays              string  `json:"pays"`
	Operateur         string  `json:"operateur"`
	MontantTotal      float64 `json:"montantTotal"`
	MontantDisponible float64 `json:"montantDisponible"`
	DateCreation      string  `json:"dateCreation"`
	DateModification  string  `json:"dateModification"`
}

// RechargeStockForm creates a balance or tops one up.
type RechargeStockForm struct {
	Pays      string  `json:"pays" validate:"required"`
	Operateur string  `json:"operateur" validate:"required"`
	Montant   float64 `json:"montant" validate:"gt=0"`
}

type RechargeStockFilter struct {
	Pays      string `json:"pays,omitempty" query:"pays"`
	Operateur string `json:"operateur,omitempty" query:"operateur"`
	Page      int    `json:"page" query:"page"`
	Size      int    `json:"size" query:"size"`
}

package models

// SupportedCurrencies is the fixed list offered by the rate form and the calculator.
var SupportedCurrencies = []string{"TND", "EUR", "USD", "GBP", "AED", "SAR", "QAR", "KWD", "BHD", "OMR"}

func IsSupportedCurrency(code string) bool {
	for _, c := range SupportedCurrencies {
		if c == code {
			return true
		}
	}
	return false
}

type ExchangeRate struct {
	ID            int64   `json:"id"`
	DeviseSource  string  `json:"deviseSource"`
	DeviseCible   string  `json:"deviseCible"`
	Taux          float64 `json:"taux"`
	DateObtention string  `json:"dateObtention"`
	Actif         bool    `json:"actif"`
}

type ExchangeRateForm struct {
	DeviseSource string  `json:"deviseSource" validate:"required,currency"`
	DeviseCible  string  `json:"deviseCible" validate:"required,currency,nefield=DeviseSource"`
	Taux         float64 `json:"taux" validate:"gt=0"`
}

type ExchangeRateHistory struct {
	ID               int64   `json:"id"`
	Taux             float64 `json:"taux"`
	DateModification string  `json:"dateModification"`
	ModifiedBy       string  `json:"modifiedBy"`
}

type ConversionRequest struct {
	Montant      float64 `json:"montant" query:"montant" validate:"gte=0"`
	DeviseSource string  `json:"deviseSource" query:"deviseSource" validate:"required,currency"`
	DeviseCible  string  `json:"deviseCible" query:"deviseCible" validate:"required,currency"`
}

type ConversionResult struct {
	MontantSource float64 `json:"montantSource"`
	DeviseSource  string  `json:"deviseSource"`
	MontantCible  float64 `json:"montantCible"`
	DeviseCible   string  `json:"deviseCible"`
	Taux          float64 `json:"taux"`
	DateCalcul    string  `json:"dateCalcul"`
}

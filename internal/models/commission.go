package models

type CommissionType string

const (
	CommissionPercentage CommissionType = "POURCENTAGE"
	CommissionFixed      CommissionType = "FIXE"
)

type Commission struct {
	ID             int64          `json:"id"`
	Pays           string         `json:"pays"`
	Operateur      *string        `json:"operateur"`
	TypeCommission CommissionType `json:"typeCommission"`
	Valeur         float64        `json:"valeur"`
	Actif          bool           `json:"actif"`
}

// IsGlobal reports whether the commission applies to every operator of the country.
func (c *Commission) IsGlobal() bool {
	return c.Operateur == nil || *c.Operateur == ""
}

type CommissionForm struct {
	Pays           string         `json:"pays" validate:"required"`
	Operateur      string         `json:"operateur,omitempty"`
	TypeCommission CommissionType `json:"typeCommission" validate:"required,oneof=POURCENTAGE FIXE"`
	Valeur         *float64       `json:"valeur" validate:"required,gte=0"`
	Actif          bool           `json:"actif"`
}

type CommissionFilter struct {
	Pays           string `json:"pays,omitempty" query:"pays"`
	Operateur      string `json:"operateur,omitempty" query:"operateur"`
	TypeCommission string `json:"typeCommission,omitempty" query:"typeCommission"`
}

package validation

import (
	"testing"

	apperrors "chargili/internal/errors"
	"chargili/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float(v float64) *float64 { return &v }

func fieldErrors(t *testing.T, err error) apperrors.ValidationErrors {
	t.Helper()
	require.Error(t, err)
	verrs, ok := err.(apperrors.ValidationErrors)
	require.True(t, ok, "expected ValidationErrors, got %T", err)
	return verrs
}

func TestCommissionForm(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		form    models.CommissionForm
		field   string
		message string
	}{
		{
			name:    "percentage above ceiling",
			form:    models.CommissionForm{Pays: "France", TypeCommission: models.CommissionPercentage, Valeur: float(150)},
			field:   "valeur",
			message: "Le pourcentage ne peut pas dépasser 100%",
		},
		{
			name:    "negative value",
			form:    models.CommissionForm{Pays: "France", TypeCommission: models.CommissionFixed, Valeur: float(-1)},
			field:   "valeur",
			message: "La valeur doit être positive",
		},
		{
			name:    "missing value",
			form:    models.CommissionForm{Pays: "France", TypeCommission: models.CommissionFixed},
			field:   "valeur",
			message: "La valeur est requise",
		},
		{
			name:    "missing country",
			form:    models.CommissionForm{TypeCommission: models.CommissionFixed, Valeur: float(2)},
			field:   "pays",
			message: "Le pays est requis",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verrs := fieldErrors(t, v.Struct(tt.form))
			assert.Equal(t, tt.message, verrs[tt.field])
		})
	}

	t.Run("fixed commission has no ceiling", func(t *testing.T) {
		form := models.CommissionForm{Pays: "France", TypeCommission: models.CommissionFixed, Valeur: float(150)}
		assert.NoError(t, v.Struct(form))
	})

	t.Run("percentage at ceiling", func(t *testing.T) {
		form := models.CommissionForm{Pays: "France", TypeCommission: models.CommissionPercentage, Valeur: float(100)}
		assert.NoError(t, v.Struct(form))
	})
}

func TestCurrencyForm(t *testing.T) {
	v := New()

	verrs := fieldErrors(t, v.Struct(models.CurrencyForm{Code: "eur", Name: "Euro", Symbol: "€", Region: "Europe"}))
	assert.Equal(t, "Le code doit être composé de 3 lettres majuscules", verrs["code"])
	assert.Equal(t, "La priorité doit être un nombre positif", verrs["priority"])

	assert.NoError(t, v.Struct(models.CurrencyForm{Code: "EUR", Name: "Euro", Symbol: "€", Region: "Europe", Priority: 1}))
}

func TestStockCardForm(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(models.StockCardForm{Operateur: "Orange", Pays: "France", Montant: 10, Code: "ABC123"}))

	verrs := fieldErrors(t, v.Struct(models.StockCardForm{Operateur: "Vodafone", Pays: "Espagne", Code: ""}))
	assert.Equal(t, "Opérateur non pris en charge", verrs["operateur"])
	assert.Equal(t, "Pays non pris en charge", verrs["pays"])
	assert.Equal(t, "Le montant doit être supérieur à 0", verrs["montant"])
	assert.Equal(t, "Le code est requis", verrs["code"])
}

func TestConversionRequest(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(models.ConversionRequest{Montant: 100, DeviseSource: "TND", DeviseCible: "EUR"}))

	verrs := fieldErrors(t, v.Struct(models.ConversionRequest{Montant: -5, DeviseSource: "XOF", DeviseCible: "EUR"}))
	assert.Equal(t, "Le montant doit être positif", verrs["montant"])
	assert.Equal(t, "Devise source non prise en charge", verrs["deviseSource"])
}

func TestExchangeRateForm(t *testing.T) {
	v := New()

	verrs := fieldErrors(t, v.Struct(models.ExchangeRateForm{DeviseSource: "EUR", DeviseCible: "EUR", Taux: 0}))
	assert.Equal(t, "Les devises source et cible doivent être différentes", verrs["deviseCible"])
	assert.Equal(t, "Le taux doit être supérieur à 0", verrs["taux"])
}

func TestChangePasswordRequest(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     models.ChangePasswordRequest
		field   string
		message string
	}{
		{
			name:    "confirmation mismatch",
			req:     models.ChangePasswordRequest{AncienMotDePasse: "old", NouveauMotDePasse: "Secret#2024", ConfirmationMotDePasse: "Secret#2025"},
			field:   "confirmationMotDePasse",
			message: "Les nouveaux mots de passe ne correspondent pas",
		},
		{
			name:    "too short",
			req:     models.ChangePasswordRequest{AncienMotDePasse: "old", NouveauMotDePasse: "S#1a", ConfirmationMotDePasse: "S#1a"},
			field:   "nouveauMotDePasse",
			message: "Le nouveau mot de passe doit contenir au moins 8 caractères",
		},
		{
			name:    "weak",
			req:     models.ChangePasswordRequest{AncienMotDePasse: "old", NouveauMotDePasse: "password123", ConfirmationMotDePasse: "password123"},
			field:   "nouveauMotDePasse",
			message: "Le mot de passe doit contenir au moins une majuscule, une minuscule, un chiffre et un caractère spécial",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verrs := fieldErrors(t, v.Struct(tt.req))
			assert.Equal(t, tt.message, verrs[tt.field])
		})
	}

	assert.NoError(t, v.Struct(models.ChangePasswordRequest{
		AncienMotDePasse: "old", NouveauMotDePasse: "Secret#2024", ConfirmationMotDePasse: "Secret#2024",
	}))
}

func TestAgentForms(t *testing.T) {
	v := New()

	t.Run("create requires password", func(t *testing.T) {
		verrs := fieldErrors(t, v.Struct(models.CreateAgentForm{Nom: "Sami", Email: "sami@chargili.tn"}))
		assert.Equal(t, "Le mot de passe est requis", verrs["motDePasse"])
	})

	t.Run("update keeps password optional", func(t *testing.T) {
		assert.NoError(t, v.Struct(models.AgentForm{Nom: "Sami", Email: "sami@chargili.tn"}))
	})

	t.Run("short password and bad email", func(t *testing.T) {
		err := v.Struct(models.AgentForm{Nom: "Sami", Email: "sami@", MotDePasse: "short"})
		verrs := fieldErrors(t, err)
		assert.Equal(t, "Le mot de passe doit contenir au moins 8 caractères", verrs["motDePasse"])
		assert.Equal(t, "Format d'email invalide", verrs["email"])
		assert.Equal(t, "Format d'email invalide, Le mot de passe doit contenir au moins 8 caractères", err.Error())
	})

	t.Run("blank name", func(t *testing.T) {
		verrs := fieldErrors(t, v.Struct(models.AgentForm{Nom: "   ", Email: "sami@chargili.tn"}))
		assert.Equal(t, "Le nom est requis", verrs["nom"])
	})

	t.Run("empty create form", func(t *testing.T) {
		verrs := fieldErrors(t, v.Struct(models.CreateAgentForm{}))
		assert.Len(t, verrs, 3)
	})
}

func TestDateRange(t *testing.T) {
	c := NewChecker()
	c.DateRange("dateDebut", "2024-03-01", "dateFin", "2024-02-01")
	assert.Equal(t, "La date de début doit précéder la date de fin", c.Errors["dateDebut"])

	c = NewChecker()
	c.DateRange("dateDebut", "2024-01-01", "dateFin", "")
	assert.True(t, c.Valid())

	c = NewChecker()
	c.DateRange("dateDebut", "hier", "dateFin", "2024-01-01")
	assert.Contains(t, c.Errors["dateDebut"], "Date invalide")
}

func TestIsStrongPassword(t *testing.T) {
	assert.True(t, IsStrongPassword("Abcdef1!"))
	assert.False(t, IsStrongPassword("abcdef1!"))
	assert.False(t, IsStrongPassword("ABCDEF1!"))
	assert.False(t, IsStrongPassword("Abcdefg!"))
	assert.False(t, IsStrongPassword("Abcdefg1"))
}

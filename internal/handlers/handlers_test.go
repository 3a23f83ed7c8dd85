package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatConversion(t *testing.T) {
	assert.Equal(t, "Résultat : 29.90 EUR", FormatConversion(29.9, "EUR"))
	assert.Equal(t, "Résultat : 0.00 TND", FormatConversion(0, "TND"))
	assert.Equal(t, "Résultat : 1234.57 USD", FormatConversion(1234.5678, "USD"))
}

func TestSafeRedirect(t *testing.T) {
	tests := map[string]string{
		"":                  "/dashboard",
		"/transactions/12":  "/transactions/12",
		"//evil.example":    "/dashboard",
		"https://evil.test": "/dashboard",
		"/login?from=/x":    "/dashboard",
	}
	for from, want := range tests {
		assert.Equal(t, want, safeRedirect(from), from)
	}
}

func TestMenuFor(t *testing.T) {
	admin := menuFor(menu, true)
	agent := menuFor(menu, false)

	assert.Len(t, admin, len(menu))
	for _, item := range agent {
		assert.NotEqual(t, "/agents", item.Path)
		assert.NotEqual(t, "/audit", item.Path)
		for _, child := range item.Children {
			assert.NotEqual(t, "/parameters/exchange-rates", child.Path)
		}
	}
	// the parameters group keeps tickets and disputes for agents
	var params *MenuItem
	for i := range agent {
		if agent[i].Title == "Paramètres" {
			params = &agent[i]
		}
	}
	if assert.NotNil(t, params) {
		assert.Len(t, params.Children, 2)
	}
}

package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"api error", NewAPIError(http.StatusNotFound, "absent"), http.StatusNotFound},
		{"wrapped api error", fmt.Errorf("agents: %w", NewAPIError(http.StatusUnauthorized, "x")), http.StatusUnauthorized},
		{"network", NetworkError(stderrors.New("dial tcp")), http.StatusBadGateway},
		{"validation", ValidationErrors{"email": "Email invalide"}, http.StatusUnprocessableEntity},
		{"domain", ErrStockCardUsed, http.StatusConflict},
		{"plain", stderrors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, MsgConnection, MessageOf(NetworkError(stderrors.New("refused"))))
	assert.Equal(t, "Opérateur introuvable", MessageOf(NewAPIError(404, "Opérateur introuvable")))
	assert.Equal(t, ErrTicketClosed.Message, MessageOf(fmt.Errorf("respond: %w", ErrTicketClosed)))
	assert.Empty(t, MessageOf(nil))
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(fmt.Errorf("list: %w", NewAPIError(http.StatusUnauthorized, "expired"))))
	assert.False(t, IsUnauthorized(NewAPIError(http.StatusForbidden, "no")))
	assert.False(t, IsUnauthorized(stderrors.New("401")))
}

func TestValidationErrors(t *testing.T) {
	v := ValidationErrors{}
	assert.NoError(t, v.OrNil())

	v.Add("nom", "Le nom est requis")
	v.Add("email", "L'email est requis")
	v.Add("nom", "ignored")

	assert.Equal(t, "L'email est requis, Le nom est requis", v.Error())
	assert.Error(t, v.OrNil())
}

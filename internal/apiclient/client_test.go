package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	apperrors "chargili/internal/errors"
	"chargili/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenKey struct{}

func tokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Options{BaseURL: srv.URL + "/", Token: tokenFromContext})
}

func TestDoAttachesBearerAndDecodes(t *testing.T) {
	var gotAuth, gotPath, gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"nom":"Sami","email":"sami@chargili.tn","role":"AGENT","actif":true}]`))
	})

	ctx := context.WithValue(context.Background(), tokenKey{}, "tok-123")
	var agents []models.Agent
	err := client.Resource("/api/backoffice/agents", "Erreur agents").Get(ctx, "", Query{}.Str("nom", "").Str("email", "sami"), &agents)

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "/api/backoffice/agents", gotPath)
	assert.Equal(t, "email=sami", gotQuery)
	require.Len(t, agents, 1)
	assert.Equal(t, "Sami", agents[0].Nom)
}

func TestNoTokenNoHeader(t *testing.T) {
	var hadHeader bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, hadHeader = r.Header["Authorization"]
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.Resource("/x", "").Delete(context.Background(), "/1"))
	assert.False(t, hadHeader)
}

func TestServerErrorNormalised(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"server message", http.StatusConflict, `{"message":"Email déjà utilisé"}`, "Email déjà utilisé"},
		{"error field", http.StatusBadRequest, `{"error":"bad filter"}`, "bad filter"},
		{"fallback", http.StatusInternalServerError, `<html>oops</html>`, "Erreur lors de la création de l'agent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			err := client.Resource("/api/backoffice/agents", "Erreur lors de la création de l'agent").
				Post(context.Background(), "", map[string]string{"nom": "x"}, nil)

			apiErr, ok := apperrors.AsAPIError(err)
			require.True(t, ok)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestUnauthorizedEmitsEvent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	var calls int32
	var seen context.Context
	client.OnUnauthorized(func(ctx context.Context) {
		atomic.AddInt32(&calls, 1)
		seen = ctx
	})

	ctx := context.WithValue(context.Background(), tokenKey{}, "expired")
	err := client.Resource("/api/backoffice/operators", "").Get(ctx, "", nil, &[]models.Operator{})

	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, "expired", tokenFromContext(seen))
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := New(Options{BaseURL: url})
	err := client.Resource("/api/backoffice/agents", "").Get(context.Background(), "", nil, nil)

	apiErr, ok := apperrors.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, apperrors.MsgConnection, apiErr.Message)
}

func TestCancelledContext(t *testing.T) {
	var hits int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Resource("/x", "").Get(ctx, "", nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestDownload(t *testing.T) {
	var body map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="juin.csv"`)
		_, _ = w.Write([]byte("id;montant\n1;10\n"))
	})

	resp, err := client.Resource("/api/backoffice/transactions", "").
		Download(context.Background(), "/export", models.ExportRequest{Format: models.ExportCSV})

	require.NoError(t, err)
	assert.Equal(t, "text/csv", resp.ContentType)
	assert.Equal(t, "juin.csv", FilenameFrom(resp.Disposition))
	assert.Equal(t, "id;montant\n1;10\n", string(resp.Body))
	assert.Equal(t, "CSV", body["format"])
}

func TestQueryFrom(t *testing.T) {
	min := 0.0
	q := QueryFrom(&models.TransactionFilter{
		Statut:     "VALIDEE",
		AgentID:    7,
		MontantMin: &min,
		Size:       20,
	})

	assert.Equal(t, Query{"statut": "VALIDEE", "agentId": "7", "montantMin": "0", "size": "20"}, q)
	assert.Equal(t, "agentId=7&montantMin=0&size=20&statut=VALIDEE", q.Encode())

	assert.Empty(t, QueryFrom(models.TicketFilter{}))
	assert.Empty(t, QueryFrom(nil))
}

func TestQueryPage(t *testing.T) {
	q := Query{}.Page(models.PageRequest{Page: 0, Size: 10})
	assert.Equal(t, "page=0&size=10", q.Encode())
}

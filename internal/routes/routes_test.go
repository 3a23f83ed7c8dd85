package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"chargili/internal/apiclient/apitest"
	"chargili/internal/config"
	"chargili/internal/models"
	"chargili/internal/repositories"
	"chargili/internal/repositories/cache"
	"chargili/internal/session"
	"chargili/internal/utils/response"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sid   = "2b4a8e1c-0d0e-4c39-9a57-4b0f3c1f6c11"
	token = "tok-admin"
)

type harness struct {
	app   *fiber.App
	api   *apitest.Server
	store repositories.TokenStore
	redis *miniredis.Miniredis
}

type option func(*Deps)

func withRestoreMode(mode string) option {
	return func(d *Deps) { d.RestoreMode = mode }
}

func withLoginLimit(n int) option {
	return func(d *Deps) { d.LoginRateLimit = n }
}

func newHarness(t *testing.T, opts ...option) *harness {
	t.Helper()
	api := apitest.New(t)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cacheService := cache.NewCacheService(client, 0)
	store := repositories.NewRedisTokenStore(cacheService)

	deps := Deps{
		API:         api.Client(session.TokenFrom),
		Store:       store,
		Cache:       cacheService,
		RestoreMode: config.RestoreModeLegacy,
		Version:     "test",
	}
	for _, opt := range opts {
		opt(&deps)
	}

	app := fiber.New(fiber.Config{ErrorHandler: response.ErrorHandler})
	SetupRoutes(app, deps)
	return &harness{app: app, api: api, store: store, redis: mr}
}

// signIn stores a token for the test session.
func (h *harness) signIn(t *testing.T) {
	t.Helper()
	require.NoError(t, h.store.SaveToken(context.Background(), sid, token))
}

func (h *harness) do(t *testing.T, method, target string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.AddCookie(&http.Cookie{Name: "chargili_sid", Value: sid})

	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func location(t *testing.T, resp *http.Response) *url.URL {
	t.Helper()
	u, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	return u
}

func rows(t *testing.T, screen map[string]interface{}) []map[string]interface{} {
	t.Helper()
	raw, ok := screen["rows"].([]interface{})
	require.True(t, ok, "screen has no rows: %v", screen)
	out := make([]map[string]interface{}, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.(map[string]interface{}))
	}
	return out
}

func TestGuardRedirectsAnonymousToLogin(t *testing.T) {
	h := newHarness(t)

	resp := h.do(t, http.MethodGet, "/agents", nil)

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	loc := location(t, resp)
	assert.Equal(t, "/login", loc.Path)
	assert.Equal(t, "/agents", loc.Query().Get("from"))
	assert.Zero(t, len(h.api.Calls()))
}

func TestGuardSendsAgentToUnauthorized(t *testing.T) {
	h := newHarness(t, withRestoreMode(config.RestoreModeFetch))
	h.api.JSON(http.MethodGet, "/api/front/auth/me", http.StatusOK,
		models.User{Email: "agent@chargili.tn", Role: models.RoleAgent, Statut: models.AccountActive})
	h.signIn(t)

	resp := h.do(t, http.MethodGet, "/parameters/commissions", nil)

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	loc := location(t, resp)
	assert.Equal(t, "/unauthorized", loc.Path)
	assert.Equal(t, "/parameters/commissions", loc.Query().Get("from"))
	assert.Zero(t, h.api.Count(http.MethodGet, "/api/backoffice/commissions"))
}

func TestGuardSendsInactiveUserToLoginWithMessage(t *testing.T) {
	h := newHarness(t, withRestoreMode(config.RestoreModeFetch))
	h.api.JSON(http.MethodGet, "/api/front/auth/me", http.StatusOK,
		models.User{Email: "agent@chargili.tn", Role: models.RoleAgent, Statut: models.AccountInactive})
	h.signIn(t)

	resp := h.do(t, http.MethodGet, "/clients", nil)

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	loc := location(t, resp)
	assert.Equal(t, "/login", loc.Path)
	assert.Equal(t, "/clients", loc.Query().Get("from"))
	assert.Equal(t, "Votre compte est inactif", loc.Query().Get("message"))
}

func TestAdminListsAgents(t *testing.T) {
	h := newHarness(t)
	h.api.JSON(http.MethodGet, "/api/backoffice/agents", http.StatusOK, []models.Agent{
		{ID: 1, Nom: "Sami", Email: "sami@chargili.tn", Role: models.RoleAgent, Actif: true},
	})
	h.signIn(t)

	resp := h.do(t, http.MethodGet, "/agents", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	screen := decode(t, resp)
	assert.Equal(t, "success", screen["state"])
	list := rows(t, screen)
	require.Len(t, list, 1)
	assert.Equal(t, "Sami", list[0]["record"].(map[string]interface{})["nom"])

	call, ok := h.api.Last(http.MethodGet, "/api/backoffice/agents")
	require.True(t, ok)
	assert.Equal(t, "Bearer "+token, call.Auth)
}

func TestListFailureKeepsScreen(t *testing.T) {
	h := newHarness(t)
	h.api.JSON(http.MethodGet, "/api/backoffice/operators/all", http.StatusInternalServerError,
		map[string]string{"message": "Base indisponible"})
	h.signIn(t)

	resp := h.do(t, http.MethodGet, "/parameters/operators", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	screen := decode(t, resp)
	assert.Equal(t, "failed", screen["state"])
	assert.Equal(t, "Base indisponible", screen["error"])
	assert.Empty(t, rows(t, screen))
}

func TestUnauthorizedListEndsSession(t *testing.T) {
	h := newHarness(t)
	h.api.JSON(http.MethodGet, "/api/backoffice/agents", http.StatusUnauthorized, nil)
	h.signIn(t)

	resp := h.do(t, http.MethodGet, "/agents", nil)

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", location(t, resp).Path)
	assert.Contains(t, resp.Header.Get("Set-Cookie"), "chargili_sid=")

	stored, err := h.store.Token(context.Background(), sid)
	require.NoError(t, err)
	assert.Empty(t, stored)
	assert.False(t, h.redis.Exists("session:token:"+sid))

	// the next request is anonymous
	resp = h.do(t, http.MethodGet, "/dashboard", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", location(t, resp).Query().Get("from"))
}

func TestCommissionAboveHundredPercentNeverReachesAPI(t *testing.T) {
	h := newHarness(t)
	h.signIn(t)

	resp := h.do(t, http.MethodPost, "/parameters/commissions", map[string]interface{}{
		"pays": "France", "typeCommission": "POURCENTAGE", "valeur": 150,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := decode(t, resp)
	dialog := body["dialog"].(map[string]interface{})
	assert.Equal(t, true, dialog["open"])
	assert.Equal(t, "Le pourcentage ne peut pas dépasser 100%", dialog["fields"].(map[string]interface{})["valeur"])
	assert.Equal(t, "France", dialog["form"].(map[string]interface{})["pays"])
	assert.Zero(t, h.api.Count(http.MethodPost, "/api/backoffice/commissions"))
}

func TestStockCardLifecycle(t *testing.T) {
	h := newHarness(t)
	h.signIn(t)

	card := models.StockCard{ID: 1, Operateur: "Orange", Pays: "France", Montant: 10, Code: "ABC123", Statut: models.CardAvailable}
	h.api.JSON(http.MethodPost, "/api/backoffice/stock-cartes", http.StatusCreated, card)
	h.api.JSON(http.MethodGet, "/api/backoffice/stock-cartes", http.StatusOK, models.Page[models.StockCard]{
		Content: []models.StockCard{card}, TotalElements: 1, TotalPages: 1, Size: 10,
	})

	resp := h.do(t, http.MethodPost, "/stock/cards", models.StockCardForm{Operateur: "Orange", Pays: "France", Montant: 10, Code: "ABC123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	screen := decode(t, resp)
	assert.Equal(t, "Carte ajoutée avec succès", screen["toast"].(map[string]interface{})["message"])
	list := rows(t, screen)
	require.Len(t, list, 1)
	assert.Equal(t, "DISPONIBLE", list[0]["record"].(map[string]interface{})["statut"])
	assert.Equal(t, true, list[0]["canEdit"])
	assert.Equal(t, true, list[0]["canDelete"])

	used := card
	used.Statut = models.CardUsed
	h.api.JSON(http.MethodGet, "/api/backoffice/stock-cartes/1", http.StatusOK, used)

	resp = h.do(t, http.MethodPut, "/stock/cards/1", models.StockCardForm{Operateur: "Orange", Pays: "France", Montant: 20, Code: "ABC123"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp = h.do(t, http.MethodDelete, "/stock/cards/1?confirm=true", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	assert.Zero(t, h.api.Count(http.MethodPut, "/api/backoffice/stock-cartes/1"))
	assert.Zero(t, h.api.Count(http.MethodDelete, "/api/backoffice/stock-cartes/1"))
}

func TestDeleteAsksForConfirmation(t *testing.T) {
	h := newHarness(t)
	h.signIn(t)
	h.api.JSON(http.MethodDelete, "/api/backoffice/agents/3", http.StatusNoContent, nil)
	h.api.JSON(http.MethodGet, "/api/backoffice/agents", http.StatusOK, []models.Agent{})

	resp := h.do(t, http.MethodDelete, "/agents/3", nil)
	assert.Equal(t, http.StatusPreconditionRequired, resp.StatusCode)
	body := decode(t, resp)
	assert.NotEmpty(t, body["confirm"].(map[string]interface{})["prompt"])
	assert.Zero(t, h.api.Count(http.MethodDelete, "/api/backoffice/agents/3"))

	resp = h.do(t, http.MethodDelete, "/agents/3?confirm=true", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, h.api.Count(http.MethodDelete, "/api/backoffice/agents/3"))
}

func TestCalculator(t *testing.T) {
	h := newHarness(t)
	h.signIn(t)
	h.api.JSON(http.MethodGet, "/api/backoffice/taux-de-change/calcul", http.StatusOK, models.ConversionResult{
		MontantSource: 100, DeviseSource: "TND", MontantCible: 29.9, DeviseCible: "EUR", Taux: 0.299,
	})

	resp := h.do(t, http.MethodGet, "/parameters/exchange-rates/calculator?montant=100&deviseSource=TND&deviseCible=EUR", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Résultat : 29.90 EUR", decode(t, resp)["display"])

	call, ok := h.api.Last(http.MethodGet, "/api/backoffice/taux-de-change/calcul")
	require.True(t, ok)
	q, err := url.ParseQuery(call.Query)
	require.NoError(t, err)
	assert.Equal(t, "100", q.Get("montant"))

	t.Run("rejects a negative amount", func(t *testing.T) {
		resp := h.do(t, http.MethodGet, "/parameters/exchange-rates/calculator?montant=-1&deviseSource=TND&deviseCible=EUR", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, 1, h.api.Count(http.MethodGet, "/api/backoffice/taux-de-change/calcul"))
	})

	t.Run("empty form", func(t *testing.T) {
		resp := h.do(t, http.MethodGet, "/parameters/exchange-rates/calculator", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decode(t, resp)
		assert.Len(t, body["devises"], len(models.SupportedCurrencies))
		assert.Nil(t, body["result"])
	})
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name    string
		reply   models.LoginResponse
		message string
	}{
		{
			name:    "user role refused",
			reply:   models.LoginResponse{Token: "t", Email: "client@chargili.tn", Role: models.RoleUser, Statut: models.AccountActive},
			message: "Accès réservé aux administrateurs et aux agents",
		},
		{
			name:    "inactive account refused",
			reply:   models.LoginResponse{Token: "t", Email: "agent@chargili.tn", Role: models.RoleAgent, Statut: models.AccountInactive},
			message: "Votre compte est inactif. Veuillez contacter l'administrateur.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.api.JSON(http.MethodPost, "/api/front/auth/login", http.StatusOK, tt.reply)

			resp := h.do(t, http.MethodPost, "/login", map[string]string{"email": tt.reply.Email, "motDePasse": "secret"})

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, tt.message, decode(t, resp)["error"])
			assert.Empty(t, resp.Header.Get("Set-Cookie"))
		})
	}

	t.Run("success", func(t *testing.T) {
		h := newHarness(t)
		h.api.JSON(http.MethodPost, "/api/front/auth/login", http.StatusOK,
			models.LoginResponse{Token: "fresh", Email: "admin@chargili.tn", Role: models.RoleAdmin, Statut: models.AccountActive})

		resp := h.do(t, http.MethodPost, "/login", map[string]string{
			"email": "admin@chargili.tn", "motDePasse": "secret", "from": "/parameters/operators",
		})

		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/parameters/operators", resp.Header.Get("Location"))

		var issued string
		for _, c := range resp.Cookies() {
			if c.Name == "chargili_sid" {
				issued = c.Value
			}
		}
		require.NotEmpty(t, issued)
		stored, err := h.store.Token(context.Background(), issued)
		require.NoError(t, err)
		assert.Equal(t, "fresh", stored)
	})

	t.Run("off-site redirect ignored", func(t *testing.T) {
		h := newHarness(t)
		h.api.JSON(http.MethodPost, "/api/front/auth/login", http.StatusOK,
			models.LoginResponse{Token: "fresh", Email: "admin@chargili.tn", Role: models.RoleAdmin})

		resp := h.do(t, http.MethodPost, "/login", map[string]string{
			"email": "admin@chargili.tn", "motDePasse": "secret", "from": "//evil.example",
		})
		assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
	})
}

func TestLoginRateLimit(t *testing.T) {
	h := newHarness(t, withLoginLimit(2))
	h.api.JSON(http.MethodPost, "/api/front/auth/login", http.StatusBadRequest, nil)

	for i := 0; i < 2; i++ {
		resp := h.do(t, http.MethodPost, "/login", map[string]string{"email": "a@chargili.tn", "motDePasse": "x"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
	resp := h.do(t, http.MethodPost, "/login", map[string]string{"email": "a@chargili.tn", "motDePasse": "x"})
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestLogout(t *testing.T) {
	h := newHarness(t)
	h.signIn(t)
	h.api.JSON(http.MethodPost, "/api/front/auth/logout", http.StatusInternalServerError, nil)

	resp := h.do(t, http.MethodPost, "/logout", nil)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	assert.Equal(t, 1, h.api.Count(http.MethodPost, "/api/front/auth/logout"))
	assert.False(t, h.redis.Exists("session:token:"+sid))
}

func TestTicketRespond(t *testing.T) {
	h := newHarness(t)
	h.signIn(t)
	h.api.JSON(http.MethodGet, "/api/backoffice/support-tickets", http.StatusOK, []models.SupportTicket{
		{ID: 4, Sujet: "Recharge", Statut: models.TicketOpen},
		{ID: 5, Sujet: "Remboursement", Statut: models.TicketClosed},
	})
	h.api.JSON(http.MethodPatch, "/api/backoffice/support-tickets/4/respond", http.StatusOK, models.SupportTicket{ID: 4})

	resp := h.do(t, http.MethodPost, "/parameters/support-tickets/5/respond", map[string]string{"reponse": "ok"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Zero(t, h.api.Count(http.MethodPatch, "/api/backoffice/support-tickets/5/respond"))

	resp = h.do(t, http.MethodPost, "/parameters/support-tickets/4/respond", map[string]string{"reponse": "Nous regardons"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	call, ok := h.api.Last(http.MethodPatch, "/api/backoffice/support-tickets/4/respond")
	require.True(t, ok)
	var sent models.RespondTicketRequest
	call.Decode(t, &sent)
	assert.Equal(t, models.TicketInProgress, sent.Statut)
	assert.Equal(t, "Nous regardons", sent.Reponse)

	list := rows(t, decode(t, resp))
	require.Len(t, list, 2)
	assert.Equal(t, true, list[0]["canRespond"])
	assert.Nil(t, list[1]["canRespond"])
}

func TestDisputeStatusGuards(t *testing.T) {
	h := newHarness(t)
	h.signIn(t)
	h.api.JSON(http.MethodGet, "/api/backoffice/disputes", http.StatusOK, []models.Dispute{
		{ID: 7, Motif: "Double débit", Statut: models.DisputeRejected},
		{ID: 8, Motif: "Carte invalide", Statut: models.DisputeInProgress},
	})

	resp := h.do(t, http.MethodPost, "/parameters/disputes/7/status", map[string]string{"statut": "RESOLU"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = h.do(t, http.MethodPost, "/parameters/disputes/8/status", map[string]string{"statut": "EN_COURS"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	assert.Zero(t, h.api.Count(http.MethodPatch, "/api/backoffice/disputes/7/status"))
	assert.Zero(t, h.api.Count(http.MethodPatch, "/api/backoffice/disputes/8/status"))
}

func TestTransactionExport(t *testing.T) {
	h := newHarness(t)
	h.signIn(t)
	h.api.Handle(http.MethodPost, "/api/backoffice/transactions/export", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("id;montant\n1;10\n"))
	})

	resp := h.do(t, http.MethodPost, "/transactions/export", map[string]string{"format": "CSV", "statut": "VALIDEE"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "transactions_export.csv")

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "id;montant\n1;10\n", string(data))

	call, ok := h.api.Last(http.MethodPost, "/api/backoffice/transactions/export")
	require.True(t, ok)
	var sent map[string]interface{}
	call.Decode(t, &sent)
	assert.Equal(t, "VALIDEE", sent["statut"])
	assert.Equal(t, "CSV", sent["format"])
	assert.NotContains(t, sent, "page")
	assert.NotContains(t, sent, "size")
}

func TestAuditDisabled(t *testing.T) {
	h := newHarness(t)
	h.signIn(t)

	resp := h.do(t, http.MethodGet, "/audit", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Le journal d'audit est désactivé", decode(t, resp)["error"])
}

func TestHealthz(t *testing.T) {
	h := newHarness(t)

	resp := h.do(t, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "connected", body["services"].(map[string]interface{})["redis"])
}

func TestDashboardMenuForAgent(t *testing.T) {
	h := newHarness(t, withRestoreMode(config.RestoreModeFetch))
	h.api.JSON(http.MethodGet, "/api/front/auth/me", http.StatusOK,
		models.User{Email: "agent@chargili.tn", Nom: "Sami", Role: models.RoleAgent})
	h.signIn(t)

	resp := h.do(t, http.MethodGet, "/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "Sami", body["operator"])

	var paths []string
	var walk func(items []interface{})
	walk = func(items []interface{}) {
		for _, raw := range items {
			item := raw.(map[string]interface{})
			if p, ok := item["path"].(string); ok {
				paths = append(paths, p)
			}
			if children, ok := item["children"].([]interface{}); ok {
				walk(children)
			}
		}
	}
	walk(body["menu"].([]interface{}))
	assert.Contains(t, paths, "/transactions")
	assert.NotContains(t, paths, "/agents")
	assert.NotContains(t, paths, "/parameters/commissions")
}

func TestClientSearchSendsFilledCriteria(t *testing.T) {
	h := newHarness(t)
	h.signIn(t)
	h.api.JSON(http.MethodGet, "/api/backoffice/clients/search", http.StatusOK, models.Page[models.ClientListItem]{
		Content:       []models.ClientListItem{{ID: 3, Nom: "Ben Salah", Email: "ben@chargili.tn", Actif: true}},
		TotalElements: 1,
		TotalPages:    1,
		Size:          5,
	})

	resp := h.do(t, http.MethodGet, "/clients/search?nom=Ben&size=5", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	screen := decode(t, resp)
	list := rows(t, screen)
	require.Len(t, list, 1)
	assert.Equal(t, "Ben Salah", list[0]["record"].(map[string]interface{})["nom"])
	assert.Equal(t, string(models.ColorSuccess), list[0]["statusColor"])

	call, ok := h.api.Last(http.MethodGet, "/api/backoffice/clients/search")
	require.True(t, ok)
	q, err := url.ParseQuery(call.Query)
	require.NoError(t, err)
	assert.Equal(t, "Ben", q.Get("nom"))
	assert.Equal(t, "5", q.Get("size"))
	assert.False(t, q.Has("email"))

	t.Run("rejects an inverted period", func(t *testing.T) {
		resp := h.do(t, http.MethodGet, "/clients/search?dateDebut=2024-06-30&dateFin=2024-06-01", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, 1, h.api.Count(http.MethodGet, "/api/backoffice/clients/search"))
	})
}

func TestStatusGuardsReadFreshUnfilteredRecords(t *testing.T) {
	h := newHarness(t)
	h.signIn(t)
	disputes := []models.Dispute{
		{ID: 7, Motif: "Double débit", Statut: models.DisputeRejected},
		{ID: 8, Motif: "Carte invalide", Statut: models.DisputeOpen},
	}
	h.api.Handle(http.MethodGet, "/api/backoffice/disputes", func(w http.ResponseWriter, r *http.Request) {
		statut := r.URL.Query().Get("statut")
		out := []models.Dispute{}
		for _, d := range disputes {
			if statut == "" || string(d.Statut) == statut {
				out = append(out, d)
			}
		}
		apitest.Reply(w, http.StatusOK, out)
	})
	var mu sync.Mutex
	tickets := []models.SupportTicket{
		{ID: 4, Sujet: "Recharge", Statut: models.TicketOpen},
		{ID: 5, Sujet: "Remboursement", Statut: models.TicketClosed},
	}
	h.api.Handle(http.MethodGet, "/api/backoffice/support-tickets", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		statut := r.URL.Query().Get("statut")
		out := []models.SupportTicket{}
		for _, tk := range tickets {
			if statut == "" || string(tk.Statut) == statut {
				out = append(out, tk)
			}
		}
		apitest.Reply(w, http.StatusOK, out)
	})

	resp := h.do(t, http.MethodGet, "/parameters/disputes?statut="+string(models.DisputeOpen), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, rows(t, decode(t, resp)), 1)

	resp = h.do(t, http.MethodPost, "/parameters/disputes/7/status", map[string]string{"statut": "RESOLU"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Zero(t, h.api.Count(http.MethodPatch, "/api/backoffice/disputes/7/status"))

	resp = h.do(t, http.MethodPost, "/parameters/disputes/99/status", map[string]string{"statut": "RESOLU"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Zero(t, h.api.Count(http.MethodPatch, "/api/backoffice/disputes/99/status"))

	resp = h.do(t, http.MethodGet, "/parameters/support-tickets?statut="+string(models.TicketOpen), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, rows(t, decode(t, resp)), 1)

	resp = h.do(t, http.MethodPost, "/parameters/support-tickets/5/respond", map[string]string{"reponse": "ok"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Zero(t, h.api.Count(http.MethodPatch, "/api/backoffice/support-tickets/5/respond"))

	t.Run("record closed since the list was loaded", func(t *testing.T) {
		mu.Lock()
		tickets[0].Statut = models.TicketClosed
		mu.Unlock()
		resp := h.do(t, http.MethodPost, "/parameters/support-tickets/4/respond", map[string]string{"reponse": "ok"})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Zero(t, h.api.Count(http.MethodPatch, "/api/backoffice/support-tickets/4/respond"))
	})
}

func TestAgentCreateValidatesBeforeCallingAPI(t *testing.T) {
	h := newHarness(t)
	h.signIn(t)
	h.api.JSON(http.MethodPost, "/api/backoffice/agents", http.StatusCreated, models.Agent{ID: 9, Nom: "Sami", Email: "sami@chargili.tn", Role: models.RoleAgent})
	h.api.JSON(http.MethodGet, "/api/backoffice/agents", http.StatusOK, []models.Agent{})

	resp := h.do(t, http.MethodPost, "/agents", map[string]string{"nom": "Sami", "email": "sami@chargili.tn"})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	dialog := decode(t, resp)["dialog"].(map[string]interface{})
	assert.Equal(t, "Le mot de passe est requis", dialog["fields"].(map[string]interface{})["motDePasse"])
	assert.Zero(t, h.api.Count(http.MethodPost, "/api/backoffice/agents"))

	resp = h.do(t, http.MethodPost, "/agents", map[string]string{"nom": "Sami", "email": "sami@chargili.tn", "motDePasse": "Secret123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	call, ok := h.api.Last(http.MethodPost, "/api/backoffice/agents")
	require.True(t, ok)
	var sent models.CreateAgentRequest
	call.Decode(t, &sent)
	assert.Equal(t, models.RoleAgent, sent.Role)
	assert.Equal(t, "Secret123", sent.MotDePasse)
}

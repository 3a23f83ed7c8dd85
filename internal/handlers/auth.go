package handlers

import (
	"strings"

	apperrors "chargili/internal/errors"
	"chargili/internal/middleware"
	"chargili/internal/models"
	"chargili/internal/services/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const homePath = "/dashboard"

type AuthHandler struct {
	*Base
	auth auth.Service
}

func NewAuthHandler(base *Base, authService auth.Service) *AuthHandler {
	return &AuthHandler{Base: base, auth: authService}
}

type loginForm struct {
	models.LoginRequest
	From string `json:"from" form:"from"`
}

// safeRedirect keeps the post-login redirect inside the console.
func safeRedirect(from string) string {
	if !strings.HasPrefix(from, "/") || strings.HasPrefix(from, "//") || strings.HasPrefix(from, "/login") {
		return homePath
	}
	return from
}

// LoginPage returns the login screen. A signed-in operator goes straight home.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	if middleware.State(c).IsAuthenticated() {
		return c.Redirect(homePath, fiber.StatusFound)
	}
	return c.JSON(fiber.Map{
		"title":   "Connexion",
		"from":    c.Query("from"),
		"message": c.Query("message"),
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var form loginForm
	if err := h.bind(c, &form); err != nil {
		return h.loginFailed(c, form, err)
	}
	if err := h.validator.Struct(form.LoginRequest); err != nil {
		return h.loginFailed(c, form, err)
	}

	state := middleware.State(c)
	if state.IsAuthenticated() {
		if err := h.sessions.Logout(c.UserContext(), state); err != nil {
			h.log.Warnw("clear previous session", "error", err)
		}
	}
	state.LoginStart()

	resp, err := h.auth.Login(c.UserContext(), form.LoginRequest)
	if err != nil {
		state.LoginFailure(apperrors.MessageOf(err))
		h.log.Infow("login refused", "email", form.Email, "error", err)
		return h.loginFailed(c, form, err)
	}

	state.ID = uuid.NewString()
	if err := h.sessions.Login(c.UserContext(), state, resp.Token, resp.User()); err != nil {
		state.LoginFailure(apperrors.MsgConnection)
		h.log.Errorw("persist session", "error", err)
		return h.loginFailed(c, form, apperrors.NewAPIError(fiber.StatusInternalServerError, "Impossible d'ouvrir la session"))
	}

	middleware.SetSessionCookie(c, state.ID, h.secure)
	return c.Redirect(safeRedirect(form.From), fiber.StatusSeeOther)
}

// loginFailed answers 401 with the message, or 422 for an incomplete form.
func (h *AuthHandler) loginFailed(c *fiber.Ctx, form loginForm, err error) error {
	status := fiber.StatusUnauthorized
	out := fiber.Map{"error": apperrors.MessageOf(err), "email": form.Email, "from": form.From}
	if verrs, ok := err.(apperrors.ValidationErrors); ok {
		status = fiber.StatusUnprocessableEntity
		out["fields"] = verrs
	}
	return c.Status(status).JSON(out)
}

// Logout always ends the local session, whatever the API answers.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	state := middleware.State(c)
	if state.IsAuthenticated() {
		if err := h.auth.Logout(c.UserContext()); err != nil {
			h.log.Debugw("api logout failed", "error", err)
		}
	}
	if err := h.sessions.Logout(c.UserContext(), state); err != nil {
		h.log.Warnw("clear session", "error", err)
	}
	middleware.ClearSessionCookie(c)
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (h *AuthHandler) Unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"title":   "Accès non autorisé",
		"message": "Vous n'avez pas les droits nécessaires pour accéder à cette page",
		"from":    c.Query("from"),
	})
}

// ChangePassword changes the operator's password and signs them out.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req models.ChangePasswordRequest
	if err := h.bindValid(c, &req); err != nil {
		return h.dialogFail(c, fiber.Map{}, err)
	}
	if err := h.auth.ChangePassword(c.UserContext(), req); err != nil {
		return h.dialogFail(c, fiber.Map{}, err)
	}
	h.record(c, "update", "password", nil, "")

	if err := h.sessions.Logout(c.UserContext(), middleware.State(c)); err != nil {
		h.log.Warnw("clear session", "error", err)
	}
	middleware.ClearSessionCookie(c)
	return c.JSON(fiber.Map{
		"message":  "Mot de passe modifié avec succès. Veuillez vous reconnecter",
		"redirect": "/login",
	})
}

func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	token, err := h.auth.RefreshToken(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.sessions.ReplaceToken(c.UserContext(), middleware.State(c), token); err != nil {
		h.log.Errorw("store refreshed token", "error", err)
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Session prolongée"})
}

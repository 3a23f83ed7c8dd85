package auth

import (
	"context"
	"net/http"

	"chargili/internal/apiclient"
	apperrors "chargili/internal/errors"
	"chargili/internal/models"
)

const basePath = "/api/front/auth"

const (
	msgBadCredentials  = "Email ou mot de passe incorrect"
	msgInvalidLogin    = "Identifiants invalides"
	msgForbidden       = "Accès non autorisé"
	msgServer          = "Erreur serveur. Veuillez réessayer plus tard"
	msgUnreachable     = "Impossible de se connecter au serveur"
	msgOldPassword     = "Ancien mot de passe incorrect"
	msgSessionExpired  = "Session expirée. Veuillez vous reconnecter"
	msgRefreshFailed   = "Erreur lors du rafraîchissement du token"
	msgRefreshInvalid  = "Token de rafraîchissement invalide"
	msgCurrentUserFail = "Impossible de récupérer l'utilisateur courant"
)

// Service talks to the front authentication endpoints of the API.
type Service interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error
	RefreshToken(ctx context.Context) (string, error)
}

type service struct {
	auth *apiclient.Resource
}

func NewService(api *apiclient.Client) Service {
	return &service{auth: api.Resource(basePath, apiclient.MsgDefault)}
}

// Login authenticates the operator and only accepts active ADMIN or AGENT accounts.
func (s *service) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	err := s.auth.Post(ctx, "/login", models.LoginRequest{Email: req.Email, MotDePasse: req.MotDePasse}, &resp)
	if err != nil {
		return nil, loginError(err)
	}

	if resp.Token == "" || resp.Email == "" || resp.Role == "" {
		return nil, apperrors.ErrInvalidLoginResponse
	}
	if resp.Statut != "" && resp.Statut != models.AccountActive {
		return nil, apperrors.ErrAccountInactive
	}
	if !resp.User().CanUseConsole() {
		return nil, apperrors.ErrRoleNotAllowed
	}
	return &resp, nil
}

// Logout is best effort; callers drop the local token whatever the outcome.
func (s *service) Logout(ctx context.Context) error {
	return s.auth.Post(ctx, "/logout", struct{}{}, nil)
}

func (s *service) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.auth.With(msgCurrentUserFail).Get(ctx, "/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *service) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	body := struct {
		AncienMotDePasse  string `json:"ancienMotDePasse"`
		NouveauMotDePasse string `json:"nouveauMotDePasse"`
	}{req.AncienMotDePasse, req.NouveauMotDePasse}

	err := s.auth.With(msgOldPassword).Post(ctx, "/change-password", body, nil)
	if err == nil {
		return nil
	}
	apiErr, ok := apperrors.AsAPIError(err)
	if !ok {
		return err
	}
	switch apiErr.Status {
	case 0:
		return remap(apiErr, msgUnreachable)
	case http.StatusUnauthorized:
		return remap(apiErr, msgSessionExpired)
	case http.StatusForbidden:
		return remap(apiErr, msgForbidden)
	case http.StatusInternalServerError:
		return remap(apiErr, msgServer)
	}
	return apiErr
}

func (s *service) RefreshToken(ctx context.Context) (string, error) {
	var resp models.TokenResponse
	if err := s.auth.With(msgRefreshFailed).Post(ctx, "/refresh-token", struct{}{}, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", apperrors.NewAPIError(http.StatusBadGateway, msgRefreshInvalid)
	}
	return resp.Token, nil
}

// loginError maps API statuses to the login screen messages.
func loginError(err error) error {
	apiErr, ok := apperrors.AsAPIError(err)
	if !ok {
		return err
	}
	switch apiErr.Status {
	case 0:
		return remap(apiErr, msgUnreachable)
	case http.StatusBadRequest:
		return remap(apiErr, msgBadCredentials)
	case http.StatusUnauthorized:
		return remap(apiErr, msgInvalidLogin)
	case http.StatusForbidden:
		return remap(apiErr, msgForbidden)
	case http.StatusInternalServerError:
		return remap(apiErr, msgServer)
	}
	return apiErr
}

func remap(apiErr *apperrors.APIError, message string) *apperrors.APIError {
	return &apperrors.APIError{Status: apiErr.Status, Message: message, Err: apiErr}
}

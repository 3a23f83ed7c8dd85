package exchangerate

import (
	"context"
	"strconv"

	"chargili/internal/apiclient"
	"chargili/internal/models"
)

const MsgConversionFailed = "Erreur lors du calcul de la conversion"

type Service interface {
	List(ctx context.Context) ([]models.ExchangeRate, error)
	Get(ctx context.Context, id int64) (*models.ExchangeRate, error)
	Create(ctx context.Context, form models.ExchangeRateForm) (*models.ExchangeRate, error)
	Update(ctx context.Context, id int64, form models.ExchangeRateForm) (*models.ExchangeRate, error)
	Toggle(ctx context.Context, id int64) (*models.ExchangeRate, error)
	History(ctx context.Context, id int64) ([]models.ExchangeRateHistory, error)
	Convert(ctx context.Context, req models.ConversionRequest) (*models.ConversionResult, error)
}

type service struct {
	rates *apiclient.Resource
}

func NewService(api *apiclient.Client) Service {
	return &service{rates: api.Resource(apiclient.Backoffice+"/taux-de-change", "Erreur lors de la gestion des taux de change")}
}

func (s *service) List(ctx context.Context) ([]models.ExchangeRate, error) {
	rates := []models.ExchangeRate{}
	err := s.rates.With("Erreur lors de la récupération des taux de change").Get(ctx, "", nil, &rates)
	return rates, err
}

func (s *service) Get(ctx context.Context, id int64) (*models.ExchangeRate, error) {
	var out models.ExchangeRate
	if err := s.rates.With("Taux de change introuvable").Get(ctx, path(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) Create(ctx context.Context, form models.ExchangeRateForm) (*models.ExchangeRate, error) {
	var out models.ExchangeRate
	if err := s.rates.With("Erreur lors de la création du taux de change").Post(ctx, "", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) Update(ctx context.Context, id int64, form models.ExchangeRateForm) (*models.ExchangeRate, error) {
	var out models.ExchangeRate
	if err := s.rates.With("Erreur lors de la mise à jour du taux de change").Put(ctx, path(id), form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Toggle flips the active flag on the server and returns the new record.
func (s *service) Toggle(ctx context.Context, id int64) (*models.ExchangeRate, error) {
	var out models.ExchangeRate
	if err := s.rates.With("Erreur lors du changement de statut du taux").Patch(ctx, path(id)+"/toggle", struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) History(ctx context.Context, id int64) ([]models.ExchangeRateHistory, error) {
	history := []models.ExchangeRateHistory{}
	err := s.rates.With("Erreur lors de la récupération de l'historique").Get(ctx, path(id)+"/historique", nil, &history)
	return history, err
}

// Convert asks the API for the converted amount. No rate is applied locally.
func (s *service) Convert(ctx context.Context, req models.ConversionRequest) (*models.ConversionResult, error) {
	q := apiclient.Query{}.
		Float("montant", req.Montant).
		Str("deviseSource", req.DeviseSource).
		Str("deviseCible", req.DeviseCible)

	var out models.ConversionResult
	if err := s.rates.With(MsgConversionFailed).Get(ctx, "/calcul", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func path(id int64) string {
	return "/" + strconv.FormatInt(id, 10)
}

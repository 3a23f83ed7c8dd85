package currency

import (
	"context"
	"strconv"

	"chargili/internal/apiclient"
	"chargili/internal/models"
)

// Service manages both the secondary currencies and the main currencies.
type Service interface {
	List(ctx context.Context) ([]models.Currency, error)
	Get(ctx context.Context, id int64) (*models.Currency, error)
	Create(ctx context.Context, form models.CurrencyForm) (*models.Currency, error)
	Update(ctx context.Context, id int64, form models.CurrencyForm) (*models.Currency, error)
	Toggle(ctx context.Context, id int64) (*models.Currency, error)

	ListMain(ctx context.Context) ([]models.MainCurrency, error)
	GetMain(ctx context.Context, id int64) (*models.MainCurrency, error)
	CreateMain(ctx context.Context, form models.MainCurrencyForm) (*models.MainCurrency, error)
	UpdateMain(ctx context.Context, id int64, form models.MainCurrencyForm) (*models.MainCurrency, error)
	ToggleMain(ctx context.Context, id int64) (*models.MainCurrency, error)
}

type service struct {
	currencies *apiclient.Resource
	main       *apiclient.Resource
}

func NewService(api *apiclient.Client) Service {
	return &service{
		currencies: api.Resource(apiclient.Backoffice+"/currencies", "Erreur lors de la gestion des devises"),
		main:       api.Resource(apiclient.Backoffice+"/main-currencies", "Erreur lors de la gestion des devises principales"),
	}
}

func (s *service) List(ctx context.Context) ([]models.Currency, error) {
	out := []models.Currency{}
	err := s.currencies.Get(ctx, "", nil, &out)
	return out, err
}

func (s *service) Get(ctx context.Context, id int64) (*models.Currency, error) {
	var out models.Currency
	if err := s.currencies.Get(ctx, path(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) Create(ctx context.Context, form models.CurrencyForm) (*models.Currency, error) {
	var out models.Currency
	if err := s.currencies.Post(ctx, "", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) Update(ctx context.Context, id int64, form models.CurrencyForm) (*models.Currency, error) {
	var out models.Currency
	if err := s.currencies.Put(ctx, path(id), form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) Toggle(ctx context.Context, id int64) (*models.Currency, error) {
	var out models.Currency
	if err := s.currencies.Patch(ctx, path(id)+"/toggle", struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) ListMain(ctx context.Context) ([]models.MainCurrency, error) {
	out := []models.MainCurrency{}
	err := s.main.Get(ctx, "", nil, &out)
	return out, err
}

func (s *service) GetMain(ctx context.Context, id int64) (*models.MainCurrency, error) {
	var out models.MainCurrency
	if err := s.main.Get(ctx, path(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) CreateMain(ctx context.Context, form models.MainCurrencyForm) (*models.MainCurrency, error) {
	var out models.MainCurrency
	if err := s.main.Post(ctx, "", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) UpdateMain(ctx context.Context, id int64, form models.MainCurrencyForm) (*models.MainCurrency, error) {
	var out models.MainCurrency
	if err := s.main.Put(ctx, path(id), form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) ToggleMain(ctx context.Context, id int64) (*models.MainCurrency, error) {
	var out models.MainCurrency
	if err := s.main.Patch(ctx, path(id)+"/toggle", struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func path(id int64) string {
	return "/" + strconv.FormatInt(id, 10)
}

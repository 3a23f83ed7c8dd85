package stock

import (
	"context"
	"strconv"

	"chargili/internal/apiclient"
	"chargili/internal/models"
)

const defaultPageSize = 10

// Service covers the airtime voucher stock and the recharge balances.
type Service interface {
	ListCards(ctx context.Context, filter models.StockCardFilter) (*models.Page[models.StockCard], error)
	GetCard(ctx context.Context, id int64) (*models.StockCard, error)
	CreateCard(ctx context.Context, form models.StockCardForm) (*models.StockCard, error)
	UpdateCard(ctx context.Context, id int64, form models.StockCardForm) (*models.StockCard, error)
	DeleteCard(ctx context.Context, id int64) error

	ListRecharge(ctx context.Context, filter models.RechargeStockFilter) (*models.Page[models.RechargeStock], error)
	GetRecharge(ctx context.Context, id int64) (*models.RechargeStock, error)
	CreateRecharge(ctx context.Context, form models.RechargeStockForm) (*models.RechargeStock, error)
	AddRecharge(ctx context.Context, form models.RechargeStockForm) (*models.RechargeStock, error)
	DeleteRecharge(ctx context.Context, id int64) error
}

type service struct {
	cards    *apiclient.Resource
	recharge *apiclient.Resource
}

func NewService(api *apiclient.Client) Service {
	return &service{
		cards:    api.Resource(apiclient.Backoffice+"/stock-cartes", "Erreur lors de la gestion des cartes"),
		recharge: api.Resource(apiclient.Backoffice+"/recharge-stocks", "Erreur lors de la gestion du stock de recharge"),
	}
}

func (s *service) ListCards(ctx context.Context, filter models.StockCardFilter) (*models.Page[models.StockCard], error) {
	if filter.Size <= 0 {
		filter.Size = defaultPageSize
	}
	q := apiclient.QueryFrom(filter).Page(models.PageRequest{Page: filter.Page, Size: filter.Size})

	var out models.Page[models.StockCard]
	if err := s.cards.With("Erreur lors de la récupération des cartes").Get(ctx, "", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) GetCard(ctx context.Context, id int64) (*models.StockCard, error) {
	var out models.StockCard
	if err := s.cards.With("Carte introuvable").Get(ctx, path(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) CreateCard(ctx context.Context, form models.StockCardForm) (*models.StockCard, error) {
	var out models.StockCard
	if err := s.cards.With("Erreur lors de la création de la carte").Post(ctx, "", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) UpdateCard(ctx context.Context, id int64, form models.StockCardForm) (*models.StockCard, error) {
	var out models.StockCard
	if err := s.cards.With("Erreur lors de la mise à jour de la carte").Put(ctx, path(id), form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) DeleteCard(ctx context.Context, id int64) error {
	return s.cards.With("Erreur lors de la suppression de la carte").Delete(ctx, path(id))
}

func (s *service) ListRecharge(ctx context.Context, filter models.RechargeStockFilter) (*models.Page[models.RechargeStock], error) {
	if filter.Size <= 0 {
		filter.Size = defaultPageSize
	}
	q := apiclient.QueryFrom(filter).Page(models.PageRequest{Page: filter.Page, Size: filter.Size})

	var out models.Page[models.RechargeStock]
	if err := s.recharge.With("Erreur lors de la récupération du stock de recharge").Get(ctx, "", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) GetRecharge(ctx context.Context, id int64) (*models.RechargeStock, error) {
	var out models.RechargeStock
	if err := s.recharge.With("Stock introuvable").Get(ctx, path(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) CreateRecharge(ctx context.Context, form models.RechargeStockForm) (*models.RechargeStock, error) {
	var out models.RechargeStock
	if err := s.recharge.With("Erreur lors de la création du stock").Post(ctx, "", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddRecharge tops up the balance of a country and operator pair.
func (s *service) AddRecharge(ctx context.Context, form models.RechargeStockForm) (*models.RechargeStock, error) {
	var out models.RechargeStock
	if err := s.recharge.With("Erreur lors de l'ajout au stock").Post(ctx, "/add", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) DeleteRecharge(ctx context.Context, id int64) error {
	return s.recharge.With("Erreur lors de la suppression du stock").Delete(ctx, path(id))
}

func path(id int64) string {
	return "/" + strconv.FormatInt(id, 10)
}

package commission

import (
	"context"
	"strconv"

	"chargili/internal/apiclient"
	"chargili/internal/models"
)

type Service interface {
	List(ctx context.Context, filter models.CommissionFilter) ([]models.Commission, error)
	Get(ctx context.Context, id int64) (*models.Commission, error)
	Create(ctx context.Context, form models.CommissionForm) (*models.Commission, error)
	Update(ctx context.Context, id int64, form models.CommissionForm) (*models.Commission, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	commissions *apiclient.Resource
}

func NewService(api *apiclient.Client) Service {
	return &service{commissions: api.Resource(apiclient.Backoffice+"/commissions", "Erreur lors de la gestion des commissions")}
}

func (s *service) List(ctx context.Context, filter models.CommissionFilter) ([]models.Commission, error) {
	out := []models.Commission{}
	err := s.commissions.With("Erreur lors de la récupération des commissions").
		Get(ctx, "", apiclient.QueryFrom(filter), &out)
	return out, err
}

func (s *service) Get(ctx context.Context, id int64) (*models.Commission, error) {
	var out models.Commission
	if err := s.commissions.With("Commission introuvable").Get(ctx, path(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) Create(ctx context.Context, form models.CommissionForm) (*models.Commission, error) {
	var out models.Commission
	if err := s.commissions.With("Erreur lors de la création de la commission").Post(ctx, "", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) Update(ctx context.Context, id int64, form models.CommissionForm) (*models.Commission, error) {
	var out models.Commission
	if err := s.commissions.With("Erreur lors de la mise à jour de la commission").Put(ctx, path(id), form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.commissions.With("Erreur lors de la suppression de la commission").Delete(ctx, path(id))
}

func path(id int64) string {
	return "/" + strconv.FormatInt(id, 10)
}

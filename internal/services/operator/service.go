package operator

import (
	"context"
	"strconv"

	"chargili/internal/apiclient"
	"chargili/internal/models"
)

type Service interface {
	List(ctx context.Context, pays string) ([]models.Operator, error)
	ListAll(ctx context.Context) ([]models.Operator, error)
	Get(ctx context.Context, id int64) (*models.Operator, error)
	Create(ctx context.Context, form models.OperatorForm) (*models.Operator, error)
	Update(ctx context.Context, id int64, form models.OperatorForm) (*models.Operator, error)
	SetActivation(ctx context.Context, id int64, actif bool) (*models.Operator, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	operators *apiclient.Resource
}

func NewService(api *apiclient.Client) Service {
	return &service{operators: api.Resource(apiclient.Backoffice+"/operators", "Erreur lors de la gestion des opérateurs")}
}

// List returns the operators of one country, or all of them when pays is empty.
func (s *service) List(ctx context.Context, pays string) ([]models.Operator, error) {
	out := []models.Operator{}
	err := s.operators.With("Erreur lors de la récupération des opérateurs").
		Get(ctx, "", apiclient.Query{}.Str("pays", pays), &out)
	return out, err
}

func (s *service) ListAll(ctx context.Context) ([]models.Operator, error) {
	out := []models.Operator{}
	err := s.operators.With("Erreur lors de la récupération des opérateurs").Get(ctx, "/all", nil, &out)
	return out, err
}

func (s *service) Get(ctx context.Context, id int64) (*models.Operator, error) {
	var out models.Operator
	if err := s.operators.With("Opérateur introuvable").Get(ctx, path(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) Create(ctx context.Context, form models.OperatorForm) (*models.Operator, error) {
	var out models.Operator
	if err := s.operators.With("Erreur lors de la création de l'opérateur").Post(ctx, "", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) Update(ctx context.Context, id int64, form models.OperatorForm) (*models.Operator, error) {
	var out models.Operator
	if err := s.operators.With("Erreur lors de la mise à jour de l'opérateur").Put(ctx, path(id), form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) SetActivation(ctx context.Context, id int64, actif bool) (*models.Operator, error) {
	var out models.Operator
	err := s.operators.With("Erreur lors du changement d'activation de l'opérateur").
		Put(ctx, path(id)+"/activation", models.ActivationRequest{Actif: actif}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.operators.With("Erreur lors de la suppression de l'opérateur").Delete(ctx, path(id))
}

func path(id int64) string {
	return "/" + strconv.FormatInt(id, 10)
}

package client

import (
	"context"
	"strconv"

	"chargili/internal/apiclient"
	"chargili/internal/models"
)

const defaultPageSize = 10

type Service interface {
	List(ctx context.Context, page models.PageRequest) (*models.Page[models.ClientListItem], error)
	Get(ctx context.Context, id int64) (*models.ClientDetails, error)
	Search(ctx context.Context, params models.ClientSearch) (*models.Page[models.ClientListItem], error)
}

type service struct {
	clients *apiclient.Resource
}

func NewService(api *apiclient.Client) Service {
	return &service{clients: api.Resource(apiclient.Backoffice+"/clients", "Erreur lors de la récupération des clients")}
}

func (s *service) List(ctx context.Context, page models.PageRequest) (*models.Page[models.ClientListItem], error) {
	if page.Size <= 0 {
		page.Size = defaultPageSize
	}
	var out models.Page[models.ClientListItem]
	if err := s.clients.Get(ctx, "", apiclient.Query{}.Page(page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) Get(ctx context.Context, id int64) (*models.ClientDetails, error) {
	var out models.ClientDetails
	err := s.clients.With("Erreur lors de la récupération des détails du client").
		Get(ctx, "/"+strconv.FormatInt(id, 10), nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Search sends only the criteria that were filled in; page defaults to 0 and size to 10.
func (s *service) Search(ctx context.Context, params models.ClientSearch) (*models.Page[models.ClientListItem], error) {
	size := params.Size
	if size <= 0 {
		size = defaultPageSize
	}
	q := apiclient.Query{}.
		Str("nom", params.Nom).
		Str("email", params.Email).
		Str("statut", params.Statut).
		Str("dateDebut", params.DateDebut).
		Str("dateFin", params.DateFin).
		Page(models.PageRequest{Page: params.Page, Size: size, Sort: params.Sort})

	var out models.Page[models.ClientListItem]
	if err := s.clients.With("Erreur lors de la recherche des clients").Get(ctx, "/search", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

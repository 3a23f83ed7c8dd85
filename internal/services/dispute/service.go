package dispute

import (
	"context"
	"strconv"

	"chargili/internal/apiclient"
	"chargili/internal/models"
)

type Service interface {
	List(ctx context.Context, filter models.DisputeFilter) ([]models.Dispute, error)
	ListByTransaction(ctx context.Context, transactionID int64) ([]models.Dispute, error)
	Create(ctx context.Context, req models.CreateDisputeRequest) (*models.Dispute, error)
	UpdateStatus(ctx context.Context, id int64, update models.DisputeStatusUpdate) (*models.Dispute, error)
}

type service struct {
	disputes *apiclient.Resource
}

func NewService(api *apiclient.Client) Service {
	return &service{disputes: api.Resource(apiclient.Backoffice+"/disputes", "Erreur lors de la gestion des litiges")}
}

func (s *service) List(ctx context.Context, filter models.DisputeFilter) ([]models.Dispute, error) {
	out := []models.Dispute{}
	err := s.disputes.With("Erreur lors de la récupération des litiges").
		Get(ctx, "", apiclient.QueryFrom(filter), &out)
	return out, err
}

func (s *service) ListByTransaction(ctx context.Context, transactionID int64) ([]models.Dispute, error) {
	out := []models.Dispute{}
	err := s.disputes.With("Erreur lors de la récupération des litiges de la transaction").
		Get(ctx, "/transaction/"+strconv.FormatInt(transactionID, 10), nil, &out)
	return out, err
}

func (s *service) Create(ctx context.Context, req models.CreateDisputeRequest) (*models.Dispute, error) {
	var out models.Dispute
	if err := s.disputes.With("Erreur lors de la création du litige").Post(ctx, "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) UpdateStatus(ctx context.Context, id int64, update models.DisputeStatusUpdate) (*models.Dispute, error) {
	var out models.Dispute
	err := s.disputes.With("Erreur lors de la mise à jour du statut du litige").
		Patch(ctx, "/"+strconv.FormatInt(id, 10)+"/status", update, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

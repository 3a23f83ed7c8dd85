package ticket

import (
	"context"
	"strconv"

	"chargili/internal/apiclient"
	"chargili/internal/models"
)

type Service interface {
	List(ctx context.Context, filter models.TicketFilter) ([]models.SupportTicket, error)
	ListByUser(ctx context.Context, userID int64) ([]models.SupportTicket, error)
	Create(ctx context.Context, req models.CreateTicketRequest) (*models.SupportTicket, error)
	Respond(ctx context.Context, id int64, req models.RespondTicketRequest) (*models.SupportTicket, error)
}

type service struct {
	tickets *apiclient.Resource
}

func NewService(api *apiclient.Client) Service {
	return &service{tickets: api.Resource(apiclient.Backoffice+"/support-tickets", "Erreur lors de la gestion des tickets")}
}

func (s *service) List(ctx context.Context, filter models.TicketFilter) ([]models.SupportTicket, error) {
	out := []models.SupportTicket{}
	err := s.tickets.With("Erreur lors de la récupération des tickets").
		Get(ctx, "", apiclient.QueryFrom(filter), &out)
	return out, err
}

func (s *service) ListByUser(ctx context.Context, userID int64) ([]models.SupportTicket, error) {
	out := []models.SupportTicket{}
	err := s.tickets.With("Erreur lors de la récupération des tickets de l'utilisateur").
		Get(ctx, "/user/"+strconv.FormatInt(userID, 10), nil, &out)
	return out, err
}

func (s *service) Create(ctx context.Context, req models.CreateTicketRequest) (*models.SupportTicket, error) {
	var out models.SupportTicket
	if err := s.tickets.With("Erreur lors de la création du ticket").Post(ctx, "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) Respond(ctx context.Context, id int64, req models.RespondTicketRequest) (*models.SupportTicket, error) {
	var out models.SupportTicket
	err := s.tickets.With("Erreur lors de la réponse au ticket").
		Patch(ctx, "/"+strconv.FormatInt(id, 10)+"/respond", req, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

package agent

import (
	"context"
	"strconv"

	"chargili/internal/apiclient"
	"chargili/internal/models"
)

type Service interface {
	List(ctx context.Context) ([]models.Agent, error)
	Create(ctx context.Context, form models.CreateAgentForm) (*models.Agent, error)
	Update(ctx context.Context, id int64, form models.AgentForm) (*models.Agent, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	agents *apiclient.Resource
}

func NewService(api *apiclient.Client) Service {
	return &service{agents: api.Resource(apiclient.Backoffice+"/agents", "Erreur lors de la gestion des agents")}
}

func (s *service) List(ctx context.Context) ([]models.Agent, error) {
	agents := []models.Agent{}
	err := s.agents.With("Erreur lors de la récupération des agents").Get(ctx, "", nil, &agents)
	return agents, err
}

// Create always registers the account with the AGENT role.
func (s *service) Create(ctx context.Context, form models.CreateAgentForm) (*models.Agent, error) {
	req := models.CreateAgentRequest{
		Nom:        form.Nom,
		Email:      form.Email,
		MotDePasse: form.MotDePasse,
		Role:       models.RoleAgent,
	}
	var created models.Agent
	if err := s.agents.With("Erreur lors de la création de l'agent").Post(ctx, "", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update leaves the password untouched when the form carries none.
func (s *service) Update(ctx context.Context, id int64, form models.AgentForm) (*models.Agent, error) {
	req := models.UpdateAgentRequest{
		Nom:        form.Nom,
		Email:      form.Email,
		MotDePasse: form.MotDePasse,
		Role:       models.RoleAgent,
		Actif:      form.Actif,
	}
	var updated models.Agent
	if err := s.agents.With("Erreur lors de la mise à jour de l'agent").Put(ctx, path(id), req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.agents.With("Erreur lors de la suppression de l'agent").Delete(ctx, path(id))
}

func path(id int64) string {
	return "/" + strconv.FormatInt(id, 10)
}

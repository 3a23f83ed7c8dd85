package handlers

import (
	"chargili/internal/models"
	"chargili/internal/services/agent"

	"github.com/gofiber/fiber/v2"
)

type AgentHandler struct {
	*Base
	agents agent.Service
}

func NewAgentHandler(base *Base, agents agent.Service) *AgentHandler {
	return &AgentHandler{Base: base, agents: agents}
}

func (h *AgentHandler) List(c *fiber.Ctx) error {
	return h.screen(c, fiber.StatusOK, nil)
}

func (h *AgentHandler) screen(c *fiber.Ctx, status int, toast *Toast) error {
	st, err := fetchList(h.Base, c, "agents", h.agents.List)
	if err != nil {
		return h.fail(c, err)
	}
	return h.render(c, status, Screen{
		Title: "Gestion des agents",
		State: st.Status,
		Error: st.Error,
		Rows: rowsOf(st.Data, func(a models.Agent) Row {
			color := models.ColorDefault
			if a.Actif {
				color = models.ColorSuccess
			}
			return Row{Record: a, CanEdit: true, CanDelete: true, StatusColor: color}
		}),
		Toast: toast,
	})
}

func (h *AgentHandler) Create(c *fiber.Ctx) error {
	var form models.CreateAgentForm
	if err := h.bindValid(c, &form); err != nil {
		return h.dialogFail(c, form, err)
	}

	created, err := h.agents.Create(c.UserContext(), form)
	if err != nil {
		return h.dialogFail(c, form, err)
	}
	h.record(c, "create", "agent", created.ID, created.Email)
	return h.screen(c, fiber.StatusOK, success("Agent créé avec succès"))
}

func (h *AgentHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	var form models.AgentForm
	if err := h.bindValid(c, &form); err != nil {
		return h.dialogFail(c, form, err)
	}

	if _, err := h.agents.Update(c.UserContext(), id, form); err != nil {
		return h.dialogFail(c, form, err)
	}
	h.record(c, "update", "agent", id, form.Email)
	return h.screen(c, fiber.StatusOK, success("Agent mis à jour avec succès"))
}

func (h *AgentHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	if !confirmed(c) {
		return askConfirmation(c, "Êtes-vous sûr de vouloir supprimer cet agent ?")
	}

	if err := h.agents.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	h.record(c, "delete", "agent", id, "")
	return h.screen(c, fiber.StatusOK, success("Agent supprimé avec succès"))
}

package handlers

import (
	"context"

	apperrors "chargili/internal/errors"
	"chargili/internal/models"
	"chargili/internal/services/ticket"
	"chargili/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const ticketsScreen = "support-tickets"

type TicketHandler struct {
	*Base
	tickets ticket.Service
}

func NewTicketHandler(base *Base, tickets ticket.Service) *TicketHandler {
	return &TicketHandler{Base: base, tickets: tickets}
}

func ticketRow(t models.SupportTicket) Row {
	return Row{Record: t, CanRespond: t.Statut != models.TicketClosed, StatusColor: t.Statut.Color()}
}

func (h *TicketHandler) List(c *fiber.Ctx) error {
	return h.screen(c, fiber.StatusOK, nil)
}

func (h *TicketHandler) screen(c *fiber.Ctx, status int, toast *Toast) error {
	var filter models.TicketFilter
	if err := c.QueryParser(&filter); err != nil {
		return h.fail(c, err)
	}
	checker := validation.NewChecker()
	checker.DateRange("dateCreationStart", filter.DateCreationStart, "dateCreationEnd", filter.DateCreationEnd)
	checker.DateRange("dateResolutionStart", filter.DateResolutionStart, "dateResolutionEnd", filter.DateResolutionEnd)
	if err := checker.Err(); err != nil {
		return h.fail(c, err)
	}

	st, err := fetchList(h.Base, c, ticketsScreen, func(ctx context.Context) ([]models.SupportTicket, error) {
		if filter.UserID > 0 && filter == (models.TicketFilter{UserID: filter.UserID}) {
			return h.tickets.ListByUser(ctx, filter.UserID)
		}
		return h.tickets.List(ctx, filter)
	})
	if err != nil {
		return h.fail(c, err)
	}
	return h.render(c, status, Screen{
		Title:   "Tickets de support",
		State:   st.Status,
		Error:   st.Error,
		Rows:    rowsOf(st.Data, ticketRow),
		Filters: filter,
		Options: fiber.Map{"statuts": []models.TicketStatus{models.TicketOpen, models.TicketInProgress, models.TicketResolved, models.TicketClosed}},
		Toast:   toast,
	})
}

func (h *TicketHandler) Create(c *fiber.Ctx) error {
	var req models.CreateTicketRequest
	if err := h.bindValid(c, &req); err != nil {
		return h.dialogFail(c, req, err)
	}
	created, err := h.tickets.Create(c.UserContext(), req)
	if err != nil {
		return h.dialogFail(c, req, err)
	}
	h.record(c, "create", "support-ticket", created.ID, req.Sujet)
	return h.screen(c, fiber.StatusOK, success("Ticket créé avec succès"))
}

// Respond answers a ticket. A closed ticket is refused. Without an explicit
// statut an open ticket moves to EN_COURS and any other keeps its status.
func (h *TicketHandler) Respond(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	var req models.RespondTicketRequest
	if err := h.bindValid(c, &req); err != nil {
		return h.dialogFail(c, req, err)
	}

	current, err := h.current(c, id)
	if err != nil {
		return h.dialogFail(c, req, err)
	}
	if current.Statut == models.TicketClosed {
		return h.dialogFail(c, req, apperrors.ErrTicketClosed)
	}
	if req.Statut == "" {
		req.Statut = models.TicketInProgress
		if current.Statut != "" && current.Statut != models.TicketOpen {
			req.Statut = current.Statut
		}
	}

	if _, err := h.tickets.Respond(c.UserContext(), id, req); err != nil {
		return h.dialogFail(c, req, err)
	}
	h.record(c, "respond", "support-ticket", id, string(req.Statut))
	return h.screen(c, fiber.StatusOK, success("Réponse envoyée avec succès"))
}

// current loads the ticket as the API has it now, ignoring whatever list
// the operator last filtered.
func (h *TicketHandler) current(c *fiber.Ctx, id int64) (*models.SupportTicket, error) {
	tickets, err := h.tickets.List(c.UserContext(), models.TicketFilter{})
	if err != nil {
		return nil, err
	}
	for i := range tickets {
		if tickets[i].ID == id {
			return &tickets[i], nil
		}
	}
	return nil, apperrors.ErrTicketNotFound
}

package handlers

import (
	"context"

	"chargili/internal/models"
	"chargili/internal/remotelist"
	"chargili/internal/services/client"
	"chargili/internal/utils/pagination"
	"chargili/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ClientHandler serves the read-only client screens.
type ClientHandler struct {
	*Base
	clients client.Service
}

func NewClientHandler(base *Base, clients client.Service) *ClientHandler {
	return &ClientHandler{Base: base, clients: clients}
}

func clientRow(cl models.ClientListItem) Row {
	color := models.ColorDefault
	if cl.Actif {
		color = models.ColorSuccess
	}
	return Row{Record: cl, StatusColor: color}
}

func (h *ClientHandler) List(c *fiber.Ctx) error {
	page := pagination.ParseFromRequest(c)

	st, err := fetchList(h.Base, c, "clients", func(ctx context.Context) (*models.Page[models.ClientListItem], error) {
		return h.clients.List(ctx, page)
	})
	if err != nil {
		return h.fail(c, err)
	}
	return h.render(c, fiber.StatusOK, h.screenOf(st.Status, st.Error, st.Data, page))
}

func (h *ClientHandler) Search(c *fiber.Ctx) error {
	var params models.ClientSearch
	if err := c.QueryParser(&params); err != nil {
		return h.fail(c, err)
	}
	checker := validation.NewChecker()
	checker.DateRange("dateDebut", params.DateDebut, "dateFin", params.DateFin)
	if err := checker.Err(); err != nil {
		return h.fail(c, err)
	}
	page := pagination.ParseFromRequest(c)
	params.Page, params.Size = page.Page, page.Size

	st, err := fetchList(h.Base, c, "clients", func(ctx context.Context) (*models.Page[models.ClientListItem], error) {
		return h.clients.Search(ctx, params)
	})
	if err != nil {
		return h.fail(c, err)
	}
	screen := h.screenOf(st.Status, st.Error, st.Data, page)
	screen.Filters = params
	return h.render(c, fiber.StatusOK, screen)
}

func (h *ClientHandler) screenOf(status remotelist.Status, msg string, data *models.Page[models.ClientListItem], page models.PageRequest) Screen {
	screen := Screen{Title: "Clients", State: status, Error: msg, Page: pagination.NewMeta(page, 0)}
	if data != nil {
		screen.Rows = rowsOf(data.Content, clientRow)
		screen.Page = pagination.FromPage(data)
	}
	return screen
}

// Details is the client card: stats, frequent contacts, recent transactions,
// referral and open disputes.
func (h *ClientHandler) Details(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	details, err := h.clients.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"title":  "Détails du client",
		"client": details,
	})
}

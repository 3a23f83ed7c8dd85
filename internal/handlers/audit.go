package handlers

import (
	"chargili/internal/models"
	"chargili/internal/remotelist"
	"chargili/internal/utils/pagination"

	"github.com/gofiber/fiber/v2"
)

type AuditHandler struct {
	*Base
}

func NewAuditHandler(base *Base) *AuditHandler {
	return &AuditHandler{Base: base}
}

// List shows the recorded console mutations, newest first.
func (h *AuditHandler) List(c *fiber.Ctx) error {
	page := pagination.ParseFromRequest(c)
	screen := Screen{Title: "Journal d'audit", State: remotelist.Success, Page: pagination.NewMeta(page, 0)}
	if !h.audit.Enabled() {
		screen.Error = "Le journal d'audit est désactivé"
		return h.render(c, fiber.StatusOK, screen)
	}

	entries, total, err := h.audit.List(c.UserContext(), page.Page, page.Size)
	if err != nil {
		h.log.Errorw("list audit entries", "error", err)
		screen.State = remotelist.Failed
		screen.Error = "Erreur lors du chargement du journal d'audit"
		return h.render(c, fiber.StatusOK, screen)
	}
	screen.Rows = rowsOf(entries, func(e models.AuditEntry) Row { return Row{Record: e} })
	screen.Page = pagination.NewMeta(page, total)
	return h.render(c, fiber.StatusOK, screen)
}

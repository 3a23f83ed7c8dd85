package handlers

import (
	"context"

	apperrors "chargili/internal/errors"
	"chargili/internal/models"
	"chargili/internal/services/dispute"
	"chargili/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const disputesScreen = "disputes"

type DisputeHandler struct {
	*Base
	disputes dispute.Service
}

func NewDisputeHandler(base *Base, disputes dispute.Service) *DisputeHandler {
	return &DisputeHandler{Base: base, disputes: disputes}
}

func disputeRow(d models.Dispute) Row {
	return Row{Record: d, CanUpdateStatus: !d.Statut.IsTerminal(), StatusColor: d.Statut.Color()}
}

var disputeStatuses = []models.DisputeStatus{
	models.DisputeOpen, models.DisputeInProgress, models.DisputeResolved, models.DisputeRefunded, models.DisputeRejected,
}

func (h *DisputeHandler) List(c *fiber.Ctx) error {
	return h.screen(c, fiber.StatusOK, nil)
}

func (h *DisputeHandler) screen(c *fiber.Ctx, status int, toast *Toast) error {
	var filter models.DisputeFilter
	if err := c.QueryParser(&filter); err != nil {
		return h.fail(c, err)
	}
	checker := validation.NewChecker()
	checker.DateRange("dateCreationStart", filter.DateCreationStart, "dateCreationEnd", filter.DateCreationEnd)
	checker.DateRange("dateResolutionStart", filter.DateResolutionStart, "dateResolutionEnd", filter.DateResolutionEnd)
	if err := checker.Err(); err != nil {
		return h.fail(c, err)
	}

	st, err := fetchList(h.Base, c, disputesScreen, func(ctx context.Context) ([]models.Dispute, error) {
		return h.disputes.List(ctx, filter)
	})
	if err != nil {
		return h.fail(c, err)
	}
	return h.render(c, status, Screen{
		Title:   "Litiges",
		State:   st.Status,
		Error:   st.Error,
		Rows:    rowsOf(st.Data, disputeRow),
		Filters: filter,
		Options: fiber.Map{"statuts": disputeStatuses},
		Toast:   toast,
	})
}

// ByTransaction lists the disputes opened on one transaction.
func (h *DisputeHandler) ByTransaction(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	st, err := fetchList(h.Base, c, "transaction-disputes", func(ctx context.Context) ([]models.Dispute, error) {
		return h.disputes.ListByTransaction(ctx, id)
	})
	if err != nil {
		return h.fail(c, err)
	}
	return h.render(c, fiber.StatusOK, Screen{
		Title: "Litiges de la transaction",
		State: st.Status,
		Error: st.Error,
		Rows:  rowsOf(st.Data, disputeRow),
	})
}

func (h *DisputeHandler) Create(c *fiber.Ctx) error {
	var req models.CreateDisputeRequest
	if err := h.bindValid(c, &req); err != nil {
		return h.dialogFail(c, req, err)
	}
	created, err := h.disputes.Create(c.UserContext(), req)
	if err != nil {
		return h.dialogFail(c, req, err)
	}
	h.record(c, "create", "dispute", created.ID, req.Motif)
	return h.screen(c, fiber.StatusOK, success("Litige créé avec succès"))
}

// UpdateStatus moves a dispute to a new status. Rejected disputes are final
// and the new status must differ from the current one.
func (h *DisputeHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	var update models.DisputeStatusUpdate
	if err := h.bindValid(c, &update); err != nil {
		return h.dialogFail(c, update, err)
	}

	current, err := h.current(c, id)
	if err != nil {
		return h.dialogFail(c, update, err)
	}
	if current.Statut.IsTerminal() {
		return h.dialogFail(c, update, apperrors.ErrDisputeRejected)
	}
	if current.Statut == update.Statut {
		return h.dialogFail(c, update, apperrors.ErrDisputeStatusUnchanged)
	}

	if _, err := h.disputes.UpdateStatus(c.UserContext(), id, update); err != nil {
		return h.dialogFail(c, update, err)
	}
	h.record(c, "status", "dispute", id, string(update.Statut))
	return h.screen(c, fiber.StatusOK, success("Statut du litige mis à jour"))
}

// current loads the dispute as the API has it now, ignoring whatever list
// the operator last filtered.
func (h *DisputeHandler) current(c *fiber.Ctx, id int64) (*models.Dispute, error) {
	disputes, err := h.disputes.List(c.UserContext(), models.DisputeFilter{})
	if err != nil {
		return nil, err
	}
	for i := range disputes {
		if disputes[i].ID == id {
			return &disputes[i], nil
		}
	}
	return nil, apperrors.ErrDisputeNotFound
}

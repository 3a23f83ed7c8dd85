package handlers

import (
	"context"
	"strconv"

	"chargili/internal/models"
	"chargili/internal/services/commission"

	"github.com/gofiber/fiber/v2"
)

type CommissionHandler struct {
	*Base
	commissions commission.Service
}

func NewCommissionHandler(base *Base, commissions commission.Service) *CommissionHandler {
	return &CommissionHandler{Base: base, commissions: commissions}
}

func commissionRow(cm models.Commission) Row {
	return Row{Record: cm, CanEdit: true, CanDelete: true, StatusColor: activeColor(cm.Actif)}
}

func (h *CommissionHandler) List(c *fiber.Ctx) error {
	return h.screen(c, fiber.StatusOK, nil)
}

func (h *CommissionHandler) screen(c *fiber.Ctx, status int, toast *Toast) error {
	var filter models.CommissionFilter
	if err := c.QueryParser(&filter); err != nil {
		return h.fail(c, err)
	}
	st, err := fetchList(h.Base, c, "commissions", func(ctx context.Context) ([]models.Commission, error) {
		return h.commissions.List(ctx, filter)
	})
	if err != nil {
		return h.fail(c, err)
	}
	return h.render(c, status, Screen{
		Title:   "Commissions",
		State:   st.Status,
		Error:   st.Error,
		Rows:    rowsOf(st.Data, commissionRow),
		Filters: filter,
		Options: fiber.Map{"types": []models.CommissionType{models.CommissionPercentage, models.CommissionFixed}},
		Toast:   toast,
	})
}

func (h *CommissionHandler) Edit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	cm, err := h.commissions.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	form := models.CommissionForm{Pays: cm.Pays, TypeCommission: cm.TypeCommission, Valeur: &cm.Valeur, Actif: cm.Actif}
	if !cm.IsGlobal() {
		form.Operateur = *cm.Operateur
	}
	return c.JSON(fiber.Map{"record": cm, "dialog": Dialog{Open: true, Form: form}})
}

func (h *CommissionHandler) Create(c *fiber.Ctx) error {
	var form models.CommissionForm
	if err := h.bindValid(c, &form); err != nil {
		return h.dialogFail(c, form, err)
	}
	created, err := h.commissions.Create(c.UserContext(), form)
	if err != nil {
		return h.dialogFail(c, form, err)
	}
	h.record(c, "create", "commission", created.ID, describeCommission(form))
	return h.screen(c, fiber.StatusOK, success("Commission créée avec succès"))
}

func (h *CommissionHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	var form models.CommissionForm
	if err := h.bindValid(c, &form); err != nil {
		return h.dialogFail(c, form, err)
	}
	if _, err := h.commissions.Update(c.UserContext(), id, form); err != nil {
		return h.dialogFail(c, form, err)
	}
	h.record(c, "update", "commission", id, describeCommission(form))
	return h.screen(c, fiber.StatusOK, success("Commission mise à jour avec succès"))
}

func (h *CommissionHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	if !confirmed(c) {
		return askConfirmation(c, "Êtes-vous sûr de vouloir supprimer cette commission ?")
	}
	if err := h.commissions.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	h.record(c, "delete", "commission", id, "")
	return h.screen(c, fiber.StatusOK, success("Commission supprimée avec succès"))
}

func describeCommission(form models.CommissionForm) string {
	detail := form.Pays + " " + string(form.TypeCommission)
	if form.Valeur != nil {
		detail += " " + strconv.FormatFloat(*form.Valeur, 'f', -1, 64)
	}
	return detail
}

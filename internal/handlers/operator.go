package handlers

import (
	"context"
	"strconv"

	"chargili/internal/models"
	"chargili/internal/services/operator"

	"github.com/gofiber/fiber/v2"
)

type OperatorHandler struct {
	*Base
	operators operator.Service
}

func NewOperatorHandler(base *Base, operators operator.Service) *OperatorHandler {
	return &OperatorHandler{Base: base, operators: operators}
}

func operatorRow(op models.Operator) Row {
	return Row{Record: op, CanEdit: true, CanDelete: true, StatusColor: activeColor(op.Actif)}
}

// List shows every operator, or only those of ?pays= when given.
func (h *OperatorHandler) List(c *fiber.Ctx) error {
	return h.screen(c, fiber.StatusOK, nil)
}

func (h *OperatorHandler) screen(c *fiber.Ctx, status int, toast *Toast) error {
	pays := c.Query("pays")
	st, err := fetchList(h.Base, c, "operators", func(ctx context.Context) ([]models.Operator, error) {
		if pays == "" {
			return h.operators.ListAll(ctx)
		}
		return h.operators.List(ctx, pays)
	})
	if err != nil {
		return h.fail(c, err)
	}
	return h.render(c, status, Screen{
		Title:   "Opérateurs",
		State:   st.Status,
		Error:   st.Error,
		Rows:    rowsOf(st.Data, operatorRow),
		Filters: fiber.Map{"pays": pays},
		Toast:   toast,
	})
}

func (h *OperatorHandler) Edit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	op, err := h.operators.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"record": op,
		"dialog": Dialog{Open: true, Form: models.OperatorForm{
			Nom: op.Nom, Pays: op.Pays, CodeDetection: op.CodeDetection, Statut: op.Statut, LogoURL: op.LogoURL, Actif: op.Actif,
		}},
	})
}

func (h *OperatorHandler) Create(c *fiber.Ctx) error {
	var form models.OperatorForm
	if err := h.bindValid(c, &form); err != nil {
		return h.dialogFail(c, form, err)
	}
	created, err := h.operators.Create(c.UserContext(), form)
	if err != nil {
		return h.dialogFail(c, form, err)
	}
	h.record(c, "create", "operator", created.ID, form.Nom)
	return h.screen(c, fiber.StatusOK, success("Opérateur créé avec succès"))
}

func (h *OperatorHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	var form models.OperatorForm
	if err := h.bindValid(c, &form); err != nil {
		return h.dialogFail(c, form, err)
	}
	if _, err := h.operators.Update(c.UserContext(), id, form); err != nil {
		return h.dialogFail(c, form, err)
	}
	h.record(c, "update", "operator", id, form.Nom)
	return h.screen(c, fiber.StatusOK, success("Opérateur mis à jour avec succès"))
}

// Activation flips the operator's activation. An explicit actif=true|false
// sets it instead.
func (h *OperatorHandler) Activation(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	if !confirmed(c) {
		return askConfirmation(c, "Êtes-vous sûr de vouloir changer l'activation de cet opérateur ?")
	}

	var actif bool
	if raw := c.Query("actif", c.FormValue("actif")); raw != "" {
		actif, err = strconv.ParseBool(raw)
		if err != nil {
			return h.fail(c, err)
		}
	} else {
		op, err := h.operators.Get(c.UserContext(), id)
		if err != nil {
			return h.fail(c, err)
		}
		actif = !op.Actif
	}

	if _, err := h.operators.SetActivation(c.UserContext(), id, actif); err != nil {
		return h.fail(c, err)
	}
	h.record(c, "activation", "operator", id, strconv.FormatBool(actif))
	msg := "Opérateur désactivé avec succès"
	if actif {
		msg = "Opérateur activé avec succès"
	}
	return h.screen(c, fiber.StatusOK, success(msg))
}

func (h *OperatorHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	if !confirmed(c) {
		return askConfirmation(c, "Êtes-vous sûr de vouloir supprimer cet opérateur ?")
	}
	if err := h.operators.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	h.record(c, "delete", "operator", id, "")
	return h.screen(c, fiber.StatusOK, success("Opérateur supprimé avec succès"))
}

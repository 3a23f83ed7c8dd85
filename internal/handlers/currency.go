package handlers

import (
	"strconv"

	"chargili/internal/models"
	"chargili/internal/services/currency"

	"github.com/gofiber/fiber/v2"
)

// CurrencyHandler serves both the currency and the main currency screens.
type CurrencyHandler struct {
	*Base
	currencies currency.Service
}

func NewCurrencyHandler(base *Base, currencies currency.Service) *CurrencyHandler {
	return &CurrencyHandler{Base: base, currencies: currencies}
}

func activeColor(active bool) models.Color {
	if active {
		return models.ColorSuccess
	}
	return models.ColorDefault
}

func (h *CurrencyHandler) List(c *fiber.Ctx) error {
	return h.screen(c, fiber.StatusOK, nil)
}

func (h *CurrencyHandler) screen(c *fiber.Ctx, status int, toast *Toast) error {
	st, err := fetchList(h.Base, c, "currencies", h.currencies.List)
	if err != nil {
		return h.fail(c, err)
	}
	return h.render(c, status, Screen{
		Title: "Devises",
		State: st.Status,
		Error: st.Error,
		Rows: rowsOf(st.Data, func(cur models.Currency) Row {
			return Row{Record: cur, CanEdit: true, StatusColor: activeColor(cur.Active)}
		}),
		Toast: toast,
	})
}

func (h *CurrencyHandler) Edit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	cur, err := h.currencies.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"record": cur,
		"dialog": Dialog{Open: true, Form: models.CurrencyForm{
			Code: cur.Code, Name: cur.Name, Symbol: cur.Symbol, Active: cur.Active, Region: cur.Region, Priority: cur.Priority,
		}},
	})
}

func (h *CurrencyHandler) Create(c *fiber.Ctx) error {
	var form models.CurrencyForm
	if err := h.bindValid(c, &form); err != nil {
		return h.dialogFail(c, form, err)
	}
	created, err := h.currencies.Create(c.UserContext(), form)
	if err != nil {
		return h.dialogFail(c, form, err)
	}
	h.record(c, "create", "currency", created.ID, form.Code)
	return h.screen(c, fiber.StatusOK, success("Devise créée avec succès"))
}

func (h *CurrencyHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	var form models.CurrencyForm
	if err := h.bindValid(c, &form); err != nil {
		return h.dialogFail(c, form, err)
	}
	if _, err := h.currencies.Update(c.UserContext(), id, form); err != nil {
		return h.dialogFail(c, form, err)
	}
	h.record(c, "update", "currency", id, form.Code)
	return h.screen(c, fiber.StatusOK, success("Devise mise à jour avec succès"))
}

func (h *CurrencyHandler) Toggle(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	if !confirmed(c) {
		return askConfirmation(c, "Êtes-vous sûr de vouloir changer le statut de cette devise ?")
	}
	cur, err := h.currencies.Toggle(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	h.record(c, "toggle", "currency", id, strconv.FormatBool(cur.Active))
	return h.screen(c, fiber.StatusOK, success("Statut de la devise mis à jour"))
}

func (h *CurrencyHandler) ListMain(c *fiber.Ctx) error {
	return h.mainScreen(c, fiber.StatusOK, nil)
}

func (h *CurrencyHandler) mainScreen(c *fiber.Ctx, status int, toast *Toast) error {
	st, err := fetchList(h.Base, c, "main-currencies", h.currencies.ListMain)
	if err != nil {
		return h.fail(c, err)
	}
	return h.render(c, status, Screen{
		Title: "Devises principales",
		State: st.Status,
		Error: st.Error,
		Rows: rowsOf(st.Data, func(cur models.MainCurrency) Row {
			return Row{Record: cur, CanEdit: true, StatusColor: activeColor(cur.Active)}
		}),
		Toast: toast,
	})
}

func (h *CurrencyHandler) EditMain(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	cur, err := h.currencies.GetMain(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"record": cur,
		"dialog": Dialog{Open: true, Form: models.MainCurrencyForm{Code: cur.Code, Name: cur.Name, Symbol: cur.Symbol}},
	})
}

func (h *CurrencyHandler) CreateMain(c *fiber.Ctx) error {
	var form models.MainCurrencyForm
	if err := h.bindValid(c, &form); err != nil {
		return h.dialogFail(c, form, err)
	}
	created, err := h.currencies.CreateMain(c.UserContext(), form)
	if err != nil {
		return h.dialogFail(c, form, err)
	}
	h.record(c, "create", "main-currency", created.ID, form.Code)
	return h.mainScreen(c, fiber.StatusOK, success("Devise principale créée avec succès"))
}

func (h *CurrencyHandler) UpdateMain(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	var form models.MainCurrencyForm
	if err := h.bindValid(c, &form); err != nil {
		return h.dialogFail(c, form, err)
	}
	if _, err := h.currencies.UpdateMain(c.UserContext(), id, form); err != nil {
		return h.dialogFail(c, form, err)
	}
	h.record(c, "update", "main-currency", id, form.Code)
	return h.mainScreen(c, fiber.StatusOK, success("Devise principale mise à jour avec succès"))
}

func (h *CurrencyHandler) ToggleMain(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	if !confirmed(c) {
		return askConfirmation(c, "Êtes-vous sûr de vouloir changer le statut de cette devise principale ?")
	}
	cur, err := h.currencies.ToggleMain(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	h.record(c, "toggle", "main-currency", id, strconv.FormatBool(cur.Active))
	return h.mainScreen(c, fiber.StatusOK, success("Statut de la devise principale mis à jour"))
}

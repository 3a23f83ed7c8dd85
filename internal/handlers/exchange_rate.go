package handlers

import (
	"fmt"
	"strconv"

	apperrors "chargili/internal/errors"
	"chargili/internal/models"
	"chargili/internal/services/exchangerate"

	"github.com/gofiber/fiber/v2"
)

type ExchangeRateHandler struct {
	*Base
	rates exchangerate.Service
}

func NewExchangeRateHandler(base *Base, rates exchangerate.Service) *ExchangeRateHandler {
	return &ExchangeRateHandler{Base: base, rates: rates}
}

func rateRow(r models.ExchangeRate) Row {
	color := models.ColorDefault
	if r.Actif {
		color = models.ColorSuccess
	}
	return Row{Record: r, CanEdit: true, StatusColor: color}
}

func (h *ExchangeRateHandler) List(c *fiber.Ctx) error {
	return h.screen(c, fiber.StatusOK, nil)
}

func (h *ExchangeRateHandler) screen(c *fiber.Ctx, status int, toast *Toast) error {
	st, err := fetchList(h.Base, c, "exchange-rates", h.rates.List)
	if err != nil {
		return h.fail(c, err)
	}
	return h.render(c, status, Screen{
		Title:   "Taux de change",
		State:   st.Status,
		Error:   st.Error,
		Rows:    rowsOf(st.Data, rateRow),
		Options: fiber.Map{"devises": models.SupportedCurrencies},
		Toast:   toast,
	})
}

// Edit returns the rate dialog pre-filled from the record.
func (h *ExchangeRateHandler) Edit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	rate, err := h.rates.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"record": rate,
		"dialog": Dialog{Open: true, Form: models.ExchangeRateForm{
			DeviseSource: rate.DeviseSource,
			DeviseCible:  rate.DeviseCible,
			Taux:         rate.Taux,
		}},
	})
}

func (h *ExchangeRateHandler) Create(c *fiber.Ctx) error {
	var form models.ExchangeRateForm
	if err := h.bindValid(c, &form); err != nil {
		return h.dialogFail(c, form, err)
	}
	created, err := h.rates.Create(c.UserContext(), form)
	if err != nil {
		return h.dialogFail(c, form, err)
	}
	h.record(c, "create", "exchange-rate", created.ID, form.DeviseSource+"/"+form.DeviseCible)
	return h.screen(c, fiber.StatusOK, success("Taux de change créé avec succès"))
}

func (h *ExchangeRateHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	var form models.ExchangeRateForm
	if err := h.bindValid(c, &form); err != nil {
		return h.dialogFail(c, form, err)
	}
	if _, err := h.rates.Update(c.UserContext(), id, form); err != nil {
		return h.dialogFail(c, form, err)
	}
	h.record(c, "update", "exchange-rate", id, strconv.FormatFloat(form.Taux, 'f', -1, 64))
	return h.screen(c, fiber.StatusOK, success("Taux de change mis à jour avec succès"))
}

func (h *ExchangeRateHandler) Toggle(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	if !confirmed(c) {
		return askConfirmation(c, "Êtes-vous sûr de vouloir changer le statut de ce taux ?")
	}
	rate, err := h.rates.Toggle(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	h.record(c, "toggle", "exchange-rate", id, strconv.FormatBool(rate.Actif))
	return h.screen(c, fiber.StatusOK, success("Statut du taux mis à jour"))
}

func (h *ExchangeRateHandler) History(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	rate, err := h.rates.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	history, err := h.rates.History(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"title":      fmt.Sprintf("Historique %s → %s", rate.DeviseSource, rate.DeviseCible),
		"rate":       rate,
		"historique": history,
	})
}

// Calculation is the calculator screen.
type Calculation struct {
	Title   string                     `json:"title"`
	Devises []string                   `json:"devises"`
	Form    models.ConversionRequest   `json:"form"`
	Result  *models.ConversionResult   `json:"result,omitempty"`
	Display string                     `json:"display,omitempty"`
	Error   string                     `json:"error,omitempty"`
	Fields  apperrors.ValidationErrors `json:"fields,omitempty"`
}

// Calculator converts through the API. Without parameters it returns the empty form.
func (h *ExchangeRateHandler) Calculator(c *fiber.Ctx) error {
	calc := Calculation{Title: "Calculateur de conversion", Devises: models.SupportedCurrencies}
	raw := c.Query("montant")
	calc.Form.DeviseSource = c.Query("deviseSource")
	calc.Form.DeviseCible = c.Query("deviseCible")
	if raw == "" && calc.Form.DeviseSource == "" && calc.Form.DeviseCible == "" {
		return c.JSON(calc)
	}

	montant, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		calc.Fields = apperrors.ValidationErrors{"montant": "Le montant doit être un nombre valide"}
		calc.Error = calc.Fields.Error()
		return c.Status(fiber.StatusUnprocessableEntity).JSON(calc)
	}
	calc.Form.Montant = montant

	if err := h.validator.Struct(calc.Form); err != nil {
		if verrs, ok := err.(apperrors.ValidationErrors); ok {
			calc.Fields = verrs
		}
		calc.Error = apperrors.MessageOf(err)
		return c.Status(apperrors.StatusOf(err)).JSON(calc)
	}

	result, err := h.rates.Convert(c.UserContext(), calc.Form)
	if err != nil {
		if sessionLost(c, err) {
			return h.expired(c)
		}
		calc.Error = apperrors.MessageOf(err)
		return c.Status(apperrors.StatusOf(err)).JSON(calc)
	}

	calc.Result = result
	calc.Display = FormatConversion(result.MontantCible, calc.Form.DeviseCible)
	return c.JSON(calc)
}

// FormatConversion renders a converted amount with exactly two decimals.
func FormatConversion(amount float64, currency string) string {
	return fmt.Sprintf("Résultat : %.2f %s", amount, currency)
}

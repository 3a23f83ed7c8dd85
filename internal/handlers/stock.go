package handlers

import (
	"context"

	apperrors "chargili/internal/errors"
	"chargili/internal/models"
	"chargili/internal/services/stock"
	"chargili/internal/utils/pagination"

	"github.com/gofiber/fiber/v2"
)

// StockHandler serves the voucher cards and the recharge balances.
type StockHandler struct {
	*Base
	stock stock.Service
}

func NewStockHandler(base *Base, s stock.Service) *StockHandler {
	return &StockHandler{Base: base, stock: s}
}

func cardRow(card models.StockCard) Row {
	used := card.IsUsed()
	return Row{Record: card, CanEdit: !used, CanDelete: !used, StatusColor: card.Statut.Color()}
}

func (h *StockHandler) Cards(c *fiber.Ctx) error {
	return h.cardsScreen(c, fiber.StatusOK, nil)
}

func (h *StockHandler) cardsScreen(c *fiber.Ctx, status int, toast *Toast) error {
	var filter models.StockCardFilter
	if err := c.QueryParser(&filter); err != nil {
		return h.fail(c, err)
	}
	page := pagination.ParseFromRequest(c)
	filter.Page, filter.Size = page.Page, page.Size

	st, err := fetchList(h.Base, c, "stock-cards", func(ctx context.Context) (*models.Page[models.StockCard], error) {
		return h.stock.ListCards(ctx, filter)
	})
	if err != nil {
		return h.fail(c, err)
	}

	screen := Screen{
		Title:   "Stock de cartes",
		State:   st.Status,
		Error:   st.Error,
		Filters: filter,
		Options: fiber.Map{"operateurs": models.StockCardOperators, "pays": models.StockCardCountries},
		Toast:   toast,
	}
	if st.Data != nil {
		screen.Rows = rowsOf(st.Data.Content, cardRow)
		screen.Page = pagination.FromPage(st.Data)
	}
	return h.render(c, status, screen)
}

func (h *StockHandler) Card(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	card, err := h.stock.GetCard(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"title": "Détails de la carte", "card": cardRow(*card)})
}

func (h *StockHandler) CreateCard(c *fiber.Ctx) error {
	var form models.StockCardForm
	if err := h.bindValid(c, &form); err != nil {
		return h.dialogFail(c, form, err)
	}
	created, err := h.stock.CreateCard(c.UserContext(), form)
	if err != nil {
		return h.dialogFail(c, form, err)
	}
	h.record(c, "create", "stock-card", created.ID, created.Operateur)
	return h.cardsScreen(c, fiber.StatusOK, success("Carte ajoutée avec succès"))
}

// usableCard loads the card and refuses a consumed one.
func (h *StockHandler) usableCard(c *fiber.Ctx, id int64) error {
	card, err := h.stock.GetCard(c.UserContext(), id)
	if err != nil {
		return err
	}
	if card.IsUsed() {
		return apperrors.ErrStockCardUsed
	}
	return nil
}

func (h *StockHandler) UpdateCard(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	var form models.StockCardForm
	if err := h.bindValid(c, &form); err != nil {
		return h.dialogFail(c, form, err)
	}
	if err := h.usableCard(c, id); err != nil {
		return h.dialogFail(c, form, err)
	}

	if _, err := h.stock.UpdateCard(c.UserContext(), id, form); err != nil {
		return h.dialogFail(c, form, err)
	}
	h.record(c, "update", "stock-card", id, "")
	return h.cardsScreen(c, fiber.StatusOK, success("Carte mise à jour avec succès"))
}

func (h *StockHandler) DeleteCard(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.usableCard(c, id); err != nil {
		return h.fail(c, err)
	}
	if !confirmed(c) {
		return askConfirmation(c, "Êtes-vous sûr de vouloir supprimer cette carte ?")
	}

	if err := h.stock.DeleteCard(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	h.record(c, "delete", "stock-card", id, "")
	return h.cardsScreen(c, fiber.StatusOK, success("Carte supprimée avec succès"))
}

func (h *StockHandler) Balances(c *fiber.Ctx) error {
	return h.balancesScreen(c, fiber.StatusOK, nil)
}

func (h *StockHandler) balancesScreen(c *fiber.Ctx, status int, toast *Toast) error {
	var filter models.RechargeStockFilter
	if err := c.QueryParser(&filter); err != nil {
		return h.fail(c, err)
	}
	page := pagination.ParseFromRequest(c)
	filter.Page, filter.Size = page.Page, page.Size

	st, err := fetchList(h.Base, c, "stock-balance", func(ctx context.Context) (*models.Page[models.RechargeStock], error) {
		return h.stock.ListRecharge(ctx, filter)
	})
	if err != nil {
		return h.fail(c, err)
	}

	screen := Screen{Title: "Solde de recharge", State: st.Status, Error: st.Error, Filters: filter, Toast: toast}
	if st.Data != nil {
		screen.Rows = rowsOf(st.Data.Content, func(r models.RechargeStock) Row {
			color := models.ColorSuccess
			if r.MontantDisponible <= 0 {
				color = models.ColorError
			}
			return Row{Record: r, CanDelete: true, StatusColor: color}
		})
		screen.Page = pagination.FromPage(st.Data)
	}
	return h.render(c, status, screen)
}

func (h *StockHandler) Balance(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	balance, err := h.stock.GetRecharge(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"title": "Détails du solde", "balance": balance})
}

func (h *StockHandler) CreateBalance(c *fiber.Ctx) error {
	var form models.RechargeStockForm
	if err := h.bindValid(c, &form); err != nil {
		return h.dialogFail(c, form, err)
	}
	created, err := h.stock.CreateRecharge(c.UserContext(), form)
	if err != nil {
		return h.dialogFail(c, form, err)
	}
	h.record(c, "create", "recharge-stock", created.ID, created.Pays+"/"+created.Operateur)
	return h.balancesScreen(c, fiber.StatusOK, success("Stock créé avec succès"))
}

// AddBalance tops up the balance of a country and operator.
func (h *StockHandler) AddBalance(c *fiber.Ctx) error {
	var form models.RechargeStockForm
	if err := h.bindValid(c, &form); err != nil {
		return h.dialogFail(c, form, err)
	}
	updated, err := h.stock.AddRecharge(c.UserContext(), form)
	if err != nil {
		return h.dialogFail(c, form, err)
	}
	h.record(c, "add", "recharge-stock", updated.ID, form.Pays+"/"+form.Operateur)
	return h.balancesScreen(c, fiber.StatusOK, success("Stock rechargé avec succès"))
}

func (h *StockHandler) DeleteBalance(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	if !confirmed(c) {
		return askConfirmation(c, "Êtes-vous sûr de vouloir supprimer ce stock ?")
	}
	if err := h.stock.DeleteRecharge(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	h.record(c, "delete", "recharge-stock", id, "")
	return h.balancesScreen(c, fiber.StatusOK, success("Stock supprimé avec succès"))
}

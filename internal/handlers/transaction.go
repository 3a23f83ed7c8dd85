package handlers

import (
	"context"
	"strconv"

	apperrors "chargili/internal/errors"
	"chargili/internal/models"
	"chargili/internal/services/payment"
	"chargili/internal/services/transaction"
	"chargili/internal/utils/pagination"
	"chargili/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	viewAgent     = "agent"
	viewAutomatic = "automatique"
)

type TransactionHandler struct {
	*Base
	transactions transaction.Service
	payments     payment.Lookup
}

func NewTransactionHandler(base *Base, transactions transaction.Service, payments payment.Lookup) *TransactionHandler {
	if payments == nil {
		payments = payment.Disabled{}
	}
	return &TransactionHandler{Base: base, transactions: transactions, payments: payments}
}

func transactionRow(t models.Transaction) Row {
	return Row{Record: t, CanUpdateStatus: true, StatusColor: t.Statut.Color()}
}

func checkPeriod(filter models.TransactionFilter) error {
	checker := validation.NewChecker()
	checker.DateRange("dateDebut", filter.DateDebut, "dateFin", filter.DateFin)
	if filter.MontantMin != nil && filter.MontantMax != nil {
		checker.Check(*filter.MontantMin <= *filter.MontantMax, "montantMin", "Le montant minimum doit être inférieur au montant maximum")
	}
	return checker.Err()
}

// List is the filtered transaction table. vue=agent&agentId= lists the
// transactions assigned to one agent and vue=automatique the automatic ones.
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	var filter models.TransactionFilter
	if err := c.QueryParser(&filter); err != nil {
		return h.fail(c, apperrors.ErrInvalidBody)
	}
	if err := checkPeriod(filter); err != nil {
		return h.fail(c, err)
	}
	page := pagination.ParseFromRequest(c)
	filter.Page, filter.Size = page.Page, page.Size

	view := c.Query("vue")
	if view == viewAgent && filter.AgentID <= 0 {
		return h.fail(c, apperrors.ValidationErrors{"agentId": "L'agent est requis"})
	}

	st, err := fetchList(h.Base, c, "transactions", func(ctx context.Context) (*models.Page[models.Transaction], error) {
		switch view {
		case viewAgent:
			return h.transactions.ListByAgent(ctx, filter.AgentID, filter)
		case viewAutomatic:
			return h.transactions.ListAutomatic(ctx, filter)
		}
		return h.transactions.Filter(ctx, filter)
	})
	if err != nil {
		return h.fail(c, err)
	}

	screen := Screen{
		Title:   "Transactions",
		State:   st.Status,
		Error:   st.Error,
		Filters: fiber.Map{"vue": view, "filtre": filter},
		Options: fiber.Map{
			"statuts":     []models.TransactionStatus{models.TransactionValidated, models.TransactionPending, models.TransactionFailed},
			"traitements": []models.ProcessingType{models.ProcessingAutomatic, models.ProcessingManual},
			"formats":     []models.ExportFormat{models.ExportCSV, models.ExportExcel, models.ExportPDF},
		},
		Page: pagination.NewMeta(page, 0),
	}
	if st.Data != nil {
		screen.Rows = rowsOf(st.Data.Content, transactionRow)
		screen.Page = pagination.FromPage(st.Data)
	}
	return h.render(c, fiber.StatusOK, screen)
}

// Details shows one transaction with its status history and, when the
// transaction went through Stripe, the checkout payment.
func (h *TransactionHandler) Details(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	return h.details(c, id, nil)
}

func (h *TransactionHandler) details(c *fiber.Ctx, id int64, toast *Toast) error {
	tx, err := h.transactions.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	if tx.HistoriqueStatuts == nil {
		tx.HistoriqueStatuts = []models.StatusChange{}
	}

	out := fiber.Map{
		"title":       "Transaction " + strconv.FormatInt(tx.ID, 10),
		"transaction": tx,
		"statusColor": tx.Statut.Color(),
	}
	if toast != nil {
		out["toast"] = toast
	}
	if tx.StripeSessionID != "" && h.payments.Enabled() {
		info, err := h.payments.Lookup(c.UserContext(), tx.StripeSessionID)
		switch {
		case err != nil:
			h.log.Warnw("payment lookup failed", "transaction", tx.ID, "error", err)
			out["paiementError"] = "Impossible de récupérer le paiement"
		case info != nil:
			out["paiement"] = info
		}
	}
	return c.JSON(out)
}

func (h *TransactionHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	var update models.TransactionStatusUpdate
	if err := h.bindValid(c, &update); err != nil {
		return h.dialogFail(c, update, err)
	}
	if _, err := h.transactions.UpdateStatus(c.UserContext(), id, update); err != nil {
		return h.dialogFail(c, update, err)
	}
	h.record(c, "status", "transaction", id, string(update.Statut))
	return h.details(c, id, success("Statut de la transaction mis à jour"))
}

func (h *TransactionHandler) Assign(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return h.fail(c, err)
	}
	var req models.AssignRequest
	if err := h.bindValid(c, &req); err != nil {
		return h.dialogFail(c, req, err)
	}
	if _, err := h.transactions.Assign(c.UserContext(), id, req.AgentID); err != nil {
		return h.dialogFail(c, req, err)
	}
	h.record(c, "assign", "transaction", id, strconv.FormatInt(req.AgentID, 10))
	return h.details(c, id, success("Transaction assignée avec succès"))
}

// Export streams the file produced by the API as an attachment.
func (h *TransactionHandler) Export(c *fiber.Ctx) error {
	var req models.ExportRequest
	if err := h.bindValid(c, &req); err != nil {
		return h.dialogFail(c, req, err)
	}
	if err := checkPeriod(req.TransactionFilter); err != nil {
		return h.dialogFail(c, req, err)
	}

	file, err := h.transactions.Export(c.UserContext(), req)
	if err != nil {
		return h.dialogFail(c, req, err)
	}
	h.record(c, "export", "transaction", nil, file.Filename)

	c.Attachment(file.Filename)
	if file.ContentType != "" {
		c.Set(fiber.HeaderContentType, file.ContentType)
	}
	return c.Send(file.Data)
}

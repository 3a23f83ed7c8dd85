package handlers

import (
	"chargili/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Tile struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type MenuItem struct {
	Title    string     `json:"title"`
	Path     string     `json:"path,omitempty"`
	Children []MenuItem `json:"children,omitempty"`
	Admin    bool       `json:"-"`
}

var menu = []MenuItem{
	{Title: "Tableau de bord", Path: "/dashboard"},
	{Title: "Agents", Path: "/agents", Admin: true},
	{Title: "Clients", Path: "/clients"},
	{Title: "Transactions", Path: "/transactions"},
	{Title: "Stock", Children: []MenuItem{
		{Title: "Cartes", Path: "/stock/cards"},
		{Title: "Solde de recharge", Path: "/stock/balance"},
	}},
	{Title: "Paramètres", Children: []MenuItem{
		{Title: "Taux de change", Path: "/parameters/exchange-rates", Admin: true},
		{Title: "Devises", Path: "/parameters/currency", Admin: true},
		{Title: "Devises principales", Path: "/parameters/main-currency", Admin: true},
		{Title: "Opérateurs", Path: "/parameters/operators", Admin: true},
		{Title: "Commissions", Path: "/parameters/commissions", Admin: true},
		{Title: "Tickets de support", Path: "/parameters/support-tickets"},
		{Title: "Litiges", Path: "/parameters/disputes"},
	}},
	{Title: "Journal d'audit", Path: "/audit", Admin: true},
}

// menuFor drops the entries an agent cannot open, and empty groups.
func menuFor(items []MenuItem, admin bool) []MenuItem {
	out := make([]MenuItem, 0, len(items))
	for _, item := range items {
		if item.Admin && !admin {
			continue
		}
		if item.Children != nil {
			item.Children = menuFor(item.Children, admin)
			if len(item.Children) == 0 {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}

type DashboardHandler struct {
	*Base
}

func NewDashboardHandler(base *Base) *DashboardHandler {
	return &DashboardHandler{Base: base}
}

func (h *DashboardHandler) Show(c *fiber.Ctx) error {
	state := middleware.State(c)
	operator := ""
	if state.User != nil {
		operator = state.User.DisplayName()
	}
	return c.JSON(fiber.Map{
		"title":    "Tableau de bord",
		"operator": operator,
		"user":     state.User,
		"menu":     menuFor(menu, state.IsAdmin()),
		"tiles": []Tile{
			{Title: "Statistiques", Body: "Bienvenue dans la backoffice de CHARGILI"},
			{Title: "Actions rapides", Body: "Gestion des utilisateurs et des transactions"},
			{Title: "Notifications", Body: "Aucune notification pour le moment"},
		},
	})
}

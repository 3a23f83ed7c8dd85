package models

type Currency struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Active   bool   `json:"active"`
	Region   string `json:"region"`
	Priority int    `json:"priority"`
}

type CurrencyForm struct {
	Code     string `json:"code" validate:"required,isocode"`
	Name     string `json:"name" validate:"required"`
	Symbol   string `json:"symbol" validate:"required"`
	Active   bool   `json:"active"`
	Region   string `json:"region" validate:"required"`
	Priority int    `json:"priority" validate:"gte=1"`
}

type MainCurrency struct {
	ID     int64  `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Active bool   `json:"active"`
}

type MainCurrencyForm struct {
	Code   string `json:"code" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Symbol string `json:"symbol" validate:"required"`
}

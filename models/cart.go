package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// money renders an amount as a JSON number with two decimal places.
func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

type ModificationKind string

const (
	ModificationAdd    ModificationKind = "add"
	ModificationRemove ModificationKind = "remove"
	ModificationExtra  ModificationKind = "extra"
)

// Modification is a per-ingredient adjustment. UnitPrice is copied when the
// modification is selected and is never re-fetched.
type Modification struct {
	IngredientID string           `json:"ingredientId" validate:"required"`
	Ingredient   Ingredient       `json:"ingredient"`
	Kind         ModificationKind `json:"kind" validate:"oneof=add remove extra"`
	Quantity     int              `json:"quantity" validate:"gte=1"`
	UnitPrice    decimal.Decimal  `json:"unitPrice"`
}

func (m Modification) MarshalJSON() ([]byte, error) {
	type plain Modification
	return json.Marshal(struct {
		plain
		UnitPrice json.Number `json:"unitPrice"`
	}{plain(m), money(m.UnitPrice)})
}

type CartItem struct {
	ID            string          `json:"id"`
	Product       Product         `json:"product"`
	Quantity      int             `json:"quantity"`
	Modifications []Modification  `json:"modifications"`
	CustomPrice   decimal.Decimal `json:"customPrice"`
}

func (i CartItem) MarshalJSON() ([]byte, error) {
	type plain CartItem
	return json.Marshal(struct {
		plain
		CustomPrice json.Number `json:"customPrice"`
	}{plain(i), money(i.CustomPrice)})
}

// LineTotal is the custom price multiplied by the quantity.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.CustomPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type CartSummary struct {
	Items      []CartItem      `json:"items"`
	ItemCount  int             `json:"itemCount"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Total      decimal.Decimal `json:"total"`
	IsCartOpen bool            `json:"isCartOpen"`
}

func (c CartSummary) MarshalJSON() ([]byte, error) {
	type plain CartSummary
	return json.Marshal(struct {
		plain
		Subtotal json.Number `json:"subtotal"`
		Total    json.Number `json:"total"`
	}{plain(c), money(c.Subtotal), money(c.Total)})
}

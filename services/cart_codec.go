package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"restaurant-cart/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var ErrMalformedCart = errors.New("malformed persisted cart")

var validate = validator.New()

// persistedItem accepts both the current slot shape and the older one that
// predates line ids, modifications and custom prices.
type persistedItem struct {
	ID            *string               `json:"id"`
	Product       *models.Product       `json:"product" validate:"required"`
	Quantity      int                   `json:"quantity" validate:"gte=1"`
	Modifications []models.Modification `json:"modifications" validate:"dive"`
	CustomPrice   *decimal.Decimal      `json:"customPrice"`
}

func (p persistedItem) legacy() bool {
	return p.ID == nil || *p.ID == ""
}

func EncodeCart(items []models.CartItem) ([]byte, error) {
	if items == nil {
		items = []models.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode cart: %w", err)
	}
	return data, nil
}

// DecodeCart parses slot contents into normalized line items. Any entry that does
// not fit the typed shape fails the whole decode with ErrMalformedCart. A missing
// custom price is recomputed from the product price and modifications.
func DecodeCart(data []byte, newID func() string) ([]models.CartItem, error) {
	var raw []persistedItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCart, err)
	}

	items := make([]models.CartItem, 0, len(raw))
	for i, p := range raw {
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrMalformedCart, i, err)
		}
		base, err := ParsePrice(p.Product.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrMalformedCart, i, err)
		}

		if p.legacy() {
			items = append(items, models.CartItem{
				ID:            newID(),
				Product:       *p.Product,
				Quantity:      p.Quantity,
				Modifications: []models.Modification{},
				CustomPrice:   CalculateCustomPrice(base, nil),
			})
			continue
		}

		item := models.CartItem{
			ID:            *p.ID,
			Product:       *p.Product,
			Quantity:      p.Quantity,
			Modifications: p.Modifications,
		}
		if item.Modifications == nil {
			item.Modifications = []models.Modification{}
		}
		for _, m := range item.Modifications {
			if m.UnitPrice.IsNegative() {
				return nil, fmt.Errorf("%w: entry %d: negative modification price", ErrMalformedCart, i)
			}
		}
		if p.CustomPrice != nil {
			if p.CustomPrice.IsNegative() {
				return nil, fmt.Errorf("%w: entry %d: negative custom price", ErrMalformedCart, i)
			}
			item.CustomPrice = *p.CustomPrice
		} else {
			item.CustomPrice = CalculateCustomPrice(base, item.Modifications)
		}
		items = append(items, item)
	}
	return items, nil
}

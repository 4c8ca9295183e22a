package services

import (
	"fmt"
	"strings"

	"restaurant-cart/models"

	"github.com/shopspring/decimal"
)

// ParsePrice parses a catalog decimal string such as "22.90".
func ParsePrice(price string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q: %w", price, err)
	}
	return d, nil
}

// CalculateCustomPrice applies modifications to a base unit price. Add and extra
// raise the price by unitPrice*quantity, remove lowers it; the result never
// drops below zero.
func CalculateCustomPrice(base decimal.Decimal, mods []models.Modification) decimal.Decimal {
	price := base
	for _, m := range mods {
		delta := m.UnitPrice.Mul(decimal.NewFromInt(int64(m.Quantity)))
		switch m.Kind {
		case models.ModificationAdd, models.ModificationExtra:
			price = price.Add(delta)
		case models.ModificationRemove:
			price = price.Sub(delta)
		}
	}
	if price.IsNegative() {
		return decimal.Zero
	}
	return price
}

package cart

import (
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// DistinctItems is the number of line items in the cart
func DistinctItems(state domain.CartState) int {
	return len(state.Items)
}

// TotalQuantity sums quantities across all line items (the header badge count)
func TotalQuantity(state domain.CartState) int {
	total := 0
	for _, item := range state.Items {
		total += item.Quantity
	}
	return total
}

// LineTotal is the discounted unit price times the quantity
func LineTotal(item domain.LineItem) decimal.Decimal {
	unit := decimal.NewFromFloat(item.Book.FinalPrice())
	return unit.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// Subtotal sums LineTotal over the cart
func Subtotal(state domain.CartState) decimal.Decimal {
	total := decimal.Zero
	for _, item := range state.Items {
		total = total.Add(LineTotal(item))
	}
	return total
}

// FormatPrice renders an amount with two decimal places
func FormatPrice(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

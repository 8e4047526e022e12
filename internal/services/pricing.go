package services

import (
	"github.com/shopspring/decimal"

	"mandi/internal/domain"
)

// Money rounding is half-away-from-zero to 2 decimal places, applied to every
// line before summation. Summing raw products and rounding once at the end is
// not the same number and is deliberately not done here; rounding per line
// bounds float drift to a single item.

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// ItemTotal computes round(price × quantity, 2).
func ItemTotal(price, quantity float64) float64 {
	return round2(decimal.NewFromFloat(price).Mul(decimal.NewFromFloat(quantity)))
}

// PriceItems fills in each item's ItemTotal from its effective price and
// returns the bill total: the sum of the already-rounded line totals,
// rounded again to 2 places. Pure; items are returned as a new slice.
func PriceItems(items []domain.BillItem) ([]domain.BillItem, float64) {
	out := make([]domain.BillItem, len(items))
	sum := decimal.Zero
	for i, it := range items {
		it.ItemTotal = ItemTotal(it.Price, it.Quantity)
		sum = sum.Add(decimal.NewFromFloat(it.ItemTotal))
		out[i] = it
	}
	return out, round2(sum)
}

package domain

import "github.com/shopspring/decimal"

// OrderTotal sums price*quantity over items using decimal arithmetic and
// rounds to cents. Order totals are caller-supplied; this is a helper for
// callers that want a consistent figure.
func OrderTotal(items []OrderItem) float64 {
	sum := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		sum = sum.Add(line)
	}
	total, _ := sum.Round(2).Float64()
	return total
}

package analytics

import (
	"github.com/shopspring/decimal"
)

type Weighted struct {
	Key    string
	Weight Money
}

type Share struct {
	Key     string
	Value   decimal.Decimal
	Percent int
}

// Distribute returns the total weight and each row's rounded share of it.
// Shares are all zero when the total is zero.
func Distribute(rows []Weighted) (decimal.Decimal, []Share) {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Weight.OrZero())
	}

	shares := make([]Share, 0, len(rows))
	for _, r := range rows {
		v := r.Weight.OrZero()
		shares = append(shares, Share{
			Key:     r.Key,
			Value:   v,
			Percent: Percent(v, total, false),
		})
	}
	return total, shares
}

// SeriesBar is the width of a budget series bar relative to the project
// budget, limited to [0, 100].
func SeriesBar(value, totalBudget Money) int {
	return Percent(value.OrZero(), totalBudget.OrZero(), true)
}

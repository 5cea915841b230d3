// Package analytics holds the derived figures shown next to fetched
// collections: budget totals, completion and status distributions.
package analytics

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Line is one cost-bearing record. Actual is optional; when missing the
// estimated cost stands in for it.
type Line struct {
	Estimated Money
	Actual    Money
	Purchased bool
}

type Budget struct {
	EstimatedTotal       decimal.Decimal
	ActualTotal          decimal.Decimal
	CompletionPercentage int
	IsOverBudget         bool
}

// Summarize computes the budget figures of a single collection.
func Summarize(lines []Line) Budget {
	return Combine(lines, lines)
}

// Combine takes the estimate from one collection and the purchased actuals
// from another, the way the materials page pairs materials with shopping
// items.
func Combine(estimated, purchased []Line) Budget {
	b := Budget{
		EstimatedTotal: decimal.Zero,
		ActualTotal:    decimal.Zero,
	}

	for _, l := range estimated {
		b.EstimatedTotal = b.EstimatedTotal.Add(l.Estimated.OrZero())
	}

	for _, l := range purchased {
		if !l.Purchased {
			continue
		}
		b.ActualTotal = b.ActualTotal.Add(l.Actual.Or(l.Estimated).OrZero())
	}

	if b.EstimatedTotal.IsPositive() {
		b.CompletionPercentage = Percent(b.ActualTotal, b.EstimatedTotal, true)
		b.IsOverBudget = b.ActualTotal.GreaterThan(b.EstimatedTotal)
	}

	return b
}

// Remaining is the unspent estimate, never below zero.
func (b Budget) Remaining() decimal.Decimal {
	r := b.EstimatedTotal.Sub(b.ActualTotal)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

// Percent returns round(part/total*100), or 0 when total is not positive.
// With clamp set the result is limited to [0, 100].
func Percent(part, total decimal.Decimal, clamp bool) int {
	if !total.IsPositive() {
		return 0
	}

	p := part.Div(total).Mul(hundred)
	if clamp {
		if p.GreaterThan(hundred) {
			p = hundred
		}
		if p.IsNegative() {
			p = decimal.Zero
		}
	}
	return int(p.Round(0).IntPart())
}

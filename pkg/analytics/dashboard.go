package analytics

import (
	"github.com/shopspring/decimal"
)

type Summary struct {
	TotalProjects     int
	ActiveProjects    int
	CompletedProjects int
	OverdueTasks      int
	TotalBudget       Money
	TotalSpent        Money
}

type DashboardStats struct {
	Remaining decimal.Decimal
	// SpendPercent is unbounded; SpendBar is the same value limited to 100.
	SpendPercent   int
	SpendBar       int
	ActiveShare    int
	CompletedShare int
	OverdueGauge   int
}

func Dashboard(s Summary) DashboardStats {
	budget := s.TotalBudget.OrZero()
	spent := s.TotalSpent.OrZero()

	remaining := budget.Sub(spent)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	denominator := decimal.NewFromInt(int64(max(s.TotalProjects, 1)))

	return DashboardStats{
		Remaining:      remaining,
		SpendPercent:   Percent(spent, budget, false),
		SpendBar:       Percent(spent, budget, true),
		ActiveShare:    Percent(decimal.NewFromInt(int64(max(s.ActiveProjects, 0))), denominator, true),
		CompletedShare: Percent(decimal.NewFromInt(int64(max(s.CompletedProjects, 0))), denominator, true),
		OverdueGauge:   min(max(s.OverdueTasks, 0)*10, 100),
	}
}

// Portfolio totals the budgets of a project list and counts projects per
// status. Projects without a status count as planning.
type Portfolio struct {
	Count       int
	TotalBudget decimal.Decimal
	ByStatus    map[string]int
}

func NewPortfolio(budgets []Money, statuses []string) Portfolio {
	p := Portfolio{
		Count:       len(budgets),
		TotalBudget: SumMoney(budgets),
		ByStatus:    make(map[string]int),
	}
	for _, s := range statuses {
		if s == "" {
			s = "planning"
		}
		p.ByStatus[s]++
	}
	return p
}

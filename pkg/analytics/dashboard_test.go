package analytics

import (
	"testing"
)

func TestDashboard(t *testing.T) {
	stats := Dashboard(Summary{
		TotalProjects:     4,
		ActiveProjects:    3,
		CompletedProjects: 1,
		OverdueTasks:      2,
		TotalBudget:       NewMoney(1000),
		TotalSpent:        NewMoney(1250),
	})

	if !stats.Remaining.IsZero() {
		t.Errorf("Remaining = %s, want 0", stats.Remaining)
	}
	if stats.SpendPercent != 125 {
		t.Errorf("SpendPercent = %d, want 125", stats.SpendPercent)
	}
	if stats.SpendBar != 100 {
		t.Errorf("SpendBar = %d, want 100", stats.SpendBar)
	}
	if stats.ActiveShare != 75 {
		t.Errorf("ActiveShare = %d, want 75", stats.ActiveShare)
	}
	if stats.CompletedShare != 25 {
		t.Errorf("CompletedShare = %d, want 25", stats.CompletedShare)
	}
	if stats.OverdueGauge != 20 {
		t.Errorf("OverdueGauge = %d, want 20", stats.OverdueGauge)
	}
}

func TestDashboardEmpty(t *testing.T) {
	stats := Dashboard(Summary{OverdueTasks: 40})

	if stats.SpendPercent != 0 || stats.ActiveShare != 0 || stats.CompletedShare != 0 {
		t.Errorf("expected zero shares, got %+v", stats)
	}
	if stats.OverdueGauge != 100 {
		t.Errorf("OverdueGauge = %d, want 100", stats.OverdueGauge)
	}
}

func TestDistribute(t *testing.T) {
	total, shares := Distribute([]Weighted{
		{Key: "pending", Weight: NewMoney(1)},
		{Key: "in_progress", Weight: NewMoney(1)},
		{Key: "completed", Weight: NewMoney(2)},
		{Key: "bogus", Weight: Money{}},
	})

	if !total.Equal(dec(4)) {
		t.Fatalf("total = %s, want 4", total)
	}
	want := []int{25, 25, 50, 0}
	for i, s := range shares {
		if s.Percent != want[i] {
			t.Errorf("%s: Percent = %d, want %d", s.Key, s.Percent, want[i])
		}
	}
}

func TestDistributeZeroTotal(t *testing.T) {
	_, shares := Distribute([]Weighted{{Key: "a"}, {Key: "b", Weight: NewMoney(0)}})
	for _, s := range shares {
		if s.Percent != 0 {
			t.Errorf("%s: Percent = %d, want 0", s.Key, s.Percent)
		}
	}
}

func TestSeriesBar(t *testing.T) {
	if got := SeriesBar(NewMoney(50), NewMoney(200)); got != 25 {
		t.Errorf("SeriesBar = %d, want 25", got)
	}
	if got := SeriesBar(NewMoney(500), NewMoney(200)); got != 100 {
		t.Errorf("SeriesBar = %d, want 100", got)
	}
	if got := SeriesBar(NewMoney(50), Money{}); got != 0 {
		t.Errorf("SeriesBar = %d, want 0", got)
	}
}

func TestPortfolio(t *testing.T) {
	p := NewPortfolio(
		[]Money{NewMoney(100), {}, NewMoney(50)},
		[]string{"in_progress", "", "in_progress"},
	)
	if p.Count != 3 {
		t.Errorf("Count = %d, want 3", p.Count)
	}
	if !p.TotalBudget.Equal(dec(150)) {
		t.Errorf("TotalBudget = %s, want 150", p.TotalBudget)
	}
	if p.ByStatus["in_progress"] != 2 || p.ByStatus["planning"] != 1 {
		t.Errorf("ByStatus = %v", p.ByStatus)
	}
}

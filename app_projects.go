package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"reno/pkg/analytics"
	"reno/pkg/api"
	"reno/pkg/schedule"
)

func (a *App) ListProjects(ctx context.Context) error {
	projects, err := a.client.ListProjects(ctx)
	if err != nil {
		return a.fetchFailed("project", "ListProjects", err, "Failed to load projects", "No renovation projects yet")
	}

	// a selection that no longer exists is dropped
	selected, hasSelected := a.session.SelectedProject()
	if hasSelected && !containsProject(projects, selected.ID) {
		if err := a.session.SetSelectedProject(nil); err != nil {
			return err
		}
		hasSelected = false
	}

	return a.render(projects, func() {
		if len(projects) == 0 {
			a.printf("No renovation projects yet\n")
			return
		}

		budgets := make([]analytics.Money, 0, len(projects))
		statuses := make([]string, 0, len(projects))
		var rows [][]string
		for _, p := range projects {
			mark := ""
			if hasSelected && p.ID == selected.ID {
				mark = "*"
			}
			rows = append(rows, []string{mark, p.ID.String(), p.Name, orText(string(p.Status), string(api.ProjectPlanning)), a.money(p.TotalBudget)})
			budgets = append(budgets, p.TotalBudget)
			statuses = append(statuses, string(p.Status))
		}

		portfolio := analytics.NewPortfolio(budgets, statuses)
		footers := []string{"", "", fmt.Sprintf("%d projects", portfolio.Count), "Total:", a.amount(portfolio.TotalBudget)}
		PrintTable(a.out, []string{"", "ID", "Name", "Status", "Budget"}, rows, footers)
	})
}

func containsProject(projects []api.Project, id api.ID) bool {
	for _, p := range projects {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (a *App) CreateProject(ctx context.Context, name, budget string) error {
	in := api.CreateProjectIn{Name: strings.TrimSpace(name)}
	if d, ok := analytics.ParseAmount(budget); ok {
		in.TotalBudget = analytics.MoneyFromDecimal(d)
	}
	if err := a.forms.Struct(in); err != nil {
		return err
	}

	p, err := a.client.CreateProject(ctx, in)
	if err != nil {
		return a.fail("project", "CreateProject", err, "Failed to create project")
	}

	if p.ID != "" {
		if err := a.session.SetSelectedProject(&p); err != nil {
			return err
		}
		a.insights.Invalidate()
		a.printf("Created and selected project: %s\n", p.Name)
	} else {
		a.printf("Created project: %s\n", in.Name)
	}

	return a.ListProjects(ctx)
}

// SelectProject stores the selected project. Without an id the user picks
// one from the project list.
func (a *App) SelectProject(ctx context.Context, id string) error {
	projects, err := a.client.ListProjects(ctx)
	if err != nil {
		return a.fail("project", "SelectProject", err, "Failed to load projects")
	}
	if len(projects) == 0 {
		return errors.New("No renovation projects yet")
	}

	if id == "" {
		opts := make([]Option, 0, len(projects))
		for _, p := range projects {
			opts = append(opts, Option{Label: p.Name, Value: p.ID.String()})
		}
		id, err = a.picker.Pick("Select a project", opts)
		if err != nil {
			return err
		}
	}

	for _, p := range projects {
		if p.ID.String() == id {
			if err := a.session.SetSelectedProject(&p); err != nil {
				return err
			}
			a.insights.Invalidate()
			a.printf("Selected project: %s\n", p.Name)
			return nil
		}
	}
	return fmt.Errorf("project %s not found", id)
}

func (a *App) ShowProject(ctx context.Context, flag string) error {
	id, err := a.project(flag)
	if err != nil {
		return err
	}

	p, err := a.client.FindProject(ctx, id)
	if err != nil {
		return a.fail("project", "ShowProject", err, "Failed to load project details")
	}

	tasks, err := a.client.ListTasks(ctx, id)
	if err != nil {
		return a.fail("project", "ShowProject", err, "Failed to fetch tasks")
	}
	expenses, err := a.client.ListExpenses(ctx, id)
	if err != nil {
		return a.fail("project", "ShowProject", err, "Failed to fetch expenses")
	}

	amounts := make([]analytics.Money, 0, len(expenses))
	for _, e := range expenses {
		amounts = append(amounts, e.Amount)
	}
	spent := analytics.SumMoney(amounts)
	remaining := p.TotalBudget.OrZero().Sub(spent)

	done := 0
	for _, t := range tasks {
		if t.EffectiveStatus() == api.TaskCompleted {
			done++
		}
	}

	view := struct {
		Project  api.Project `json:"project"`
		Tasks    int         `json:"tasks"`
		Done     int         `json:"completed_tasks"`
		Expenses int         `json:"expenses"`
		Spent    string      `json:"spent"`
	}{p, len(tasks), done, len(expenses), spent.String()}

	return a.render(view, func() {
		rows := [][]string{
			{"Name", p.Name},
			{"Status", orText(string(p.Status), string(api.ProjectPlanning))},
			{"Start", FormatDate(p.StartDate)},
			{"End", FormatDate(p.EndDate)},
			{"Budget", a.money(p.TotalBudget)},
			{"Spent", a.amount(spent) + "  " + Bar(analytics.Percent(spent, p.TotalBudget.OrZero(), true), 20)},
			{"Remaining", a.amount(remaining)},
			{"Tasks", fmt.Sprintf("%d/%d completed", done, len(tasks))},
			{"Expenses", fmt.Sprint(len(expenses))},
		}
		PrintTable(a.out, []string{"Project", p.ID.String()}, rows, nil)
	})
}

// Overview prints progress and analytics for a project. With watch it
// refreshes every poll interval until ctx is cancelled.
func (a *App) Overview(ctx context.Context, flag string, watch bool) error {
	id, err := a.project(flag)
	if err != nil {
		return err
	}

	load := func(ctx context.Context) error {
		in, err := a.insights.Load(ctx, id)
		if errors.Is(err, api.ErrStale) {
			return nil
		}
		if err != nil {
			return a.fail("project", "Overview", err, "Failed to load project insights")
		}
		return a.printInsights(in)
	}

	if !watch {
		return load(ctx)
	}

	err = schedule.Every(ctx, a.cfg.PollInterval, load, a.log)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *App) printInsights(in api.Insights) error {
	return a.render(in, func() {
		progress := in.Progress
		completion := progress.Completion()
		pct := 0
		if completion.Valid {
			pct = analytics.Percent(completion.Amount, analytics.NewMoney(100).Amount, true)
		}

		a.printf("Progress   %s\n", Bar(pct, 30))
		a.printf("Tasks      %s\n", progress.Ratio())
		a.printf("Est. end   %s\n", FormatDate(progress.EstimatedEndDate))
		a.printf("Budget     %s\n", a.money(in.Analytics.TotalBudget))
		a.printf("Spent      %s\n\n", a.money(in.Analytics.TotalSpent))

		if len(in.Analytics.BudgetSeries) > 0 {
			var rows [][]string
			for _, s := range in.Analytics.BudgetSeries {
				rows = append(rows, []string{s.Label, a.money(s.Value), Bar(analytics.SeriesBar(s.Value, in.Analytics.TotalBudget), 20)})
			}
			PrintTable(a.out, []string{"Period", "Amount", "Of budget"}, rows, nil)
			fmt.Fprintln(a.out)
		}

		weights := make([]analytics.Weighted, 0, len(in.Analytics.TaskStatusDistribution))
		for _, s := range in.Analytics.TaskStatusDistribution {
			weights = append(weights, analytics.Weighted{Key: s.Status, Weight: s.Count})
		}
		if _, shares := analytics.Distribute(weights); len(shares) > 0 {
			var rows [][]string
			for _, s := range shares {
				rows = append(rows, []string{strings.ReplaceAll(s.Key, "_", " "), s.Value.String(), fmt.Sprintf("%d%%", s.Percent)})
			}
			PrintTable(a.out, []string{"Task status", "Count", "Share"}, rows, nil)
			fmt.Fprintln(a.out)
		}

		weights = weights[:0]
		for _, c := range in.Analytics.ExpenseBreakdown {
			weights = append(weights, analytics.Weighted{Key: c.Category, Weight: c.Amount})
		}
		total, shares := analytics.Distribute(weights)
		if len(shares) == 0 {
			a.printf("No categorized expenses yet.\n")
			return
		}
		var rows [][]string
		for _, s := range shares {
			rows = append(rows, []string{orText(s.Key, "uncategorized"), a.amount(s.Value), fmt.Sprintf("%d%%", s.Percent)})
		}
		PrintTable(a.out, []string{"Category", "Amount", "Share"}, rows, []string{"Total:", a.amount(total), ""})
	})
}

// Report downloads the project report into dir.
func (a *App) Report(ctx context.Context, flag, dir string) error {
	id, err := a.project(flag)
	if err != nil {
		return err
	}

	report, err := a.client.DownloadReport(ctx, id)
	if err != nil {
		return a.fail("project", "Report", err, "Failed to download report")
	}

	body, err := report.Contents()
	if err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}

	path := filepath.Join(dir, report.Filename())
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	a.printf("Saved report to %s\n", path)
	return nil
}

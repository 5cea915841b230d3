package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"reno/pkg/api"
	"reno/pkg/export"
)

type exporter func(ctx context.Context, a *App, projectID api.ID) (export.Table, error)

// exporters build a table per resource. Project scoped ones need a
// project id.
var exporters = map[string]struct {
	scoped bool
	fetch  exporter
}{
	"projects": {false, func(ctx context.Context, a *App, _ api.ID) (export.Table, error) {
		projects, err := a.client.ListProjects(ctx)
		t := export.Table{Title: "Projects", Headers: []string{"ID", "Name", "Status", "Budget", "Start", "End"}}
		for _, p := range projects {
			t.Rows = append(t.Rows, []any{p.ID, p.Name, orText(string(p.Status), string(api.ProjectPlanning)), p.TotalBudget, p.StartDate, p.EndDate})
		}
		return t, err
	}},
	"tasks": {true, func(ctx context.Context, a *App, id api.ID) (export.Table, error) {
		tasks, err := a.client.ListTasks(ctx, id)
		t := export.Table{Title: "Tasks", Headers: []string{"ID", "Title", "Status", "Priority", "Deadline", "Assigned To", "Recurring", "Cycle"}}
		for _, x := range tasks {
			t.Rows = append(t.Rows, []any{x.ID, x.Title, x.EffectiveStatus(), x.EffectivePriority(), x.Deadline, x.AssignedTo, x.Recurring, x.RecurringCycle})
		}
		return t, err
	}},
	"expenses": {true, func(ctx context.Context, a *App, id api.ID) (export.Table, error) {
		expenses, err := a.client.ListExpenses(ctx, id)
		t := export.Table{Title: "Expenses", Headers: []string{"ID", "Title", "Category", "Amount", "Created At"}}
		for _, e := range expenses {
			t.Rows = append(t.Rows, []any{e.ID, e.Title, e.Category, e.Amount, e.CreatedAt})
		}
		return t, err
	}},
	"materials": {true, func(ctx context.Context, a *App, id api.ID) (export.Table, error) {
		materials, err := a.client.ListMaterials(ctx, id)
		t := export.Table{Title: "Materials", Headers: []string{"ID", "Name", "Estimated Cost", "Purchased"}}
		for _, m := range materials {
			t.Rows = append(t.Rows, []any{m.ID, m.Name, m.EstimatedCost, m.Purchased})
		}
		return t, err
	}},
	"shopping": {true, func(ctx context.Context, a *App, id api.ID) (export.Table, error) {
		items, err := a.client.ListShopping(ctx, id)
		t := export.Table{Title: "Shopping", Headers: []string{"ID", "Item Name", "Estimated Cost", "Actual Cost", "Purchased"}}
		for _, s := range items {
			t.Rows = append(t.Rows, []any{s.ID, s.ItemName, s.EstimatedCost, s.ActualCost, s.Purchased})
		}
		return t, err
	}},
	"contractors": {true, func(ctx context.Context, a *App, id api.ID) (export.Table, error) {
		contractors, err := a.client.ListContractors(ctx, id)
		t := export.Table{Title: "Contractors", Headers: []string{"ID", "Name", "Role", "Phone", "Email"}}
		for _, c := range contractors {
			t.Rows = append(t.Rows, []any{c.ID, c.Name, c.Role, c.Phone, c.Email})
		}
		return t, err
	}},
	"permits": {true, func(ctx context.Context, a *App, id api.ID) (export.Table, error) {
		permits, err := a.client.ListPermits(ctx, id)
		t := export.Table{Title: "Permits", Headers: []string{"ID", "Permit Name", "Status", "Approval Date"}}
		for _, p := range permits {
			t.Rows = append(t.Rows, []any{p.ID, p.PermitName, p.EffectiveStatus(), p.ApprovalDate})
		}
		return t, err
	}},
	"inventory": {false, func(ctx context.Context, a *App, _ api.ID) (export.Table, error) {
		items, err := a.client.ListInventory(ctx)
		t := export.Table{Title: "Inventory", Headers: []string{"ID", "Name", "Quantity", "Unit", "Location"}}
		for _, i := range items {
			t.Rows = append(t.Rows, []any{i.ID, i.Name, i.Quantity, i.Unit, i.Location})
		}
		return t, err
	}},
	"reminders": {false, func(ctx context.Context, a *App, _ api.ID) (export.Table, error) {
		reminders, err := a.client.ListReminders(ctx)
		t := export.Table{Title: "Reminders", Headers: []string{"ID", "Title", "Description", "Reminder Date", "Completed"}}
		for _, r := range reminders {
			t.Rows = append(t.Rows, []any{r.ID, r.Title, r.Description, r.ReminderDate, r.Completed})
		}
		return t, err
	}},
}

func ExportResources() []string {
	names := make([]string, 0, len(exporters))
	for name := range exporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Export writes a fetched collection to path. The format comes from
// format, else from the path's extension, else xlsx.
func (a *App) Export(ctx context.Context, flag, resource, path, format string) error {
	e, ok := exporters[strings.ToLower(resource)]
	if !ok {
		return fmt.Errorf("unknown resource %q (want one of: %s)", resource, strings.Join(ExportResources(), ", "))
	}

	f := export.XLSX
	switch {
	case format != "":
		var err error
		if f, err = export.ParseFormat(format); err != nil {
			return err
		}
	case path != "":
		if pf, ok := export.FormatFromPath(path); ok {
			f = pf
		}
	}
	if path == "" {
		path = strings.ToLower(resource) + "." + string(f)
	}

	var id api.ID
	if e.scoped {
		var err error
		if id, err = a.project(flag); err != nil {
			return err
		}
	}

	table, err := e.fetch(ctx, a, id)
	if err != nil {
		return a.fail("export", "Export", err, "Failed to fetch "+strings.ToLower(resource))
	}

	if err := export.WriteFile(path, f, table); err != nil {
		return err
	}

	a.printf("Exported %d %s to %s\n", len(table.Rows), strings.ToLower(resource), path)
	return nil
}

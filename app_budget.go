package main

import (
	"context"
	"fmt"
	"strings"

	"reno/pkg/analytics"
	"reno/pkg/api"
)

// parseMoney reads a form amount. Blank or unparsable input is an invalid
// Money, which validation reports.
func parseMoney(s string) analytics.Money {
	d, ok := analytics.ParseAmount(s)
	if !ok {
		return analytics.Money{}
	}
	return analytics.MoneyFromDecimal(d)
}

func (a *App) printBudget(b analytics.Budget) {
	a.printf("Estimated  %s\n", a.amount(b.EstimatedTotal))
	a.printf("Actual     %s\n", a.amount(b.ActualTotal))
	a.printf("Purchased  %s\n", Bar(b.CompletionPercentage, 20))
	if b.IsOverBudget {
		a.printf("Over budget by %s\n", a.amount(b.ActualTotal.Sub(b.EstimatedTotal)))
	} else {
		a.printf("Remaining  %s\n", a.amount(b.Remaining()))
	}
}

// +---------------------+
// |                     |
// |      Expenses       |
// |                     |
// +---------------------+

func (a *App) ListExpenses(ctx context.Context, flag string) error {
	id, err := a.project(flag)
	if err != nil {
		return err
	}

	const empty = "No expenses recorded yet."
	expenses, err := a.client.ListExpenses(ctx, id)
	if err != nil {
		return a.fetchFailed("expense", "ListExpenses", err, "Failed to fetch expenses", empty)
	}

	return a.render(expenses, func() {
		if len(expenses) == 0 {
			a.printf("%s\n", empty)
			return
		}
		amounts := make([]analytics.Money, 0, len(expenses))
		var rows [][]string
		for _, e := range expenses {
			rows = append(rows, []string{e.ID.String(), e.Title, orText(e.Category, "-"), a.money(e.Amount), FormatDate(e.CreatedAt)})
			amounts = append(amounts, e.Amount)
		}
		PrintTable(a.out, []string{"ID", "Title", "Category", "Amount", "Date"}, rows, []string{"", "", "Total:", a.amount(analytics.SumMoney(amounts)), ""})
	})
}

func (a *App) AddExpense(ctx context.Context, flag, title, category, amount string) error {
	id, err := a.project(flag)
	if err != nil {
		return err
	}

	in := api.CreateExpenseIn{
		ProjectID: id,
		Title:     strings.TrimSpace(title),
		Category:  api.Optional(strings.TrimSpace(category)),
		Amount:    parseMoney(amount),
	}
	if err := a.forms.Struct(in); err != nil {
		return err
	}

	if err := a.client.CreateExpense(ctx, in); err != nil {
		return a.fail("expense", "AddExpense", err, "Failed to add expense")
	}

	a.printf("Expense added: %s (%s)\n", in.Title, a.money(in.Amount))
	return a.ListExpenses(ctx, id.String())
}

func (a *App) DeleteExpense(ctx context.Context, flag, expenseID string) error {
	if err := a.client.DeleteExpense(ctx, api.ID(expenseID)); err != nil {
		return a.fail("expense", "DeleteExpense", err, "Failed to delete expense")
	}

	a.printf("Expense %s deleted\n", expenseID)
	if _, err := a.project(flag); err != nil {
		return nil
	}
	return a.ListExpenses(ctx, flag)
}

// +---------------------+
// |                     |
// |      Materials      |
// |                     |
// +---------------------+

// ListMaterials shows the project's materials with a budget summary: the
// estimate comes from the materials, the actuals from purchased shopping
// items.
func (a *App) ListMaterials(ctx context.Context, flag string) error {
	id, err := a.project(flag)
	if err != nil {
		return err
	}

	const empty = "No materials added yet."
	materials, err := a.client.ListMaterials(ctx, id)
	if err != nil {
		return a.fetchFailed("material", "ListMaterials", err, "Failed to fetch data", empty)
	}
	shopping, err := a.client.ListShopping(ctx, id)
	if err != nil {
		return a.fetchFailed("material", "ListMaterials", err, "Failed to fetch data", empty)
	}

	estimated := make([]analytics.Line, 0, len(materials))
	for _, m := range materials {
		estimated = append(estimated, m.BudgetLine())
	}
	purchased := make([]analytics.Line, 0, len(shopping))
	for _, s := range shopping {
		purchased = append(purchased, s.BudgetLine())
	}
	budget := analytics.Combine(estimated, purchased)

	view := struct {
		Materials []api.Material   `json:"materials"`
		Budget    analytics.Budget `json:"budget"`
	}{materials, budget}

	return a.render(view, func() {
		if len(materials) == 0 {
			a.printf("%s\n", empty)
		} else {
			var rows [][]string
			for _, m := range materials {
				rows = append(rows, []string{checkbox(m.Purchased), m.ID.String(), m.Name, a.money(m.EstimatedCost)})
			}
			PrintTable(a.out, []string{"", "ID", "Material", "Estimated"}, rows, nil)
		}
		fmt.Fprintln(a.out)
		a.printBudget(budget)
	})
}

func (a *App) AddMaterial(ctx context.Context, flag, name, cost string) error {
	id, err := a.project(flag)
	if err != nil {
		return err
	}

	in := api.CreateMaterialIn{ProjectID: id, Name: strings.TrimSpace(name), EstimatedCost: parseMoney(cost)}
	if strings.TrimSpace(cost) == "" {
		in.EstimatedCost = analytics.NewMoney(0)
	}
	if err := a.forms.Struct(in); err != nil {
		return err
	}

	if err := a.client.CreateMaterial(ctx, in); err != nil {
		return a.fail("material", "AddMaterial", err, "Failed to add item")
	}

	a.printf("Material added: %s\n", in.Name)
	return a.ListMaterials(ctx, id.String())
}

func (a *App) ToggleMaterial(ctx context.Context, flag, materialID string) error {
	id, err := a.project(flag)
	if err != nil {
		return err
	}

	materials, err := a.client.ListMaterials(ctx, id)
	if err != nil {
		return a.fail("material", "ToggleMaterial", err, "Failed to fetch data")
	}

	for _, m := range materials {
		if m.ID.String() != materialID {
			continue
		}
		if err := a.client.SetMaterialPurchased(ctx, m.ID, !m.Purchased); err != nil {
			return a.fail("material", "ToggleMaterial", err, "Failed to update item")
		}
		return a.ListMaterials(ctx, id.String())
	}
	return fmt.Errorf("material %s not found", materialID)
}

func (a *App) GenerateMaterials(ctx context.Context, flag string) error {
	id, err := a.project(flag)
	if err != nil {
		return err
	}

	generated, err := a.client.GenerateMaterials(ctx, id)
	if err != nil {
		return a.fail("material", "GenerateMaterials", err, "Failed to generate materials")
	}

	a.printf("Generated %d materials\n", len(generated))
	return a.ListMaterials(ctx, id.String())
}

// +---------------------+
// |                     |
// |      Shopping       |
// |                     |
// +---------------------+

func (a *App) ListShopping(ctx context.Context, flag string) error {
	id, err := a.project(flag)
	if err != nil {
		return err
	}

	const empty = "No shopping items."
	items, err := a.client.ListShopping(ctx, id)
	if err != nil {
		return a.fetchFailed("shopping", "ListShopping", err, "Failed to fetch shopping items", empty)
	}

	lines := make([]analytics.Line, 0, len(items))
	for _, s := range items {
		lines = append(lines, s.BudgetLine())
	}
	budget := analytics.Summarize(lines)

	view := struct {
		Items  []api.ShoppingItem `json:"items"`
		Budget analytics.Budget   `json:"budget"`
	}{items, budget}

	return a.render(view, func() {
		if len(items) == 0 {
			a.printf("%s\n", empty)
			return
		}
		var rows [][]string
		for _, s := range items {
			rows = append(rows, []string{checkbox(s.Purchased), s.ID.String(), s.ItemName, a.money(s.EstimatedCost), a.money(s.ActualCost)})
		}
		PrintTable(a.out, []string{"", "ID", "Item", "Estimated", "Actual"}, rows, nil)
		fmt.Fprintln(a.out)
		a.printBudget(budget)
	})
}

func (a *App) AddShoppingItem(ctx context.Context, flag, name, cost string) error {
	id, err := a.project(flag)
	if err != nil {
		return err
	}

	in := api.CreateShoppingIn{ProjectID: id, ItemName: strings.TrimSpace(name), EstimatedCost: parseMoney(cost)}
	if err := a.forms.Struct(in); err != nil {
		return err
	}

	if err := a.client.CreateShoppingItem(ctx, in); err != nil {
		return a.fail("shopping", "AddShoppingItem", err, "Failed to add item")
	}

	a.printf("Item added: %s\n", in.ItemName)
	return a.ListShopping(ctx, id.String())
}

// ToggleShoppingItem flips the purchased flag and records the actual cost
// (actual, else estimated, else zero).
func (a *App) ToggleShoppingItem(ctx context.Context, flag, itemID string) error {
	id, err := a.project(flag)
	if err != nil {
		return err
	}

	items, err := a.client.ListShopping(ctx, id)
	if err != nil {
		return a.fail("shopping", "ToggleShoppingItem", err, "Failed to fetch shopping items")
	}

	for _, s := range items {
		if s.ID.String() != itemID {
			continue
		}
		if err := a.client.ToggleShoppingItem(ctx, s); err != nil {
			return a.fail("shopping", "ToggleShoppingItem", err, "Failed to update item")
		}
		return a.ListShopping(ctx, id.String())
	}
	return fmt.Errorf("shopping item %s not found", itemID)
}

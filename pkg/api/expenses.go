package api

import (
	"context"
	"net/http"
)

func (c *APIClient) ListExpenses(ctx context.Context, projectID ID) ([]Expense, error) {
	return list[Expense](ctx, c, resourcePath("/expenses", projectID))
}

func (c *APIClient) CreateExpense(ctx context.Context, in CreateExpenseIn) error {
	return c.do(ctx, http.MethodPost, "/expenses", in, nil)
}

func (c *APIClient) DeleteExpense(ctx context.Context, id ID) error {
	return c.do(ctx, http.MethodDelete, resourcePath("/expenses", id), nil, nil)
}

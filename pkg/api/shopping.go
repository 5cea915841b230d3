package api

import (
	"context"
	"net/http"
)

func (c *APIClient) ListShopping(ctx context.Context, projectID ID) ([]ShoppingItem, error) {
	return list[ShoppingItem](ctx, c, resourcePath("/shopping", projectID))
}

func (c *APIClient) CreateShoppingItem(ctx context.Context, in CreateShoppingIn) error {
	return c.do(ctx, http.MethodPost, "/shopping", in, nil)
}

// ToggleShoppingItem flips the purchased flag and records the item's
// actual cost, falling back to its estimate.
func (c *APIClient) ToggleShoppingItem(ctx context.Context, item ShoppingItem) error {
	body := shoppingPatchIn{
		Purchased:  !item.Purchased,
		ActualCost: item.ToggleCost(),
	}
	return c.do(ctx, http.MethodPatch, resourcePath("/shopping", item.ID), body, nil)
}

package api

import (
	"context"
	"net/http"
)

func (c *APIClient) ListInventory(ctx context.Context) ([]InventoryItem, error) {
	return list[InventoryItem](ctx, c, "/inventory")
}

func (c *APIClient) CreateInventoryItem(ctx context.Context, in InventoryIn) error {
	return c.do(ctx, http.MethodPost, "/inventory", in, nil)
}

func (c *APIClient) UpdateInventoryItem(ctx context.Context, id ID, in InventoryIn) error {
	return c.do(ctx, http.MethodPut, resourcePath("/inventory", id), in, nil)
}

func (c *APIClient) DeleteInventoryItem(ctx context.Context, id ID) error {
	return c.do(ctx, http.MethodDelete, resourcePath("/inventory", id), nil, nil)
}

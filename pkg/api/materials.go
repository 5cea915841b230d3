package api

import (
	"context"
	"net/http"
)

func (c *APIClient) ListMaterials(ctx context.Context, projectID ID) ([]Material, error) {
	return list[Material](ctx, c, resourcePath("/materials", projectID))
}

func (c *APIClient) CreateMaterial(ctx context.Context, in CreateMaterialIn) error {
	return c.do(ctx, http.MethodPost, "/materials", in, nil)
}

func (c *APIClient) SetMaterialPurchased(ctx context.Context, id ID, purchased bool) error {
	return c.do(ctx, http.MethodPatch, resourcePath("/materials", id), materialPatchIn{Purchased: purchased}, nil)
}

// GenerateMaterials asks the API to derive a material list for the project
// and returns it.
func (c *APIClient) GenerateMaterials(ctx context.Context, projectID ID) ([]Material, error) {
	var raw []Material
	if err := c.do(ctx, http.MethodPost, resourcePath("/materials/auto", projectID), nil, &raw); err != nil {
		return []Material{}, err
	}
	if raw == nil {
		raw = []Material{}
	}
	return raw, nil
}

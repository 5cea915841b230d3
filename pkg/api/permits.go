package api

import (
	"context"
	"net/http"
)

func (c *APIClient) ListPermits(ctx context.Context, projectID ID) ([]Permit, error) {
	return list[Permit](ctx, c, resourcePath("/permits", projectID))
}

func (c *APIClient) CreatePermit(ctx context.Context, in CreatePermitIn) error {
	if in.Status == "" {
		in.Status = PermitPending
	}
	return c.do(ctx, http.MethodPost, "/permits", in, nil)
}

func (c *APIClient) UpdatePermitStatus(ctx context.Context, id ID, status PermitStatus) error {
	return c.do(ctx, http.MethodPatch, resourcePath("/permits", id), permitStatusIn{Status: status}, nil)
}

// FilterPermits keeps permits with the given status; "all" or "" keeps
// everything. A permit without a status counts as pending.
func FilterPermits(permits []Permit, status string) []Permit {
	if status == "" || status == "all" {
		return permits
	}
	out := make([]Permit, 0, len(permits))
	for _, p := range permits {
		if string(p.EffectiveStatus()) == status {
			out = append(out, p)
		}
	}
	return out
}

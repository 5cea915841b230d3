package api

import (
	"context"
	"net/http"
)

func (c *APIClient) ListMembers(ctx context.Context, projectID ID) ([]Member, error) {
	return list[Member](ctx, c, resourcePath("/members", projectID))
}

func (c *APIClient) InviteMember(ctx context.Context, in InviteMemberIn) error {
	if in.Role == "" {
		in.Role = "member"
	}
	return c.do(ctx, http.MethodPost, "/members/invite", in, nil)
}

package api

import (
	"context"
	"net/http"
	"net/url"
)

func (c *APIClient) ListContractors(ctx context.Context, projectID ID) ([]Contractor, error) {
	q := url.Values{}
	q.Set("projectId", projectID.String())
	return list[Contractor](ctx, c, "/contractors?"+q.Encode())
}

func (c *APIClient) CreateContractor(ctx context.Context, in CreateContractorIn) error {
	return c.do(ctx, http.MethodPost, "/contractors", in, nil)
}

func (c *APIClient) ScheduleVisit(ctx context.Context, in ScheduleVisitIn) error {
	return c.do(ctx, http.MethodPost, "/contractors/schedule", in, nil)
}

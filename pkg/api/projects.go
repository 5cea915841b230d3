package api

import (
	"context"
	"net/http"
	"net/url"
)

func (c *APIClient) ListProjects(ctx context.Context) ([]Project, error) {
	return list[Project](ctx, c, "/projects")
}

func (c *APIClient) CreateProject(ctx context.Context, in CreateProjectIn) (Project, error) {
	return send[Project](ctx, c, http.MethodPost, "/projects", in)
}

// FindProject looks a project up by id in the project list; the API has no
// single-project endpoint.
func (c *APIClient) FindProject(ctx context.Context, id ID) (Project, error) {
	projects, err := c.ListProjects(ctx)
	if err != nil {
		return Project{}, err
	}
	for _, p := range projects {
		if p.ID == id {
			return p, nil
		}
	}
	return Project{}, &APIError{Status: http.StatusNotFound, Message: "Project not found"}
}

func (c *APIClient) DashboardSummary(ctx context.Context) (DashboardSummary, error) {
	return get[DashboardSummary](ctx, c, "/dashboard/summary")
}

func (c *APIClient) Inspiration(ctx context.Context, prompt string) (string, error) {
	return send[string](ctx, c, http.MethodPost, "/inspiration", inspirationIn{Prompt: prompt})
}

func resourcePath(prefix string, id ID) string {
	return prefix + "/" + url.PathEscape(id.String())
}

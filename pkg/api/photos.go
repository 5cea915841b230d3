package api

import (
	"context"
	"net/http"
)

func (c *APIClient) ListPhotos(ctx context.Context, projectID ID) ([]Photo, error) {
	return list[Photo](ctx, c, resourcePath("/photos", projectID))
}

func (c *APIClient) CreatePhoto(ctx context.Context, in CreatePhotoIn) error {
	return c.do(ctx, http.MethodPost, "/photos", in, nil)
}

func (c *APIClient) DeletePhoto(ctx context.Context, id ID) error {
	return c.do(ctx, http.MethodDelete, resourcePath("/photos", id), nil, nil)
}

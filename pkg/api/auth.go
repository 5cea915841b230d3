package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Login exchanges credentials for a bearer token. The token comes back at
// the top level of the body rather than inside data.
func (c *APIClient) Login(ctx context.Context, in Credentials) (string, error) {
	res, err := c.send(ctx, http.MethodPost, "/auth/login", in)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if !ok(res.StatusCode) {
		return "", decodeError(res)
	}

	var body struct {
		Token string `json:"token"`
		Data  struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("error decoding login response: %w", err)
	}

	token := body.Token
	if token == "" {
		token = body.Data.Token
	}
	if token == "" {
		return "", fmt.Errorf("login response carried no token")
	}
	return token, nil
}

func (c *APIClient) Signup(ctx context.Context, in Credentials) error {
	return c.do(ctx, http.MethodPost, "/auth/signup", in, nil)
}

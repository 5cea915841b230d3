// Package api is the typed client of the renovation REST API. Every call goes
// through one decoding layer that unwraps the {data} envelope on success and
// turns {message} bodies into *APIError.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type (
	envelope struct {
		Data    json.RawMessage `json:"data"`
		Message string          `json:"message,omitempty"`
	}

	errorBody struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
)

type APIClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *logrus.Logger
}

func NewAPIClient(baseURL string, timeout time.Duration, log *logrus.Logger) *APIClient {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SetToken sets the bearer token sent with every request.
func (c *APIClient) SetToken(token string) {
	c.token = token
}

func (c *APIClient) BaseURL() string {
	return c.baseURL
}

func (c *APIClient) send(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reqBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("error encoding request: %w", err)
		}
		reader = bytes.NewReader(reqBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.log.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"request_id": req.Header.Get("X-Request-ID"),
	}).Debug("api request")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	return res, nil
}

// do sends a request and decodes the data member of the response envelope
// into out. A nil out discards the body.
func (c *APIClient) do(ctx context.Context, method, path string, body, out any) error {
	res, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if !ok(res.StatusCode) {
		return decodeError(res)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("error decoding response: %w", err)
	}

	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("error decoding response data: %w", err)
	}
	return nil
}

func ok(status int) bool {
	return status >= 200 && status < 300
}

func decodeError(res *http.Response) error {
	apiErr := &APIError{Status: res.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return apiErr
	}
	apiErr.Message = body.Message
	if apiErr.Message == "" {
		apiErr.Message = body.Error
	}
	return apiErr
}

func get[T any](ctx context.Context, c *APIClient, path string) (T, error) {
	var out T
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// list fetches a collection. Anything other than a JSON array in the data
// member is an empty collection.
func list[T any](ctx context.Context, c *APIClient, path string) ([]T, error) {
	raw, err := get[json.RawMessage](ctx, c, path)
	if err != nil {
		return []T{}, err
	}

	items := []T{}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return []T{}, fmt.Errorf("error decoding collection: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func send[T any](ctx context.Context, c *APIClient, method, path string, body any) (T, error) {
	var out T
	err := c.do(ctx, method, path, body, &out)
	return out, err
}

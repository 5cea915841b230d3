package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"sync"

	"golang.org/x/sync/errgroup"
)

type Insights struct {
	ProjectID ID
	Progress  ProgressEstimation
	Analytics ProjectAnalytics
}

// Insights fetches progress estimation and analytics in parallel. Either
// failure fails the whole fetch.
func (c *APIClient) Insights(ctx context.Context, projectID ID) (Insights, error) {
	out := Insights{ProjectID: projectID}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := get[ProgressEstimation](gctx, c, resourcePath("/projects", projectID)+"/progress-estimation")
		out.Progress = p
		return err
	})
	g.Go(func() error {
		a, err := get[ProjectAnalytics](gctx, c, resourcePath("/projects", projectID)+"/analytics")
		out.Analytics = a
		return err
	})
	if err := g.Wait(); err != nil {
		return Insights{ProjectID: projectID}, err
	}

	if p := out.Progress.ProjectID; p != "" && p != projectID {
		return Insights{ProjectID: projectID}, fmt.Errorf("progress for project %s, want %s: %w", p, projectID, ErrStale)
	}
	if a := out.Analytics.ProjectID; a != "" && a != projectID {
		return Insights{ProjectID: projectID}, fmt.Errorf("analytics for project %s, want %s: %w", a, projectID, ErrStale)
	}
	return out, nil
}

// InsightsLoader discards results of loads that were superseded by a later
// Load or Invalidate before they completed.
type InsightsLoader struct {
	client *APIClient

	mu  sync.Mutex
	gen uint64
}

func NewInsightsLoader(client *APIClient) *InsightsLoader {
	return &InsightsLoader{client: client}
}

func (l *InsightsLoader) next() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	return l.gen
}

func (l *InsightsLoader) current(gen uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen == gen
}

// Invalidate marks every in-flight load stale, e.g. after the selected
// project changed.
func (l *InsightsLoader) Invalidate() {
	l.next()
}

func (l *InsightsLoader) Load(ctx context.Context, projectID ID) (Insights, error) {
	gen := l.next()
	ins, err := l.client.Insights(ctx, projectID)
	if !l.current(gen) {
		return Insights{}, ErrStale
	}
	return ins, err
}

type Report struct {
	ProjectID   ID
	ContentType string
	Body        []byte
}

func (r Report) IsJSON() bool {
	mediaType, _, err := mime.ParseMediaType(r.ContentType)
	return err == nil && mediaType == "application/json"
}

// Filename is project-report-<id>.json for JSON payloads and .pdf for
// anything else.
func (r Report) Filename() string {
	if r.IsJSON() {
		return fmt.Sprintf("project-report-%s.json", r.ProjectID)
	}
	return fmt.Sprintf("project-report-%s.pdf", r.ProjectID)
}

// Contents returns the bytes to save: JSON re-indented, anything else as
// received.
func (r Report) Contents() ([]byte, error) {
	if !r.IsJSON() {
		return r.Body, nil
	}

	body := bytes.TrimSpace(r.Body)
	if len(body) == 0 {
		body = []byte("{}")
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return nil, fmt.Errorf("error formatting report: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (c *APIClient) DownloadReport(ctx context.Context, projectID ID) (Report, error) {
	res, err := c.send(ctx, http.MethodGet, resourcePath("/report", projectID), nil)
	if err != nil {
		return Report{}, err
	}
	defer res.Body.Close()

	if !ok(res.StatusCode) {
		return Report{}, decodeError(res)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return Report{}, fmt.Errorf("error reading report: %w", err)
	}

	return Report{
		ProjectID:   projectID,
		ContentType: res.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

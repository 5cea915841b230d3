package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"reno/pkg/api"
	"reno/pkg/config"
	"reno/pkg/session"
	"reno/pkg/store"
)

type fakePicker struct {
	choice string
	prompt string
	seen   []Option
}

func (p *fakePicker) Pick(prompt string, options []Option) (string, error) {
	p.prompt = prompt
	p.seen = options
	if p.choice == "" {
		return "", errCancelled
	}
	return p.choice, nil
}

// routes maps "METHOD /path" to a JSON response body.
type routes map[string]string

func (rt routes) handler(t *testing.T, hits *int32) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if hits != nil && r.Method != http.MethodGet {
			atomic.AddInt32(hits, 1)
		}
		body, ok := rt[r.Method+" "+r.URL.Path]
		if !ok {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}
}

func newTestApp(t *testing.T, h http.Handler) (*App, *bytes.Buffer, *fakePicker) {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)

	repo, err := store.NewRepo(filepath.Join(t.TempDir(), "reno.db"))
	if err != nil {
		t.Fatalf("NewRepo failed: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	cfg := &config.Config{
		APIURL:       srv.URL + "/api",
		Timeout:      5 * time.Second,
		PollInterval: time.Minute,
		PhoneRegion:  "IN",
		PhotoMaxEdge: 1600,
		Currency:     "INR",
	}

	out := &bytes.Buffer{}
	picker := &fakePicker{}
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)
	a := &App{
		out:    out,
		picker: picker,
		format: "table",
		now:    func() time.Time { return fixed },
	}
	if err := a.wire(cfg, log, repo); err != nil {
		t.Fatalf("wire failed: %v", err)
	}
	if err := a.session.SetToken("test-token"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}
	a.client.SetToken("test-token")
	return a, out, picker
}

func selectProject(t *testing.T, a *App, id, name string) {
	t.Helper()
	if err := a.session.SetSelectedProject(&api.Project{ID: api.ID(id), Name: name}); err != nil {
		t.Fatalf("SetSelectedProject failed: %v", err)
	}
}

func TestListExpensesPrintsTotal(t *testing.T) {
	a, out, _ := newTestApp(t, routes{
		"GET /api/expenses/p1": `{"data":[
			{"id":"e1","title":"Tiles","category":"flooring","amount":1200.5,"created_at":"2024-05-02"},
			{"id":"e2","title":"Paint","amount":"300"}
		]}`,
	}.handler(t, nil))
	selectProject(t, a, "p1", "Kitchen")

	if err := a.ListExpenses(context.Background(), ""); err != nil {
		t.Fatalf("ListExpenses failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{"Tiles", "flooring", "INR 1,200.50", "May 02, 2024", "Total:", "INR 1,500.50"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestAddExpenseValidation(t *testing.T) {
	var hits int32
	a, _, _ := newTestApp(t, routes{}.handler(t, &hits))
	selectProject(t, a, "p1", "Kitchen")

	tests := []struct {
		name   string
		title  string
		amount string
		want   string
	}{
		{"missing title", "", "10", "Expense title is required"},
		{"bad amount", "Tiles", "abc", "Valid amount is required"},
		{"blank amount", "Tiles", "", "Valid amount is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.AddExpense(context.Background(), "", tt.title, "", tt.amount)
			if err == nil || err.Error() != tt.want {
				t.Errorf("expected %q, got %v", tt.want, err)
			}
		})
	}

	if n := atomic.LoadInt32(&hits); n != 0 {
		t.Errorf("expected no writes, got %d", n)
	}
}

func TestAddExpenseRefetches(t *testing.T) {
	var posted api.CreateExpenseIn
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/expenses", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&posted); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("GET /api/expenses/p1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":[{"id":"e1","title":"Tiles","amount":99}]}`)
	})

	a, out, _ := newTestApp(t, mux)
	selectProject(t, a, "p1", "Kitchen")

	if err := a.AddExpense(context.Background(), "", "  Tiles ", "", "99"); err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}

	if posted.Title != "Tiles" || posted.ProjectID != "p1" || posted.Category != nil {
		t.Errorf("unexpected payload: %+v", posted)
	}
	if !posted.Amount.Amount.Equal(decimal.NewFromInt(99)) {
		t.Errorf("expected amount 99, got %s", posted.Amount)
	}
	if !strings.Contains(out.String(), "Expense added: Tiles (INR 99)") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestFetchFailureShowsEmptyState(t *testing.T) {
	h := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"message":"database unavailable"}`)
	}
	a, out, _ := newTestApp(t, http.HandlerFunc(h))
	selectProject(t, a, "p1", "Kitchen")

	if err := a.ListExpenses(context.Background(), ""); err != nil {
		t.Fatalf("expected inline failure, got %v", err)
	}
	if got := out.String(); !strings.Contains(got, "database unavailable") || !strings.Contains(got, "No expenses recorded yet.") {
		t.Errorf("unexpected output:\n%s", got)
	}

	a.format = "json"
	err := a.ListExpenses(context.Background(), "")
	if err == nil || err.Error() != "database unavailable" {
		t.Errorf("expected API message as error, got %v", err)
	}
}

func TestProjectScopedViewsNeedSelection(t *testing.T) {
	a, _, _ := newTestApp(t, routes{}.handler(t, nil))

	err := a.ListPermits(context.Background(), "", "all")
	if !errors.Is(err, session.ErrNoProject) {
		t.Errorf("expected ErrNoProject, got %v", err)
	}
}

func TestListMaterialsBudget(t *testing.T) {
	a, out, _ := newTestApp(t, routes{
		"GET /api/materials/p1": `{"data":[{"id":"m1","name":"Cement","estimated_cost":500,"purchased":true}]}`,
		"GET /api/shopping/p1": `{"data":[
			{"id":"s1","item_name":"Tiles","estimated_cost":200,"actual_cost":250,"purchased":true},
			{"id":"s2","item_name":"Grout","estimated_cost":100,"purchased":false}
		]}`,
	}.handler(t, nil))
	selectProject(t, a, "p1", "Kitchen")

	if err := a.ListMaterials(context.Background(), ""); err != nil {
		t.Fatalf("ListMaterials failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{"[x]", "Cement", "Estimated  INR 500", "Actual     INR 250", "50%", "Remaining  INR 250"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestListMaterialsOverBudget(t *testing.T) {
	a, out, _ := newTestApp(t, routes{
		"GET /api/materials/p1": `{"data":[{"id":"m1","name":"Cement","estimated_cost":100,"purchased":false}]}`,
		"GET /api/shopping/p1":  `{"data":[{"id":"s1","item_name":"Tiles","estimated_cost":90,"actual_cost":160,"purchased":true}]}`,
	}.handler(t, nil))
	selectProject(t, a, "p1", "Kitchen")

	if err := a.ListMaterials(context.Background(), ""); err != nil {
		t.Fatalf("ListMaterials failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{"[ ]", "Estimated  INR 100", "Actual     INR 160", "100%", "Over budget by INR 60"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestListPermitsFilter(t *testing.T) {
	a, out, _ := newTestApp(t, routes{
		"GET /api/permits/p1": `{"data":[
			{"id":1,"permit_name":"Building","status":"approved","approval_date":"2024-03-01"},
			{"id":2,"permit_name":"Zoning","status":"pending"},
			{"id":3,"permit_name":"Electrical"}
		]}`,
	}.handler(t, nil))
	selectProject(t, a, "p1", "Kitchen")

	if err := a.ListPermits(context.Background(), "", "pending"); err != nil {
		t.Fatalf("ListPermits failed: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Zoning") || !strings.Contains(got, "Electrical") {
		t.Errorf("pending permits missing:\n%s", got)
	}
	if strings.Contains(got, "Building") {
		t.Errorf("approved permit shown under pending filter:\n%s", got)
	}

	out.Reset()
	if err := a.ListPermits(context.Background(), "", "rejected"); err != nil {
		t.Fatalf("ListPermits failed: %v", err)
	}
	if !strings.Contains(out.String(), "No permits found for this filter.") {
		t.Errorf("expected empty state, got:\n%s", out.String())
	}

	if err := a.ListPermits(context.Background(), "", "expired"); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestListRemindersDue(t *testing.T) {
	a, out, _ := newTestApp(t, routes{
		"GET /api/reminders": `{"data":[
			{"id":"r1","title":"Call plumber","reminder_date":"2024-05-30T09:00:00"},
			{"id":"r2","title":"Order paint","description":"Two coats","reminder_date":"2024-07-01T10:00:00"},
			{"id":"r3","title":"Old one","reminder_date":"2024-01-01","completed":true}
		]}`,
	}.handler(t, nil))

	if err := a.ListReminders(context.Background()); err != nil {
		t.Fatalf("ListReminders failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{"Call plumber", "No description", "Due now", "Order paint", "Scheduled"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Old one") {
		t.Errorf("completed reminder shown:\n%s", got)
	}
}

func TestSelectProjectWithPicker(t *testing.T) {
	a, out, picker := newTestApp(t, routes{
		"GET /api/projects": `{"data":[
			{"id":"p1","name":"Kitchen","total_budget":5000},
			{"id":"p2","name":"Loft","total_budget":"12000"}
		]}`,
	}.handler(t, nil))
	picker.choice = "p2"

	if err := a.SelectProject(context.Background(), ""); err != nil {
		t.Fatalf("SelectProject failed: %v", err)
	}

	if len(picker.seen) != 2 || picker.seen[1].Label != "Loft" {
		t.Errorf("unexpected options: %+v", picker.seen)
	}
	p, ok := a.session.SelectedProject()
	if !ok || p.ID != "p2" {
		t.Fatalf("expected p2 selected, got %+v", p)
	}
	if !strings.Contains(out.String(), "Selected project: Loft") {
		t.Errorf("unexpected output:\n%s", out.String())
	}

	// the selection survives a reload of the session
	reloaded, err := session.Load(a.repo)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p, ok := reloaded.SelectedProject(); !ok || p.Name != "Loft" {
		t.Errorf("selection not persisted: %+v", p)
	}

	picker.choice = ""
	if err := a.SelectProject(context.Background(), ""); !errors.Is(err, errCancelled) {
		t.Errorf("expected errCancelled, got %v", err)
	}
}

func TestListProjectsDropsStaleSelection(t *testing.T) {
	a, out, _ := newTestApp(t, routes{
		"GET /api/projects": `{"data":[{"id":"p1","name":"Kitchen","total_budget":5000,"status":"in_progress"}]}`,
	}.handler(t, nil))
	selectProject(t, a, "gone", "Deleted")

	if err := a.ListProjects(context.Background()); err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}

	if _, ok := a.session.SelectedProject(); ok {
		t.Error("expected stale selection to be cleared")
	}
	if got := out.String(); !strings.Contains(got, "1 projects") || !strings.Contains(got, "INR 5,000") {
		t.Errorf("unexpected output:\n%s", got)
	}
}

func TestExportJSON(t *testing.T) {
	a, out, _ := newTestApp(t, routes{
		"GET /api/expenses/p1": `{"data":[
			{"id":"e1","title":"Tiles","amount":120},
			{"id":"e2","title":"Paint","amount":"30.5"}
		]}`,
	}.handler(t, nil))
	selectProject(t, a, "p1", "Kitchen")

	path := filepath.Join(t.TempDir(), "expenses.json")
	if err := a.Export(context.Background(), "", "expenses", path, ""); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	var rows []map[string]any
	if err := json.Unmarshal(raw, &rows); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(rows) != 2 || rows[0]["title"] != "Tiles" || rows[1]["amount"] != 30.5 {
		t.Errorf("unexpected rows: %v", rows)
	}
	if !strings.Contains(out.String(), "Exported 2 expenses") {
		t.Errorf("unexpected output:\n%s", out.String())
	}

	if err := a.Export(context.Background(), "", "invoices", "", ""); err == nil {
		t.Error("expected error for unknown resource")
	}
}

func TestRenderJSON(t *testing.T) {
	a, out, _ := newTestApp(t, routes{
		"GET /api/inventory": `{"data":[{"_id":"i1","name":"Drill","quantity":2,"unit":"pcs"}]}`,
	}.handler(t, nil))
	a.format = "json"

	if err := a.ListInventory(context.Background()); err != nil {
		t.Fatalf("ListInventory failed: %v", err)
	}

	var items []api.InventoryItem
	if err := json.Unmarshal(out.Bytes(), &items); err != nil {
		t.Fatalf("invalid json output: %v\n%s", err, out.String())
	}
	if len(items) != 1 || items[0].ID != "i1" || items[0].Name != "Drill" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		currency string
		amount   string
		want     string
	}{
		{"INR", "0", "INR 0"},
		{"INR", "1200", "INR 1,200"},
		{"INR", "1234567.891", "INR 1,234,567.89"},
		{"USD", "-45.5", "USD -45.50"},
		{"", "999", "999"},
	}

	for _, tt := range tests {
		got := FormatMoney(tt.currency, decimal.RequireFromString(tt.amount))
		if got != tt.want {
			t.Errorf("FormatMoney(%q, %s) = %q, want %q", tt.currency, tt.amount, got, tt.want)
		}
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		percent int
		want    string
	}{
		{0, "[..........] 0%"},
		{50, "[#####.....] 50%"},
		{130, "[##########] 130%"},
		{-5, "[..........] -5%"},
	}

	for _, tt := range tests {
		if got := Bar(tt.percent, 10); got != tt.want {
			t.Errorf("Bar(%d) = %q, want %q", tt.percent, got, tt.want)
		}
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, []string{"Name", "Cost"}, [][]string{{"Tiles", "INR 1,200"}, {"Ölfarbe", "9"}}, nil)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines without footer, got %d:\n%s", len(lines), buf.String())
	}
	if lines[0] != "Name   \tCost     \t" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[2] != "Ölfarbe\t9        \t" {
		t.Errorf("unexpected row %q", lines[2])
	}

	buf.Reset()
	PrintTable(&buf, []string{"A"}, [][]string{{"x"}}, []string{"Total:"})
	if !strings.HasSuffix(buf.String(), "Total:\t\n") {
		t.Errorf("footer missing:\n%s", buf.String())
	}
}

func TestZeroAmountsAccepted(t *testing.T) {
	var expense api.CreateExpenseIn
	var material api.CreateMaterialIn
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/expenses", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&expense); err != nil {
			t.Errorf("decode expense: %v", err)
		}
	})
	mux.HandleFunc("POST /api/materials", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&material); err != nil {
			t.Errorf("decode material: %v", err)
		}
	})
	for _, path := range []string{"GET /api/expenses/p1", "GET /api/materials/p1", "GET /api/shopping/p1"} {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"data":[]}`)
		})
	}

	a, _, _ := newTestApp(t, mux)
	selectProject(t, a, "p1", "Kitchen")

	if err := a.AddExpense(context.Background(), "", "Donated tiles", "", "0"); err != nil {
		t.Fatalf("AddExpense with zero amount failed: %v", err)
	}
	if !expense.Amount.Valid || !expense.Amount.Amount.IsZero() {
		t.Errorf("expected amount 0, got %+v", expense.Amount)
	}

	// a blank cost is sent as zero
	if err := a.AddMaterial(context.Background(), "", "Sand", ""); err != nil {
		t.Fatalf("AddMaterial without cost failed: %v", err)
	}
	if material.Name != "Sand" || !material.EstimatedCost.Valid || !material.EstimatedCost.Amount.IsZero() {
		t.Errorf("unexpected material payload: %+v", material)
	}
}

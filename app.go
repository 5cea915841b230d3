package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"reno/pkg/analytics"
	"reno/pkg/api"
	"reno/pkg/config"
	"reno/pkg/forms"
	"reno/pkg/session"
	"reno/pkg/store"
)

type App struct {
	cfg      *config.Config
	log      *logrus.Logger
	repo     *store.Repo
	session  *session.State
	client   *api.APIClient
	insights *api.InsightsLoader
	forms    *forms.Validator
	picker   Picker
	out      io.Writer
	now      func() time.Time

	// output format for list views: table, yaml or json
	format string
}

// Open loads config and wires the app. It is a no-op once the app is open.
func (a *App) Open(configPath string) error {
	if a.client != nil {
		return nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log := config.SetupLogger(cfg.LogLevel, os.Stderr)

	repo, err := store.NewRepo(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open local store: %w", err)
	}

	return a.wire(cfg, log, repo)
}

func (a *App) wire(cfg *config.Config, log *logrus.Logger, repo *store.Repo) error {
	sess, err := session.Load(repo)
	if err != nil {
		return err
	}

	client := api.NewAPIClient(cfg.APIURL, cfg.Timeout, log)
	client.SetToken(sess.Token())

	a.cfg = cfg
	a.log = log
	a.repo = repo
	a.session = sess
	a.client = client
	a.insights = api.NewInsightsLoader(client)
	a.forms = forms.New(cfg.PhoneRegion)
	if a.picker == nil {
		a.picker = menuPicker{}
	}
	if a.out == nil {
		a.out = os.Stdout
	}
	if a.now == nil {
		a.now = time.Now
	}
	return nil
}

func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}

// fail logs err with its context and returns the message a view shows for
// it. Validation and session errors are already user-facing.
func (a *App) fail(module, funcName string, err error, fallback string) error {
	var verr *forms.ValidationError
	if errors.As(err, &verr) || errors.Is(err, session.ErrNoProject) || errors.Is(err, session.ErrNotAuthenticated) {
		return err
	}
	config.LogError(a.log, module, funcName, fallback, nil, err)
	return errors.New(api.ErrorMessage(err, fallback))
}

// fetchFailed reports a failed list fetch inline and falls back to the empty
// state. Structured output gets the error instead.
func (a *App) fetchFailed(module, funcName string, err error, fallback, empty string) error {
	if a.format != "" && a.format != "table" {
		return a.fail(module, funcName, err, fallback)
	}
	if errors.Is(err, session.ErrNoProject) {
		return err
	}
	config.LogError(a.log, module, funcName, fallback, nil, err)
	fmt.Fprintln(a.out, api.ErrorMessage(err, fallback))
	fmt.Fprintln(a.out, empty)
	return nil
}

// render prints v as yaml or json when requested, and calls table otherwise.
func (a *App) render(v any, table func()) error {
	switch a.format {
	case "", "table":
		table()
		return nil
	case "json":
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		// through json so field names match the API
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return err
		}
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q (want table, yaml or json)", a.format)
}

func (a *App) project(flag string) (api.ID, error) {
	return a.session.ResolveProject(flag)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// +---------------------+
// |                     |
// |        Auth         |
// |                     |
// +---------------------+

func (a *App) Login(ctx context.Context, email, password string) error {
	in := api.Credentials{Email: strings.TrimSpace(email), Password: password}
	if err := a.forms.Struct(in); err != nil {
		return err
	}

	token, err := a.client.Login(ctx, in)
	if err != nil {
		return a.fail("auth", "Login", err, "Login failed")
	}

	if err := a.session.SetToken(token); err != nil {
		return err
	}
	a.client.SetToken(token)

	a.printf("Logged in as %s\n", in.Email)
	return nil
}

func (a *App) Signup(ctx context.Context, email, password string) error {
	in := api.Credentials{Email: strings.TrimSpace(email), Password: password}
	if err := a.forms.Struct(in); err != nil {
		return err
	}

	if err := a.client.Signup(ctx, in); err != nil {
		return a.fail("auth", "Signup", err, "Signup failed")
	}

	a.printf("Account created for %s. Log in with 'reno auth login'.\n", in.Email)
	return nil
}

func (a *App) Logout() error {
	if err := a.session.Logout(); err != nil {
		return err
	}
	a.client.SetToken("")

	a.printf("Logged out\n")
	return nil
}

func (a *App) Status() error {
	if !a.session.Authenticated() {
		a.printf("Not logged in\n")
	} else if c, err := a.session.Claims(); err != nil {
		a.printf("Logged in\n")
	} else {
		a.printf("Logged in as %s\n", orText(c.Email, c.Subject))
		if !c.ExpiresAt.IsZero() {
			state := "expires"
			if c.ExpiresAt.Before(a.now()) {
				state = "expired"
			}
			a.printf("Token %s %s\n", state, FormatTime(c.ExpiresAt))
		}
	}

	if p, ok := a.session.SelectedProject(); ok {
		a.printf("Selected project: %s (%s)\n", p.Name, p.ID)
	} else {
		a.printf("No project selected\n")
	}
	a.printf("API: %s\n", a.client.BaseURL())
	return nil
}

// +---------------------+
// |                     |
// |      Dashboard      |
// |                     |
// +---------------------+

func (a *App) Dashboard(ctx context.Context) error {
	summary, err := a.client.DashboardSummary(ctx)
	if err != nil {
		return a.fetchFailed("dashboard", "Dashboard", err, "Failed to load dashboard data", "No renovation projects yet")
	}

	stats := analytics.Dashboard(analytics.Summary{
		TotalProjects:     summary.TotalProjects,
		ActiveProjects:    summary.ActiveProjects,
		CompletedProjects: summary.CompletedProjects,
		OverdueTasks:      summary.OverdueTasks,
		TotalBudget:       summary.TotalBudget,
		TotalSpent:        summary.TotalSpent,
	})

	return a.render(summary, func() {
		rows := [][]string{
			{"Projects", fmt.Sprint(summary.TotalProjects), Bar(100, 20)},
			{"Active", fmt.Sprint(summary.ActiveProjects), Bar(stats.ActiveShare, 20)},
			{"Completed", fmt.Sprint(summary.CompletedProjects), Bar(stats.CompletedShare, 20)},
			{"Overdue Tasks", fmt.Sprint(summary.OverdueTasks), Bar(stats.OverdueGauge, 20)},
		}
		PrintTable(a.out, []string{"Metric", "Value", "Scale"}, rows, nil)
		fmt.Fprintln(a.out)

		budget := [][]string{
			{"Total budget", a.amount(summary.TotalBudget.OrZero())},
			{"Spent", a.amount(summary.TotalSpent.OrZero()) + "  " + Bar(stats.SpendBar, 20)},
			{"Remaining", a.amount(stats.Remaining)},
		}
		PrintTable(a.out, []string{"Budget", ""}, budget, nil)
	})
}

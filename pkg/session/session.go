// Package session holds the client's application state: the bearer token
// and the selected project. State is loaded from and saved to a KV store
// explicitly; nothing else reads those keys.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"

	"reno/pkg/api"
)

const (
	TokenKey           = "token"
	SelectedProjectKey = "selectedProject"
)

var (
	ErrNotAuthenticated = errors.New("not logged in, run 'reno auth login'")
	ErrNoProject        = errors.New("select a project first with 'reno project select'")
)

// KV is the persistence boundary of the session.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

type State struct {
	kv      KV
	token   string
	project *api.Project
}

// Load reads the session from kv. A selected project blob that no longer
// decodes is treated as no selection.
func Load(kv KV) (*State, error) {
	s := &State{kv: kv}

	token, _, err := kv.Get(TokenKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read token: %w", err)
	}
	s.token = token

	raw, ok, err := kv.Get(SelectedProjectKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read selected project: %w", err)
	}
	if ok && raw != "" {
		var p api.Project
		if err := json.Unmarshal([]byte(raw), &p); err == nil && p.ID != "" {
			s.project = &p
		}
	}

	return s, nil
}

func (s *State) Token() string {
	return s.token
}

// Authenticated only checks that a token is present; it is never validated.
func (s *State) Authenticated() bool {
	return s.token != ""
}

func (s *State) RequireAuth() error {
	if !s.Authenticated() {
		return ErrNotAuthenticated
	}
	return nil
}

func (s *State) SetToken(token string) error {
	if token == "" {
		return s.Logout()
	}
	if err := s.kv.Set(TokenKey, token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	s.token = token
	return nil
}

// Logout forgets the token. The selected project survives, as it does in
// the browser client.
func (s *State) Logout() error {
	if err := s.kv.Delete(TokenKey); err != nil {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	s.token = ""
	return nil
}

func (s *State) SelectedProject() (api.Project, bool) {
	if s.project == nil {
		return api.Project{}, false
	}
	return *s.project, true
}

// SetSelectedProject stores p as the selected project; nil clears it.
func (s *State) SetSelectedProject(p *api.Project) error {
	if p == nil {
		if err := s.kv.Delete(SelectedProjectKey); err != nil {
			return fmt.Errorf("failed to clear selected project: %w", err)
		}
		s.project = nil
		return nil
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}
	if err := s.kv.Set(SelectedProjectKey, string(raw)); err != nil {
		return fmt.Errorf("failed to save selected project: %w", err)
	}
	cp := *p
	s.project = &cp
	return nil
}

// ResolveProject picks the project a command works on: the explicit id when
// given, the selected project otherwise.
func (s *State) ResolveProject(explicit string) (api.ID, error) {
	if explicit != "" {
		return api.ID(explicit), nil
	}
	if p, ok := s.SelectedProject(); ok {
		return p.ID, nil
	}
	return "", ErrNoProject
}

type Claims struct {
	Subject   string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Claims decodes the token payload without verifying its signature. It is
// for display only.
func (s *State) Claims() (Claims, error) {
	if s.token == "" {
		return Claims{}, ErrNotAuthenticated
	}

	mc := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(s.token, mc); err != nil {
		return Claims{}, fmt.Errorf("token is not a JWT: %w", err)
	}

	var c Claims
	for _, key := range []string{"sub", "id", "userId", "user_id"} {
		if v, ok := mc[key]; ok && v != nil {
			c.Subject = fmt.Sprint(v)
			break
		}
	}
	if v, ok := mc["email"].(string); ok {
		c.Email = v
	}
	if v, ok := mc["iat"].(float64); ok {
		c.IssuedAt = time.Unix(int64(v), 0)
	}
	if v, ok := mc["exp"].(float64); ok {
		c.ExpiresAt = time.Unix(int64(v), 0)
	}
	return c, nil
}

package session

import (
	"errors"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"

	"reno/pkg/analytics"
	"reno/pkg/api"
)

type fakeKV struct {
	values map[string]string
	err    error
}

func newFakeKV() *fakeKV {
	return &fakeKV{values: make(map[string]string)}
}

func (f *fakeKV) Get(key string) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeKV) Set(key, value string) error {
	if f.err != nil {
		return f.err
	}
	f.values[key] = value
	return nil
}

func (f *fakeKV) Delete(key string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.values, key)
	return nil
}

func TestLoadEmpty(t *testing.T) {
	s, err := Load(newFakeKV())
	if err != nil {
		t.Fatal(err)
	}
	if s.Authenticated() {
		t.Error("empty session should not be authenticated")
	}
	if !errors.Is(s.RequireAuth(), ErrNotAuthenticated) {
		t.Error("RequireAuth should fail")
	}
	if _, ok := s.SelectedProject(); ok {
		t.Error("no project expected")
	}
	if _, err := s.ResolveProject(""); !errors.Is(err, ErrNoProject) {
		t.Errorf("expected ErrNoProject, got %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	kv := newFakeKV()
	s, _ := Load(kv)

	if err := s.SetToken("tok"); err != nil {
		t.Fatal(err)
	}
	p := &api.Project{ID: "p1", Name: "Kitchen", TotalBudget: analytics.NewMoney(5000)}
	if err := s.SetSelectedProject(p); err != nil {
		t.Fatal(err)
	}

	reloaded, err := Load(kv)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Token() != "tok" {
		t.Errorf("Token = %q", reloaded.Token())
	}
	got, ok := reloaded.SelectedProject()
	if !ok || got.ID != "p1" || got.Name != "Kitchen" {
		t.Errorf("SelectedProject = %+v, %v", got, ok)
	}
	if got.TotalBudget.Amount.IntPart() != 5000 {
		t.Errorf("TotalBudget = %s", got.TotalBudget)
	}

	id, err := reloaded.ResolveProject("")
	if err != nil || id != "p1" {
		t.Errorf("ResolveProject = %q, %v", id, err)
	}
	id, _ = reloaded.ResolveProject("p9")
	if id != "p9" {
		t.Errorf("explicit project ignored: %q", id)
	}
}

func TestClearProject(t *testing.T) {
	kv := newFakeKV()
	s, _ := Load(kv)
	_ = s.SetSelectedProject(&api.Project{ID: "p1"})

	if err := s.SetSelectedProject(nil); err != nil {
		t.Fatal(err)
	}
	if _, ok := kv.values[SelectedProjectKey]; ok {
		t.Error("key should be removed")
	}
	if _, ok := s.SelectedProject(); ok {
		t.Error("selection should be cleared")
	}
}

func TestCorruptProjectBlob(t *testing.T) {
	kv := newFakeKV()
	kv.values[SelectedProjectKey] = "{not json"
	kv.values[TokenKey] = "tok"

	s, err := Load(kv)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.SelectedProject(); ok {
		t.Error("corrupt blob should load as no selection")
	}
	if !s.Authenticated() {
		t.Error("token should still load")
	}
}

func TestLogoutKeepsProject(t *testing.T) {
	kv := newFakeKV()
	s, _ := Load(kv)
	_ = s.SetToken("tok")
	_ = s.SetSelectedProject(&api.Project{ID: "p1"})

	if err := s.Logout(); err != nil {
		t.Fatal(err)
	}
	if s.Authenticated() {
		t.Error("still authenticated after logout")
	}
	if _, ok := kv.values[TokenKey]; ok {
		t.Error("token not removed")
	}
	if _, ok := s.SelectedProject(); !ok {
		t.Error("selected project should survive logout")
	}
}

func TestLoadError(t *testing.T) {
	kv := newFakeKV()
	kv.err = errors.New("disk gone")
	if _, err := Load(kv); err == nil {
		t.Error("expected error")
	}
}

func TestClaims(t *testing.T) {
	exp := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    42,
		"email": "owner@example.com",
		"exp":   exp.Unix(),
	}).SignedString([]byte("whatever"))
	if err != nil {
		t.Fatal(err)
	}

	s, _ := Load(newFakeKV())
	_ = s.SetToken(token)

	c, err := s.Claims()
	if err != nil {
		t.Fatalf("Claims failed: %v", err)
	}
	if c.Subject != "42" {
		t.Errorf("Subject = %q", c.Subject)
	}
	if c.Email != "owner@example.com" {
		t.Errorf("Email = %q", c.Email)
	}
	if !c.ExpiresAt.Equal(exp) {
		t.Errorf("ExpiresAt = %v", c.ExpiresAt)
	}
}

func TestClaimsOpaqueToken(t *testing.T) {
	s, _ := Load(newFakeKV())
	_ = s.SetToken("not-a-jwt")
	if _, err := s.Claims(); err == nil {
		t.Error("expected error for opaque token")
	}
}

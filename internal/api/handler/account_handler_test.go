package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/booklore/booklore/internal/core/domain"
)

type stubAccountService struct {
	getFn        func(ctx context.Context, id string) (*domain.User, error)
	setEnabledFn func(ctx context.Context, id string, enabled bool) (*domain.User, error)
}

func (s *stubAccountService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubAccountService) SetEnabled(ctx context.Context, id string, enabled bool) (*domain.User, error) {
	return s.setEnabledFn(ctx, id, enabled)
}

func TestAccountHandler_Me(t *testing.T) {
	e := newAuthEcho()
	stub := &stubAccountService{
		getFn: func(ctx context.Context, id string) (*domain.User, error) {
			if id != "user-1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.User{ID: id, Username: "alice", Role: domain.RoleUser, Enabled: true}, nil
		},
	}
	h := NewAccountHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user-1")
	c.Set("role", domain.RoleUser)

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["username"] != "alice" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAccountHandler_Me_MissingClaims(t *testing.T) {
	e := newAuthEcho()
	stub := &stubAccountService{
		getFn: func(ctx context.Context, id string) (*domain.User, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	h := NewAccountHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Me(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAccountHandler_SetEnabled(t *testing.T) {
	e := newAuthEcho()
	stub := &stubAccountService{
		setEnabledFn: func(ctx context.Context, id string, enabled bool) (*domain.User, error) {
			if id != "user-2" || enabled {
				t.Fatalf("unexpected args: %s %v", id, enabled)
			}
			return &domain.User{ID: id, Username: "bob", Role: domain.RoleUser, Enabled: enabled}, nil
		},
	}
	h := NewAccountHandler(stub)

	req := httptest.NewRequest(http.MethodPatch, "/admin/users/user-2/enabled", strings.NewReader(`{"enabled":false}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("user-2")

	if err := h.SetEnabled(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAccountHandler_SetEnabled_UserNotFound(t *testing.T) {
	e := newAuthEcho()
	stub := &stubAccountService{
		setEnabledFn: func(ctx context.Context, id string, enabled bool) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewAccountHandler(stub)

	req := httptest.NewRequest(http.MethodPatch, "/admin/users/ghost/enabled", strings.NewReader(`{"enabled":true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	_ = h.SetEnabled(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAccountHandler_SetEnabled_MissingFlag(t *testing.T) {
	e := newAuthEcho()
	stub := &stubAccountService{
		setEnabledFn: func(ctx context.Context, id string, enabled bool) (*domain.User, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	h := NewAccountHandler(stub)

	req := httptest.NewRequest(http.MethodPatch, "/admin/users/user-2/enabled", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("user-2")

	_ = h.SetEnabled(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

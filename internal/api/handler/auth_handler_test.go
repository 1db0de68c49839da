package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/alozievictor/feedbackapp/internal/core/domain"
	"github.com/alozievictor/feedbackapp/internal/core/ports"
)

type stubAuthService struct {
	registerFn     func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error)
	loginFn        func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	meFn           func(ctx context.Context, actor domain.Actor) (*domain.User, error)
	acceptInviteFn func(ctx context.Context, token, password string) (*ports.AuthResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Me(ctx context.Context, actor domain.Actor) (*domain.User, error) {
	return s.meFn(ctx, actor)
}

func (s *stubAuthService) AcceptInvite(ctx context.Context, token, password string) (*ports.AuthResult, error) {
	return s.acceptInviteFn(ctx, token, password)
}

// newTestEcho returns an Echo wired like the router: validator plus the real
// error mapping, so handler tests observe the wire-level status codes.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// serveError renders err the way the router's central error handler would.
// Mirrors api.NewHTTPErrorHandler without importing the parent package.
func serveError(_ *echo.Echo, err error, c echo.Context) {
	if err == nil {
		return
	}
	var he *echo.HTTPError
	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &he):
		status = he.Code
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrEmailTaken):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrInviteInvalid):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	}
	_ = c.JSON(status, map[string]string{"error": err.Error()})
}

// setActor mimics the auth middleware's context injection.
func setActor(c echo.Context, actor domain.Actor) {
	c.Set("actor", actor)
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
			if in.Name != "Ada" || in.Email != "ada@example.com" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.AuthResult{
				Token: "tok",
				User:  &domain.User{ID: "user_1", Name: in.Name, Email: in.Email, Role: domain.RoleClient},
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	body := strings.NewReader(`{"name":"Ada","email":"ada@example.com","password":"password123"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "tok" {
		t.Errorf("token missing from response: %v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "ada@example.com" {
		t.Errorf("unexpected user payload: %v", resp["user"])
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Error("password hash must never be serialized")
	}
}

func TestAuthHandler_Register_ValidationFailsBeforeService(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*ports.AuthResult, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	// Password below the minimum length.
	body := strings.NewReader(`{"name":"Ada","email":"ada@example.com","password":"short"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	serveError(e, h.Register(c), c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"ada@example.com","password":"wrong-password"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	serveError(e, h.Login(c), c)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid email or password") {
		t.Errorf("uniform credential message expected, got %s", rec.Body.String())
	}
}

func TestAuthHandler_Me_UsesActorFromContext(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		meFn: func(_ context.Context, actor domain.Actor) (*domain.User, error) {
			if actor.ID != "user_1" {
				t.Fatalf("wrong actor: %+v", actor)
			}
			return &domain.User{ID: actor.ID, Name: "Ada"}, nil
		},
	}
	h := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setActor(c, domain.Actor{ID: "user_1", Name: "Ada", Role: domain.RoleAdmin})

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Me_MissingClaims(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	serveError(e, h.Me(c), c)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/staffdir/employee-directory/internal/core/domain"
)

// stubSessionService lets each test script the session manager through
// function fields; unset fields fall back to inert defaults.
type stubSessionService struct {
	loginFn   func(ctx context.Context, username, password string) (*domain.Session, error)
	logoutFn  func(ctx context.Context) error
	currentFn func() *domain.Session
}

func (s *stubSessionService) Init(_ context.Context) error { return nil }

func (s *stubSessionService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, username, password)
	}
	return nil, domain.ErrInvalidCredentials
}

func (s *stubSessionService) Logout(ctx context.Context) error {
	if s.logoutFn != nil {
		return s.logoutFn(ctx)
	}
	return nil
}

func (s *stubSessionService) Current() *domain.Session {
	if s.currentFn != nil {
		return s.currentFn()
	}
	return nil
}

func (s *stubSessionService) IsAuthenticated() bool { return s.Current() != nil }

func (s *stubSessionService) HasRole(role domain.Role) bool {
	sess := s.Current()
	return sess != nil && sess.Role == role
}

func (s *stubSessionService) HasAnyRole(roles ...domain.Role) bool {
	for _, r := range roles {
		if s.HasRole(r) {
			return true
		}
	}
	return false
}

func (s *stubSessionService) Validate(token string) (*domain.Session, bool) {
	sess := s.Current()
	if sess == nil || sess.Token != token {
		return nil, false
	}
	return sess, true
}

func newAuthContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	expires := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	sessions := &stubSessionService{
		loginFn: func(_ context.Context, username, password string) (*domain.Session, error) {
			if username != "alice" || password != "s3cret" {
				return nil, domain.ErrInvalidCredentials
			}
			return &domain.Session{Token: "tok-1", Username: "alice", Role: domain.RoleAdmin, ExpiresAt: expires}, nil
		},
	}
	h := NewAuthHandler(sessions)

	c, rec := newAuthContext(t, http.MethodPost, "/api/v1/auth/login", `{"username":"alice","password":"s3cret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "tok-1" || resp.Username != "alice" || resp.Role != "ADMIN" {
		t.Fatalf("unexpected session payload: %+v", resp)
	}
	if !resp.ExpiresAt.Equal(expires) {
		t.Fatalf("expected expiry %v, got %v", expires, resp.ExpiresAt)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubSessionService{})

	c, rec := newAuthContext(t, http.MethodPost, "/api/v1/auth/login", `{"username":"alice","password":"wrong"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	called := false
	sessions := &stubSessionService{
		loginFn: func(_ context.Context, _, _ string) (*domain.Session, error) {
			called = true
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(sessions)

	c, rec := newAuthContext(t, http.MethodPost, "/api/v1/auth/login", `{"username":"alice"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if called {
		t.Fatalf("invalid payload must not reach the session manager")
	}
}

func TestAuthHandler_Login_ServiceError(t *testing.T) {
	boom := errors.New("storage down")
	h := NewAuthHandler(&stubSessionService{
		loginFn: func(_ context.Context, _, _ string) (*domain.Session, error) { return nil, boom },
	})

	c, _ := newAuthContext(t, http.MethodPost, "/api/v1/auth/login", `{"username":"alice","password":"s3cret"}`)
	if err := h.Login(c); !errors.Is(err, boom) {
		t.Fatalf("non-credential failures must bubble to the error handler, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	cleared := false
	h := NewAuthHandler(&stubSessionService{
		logoutFn: func(_ context.Context) error { cleared = true; return nil },
	})

	c, rec := newAuthContext(t, http.MethodPost, "/api/v1/auth/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if !cleared {
		t.Fatalf("expected Logout to reach the session manager")
	}
}

func TestAuthHandler_Me(t *testing.T) {
	sess := &domain.Session{Token: "tok-1", Username: "alice", Role: domain.RoleAdmin, ExpiresAt: time.Now().Add(time.Hour)}
	h := NewAuthHandler(&stubSessionService{currentFn: func() *domain.Session { return sess }})

	c, rec := newAuthContext(t, http.MethodGet, "/api/v1/auth/me", "")
	if err := h.Me(c); err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var raw map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if raw["username"] != "alice" || raw["role"] != "ADMIN" {
		t.Fatalf("unexpected identity payload: %v", raw)
	}
	if _, leaked := raw["token"]; leaked {
		t.Fatalf("token must be omitted from introspection: %v", raw)
	}
}

func TestAuthHandler_Me_NoSession(t *testing.T) {
	h := NewAuthHandler(&stubSessionService{})

	c, _ := newAuthContext(t, http.MethodGet, "/api/v1/auth/me", "")
	err := h.Me(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

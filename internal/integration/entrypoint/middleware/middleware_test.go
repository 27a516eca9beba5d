package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/alumni-portal/backoffice/internal/application/adapter"
	domainerror "github.com/alumni-portal/backoffice/internal/domain/error"
)

type stubTokenService struct {
	claims *adapter.TokenClaims
	err    error
}

func (s *stubTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	if token != "good" {
		return nil, s.err
	}
	return s.claims, nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	tokens := &stubTokenService{
		claims: &adapter.TokenClaims{UserID: userID, Email: "admin@alumni.example"},
		err:    domainerror.NewAuthError(domainerror.ErrCodeExpiredToken, "token has expired", domainerror.ErrExpiredToken),
	}

	router := gin.New()
	router.GET("/private", NewAuthMiddleware(tokens).Authenticate(), func(c *gin.Context) {
		id, _ := GetUserIDFromContext(c)
		c.String(http.StatusOK, id.String())
	})

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedBody   string
	}{
		{"missing header", "", http.StatusUnauthorized, string(domainerror.ErrCodeMissingToken)},
		{"not bearer", "Basic abc", http.StatusUnauthorized, string(domainerror.ErrCodeMissingToken)},
		{"expired", "Bearer stale", http.StatusUnauthorized, string(domainerror.ErrCodeExpiredToken)},
		{"valid", "Bearer good", http.StatusOK, userID.String()},
		{"lowercase scheme", "bearer good", http.StatusOK, userID.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.expectedBody) {
				t.Errorf("expected body to contain %q, got %s", tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(2, time.Minute)
	limiter.now = func() time.Time { return now }

	router := gin.New()
	router.GET("/export", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	request := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/export", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	for i := 0; i < 2; i++ {
		if w := request(); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected status 200, got %d", i+1, w.Code)
		}
	}

	w := request()
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") != "60" {
		t.Errorf("expected Retry-After 60, got %s", w.Header().Get("Retry-After"))
	}

	now = now.Add(time.Minute)
	if w := request(); w.Code != http.StatusOK {
		t.Errorf("expected window reset, got status %d", w.Code)
	}

	now = now.Add(2 * time.Minute)
	limiter.Cleanup()
	if len(limiter.entries) != 0 {
		t.Errorf("expected expired entries removed, got %d", len(limiter.entries))
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	limiter := NewRateLimiter(0, time.Minute)
	if allowed, _ := limiter.allow("x"); !allowed {
		t.Error("expected first request allowed")
	}

	router := gin.New()
	router.GET("/export", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/export", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
	}
}

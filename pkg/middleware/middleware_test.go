package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"casting-agency/pkg/auth"
	"casting-agency/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// fakeVerifier maps raw tokens to claims or errors.
type fakeVerifier map[string]any

func (f fakeVerifier) Verify(_ context.Context, token string) (*auth.Claims, error) {
	switch v := f[token].(type) {
	case *auth.Claims:
		return v, nil
	case error:
		return nil, v
	default:
		return nil, auth.ErrInvalidToken
	}
}

func TestRequirePermissions(t *testing.T) {
	verifier := fakeVerifier{
		"assistant": &auth.Claims{Permissions: []string{"get:movies", "get:actors"}},
		"director":  &auth.Claims{Permissions: []string{"get:movies", "patch:movies"}},
		"expired":   auth.ErrTokenExpired,
		"noperms":   auth.ErrMissingPermissions,
	}

	tests := []struct {
		name     string
		header   string
		perms    []string
		wantCode int
		wantErr  string
	}{
		{name: "missing header", perms: []string{"get:movies"}, wantCode: 401, wantErr: "authorization_header_missing"},
		{name: "not bearer", header: "Basic abc", perms: []string{"get:movies"}, wantCode: 401, wantErr: "invalid_header"},
		{name: "too many parts", header: "Bearer a b", perms: []string{"get:movies"}, wantCode: 401, wantErr: "invalid_header"},
		{name: "expired", header: "Bearer expired", perms: []string{"get:movies"}, wantCode: 401, wantErr: "token_expired"},
		{name: "invalid", header: "Bearer forged", perms: []string{"get:movies"}, wantCode: 401, wantErr: "invalid_token"},
		{name: "no permissions claim", header: "Bearer noperms", perms: []string{"get:movies"}, wantCode: 401, wantErr: "invalid_claims"},
		{name: "insufficient", header: "Bearer assistant", perms: []string{"post:movies"}, wantCode: 401, wantErr: "unauthorized"},
		{name: "conjunction partially held", header: "Bearer director", perms: []string{"get:movies", "get:actors"}, wantCode: 401, wantErr: "unauthorized"},
		{name: "conjunction held", header: "Bearer assistant", perms: []string{"get:movies", "get:actors"}, wantCode: 200},
		{name: "lowercase scheme", header: "bearer director", perms: []string{"patch:movies"}, wantCode: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotClaims *auth.Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotClaims, _ = auth.ClaimsFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := RequirePermissions(verifier, zap.NewNop(), tt.perms...)(next)
			req := httptest.NewRequest(http.MethodGet, "/movies", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if tt.wantCode == http.StatusOK {
				if gotClaims == nil {
					t.Error("claims not stored in context")
				}
				return
			}

			var body utils.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if body.Success || body.Error != 401 || body.Code != tt.wantErr {
				t.Errorf("body = %+v, want code %s", body, tt.wantErr)
			}
		})
	}
}

func TestRecover(t *testing.T) {
	handler := Recover(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if seen != "abc-123" || rec.Header().Get(RequestIDHeader) != "abc-123" {
		t.Errorf("request id = %q / %q, want abc-123", seen, rec.Header().Get(RequestIDHeader))
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || seen == "abc-123" {
		t.Errorf("generated request id = %q", seen)
	}
}

func TestCORS_Preflight(t *testing.T) {
	handler := CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodOptions, "/movies", nil)
	req.Header.Set("Origin", "https://frontend.example.com")
	req.Header.Set("Access-Control-Request-Method", "PATCH")
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "PATCH" {
		t.Errorf("Allow-Methods = %q, want PATCH", got)
	}
}

func TestRateLimit(t *testing.T) {
	handler := RateLimit(2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/movies", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	if codes[0] != 200 || codes[1] != 200 || codes[2] != http.StatusTooManyRequests {
		t.Errorf("codes = %v", codes)
	}
}

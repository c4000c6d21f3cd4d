package wire

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"casting-agency/internal/data/repository"
	"casting-agency/pkg/auth"
	"casting-agency/pkg/middleware"
	"casting-agency/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/pashagolub/pgxmock/v3"
	"go.uber.org/zap"
)

type tokenVerifier map[string][]string

func (v tokenVerifier) Verify(_ context.Context, token string) (*auth.Claims, error) {
	perms, ok := v[token]
	if !ok {
		return nil, auth.ErrInvalidToken
	}
	return &auth.Claims{Permissions: perms}, nil
}

var roles = tokenVerifier{
	"assistant": {"get:actors", "get:movies"},
	"director":  {"get:actors", "get:movies", "post:actors", "delete:actors", "patch:actors", "patch:movies"},
	"producer": {
		"get:actors", "get:movies", "post:actors", "post:movies",
		"delete:actors", "delete:movies", "patch:actors", "patch:movies",
	},
}

func newTestApp(t *testing.T) (http.Handler, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("Failed to create pgx mock: %v", err)
	}
	t.Cleanup(mock.Close)

	repo := repository.NewRepository(mock, zap.NewNop())
	app := Wiring(repo, &utils.Config{}, zap.NewNop(), roles)
	return app.Router, mock
}

func do(t *testing.T, h http.Handler, method, target, token, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("response is not JSON: %v (%q)", err, rec.Body.String())
		}
	}
	return rec, decoded
}

func TestCreateMovieFlow(t *testing.T) {
	h, mock := newTestApp(t)
	mock.ExpectQuery("INSERT INTO movies").
		WithArgs("The new Movie", time.Date(2015, 2, 22, 0, 0, 0, 0, time.UTC)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

	rec, body := do(t, h, http.MethodPost, "/movies", "producer", `{"title":"The new Movie","release_date":"2015-02-22"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%v)", rec.Code, body)
	}
	if body["movie_id"] != float64(1) || body["success"] != true {
		t.Errorf("body = %v", body)
	}

	rec, _ = do(t, h, http.MethodPost, "/movies", "producer", `{"title":"The new Movie"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("missing release_date status = %d, want 422", rec.Code)
	}

	rec, body = do(t, h, http.MethodPost, "/movies", "director", `{"title":"The new Movie","release_date":"2015-02-22"}`)
	if rec.Code != http.StatusUnauthorized || body["code"] != "unauthorized" {
		t.Errorf("director status = %d body = %v, want 401 unauthorized", rec.Code, body)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRoutePermissions(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		token  string
	}{
		{name: "list movies anonymous", method: http.MethodGet, target: "/movies"},
		{name: "assistant posts actor", method: http.MethodPost, target: "/actors", token: "assistant"},
		{name: "assistant patches movie", method: http.MethodPatch, target: "/movies/1", token: "assistant"},
		{name: "director deletes movie", method: http.MethodDelete, target: "/movies/1", token: "director"},
		{name: "assistant links actor", method: http.MethodPost, target: "/movie_actor", token: "assistant"},
		{name: "forged token", method: http.MethodGet, target: "/movies/1/actors", token: "forged"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mock := newTestApp(t)
			rec, body := do(t, h, tt.method, tt.target, tt.token, `{"title":"x"}`)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
			if body["success"] != false || body["error"] != float64(401) {
				t.Errorf("body = %v", body)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("database touched: %v", err)
			}
		})
	}
}

func TestGetMovies_EmptyIsNotFound(t *testing.T) {
	h, mock := newTestApp(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM movies`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))

	rec, body := do(t, h, http.MethodGet, "/movies", "assistant", "")
	if rec.Code != http.StatusNotFound || body["message"] != "resource not found" {
		t.Errorf("status = %d body = %v", rec.Code, body)
	}
}

func TestDeleteActorFlow(t *testing.T) {
	h, mock := newTestApp(t)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM movies_actors WHERE actor_id").
		WithArgs(int64(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM actors WHERE id").
		WithArgs(int64(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	rec, body := do(t, h, http.MethodDelete, "/actors/2", "director", "")
	if rec.Code != http.StatusOK || body["deleted"] != float64(2) {
		t.Errorf("status = %d body = %v", rec.Code, body)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestHealth(t *testing.T) {
	t.Run("database up", func(t *testing.T) {
		h, mock := newTestApp(t)
		mock.ExpectPing()

		rec, body := do(t, h, http.MethodGet, "/health", "", "")
		if rec.Code != http.StatusOK || body["status"] != "ok" || body["database"] != "up" {
			t.Errorf("health status = %d body = %v", rec.Code, body)
		}
		if rec.Header().Get(middleware.RequestIDHeader) == "" {
			t.Error("missing request id header")
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("database down", func(t *testing.T) {
		h, mock := newTestApp(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		rec, body := do(t, h, http.MethodGet, "/health", "", "")
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("health status = %d, want 503", rec.Code)
		}
		if body["success"] != false || body["error"] != float64(503) || body["message"] != "service unavailable" || body["database"] != "down" {
			t.Errorf("body = %v", body)
		}
	})
}

func TestRouterEnvelopes(t *testing.T) {
	h, _ := newTestApp(t)

	rec, body := do(t, h, http.MethodGet, "/directors", "", "")
	if rec.Code != http.StatusNotFound || body["error"] != float64(404) {
		t.Errorf("unknown route status = %d body = %v", rec.Code, body)
	}

	rec, body = do(t, h, http.MethodPut, "/movies/1", "producer", "{}")
	if rec.Code != http.StatusMethodNotAllowed || body["message"] != "method not allowed" {
		t.Errorf("PUT status = %d body = %v", rec.Code, body)
	}
}

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"casting-agency/internal/data/entity"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"go.uber.org/zap"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("Failed to create pgx mock: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func TestMovieRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(zap.NewNop())
	release := time.Date(2015, 2, 22, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO movies").
		WithArgs("The new Movie", release).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	movie := &entity.Movie{Title: "The new Movie", ReleaseDate: release}
	if err := repo.Create(context.Background(), mock, movie); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if movie.ID != 7 {
		t.Errorf("movie.ID = %d, want 7", movie.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMovieRepository_FindByID(t *testing.T) {
	release := time.Date(1999, 3, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT id, title, release_date FROM movies WHERE id").
					WithArgs(int64(1)).
					WillReturnRows(pgxmock.NewRows([]string{"id", "title", "release_date"}).
						AddRow(int64(1), "The Matrix", release))
			},
		},
		{
			name: "missing row maps to ErrNotFound",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT id, title, release_date FROM movies WHERE id").
					WithArgs(int64(1)).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			tt.setup(mock)
			repo := NewMovieRepository(zap.NewNop())

			movie, err := repo.FindByID(context.Background(), mock, 1)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FindByID() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindByID() error = %v", err)
			}
			if movie.Title != "The Matrix" || !movie.ReleaseDate.Equal(release) {
				t.Errorf("FindByID() = %+v", movie)
			}
		})
	}
}

func TestMovieRepository_FindPage(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(zap.NewNop())
	release := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("ORDER BY title ASC").
		WithArgs(3, 3).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "release_date"}).
			AddRow(int64(4), "Alien", release).
			AddRow(int64(2), "Brazil", release))

	movies, err := repo.FindPage(context.Background(), mock, 3, 3)
	if err != nil {
		t.Fatalf("FindPage() error = %v", err)
	}
	if len(movies) != 2 || movies[0].Title != "Alien" || movies[1].Title != "Brazil" {
		t.Errorf("FindPage() = %+v", movies)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMovieRepository_Count(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(zap.NewNop())

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM movies`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(5)))

	total, err := repo.Count(context.Background(), mock)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if total != 5 {
		t.Errorf("Count() = %d, want 5", total)
	}
}

func TestMovieRepository_UpdateAndDelete_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(zap.NewNop())

	mock.ExpectExec("UPDATE movies SET").
		WithArgs(int64(9), "x", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectExec("DELETE FROM movies WHERE").
		WithArgs(int64(9)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Update(context.Background(), mock, &entity.Movie{Base: entity.Base{ID: 9}, Title: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}

	if err := repo.Delete(context.Background(), mock, 9); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows(user models.User, now time.Time) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"user_id", "username", "email", "password_hash", "image_url", "header_image_url", "bio", "location", "created_at"}).
		AddRow(user.UserID, user.Username, user.Email, user.PasswordHash, user.ImageURL, user.HeaderImageURL, user.Bio, user.Location, now)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Username:       "warbird",
		Email:          "warbird@example.com",
		PasswordHash:   "$2a$10$hash",
		ImageURL:       models.DefaultImageURL,
		HeaderImageURL: models.DefaultHeaderImageURL,
	}

	saved := user
	saved.UserID = 1

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.Email, user.PasswordHash, user.ImageURL, user.HeaderImageURL, user.Bio, user.Location).
		WillReturnRows(userRows(saved, time.Now()))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Username != user.Username {
		t.Errorf("expected username %s, got %s", user.Username, created.Username)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "warbird"}

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UniqueViolationSQLite(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("UNIQUE constraint failed: users.username"))

	_, err := repo.CreateUser(ctx, models.User{Username: "warbird"})
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, models.User{Username: "warbird"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"user_id"}). // intentionally wrong shape → scan error
		AddRow(1)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(rows)

	_, err := repo.CreateUser(ctx, models.User{Username: "warbird"})
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		UserID:       42,
		Username:     "warbird",
		Email:        "warbird@example.com",
		PasswordHash: "$2a$10$hash",
		Bio:          "early bird",
	}

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(user.Username).
		WillReturnRows(userRows(user, time.Now()))

	found, err := repo.FindUserByUsername(ctx, user.Username)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != user.UserID {
		t.Errorf("expected UserID=%d, got %d", user.UserID, found.UserID)
	}
	if found.Bio != user.Bio {
		t.Errorf("expected bio %q, got %q", user.Bio, found.Bio)
	}
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByUsername(ctx, "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{UserID: 42, Username: "warbird", Email: "warbird@example.com"}

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(user.UserID).
		WillReturnRows(userRows(user, time.Now()))

	found, err := repo.FindUserByID(ctx, user.UserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Username != user.Username {
		t.Errorf("expected username %s, got %s", user.Username, found.Username)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(ctx, 404)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

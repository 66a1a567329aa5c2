package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/yobo-blog/internal/config"
	"github.com/MKhiriev/yobo-blog/internal/logger"
	"github.com/MKhiriev/yobo-blog/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var userRowColumns = []string{"user_id", "email", "normalized_email", "password_hash", "full_name", "created_at"}

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return newDB(conn, config.DriverPostgres, logger.Nop()), mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func testUser() models.User {
	return models.User{
		UserID:          "0190a8c4-7b5e-7000-8000-000000000001",
		Email:           "Ahmet@Example.com",
		NormalizedEmail: "ahmet@example.com",
		PasswordHash:    "$2a$10$hash",
		FullName:        "Ahmet",
		CreatedAt:       time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := testUser()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (user_id,email,normalized_email,password_hash,full_name,created_at) VALUES ($1,$2,$3,$4,$5,$6)")).
		WithArgs(user.UserID, user.Email, user.NormalizedEmail, user.PasswordHash, user.FullName, user.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != user {
		t.Errorf("expected %+v, got %+v", user, created)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), testUser())
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), testUser())
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestFindUserByEmail_NormalizesInput(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := testUser()

	rows := sqlmock.NewRows(userRowColumns).
		AddRow(user.UserID, user.Email, user.NormalizedEmail, user.PasswordHash, user.FullName, user.CreatedAt)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, email, normalized_email, password_hash, full_name, created_at FROM users WHERE normalized_email = $1")).
		WithArgs("ahmet@example.com").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(context.Background(), "  AHMET@example.COM ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != user {
		t.Errorf("expected %+v, got %+v", user, found)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByEmail_EmptyResult(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUserByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := testUser()

	rows := sqlmock.NewRows(userRowColumns).
		AddRow(user.UserID, user.Email, user.NormalizedEmail, user.PasswordHash, user.FullName, user.CreatedAt)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE user_id = $1")).
		WithArgs(user.UserID).
		WillReturnRows(rows)

	found, err := repo.FindUserByID(context.Background(), user.UserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != user.UserID {
		t.Errorf("expected UserID=%s, got %s", user.UserID, found.UserID)
	}
}

func TestFindUserByID_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	// intentionally wrong shape → scan error
	rows := sqlmock.NewRows([]string{"user_id"}).AddRow("id")

	mock.ExpectQuery("FROM users").WillReturnRows(rows)

	_, err := repo.FindUserByID(context.Background(), "id")
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

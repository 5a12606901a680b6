package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/denteo/clinic-backend/internal/logger"
	"github.com/denteo/clinic-backend/models"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	l := logger.Nop()
	return &DB{
		DB:      conn,
		driver:  "pgx",
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		logger:  l,
	}, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return &userRepository{db: db, logger: db.logger}, mock
}

func pgUniqueError(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func userRows(user models.User) *sqlmock.Rows {
	var lastLogin any
	if user.LastLogin != nil {
		lastLogin = *user.LastLogin
	}
	return sqlmock.NewRows(userColumns).AddRow(
		user.UserID, user.Username, user.Email, user.CPF, user.Phone,
		user.PasswordHash, user.PasswordSalt, user.Role, user.Active,
		user.CreatedAt, lastLogin,
	)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{
		Username:     "john",
		Email:        "john@clinic.test",
		CPF:          "12345678901",
		Phone:        "+5511999990000",
		PasswordHash: "hash",
		PasswordSalt: "salt",
		Role:         models.RoleUser,
		Active:       true,
	}

	saved := user
	saved.UserID = 1
	saved.CreatedAt = time.Now()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.Email, user.CPF, user.Phone, user.PasswordHash, user.PasswordSalt, user.Role, user.Active).
		WillReturnRows(userRows(saved))

	created, err := repo.CreateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Username != user.Username {
		t.Errorf("expected username %s, got %s", user.Username, created.Username)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_UniqueViolations(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		wantErr    error
	}{
		{"duplicate username", "users_username_key", ErrUsernameTaken},
		{"duplicate email", "users_email_key", ErrEmailTaken},
		{"duplicate cpf", "users_cpf_key", ErrCPFTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			mock.ExpectQuery("INSERT INTO users").
				WillReturnError(pgUniqueError(tt.constraint))

			_, err := repo.CreateUser(context.Background(), models.User{Username: "john"})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCreateUser_UnexpectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "john"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.Is(err, ErrUsernameTaken) || errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected generic error, got %v", err)
	}
}

func TestFindUserByLogin_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	now := time.Now()
	user := models.User{
		UserID: 7, Username: "alice", Email: "alice@clinic.test",
		PasswordHash: "hash", PasswordSalt: "salt",
		Role: models.RoleDentist, Active: true,
		CreatedAt: now, LastLogin: &now,
	}

	// one login string matches against both username and email
	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("alice", "alice").
		WillReturnRows(userRows(user))

	found, err := repo.FindUserByLogin(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", found.UserID)
	}
	if found.LastLogin == nil {
		t.Error("expected LastLogin to be set")
	}
}

func TestFindUserByLogin_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByLogin(context.Background(), "nobody")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(context.Background(), 404)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestListUsers_Filtered(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	role := models.RoleDentist
	active := true

	rows := userRows(models.User{UserID: 1, Username: "a", Role: role, Active: true, CreatedAt: time.Now()})
	rows.AddRow(
		int64(2), "b", "b@clinic.test", "", "",
		"hash", "salt", role, true, time.Now(), nil,
	)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(role, active).
		WillReturnRows(rows)

	users, err := repo.ListUsers(context.Background(), models.UserFilter{Role: &role, Active: &active})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 users, got %d", len(users))
	}
}

func TestListUsers_Empty(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(sqlmock.NewRows(userColumns))

	users, err := repo.ListUsers(context.Background(), models.UserFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("expected no users, got %d", len(users))
	}
}

func TestUpdateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	email := "new@clinic.test"
	updated := models.User{
		UserID: 7, Username: "alice", Email: email,
		PasswordHash: "hash", PasswordSalt: "salt",
		Role: models.RoleUser, Active: true, CreatedAt: time.Now(),
	}

	mock.ExpectQuery("UPDATE users").
		WithArgs(email, int64(7)).
		WillReturnRows(userRows(updated))

	got, err := repo.UpdateUser(context.Background(), 7, models.UserUpdate{Email: &email})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Email != email {
		t.Errorf("expected email %s, got %s", email, got.Email)
	}
}

func TestUpdateUser_NothingToUpdate(t *testing.T) {
	repo, _ := newTestUserRepo(t)

	_, err := repo.UpdateUser(context.Background(), 7, models.UserUpdate{})
	if !errors.Is(err, ErrNothingToUpdate) {
		t.Errorf("expected ErrNothingToUpdate, got %v", err)
	}
}

func TestUpdateUser_EmailTaken(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	email := "taken@clinic.test"
	mock.ExpectQuery("UPDATE users").
		WillReturnError(pgUniqueError("users_email_key"))

	_, err := repo.UpdateUser(context.Background(), 7, models.UserUpdate{Email: &email})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestSetUserActive(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users").
		WithArgs(false, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetUserActive(context.Background(), 7, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetUserActive_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetUserActive(context.Background(), 404, true)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestTouchLastLogin(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users").
		WithArgs(sqlmock.AnyArg(), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.TouchLastLogin(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteUser(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteUser(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("DELETE FROM users").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteUser(context.Background(), 404)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

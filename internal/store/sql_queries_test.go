package store

import (
	"errors"
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/denteo/clinic-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postgresBuilderDB() *DB {
	return &DB{driver: "pgx", builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar)}
}

func sqliteBuilderDB() *DB {
	return &DB{driver: "sqlite3", builder: sq.StatementBuilder.PlaceholderFormat(sq.Question)}
}

func TestInsertUserQuery(t *testing.T) {
	db := postgresBuilderDB()

	query, args, err := db.insertUserQuery(models.User{
		Username: "john", Email: "john@clinic.test",
		PasswordHash: "hash", PasswordSalt: "salt",
		Role: models.RoleUser, Active: true,
	})
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO users")
	assert.Contains(t, query, "RETURNING user_id")
	assert.Contains(t, query, "$8")
	assert.Len(t, args, 8)
}

func TestSelectUserByLoginQuery_MatchesUsernameOrEmail(t *testing.T) {
	db := postgresBuilderDB()

	query, args, err := db.selectUserByLoginQuery("alice")
	require.NoError(t, err)

	assert.Contains(t, query, "username = $1")
	assert.Contains(t, query, "email = $2")
	assert.Contains(t, query, " OR ")
	assert.Equal(t, []any{"alice", "alice"}, args)
}

func TestListUsersQuery(t *testing.T) {
	role := models.RoleDentist
	active := true

	tests := []struct {
		name     string
		filter   models.UserFilter
		wantSQL  []string
		wantArgs []any
	}{
		{
			name:     "no filter",
			filter:   models.UserFilter{},
			wantSQL:  []string{"ORDER BY user_id"},
			wantArgs: nil,
		},
		{
			name:     "role only",
			filter:   models.UserFilter{Role: &role},
			wantSQL:  []string{"role = $1"},
			wantArgs: []any{role},
		},
		{
			name:     "role and active",
			filter:   models.UserFilter{Role: &role, Active: &active},
			wantSQL:  []string{"role = $1", "active = $2"},
			wantArgs: []any{role, active},
		},
	}

	db := postgresBuilderDB()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := db.listUsersQuery(tt.filter)
			require.NoError(t, err)

			for _, fragment := range tt.wantSQL {
				assert.Contains(t, query, fragment)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestUpdateUserQuery(t *testing.T) {
	db := postgresBuilderDB()

	email := "new@clinic.test"
	active := false

	query, args, err := db.updateUserQuery(7, models.UserUpdate{Email: &email, Active: &active})
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE users")
	assert.Contains(t, query, "email = $1")
	assert.Contains(t, query, "active = $2")
	assert.Contains(t, query, "user_id = $3")
	assert.Contains(t, query, "RETURNING")
	assert.Equal(t, []any{email, active, int64(7)}, args)
}

func TestUpdateUserQuery_Empty(t *testing.T) {
	db := postgresBuilderDB()

	_, _, err := db.updateUserQuery(7, models.UserUpdate{})
	assert.ErrorIs(t, err, ErrNothingToUpdate)
}

func TestTouchLastLoginQuery(t *testing.T) {
	db := postgresBuilderDB()

	at := time.Now()
	query, args, err := db.touchLastLoginQuery(7, at)
	require.NoError(t, err)

	assert.Contains(t, query, "last_login = $1")
	assert.Equal(t, []any{at, int64(7)}, args)
}

func TestQueries_SQLitePlaceholders(t *testing.T) {
	db := sqliteBuilderDB()

	query, _, err := db.selectUserByIDQuery(7)
	require.NoError(t, err)

	assert.Contains(t, query, "user_id = ?")
	assert.False(t, strings.Contains(query, "$"), "sqlite queries must not use dollar placeholders")
}

func TestInsertAppointmentQuery(t *testing.T) {
	db := postgresBuilderDB()

	query, args, err := db.insertAppointmentQuery(models.Appointment{
		PatientID:   7,
		DentistName: "Dr. Souza",
		ScheduledAt: time.Now(),
		Status:      models.AppointmentScheduled,
	})
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO appointments")
	assert.Contains(t, query, "RETURNING appointment_id")
	assert.Len(t, args, 5)
}

func TestDuplicateUserError_NonUnique(t *testing.T) {
	if err := duplicateUserError(errors.New("plain error")); err != nil {
		t.Errorf("expected nil for non-unique error, got %v", err)
	}
}

func TestDuplicateUserError_UnknownConstraint(t *testing.T) {
	if err := duplicateUserError(pgUniqueError("other_table_key")); err != nil {
		t.Errorf("expected nil for unknown constraint, got %v", err)
	}
}

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/dernekportal/tcguard/internal/auth/domain"
	"github.com/dernekportal/tcguard/internal/testutil"
)

func newTestUser(email string, role authDomain.Role) *authDomain.User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &authDomain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Name:         "Ayşe Yılmaz",
		Email:        email,
		Role:         role,
		IsActive:     true,
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestPostgreSQLUserRepository_Mock(t *testing.T) {
	userColumns := []string{
		"id", "name", "email", "role", "is_active", "password_hash", "created_at", "updated_at",
	}

	t.Run("Success_GetByEmailNullRole", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		id := uuid.Must(uuid.NewV7())
		now := time.Now().UTC()
		mock.ExpectQuery("SELECT id, name, email, role").
			WithArgs("member@dernek.org.tr").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(id.String(), "Member", "member@dernek.org.tr", nil, true, "hash", now, now))

		repo := NewPostgreSQLUserRepository(db)
		user, err := repo.GetByEmail(context.Background(), "member@dernek.org.tr")

		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, authDomain.Role(""), user.Role)
		assert.True(t, user.IsActive)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_GetByEmailNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery("SELECT id, name, email, role").
			WithArgs("nobody@dernek.org.tr").
			WillReturnRows(sqlmock.NewRows(userColumns))

		repo := NewPostgreSQLUserRepository(db)
		_, err = repo.GetByEmail(context.Background(), "nobody@dernek.org.tr")

		assert.ErrorIs(t, err, authDomain.ErrUserNotFound)
	})

	t.Run("Error_GetByEmailDatabaseFailure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery("SELECT id, name, email, role").WillReturnError(errors.New("connection reset"))

		repo := NewPostgreSQLUserRepository(db)
		_, err = repo.GetByEmail(context.Background(), "admin@dernek.org.tr")

		require.Error(t, err)
		assert.NotErrorIs(t, err, authDomain.ErrUserNotFound)
		assert.Contains(t, err.Error(), "failed to get user by email")
	})

	t.Run("Error_CreateDuplicateEmail", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("INSERT INTO users").
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "users_email_idx"`))

		repo := NewPostgreSQLUserRepository(db)
		err = repo.Create(context.Background(), newTestUser("admin@dernek.org.tr", authDomain.RoleAdmin))

		assert.ErrorIs(t, err, authDomain.ErrUserAlreadyExists)
	})
}

func TestPostgreSQLUserRepository_CreateAndGet(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLUserRepository(db)
	ctx := context.Background()

	user := newTestUser("admin@dernek.org.tr", authDomain.RoleAdmin)
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.GetByEmail(ctx, "admin@dernek.org.tr")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, authDomain.RoleAdmin, got.Role)
	assert.True(t, got.IsActive)

	err = repo.Create(ctx, newTestUser("admin@dernek.org.tr", authDomain.RoleViewer))
	assert.ErrorIs(t, err, authDomain.ErrUserAlreadyExists)

	_, err = repo.GetByEmail(ctx, "ADMIN@dernek.org.tr")
	assert.ErrorIs(t, err, authDomain.ErrUserNotFound)
}

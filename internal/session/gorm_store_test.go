package session

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestGormStore_Get(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	store := NewGormStore(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "sessions" WHERE sid = .* AND expire > .*`).
		WillReturnRows(sqlmock.NewRows([]string{"sid", "sess", "expire"}).
			AddRow("abc", `{"userId":"u-1","userRole":"member"}`, time.Now().Add(time.Hour)))

	data, err := store.Get(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, "u-1", data.UserID)
	assert.Equal(t, "member", data.UserRole)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_GetMissing(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	store := NewGormStore(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "sessions"`).
		WillReturnRows(sqlmock.NewRows([]string{"sid", "sess", "expire"}))

	_, err := store.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_Set(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	store := NewGormStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "sessions" .* ON CONFLICT \("sid"\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.Set(context.Background(), "abc", Data{UserID: "u-1", UserRole: "admin"}, time.Hour)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_Prune(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	store := NewGormStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "sessions" WHERE expire <= .*`).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectCommit()

	n, err := store.Prune(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package storage

import (
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/hackathon-hub/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupGormBackend(t *testing.T) *GormBackend {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every new connection to :memory: is a fresh database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(&models.KVEntry{}))

	return NewGormBackend(db)
}

func setupMockGormBackend(t *testing.T) (*GormBackend, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewGormBackend(db), mock
}

func TestGormBackend_RoundTrip(t *testing.T) {
	backend := setupGormBackend(t)

	_, ok, err := backend.GetItem("hackathons")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, backend.SetItem("hackathons", `[]`))
	require.NoError(t, backend.SetItem("hackathons", `[{"id":"h1"}]`))

	value, ok, err := backend.GetItem("hackathons")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"h1"}]`, value)

	var count int64
	require.NoError(t, backend.db.Model(&models.KVEntry{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "upsert must not duplicate the key")

	require.NoError(t, backend.RemoveItem("hackathons"))
	require.NoError(t, backend.RemoveItem("hackathons"))

	_, ok, err = backend.GetItem("hackathons")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGormBackend_GetItemQueryError(t *testing.T) {
	backend, mock := setupMockGormBackend(t)

	mock.ExpectQuery("SELECT \\* FROM `kv_entries`").
		WillReturnError(errors.New("connection reset"))

	_, ok, err := backend.GetItem("hackathons")
	require.Error(t, err)
	assert.False(t, ok)
	assert.False(t, errors.Is(err, gorm.ErrRecordNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormBackend_SetItemExecError(t *testing.T) {
	backend, mock := setupMockGormBackend(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `kv_entries`").
		WillReturnError(errors.New("read-only replica"))
	mock.ExpectRollback()

	require.Error(t, backend.SetItem("hackathons", "[]"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormBackend_RemoveItemExecError(t *testing.T) {
	backend, mock := setupMockGormBackend(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `kv_entries`").
		WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	require.Error(t, backend.RemoveItem("hackathons"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestKVEntry_ValueColumnType(t *testing.T) {
	backend, _ := setupMockGormBackend(t)

	stmt := &gorm.Statement{DB: backend.db}
	require.NoError(t, stmt.Parse(&models.KVEntry{}))
	field := stmt.Schema.LookUpField("Value")
	require.NotNil(t, field)

	// MySQL text stops at 64KiB; a data-URL banner needs more.
	assert.Equal(t, "longtext NOT NULL", backend.db.Migrator().FullDataTypeOf(field).SQL)
}

func TestGormBackend_LargeValue(t *testing.T) {
	backend := setupGormBackend(t)

	value := `[{"bannerUrl":"data:image/png;base64,` + strings.Repeat("A", 70000) + `"}]`
	require.NoError(t, backend.SetItem("hackathons", value))

	got, ok, err := backend.GetItem("hackathons")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, value, got)
}

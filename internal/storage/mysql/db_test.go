package mysql

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDSN(t *testing.T) {
	got, err := NormalizeDSN("root:root@tcp(localhost:3306)/trybehotel")
	require.NoError(t, err)
	assert.Contains(t, got, "parseTime=true")

	_, err = NormalizeDSN("not a dsn")
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	opts := Options{
		DSN:             "root:root@tcp(localhost:3306)/trybehotel",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
	}

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()

		orig := sqlOpen
		sqlOpen = func(driverName, dsn string) (*sql.DB, error) { return db, nil }
		defer func() { sqlOpen = orig }()

		mock.ExpectPing()

		got, err := Open(context.Background(), opts)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("open error", func(t *testing.T) {
		orig := sqlOpen
		sqlOpen = func(driverName, dsn string) (*sql.DB, error) { return nil, errors.New("open error") }
		defer func() { sqlOpen = orig }()

		got, err := Open(context.Background(), opts)
		assert.ErrorContains(t, err, "sql open: open error")
		assert.Nil(t, got)
	})

	t.Run("ping error", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)

		orig := sqlOpen
		sqlOpen = func(driverName, dsn string) (*sql.DB, error) { return db, nil }
		defer func() { sqlOpen = orig }()

		mock.ExpectPing().WillReturnError(errors.New("ping failed"))

		got, err := Open(context.Background(), opts)
		assert.ErrorContains(t, err, "db ping: ping failed")
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("bad dsn", func(t *testing.T) {
		got, err := Open(context.Background(), Options{DSN: "::"})
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS cities").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS hotels").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS rooms").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, Migrate(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSplitStatements(t *testing.T) {
	got := splitStatements("CREATE TABLE a (x INT);\n\nCREATE TABLE b (y INT);\n")
	assert.Equal(t, []string{"CREATE TABLE a (x INT)", "CREATE TABLE b (y INT)"}, got)
}

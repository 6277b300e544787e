package db

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	sqlDB, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	_, err = sqlDB.Exec(`CREATE TABLE test_table (id INTEGER PRIMARY KEY, value TEXT)`)
	require.NoError(t, err)

	return sqlDB
}

func countRows(t *testing.T, sqlDB *sql.DB) int {
	t.Helper()
	var count int
	require.NoError(t, sqlDB.QueryRow(`SELECT COUNT(*) FROM test_table`).Scan(&count))
	return count
}

func TestWithTx_Success(t *testing.T) {
	sqlDB := setupTestDB(t)

	err := WithTx(context.Background(), sqlDB, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO test_table (value) VALUES (?)`, "test")
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, 1, countRows(t, sqlDB))
}

func TestWithTx_Rollback(t *testing.T) {
	sqlDB := setupTestDB(t)

	testErr := errors.New("test error")

	err := WithTx(context.Background(), sqlDB, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO test_table (value) VALUES (?)`, "test"); err != nil {
			return err
		}
		return testErr
	})

	require.ErrorIs(t, err, testErr)
	assert.Equal(t, 0, countRows(t, sqlDB), "insert should be rolled back")
}

func TestWithTx_RollbackOnConstraint(t *testing.T) {
	sqlDB := setupTestDB(t)
	_, err := sqlDB.Exec(`INSERT INTO test_table (id, value) VALUES (1, 'keep')`)
	require.NoError(t, err)

	err = WithTx(context.Background(), sqlDB, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM test_table`); err != nil {
			return err
		}
		if _, err := tx.Exec(`INSERT INTO test_table (id, value) VALUES (2, 'a')`); err != nil {
			return err
		}
		_, err := tx.Exec(`INSERT INTO test_table (id, value) VALUES (2, 'b')`)
		return err
	})

	require.Error(t, err)
	var value string
	require.NoError(t, sqlDB.QueryRow(`SELECT value FROM test_table WHERE id = 1`).Scan(&value))
	assert.Equal(t, "keep", value)
}

func TestWithTx_CanceledContext(t *testing.T) {
	sqlDB := setupTestDB(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := WithTx(ctx, sqlDB, func(*sql.Tx) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
}

func TestOpen_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "app.db")

	sqlDB, err := Open(path)
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.FileExists(t, path)
}

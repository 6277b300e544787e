package store

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	dbutil "github.com/beezer-app/beezer/internal/db"
)

const (
	appName    = "beezer"
	dbFileName = "beezer.db"
)

// tables maps partitions to their SQLite table.
var tables = map[Partition]string{
	PartitionArtist:    "artist",
	PartitionTopTracks: "top_tracks",
}

// SQLite is the default Store, backed by a local SQLite file.
type SQLite struct {
	db *sql.DB
}

// Verify SQLite implements Store at compile time.
var _ Store = (*SQLite)(nil)

// Open opens the SQLite store at path, creating the partitions if needed.
// An empty path selects the XDG data location. Opening the same file again
// is safe.
func Open(path string) (*SQLite, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, unavailable("resolve path", "", err)
		}
	}

	sqlDB, err := dbutil.Open(path)
	if err != nil {
		return nil, unavailable("open", "", err)
	}

	if err := initSchema(sqlDB); err != nil {
		sqlDB.Close()
		return nil, unavailable("init schema", "", err)
	}

	return &SQLite{db: sqlDB}, nil
}

// DefaultPath returns the XDG data file used when no path is configured.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

// ReadAll returns the records of p ordered by the rank they were written with.
func (s *SQLite) ReadAll(ctx context.Context, p Partition) ([]Record, error) {
	if err := checkPartition("read", p); err != nil {
		return nil, err
	}

	//nolint:gosec // table name comes from the fixed tables map
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`SELECT id, data FROM %s ORDER BY rank`, tables[p]))
	if err != nil {
		return nil, unavailable("read", p, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var data string
		if err := rows.Scan(&r.ID, &data); err != nil {
			return nil, unavailable("read", p, err)
		}
		r.Data = []byte(data)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("read", p, err)
	}

	return records, nil
}

// ReplaceAll clears p and inserts records in one transaction.
// The slice index of each record becomes its rank.
func (s *SQLite) ReplaceAll(ctx context.Context, p Partition, records []Record) error {
	if err := checkPartition("replace", p); err != nil {
		return err
	}
	table := tables[p]

	err := dbutil.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		//nolint:gosec // table name comes from the fixed tables map
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, table)); err != nil {
			return err
		}

		//nolint:gosec // table name comes from the fixed tables map
		stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
			INSERT INTO %s (id, rank, data, stored_at)
			VALUES (?, ?, ?, ?)
		`, table))
		if err != nil {
			return err
		}
		defer stmt.Close()

		now := time.Now().Unix()
		for i, r := range records {
			if _, err := stmt.ExecContext(ctx, r.ID, i, string(r.Data), now); err != nil {
				return fmt.Errorf("insert id %d: %w", r.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return unavailable("replace", p, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a record of every attempted conversion in a
// local SQLite database.
package history

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdf-converter/pkg/logger"
	"github.com/pdiddy/pdf-converter/pkg/types"
)

const dbFile = "conversions.db"

// Store manages the conversion history SQLite database.
type Store struct {
	db      *sql.DB
	maxList int
	log     logger.Logger
}

// NewStore opens or creates the history database at cfg.Dir/conversions.db
// and creates the schema if it does not exist.
func NewStore(cfg types.HistoryConfig, log logger.Logger) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxList := cfg.MaxList
	if maxList <= 0 {
		maxList = 20
	}

	s := &Store{db: db, maxList: maxList, log: log.Named("history")}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	stmt := `CREATE TABLE IF NOT EXISTS conversions (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		kind TEXT NOT NULL,
		result_path TEXT,
		pages INTEGER,
		bytes_written INTEGER,
		duration_ms INTEGER,
		error TEXT,
		created_at TEXT NOT NULL
	)`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	if _, err := s.db.Exec(
		`CREATE INDEX IF NOT EXISTS idx_conversions_created_at ON conversions(created_at)`,
	); err != nil {
		return fmt.Errorf("creating index: %w", err)
	}
	return nil
}

// Record inserts one conversion record. Missing ID and timestamp fields
// are filled in.
func (s *Store) Record(rec types.ConversionRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO conversions
		 (id, source, kind, result_path, pages, bytes_written, duration_ms, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Source, string(rec.Kind), rec.ResultPath, rec.Pages,
		rec.BytesWritten, rec.Duration.Milliseconds(), rec.Error,
		rec.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting conversion record: %w", err)
	}
	return nil
}

// List returns the most recent records, newest first. A non-positive
// limit uses the configured default.
func (s *Store) List(limit int) ([]types.ConversionRecord, error) {
	if limit <= 0 {
		limit = s.maxList
	}
	return s.query(limit)
}

// ListAll returns every record, newest first.
func (s *Store) ListAll() ([]types.ConversionRecord, error) {
	return s.query(-1)
}

func (s *Store) query(limit int) ([]types.ConversionRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, source, kind, result_path, pages, bytes_written, duration_ms, error, created_at
		 FROM conversions ORDER BY created_at DESC, id LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying conversions: %w", err)
	}
	defer rows.Close()

	var records []types.ConversionRecord
	for rows.Next() {
		var rec types.ConversionRecord
		var kind, createdAt string
		var durationMS int64
		if err := rows.Scan(
			&rec.ID, &rec.Source, &kind, &rec.ResultPath, &rec.Pages,
			&rec.BytesWritten, &durationMS, &rec.Error, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scanning conversion record: %w", err)
		}
		rec.Kind = types.ConversionKind(kind)
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
			rec.CreatedAt = ts
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Export writes the full history to w as YAML, newest first.
func (s *Store) Export(w io.Writer) error {
	records, err := s.ListAll()
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	return nil
}

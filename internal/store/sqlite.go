package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	_ "modernc.org/sqlite"
)

// DefaultListLimit caps ListRuns when the caller passes a non-positive limit.
const DefaultListLimit = 50

// timeLayout keeps a fixed fraction width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *logrus.Entry
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and returns a Store.
// Use ":memory:" for an in-memory database (useful in tests).
func NewSQLiteStore(dbPath string, logger *logrus.Entry) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	if dbPath == ":memory:" {
		// every pooled connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}

	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &SQLiteStore{
		db:     db,
		logger: logger.WithField("component", "store"),
	}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Migrate creates all required tables and indexes.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	s.logger.WithField("op", "migrate").Debug("sql")
	return migrate(ctx, s.db)
}

func (s *SQLiteStore) SaveRun(ctx context.Context, run *Run) error {
	if run.ID == "" {
		run.ID = "run_" + uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	s.logger.WithFields(logrus.Fields{"op": "insert", "table": "runs", "id": run.ID}).Debug("sql")

	processesJSON, err := json.Marshal(run.Processes)
	if err != nil {
		return fmt.Errorf("marshal processes: %w", err)
	}
	resultJSON, err := json.Marshal(run.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, algorithm, preemptive, time_quantum, requeue_order, processes, result, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Algorithm, run.Preemptive, run.TimeQuantum, run.RequeueOrder,
		string(processesJSON), string(resultJSON), run.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}
	return nil
}

func (s *SQLiteStore) GetRun(ctx context.Context, id string) (*Run, error) {
	s.logger.WithFields(logrus.Fields{"op": "select", "table": "runs", "id": id}).Debug("sql")

	row := s.db.QueryRowContext(ctx,
		`SELECT id, algorithm, preemptive, time_quantum, requeue_order, processes, result, created_at
		 FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	s.logger.WithFields(logrus.Fields{"op": "list", "table": "runs", "limit": limit}).Debug("sql")

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, algorithm, preemptive, time_quantum, requeue_order, processes, result, created_at
		 FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := make([]*Run, 0)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*Run, error) {
	var run Run
	var processesJSON, resultJSON, createdAt string
	if err := row.Scan(&run.ID, &run.Algorithm, &run.Preemptive, &run.TimeQuantum, &run.RequeueOrder,
		&processesJSON, &resultJSON, &createdAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(processesJSON), &run.Processes); err != nil {
		return nil, fmt.Errorf("unmarshal processes: %w", err)
	}
	if err := json.Unmarshal([]byte(resultJSON), &run.Result); err != nil {
		return nil, fmt.Errorf("unmarshal result: %w", err)
	}
	run.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	return &run, nil
}

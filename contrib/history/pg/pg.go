// Package pg stores summarization history in PostgreSQL.
package pg

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/sweetpotato0/condense/config"
	"github.com/sweetpotato0/condense/history"
)

// Config holds PostgreSQL connection configuration.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DefaultConfig returns default PostgreSQL configuration.
func DefaultConfig() *Config {
	return &Config{
		Host:    "localhost",
		Port:    5432,
		User:    "postgres",
		DBName:  "condense",
		SSLMode: "disable",
	}
}

// Store implements history.Store on PostgreSQL.
type Store struct {
	db *sql.DB
}

// New connects to PostgreSQL and prepares the history table.
func New(cfg *Config) (*Store, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := config.ValidatePostgresConfig(cfg.Host, cfg.Port, cfg.User, cfg.DBName, cfg.SSLMode); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("pg history: open: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pg history: ping: %w", err)
	}

	s := &Store{db: db}
	if err := s.createTable(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewFromDSN connects using a raw connection string.
func NewFromDSN(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("pg history: open: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pg history: ping: %w", err)
	}
	s := &Store{db: db}
	if err := s.createTable(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) createTable(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS summaries (
		id VARCHAR(64) PRIMARY KEY,
		source TEXT NOT NULL,
		model VARCHAR(255) NOT NULL,
		notice TEXT,
		summary TEXT NOT NULL,
		input_words INTEGER NOT NULL,
		duration_ms BIGINT NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_summaries_created_at ON summaries(created_at DESC);`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("pg history: create table: %w", err)
	}
	return nil
}

// Append implements history.Store.
func (s *Store) Append(ctx context.Context, rec *history.Record) error {
	if rec == nil {
		return fmt.Errorf("pg history: record cannot be nil")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO summaries (id, source, model, notice, summary, input_words, duration_ms, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.Source, rec.Model, rec.Notice, rec.Summary,
		rec.InputWords, rec.Duration.Milliseconds(), rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("pg history: insert: %w", err)
	}
	return nil
}

// Recent implements history.Store.
func (s *Store) Recent(ctx context.Context, limit int) ([]*history.Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, model, notice, summary, input_words, duration_ms, created_at
		 FROM summaries ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("pg history: query: %w", err)
	}
	defer rows.Close()

	var recs []*history.Record
	for rows.Next() {
		var rec history.Record
		var durationMs int64
		if err := rows.Scan(&rec.ID, &rec.Source, &rec.Model, &rec.Notice,
			&rec.Summary, &rec.InputWords, &durationMs, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("pg history: scan: %w", err)
		}
		rec.Duration = time.Duration(durationMs) * time.Millisecond
		recs = append(recs, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pg history: rows: %w", err)
	}
	return recs, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

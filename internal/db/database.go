package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rishwanthvallala/train-data-analyser/internal/models"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the SQLite connection holding upload history. Analysis
// results are never stored; this is ingest bookkeeping only.
type Database struct {
	conn *sql.DB
}

// New creates a new database connection
func New(dbPath string) (*Database, error) {
	// Enable WAL mode and other optimizations via connection string
	connStr := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_cache_size=10000", dbPath)

	conn, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite works best with a single writer
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(time.Hour)

	db := &Database{conn: conn}

	if err := db.initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return db, nil
}

// initialize creates tables and indexes
func (db *Database) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS uploads (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		filename TEXT NOT NULL,
		size_bytes INTEGER NOT NULL,
		uploaded_at DATETIME NOT NULL,
		sample_count INTEGER NOT NULL,
		status TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_uploads_uploaded_at ON uploads(uploaded_at);
	CREATE INDEX IF NOT EXISTS idx_uploads_status ON uploads(status);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// Close closes the database connection
func (db *Database) Close() error {
	return db.conn.Close()
}

// RecordUpload adds one upload record and fills in its assigned ID.
func (db *Database) RecordUpload(u *models.UploadRecord) error {
	if u.UploadedAt.IsZero() {
		u.UploadedAt = time.Now().UTC()
	}
	query := `INSERT INTO uploads (filename, size_bytes, uploaded_at, sample_count, status) VALUES (?, ?, ?, ?, ?)`
	result, err := db.conn.Exec(query, u.Filename, u.SizeBytes, u.UploadedAt, u.SampleCount, u.Status)
	if err != nil {
		return err
	}

	id, _ := result.LastInsertId()
	u.ID = id
	return nil
}

// ListUploads returns the most recent uploads, newest first.
func (db *Database) ListUploads(limit int) ([]models.UploadRecord, error) {
	query := `SELECT id, filename, size_bytes, uploaded_at, sample_count, status FROM uploads ORDER BY uploaded_at DESC, id DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var uploads []models.UploadRecord
	for rows.Next() {
		var u models.UploadRecord
		if err := rows.Scan(&u.ID, &u.Filename, &u.SizeBytes, &u.UploadedAt, &u.SampleCount, &u.Status); err != nil {
			return nil, err
		}
		uploads = append(uploads, u)
	}
	return uploads, rows.Err()
}

// GetStats returns database statistics
func (db *Database) GetStats() (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var totalUploads int64
	db.conn.QueryRow("SELECT COUNT(*) FROM uploads").Scan(&totalUploads)
	stats["total_uploads"] = totalUploads

	var failedUploads int64
	db.conn.QueryRow("SELECT COUNT(*) FROM uploads WHERE status != 'ok'").Scan(&failedUploads)
	stats["failed_uploads"] = failedUploads

	return stats, nil
}

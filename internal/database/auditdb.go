package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/uxscan/uxscan/internal/model"
)

// ErrReportNotFound is returned when a requested report row does not exist.
var ErrReportNotFound = errors.New("database: report not found")

// AuditDB provides SQLite-based storage for finished audit reports.
//
// Design decision: We store the full report as a JSON column next to a
// few indexed scalar columns (URL, date, scores) rather than normalizing
// the principle results into rows. The archive exists to keep and fetch
// whole reports; the scalars are there so listing doesn't deserialize
// every row.
type AuditDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures AuditDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates an AuditDB in the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*AuditDB, error) {
	dbPath := filepath.Join(dbDir, "uxscan.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	adb := &AuditDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := adb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return adb, nil
}

// Close closes the database connection.
func (adb *AuditDB) Close() error {
	return adb.db.Close()
}

// Path returns the path of the database file.
func (adb *AuditDB) Path() string {
	return adb.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (adb *AuditDB) createTables() error {
	schema := `
	-- Audit reports, one row per finished run
	CREATE TABLE IF NOT EXISTS audit_reports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		url TEXT NOT NULL,
		audited_at DATETIME NOT NULL,
		overall_average REAL NOT NULL,
		total_score INTEGER NOT NULL,
		overall_grade TEXT NOT NULL,
		report_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_audit_reports_url ON audit_reports(url);
	CREATE INDEX IF NOT EXISTS idx_audit_reports_audited_at ON audit_reports(audited_at);
	`

	if _, err := adb.db.ExecContext(context.Background(), schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// SaveReport appends a finished report to the archive.
func (adb *AuditDB) SaveReport(ctx context.Context, report *model.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	_, err = adb.db.ExecContext(ctx, `
		INSERT INTO audit_reports (url, audited_at, overall_average, total_score, overall_grade, report_json)
		VALUES (?, ?, ?, ?, ?, ?)`,
		report.URL,
		report.AuditedAt.UTC().Format(time.RFC3339),
		report.OverallAverage,
		report.TotalScore,
		report.OverallGrade.String(),
		string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}
	return nil
}

// SavedReport is one archived report row.
type SavedReport struct {
	// ID is the row's primary key.
	ID int64

	// URL is the audited page address.
	URL string

	// AuditedAt is when the audit ran.
	AuditedAt time.Time

	// OverallAverage and TotalScore mirror the report's aggregate scores.
	OverallAverage float64
	TotalScore     int

	// OverallGrade is the qualitative band label.
	OverallGrade string
}

// ListReports returns the most recent archived reports, newest first,
// without deserializing the report bodies.
func (adb *AuditDB) ListReports(ctx context.Context, limit int) ([]SavedReport, error) {
	rows, err := adb.db.QueryContext(ctx, `
		SELECT id, url, audited_at, overall_average, total_score, overall_grade
		FROM audit_reports
		ORDER BY audited_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only rows

	var out []SavedReport
	for rows.Next() {
		var (
			r         SavedReport
			auditedAt string
		)
		if err := rows.Scan(&r.ID, &r.URL, &auditedAt, &r.OverallAverage, &r.TotalScore, &r.OverallGrade); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		if r.AuditedAt, err = time.Parse(time.RFC3339, auditedAt); err != nil {
			return nil, fmt.Errorf("failed to parse audited_at: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate report rows: %w", err)
	}
	return out, nil
}

// GetReport fetches one archived report body by row ID.
func (adb *AuditDB) GetReport(ctx context.Context, id int64) (*model.Report, error) {
	var data string
	err := adb.db.QueryRowContext(ctx,
		`SELECT report_json FROM audit_reports WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrReportNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query report: %w", err)
	}

	var report model.Report
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, fmt.Errorf("failed to deserialize report: %w", err)
	}
	return &report, nil
}

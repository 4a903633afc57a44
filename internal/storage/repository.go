// Package storage persists records to SQLite as flat (kind,id)→JSON rows and
// archives record-change events as activity rows.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Activity is one archived record-change event.
type Activity struct {
	EventID    string    `json:"event_id"`
	RecordKind string    `json:"record_kind"`
	Operation  string    `json:"operation"`
	RecordID   int64     `json:"record_id"`
	Label      string    `json:"label"`
	OccurredAt time.Time `json:"occurred_at"`
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// UpsertRecord stores one record as its JSON serialization, keyed by kind and
// id.
func (r *SQLiteRepository) UpsertRecord(ctx context.Context, kind string, id int64, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal %s record: %w", kind, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO records (kind, id, data, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (kind, id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		kind, id, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upsert %s record: %w", kind, err)
	}

	slog.DebugContext(ctx, "Record persisted",
		"record_kind", kind,
		"record_id", id)
	return nil
}

// DeleteRecord removes one persisted record.
func (r *SQLiteRepository) DeleteRecord(ctx context.Context, kind string, id int64) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM records WHERE kind = ? AND id = ?`, kind, id); err != nil {
		return fmt.Errorf("delete %s record: %w", kind, err)
	}
	return nil
}

// LoadRecords returns the raw JSON rows for a kind, ordered by id so insertion
// order is reconstructed deterministically.
func (r *SQLiteRepository) LoadRecords(ctx context.Context, kind string) ([]json.RawMessage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT data FROM records WHERE kind = ? ORDER BY id`, kind)
	if err != nil {
		return nil, fmt.Errorf("query %s records: %w", kind, err)
	}
	defer rows.Close()

	var out []json.RawMessage
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan %s record: %w", kind, err)
		}
		out = append(out, json.RawMessage(data))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s records: %w", kind, err)
	}
	return out, nil
}

// LoadAll unmarshals every persisted record of a kind.
func LoadAll[T any](ctx context.Context, r *SQLiteRepository, kind string) ([]T, error) {
	raw, err := r.LoadRecords(ctx, kind)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(raw))
	for _, data := range raw {
		var item T
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, fmt.Errorf("unmarshal %s record: %w", kind, err)
		}
		out = append(out, item)
	}
	return out, nil
}

// ArchiveActivity records one consumed record event. Re-deliveries are
// ignored via the event id uniqueness constraint.
func (r *SQLiteRepository) ArchiveActivity(ctx context.Context, a Activity) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO activities (event_id, record_kind, operation, record_id, label, occurred_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (event_id) DO NOTHING`,
		a.EventID, a.RecordKind, a.Operation, a.RecordID, a.Label, a.OccurredAt.UTC())
	if err != nil {
		return fmt.Errorf("archive activity: %w", err)
	}
	return nil
}

// RecentActivities returns the newest archived activities, newest first.
func (r *SQLiteRepository) RecentActivities(ctx context.Context, limit int) ([]Activity, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT event_id, record_kind, operation, record_id, label, occurred_at
		FROM activities ORDER BY occurred_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close()

	var out []Activity
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.EventID, &a.RecordKind, &a.Operation, &a.RecordID, &a.Label, &a.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}
	return out, nil
}

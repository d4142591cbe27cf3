package repositories

import (
	"database/sql"
	"encoding/json"
	"time"

	"motoroutes/internal/domain"
)

// Well-known snapshot keys. Each one is an independent JSON blob; there is no
// cross-key transaction.
const (
	KeyItineraries = "itineraries"
	KeyCompletion  = "completion"
	KeyMedia       = "media"
)

// Gateway is the generic keyed load/save contract the services persist
// through. Tests swap in an in-memory implementation.
type Gateway interface {
	Save(key string, v any) error
	Load(key string, dst any) error
}

// SnapshotRepository wraps DB access for the snapshots table: one row per
// well-known key holding the full JSON-serialized collection.
type SnapshotRepository struct {
	DB *sql.DB
}

// EnsureSchema creates the snapshots table when missing.
func (r SnapshotRepository) EnsureSchema() error {
	_, err := r.DB.Exec(`CREATE TABLE IF NOT EXISTS snapshots (
		key        TEXT PRIMARY KEY,
		data       BLOB NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`)
	return err
}

// Save marshals v and upserts it under key, replacing the previous snapshot
// whole. Mutations always rewrite the entire collection.
func (r SnapshotRepository) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return domain.InternalError{Msg: "marshal snapshot " + key, Err: err}
	}
	_, err = r.DB.Exec(`INSERT INTO snapshots (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data=excluded.data, updated_at=excluded.updated_at`,
		key, data, time.Now())
	return err
}

// Load unmarshals the snapshot under key into dst. A missing key reports
// domain.NotFoundError so callers can fall back to fresh ingestion.
func (r SnapshotRepository) Load(key string, dst any) error {
	var data []byte
	err := r.DB.QueryRow(`SELECT data FROM snapshots WHERE key = ?`, key).Scan(&data)
	if err == sql.ErrNoRows {
		return domain.NotFoundError{Resource: "snapshot " + key}
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return domain.InternalError{Msg: "unmarshal snapshot " + key, Err: err}
	}
	return nil
}

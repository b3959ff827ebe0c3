/*
Package sqlite provides the SQLite-backed mirror of open-format entities.

PURPOSE:
  The sync planner needs to know what the ledger already holds to decide
  whether an incoming open-format object is a create, an edit, or a
  no-op. The mirror keeps one row per (entity type, entity id) with the
  canonical open-format JSON last pushed to or pulled from the ledger,
  plus a history of sync runs.

KEY TABLES:
  entities:  One row per mirrored entity, canonical open-format JSON
  sync_runs: One row per planner run with action counts

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/mirror.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  planner := sync.NewPlanner(store)

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - sync/planner.go: The consumer of this mirror
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Fairmint/ocp-canton-sdk-sub006/convert"
	"github.com/Fairmint/ocp-canton-sdk-sub006/ocf"
)

// Store is the SQLite-backed entity mirror.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New opens (or creates) a mirror database at the given path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Mirrored entities: one row per (type, id), canonical open-format JSON
	CREATE TABLE IF NOT EXISTS entities (
		entity_type TEXT NOT NULL,
		entity_id   TEXT NOT NULL,
		body_json   TEXT NOT NULL,
		updated_at  TEXT NOT NULL,
		PRIMARY KEY (entity_type, entity_id)
	);

	CREATE INDEX IF NOT EXISTS idx_entities_type
		ON entities(entity_type);

	-- Sync runs: one row per planner invocation
	CREATE TABLE IF NOT EXISTS sync_runs (
		id          TEXT PRIMARY KEY,
		started_at  TEXT NOT NULL,
		finished_at TEXT,
		creates     INTEGER DEFAULT 0,
		edits       INTEGER DEFAULT 0,
		noops       INTEGER DEFAULT 0,
		failures    INTEGER DEFAULT 0,
		error       TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_sync_runs_started
		ON sync_runs(started_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// ENTITY MIRROR
// =============================================================================

// Get returns the mirrored open-format object, or ok=false when the
// entity has never been mirrored.
func (s *Store) Get(ctx context.Context, typ ocf.ObjectType, id string) (convert.Document, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var body string
	err := s.db.QueryRowContext(ctx,
		"SELECT body_json FROM entities WHERE entity_type = ? AND entity_id = ?",
		string(typ), id,
	).Scan(&body)

	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load entity %s/%s: %w", typ, id, err)
	}

	var doc convert.Document
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, false, fmt.Errorf("corrupt mirror row %s/%s: %w", typ, id, err)
	}
	return doc, true, nil
}

// Put upserts the mirrored object for an entity.
func (s *Store) Put(ctx context.Context, typ ocf.ObjectType, id string, doc convert.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode entity %s/%s: %w", typ, id, err)
	}

	query := `
		INSERT INTO entities (entity_type, entity_id, body_json, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(entity_type, entity_id) DO UPDATE SET
			body_json = excluded.body_json,
			updated_at = excluded.updated_at
	`
	_, err = s.db.ExecContext(ctx, query,
		string(typ), id, string(body),
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// Delete removes a mirrored entity. Deleting a row that was never
// mirrored is not an error.
func (s *Store) Delete(ctx context.Context, typ ocf.ObjectType, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		"DELETE FROM entities WHERE entity_type = ? AND entity_id = ?",
		string(typ), id,
	)
	return err
}

// ListByType returns all mirrored objects of one type, ordered by id.
func (s *Store) ListByType(ctx context.Context, typ ocf.ObjectType) ([]convert.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT entity_id, body_json FROM entities WHERE entity_type = ? ORDER BY entity_id",
		string(typ),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []convert.Document
	for rows.Next() {
		var id, body string
		if err := rows.Scan(&id, &body); err != nil {
			return nil, err
		}
		var doc convert.Document
		if err := json.Unmarshal([]byte(body), &doc); err != nil {
			return nil, fmt.Errorf("corrupt mirror row %s/%s: %w", typ, id, err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// Count returns the number of mirrored rows for a type. "" counts all.
func (s *Store) Count(ctx context.Context, typ ocf.ObjectType) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		count int
		err   error
	)
	if typ == "" {
		err = s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM entities").Scan(&count)
	} else {
		err = s.db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM entities WHERE entity_type = ?", string(typ)).Scan(&count)
	}
	return count, err
}

// Reset clears all mirrored data (for testing/demo).
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, table := range []string{"entities", "sync_runs"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// SYNC RUN HISTORY
// =============================================================================

// SyncRun is one planner invocation and its outcome counts.
type SyncRun struct {
	ID         string
	StartedAt  time.Time
	FinishedAt *time.Time
	Creates    int
	Edits      int
	Noops      int
	Failures   int
	Error      string
}

// SaveSyncRun upserts a sync run record.
func (s *Store) SaveSyncRun(ctx context.Context, r SyncRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var finishedAt *string
	if r.FinishedAt != nil {
		t := r.FinishedAt.Format(time.RFC3339)
		finishedAt = &t
	}

	query := `
		INSERT INTO sync_runs (id, started_at, finished_at, creates, edits, noops, failures, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			finished_at = excluded.finished_at,
			creates = excluded.creates,
			edits = excluded.edits,
			noops = excluded.noops,
			failures = excluded.failures,
			error = excluded.error
	`
	_, err := s.db.ExecContext(ctx, query,
		r.ID, r.StartedAt.Format(time.RFC3339), finishedAt,
		r.Creates, r.Edits, r.Noops, r.Failures, r.Error,
	)
	return err
}

// RecentSyncRuns returns the most recent sync runs, newest first.
func (s *Store) RecentSyncRuns(ctx context.Context, limit int) ([]SyncRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, finished_at, creates, edits, noops, failures, error
		FROM sync_runs
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []SyncRun
	for rows.Next() {
		var (
			r          SyncRun
			startedAt  string
			finishedAt sql.NullString
			errText    sql.NullString
		)
		if err := rows.Scan(&r.ID, &startedAt, &finishedAt,
			&r.Creates, &r.Edits, &r.Noops, &r.Failures, &errText); err != nil {
			return nil, err
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		if finishedAt.Valid {
			t, _ := time.Parse(time.RFC3339, finishedAt.String)
			r.FinishedAt = &t
		}
		r.Error = errText.String
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

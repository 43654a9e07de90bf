package store

// #region imports
import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/zhang-liz/buildstory/internal/content"
)

// #endregion imports

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS arm_states (
	scope       TEXT NOT NULL,
	slot        TEXT NOT NULL,
	variant     TEXT NOT NULL,
	alpha       INTEGER NOT NULL DEFAULT 1,
	beta        INTEGER NOT NULL DEFAULT 1,
	updated_at  TEXT NOT NULL,
	UNIQUE(scope, slot, variant)
);
CREATE INDEX IF NOT EXISTS idx_arm_states_scope ON arm_states(scope, slot);

CREATE TABLE IF NOT EXISTS events (
	id            TEXT PRIMARY KEY,
	scope         TEXT NOT NULL,
	segment       TEXT,
	slot          TEXT,
	variant       TEXT,
	kind          TEXT NOT NULL,
	metadata_json TEXT,
	created_at    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_events_lookup ON events(scope, slot, variant, kind, created_at);

CREATE TABLE IF NOT EXISTS document_variants (
	id          TEXT PRIMARY KEY,
	scope       TEXT NOT NULL,
	segment     TEXT NOT NULL,
	doc_json    TEXT NOT NULL,
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_document_variants_scope ON document_variants(scope, segment);
`

// #endregion schema

// timeLayout pads fractional seconds to fixed width. RFC3339Nano trims
// trailing zeros, so "12:00:00Z" would sort after "12:00:00.5Z" in the
// TEXT columns; fixed width keeps lexicographic order equal to time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// #region store-struct

// Store persists experiment arms, the event log, and saved document
// variants in SQLite. Reward application is a server-side increment so
// concurrent writers for the same arm serialize in the database instead
// of racing a read-modify-write cycle.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor

// NewStore opens a SQLite database and runs migrations. The pragmas ride
// in the DSN so every pooled connection gets them; a bare Exec would
// configure only whichever connection happened to run it, leaving the
// rest without a busy timeout.
func NewStore(dbPath string) (*Store, error) {
	dsn := "file:" + dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion constructor

// #region get-arm

// GetArmState reads one arm. The second return is false when the arm has
// never been materialized.
func (s *Store) GetArmState(ctx context.Context, scope, slot, variant string) (ArmState, bool, error) {
	var rec ArmState
	var updatedStr string
	err := s.db.QueryRowContext(ctx,
		`SELECT scope, slot, variant, alpha, beta, updated_at
		 FROM arm_states WHERE scope = ? AND slot = ? AND variant = ?`,
		scope, slot, variant,
	).Scan(&rec.Scope, &rec.Slot, &rec.Variant, &rec.Alpha, &rec.Beta, &updatedStr)
	if err == sql.ErrNoRows {
		return ArmState{}, false, nil
	}
	if err != nil {
		return ArmState{}, false, fmt.Errorf("get arm %s/%s/%s: %w", scope, slot, variant, err)
	}
	rec.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedStr)
	return rec, true, nil
}

// #endregion get-arm

// #region ensure-arm

// EnsureArmState materializes the arm at the uniform prior if absent and
// returns its current state. Creation is upsert-if-absent, so concurrent
// callers cannot double-initialize or clobber live counters.
func (s *Store) EnsureArmState(ctx context.Context, scope, slot, variant string) (ArmState, error) {
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO arm_states (scope, slot, variant, alpha, beta, updated_at)
		 VALUES (?, ?, ?, 1, 1, ?)
		 ON CONFLICT(scope, slot, variant) DO NOTHING`,
		scope, slot, variant, now.Format(timeLayout),
	)
	if err != nil {
		return ArmState{}, fmt.Errorf("ensure arm %s/%s/%s: %w", scope, slot, variant, err)
	}

	rec, ok, err := s.GetArmState(ctx, scope, slot, variant)
	if err != nil {
		return ArmState{}, err
	}
	if !ok {
		return ArmState{}, fmt.Errorf("ensure arm %s/%s/%s: vanished after insert", scope, slot, variant)
	}
	return rec, nil
}

// #endregion ensure-arm

// #region apply-reward

// ApplyReward folds a binary reward into the arm's posterior with a single
// atomic increment and returns the updated state. The arm is materialized
// first if needed; a conversion can arrive for an arm this process never
// initialized.
func (s *Store) ApplyReward(ctx context.Context, scope, slot, variant string, reward int) (ArmState, error) {
	dAlpha, dBeta := 0, 1
	if reward > 0 {
		dAlpha, dBeta = 1, 0
	}

	if _, err := s.EnsureArmState(ctx, scope, slot, variant); err != nil {
		return ArmState{}, err
	}

	_, err := s.db.ExecContext(ctx,
		`UPDATE arm_states SET alpha = alpha + ?, beta = beta + ?, updated_at = ?
		 WHERE scope = ? AND slot = ? AND variant = ?`,
		dAlpha, dBeta, time.Now().UTC().Format(timeLayout),
		scope, slot, variant,
	)
	if err != nil {
		return ArmState{}, fmt.Errorf("apply reward %s/%s/%s: %w", scope, slot, variant, err)
	}

	rec, _, err := s.GetArmState(ctx, scope, slot, variant)
	return rec, err
}

// #endregion apply-reward

// #region upsert-arm

// UpsertArmState overwrites an arm's counters. Only reset uses this; reward
// paths go through ApplyReward to stay atomic under concurrency.
func (s *Store) UpsertArmState(ctx context.Context, rec ArmState) error {
	if rec.Alpha < 1 || rec.Beta < 1 {
		return fmt.Errorf("upsert arm %s/%s/%s: counters below prior (alpha=%d beta=%d)",
			rec.Scope, rec.Slot, rec.Variant, rec.Alpha, rec.Beta)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO arm_states (scope, slot, variant, alpha, beta, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(scope, slot, variant) DO UPDATE SET
		   alpha = excluded.alpha, beta = excluded.beta, updated_at = excluded.updated_at`,
		rec.Scope, rec.Slot, rec.Variant, rec.Alpha, rec.Beta,
		time.Now().UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("upsert arm %s/%s/%s: %w", rec.Scope, rec.Slot, rec.Variant, err)
	}
	return nil
}

// #endregion upsert-arm

// #region list-arms

// ListArmStates returns every arm under a scope, optionally filtered to one
// slot (empty slot means all slots). Ordered for reproducible reports.
func (s *Store) ListArmStates(ctx context.Context, scope, slot string) ([]ArmState, error) {
	query := `SELECT scope, slot, variant, alpha, beta, updated_at
		 FROM arm_states WHERE scope = ?`
	args := []any{scope}
	if slot != "" {
		query += ` AND slot = ?`
		args = append(args, slot)
	}
	query += ` ORDER BY slot, variant`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list arms %s: %w", scope, err)
	}
	defer rows.Close()

	var out []ArmState
	for rows.Next() {
		var rec ArmState
		var updatedStr string
		if err := rows.Scan(&rec.Scope, &rec.Slot, &rec.Variant, &rec.Alpha, &rec.Beta, &updatedStr); err != nil {
			return nil, fmt.Errorf("scan arm: %w", err)
		}
		rec.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedStr)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// #endregion list-arms

// #region append-event

// AppendEvent writes one event row. ID and CreatedAt are filled in when
// the caller leaves them zero.
func (s *Store) AppendEvent(ctx context.Context, ev Event) error {
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}

	var metaJSON any
	if len(ev.Metadata) > 0 {
		raw, err := json.Marshal(ev.Metadata)
		if err != nil {
			return fmt.Errorf("marshal event metadata: %w", err)
		}
		metaJSON = string(raw)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO events (id, scope, segment, slot, variant, kind, metadata_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.Scope, nullIfEmpty(ev.Segment), nullIfEmpty(ev.Slot),
		nullIfEmpty(ev.Variant), ev.Kind, metaJSON,
		ev.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("append event %s: %w", ev.Kind, err)
	}
	return nil
}

// #endregion append-event

// #region count-events

// CountEvents counts events of one kind for an arm since the given time.
func (s *Store) CountEvents(ctx context.Context, scope, slot, variant, kind string, since time.Time) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM events
		 WHERE scope = ? AND slot = ? AND variant = ? AND kind = ? AND created_at >= ?`,
		scope, slot, variant, kind, since.UTC().Format(timeLayout),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count events %s/%s/%s %s: %w", scope, slot, variant, kind, err)
	}
	return n, nil
}

// #endregion count-events

// #region list-events

// ListEvents returns a scope's events of the given kinds in insertion
// order. Empty kinds means every kind. Feeds the replay rebuild.
func (s *Store) ListEvents(ctx context.Context, scope string, kinds []string) ([]Event, error) {
	query := `SELECT id, scope, segment, slot, variant, kind, metadata_json, created_at
		 FROM events WHERE scope = ?`
	args := []any{scope}
	if len(kinds) > 0 {
		query += ` AND kind IN (?` + repeatPlaceholder(len(kinds)-1) + `)`
		for _, k := range kinds {
			args = append(args, k)
		}
	}
	query += ` ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events %s: %w", scope, err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var ev Event
		var segment, slot, variant, metaJSON sql.NullString
		var createdStr string
		if err := rows.Scan(&ev.ID, &ev.Scope, &segment, &slot, &variant, &ev.Kind, &metaJSON, &createdStr); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		ev.Segment, ev.Slot, ev.Variant = segment.String, slot.String, variant.String
		if metaJSON.Valid && metaJSON.String != "" {
			if err := json.Unmarshal([]byte(metaJSON.String), &ev.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshal event metadata: %w", err)
			}
		}
		ev.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		out = append(out, ev)
	}
	return out, rows.Err()
}

// #endregion list-events

// #region documents

// SaveDocumentVariant stores an authored document under (scope, segment)
// so later assemblies can pull its sections as candidates.
func (s *Store) SaveDocumentVariant(ctx context.Context, scope string, doc content.Document) (string, error) {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO document_variants (id, scope, segment, doc_json, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET doc_json = excluded.doc_json`,
		doc.ID, scope, doc.Segment, string(raw),
		time.Now().UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("save document %s: %w", doc.ID, err)
	}
	return doc.ID, nil
}

// ListDocumentVariants returns prior saved documents for (scope, segment),
// oldest first.
func (s *Store) ListDocumentVariants(ctx context.Context, scope, segment string) ([]content.Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT doc_json FROM document_variants
		 WHERE scope = ? AND segment = ? ORDER BY created_at, id`,
		scope, segment,
	)
	if err != nil {
		return nil, fmt.Errorf("list documents %s/%s: %w", scope, segment, err)
	}
	defer rows.Close()

	var out []content.Document
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		var doc content.Document
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, fmt.Errorf("unmarshal document: %w", err)
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// #endregion documents

// #region helpers

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func repeatPlaceholder(n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += ", ?"
	}
	return out
}

// #endregion helpers

// Package sqlite implements the planner store on modernc.org/sqlite,
// the default driver for local single-binary deployments.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/PickleRicc/deep-work-sub001/internal/model"
	"github.com/PickleRicc/deep-work-sub001/internal/store"
)

// Open opens (or creates) a SQLite database at the given path with WAL
// journaling and foreign keys enabled.
func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// OpenMemory opens a private in-memory database, used by tests.
func OpenMemory() (*sql.DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	// A single in-memory database per connection; keep the pool at one.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the planner tables when they do not exist.
func EnsureSchema(db *sql.DB) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS time_blocks (
    block_id      TEXT PRIMARY KEY,
    user_id       TEXT NOT NULL,
    date          TEXT NOT NULL,
    start_time    TEXT NOT NULL,
    end_time      TEXT NOT NULL,
    block_type    TEXT NOT NULL,
    task_title    TEXT,
    completed     INTEGER NOT NULL DEFAULT 0,
    creation_time TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_time_blocks_user_date ON time_blocks(user_id, date);

CREATE TABLE IF NOT EXISTS tasks (
    task_id       TEXT PRIMARY KEY,
    user_id       TEXT NOT NULL,
    title         TEXT NOT NULL,
    status        TEXT NOT NULL,
    tags          TEXT,
    completed_at  TIMESTAMP,
    creation_time TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id);

CREATE TABLE IF NOT EXISTS task_reviews (
    review_id        TEXT PRIMARY KEY,
    user_id          TEXT NOT NULL,
    task_id          TEXT NOT NULL,
    enjoyment_rating INTEGER NOT NULL,
    overall_rating   INTEGER NOT NULL,
    energy_required  TEXT NOT NULL,
    creation_time    TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_task_reviews_user ON task_reviews(user_id);

CREATE TABLE IF NOT EXISTS notification_prefs (
    user_id      TEXT PRIMARY KEY,
    enabled      INTEGER NOT NULL,
    lead_minutes INTEGER NOT NULL
);
`
	_, err := db.Exec(ddl)
	return err
}

// New opens the database at path, ensures the schema, and returns a
// ready store.
func New(path string) (store.Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	if err := EnsureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewWithDB(db), nil
}

// NewWithDB wires the store over an existing connection (used by the
// factory and by tests).
func NewWithDB(db *sql.DB) store.Store { return &liteStore{db: db} }

type liteStore struct{ db *sql.DB }

func (s *liteStore) Blocks() store.Blocks   { return &blocks{db: s.db} }
func (s *liteStore) Tasks() store.Tasks     { return &tasks{db: s.db} }
func (s *liteStore) Reviews() store.Reviews { return &reviews{db: s.db} }
func (s *liteStore) Prefs() store.Prefs     { return &prefs{db: s.db} }

// HealthPing implements health.Pinger.
func (s *liteStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// --- Blocks ---

type blocks struct{ db *sql.DB }

const blockColumns = `block_id, user_id, date, start_time, end_time, block_type, task_title, completed, creation_time`

func (b *blocks) Create(ctx context.Context, m *model.TimeBlock) (*model.TimeBlock, error) {
	out := *m
	if out.BlockID == "" {
		out.BlockID = uuid.New().String()
	}
	out.CreationTime = time.Now().UTC()

	_, err := b.db.ExecContext(ctx, `
        INSERT INTO time_blocks (`+blockColumns+`)
        VALUES (?,?,?,?,?,?,?,?,?)
    `, out.BlockID, out.UserID, out.Date, out.StartTime, out.EndTime, out.BlockType, out.TaskTitle, out.Completed, out.CreationTime)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *blocks) ListForDate(ctx context.Context, userID, date string) ([]model.TimeBlock, error) {
	return b.query(ctx, `
        SELECT `+blockColumns+` FROM time_blocks
        WHERE user_id=? AND date=? ORDER BY start_time
    `, userID, date)
}

func (b *blocks) ListRange(ctx context.Context, userID, fromDate, toDate string) ([]model.TimeBlock, error) {
	return b.query(ctx, `
        SELECT `+blockColumns+` FROM time_blocks
        WHERE user_id=? AND date>=? AND date<=? ORDER BY date, start_time
    `, userID, fromDate, toDate)
}

func (b *blocks) ListAll(ctx context.Context, userID string) ([]model.TimeBlock, error) {
	return b.query(ctx, `
        SELECT `+blockColumns+` FROM time_blocks
        WHERE user_id=? ORDER BY date, start_time
    `, userID)
}

func (b *blocks) query(ctx context.Context, q string, args ...any) ([]model.TimeBlock, error) {
	rows, err := b.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.TimeBlock
	for rows.Next() {
		var m model.TimeBlock
		if err := rows.Scan(&m.BlockID, &m.UserID, &m.Date, &m.StartTime, &m.EndTime, &m.BlockType, &m.TaskTitle, &m.Completed, &m.CreationTime); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (b *blocks) ReplaceDay(ctx context.Context, userID, date string, bs []model.TimeBlock) error {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM time_blocks WHERE user_id=? AND date=?`, userID, date); err != nil {
		return err
	}
	now := time.Now().UTC()
	for i := range bs {
		m := bs[i]
		if m.BlockID == "" {
			m.BlockID = uuid.New().String()
		}
		if m.CreationTime.IsZero() {
			m.CreationTime = now
		}
		if _, err := tx.ExecContext(ctx, `
            INSERT INTO time_blocks (`+blockColumns+`)
            VALUES (?,?,?,?,?,?,?,?,?)
        `, m.BlockID, userID, date, m.StartTime, m.EndTime, m.BlockType, m.TaskTitle, m.Completed, m.CreationTime); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (b *blocks) Delete(ctx context.Context, userID, blockID string) error {
	res, err := b.db.ExecContext(ctx, `DELETE FROM time_blocks WHERE user_id=? AND block_id=?`, userID, blockID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

// --- Tasks ---

type tasks struct{ db *sql.DB }

func (t *tasks) Create(ctx context.Context, m *model.Task) (*model.Task, error) {
	out := *m
	if out.TaskID == "" {
		out.TaskID = uuid.New().String()
	}
	if out.Status == "" {
		out.Status = model.TaskBacklog
	}
	out.CreationTime = time.Now().UTC()

	tags, err := marshalTags(out.Tags)
	if err != nil {
		return nil, err
	}
	_, err = t.db.ExecContext(ctx, `
        INSERT INTO tasks (task_id, user_id, title, status, tags, completed_at, creation_time)
        VALUES (?,?,?,?,?,?,?)
    `, out.TaskID, out.UserID, out.Title, out.Status, tags, out.CompletedAt, out.CreationTime)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (t *tasks) List(ctx context.Context, userID string) ([]model.Task, error) {
	rows, err := t.db.QueryContext(ctx, `
        SELECT task_id, user_id, title, status, tags, completed_at, creation_time
        FROM tasks WHERE user_id=? ORDER BY creation_time
    `, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.Task
	for rows.Next() {
		m, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

func (t *tasks) UpdateStatus(ctx context.Context, userID, taskID, status string) (*model.Task, error) {
	var completedAt *time.Time
	if status == model.TaskCompleted {
		now := time.Now().UTC()
		completedAt = &now
	}
	res, err := t.db.ExecContext(ctx, `
        UPDATE tasks SET status=?, completed_at=? WHERE user_id=? AND task_id=?
    `, status, completedAt, userID, taskID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, model.ErrNotFound
	}

	row := t.db.QueryRowContext(ctx, `
        SELECT task_id, user_id, title, status, tags, completed_at, creation_time
        FROM tasks WHERE user_id=? AND task_id=?
    `, userID, taskID)
	return scanTask(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*model.Task, error) {
	var m model.Task
	var tags *string
	if err := row.Scan(&m.TaskID, &m.UserID, &m.Title, &m.Status, &tags, &m.CompletedAt, &m.CreationTime); err != nil {
		return nil, err
	}
	if tags != nil && *tags != "" {
		if err := json.Unmarshal([]byte(*tags), &m.Tags); err != nil {
			return nil, errors.Wrap(err, "decode task tags")
		}
	}
	return &m, nil
}

func marshalTags(tags []string) (*string, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return nil, errors.Wrap(err, "encode task tags")
	}
	s := string(b)
	return &s, nil
}

// --- Reviews ---

type reviews struct{ db *sql.DB }

func (r *reviews) Create(ctx context.Context, m *model.TaskReview) (*model.TaskReview, error) {
	out := *m
	if out.ReviewID == "" {
		out.ReviewID = uuid.New().String()
	}
	out.CreationTime = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
        INSERT INTO task_reviews (review_id, user_id, task_id, enjoyment_rating, overall_rating, energy_required, creation_time)
        VALUES (?,?,?,?,?,?,?)
    `, out.ReviewID, out.UserID, out.TaskID, out.EnjoymentRating, out.OverallRating, out.EnergyRequired, out.CreationTime)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *reviews) List(ctx context.Context, userID string) ([]model.TaskReview, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT review_id, user_id, task_id, enjoyment_rating, overall_rating, energy_required, creation_time
        FROM task_reviews WHERE user_id=? ORDER BY creation_time
    `, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.TaskReview
	for rows.Next() {
		var m model.TaskReview
		if err := rows.Scan(&m.ReviewID, &m.UserID, &m.TaskID, &m.EnjoymentRating, &m.OverallRating, &m.EnergyRequired, &m.CreationTime); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// --- Prefs ---

type prefs struct{ db *sql.DB }

func (p *prefs) Get(ctx context.Context, userID string) (*model.NotificationPrefs, error) {
	var m model.NotificationPrefs
	row := p.db.QueryRowContext(ctx, `
        SELECT user_id, enabled, lead_minutes FROM notification_prefs WHERE user_id=?
    `, userID)
	if err := row.Scan(&m.UserID, &m.Enabled, &m.LeadMinutes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &model.NotificationPrefs{UserID: userID, Enabled: true, LeadMinutes: model.DefaultLeadMinutes}, nil
		}
		return nil, err
	}
	return &m, nil
}

func (p *prefs) Put(ctx context.Context, m *model.NotificationPrefs) (*model.NotificationPrefs, error) {
	_, err := p.db.ExecContext(ctx, `
        INSERT INTO notification_prefs (user_id, enabled, lead_minutes)
        VALUES (?,?,?)
        ON CONFLICT(user_id) DO UPDATE SET enabled=excluded.enabled, lead_minutes=excluded.lead_minutes
    `, m.UserID, m.Enabled, m.LeadMinutes)
	if err != nil {
		return nil, err
	}
	out := *m
	return &out, nil
}

func (p *prefs) ListEnabled(ctx context.Context) ([]model.NotificationPrefs, error) {
	rows, err := p.db.QueryContext(ctx, `
        SELECT user_id, enabled, lead_minutes FROM notification_prefs WHERE enabled=1
    `)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.NotificationPrefs
	for rows.Next() {
		var m model.NotificationPrefs
		if err := rows.Scan(&m.UserID, &m.Enabled, &m.LeadMinutes); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

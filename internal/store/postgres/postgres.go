// Package postgres implements the planner store on PostgreSQL via the
// pgx stdlib driver. Schema setup is owned by deployment migrations;
// this package only reads and writes.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"

	"github.com/PickleRicc/deep-work-sub001/internal/model"
	"github.com/PickleRicc/deep-work-sub001/internal/store"
)

// Open opens a PostgreSQL connection and verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Bootstrap performs a fast ping-only reachability check; migrations
// handle schema setup.
func Bootstrap(ctx context.Context, dsn string) error {
	if dsn == "" {
		return nil
	}
	db, err := Open(dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	return db.PingContext(ctx)
}

// NewWithDB wires the store over an existing connection.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Blocks() store.Blocks   { return &blocks{db: s.db} }
func (s *pgStore) Tasks() store.Tasks     { return &tasks{db: s.db} }
func (s *pgStore) Reviews() store.Reviews { return &reviews{db: s.db} }
func (s *pgStore) Prefs() store.Prefs     { return &prefs{db: s.db} }

// HealthPing implements health.Pinger.
func (s *pgStore) HealthPing(ctx context.Context) error {
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

	row := b.db.QueryRowContext(ctx, `
        INSERT INTO time_blocks (block_id, user_id, date, start_time, end_time, block_type, task_title, completed)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING creation_time
    `, out.BlockID, out.UserID, out.Date, out.StartTime, out.EndTime, out.BlockType, out.TaskTitle, out.Completed)
	if err := row.Scan(&out.CreationTime); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *blocks) ListForDate(ctx context.Context, userID, date string) ([]model.TimeBlock, error) {
	return b.query(ctx, `
        SELECT `+blockColumns+` FROM time_blocks
        WHERE user_id=$1 AND date=$2 ORDER BY start_time
    `, userID, date)
}

func (b *blocks) ListRange(ctx context.Context, userID, fromDate, toDate string) ([]model.TimeBlock, error) {
	return b.query(ctx, `
        SELECT `+blockColumns+` FROM time_blocks
        WHERE user_id=$1 AND date>=$2 AND date<=$3 ORDER BY date, start_time
    `, userID, fromDate, toDate)
}

func (b *blocks) ListAll(ctx context.Context, userID string) ([]model.TimeBlock, error) {
	return b.query(ctx, `
        SELECT `+blockColumns+` FROM time_blocks
        WHERE user_id=$1 ORDER BY date, start_time
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

	if _, err := tx.ExecContext(ctx, `DELETE FROM time_blocks WHERE user_id=$1 AND date=$2`, userID, date); err != nil {
		return err
	}
	for i := range bs {
		m := bs[i]
		if m.BlockID == "" {
			m.BlockID = uuid.New().String()
		}
		if _, err := tx.ExecContext(ctx, `
            INSERT INTO time_blocks (block_id, user_id, date, start_time, end_time, block_type, task_title, completed)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        `, m.BlockID, userID, date, m.StartTime, m.EndTime, m.BlockType, m.TaskTitle, m.Completed); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (b *blocks) Delete(ctx context.Context, userID, blockID string) error {
	res, err := b.db.ExecContext(ctx, `DELETE FROM time_blocks WHERE user_id=$1 AND block_id=$2`, userID, blockID)
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
	tags, err := marshalTags(out.Tags)
	if err != nil {
		return nil, err
	}

	row := t.db.QueryRowContext(ctx, `
        INSERT INTO tasks (task_id, user_id, title, status, tags, completed_at)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING creation_time
    `, out.TaskID, out.UserID, out.Title, out.Status, tags, out.CompletedAt)
	if err := row.Scan(&out.CreationTime); err != nil {
		return nil, err
	}
	return &out, nil
}

func (t *tasks) List(ctx context.Context, userID string) ([]model.Task, error) {
	rows, err := t.db.QueryContext(ctx, `
        SELECT task_id, user_id, title, status, tags, completed_at, creation_time
        FROM tasks WHERE user_id=$1 ORDER BY creation_time
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
        UPDATE tasks SET status=$1, completed_at=$2 WHERE user_id=$3 AND task_id=$4
    `, status, completedAt, userID, taskID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, model.ErrNotFound
	}

	row := t.db.QueryRowContext(ctx, `
        SELECT task_id, user_id, title, status, tags, completed_at, creation_time
        FROM tasks WHERE user_id=$1 AND task_id=$2
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

	row := r.db.QueryRowContext(ctx, `
        INSERT INTO task_reviews (review_id, user_id, task_id, enjoyment_rating, overall_rating, energy_required)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING creation_time
    `, out.ReviewID, out.UserID, out.TaskID, out.EnjoymentRating, out.OverallRating, out.EnergyRequired)
	if err := row.Scan(&out.CreationTime); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *reviews) List(ctx context.Context, userID string) ([]model.TaskReview, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT review_id, user_id, task_id, enjoyment_rating, overall_rating, energy_required, creation_time
        FROM task_reviews WHERE user_id=$1 ORDER BY creation_time
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
        SELECT user_id, enabled, lead_minutes FROM notification_prefs WHERE user_id=$1
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
        VALUES ($1,$2,$3)
        ON CONFLICT (user_id) DO UPDATE SET enabled=EXCLUDED.enabled, lead_minutes=EXCLUDED.lead_minutes
    `, m.UserID, m.Enabled, m.LeadMinutes)
	if err != nil {
		return nil, err
	}
	out := *m
	return &out, nil
}

func (p *prefs) ListEnabled(ctx context.Context) ([]model.NotificationPrefs, error) {
	rows, err := p.db.QueryContext(ctx, `
        SELECT user_id, enabled, lead_minutes FROM notification_prefs WHERE enabled
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

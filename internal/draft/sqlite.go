// Package draft provides SQLite storage for listing drafts.
package draft

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/moimlab/moim/internal/listing"
	"github.com/moimlab/moim/internal/session"
)

// SQLite implements listing.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

func (s *SQLite) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS drafts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			categories TEXT NOT NULL,
			activity_type TEXT NOT NULL,
			cover_path TEXT NOT NULL,
			cover_size INTEGER NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS draft_images (
			draft_id INTEGER NOT NULL,
			slot INTEGER NOT NULL,
			path TEXT NOT NULL,
			size INTEGER NOT NULL,
			PRIMARY KEY (draft_id, slot),
			FOREIGN KEY (draft_id) REFERENCES drafts(id) ON DELETE CASCADE
		);

		CREATE TABLE IF NOT EXISTS draft_sessions (
			draft_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			date TEXT NOT NULL,
			start_period TEXT NOT NULL,
			start_hour TEXT NOT NULL,
			start_minute TEXT NOT NULL,
			end_period TEXT NOT NULL,
			end_hour TEXT NOT NULL,
			end_minute TEXT NOT NULL,
			content TEXT NOT NULL,
			PRIMARY KEY (draft_id, position),
			FOREIGN KEY (draft_id) REFERENCES drafts(id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_draft_sessions_draft
			ON draft_sessions(draft_id);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// SaveDraft inserts a new draft or replaces an existing one atomically.
func (s *SQLite) SaveDraft(ctx context.Context, d *listing.Draft) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	d.UpdatedAt = now

	var coverPath string
	var coverSize int64
	if cover := d.Listing.Images.Cover(); cover != nil {
		coverPath = cover.Path
		coverSize = cover.Size
	}

	if d.ID == 0 {
		d.CreatedAt = now
		result, err := tx.ExecContext(ctx, `
			INSERT INTO drafts (title, categories, activity_type, cover_path, cover_size, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			d.Listing.Title,
			strings.Join(d.Listing.Categories, ","),
			string(d.Listing.ActivityType),
			coverPath,
			coverSize,
			d.CreatedAt.Format(time.RFC3339),
			d.UpdatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting draft: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("getting last insert id: %w", err)
		}
		d.ID = id
	} else {
		result, err := tx.ExecContext(ctx, `
			UPDATE drafts
			SET title = ?, categories = ?, activity_type = ?, cover_path = ?, cover_size = ?, updated_at = ?
			WHERE id = ?`,
			d.Listing.Title,
			strings.Join(d.Listing.Categories, ","),
			string(d.Listing.ActivityType),
			coverPath,
			coverSize,
			d.UpdatedAt.Format(time.RFC3339),
			d.ID,
		)
		if err != nil {
			return fmt.Errorf("updating draft: %w", err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("checking rows affected: %w", err)
		}
		if n == 0 {
			return listing.ErrDraftNotFound
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM draft_images WHERE draft_id = ?`, d.ID); err != nil {
			return fmt.Errorf("clearing images: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM draft_sessions WHERE draft_id = ?`, d.ID); err != nil {
			return fmt.Errorf("clearing sessions: %w", err)
		}
	}

	for i := 0; i < listing.ExtraImageSlots; i++ {
		img := d.Listing.Images.Extra(i)
		if img == nil {
			continue
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO draft_images (draft_id, slot, path, size) VALUES (?, ?, ?, ?)`,
			d.ID, i, img.Path, img.Size,
		); err != nil {
			return fmt.Errorf("inserting image %d: %w", i, err)
		}
	}

	for i, sess := range d.Sessions {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO draft_sessions (
				draft_id, position, date,
				start_period, start_hour, start_minute,
				end_period, end_hour, end_minute, content
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			d.ID, i, sess.Date,
			string(sess.StartPeriod), sess.StartHour, sess.StartMinute,
			string(sess.EndPeriod), sess.EndHour, sess.EndMinute,
			sess.Content,
		); err != nil {
			return fmt.Errorf("inserting session %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// GetDraft retrieves a draft with its sessions and images by id.
func (s *SQLite) GetDraft(ctx context.Context, id int64) (*listing.Draft, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, categories, activity_type, cover_path, cover_size, created_at, updated_at
		FROM drafts WHERE id = ?`, id)

	d, err := scanDraft(row)
	if err != nil {
		return nil, err
	}

	imgRows, err := s.db.QueryContext(ctx, `
		SELECT slot, path, size FROM draft_images WHERE draft_id = ? ORDER BY slot`, id)
	if err != nil {
		return nil, fmt.Errorf("querying images: %w", err)
	}
	defer imgRows.Close()

	for imgRows.Next() {
		var slot int
		var img listing.Image
		if err := imgRows.Scan(&slot, &img.Path, &img.Size); err != nil {
			return nil, fmt.Errorf("scanning image: %w", err)
		}
		if err := d.Listing.Images.Commit(slot, d.Listing.Images.Begin(), img); err != nil {
			return nil, fmt.Errorf("restoring image slot %d: %w", slot, err)
		}
	}
	if err := imgRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating images: %w", err)
	}

	sessRows, err := s.db.QueryContext(ctx, `
		SELECT date, start_period, start_hour, start_minute,
		       end_period, end_hour, end_minute, content
		FROM draft_sessions WHERE draft_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer sessRows.Close()

	for sessRows.Next() {
		var sess session.Session
		var startPeriod, endPeriod string
		if err := sessRows.Scan(
			&sess.Date, &startPeriod, &sess.StartHour, &sess.StartMinute,
			&endPeriod, &sess.EndHour, &sess.EndMinute, &sess.Content,
		); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		sess.StartPeriod = session.Period(startPeriod)
		sess.EndPeriod = session.Period(endPeriod)
		d.Sessions = append(d.Sessions, &sess)
	}
	if err := sessRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}

	return d, nil
}

// ListDrafts returns all drafts, newest first, without sessions loaded.
func (s *SQLite) ListDrafts(ctx context.Context) ([]*listing.Draft, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, categories, activity_type, cover_path, cover_size, created_at, updated_at
		FROM drafts ORDER BY updated_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying drafts: %w", err)
	}
	defer rows.Close()

	var drafts []*listing.Draft
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating drafts: %w", err)
	}
	return drafts, nil
}

// DeleteDraft removes a draft and its sessions.
func (s *SQLite) DeleteDraft(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `DELETE FROM drafts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting draft: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return listing.ErrDraftNotFound
	}

	// Cascades are not guaranteed to be enabled on every connection.
	if _, err := tx.ExecContext(ctx, `DELETE FROM draft_images WHERE draft_id = ?`, id); err != nil {
		return fmt.Errorf("deleting images: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM draft_sessions WHERE draft_id = ?`, id); err != nil {
		return fmt.Errorf("deleting sessions: %w", err)
	}

	return tx.Commit()
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDraft(row scanner) (*listing.Draft, error) {
	var (
		d          listing.Draft
		categories string
		activity   string
		coverPath  string
		coverSize  int64
		createdAt  string
		updatedAt  string
	)
	err := row.Scan(&d.ID, &d.Listing.Title, &categories, &activity, &coverPath, &coverSize, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, listing.ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning draft: %w", err)
	}

	if categories != "" {
		d.Listing.Categories = strings.Split(categories, ",")
	}
	d.Listing.ActivityType = listing.ActivityType(activity)
	if coverPath != "" {
		if err := d.Listing.Images.Commit(-1, d.Listing.Images.Begin(), listing.Image{Path: coverPath, Size: coverSize}); err != nil {
			return nil, fmt.Errorf("restoring cover: %w", err)
		}
	}

	if d.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if d.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &d, nil
}

// Package history persists processed voice commands and per-user language
// preferences in SQLite.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultLimit is the number of entries History returns when no limit is given.
const DefaultLimit = 50

// ErrNoUser is returned by writes without a user id.
var ErrNoUser = errors.New("history: user id is required")

// Entry is one processed command.
type Entry struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Text        string    `json:"command_text"`
	Action      string    `json:"action"`
	Success     bool      `json:"success"`
	ProcessedAt time.Time `json:"processed_at"`
}

// Stats summarizes a user's commands. SuccessRate is a rounded percentage.
type Stats struct {
	Total       int `json:"total_commands"`
	Successful  int `json:"successful_commands"`
	Failed      int `json:"failed_commands"`
	SuccessRate int `json:"success_rate"`
}

// Store is the history collaborator used by the pipeline and the transports.
type Store interface {
	Record(ctx context.Context, e Entry) error
	History(ctx context.Context, userID string, limit int) ([]Entry, error)
	Stats(ctx context.Context, userID string) (Stats, error)
	SetLanguage(ctx context.Context, userID, lang string) error
	Language(ctx context.Context, userID string) (string, error)
	Close() error
}

// SQLiteStore implements Store on a single SQLite file.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

var _ Store = (*SQLiteStore)(nil)

// Open opens or creates the database at path and applies the schema.
func Open(path string) (*SQLiteStore, error) {
	// WAL mode and a busy timeout let the async recorder write while
	// transports read.
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	s := &SQLiteStore{db: db, now: time.Now}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS voice_commands (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		command_text TEXT NOT NULL,
		action TEXT NOT NULL DEFAULT '',
		success BOOLEAN NOT NULL DEFAULT 1,
		processed_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_voice_commands_user ON voice_commands (user_id, processed_at)`,
	`CREATE TABLE IF NOT EXISTS preferences (
		user_id TEXT PRIMARY KEY,
		language TEXT NOT NULL
	)`,
}

func (s *SQLiteStore) init() error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// Record stores one entry. A zero ProcessedAt is set to now.
func (s *SQLiteStore) Record(ctx context.Context, e Entry) error {
	if e.UserID == "" {
		return ErrNoUser
	}
	at := e.ProcessedAt
	if at.IsZero() {
		at = s.now()
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO voice_commands (user_id, command_text, action, success, processed_at) VALUES (?, ?, ?, ?, ?)",
		e.UserID, e.Text, e.Action, e.Success, at.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("recording command: %w", err)
	}
	return nil
}

// History returns up to limit entries for userID, newest first.
func (s *SQLiteStore) History(ctx context.Context, userID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, command_text, action, success, processed_at
		 FROM voice_commands
		 WHERE user_id = ?
		 ORDER BY processed_at DESC, id DESC
		 LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var at int64
		if err := rows.Scan(&e.ID, &e.UserID, &e.Text, &e.Action, &e.Success, &at); err != nil {
			return nil, fmt.Errorf("scanning history: %w", err)
		}
		e.ProcessedAt = time.UnixMilli(at).UTC()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Stats counts the commands of userID.
func (s *SQLiteStore) Stats(ctx context.Context, userID string) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT
		   COUNT(*),
		   COALESCE(SUM(CASE WHEN success THEN 1 ELSE 0 END), 0)
		 FROM voice_commands
		 WHERE user_id = ?`,
		userID,
	).Scan(&st.Total, &st.Successful)
	if err != nil {
		return Stats{}, fmt.Errorf("querying stats: %w", err)
	}
	st.Failed = st.Total - st.Successful
	if st.Total > 0 {
		st.SuccessRate = int(math.Round(float64(st.Successful) / float64(st.Total) * 100))
	}
	return st, nil
}

// SetLanguage stores the preferred language of userID.
func (s *SQLiteStore) SetLanguage(ctx context.Context, userID, lang string) error {
	if userID == "" {
		return ErrNoUser
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO preferences (user_id, language) VALUES (?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET language = excluded.language`,
		userID, lang,
	)
	if err != nil {
		return fmt.Errorf("saving language: %w", err)
	}
	return nil
}

// Language returns the preferred language of userID, or "" when unset.
func (s *SQLiteStore) Language(ctx context.Context, userID string) (string, error) {
	var lang string
	err := s.db.QueryRowContext(ctx, "SELECT language FROM preferences WHERE user_id = ?", userID).Scan(&lang)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("loading language: %w", err)
	}
	return lang, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

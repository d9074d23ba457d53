/*
Package sqlite provides SQLite-backed persistence for the holiday calendar.

PURPOSE:
  Holidays are the only reference data the engine keeps: workday filtering
  needs to know which dates do not count. Computed ranges are never stored;
  they are cheap to rebuild and callers own them.

KEY TABLE:
  holidays: id, date (2006-01-02), name, recurring flag

CONCURRENCY:
  Uses sync.RWMutex for thread-safety around writes. SQLite is opened in
  WAL mode so readers don't block each other.

USAGE:
  store, err := sqlite.New("./data/calendar.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  cal, err := store.Calendar(ctx)
  workdays := someRange.Workdays(cal)

SEE ALSO:
  - dates/workday.go: HolidayCalendar interface and MapCalendar
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/calendar-engine/dates"
)

// Store persists the holiday calendar in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
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
	CREATE TABLE IF NOT EXISTS holidays (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		name TEXT NOT NULL,
		recurring INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_holidays_date ON holidays(date);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveHoliday inserts or replaces a holiday.
func (s *Store) SaveHoliday(ctx context.Context, h dates.Holiday) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO holidays (id, date, name, recurring)
		VALUES (?, ?, ?, ?)`,
		h.ID, h.Date.String(), h.Name, boolToInt(h.Recurring),
	)
	if err != nil {
		return fmt.Errorf("failed to save holiday: %w", err)
	}
	return nil
}

// ListHolidays returns all holidays ordered by date.
func (s *Store) ListHolidays(ctx context.Context) ([]dates.Holiday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, name, recurring FROM holidays ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []dates.Holiday
	for rows.Next() {
		var (
			h         dates.Holiday
			dateStr   string
			recurring int
		)
		if err := rows.Scan(&h.ID, &dateStr, &h.Name, &recurring); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		if h.Date, err = dates.ParseDate(dateStr); err != nil {
			return nil, fmt.Errorf("invalid holiday date %q: %w", dateStr, err)
		}
		h.Recurring = recurring != 0
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// DeleteHoliday removes a holiday by id.
func (s *Store) DeleteHoliday(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM holidays WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Calendar loads all holidays into an in-memory calendar for lookups.
func (s *Store) Calendar(ctx context.Context) (dates.HolidayCalendar, error) {
	holidays, err := s.ListHolidays(ctx)
	if err != nil {
		return nil, err
	}
	return dates.NewMapCalendar(holidays), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

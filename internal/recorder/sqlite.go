package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"OvernightExchange/internal/model"
)

// SQLiteRecorder persists ticks and sessions to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL lets the HTTP history endpoint read while the scheduler writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS ticks (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			session     TEXT,
			symbol      TEXT NOT NULL,
			sample_time INTEGER NOT NULL,
			price       REAL NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_ticks_symbol ON ticks(symbol, id)`,

		`CREATE TABLE IF NOT EXISTS sessions (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp  INTEGER NOT NULL,
			session    TEXT NOT NULL,
			symbol     TEXT,
			event_type TEXT,
			length     INTEGER,
			last_price REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_ts ON sessions(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordTick(evt *TickEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO ticks
		(timestamp, session, symbol, sample_time, price)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), evt.Session, evt.Symbol, evt.Sample.Time, evt.Sample.Price,
	)
	return err
}

func (r *SQLiteRecorder) RecordSession(evt *SessionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO sessions
		(timestamp, session, symbol, event_type, length, last_price)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), evt.Session, evt.Symbol, evt.EventType, evt.Length, evt.LastPrice,
	)
	return err
}

func (r *SQLiteRecorder) RecentTicks(symbol string, limit int) ([]model.Sample, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.db.Query(`SELECT sample_time, price FROM ticks
		WHERE symbol = ? ORDER BY id DESC LIMIT ?`, symbol, limit)
	if err != nil {
		return nil, fmt.Errorf("query ticks: %w", err)
	}
	defer rows.Close()

	var out []model.Sample
	for rows.Next() {
		var s model.Sample
		if err := rows.Scan(&s.Time, &s.Price); err != nil {
			return nil, fmt.Errorf("scan tick: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ticks: %w", err)
	}

	// newest-first from the query; callers want oldest first
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

// Package store records monitoring sessions to a local SQLite database.
//
// Each run opens (or creates) the database, starts a session row, appends
// one reading row per tick, and stamps the session with its final health
// and star totals on close. Recording is strictly best-effort from the
// monitor's point of view: a failed insert is reported to the caller, who
// logs it and keeps monitoring.
package store

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/rileyhilliard/phbuddy/internal/errors"
	"github.com/rileyhilliard/phbuddy/internal/logger"
	"github.com/rileyhilliard/phbuddy/internal/monitor"
)

// Store wraps the database connection and the active session.
type Store struct {
	conn      *sql.DB
	sessionID int64
	log       logger.Logger
}

// Session is one recorded monitoring run.
type Session struct {
	ID          int64
	StartedAt   time.Time
	EndedAt     time.Time
	FinalHealth int
	FinalStars  int
	Readings    int
}

// Reading is one recorded tick.
type Reading struct {
	ID        int64
	SessionID int64
	Elapsed   float64
	PH        float64
	Band      string
	Health    int
	Stars     int
}

// Open opens the database at path, initializes the schema, and starts a
// new session.
func Open(path string, log logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.NewEnvLogger("[store]")
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrStore,
			"failed to open recording database",
			"Check that the path is writable: "+path)
	}

	s := &Store{conn: conn, log: log}
	if err := s.initSchema(); err != nil {
		conn.Close()
		return nil, errors.WrapWithCode(err, errors.ErrStore,
			"failed to initialize recording schema", "")
	}
	if err := s.beginSession(); err != nil {
		conn.Close()
		return nil, err
	}

	log.Debug("recording session %d to %s", s.sessionID, path)
	return s, nil
}

// initSchema creates the tables if needed.
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at TEXT NOT NULL,
		ended_at TEXT,
		final_health INTEGER,
		final_stars INTEGER
	);
	CREATE TABLE IF NOT EXISTS readings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id INTEGER NOT NULL REFERENCES sessions(id),
		elapsed REAL NOT NULL,
		ph REAL NOT NULL,
		band TEXT NOT NULL,
		health INTEGER NOT NULL,
		stars INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_readings_session ON readings(session_id);
	`

	_, err := s.conn.Exec(schema)
	return err
}

// beginSession inserts the session row for this run.
func (s *Store) beginSession() error {
	startedAt := time.Now().UTC().Format(time.RFC3339)
	res, err := s.conn.Exec(`INSERT INTO sessions (started_at) VALUES (?)`, startedAt)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrStore,
			"failed to start recording session", "")
	}

	s.sessionID, err = res.LastInsertId()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrStore,
			"failed to read session id", "")
	}
	return nil
}

// SessionID returns the id of the active session.
func (s *Store) SessionID() int64 {
	return s.sessionID
}

// Record appends one tick to the active session. Satisfies monitor.Sink.
func (s *Store) Record(e monitor.Entry) error {
	query := `
	INSERT INTO readings (session_id, elapsed, ph, band, health, stars, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	createdAt := time.Now().UTC().Format(time.RFC3339)

	_, err := s.conn.Exec(query, s.sessionID, e.Elapsed, e.PH, e.Band, e.Health, e.Stars, createdAt)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrStore,
			"failed to record reading", "")
	}
	return nil
}

// Close stamps the session with its final totals and closes the database.
func (s *Store) Close(finalHealth, finalStars int) error {
	endedAt := time.Now().UTC().Format(time.RFC3339)
	_, err := s.conn.Exec(
		`UPDATE sessions SET ended_at = ?, final_health = ?, final_stars = ? WHERE id = ?`,
		endedAt, finalHealth, finalStars, s.sessionID)
	if err != nil {
		s.log.Warn("failed to finalize session %d: %v", s.sessionID, err)
	}
	return s.conn.Close()
}

// Abandon closes the database for a session that ended before monitoring
// started. The session keeps its ended_at stamp but no final totals.
func (s *Store) Abandon() error {
	endedAt := time.Now().UTC().Format(time.RFC3339)
	_, err := s.conn.Exec(
		`UPDATE sessions SET ended_at = ? WHERE id = ?`,
		endedAt, s.sessionID)
	if err != nil {
		s.log.Warn("failed to close session %d: %v", s.sessionID, err)
	}
	return s.conn.Close()
}

// Sessions lists recorded sessions, newest first.
func (s *Store) Sessions() ([]Session, error) {
	query := `
	SELECT s.id, s.started_at, COALESCE(s.ended_at, ''),
	       COALESCE(s.final_health, 0), COALESCE(s.final_stars, 0),
	       COUNT(r.id)
	FROM sessions s
	LEFT JOIN readings r ON r.session_id = s.id
	GROUP BY s.id
	ORDER BY s.id DESC
	`

	rows, err := s.conn.Query(query)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrStore,
			"failed to list sessions", "")
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var startedAt, endedAt string
		if err := rows.Scan(&sess.ID, &startedAt, &endedAt,
			&sess.FinalHealth, &sess.FinalStars, &sess.Readings); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrStore,
				"failed to scan session row", "")
		}

		sess.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		if endedAt != "" {
			sess.EndedAt, _ = time.Parse(time.RFC3339, endedAt)
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// SessionReadings lists the recorded ticks of one session in recording order.
func (s *Store) SessionReadings(sessionID int64) ([]Reading, error) {
	query := `
	SELECT id, session_id, elapsed, ph, band, health, stars
	FROM readings
	WHERE session_id = ?
	ORDER BY id
	`

	rows, err := s.conn.Query(query, sessionID)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrStore,
			"failed to list readings", "")
	}
	defer rows.Close()

	var readings []Reading
	for rows.Next() {
		var r Reading
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Elapsed, &r.PH, &r.Band, &r.Health, &r.Stars); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrStore,
				"failed to scan reading row", "")
		}
		readings = append(readings, r)
	}
	return readings, rows.Err()
}

package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver

	"kisanmitra/internal/domain"
)

// Schema creates the page_sessions table.
const Schema = `
	CREATE TABLE IF NOT EXISTS page_sessions (
		session_id UUID PRIMARY KEY,
		language   TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)
`

// postgresStore is the Store backed by a Postgres database. Sessions idle for
// longer than ttl are treated as missing.
type postgresStore struct {
	db  *sql.DB // The database connection pool.
	ttl time.Duration
	now func() time.Time
}

// OpenPostgres opens a pool with the pgx driver and checks the connection.
func OpenPostgres(ctx context.Context, connStr string) (*sql.DB, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not reach database: %w", err)
	}
	return db, nil
}

// NewPostgresStore is the constructor for the store.
func NewPostgresStore(db *sql.DB, ttl time.Duration) Store {
	return &postgresStore{db: db, ttl: ttl, now: time.Now}
}

// EnsureSchema creates the sessions table if it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("could not create sessions table: %w", err)
	}
	return nil
}

func (ps *postgresStore) Create(ctx context.Context, s *Session) error {
	s.ID = uuid.New()
	s.CreatedAt = ps.now().UTC()
	s.UpdatedAt = s.CreatedAt

	query := `
		INSERT INTO page_sessions (session_id, language, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := ps.db.ExecContext(ctx, query, s.ID, string(s.Language), s.CreatedAt, s.UpdatedAt); err != nil {
		return fmt.Errorf("could not insert session: %w", err)
	}
	return nil
}

// Get loads the session and bumps updated_at in the same statement.
func (ps *postgresStore) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	s := &Session{}
	var lang string

	query := `
		UPDATE page_sessions
		SET updated_at = $2
		WHERE session_id = $1 AND updated_at > $3
		RETURNING session_id, language, created_at, updated_at
	`
	err := ps.db.QueryRowContext(ctx, query, id, ps.now().UTC(), ps.cutoff()).Scan(&s.ID, &lang, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("could not get session: %w", err)
	}
	s.Language = domain.Language(lang)
	return s, nil
}

func (ps *postgresStore) SetLanguage(ctx context.Context, id uuid.UUID, lang domain.Language) error {
	query := `
		UPDATE page_sessions
		SET language = $2, updated_at = $3
		WHERE session_id = $1 AND updated_at > $4
	`
	res, err := ps.db.ExecContext(ctx, query, id, string(lang), ps.now().UTC(), ps.cutoff())
	if err != nil {
		return fmt.Errorf("could not update session language: %w", err)
	}
	return mustAffect(res)
}

func (ps *postgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := ps.db.ExecContext(ctx, `DELETE FROM page_sessions WHERE session_id = $1`, id)
	if err != nil {
		return fmt.Errorf("could not delete session: %w", err)
	}
	return mustAffect(res)
}

func (ps *postgresStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM page_sessions WHERE session_id = $1 AND updated_at > $2
		)
	`
	var ok bool
	if err := ps.db.QueryRowContext(ctx, query, id, ps.cutoff()).Scan(&ok); err != nil {
		return false, fmt.Errorf("could not check session: %w", err)
	}
	return ok, nil
}

// Reap deletes every session idle past the ttl.
func (ps *postgresStore) Reap(ctx context.Context) (int, error) {
	if ps.ttl <= 0 {
		return 0, nil
	}
	res, err := ps.db.ExecContext(ctx, `DELETE FROM page_sessions WHERE updated_at <= $1`, ps.cutoff())
	if err != nil {
		return 0, fmt.Errorf("could not reap sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read affected rows: %w", err)
	}
	return int(n), nil
}

// cutoff is the oldest updated_at still considered live. A zero ttl keeps
// sessions forever.
func (ps *postgresStore) cutoff() time.Time {
	if ps.ttl <= 0 {
		return time.Time{}
	}
	return ps.now().UTC().Add(-ps.ttl)
}

func mustAffect(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not read affected rows: %w", err)
	}
	if n == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

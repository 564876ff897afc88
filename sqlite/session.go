package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/docquiz"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docquiz.SessionService = (*SessionService)(nil)

const sessionColumns = "id, url, title, result, content_hash, created_at"

// SessionService implements docquiz.SessionService using SQLite.
// The parse result is stored as its ordered JSON encoding.
type SessionService struct {
	db *DB
}

// NewSessionService creates a new SessionService.
func NewSessionService(db *DB) *SessionService {
	return &SessionService{db: db}
}

// CreateSession stores a new session.
func (s *SessionService) CreateSession(ctx context.Context, session *docquiz.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	result, err := json.Marshal(session.Result)
	if err != nil {
		return docquiz.WrapError(docquiz.EINTERNAL, err, "encode session result")
	}

	session.ID = uuid.New().String()
	session.CreatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (`+sessionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)
	`, session.ID, session.URL, session.Title, string(result), session.ContentHash,
		formatTime(session.CreatedAt))

	return err
}

// FindSessionByID retrieves a session by ID.
func (s *SessionService) FindSessionByID(ctx context.Context, id string) (*docquiz.Session, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id)

	session, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, docquiz.Errorf(docquiz.ENOTFOUND, "session %q not found", id)
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// FindSessions retrieves sessions matching the filter, newest first.
func (s *SessionService) FindSessions(ctx context.Context, filter docquiz.SessionFilter) ([]*docquiz.Session, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + sessionColumns + " FROM sessions WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*docquiz.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}

// DeleteSession permanently removes a session.
func (s *SessionService) DeleteSession(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return docquiz.Errorf(docquiz.ENOTFOUND, "session %q not found", id)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*docquiz.Session, error) {
	var session docquiz.Session
	var result, createdAt string

	if err := row.Scan(&session.ID, &session.URL, &session.Title, &result,
		&session.ContentHash, &createdAt); err != nil {
		return nil, err
	}

	session.Result = &docquiz.ParseResult{}
	if err := json.Unmarshal([]byte(result), session.Result); err != nil {
		return nil, fmt.Errorf("failed to decode result of session %s: %w", session.ID, err)
	}

	var err error
	session.CreatedAt, err = parseTime(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &session, nil
}

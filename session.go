package docquiz

import (
	"context"
	"time"
)

// Session is a stored extraction that quizzes can be generated from later.
type Session struct {
	ID        string       `json:"id"`
	URL       string       `json:"url"`
	Title     string       `json:"title"`
	Result    *ParseResult `json:"result"`
	CreatedAt time.Time    `json:"createdAt"`

	// ContentHash identifies the extracted content, so a page that has not
	// changed since an earlier session can be recognised.
	ContentHash string `json:"contentHash"`
}

// Validate returns an error if the session contains invalid fields.
func (s *Session) Validate() error {
	if s.URL == "" {
		return Errorf(EINVALID, "session URL required")
	}
	if s.Result == nil {
		return Errorf(EINVALID, "session result required")
	}
	return nil
}

// SessionService represents a service for managing sessions.
type SessionService interface {
	// CreateSession stores a new session and assigns its ID and CreatedAt.
	CreateSession(ctx context.Context, session *Session) error

	// FindSessionByID retrieves a session by ID.
	// Returns ENOTFOUND if session does not exist.
	FindSessionByID(ctx context.Context, id string) (*Session, error)

	// FindSessions retrieves sessions matching the filter, newest first.
	FindSessions(ctx context.Context, filter SessionFilter) ([]*Session, error)

	// DeleteSession permanently removes a session.
	// Returns ENOTFOUND if session does not exist.
	DeleteSession(ctx context.Context, id string) error
}

// SessionFilter represents a filter for FindSessions.
type SessionFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

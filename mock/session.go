package mock

import (
	"context"

	"github.com/fwojciec/docquiz"
)

var _ docquiz.SessionService = (*SessionService)(nil)

// SessionService is a mock implementation of docquiz.SessionService.
type SessionService struct {
	CreateSessionFn   func(ctx context.Context, session *docquiz.Session) error
	FindSessionByIDFn func(ctx context.Context, id string) (*docquiz.Session, error)
	FindSessionsFn    func(ctx context.Context, filter docquiz.SessionFilter) ([]*docquiz.Session, error)
	DeleteSessionFn   func(ctx context.Context, id string) error
}

func (s *SessionService) CreateSession(ctx context.Context, session *docquiz.Session) error {
	return s.CreateSessionFn(ctx, session)
}

func (s *SessionService) FindSessionByID(ctx context.Context, id string) (*docquiz.Session, error) {
	return s.FindSessionByIDFn(ctx, id)
}

func (s *SessionService) FindSessions(ctx context.Context, filter docquiz.SessionFilter) ([]*docquiz.Session, error) {
	return s.FindSessionsFn(ctx, filter)
}

func (s *SessionService) DeleteSession(ctx context.Context, id string) error {
	return s.DeleteSessionFn(ctx, id)
}

package queries

//go:generate mockgen -source=session.go -destination=../../../tests/mock/queries/session_mock.go -package=queriesmock

import (
	"context"

	"tour-storefront/internal/domain/user"
	"tour-storefront/internal/pkg/errs"
	"tour-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNoSession = errs.New("no active session")
)

type SessionQueries interface {
	Current(ctx context.Context, visitorID uuid.UUID) (*user.Session, error)
}

type sessionQueriesImpl struct {
	sessions shared.SessionStore
}

func NewSessionQueries(sessions shared.SessionStore) SessionQueries {
	return &sessionQueriesImpl{
		sessions: sessions,
	}
}

func (q *sessionQueriesImpl) Current(ctx context.Context, visitorID uuid.UUID) (*user.Session, error) {
	sess, ok, err := q.sessions.Load(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.Mark(ErrNoSession, errs.ErrUnauthenticated)
	}
	return sess, nil
}

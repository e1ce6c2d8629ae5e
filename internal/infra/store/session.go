package store

import (
	"context"
	"encoding/json"
	"log/slog"

	"tour-storefront/internal/domain/user"
	"tour-storefront/internal/infra/kvstore"
	"tour-storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

const SessionKey = "user"

type sessionRecord struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	NationalID string `json:"nationalId,omitempty"`
	Role       string `json:"role"`
	IsAdmin    bool   `json:"isAdmin"`
}

type SessionStore struct {
	kv     kvstore.Store
	logger *slog.Logger
}

func NewSessionStore(kv kvstore.Store, logger *slog.Logger) *SessionStore {
	return &SessionStore{kv: kv, logger: logger}
}

// Load reports ok=false when the visitor is not logged in. A corrupt record counts as logged out.
func (s *SessionStore) Load(ctx context.Context, visitorID uuid.UUID) (*user.Session, bool, error) {
	raw, ok, err := s.kv.Get(ctx, visitorID, SessionKey)
	if err != nil {
		return nil, false, errs.Wrap(err, "failed to load session")
	}
	if !ok {
		return nil, false, nil
	}

	var rec sessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		s.logger.WarnContext(ctx, "unreadable stored session treated as logged out",
			"visitor_id", visitorID.String(), "error", err.Error())
		return nil, false, nil
	}
	sess, err := toSession(rec)
	if err != nil {
		s.logger.WarnContext(ctx, "incomplete stored session treated as logged out",
			"visitor_id", visitorID.String(), "error", err.Error())
		return nil, false, nil
	}
	return sess, true, nil
}

func (s *SessionStore) Save(ctx context.Context, visitorID uuid.UUID, sess *user.Session) error {
	raw, err := json.Marshal(toSessionRecord(sess))
	if err != nil {
		return errs.Wrap(err, "failed to encode session")
	}
	if err := s.kv.Set(ctx, visitorID, SessionKey, raw); err != nil {
		return errs.Wrap(err, "failed to save session")
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, visitorID uuid.UUID) error {
	if err := s.kv.Delete(ctx, visitorID, SessionKey); err != nil {
		return errs.Wrap(err, "failed to delete session")
	}
	return nil
}

func toSessionRecord(sess *user.Session) sessionRecord {
	return sessionRecord{
		ID:         sess.ID(),
		Email:      sess.Email(),
		Name:       sess.Name(),
		Surname:    sess.Surname(),
		NationalID: sess.NationalID(),
		Role:       sess.Role().String(),
		IsAdmin:    sess.IsAdmin(),
	}
}

func toSession(rec sessionRecord) (*user.Session, error) {
	role, err := user.NewRole(rec.Role)
	if err != nil {
		role = user.RoleCustomer
		if rec.IsAdmin {
			role = user.RoleAdmin
		}
	}
	return user.NewSession(rec.ID, rec.Email, rec.Name, rec.Surname, rec.NationalID, role)
}

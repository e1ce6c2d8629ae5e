package commands

//go:generate mockgen -source=account.go -destination=../../../tests/mock/commands/account_mock.go -package=commandsmock

import (
	"context"

	"tour-storefront/internal/domain/user"
	reqdto "tour-storefront/internal/handler/dto/request"
	"tour-storefront/internal/pkg/errs"
	"tour-storefront/internal/pkg/ptr"
	"tour-storefront/internal/usecase/gateway"
	"tour-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrProfileUpdateFailed = errs.New("profile update failed")
)

type AccountCommands interface {
	UpdateProfile(ctx context.Context, visitorID uuid.UUID, sess *user.Session, req reqdto.ProfileRequest) (*user.Session, error)
	CancelReservation(ctx context.Context, sess *user.Session, reservationID string, req reqdto.CancelReservationRequest) (gateway.Record, error)
}

type accountCommandsImpl struct {
	users        gateway.UserService
	reservations gateway.ReservationService
	sessions     shared.SessionStore
}

func NewAccountCommands(users gateway.UserService, reservations gateway.ReservationService, sessions shared.SessionStore) AccountCommands {
	return &accountCommandsImpl{
		users:        users,
		reservations: reservations,
		sessions:     sessions,
	}
}

// UpdateProfile pushes the edit to the user service and refreshes the stored session on success.
func (a *accountCommandsImpl) UpdateProfile(ctx context.Context, visitorID uuid.UUID, sess *user.Session, req reqdto.ProfileRequest) (*user.Session, error) {
	update, err := req.ToDomain()
	if err != nil {
		return nil, err
	}

	if _, err := a.users.Update(ctx, userUpdate(sess.ID(), update)); err != nil {
		return nil, errs.Mark(err, ErrProfileUpdateFailed)
	}

	updated := sess.WithProfile(update.Name(), update.Surname(), update.Email().Value())
	if err := a.sessions.Save(ctx, visitorID, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (a *accountCommandsImpl) CancelReservation(ctx context.Context, sess *user.Session, reservationID string, req reqdto.CancelReservationRequest) (gateway.Record, error) {
	return a.reservations.Cancel(ctx, reservationID, req.Motivo)
}

// userUpdate leaves Password out of the payload unless a new one was given.
func userUpdate(userID string, update *user.ProfileUpdate) gateway.UserUpdate {
	var pw string
	if p := update.Password(); p != nil {
		pw = p.Value()
	}
	return gateway.UserUpdate{
		ID:       userID,
		Name:     update.Name(),
		Surname:  update.Surname(),
		Email:    update.Email().Value(),
		Password: ptr.NonZero(pw),
	}
}

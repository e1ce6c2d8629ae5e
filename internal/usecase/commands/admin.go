package commands

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/commands/admin_mock.go -package=commandsmock

import (
	"context"
	"strings"

	reqdto "tour-storefront/internal/handler/dto/request"
	"tour-storefront/internal/pkg/errs"
	"tour-storefront/internal/usecase/gateway"

	"github.com/google/uuid"
)

type AdminCommands interface {
	CreateUser(ctx context.Context, req reqdto.RegisterRequest) (*gateway.UserProfile, error)
	UpdateUser(ctx context.Context, userID string, req reqdto.ProfileRequest) (gateway.Record, error)
	CreateTour(ctx context.Context, req reqdto.PackageRequest) (gateway.Record, error)
	UpdateTour(ctx context.Context, tourID string, req reqdto.PackageRequest) (gateway.Record, error)
	DeleteTour(ctx context.Context, tourID string) error
	UpdateReservation(ctx context.Context, reservationID string, changes gateway.Record) (gateway.Record, error)
	CancelReservation(ctx context.Context, reservationID string, req reqdto.CancelReservationRequest) (gateway.Record, error)
}

type adminCommandsImpl struct {
	auth         gateway.AuthService
	users        gateway.UserService
	catalog      gateway.CatalogService
	reservations gateway.ReservationService
}

func NewAdminCommands(auth gateway.AuthService, users gateway.UserService, catalog gateway.CatalogService, reservations gateway.ReservationService) AdminCommands {
	return &adminCommandsImpl{
		auth:         auth,
		users:        users,
		catalog:      catalog,
		reservations: reservations,
	}
}

func (a *adminCommandsImpl) CreateUser(ctx context.Context, req reqdto.RegisterRequest) (*gateway.UserProfile, error) {
	reg, err := req.ToDomain()
	if err != nil {
		return nil, err
	}
	profile, err := a.auth.Register(ctx, newUser(reg))
	if err != nil {
		return nil, errs.Mark(err, ErrRegistrationFailed)
	}
	return profile, nil
}

func (a *adminCommandsImpl) UpdateUser(ctx context.Context, userID string, req reqdto.ProfileRequest) (gateway.Record, error) {
	update, err := req.ToDomain()
	if err != nil {
		return nil, err
	}
	return a.users.Update(ctx, userUpdate(userID, update))
}

func (a *adminCommandsImpl) CreateTour(ctx context.Context, req reqdto.PackageRequest) (gateway.Record, error) {
	return a.catalog.Create(ctx, req.ToInput(generateTourCode))
}

// UpdateTour never generates a code; a blank one is sent as is so the backend keeps its own.
func (a *adminCommandsImpl) UpdateTour(ctx context.Context, tourID string, req reqdto.PackageRequest) (gateway.Record, error) {
	return a.catalog.Update(ctx, tourID, req.ToInput(nil))
}

func (a *adminCommandsImpl) DeleteTour(ctx context.Context, tourID string) error {
	return a.catalog.Delete(ctx, tourID)
}

func (a *adminCommandsImpl) UpdateReservation(ctx context.Context, reservationID string, changes gateway.Record) (gateway.Record, error) {
	return a.reservations.Update(ctx, reservationID, changes)
}

func (a *adminCommandsImpl) CancelReservation(ctx context.Context, reservationID string, req reqdto.CancelReservationRequest) (gateway.Record, error) {
	return a.reservations.Cancel(ctx, reservationID, req.Motivo)
}

func generateTourCode() string {
	return "TOUR-" + strings.ToUpper(uuid.NewString()[:8])
}

package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"tour-storefront/internal/domain/user"
	reqdto "tour-storefront/internal/handler/dto/request"
	"tour-storefront/internal/infra"
	"tour-storefront/internal/pkg/config"
	"tour-storefront/internal/pkg/errs"
	"tour-storefront/internal/usecase/gateway"
	"tour-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrRegistrationFailed   = errs.New("registration failed")
)

type AuthCommands interface {
	Login(ctx context.Context, visitorID uuid.UUID, req reqdto.LoginRequest) (*user.Session, error)
	Register(ctx context.Context, req reqdto.RegisterRequest) (*gateway.UserProfile, error)
	RegisterExternal(ctx context.Context, req reqdto.ExternalRegisterRequest) (*gateway.UserProfile, error)
	Logout(ctx context.Context, visitorID uuid.UUID) error
}

type authCommandsImpl struct {
	auth       gateway.AuthService
	sessions   shared.SessionStore
	adminEmail string
}

func NewAuthCommands(auth gateway.AuthService, sessions shared.SessionStore, cfg config.Config) AuthCommands {
	return &authCommandsImpl{
		auth:       auth,
		sessions:   sessions,
		adminEmail: cfg.Checkout.AdminEmail,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, visitorID uuid.UUID, req reqdto.LoginRequest) (*user.Session, error) {
	creds := req.ToCredentials()

	profile, err := a.auth.Login(ctx, creds)
	if err != nil {
		if errs.Is(err, errs.ErrBackendRejected) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	id := profile.ID
	if id == "" {
		slog.Warn("login response carried no user id; falling back to email", "email", creds.Email)
		id = profile.Email
	}

	sess, err := user.NewSession(id, profile.Email, profile.Name, profile.Surname, profile.NationalID, user.RoleFor(profile.Email, a.adminEmail))
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := a.sessions.Save(ctx, visitorID, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*gateway.UserProfile, error) {
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

// RegisterExternal mints the bookingUserId that identifies the user to the booking backend.
func (a *authCommandsImpl) RegisterExternal(ctx context.Context, req reqdto.ExternalRegisterRequest) (*gateway.UserProfile, error) {
	profile, err := a.auth.RegisterExternal(ctx, gateway.ExternalUser{
		BookingUserID: uuid.NewString(),
		Name:          req.Nombre,
		Surname:       req.Apellido,
		Email:         req.Correo,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrRegistrationFailed)
	}
	return profile, nil
}

func (a *authCommandsImpl) Logout(ctx context.Context, visitorID uuid.UUID) error {
	return a.sessions.Delete(ctx, visitorID)
}

func newUser(reg *user.Registration) gateway.NewUser {
	return gateway.NewUser{
		Email:      reg.Email().Value(),
		Password:   reg.Password().Value(),
		Name:       reg.Name(),
		Surname:    reg.Surname(),
		NationalID: reg.NationalID().Value(),
		AdminKey:   reg.AdminKey(),
	}
}

// backendMessage returns the backend's own wording when the error carries one.
func backendMessage(err error, fallback string) string {
	return infra.MessageOf(err, fallback)
}

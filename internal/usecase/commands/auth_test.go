//go:build unit

package commands_test

import (
	"context"
	"net/http"
	"testing"

	"tour-storefront/internal/domain/user"
	reqdto "tour-storefront/internal/handler/dto/request"
	"tour-storefront/internal/infra"
	"tour-storefront/internal/pkg/config"
	"tour-storefront/internal/pkg/errs"
	"tour-storefront/internal/usecase/commands"
	"tour-storefront/internal/usecase/gateway"
	"tour-storefront/tests/common/builder"
	gatewaymock "tour-storefront/tests/mock/gateway"
	sharedmock "tour-storefront/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthCommands(t *testing.T) {
	ctx := context.Background()
	visitor := uuid.New()

	setup := func(t *testing.T) (*gatewaymock.MockAuthService, *sharedmock.MockSessionStore, commands.AuthCommands) {
		ctrl := gomock.NewController(t)
		auth := gatewaymock.NewMockAuthService(ctrl)
		sessions := sharedmock.NewMockSessionStore(ctrl)
		return auth, sessions, commands.NewAuthCommands(auth, sessions, config.NewTestConfig())
	}

	t.Run("login stores a customer session", func(t *testing.T) {
		auth, sessions, cmds := setup(t)
		b := builder.NewAuthBuilder()
		auth.EXPECT().Login(gomock.Any(), gateway.Credentials{Email: b.Email, Password: b.Password}).Return(b.BuildProfile(), nil)
		sessions.EXPECT().Save(gomock.Any(), visitor, gomock.Any()).Return(nil)

		sess, err := cmds.Login(ctx, visitor, b.BuildDTO())
		require.NoError(t, err)
		assert.Equal(t, "42", sess.ID())
		assert.Equal(t, user.RoleCustomer, sess.Role())
	})

	t.Run("configured admin email gets the admin role", func(t *testing.T) {
		auth, sessions, cmds := setup(t)
		b := builder.NewAuthBuilder().AsAdmin()
		auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(b.BuildProfile(), nil)
		sessions.EXPECT().Save(gomock.Any(), visitor, gomock.Any()).Return(nil)

		sess, err := cmds.Login(ctx, visitor, b.BuildDTO())
		require.NoError(t, err)
		assert.True(t, sess.IsAdmin())
	})

	t.Run("missing user id falls back to email", func(t *testing.T) {
		auth, sessions, cmds := setup(t)
		b := builder.NewAuthBuilder()
		auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(&gateway.UserProfile{Email: b.Email}, nil)
		sessions.EXPECT().Save(gomock.Any(), visitor, gomock.Any()).Return(nil)

		sess, err := cmds.Login(ctx, visitor, b.BuildDTO())
		require.NoError(t, err)
		assert.Equal(t, b.Email, sess.ID())
	})

	t.Run("backend rejection means invalid credentials", func(t *testing.T) {
		auth, _, cmds := setup(t)
		auth.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapGatewayErr(nil, infra.KindRejected, http.StatusUnauthorized, "Credenciales incorrectas", nil))

		_, err := cmds.Login(ctx, visitor, builder.NewAuthBuilder().BuildDTO())
		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
		assert.Equal(t, "Credenciales incorrectas", infra.MessageOf(err, ""))
	})

	t.Run("unreachable backend is an authentication failure", func(t *testing.T) {
		auth, _, cmds := setup(t)
		auth.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapGatewayErr(nil, infra.KindTransport, 0, "down", assert.AnError))

		_, err := cmds.Login(ctx, visitor, builder.NewAuthBuilder().BuildDTO())
		assert.True(t, errs.Is(err, commands.ErrAuthenticationFailed))
		assert.False(t, errs.Is(err, commands.ErrInvalidCredentials))
		assert.True(t, errs.Is(err, errs.ErrBackendUnavailable))
	})

	t.Run("register validates before calling the backend", func(t *testing.T) {
		_, _, cmds := setup(t)
		req := builder.NewAuthBuilder().With(func(b *builder.AuthBuilder) { b.Email = "bad" }).BuildRegisterDTO()

		_, err := cmds.Register(ctx, req)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("register sends the normalized user", func(t *testing.T) {
		auth, _, cmds := setup(t)
		b := builder.NewAuthBuilder()
		auth.EXPECT().Register(gomock.Any(), gateway.NewUser{
			Email:      b.Email,
			Password:   b.Password,
			Name:       b.Name,
			Surname:    b.Surname,
			NationalID: b.NationalID,
		}).Return(b.BuildProfile(), nil)

		got, err := cmds.Register(ctx, b.BuildRegisterDTO())
		require.NoError(t, err)
		assert.Equal(t, "42", got.ID)
	})

	t.Run("external registration mints a booking user id", func(t *testing.T) {
		auth, _, cmds := setup(t)
		auth.EXPECT().RegisterExternal(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u gateway.ExternalUser) (*gateway.UserProfile, error) {
				_, err := uuid.Parse(u.BookingUserID)
				assert.NoError(t, err)
				assert.Equal(t, "eva@example.com", u.Email)
				return &gateway.UserProfile{ID: u.BookingUserID, Email: u.Email}, nil
			})

		got, err := cmds.RegisterExternal(ctx, reqdto.ExternalRegisterRequest{Nombre: "Eva", Apellido: "Mora", Correo: "eva@example.com"})
		require.NoError(t, err)
		assert.NotEmpty(t, got.ID)
	})

	t.Run("logout deletes only the session", func(t *testing.T) {
		_, sessions, cmds := setup(t)
		sessions.EXPECT().Delete(gomock.Any(), visitor).Return(nil)

		require.NoError(t, cmds.Logout(ctx, visitor))
	})
}

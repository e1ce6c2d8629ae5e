//go:build unit || e2e

package builder

import (
	"testing"

	"tour-storefront/internal/domain/user"
	reqdto "tour-storefront/internal/handler/dto/request"
	"tour-storefront/internal/usecase/gateway"

	"github.com/stretchr/testify/require"
)

type AuthBuilder struct {
	ID         string
	Email      string
	Password   string
	Name       string
	Surname    string
	NationalID string
	Role       user.Role
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		ID:         "42",
		Email:      "ana@example.com",
		Password:   "password123",
		Name:       "Ana",
		Surname:    "Pérez",
		NationalID: "1712345678",
		Role:       user.RoleCustomer,
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) AsAdmin() *AuthBuilder {
	a.Email = "admin@agencia.local"
	a.Role = user.RoleAdmin
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:          a.Email,
		Password:       a.Password,
		Nombre:         a.Name,
		Apellido:       a.Surname,
		Identificacion: a.NationalID,
	}
}

func (a *AuthBuilder) BuildProfile() *gateway.UserProfile {
	return &gateway.UserProfile{
		ID:         a.ID,
		Email:      a.Email,
		Name:       a.Name,
		Surname:    a.Surname,
		NationalID: a.NationalID,
	}
}

func (a *AuthBuilder) BuildSession(t *testing.T) *user.Session {
	t.Helper()
	sess, err := user.NewSession(a.ID, a.Email, a.Name, a.Surname, a.NationalID, a.Role)
	require.NoError(t, err)
	return sess
}

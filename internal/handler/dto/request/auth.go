package request

import (
	"strings"

	"tour-storefront/internal/domain/user"
	"tour-storefront/internal/usecase/gateway"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToCredentials() gateway.Credentials {
	return gateway.Credentials{
		Email:    strings.TrimSpace(r.Email),
		Password: r.Password,
	}
}

// RegisterRequest is validated by the domain so every failing field is reported together.
type RegisterRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	Nombre         string `json:"nombre"`
	Apellido       string `json:"apellido"`
	Identificacion string `json:"identificacion"`
	ClaveAdmin     string `json:"claveAdmin,omitempty"`
}

func (r *RegisterRequest) ToDomain() (*user.Registration, error) {
	return user.NewRegistration(r.Email, r.Password, r.Nombre, r.Apellido, r.Identificacion, r.ClaveAdmin)
}

type ExternalRegisterRequest struct {
	Nombre   string `json:"nombre" binding:"required"`
	Apellido string `json:"apellido" binding:"required"`
	Correo   string `json:"correo" binding:"required,email"`
}

type ProfileRequest struct {
	Nombre   string  `json:"nombre"`
	Apellido string  `json:"apellido"`
	Email    string  `json:"email"`
	Password *string `json:"password,omitempty"`
}

func (r *ProfileRequest) ToDomain() (*user.ProfileUpdate, error) {
	return user.NewProfileUpdate(r.Nombre, r.Apellido, r.Email, r.Password)
}

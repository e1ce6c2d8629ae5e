package response

import (
	"tour-storefront/internal/domain/user"
	"tour-storefront/internal/usecase/gateway"
)

type SessionResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Nombre         string `json:"nombre"`
	Apellido       string `json:"apellido"`
	Identificacion string `json:"identificacion,omitempty"`
	Role           string `json:"role"`
	IsAdmin        bool   `json:"isAdmin"`
}

func FromSession(s *user.Session) *SessionResponse {
	return &SessionResponse{
		ID:             s.ID(),
		Email:          s.Email(),
		Nombre:         s.Name(),
		Apellido:       s.Surname(),
		Identificacion: s.NationalID(),
		Role:           string(s.Role()),
		IsAdmin:        s.IsAdmin(),
	}
}

type UserResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Nombre         string `json:"nombre"`
	Apellido       string `json:"apellido"`
	Identificacion string `json:"identificacion,omitempty"`
}

func FromUserProfile(p *gateway.UserProfile) *UserResponse {
	return &UserResponse{
		ID:             p.ID,
		Email:          p.Email,
		Nombre:         p.Name,
		Apellido:       p.Surname,
		Identificacion: p.NationalID,
	}
}

type LoginResponse struct {
	User       *SessionResponse `json:"user"`
	RedirectTo string           `json:"redirectTo"`
}

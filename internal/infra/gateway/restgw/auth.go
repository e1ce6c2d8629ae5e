package restgw

import (
	"context"
	"net/http"

	"tour-storefront/internal/infra/transport/rest"
	"tour-storefront/internal/usecase/gateway"
)

type AuthService struct {
	client *rest.Client
}

func NewAuthService(b Backends) *AuthService {
	return &AuthService{client: b.Main}
}

// Login merges the submitted email into the profile because the backend may omit it.
func (s *AuthService) Login(ctx context.Context, creds gateway.Credentials) (*gateway.UserProfile, error) {
	body, err := doRecord(ctx, s.client, rest.Request{
		Operation:      "auth.login",
		Method:         http.MethodPost,
		Path:           "/login",
		Body:           creds,
		FailureMessage: "Login failed",
	})
	if err != nil {
		return nil, err
	}

	profile := profileFromRecord(body)
	if profile.Email == "" {
		profile.Email = creds.Email
	}
	return profile, nil
}

func (s *AuthService) Register(ctx context.Context, u gateway.NewUser) (*gateway.UserProfile, error) {
	body, err := doRecord(ctx, s.client, rest.Request{
		Operation:      "auth.register",
		Method:         http.MethodPost,
		Path:           "/usuarios",
		Body:           u,
		FailureMessage: "Registration failed",
	})
	if err != nil {
		return nil, err
	}

	profile := profileFromRecord(body)
	if profile.Email == "" {
		profile.Email = u.Email
	}
	return profile, nil
}

func (s *AuthService) RegisterExternal(ctx context.Context, u gateway.ExternalUser) (*gateway.UserProfile, error) {
	body, err := doRecord(ctx, s.client, rest.Request{
		Operation:      "auth.register_external",
		Method:         http.MethodPost,
		Path:           "/usuarios/externo",
		Body:           u,
		FailureMessage: "External registration failed",
	})
	if err != nil {
		return nil, err
	}

	profile := profileFromRecord(body)
	if profile.ID == "" {
		profile.ID = u.BookingUserID
	}
	if profile.Email == "" {
		profile.Email = u.Email
	}
	return profile, nil
}

package soapgw

import (
	"context"
	"net/http"

	"tour-storefront/internal/infra"
	"tour-storefront/internal/infra/gateway/restgw"
	"tour-storefront/internal/infra/transport/soap"
	"tour-storefront/internal/usecase/gateway"
)

// AuthService logs in and registers over SOAP; external registration has no SOAP method and stays on REST.
type AuthService struct {
	*restgw.AuthService
	client *soap.Client
}

func NewAuthService(rest *restgw.AuthService, client *soap.Client) *AuthService {
	return &AuthService{AuthService: rest, client: client}
}

func (s *AuthService) Login(ctx context.Context, creds gateway.Credentials) (*gateway.UserProfile, error) {
	res, err := s.client.Call(ctx, soap.Request{
		Action: "Login",
		Params: soap.Params{
			soap.P("email", creds.Email),
			soap.P("password", creds.Password),
		},
	})
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, infra.WrapGatewayErr(nil, infra.KindRejected, http.StatusUnauthorized, "Login failed", nil)
	}
	if ok, known := soap.AsNode(res).Bool("Exito"); known && !ok {
		return nil, infra.WrapGatewayErr(nil, infra.KindRejected, http.StatusUnauthorized, soap.AsNode(res).Text("Mensaje"), nil)
	}

	profile := profileFromNode(soap.AsNode(res))
	if profile.ID == "" {
		profile.ID = textResult(res)
	}
	if profile.Email == "" {
		profile.Email = creds.Email
	}
	return profile, nil
}

func (s *AuthService) Register(ctx context.Context, u gateway.NewUser) (*gateway.UserProfile, error) {
	res, err := s.client.Call(ctx, soap.Request{
		Action: "CrearUsuario",
		Params: soap.Params{
			soap.P("email", u.Email),
			soap.P("password", u.Password),
			soap.P("nombre", u.Name),
			soap.P("apellido", u.Surname),
			soap.P("identificacion", orNil(u.NationalID)),
			soap.P("claveAdmin", orNil(u.AdminKey)),
		},
	})
	if err != nil {
		return nil, err
	}

	profile := profileFromNode(soap.AsNode(res))
	if profile.ID == "" {
		if id, ok := res.(string); ok {
			profile.ID = id
		}
	}
	if profile.Email == "" {
		profile.Email = u.Email
	}
	return profile, nil
}

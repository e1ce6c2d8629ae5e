package restgw

import (
	"context"
	"net/http"
	"net/url"

	"tour-storefront/internal/infra/transport/rest"
	"tour-storefront/internal/usecase/gateway"
)

type UserService struct {
	client *rest.Client
}

func NewUserService(b Backends) *UserService {
	return &UserService{client: b.Main}
}

func (s *UserService) List(ctx context.Context) ([]gateway.Record, error) {
	return doRecords(ctx, s.client, rest.Request{
		Operation:      "user.list",
		Method:         http.MethodGet,
		Path:           "/usuarios/list",
		FailureMessage: "Error fetching users",
	})
}

func (s *UserService) Update(ctx context.Context, u gateway.UserUpdate) (gateway.Record, error) {
	return doRecord(ctx, s.client, rest.Request{
		Operation:      "user.update",
		Method:         http.MethodPut,
		Path:           "/usuarios/" + url.PathEscape(u.ID),
		Body:           u,
		FailureMessage: "Error updating profile",
	})
}

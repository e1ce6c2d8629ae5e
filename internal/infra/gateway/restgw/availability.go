package restgw

import (
	"context"
	"net/http"

	"tour-storefront/internal/infra/transport/rest"
	"tour-storefront/internal/usecase/gateway"
)

type AvailabilityService struct {
	client *rest.Client
}

func NewAvailabilityService(b Backends) *AvailabilityService {
	return &AvailabilityService{client: b.Main}
}

// Check treats any 2xx as available unless the body explicitly says otherwise.
func (s *AvailabilityService) Check(ctx context.Context, q gateway.AvailabilityQuery) (*gateway.Availability, error) {
	body, err := doRecord(ctx, s.client, rest.Request{
		Operation:      "availability.check",
		Method:         http.MethodPost,
		Path:           "/availability",
		Body:           q,
		FailureMessage: "Error checking availability",
	})
	if err != nil {
		return nil, err
	}

	result := &gateway.Availability{
		Available: true,
		Message:   body.Text("mensaje", "message"),
	}
	for _, key := range []string{"disponible", "Disponible", "available", "Available"} {
		if v, ok := body[key].(bool); ok {
			result.Available = v
			break
		}
	}
	return result, nil
}

package restgw

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"tour-storefront/internal/infra"
	"tour-storefront/internal/infra/transport/rest"
	"tour-storefront/internal/usecase/gateway"
)

type CatalogService struct {
	client *rest.Client
}

func NewCatalogService(b Backends) *CatalogService {
	return &CatalogService{client: b.Main}
}

func (s *CatalogService) Search(ctx context.Context, filter gateway.SearchFilter) ([]gateway.Package, error) {
	var raw json.RawMessage
	err := s.client.Do(ctx, rest.Request{
		Operation:      "catalog.search",
		Method:         http.MethodGet,
		Path:           "/search",
		Query:          searchQuery(filter),
		FailureMessage: "Error fetching packages",
	}, &raw)
	if err != nil {
		return nil, err
	}
	return decodePackages(raw)
}

func (s *CatalogService) Create(ctx context.Context, in gateway.PackageInput) (gateway.Record, error) {
	return doRecord(ctx, s.client, rest.Request{
		Operation:      "catalog.create",
		Method:         http.MethodPost,
		Path:           "/",
		Body:           in,
		FailureMessage: "Error creating package",
	})
}

func (s *CatalogService) Update(ctx context.Context, id string, in gateway.PackageInput) (gateway.Record, error) {
	return doRecord(ctx, s.client, rest.Request{
		Operation:      "catalog.update",
		Method:         http.MethodPut,
		Path:           "/" + url.PathEscape(id),
		Body:           in,
		FailureMessage: "Error updating package",
	})
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	return s.client.Do(ctx, rest.Request{
		Operation:      "catalog.delete",
		Method:         http.MethodDelete,
		Path:           "/" + url.PathEscape(id),
		FailureMessage: "Error deleting package",
	}, nil)
}

// searchQuery only sends filters that were set, mirroring a URLSearchParams built from form fields.
func searchQuery(f gateway.SearchFilter) url.Values {
	q := url.Values{}
	if f.City != "" {
		q.Set("city", f.City)
	}
	if f.StartDate != "" {
		q.Set("fechainicio", f.StartDate)
	}
	if f.ActivityType != "" {
		q.Set("tipoActividad", f.ActivityType)
	}
	if f.MaxPrice != nil {
		q.Set("precioMax", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	if f.Sort != "" {
		q.Set("sort", f.Sort)
	}
	return q
}

func decodePackages(raw json.RawMessage) ([]gateway.Package, error) {
	if len(raw) == 0 {
		return []gateway.Package{}, nil
	}

	var list []gateway.Package
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var wrapped struct {
		Data  []gateway.Package `json:"data"`
		Items []gateway.Package `json:"items"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, infra.WrapGatewayErr(nil, infra.KindMalformed, http.StatusOK, "unexpected package list shape", err)
	}
	if wrapped.Data != nil {
		return wrapped.Data, nil
	}
	if wrapped.Items != nil {
		return wrapped.Items, nil
	}
	return []gateway.Package{}, nil
}

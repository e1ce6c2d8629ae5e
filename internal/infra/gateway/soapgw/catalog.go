package soapgw

import (
	"context"

	"tour-storefront/internal/infra"
	"tour-storefront/internal/infra/transport/soap"
	"tour-storefront/internal/usecase/gateway"
)

type CatalogService struct {
	client *soap.Client
}

func NewCatalogService(client *soap.Client) *CatalogService {
	return &CatalogService{client: client}
}

func (s *CatalogService) Search(ctx context.Context, filter gateway.SearchFilter) ([]gateway.Package, error) {
	var maxPrice any
	if filter.MaxPrice != nil && *filter.MaxPrice > 0 {
		maxPrice = *filter.MaxPrice
	}

	res, err := s.client.Call(ctx, soap.Request{
		Action: "BuscarPaquetes",
		Params: soap.Params{
			soap.P("ciudad", orNil(filter.City)),
			soap.P("fechaInicio", orNil(filter.StartDate)),
			soap.P("tipoActividad", orNil(filter.ActivityType)),
			soap.P("precioMax", maxPrice),
		},
	})
	if err != nil {
		return nil, err
	}

	nodes := packageNodes(res)
	out := make([]gateway.Package, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, packageFromNode(n))
	}
	return out, nil
}

func (s *CatalogService) Create(context.Context, gateway.PackageInput) (gateway.Record, error) {
	return nil, unsupported("package creation")
}

func (s *CatalogService) Update(context.Context, string, gateway.PackageInput) (gateway.Record, error) {
	return nil, unsupported("package update")
}

func (s *CatalogService) Delete(context.Context, string) error {
	return unsupported("package deletion")
}

func unsupported(op string) error {
	return infra.WrapGatewayErr(nil, infra.KindUnsupported, 0, op+" is not available over SOAP", nil)
}

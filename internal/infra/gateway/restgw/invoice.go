package restgw

import (
	"context"
	"net/http"
	"net/url"

	"tour-storefront/internal/infra/transport/rest"
	"tour-storefront/internal/usecase/gateway"
)

type InvoiceService struct {
	client *rest.Client
}

func NewInvoiceService(b Backends) *InvoiceService {
	return &InvoiceService{client: b.Main}
}

func (s *InvoiceService) Emit(ctx context.Context, req gateway.InvoiceRequest) (*gateway.Invoice, error) {
	body, err := doRecord(ctx, s.client, rest.Request{
		Operation:      "invoice.emit",
		Method:         http.MethodPost,
		Path:           "/invoices",
		Body:           req,
		FailureMessage: "Error emitting invoice",
	})
	if err != nil {
		return nil, err
	}
	return &gateway.Invoice{
		ID:     gateway.ID(body.Text("idFactura", "IdFactura", "id")),
		Number: body.Text("numero", "Numero", "numeroFactura"),
		URI:    body.Text("uriFactura", "UriFactura", "url"),
	}, nil
}

func (s *InvoiceService) List(ctx context.Context) ([]gateway.Record, error) {
	return doRecords(ctx, s.client, rest.Request{
		Operation:      "invoice.list",
		Method:         http.MethodGet,
		Path:           "/invoices/list",
		FailureMessage: "Error fetching invoices",
	})
}

func (s *InvoiceService) ListByUser(ctx context.Context, userID string) ([]gateway.Record, error) {
	return doRecords(ctx, s.client, rest.Request{
		Operation:      "invoice.list_by_user",
		Method:         http.MethodGet,
		Path:           "/invoices/usuario/" + url.PathEscape(userID),
		FailureMessage: "Error fetching invoices",
	})
}

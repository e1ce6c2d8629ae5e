package restgw

import (
	"context"
	"net/http"

	"tour-storefront/internal/infra/transport/rest"
	"tour-storefront/internal/usecase/gateway"
)

const defaultPaymentMessage = "Transaction processed"

type BankingService struct {
	client *rest.Client
	path   string
}

func NewBankingService(b Backends) *BankingService {
	path := b.PaymentPath
	if path == "" {
		path = "/transaccion"
	}
	return &BankingService{client: b.Banking, path: path}
}

// Pay accepts both the {exito, mensaje, transaccion_id} shape and the proxied
// {Mensaje, TransaccionId} shape; a 2xx without an explicit flag counts as success.
func (s *BankingService) Pay(ctx context.Context, p gateway.Payment) (*gateway.PaymentResult, error) {
	body, err := doRecord(ctx, s.client, rest.Request{
		Operation:      "banking.pay",
		Method:         http.MethodPost,
		Path:           s.path,
		Body:           p,
		FailureMessage: "Error processing transaction",
	})
	if err != nil {
		return nil, err
	}

	result := &gateway.PaymentResult{
		Success:       true,
		Message:       body.Text("mensaje", "Mensaje", "message"),
		TransactionID: body.Text("transaccion_id", "TransaccionId", "transaccionId", "idTransaccion"),
	}
	for _, key := range []string{"exito", "Exito", "success"} {
		if v, ok := body[key].(bool); ok {
			result.Success = v
			break
		}
	}
	if result.Message == "" && result.Success {
		result.Message = defaultPaymentMessage
	}
	return result, nil
}

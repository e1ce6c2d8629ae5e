package soapgw

import (
	"context"

	"tour-storefront/internal/infra/transport/soap"
	"tour-storefront/internal/usecase/gateway"
)

type BankingService struct {
	client *soap.Client
}

func NewBankingService(client *soap.Client) *BankingService {
	return &BankingService{client: client}
}

func (s *BankingService) Pay(ctx context.Context, p gateway.Payment) (*gateway.PaymentResult, error) {
	res, err := s.client.Call(ctx, soap.Request{
		Action: "Pagar",
		Params: soap.Params{
			soap.P("cuentaOrigen", p.SourceAccount),
			soap.P("cuentaDestino", p.DestinationAccount),
			soap.P("monto", p.Amount),
		},
	})
	if err != nil {
		return nil, err
	}

	node := soap.AsNode(res)
	result := &gateway.PaymentResult{
		Success:       true,
		Message:       node.Text("Mensaje", "Message"),
		TransactionID: node.Text("TransaccionId", "IdTransaccion"),
	}
	if ok, known := node.Bool("Exito", "Success"); known {
		result.Success = ok
	}
	if id, isText := res.(string); isText {
		result.TransactionID = id
	}
	if result.Message == "" && result.Success {
		result.Message = "Transaction processed"
	}
	return result, nil
}

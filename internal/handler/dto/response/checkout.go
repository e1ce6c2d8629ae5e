package response

import (
	"tour-storefront/internal/domain/checkout"
	"tour-storefront/internal/usecase/commands"
)

type CheckoutItemResponse struct {
	Index         int    `json:"index"`
	TourID        string `json:"tourId"`
	Name          string `json:"name"`
	State         string `json:"state"`
	HoldID        string `json:"holdId,omitempty"`
	ReservationID string `json:"reservationId,omitempty"`
	FailedAt      string `json:"failedAt,omitempty"`
	Reason        string `json:"reason,omitempty"`
}

type InvoiceResponse struct {
	ID     string `json:"idFactura"`
	Number string `json:"numero,omitempty"`
	URI    string `json:"uriFactura,omitempty"`
}

type CheckoutResponse struct {
	Success        bool                   `json:"success"`
	Status         string                 `json:"status"`
	Message        string                 `json:"message"`
	Warnings       []string               `json:"warnings,omitempty"`
	RedirectTo     string                 `json:"redirectTo,omitempty"`
	TransactionID  string                 `json:"transactionId,omitempty"`
	ReservationIDs []string               `json:"reservationIds"`
	Invoice        *InvoiceResponse       `json:"invoice,omitempty"`
	Charged        TotalsResponse         `json:"charged"`
	Items          []CheckoutItemResponse `json:"items"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	res := &CheckoutResponse{
		Success:        r.Success(),
		Status:         string(r.Status),
		Message:        r.Message,
		Warnings:       r.Warnings,
		RedirectTo:     r.RedirectTo,
		TransactionID:  r.TransactionID,
		ReservationIDs: r.ReservationIDs,
		Charged:        FromTotals(r.Charged),
		Items:          fromCheckoutItems(r.Items),
	}
	if res.ReservationIDs == nil {
		res.ReservationIDs = []string{}
	}
	if r.Invoice != nil {
		res.Invoice = &InvoiceResponse{
			ID:     r.Invoice.ID.String(),
			Number: r.Invoice.Number,
			URI:    r.Invoice.URI,
		}
	}
	return res
}

func fromCheckoutItems(items []*checkout.Item) []CheckoutItemResponse {
	res := make([]CheckoutItemResponse, len(items))
	for i, it := range items {
		res[i] = CheckoutItemResponse{
			Index:         it.Index(),
			TourID:        it.Line().TourID,
			Name:          it.Line().Name,
			State:         string(it.State()),
			HoldID:        it.HoldID(),
			ReservationID: it.ReservationID(),
			FailedAt:      string(it.FailedAt()),
			Reason:        it.FailureReason(),
		}
	}
	return res
}

package shared

import "time"

type CheckoutCompletedEvent struct {
	VisitorID      string    `json:"visitorId"`
	UserID         string    `json:"userId"`
	Status         string    `json:"status"`
	TransactionID  string    `json:"transactionId,omitempty"`
	ReservationIDs []string  `json:"reservationIds"`
	InvoiceID      string    `json:"invoiceId,omitempty"`
	Total          string    `json:"total"`
	OccurredAt     time.Time `json:"occurredAt"`
}

package queries

//go:generate mockgen -source=account.go -destination=../../../tests/mock/queries/account_mock.go -package=queriesmock

import (
	"context"

	"tour-storefront/internal/domain/user"
	"tour-storefront/internal/usecase/gateway"
)

type AccountQueries interface {
	MyReservations(ctx context.Context, sess *user.Session) ([]gateway.Record, error)
	MyInvoices(ctx context.Context, sess *user.Session) ([]gateway.Record, error)
}

type accountQueriesImpl struct {
	reservations gateway.ReservationService
	invoices     gateway.InvoiceService
}

func NewAccountQueries(reservations gateway.ReservationService, invoices gateway.InvoiceService) AccountQueries {
	return &accountQueriesImpl{
		reservations: reservations,
		invoices:     invoices,
	}
}

func (q *accountQueriesImpl) MyReservations(ctx context.Context, sess *user.Session) ([]gateway.Record, error) {
	return orEmpty(q.reservations.ListByUser(ctx, sess.ID()))
}

func (q *accountQueriesImpl) MyInvoices(ctx context.Context, sess *user.Session) ([]gateway.Record, error) {
	return orEmpty(q.invoices.ListByUser(ctx, sess.ID()))
}

func orEmpty(records []gateway.Record, err error) ([]gateway.Record, error) {
	if err != nil {
		return nil, err
	}
	if records == nil {
		return []gateway.Record{}, nil
	}
	return records, nil
}

package queries

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/queries/admin_mock.go -package=queriesmock

import (
	"context"

	"tour-storefront/internal/usecase/gateway"
)

type AdminQueries interface {
	Users(ctx context.Context) ([]gateway.Record, error)
	Reservations(ctx context.Context) ([]gateway.Record, error)
	ReservationDetails(ctx context.Context, reservationID string) (gateway.Record, error)
	Invoices(ctx context.Context) ([]gateway.Record, error)
}

type adminQueriesImpl struct {
	users        gateway.UserService
	reservations gateway.ReservationService
	invoices     gateway.InvoiceService
}

func NewAdminQueries(users gateway.UserService, reservations gateway.ReservationService, invoices gateway.InvoiceService) AdminQueries {
	return &adminQueriesImpl{
		users:        users,
		reservations: reservations,
		invoices:     invoices,
	}
}

func (q *adminQueriesImpl) Users(ctx context.Context) ([]gateway.Record, error) {
	return orEmpty(q.users.List(ctx))
}

func (q *adminQueriesImpl) Reservations(ctx context.Context) ([]gateway.Record, error) {
	return orEmpty(q.reservations.List(ctx))
}

func (q *adminQueriesImpl) ReservationDetails(ctx context.Context, reservationID string) (gateway.Record, error) {
	return q.reservations.Details(ctx, reservationID)
}

func (q *adminQueriesImpl) Invoices(ctx context.Context) ([]gateway.Record, error) {
	return orEmpty(q.invoices.List(ctx))
}

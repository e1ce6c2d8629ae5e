package restgw

import (
	"context"
	"net/http"
	"net/url"

	"tour-storefront/internal/infra/transport/rest"
	"tour-storefront/internal/usecase/gateway"
)

type ReservationService struct {
	client *rest.Client
	admin  *rest.Client
}

func NewReservationService(b Backends) *ReservationService {
	return &ReservationService{client: b.Main, admin: b.Admin}
}

func (s *ReservationService) Hold(ctx context.Context, req gateway.HoldRequest) (*gateway.Hold, error) {
	body, err := doRecord(ctx, s.client, rest.Request{
		Operation:      "reservation.hold",
		Method:         http.MethodPost,
		Path:           "/hold",
		Body:           req,
		FailureMessage: "Error creating hold",
	})
	if err != nil {
		return nil, err
	}
	return &gateway.Hold{
		ID:        gateway.ID(body.Text("HoldId", "holdId", "IdHold", "idHold", "id")),
		ExpiresAt: body.Text("FechaExpiracion", "fechaExpiracion", "expiresAt"),
	}, nil
}

func (s *ReservationService) Book(ctx context.Context, req gateway.BookRequest) (*gateway.Booking, error) {
	body, err := doRecord(ctx, s.client, rest.Request{
		Operation:      "reservation.book",
		Method:         http.MethodPost,
		Path:           "/book",
		Body:           req,
		FailureMessage: "Error confirming booking",
	})
	if err != nil {
		return nil, err
	}
	return &gateway.Booking{
		ReservationID: gateway.ID(body.Text("IdReserva", "idReserva", "ReservaId", "reservaId", "id")),
		Code:          body.Text("CodigoReserva", "codigoReserva"),
		Status:        body.Text("Estado", "estado", "status"),
	}, nil
}

func (s *ReservationService) List(ctx context.Context) ([]gateway.Record, error) {
	return doRecords(ctx, s.client, rest.Request{
		Operation:      "reservation.list",
		Method:         http.MethodGet,
		Path:           "/reservas",
		FailureMessage: "Error fetching reservations",
	})
}

func (s *ReservationService) ListByUser(ctx context.Context, userID string) ([]gateway.Record, error) {
	return doRecords(ctx, s.client, rest.Request{
		Operation:      "reservation.list_by_user",
		Method:         http.MethodGet,
		Path:           "/reservas/usuario/" + url.PathEscape(userID),
		FailureMessage: "Error fetching reservations",
	})
}

func (s *ReservationService) Update(ctx context.Context, id string, changes gateway.Record) (gateway.Record, error) {
	return doRecord(ctx, s.client, rest.Request{
		Operation:      "reservation.update",
		Method:         http.MethodPut,
		Path:           "/reservas/" + url.PathEscape(id),
		Body:           changes,
		FailureMessage: "Error updating reservation",
	})
}

func (s *ReservationService) Cancel(ctx context.Context, id, reason string) (gateway.Record, error) {
	return doRecord(ctx, s.client, rest.Request{
		Operation:      "reservation.cancel",
		Method:         http.MethodPatch,
		Path:           "/reservas/" + url.PathEscape(id) + "/cancelar",
		Body:           map[string]string{"Motivo": reason},
		FailureMessage: "Error cancelling reservation",
	})
}

func (s *ReservationService) Details(ctx context.Context, id string) (gateway.Record, error) {
	return doRecord(ctx, s.admin, rest.Request{
		Operation:      "reservation.details",
		Method:         http.MethodGet,
		Path:           "/reservas/" + url.PathEscape(id) + "/detalles",
		FailureMessage: "Error fetching reservation details",
	})
}

package soapgw

import (
	"context"

	"tour-storefront/internal/infra/gateway/restgw"
	"tour-storefront/internal/infra/transport/soap"
	"tour-storefront/internal/usecase/gateway"
)

var bookingArrays = soap.ArraySchema{"turistas": "TuristaSoap"}

// ReservationService places holds and bookings over SOAP; listing and admin mutations stay on REST.
type ReservationService struct {
	*restgw.ReservationService
	client *soap.Client
}

func NewReservationService(rest *restgw.ReservationService, client *soap.Client) *ReservationService {
	return &ReservationService{ReservationService: rest, client: client}
}

func (s *ReservationService) Hold(ctx context.Context, req gateway.HoldRequest) (*gateway.Hold, error) {
	res, err := s.client.Call(ctx, soap.Request{
		Action: "CrearHold",
		Params: soap.Params{
			soap.P("idPaquete", req.PackageID),
			soap.P("bookingUserId", req.BookingUserID),
			soap.P("fechaInicio", req.StartDate),
			soap.P("personas", req.Travelers),
			soap.P("duracionHoldSegundos", req.HoldSeconds),
		},
	})
	if err != nil {
		return nil, err
	}
	return &gateway.Hold{
		ID:        gateway.ID(textResult(res, "HoldId", "IdHold", "Id")),
		ExpiresAt: soap.AsNode(res).Text("FechaExpiracion"),
	}, nil
}

func (s *ReservationService) Book(ctx context.Context, req gateway.BookRequest) (*gateway.Booking, error) {
	travelers := make([]soap.Params, 0, len(req.Travelers))
	for _, t := range req.Travelers {
		travelers = append(travelers, soap.Params{
			soap.P("nombre", t.Name),
			soap.P("apellido", t.Surname),
			soap.P("fechaNacimiento", orNil(t.BirthDate)),
			soap.P("tipoIdentificacion", t.IdentificationType),
			soap.P("identificacion", t.Identification),
		})
	}

	res, err := s.client.Call(ctx, soap.Request{
		Action: "ReservarPaquete",
		Params: soap.Params{
			soap.P("idPaquete", req.PackageID),
			soap.P("holdId", req.HoldID),
			soap.P("bookingUserId", req.BookingUserID),
			soap.P("metodoPago", req.PaymentMethod),
			soap.P("turistas", travelers),
		},
		Arrays: bookingArrays,
	})
	if err != nil {
		return nil, err
	}
	node := soap.AsNode(res)
	return &gateway.Booking{
		ReservationID: gateway.ID(textResult(res, "IdReserva", "ReservaId", "Id")),
		Code:          node.Text("CodigoReserva"),
		Status:        node.Text("Estado"),
	}, nil
}

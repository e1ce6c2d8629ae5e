package request

import (
	"strings"

	"tour-storefront/internal/domain/checkout"
)

type TravelerRequest struct {
	Nombre             string `json:"nombre" binding:"required"`
	Apellido           string `json:"apellido" binding:"required"`
	FechaNacimiento    string `json:"fechaNacimiento"`
	TipoIdentificacion string `json:"tipoIdentificacion"`
	Identificacion     string `json:"identificacion" binding:"required"`
}

// CheckoutRequest leaves account checks to the checkout preconditions so they run in order.
type CheckoutRequest struct {
	NroCliente Text              `json:"nroCliente"`
	NroCuenta  Text              `json:"nroCuenta"`
	Travelers  []TravelerRequest `json:"travelers" binding:"omitempty,dive"`
}

func (r CheckoutRequest) ToDomain() checkout.Request {
	travelers := make([]checkout.Traveler, 0, len(r.Travelers))
	for _, t := range r.Travelers {
		travelers = append(travelers, checkout.Traveler{
			Name:               strings.TrimSpace(t.Nombre),
			Surname:            strings.TrimSpace(t.Apellido),
			BirthDate:          t.FechaNacimiento,
			IdentificationType: t.TipoIdentificacion,
			Identification:     strings.TrimSpace(t.Identificacion),
		})
	}
	return checkout.Request{
		ClientID:      r.NroCliente.String(),
		SourceAccount: r.NroCuenta.String(),
		Travelers:     travelers,
	}
}

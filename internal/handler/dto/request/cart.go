package request

import (
	"strings"

	"tour-storefront/internal/domain/cart"
)

// TourSnapshot is the package as served by the catalog endpoints.
type TourSnapshot struct {
	IdPaquete     Text   `json:"idPaquete" binding:"required"`
	Nombre        string `json:"nombre"`
	Ciudad        string `json:"ciudad,omitempty"`
	Pais          string `json:"pais,omitempty"`
	TipoActividad string `json:"tipoActividad,omitempty"`
	Capacidad     *Count `json:"capacidad,omitempty"`
	PrecioNormal  Amount `json:"precioNormal,omitempty"`
	PrecioActual  Amount `json:"precioActual"`
	ImagenUrl     string `json:"imagenUrl"`
	Duracion      *Count `json:"duracion,omitempty"`
	Descripcion   string `json:"descripcion,omitempty"`
}

type AddCartItemRequest struct {
	Tour     TourSnapshot `json:"tour" binding:"required"`
	Adults   *Count       `json:"adults" binding:"required"`
	Children *Count       `json:"children"`
	Date     string       `json:"date"`
}

func (r *AddCartItemRequest) ToTour() cart.Tour {
	return cart.Tour{
		ID:           r.Tour.IdPaquete.String(),
		Name:         strings.TrimSpace(r.Tour.Nombre),
		Image:        r.Tour.ImagenUrl,
		Price:        r.Tour.PrecioActual.Decimal,
		DurationDays: r.Tour.Duracion.Int(),
	}
}

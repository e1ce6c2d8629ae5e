package response

import (
	"tour-storefront/internal/usecase/gateway"

	"github.com/jinzhu/copier"
)

// PackageResponse keeps the backend's field names so cart snapshots can be posted back unchanged.
type PackageResponse struct {
	ID           string  `json:"idPaquete"`
	Name         string  `json:"nombre"`
	City         string  `json:"ciudad"`
	Country      string  `json:"pais"`
	ActivityType string  `json:"tipoActividad"`
	Capacity     int     `json:"capacidad"`
	NormalPrice  float64 `json:"precioNormal"`
	CurrentPrice float64 `json:"precioActual"`
	ImageURL     string  `json:"imagenUrl"`
	DurationDays int     `json:"duracion"`
	Description  string  `json:"descripcion,omitempty"`
}

func FromPackages(packages []gateway.Package) ([]PackageResponse, error) {
	res := make([]PackageResponse, 0, len(packages))
	if err := copier.Copy(&res, &packages); err != nil {
		return nil, err
	}
	return res, nil
}

type DestinationsResponse struct {
	Destinations []string `json:"destinations"`
}

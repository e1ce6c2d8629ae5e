package request

import (
	"strconv"
	"strings"

	"tour-storefront/internal/usecase/gateway"
)

type SearchRequest struct {
	City          string `form:"city"`
	FechaInicio   string `form:"fechainicio"`
	TipoActividad string `form:"tipoActividad"`
	PrecioMax     string `form:"precioMax"`
	Sort          string `form:"sort"`
}

// ToFilter drops a max price that does not parse, as an unparsable form field would be ignored.
func (r SearchRequest) ToFilter() gateway.SearchFilter {
	f := gateway.SearchFilter{
		City:         strings.TrimSpace(r.City),
		StartDate:    strings.TrimSpace(r.FechaInicio),
		ActivityType: strings.TrimSpace(r.TipoActividad),
		Sort:         strings.TrimSpace(r.Sort),
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(r.PrecioMax), 64); err == nil {
		f.MaxPrice = &v
	}
	return f
}

type PackageRequest struct {
	Nombre        string `json:"nombre" binding:"required"`
	Codigo        string `json:"codigo"`
	CiudadId      Text   `json:"ciudadId"`
	TipoActividad string `json:"tipoActividad"`
	PrecioBase    Amount `json:"precioBase"`
	CupoMaximo    *Count `json:"cupoMaximo"`
	DuracionDias  *Count `json:"duracionDias"`
	ImagenUrl     string `json:"imagenUrl"`
}

const (
	defaultActivityType = "General"
	defaultCapacity     = 20
	defaultDurationDays = 3
)

// ToInput fills the same defaults the back-office form used; code is generated when left blank.
func (r PackageRequest) ToInput(generateCode func() string) gateway.PackageInput {
	in := gateway.PackageInput{
		Name:         strings.TrimSpace(r.Nombre),
		Code:         strings.TrimSpace(r.Codigo),
		CityID:       r.CiudadId.String(),
		ActivityType: strings.TrimSpace(r.TipoActividad),
		BasePrice:    r.PrecioBase.InexactFloat64(),
		MaxCapacity:  defaultCapacity,
		DurationDays: defaultDurationDays,
		ImageURL:     strings.TrimSpace(r.ImagenUrl),
	}
	if in.Code == "" && generateCode != nil {
		in.Code = generateCode()
	}
	if in.ActivityType == "" {
		in.ActivityType = defaultActivityType
	}
	if r.CupoMaximo != nil && r.CupoMaximo.Int() > 0 {
		in.MaxCapacity = r.CupoMaximo.Int()
	}
	if r.DuracionDias != nil && r.DuracionDias.Int() > 0 {
		in.DurationDays = r.DuracionDias.Int()
	}
	return in
}

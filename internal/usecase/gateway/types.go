package gateway

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"tour-storefront/internal/domain/checkout"
)

// ID is a backend identifier that may arrive as a JSON string or number.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// Record is a backend document relayed without interpretation (admin tables, reservation details).
type Record map[string]any

// Text returns the first non-empty value among keys rendered as a string.
func (r Record) Text(keys ...string) string {
	for _, k := range keys {
		v, ok := r[k]
		if !ok {
			for rk, rv := range r {
				if strings.EqualFold(rk, k) {
					v, ok = rv, true
					break
				}
			}
		}
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if t != "" {
				return t
			}
		case float64:
			return strconv.FormatFloat(t, 'f', -1, 64)
		case json.Number:
			return t.String()
		case bool:
			return strconv.FormatBool(t)
		}
	}
	return ""
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserProfile is the backend's view of a user, normalized across transports.
type UserProfile struct {
	ID         string
	Email      string
	Name       string
	Surname    string
	NationalID string
}

type NewUser struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"nombre"`
	Surname    string `json:"apellido"`
	NationalID string `json:"identificacion,omitempty"`
	AdminKey   string `json:"claveAdmin,omitempty"`
}

type ExternalUser struct {
	BookingUserID string `json:"bookingUserId"`
	Name          string `json:"nombre"`
	Surname       string `json:"apellido"`
	Email         string `json:"correo"`
}

type UserUpdate struct {
	ID       string  `json:"IdUsuario"`
	Name     string  `json:"Nombre"`
	Surname  string  `json:"Apellido"`
	Email    string  `json:"Email"`
	Password *string `json:"Password,omitempty"`
}

type Package struct {
	ID           ID      `json:"idPaquete"`
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

type SearchFilter struct {
	City         string
	StartDate    string
	ActivityType string
	MaxPrice     *float64
	Sort         string
}

// PackageInput is the admin create/update body; the backend expects these exact keys.
type PackageInput struct {
	Name         string  `json:"Nombre"`
	Code         string  `json:"Codigo"`
	CityID       string  `json:"CiudadId"`
	ActivityType string  `json:"TipoActividad"`
	BasePrice    float64 `json:"PrecioBase"`
	MaxCapacity  int     `json:"CupoMaximo"`
	DurationDays int     `json:"DuracionDias"`
	ImageURL     string  `json:"ImagenUrl"`
}

type AvailabilityQuery struct {
	PackageID string `json:"idPaquete"`
	StartDate string `json:"fechaInicio"`
	Travelers int    `json:"personas"`
}

type Availability struct {
	Available bool
	Message   string
}

type HoldRequest struct {
	PackageID     string `json:"idPaquete"`
	BookingUserID string `json:"bookingUserId"`
	StartDate     string `json:"fechaInicio"`
	Travelers     int    `json:"personas"`
	HoldSeconds   int    `json:"duracionHoldSegundos"`
}

type Hold struct {
	ID        ID     `json:"holdId"`
	ExpiresAt string `json:"fechaExpiracion,omitempty"`
}

type BookRequest struct {
	PackageID     string              `json:"idPaquete"`
	HoldID        string              `json:"holdId"`
	BookingUserID string              `json:"bookingUserId"`
	PaymentMethod string              `json:"metodoPago"`
	Travelers     []checkout.Traveler `json:"turistas"`
}

type Booking struct {
	ReservationID ID     `json:"idReserva"`
	Code          string `json:"codigoReserva,omitempty"`
	Status        string `json:"estado,omitempty"`
}

type Payment struct {
	SourceAccount      int64   `json:"cuenta_origen"`
	DestinationAccount int64   `json:"cuenta_destino"`
	Amount             float64 `json:"monto"`
}

type PaymentResult struct {
	Success       bool
	Message       string
	TransactionID string
}

type InvoiceRequest struct {
	ReservationID string  `json:"reservaId"`
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"iva"`
	Total         float64 `json:"total"`
}

type Invoice struct {
	ID     ID     `json:"idFactura"`
	Number string `json:"numero"`
	URI    string `json:"uriFactura"`
}

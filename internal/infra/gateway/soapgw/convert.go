package soapgw

import (
	"tour-storefront/internal/infra/transport/soap"
	"tour-storefront/internal/usecase/gateway"
)

// orNil maps empty filter values to xsi:nil so the service does not treat them as filters.
func orNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func profileFromNode(n soap.Node) *gateway.UserProfile {
	for _, wrapper := range []string{"Usuario", "UsuarioSoap", "UsuarioDto"} {
		if n.Has(wrapper) {
			n = n.Child(wrapper)
			break
		}
	}
	return &gateway.UserProfile{
		ID:         n.Text("IdUsuario", "Id", "BookingUserId"),
		Email:      n.Text("Email", "Correo"),
		Name:       n.Text("Nombre"),
		Surname:    n.Text("Apellido"),
		NationalID: n.Text("Identificacion", "Cedula"),
	}
}

// packageNodes unwraps the list shapes the search operation has been seen to return.
func packageNodes(res any) []soap.Node {
	root := soap.AsNode(res)
	if len(root) == 0 {
		return nil
	}

	for _, key := range []string{"PaqueteDto", "PaqueteSoap"} {
		if root.Has(key) {
			return root.Nodes(key)
		}
	}
	for _, wrapper := range []string{"ArrayOfPaqueteSoap", "ArrayOfPaqueteDto"} {
		if root.Has(wrapper) {
			inner := root.Child(wrapper)
			for _, key := range []string{"PaqueteDto", "PaqueteSoap", "item"} {
				if inner.Has(key) {
					return inner.Nodes(key)
				}
			}
			return []soap.Node{inner}
		}
	}
	if root.Has("item") {
		return root.Nodes("item")
	}
	return []soap.Node{root}
}

func packageFromNode(n soap.Node) gateway.Package {
	return gateway.Package{
		ID:           gateway.ID(n.Text("IdPaquete", "Id", "Codigo")),
		Name:         n.Text("Nombre"),
		City:         n.Text("Ciudad"),
		Country:      n.Text("Pais"),
		ActivityType: n.Text("TipoActividad"),
		Capacity:     n.Int("Capacidad", "CupoMaximo"),
		NormalPrice:  n.Float("PrecioNormal", "PrecioBase"),
		CurrentPrice: n.Float("PrecioActual", "PrecioNormal", "PrecioBase"),
		ImageURL:     n.Text("ImagenUrl"),
		DurationDays: n.Int("Duracion", "DuracionDias"),
		Description:  n.Text("Descripcion"),
	}
}

func textResult(res any, keys ...string) string {
	if s, ok := res.(string); ok {
		return s
	}
	return soap.AsNode(res).Text(keys...)
}

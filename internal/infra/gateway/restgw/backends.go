package restgw

import (
	"context"
	"log/slog"

	"tour-storefront/internal/infra/transport/rest"
	"tour-storefront/internal/pkg/config"
	"tour-storefront/internal/usecase/gateway"
)

// Backends groups the REST hosts the storefront talks to.
type Backends struct {
	Main        *rest.Client // packages, reservations, users, invoices
	Admin       *rest.Client // admin host variant serving reservation details
	Banking     *rest.Client
	PaymentPath string
}

func NewBackends(cfg config.Config, logger *slog.Logger) Backends {
	b := cfg.Backend
	return Backends{
		Main:        rest.NewClient(b.BaseURL, b.Timeout, logger),
		Admin:       rest.NewClient(b.AdminURL(), b.Timeout, logger),
		Banking:     rest.NewClient(b.BankingURL(), b.Timeout, logger),
		PaymentPath: b.PaymentPath,
	}
}

// unwrapRecord returns the first nested object under one of keys, or r itself.
func unwrapRecord(r gateway.Record, keys ...string) gateway.Record {
	for _, k := range keys {
		if nested, ok := r[k].(map[string]any); ok {
			return gateway.Record(nested)
		}
	}
	return r
}

func profileFromRecord(r gateway.Record) *gateway.UserProfile {
	r = unwrapRecord(r, "usuario", "Usuario", "user", "data")
	return &gateway.UserProfile{
		ID:         r.Text("IdUsuario", "idUsuario", "Id", "id", "BookingUserId", "bookingUserId"),
		Email:      r.Text("Email", "email", "Correo", "correo"),
		Name:       r.Text("Nombre", "nombre", "Name", "name"),
		Surname:    r.Text("Apellido", "apellido", "Surname", "surname"),
		NationalID: r.Text("Identificacion", "identificacion", "Cedula", "cedula"),
	}
}

// recordsFrom accepts a bare array or an object wrapping one.
func recordsFrom(raw any) []gateway.Record {
	switch v := raw.(type) {
	case []any:
		out := make([]gateway.Record, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				out = append(out, gateway.Record(m))
			}
		}
		return out
	case map[string]any:
		for _, k := range []string{"data", "items", "resultado", "result", "value"} {
			if nested, ok := v[k]; ok {
				return recordsFrom(nested)
			}
		}
		return []gateway.Record{gateway.Record(v)}
	}
	return []gateway.Record{}
}

// doRecord decodes any JSON body; non-object bodies are kept under "result".
func doRecord(ctx context.Context, client *rest.Client, req rest.Request) (gateway.Record, error) {
	var raw any
	if err := client.Do(ctx, req, &raw); err != nil {
		return nil, err
	}
	switch v := raw.(type) {
	case map[string]any:
		return gateway.Record(v), nil
	case nil:
		return gateway.Record{}, nil
	default:
		return gateway.Record{"result": v}, nil
	}
}

func doRecords(ctx context.Context, client *rest.Client, req rest.Request) ([]gateway.Record, error) {
	var raw any
	if err := client.Do(ctx, req, &raw); err != nil {
		return nil, err
	}
	return recordsFrom(raw), nil
}

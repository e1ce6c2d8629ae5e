package components

import (
	"log/slog"

	"tour-storefront/internal/infra/gateway/restgw"
	"tour-storefront/internal/infra/gateway/soapgw"
	"tour-storefront/internal/infra/transport/soap"
	"tour-storefront/internal/pkg/config"
	"tour-storefront/internal/usecase/gateway"

	"go.uber.org/fx"
)

// GatewayModule binds the backend ports. The transport is fixed at construction:
// SOAP covers auth, catalog search, holds, bookings and payments; everything else stays on REST.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		restgw.NewBackends,
		restgw.NewAuthService,
		restgw.NewCatalogService,
		restgw.NewReservationService,
		restgw.NewBankingService,
		NewSOAPClient,
		fx.Annotate(
			restgw.NewAvailabilityService,
			fx.As(new(gateway.AvailabilityService)),
		),
		fx.Annotate(
			restgw.NewInvoiceService,
			fx.As(new(gateway.InvoiceService)),
		),
		fx.Annotate(
			restgw.NewUserService,
			fx.As(new(gateway.UserService)),
		),
		NewAuthPort,
		NewCatalogPort,
		NewReservationPort,
		NewBankingPort,
	),
)

// NewSOAPClient returns nil in REST mode; the port constructors never touch it then.
func NewSOAPClient(cfg config.Config, logger *slog.Logger) *soap.Client {
	if !cfg.Backend.UseSOAP() {
		return nil
	}
	logger.Info("SOAP transport enabled", "endpoint", cfg.Backend.SOAPURL)
	return soap.NewClient(cfg.Backend.SOAPURL, cfg.Backend.SOAPNamespace, cfg.Backend.Timeout, logger)
}

func NewAuthPort(cfg config.Config, rest *restgw.AuthService, client *soap.Client) gateway.AuthService {
	if cfg.Backend.UseSOAP() {
		return soapgw.NewAuthService(rest, client)
	}
	return rest
}

func NewCatalogPort(cfg config.Config, rest *restgw.CatalogService, client *soap.Client) gateway.CatalogService {
	if cfg.Backend.UseSOAP() {
		return soapgw.NewCatalogService(client)
	}
	return rest
}

func NewReservationPort(cfg config.Config, rest *restgw.ReservationService, client *soap.Client) gateway.ReservationService {
	if cfg.Backend.UseSOAP() {
		return soapgw.NewReservationService(rest, client)
	}
	return rest
}

func NewBankingPort(cfg config.Config, rest *restgw.BankingService, client *soap.Client) gateway.BankingService {
	if cfg.Backend.UseSOAP() {
		return soapgw.NewBankingService(client)
	}
	return rest
}

//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"tour-storefront/internal/domain/cart"
	"tour-storefront/internal/domain/checkout"
	reqdto "tour-storefront/internal/handler/dto/request"
	"tour-storefront/internal/infra"
	"tour-storefront/internal/infra/kvstore"
	"tour-storefront/internal/infra/store"
	"tour-storefront/internal/pkg/clock"
	"tour-storefront/internal/pkg/config"
	"tour-storefront/internal/pkg/errs"
	"tour-storefront/internal/usecase/commands"
	"tour-storefront/internal/usecase/gateway"
	"tour-storefront/internal/usecase/shared"
	"tour-storefront/tests/common/builder"
	gatewaymock "tour-storefront/tests/mock/gateway"
	sharedmock "tour-storefront/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type checkoutFixture struct {
	availability *gatewaymock.MockAvailabilityService
	reservations *gatewaymock.MockReservationService
	banking      *gatewaymock.MockBankingService
	invoices     *gatewaymock.MockInvoiceService
	observer     *sharedmock.MockCartObserver
	events       *sharedmock.MockEventPublisher
	carts        *store.CartStore
	sessions     *store.SessionStore
	visitor      uuid.UUID
	cmds         commands.CheckoutCommands
}

func newCheckoutFixture(t *testing.T, policy string, loggedIn bool, lines ...cart.LineItem) *checkoutFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	kv := kvstore.NewMemoryStore()

	f := &checkoutFixture{
		availability: gatewaymock.NewMockAvailabilityService(ctrl),
		reservations: gatewaymock.NewMockReservationService(ctrl),
		banking:      gatewaymock.NewMockBankingService(ctrl),
		invoices:     gatewaymock.NewMockInvoiceService(ctrl),
		observer:     sharedmock.NewMockCartObserver(ctrl),
		events:       sharedmock.NewMockEventPublisher(ctrl),
		carts:        store.NewCartStore(kv, slog.New(slog.NewTextHandler(io.Discard, nil))),
		sessions:     store.NewSessionStore(kv, slog.New(slog.NewTextHandler(io.Discard, nil))),
		visitor:      uuid.New(),
	}

	ctx := context.Background()
	require.NoError(t, f.carts.Save(ctx, f.visitor, cart.New(lines...)))
	if loggedIn {
		require.NoError(t, f.sessions.Save(ctx, f.visitor, builder.NewAuthBuilder().BuildSession(t)))
	}

	cfg := config.NewTestConfig()
	cfg.Checkout.FailurePolicy = policy
	f.cmds = commands.NewCheckoutCommands(commands.CheckoutDeps{
		Sessions:     f.sessions,
		Carts:        f.carts,
		Observer:     f.observer,
		Events:       f.events,
		Availability: f.availability,
		Reservations: f.reservations,
		Banking:      f.banking,
		Invoices:     f.invoices,
		Clock:        clock.NewFixedClock(builder.FixedTime),
	}, cfg)
	return f
}

func (f *checkoutFixture) cartLen(t *testing.T) int {
	t.Helper()
	c, err := f.carts.Load(context.Background(), f.visitor)
	require.NoError(t, err)
	return c.Len()
}

func line(tourID, name string) cart.LineItem {
	return builder.NewCartItemBuilder().With(func(b *builder.CartItemBuilder) {
		b.TourID = tourID
		b.Name = name
	}).BuildDomain()
}

var (
	validRequest = reqdto.CheckoutRequest{NroCliente: "C-1", NroCuenta: "12345"}
	manifest     = []checkout.Traveler{{Name: "Ana", Surname: "Pérez", IdentificationType: "Cedula", Identification: "1712345678"}}
)

func availabilityFor(tourID string) gateway.AvailabilityQuery {
	return gateway.AvailabilityQuery{PackageID: tourID, StartDate: "2026-07-01", Travelers: 3}
}

func holdFor(tourID string) gateway.HoldRequest {
	return gateway.HoldRequest{PackageID: tourID, BookingUserID: "42", StartDate: "2026-07-01", Travelers: 3, HoldSeconds: 600}
}

func bookFor(tourID, holdID string) gateway.BookRequest {
	return gateway.BookRequest{PackageID: tourID, HoldID: holdID, BookingUserID: "42", PaymentMethod: "Transferencia", Travelers: manifest}
}

func TestCheckoutPreconditions(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name     string
		loggedIn bool
		lines    []cart.LineItem
		req      reqdto.CheckoutRequest
		category error
		cause    error
	}{
		{
			name:     "anonymous visitor must log in",
			lines:    []cart.LineItem{line("P1", "Galápagos")},
			req:      validRequest,
			category: errs.ErrUnauthenticated,
			cause:    checkout.ErrNotAuthenticated,
		},
		{
			name:     "missing account",
			loggedIn: true,
			lines:    []cart.LineItem{line("P1", "Galápagos")},
			req:      reqdto.CheckoutRequest{NroCliente: "C-1"},
			category: errs.ErrDomainValidation,
			cause:    checkout.ErrMissingAccount,
		},
		{
			name:     "non numeric account",
			loggedIn: true,
			lines:    []cart.LineItem{line("P1", "Galápagos")},
			req:      reqdto.CheckoutRequest{NroCliente: "C-1", NroCuenta: "ABC"},
			category: errs.ErrDomainValidation,
			cause:    checkout.ErrInvalidAccount,
		},
		{
			name:     "empty cart makes no backend call",
			loggedIn: true,
			req:      validRequest,
			category: errs.ErrDomainValidation,
			cause:    checkout.ErrEmptyCart,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// no expectations are set, so any gateway call fails the test
			f := newCheckoutFixture(t, "per_item", tc.loggedIn, tc.lines...)

			res, err := f.cmds.Checkout(ctx, f.visitor, tc.req)
			require.Nil(t, res)
			assert.True(t, errs.Is(err, tc.category))
			assert.ErrorIs(t, err, tc.cause)
			assert.Equal(t, len(tc.lines), f.cartLen(t))
		})
	}
}

func TestCheckoutCompleted(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, "per_item", true, line("P1", "Galápagos"))

	gomock.InOrder(
		f.availability.EXPECT().Check(gomock.Any(), availabilityFor("P1")).Return(&gateway.Availability{Available: true}, nil),
		f.reservations.EXPECT().Hold(gomock.Any(), holdFor("P1")).Return(&gateway.Hold{ID: "H1"}, nil),
		f.banking.EXPECT().Pay(gomock.Any(), gateway.Payment{SourceAccount: 12345, DestinationAccount: 123456789, Amount: 280}).
			Return(&gateway.PaymentResult{Success: true, TransactionID: "TX1"}, nil),
		f.reservations.EXPECT().Book(gomock.Any(), bookFor("P1", "H1")).Return(&gateway.Booking{ReservationID: "R1"}, nil),
		f.invoices.EXPECT().Emit(gomock.Any(), gateway.InvoiceRequest{ReservationID: "R1", Subtotal: 250, Tax: 30, Total: 280}).
			Return(&gateway.Invoice{ID: "F1", Number: "001-001"}, nil),
	)
	f.observer.EXPECT().CartChanged(gomock.Any(), f.visitor, 0)
	f.events.EXPECT().PublishCheckoutCompleted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e shared.CheckoutCompletedEvent) error {
			assert.Equal(t, "completed", e.Status)
			assert.Equal(t, "42", e.UserID)
			assert.Equal(t, []string{"R1"}, e.ReservationIDs)
			assert.Equal(t, "F1", e.InvoiceID)
			assert.Equal(t, "280.00", e.Total)
			return nil
		})

	res, err := f.cmds.Checkout(ctx, f.visitor, validRequest)
	require.NoError(t, err)

	assert.Equal(t, commands.CheckoutCompleted, res.Status)
	assert.True(t, res.Success())
	assert.Equal(t, "Booking confirmed", res.Message)
	assert.Equal(t, "/confirmation", res.RedirectTo)
	assert.Equal(t, "TX1", res.TransactionID)
	assert.Equal(t, []string{"R1"}, res.ReservationIDs)
	assert.Equal(t, "001-001", res.Invoice.Number)
	assert.Equal(t, "280.00", res.Charged.Total.StringFixed(2))
	assert.Equal(t, 0, f.cartLen(t))
}

func TestCheckoutAvailabilityFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("unavailable item is never held", func(t *testing.T) {
		f := newCheckoutFixture(t, "per_item", true, line("P1", "Galápagos"))
		f.availability.EXPECT().Check(gomock.Any(), gomock.Any()).Return(&gateway.Availability{Available: false}, nil)

		res, err := f.cmds.Checkout(ctx, f.visitor, validRequest)
		require.NoError(t, err)

		assert.Equal(t, commands.CheckoutFailed, res.Status)
		assert.False(t, res.Success())
		assert.Equal(t, "No items could be reserved. Failed: Galápagos: not available for the selected date.", res.Message)
		assert.Equal(t, checkout.StepAvailability, res.Items[0].FailedAt())
		assert.Equal(t, 1, f.cartLen(t))
	})

	t.Run("backend error message is kept", func(t *testing.T) {
		f := newCheckoutFixture(t, "per_item", true, line("P1", "Galápagos"))
		f.availability.EXPECT().Check(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapGatewayErr(nil, infra.KindRejected, 409, "Fecha no disponible", nil))

		res, err := f.cmds.Checkout(ctx, f.visitor, validRequest)
		require.NoError(t, err)
		assert.Equal(t, "Fecha no disponible", res.Items[0].FailureReason())
	})

	t.Run("hold without id fails the item", func(t *testing.T) {
		f := newCheckoutFixture(t, "per_item", true, line("P1", "Galápagos"))
		f.availability.EXPECT().Check(gomock.Any(), gomock.Any()).Return(&gateway.Availability{Available: true}, nil)
		f.reservations.EXPECT().Hold(gomock.Any(), gomock.Any()).Return(&gateway.Hold{}, nil)

		res, err := f.cmds.Checkout(ctx, f.visitor, validRequest)
		require.NoError(t, err)
		assert.Equal(t, commands.CheckoutFailed, res.Status)
		assert.Equal(t, checkout.StepHold, res.Items[0].FailedAt())
		assert.Equal(t, "hold response carried no HoldId", res.Items[0].FailureReason())
	})

	t.Run("all or nothing stops at the first failure", func(t *testing.T) {
		f := newCheckoutFixture(t, "all_or_nothing", true, line("P1", "Galápagos"), line("P2", "Cotopaxi"))
		f.availability.EXPECT().Check(gomock.Any(), availabilityFor("P1")).Return(&gateway.Availability{Available: false, Message: "Sin cupo"}, nil)

		res, err := f.cmds.Checkout(ctx, f.visitor, validRequest)
		require.NoError(t, err)

		assert.Equal(t, commands.CheckoutAborted, res.Status)
		assert.Equal(t, "Checkout stopped: Galápagos could not be reserved (Sin cupo)", res.Message)
		assert.Equal(t, checkout.StatePending, res.Items[1].State())
		assert.Equal(t, 2, f.cartLen(t))
	})

	t.Run("per item charges only what was held", func(t *testing.T) {
		f := newCheckoutFixture(t, "per_item", true, line("P1", "Galápagos"), line("P2", "Cotopaxi"))
		f.availability.EXPECT().Check(gomock.Any(), availabilityFor("P1")).Return(&gateway.Availability{Available: false}, nil)
		f.availability.EXPECT().Check(gomock.Any(), availabilityFor("P2")).Return(&gateway.Availability{Available: true}, nil)
		f.reservations.EXPECT().Hold(gomock.Any(), holdFor("P2")).Return(&gateway.Hold{ID: "H2"}, nil)
		f.banking.EXPECT().Pay(gomock.Any(), gateway.Payment{SourceAccount: 12345, DestinationAccount: 123456789, Amount: 280}).
			Return(&gateway.PaymentResult{Success: true, TransactionID: "TX2"}, nil)
		f.reservations.EXPECT().Book(gomock.Any(), bookFor("P2", "H2")).Return(&gateway.Booking{ReservationID: "R2"}, nil)
		f.invoices.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(&gateway.Invoice{ID: "F2"}, nil)
		f.observer.EXPECT().CartChanged(gomock.Any(), f.visitor, 1)
		f.events.EXPECT().PublishCheckoutCompleted(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.cmds.Checkout(ctx, f.visitor, validRequest)
		require.NoError(t, err)

		assert.Equal(t, commands.CheckoutPartial, res.Status)
		assert.Equal(t, "1 of 2 items booked. Failed: Galápagos: not available for the selected date.", res.Message)
		remaining, err := f.carts.Load(ctx, f.visitor)
		require.NoError(t, err)
		require.Equal(t, 1, remaining.Len())
		assert.Equal(t, "P1", remaining.Items()[0].TourID)
	})
}

func TestCheckoutPaymentDeclined(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name    string
		result  *gateway.PaymentResult
		err     error
		message string
	}{
		{
			name:    "declined with message",
			result:  &gateway.PaymentResult{Success: false, Message: "Fondos insuficientes"},
			message: "Fondos insuficientes",
		},
		{
			name:    "declined without message",
			result:  &gateway.PaymentResult{Success: false},
			message: "Payment was declined",
		},
		{
			name:    "bank unreachable",
			err:     infra.WrapGatewayErr(nil, infra.KindTransport, 0, "failed to reach backend for banking.pay", assert.AnError),
			message: "failed to reach backend for banking.pay",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newCheckoutFixture(t, "per_item", true, line("P1", "Galápagos"))
			f.availability.EXPECT().Check(gomock.Any(), gomock.Any()).Return(&gateway.Availability{Available: true}, nil)
			f.reservations.EXPECT().Hold(gomock.Any(), gomock.Any()).Return(&gateway.Hold{ID: "H1"}, nil)
			f.banking.EXPECT().Pay(gomock.Any(), gomock.Any()).Return(tc.result, tc.err)
			// Book, Emit, CartChanged and Publish must not happen

			res, err := f.cmds.Checkout(ctx, f.visitor, validRequest)
			require.NoError(t, err)

			assert.Equal(t, commands.CheckoutPaymentDeclined, res.Status)
			assert.Equal(t, tc.message, res.Message)
			assert.Equal(t, checkout.StepPayment, res.Items[0].FailedAt())
			assert.Empty(t, res.ReservationIDs)
			assert.Equal(t, 1, f.cartLen(t))
		})
	}
}

func TestCheckoutAfterPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("booking failure keeps the item in the cart", func(t *testing.T) {
		f := newCheckoutFixture(t, "per_item", true, line("P1", "Galápagos"), line("P2", "Cotopaxi"))
		f.availability.EXPECT().Check(gomock.Any(), gomock.Any()).Return(&gateway.Availability{Available: true}, nil).Times(2)
		f.reservations.EXPECT().Hold(gomock.Any(), holdFor("P1")).Return(&gateway.Hold{ID: "H1"}, nil)
		f.reservations.EXPECT().Hold(gomock.Any(), holdFor("P2")).Return(&gateway.Hold{ID: "H2"}, nil)
		f.banking.EXPECT().Pay(gomock.Any(), gateway.Payment{SourceAccount: 12345, DestinationAccount: 123456789, Amount: 560}).
			Return(&gateway.PaymentResult{Success: true, TransactionID: "TX1"}, nil)
		f.reservations.EXPECT().Book(gomock.Any(), bookFor("P1", "H1")).Return(&gateway.Booking{ReservationID: "R1"}, nil)
		f.reservations.EXPECT().Book(gomock.Any(), bookFor("P2", "H2")).
			Return(nil, infra.WrapGatewayErr(nil, infra.KindRejected, 410, "Hold expirado", nil))
		f.invoices.EXPECT().Emit(gomock.Any(), gateway.InvoiceRequest{ReservationID: "R1", Subtotal: 500, Tax: 60, Total: 560}).
			Return(&gateway.Invoice{ID: "F1"}, nil)
		f.observer.EXPECT().CartChanged(gomock.Any(), f.visitor, 1)
		f.events.EXPECT().PublishCheckoutCompleted(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.cmds.Checkout(ctx, f.visitor, validRequest)
		require.NoError(t, err)

		assert.Equal(t, commands.CheckoutPartial, res.Status)
		assert.Equal(t, "1 of 2 items booked. Failed: Cotopaxi: Hold expirado.", res.Message)
		remaining, err := f.carts.Load(ctx, f.visitor)
		require.NoError(t, err)
		require.Equal(t, 1, remaining.Len())
		assert.Equal(t, "P2", remaining.Items()[0].TourID)
	})

	t.Run("invoice failure is a warning", func(t *testing.T) {
		f := newCheckoutFixture(t, "per_item", true, line("P1", "Galápagos"))
		f.availability.EXPECT().Check(gomock.Any(), gomock.Any()).Return(&gateway.Availability{Available: true}, nil)
		f.reservations.EXPECT().Hold(gomock.Any(), gomock.Any()).Return(&gateway.Hold{ID: "H1"}, nil)
		f.banking.EXPECT().Pay(gomock.Any(), gomock.Any()).Return(&gateway.PaymentResult{Success: true, TransactionID: "TX1"}, nil)
		f.reservations.EXPECT().Book(gomock.Any(), gomock.Any()).Return(&gateway.Booking{ReservationID: "R1"}, nil)
		f.invoices.EXPECT().Emit(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapGatewayErr(nil, infra.KindRejected, 500, "Servicio de facturas caido", nil))
		f.observer.EXPECT().CartChanged(gomock.Any(), f.visitor, 0)
		f.events.EXPECT().PublishCheckoutCompleted(gomock.Any(), gomock.Any()).Return(assert.AnError)

		res, err := f.cmds.Checkout(ctx, f.visitor, validRequest)
		require.NoError(t, err)

		assert.Equal(t, commands.CheckoutCompleted, res.Status)
		assert.Nil(t, res.Invoice)
		assert.Equal(t, []string{"The invoice could not be issued: Servicio de facturas caido"}, res.Warnings)
		assert.Equal(t, "Booking confirmed The invoice could not be issued: Servicio de facturas caido", res.Message)
		assert.Equal(t, 0, f.cartLen(t))
	})

	t.Run("no booking after payment falls back to the transaction id for the invoice", func(t *testing.T) {
		f := newCheckoutFixture(t, "per_item", true, line("P1", "Galápagos"))
		f.availability.EXPECT().Check(gomock.Any(), gomock.Any()).Return(&gateway.Availability{Available: true}, nil)
		f.reservations.EXPECT().Hold(gomock.Any(), gomock.Any()).Return(&gateway.Hold{ID: "H1"}, nil)
		f.banking.EXPECT().Pay(gomock.Any(), gomock.Any()).Return(&gateway.PaymentResult{Success: true, TransactionID: "TX1"}, nil)
		f.reservations.EXPECT().Book(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
		f.invoices.EXPECT().Emit(gomock.Any(), gateway.InvoiceRequest{ReservationID: "TX1", Subtotal: 250, Tax: 30, Total: 280}).
			Return(&gateway.Invoice{ID: "F1"}, nil)

		res, err := f.cmds.Checkout(ctx, f.visitor, validRequest)
		require.NoError(t, err)

		assert.Equal(t, commands.CheckoutFailed, res.Status)
		assert.Equal(t, "Payment was processed but no booking could be confirmed. Failed: Galápagos: booking could not be confirmed.", res.Message)
		assert.Equal(t, 1, f.cartLen(t))
	})
}

func TestCheckoutInFlight(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, "per_item", true, line("P1", "Galápagos"))

	entered := make(chan struct{})
	release := make(chan struct{})
	f.availability.EXPECT().Check(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, gateway.AvailabilityQuery) (*gateway.Availability, error) {
			close(entered)
			<-release
			return &gateway.Availability{Available: false}, nil
		})

	var wg sync.WaitGroup
	wg.Add(1)
	var first *commands.CheckoutResult
	go func() {
		defer wg.Done()
		first, _ = f.cmds.Checkout(ctx, f.visitor, validRequest)
	}()

	<-entered
	_, err := f.cmds.Checkout(ctx, f.visitor, validRequest)
	assert.ErrorIs(t, err, commands.ErrCheckoutInProgress)

	close(release)
	wg.Wait()
	require.NotNil(t, first)
	assert.Equal(t, commands.CheckoutFailed, first.Status)
}

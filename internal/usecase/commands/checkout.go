package commands

//go:generate mockgen -source=checkout.go -destination=../../../tests/mock/commands/checkout_mock.go -package=commandsmock

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"tour-storefront/internal/domain/cart"
	"tour-storefront/internal/domain/checkout"
	"tour-storefront/internal/domain/user"
	reqdto "tour-storefront/internal/handler/dto/request"
	"tour-storefront/internal/pkg/clock"
	"tour-storefront/internal/pkg/config"
	"tour-storefront/internal/pkg/errs"
	"tour-storefront/internal/pkg/metrics"
	"tour-storefront/internal/usecase/gateway"
	"tour-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCheckoutInProgress = errs.New("checkout already in progress")
)

type CheckoutStatus string

const (
	CheckoutCompleted       CheckoutStatus = "completed"
	CheckoutPartial         CheckoutStatus = "partial"
	CheckoutFailed          CheckoutStatus = "failed"
	CheckoutPaymentDeclined CheckoutStatus = "payment_declined"
	CheckoutAborted         CheckoutStatus = "aborted"
)

const confirmationPath = "/confirmation"

// CheckoutResult reports a checkout that got past its preconditions, whatever the outcome.
type CheckoutResult struct {
	Status         CheckoutStatus
	Message        string
	Warnings       []string
	RedirectTo     string
	TransactionID  string
	ReservationIDs []string
	Invoice        *gateway.Invoice
	Charged        cart.Totals
	Items          []*checkout.Item
}

func (r *CheckoutResult) Success() bool {
	return r.Status == CheckoutCompleted || r.Status == CheckoutPartial
}

type CheckoutCommands interface {
	Checkout(ctx context.Context, visitorID uuid.UUID, req reqdto.CheckoutRequest) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	sessions     shared.SessionStore
	carts        shared.CartStore
	observer     shared.CartObserver
	events       shared.EventPublisher
	availability gateway.AvailabilityService
	reservations gateway.ReservationService
	banking      gateway.BankingService
	invoices     gateway.InvoiceService
	clock        clock.Clock
	cfg          config.CheckoutConfig
	policy       checkout.Policy
	inFlight     sync.Map
}

type CheckoutDeps struct {
	Sessions     shared.SessionStore
	Carts        shared.CartStore
	Observer     shared.CartObserver
	Events       shared.EventPublisher
	Availability gateway.AvailabilityService
	Reservations gateway.ReservationService
	Banking      gateway.BankingService
	Invoices     gateway.InvoiceService
	Clock        clock.Clock
}

func NewCheckoutCommands(deps CheckoutDeps, cfg config.Config) CheckoutCommands {
	policy, err := checkout.ParsePolicy(cfg.Checkout.FailurePolicy)
	if err != nil {
		slog.Warn("unknown checkout failure policy, using per_item", "policy", cfg.Checkout.FailurePolicy)
		policy = checkout.PolicyPerItem
	}
	return &checkoutCommandsImpl{
		sessions:     deps.Sessions,
		carts:        deps.Carts,
		observer:     deps.Observer,
		events:       deps.Events,
		availability: deps.Availability,
		reservations: deps.Reservations,
		banking:      deps.Banking,
		invoices:     deps.Invoices,
		clock:        deps.Clock,
		cfg:          cfg.Checkout,
		policy:       policy,
	}
}

// Checkout returns an error only when no backend call was made (preconditions, storage).
// Every other outcome, including declined payments, is described by the result.
func (c *checkoutCommandsImpl) Checkout(ctx context.Context, visitorID uuid.UUID, req reqdto.CheckoutRequest) (*CheckoutResult, error) {
	if _, busy := c.inFlight.LoadOrStore(visitorID, struct{}{}); busy {
		return nil, ErrCheckoutInProgress
	}
	defer c.inFlight.Delete(visitorID)

	sess, ok, err := c.sessions.Load(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		sess = nil
	}

	current, err := c.carts.Load(ctx, visitorID)
	if err != nil {
		return nil, err
	}

	in := req.ToDomain()
	account, err := in.Validate(sess, current)
	if err != nil {
		if errs.Is(err, checkout.ErrNotAuthenticated) {
			return nil, errs.Mark(err, errs.ErrUnauthenticated)
		}
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	items := make([]*checkout.Item, 0, current.Len())
	for i, line := range current.Items() {
		items = append(items, checkout.NewItem(i, line))
	}

	res := &CheckoutResult{Items: items}
	defer c.record(res)

	if aborted := c.reserve(ctx, sess, items); aborted != nil {
		res.Status = CheckoutAborted
		res.Message = fmt.Sprintf("Checkout stopped: %s could not be reserved (%s)", aborted.Line().Name, aborted.FailureReason())
		return res, nil
	}

	held := checkout.Lines(items, checkout.StateHeld)
	if len(held) == 0 {
		res.Status = CheckoutFailed
		res.Message = "No items could be reserved. " + failureSummary(items)
		return res, nil
	}
	res.Charged = cart.TotalsOf(held)

	payment, err := c.banking.Pay(ctx, gateway.Payment{
		SourceAccount:      account,
		DestinationAccount: c.cfg.AgencyAccount,
		Amount:             res.Charged.Total.InexactFloat64(),
	})
	if err != nil || payment == nil || !payment.Success {
		msg := paymentFailureMessage(payment, err)
		for _, it := range items {
			if it.Is(checkout.StateHeld) {
				_ = it.Fail(checkout.StepPayment, msg)
			}
		}
		res.Status = CheckoutPaymentDeclined
		res.Message = msg
		return res, nil
	}
	res.TransactionID = payment.TransactionID

	c.book(ctx, sess, in.Travelers, items)
	for _, it := range items {
		if it.Is(checkout.StateBooked) && it.ReservationID() != "" {
			res.ReservationIDs = append(res.ReservationIDs, it.ReservationID())
		}
	}

	invoice, err := c.invoices.Emit(ctx, gateway.InvoiceRequest{
		ReservationID: checkout.InvoiceReference(res.ReservationIDs, res.TransactionID, c.clock.Now()),
		Subtotal:      res.Charged.Subtotal.InexactFloat64(),
		Tax:           res.Charged.TaxAmount.InexactFloat64(),
		Total:         res.Charged.Total.InexactFloat64(),
	})
	if err != nil {
		slog.Warn("invoice emission failed", "visitor_id", visitorID, "error", err)
		res.Warnings = append(res.Warnings, "The invoice could not be issued: "+backendMessage(err, "invoice service error"))
	} else {
		res.Invoice = invoice
	}

	booked := checkout.Count(items, checkout.StateBooked)
	switch {
	case booked == len(items):
		current.Clear()
		if err := c.carts.Clear(ctx, visitorID); err != nil {
			slog.Error("failed to clear cart after checkout", "visitor_id", visitorID, "error", err)
		}
		res.Status = CheckoutCompleted
		res.Message = "Booking confirmed"
		res.RedirectTo = confirmationPath
	case booked > 0:
		bookedAt := make(map[int]bool, booked)
		for _, it := range items {
			if it.Is(checkout.StateBooked) {
				bookedAt[it.Index()] = true
			}
		}
		current.RemoveWhere(func(i int, _ cart.LineItem) bool { return bookedAt[i] })
		if err := c.carts.Save(ctx, visitorID, current); err != nil {
			slog.Error("failed to save cart after checkout", "visitor_id", visitorID, "error", err)
		}
		res.Status = CheckoutPartial
		res.Message = fmt.Sprintf("%d of %d items booked. %s", booked, len(items), failureSummary(items))
	default:
		res.Status = CheckoutFailed
		res.Message = "Payment was processed but no booking could be confirmed. " + failureSummary(items)
	}
	if len(res.Warnings) > 0 {
		res.Message += " " + strings.Join(res.Warnings, " ")
	}
	if booked > 0 {
		c.observer.CartChanged(ctx, visitorID, current.Len())
		c.publish(ctx, visitorID, sess, res)
	}
	return res, nil
}

// reserve walks the items in cart order. Under all_or_nothing it returns the first item that failed.
func (c *checkoutCommandsImpl) reserve(ctx context.Context, sess *user.Session, items []*checkout.Item) *checkout.Item {
	for _, it := range items {
		line := it.Line()

		avail, err := c.availability.Check(ctx, gateway.AvailabilityQuery{
			PackageID: line.TourID,
			StartDate: line.TravelDate,
			Travelers: line.Travelers(),
		})
		switch {
		case err != nil:
			_ = it.Fail(checkout.StepAvailability, backendMessage(err, "availability service error"))
		case !avail.Available:
			_ = it.Fail(checkout.StepAvailability, nonEmpty(avail.Message, "not available for the selected date"))
		default:
			_ = it.MarkAvailable()
		}
		if it.Is(checkout.StateFailed) {
			if c.policy.AbortsOnFirstFailure() {
				return it
			}
			continue
		}

		hold, err := c.reservations.Hold(ctx, gateway.HoldRequest{
			PackageID:     line.TourID,
			BookingUserID: sess.ID(),
			StartDate:     line.TravelDate,
			Travelers:     line.Travelers(),
			HoldSeconds:   c.cfg.HoldSeconds,
		})
		switch {
		case err != nil:
			_ = it.Fail(checkout.StepHold, backendMessage(err, "hold could not be created"))
		case hold.ID == "":
			_ = it.Fail(checkout.StepHold, "hold response carried no HoldId")
		default:
			_ = it.MarkHeld(hold.ID.String())
		}
		if it.Is(checkout.StateFailed) && c.policy.AbortsOnFirstFailure() {
			return it
		}
	}
	return nil
}

// book confirms every held item. Failures are collected since the payment already went through.
func (c *checkoutCommandsImpl) book(ctx context.Context, sess *user.Session, travelers []checkout.Traveler, items []*checkout.Item) {
	manifest := checkout.Manifest(travelers, sess, c.cfg.IdentificationType)
	for _, it := range items {
		if !it.Is(checkout.StateHeld) {
			continue
		}
		booking, err := c.reservations.Book(ctx, gateway.BookRequest{
			PackageID:     it.Line().TourID,
			HoldID:        it.HoldID(),
			BookingUserID: sess.ID(),
			PaymentMethod: c.cfg.PaymentMethod,
			Travelers:     manifest,
		})
		if err != nil {
			_ = it.Fail(checkout.StepBooking, backendMessage(err, "booking could not be confirmed"))
			continue
		}
		_ = it.MarkBooked(booking.ReservationID.String())
	}
}

func (c *checkoutCommandsImpl) publish(ctx context.Context, visitorID uuid.UUID, sess *user.Session, res *CheckoutResult) {
	event := shared.CheckoutCompletedEvent{
		VisitorID:      visitorID.String(),
		UserID:         sess.ID(),
		Status:         string(res.Status),
		TransactionID:  res.TransactionID,
		ReservationIDs: res.ReservationIDs,
		Total:          res.Charged.Total.StringFixed(2),
		OccurredAt:     c.clock.Now().UTC(),
	}
	if res.Invoice != nil {
		event.InvoiceID = res.Invoice.ID.String()
	}
	if err := c.events.PublishCheckoutCompleted(ctx, event); err != nil {
		slog.Warn("failed to publish checkout event", "visitor_id", visitorID, "error", err)
	}
}

func (c *checkoutCommandsImpl) record(res *CheckoutResult) {
	metrics.IncCheckout(string(res.Status))
	for _, it := range res.Items {
		metrics.IncCheckoutItem(string(it.State()), string(it.FailedAt()))
	}
}

func paymentFailureMessage(payment *gateway.PaymentResult, err error) string {
	if err != nil {
		return backendMessage(err, "Payment could not be processed")
	}
	if payment == nil {
		return "Payment was declined"
	}
	return nonEmpty(payment.Message, "Payment was declined")
}

func failureSummary(items []*checkout.Item) string {
	var parts []string
	for _, it := range items {
		if it.Is(checkout.StateFailed) {
			parts = append(parts, fmt.Sprintf("%s: %s", it.Line().Name, it.FailureReason()))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "Failed: " + strings.Join(parts, "; ") + "."
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

package checkout

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"tour-storefront/internal/domain/cart"
	"tour-storefront/internal/domain/user"
)

var (
	ErrNotAuthenticated = errors.New("login required before checkout")
	ErrMissingAccount   = errors.New("client number and account number are required")
	ErrInvalidAccount   = errors.New("account number must be numeric")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrInvalidAmount    = errors.New("cart total must be greater than zero")
)

// Request holds the caller inputs that must be valid before any backend call is made.
type Request struct {
	ClientID      string
	SourceAccount string
	Travelers     []Traveler
}

// Validate checks preconditions in the order a shopper would hit them.
func (r Request) Validate(s *user.Session, c *cart.Cart) (int64, error) {
	if s == nil {
		return 0, ErrNotAuthenticated
	}
	if strings.TrimSpace(r.ClientID) == "" || strings.TrimSpace(r.SourceAccount) == "" {
		return 0, ErrMissingAccount
	}
	account, err := strconv.ParseInt(strings.TrimSpace(r.SourceAccount), 10, 64)
	if err != nil {
		return 0, ErrInvalidAccount
	}
	if c == nil || c.IsEmpty() {
		return 0, ErrEmptyCart
	}
	if !c.Totals().IsPositive() {
		return 0, ErrInvalidAmount
	}
	return account, nil
}

// InvoiceReference prefers the first reservation id, then the payment transaction id.
func InvoiceReference(reservationIDs []string, transactionID string, now time.Time) string {
	for _, id := range reservationIDs {
		if id != "" {
			return id
		}
	}
	if transactionID != "" {
		return transactionID
	}
	return "RES-" + strconv.FormatInt(now.UnixMilli(), 10)
}

package checkout

import (
	"errors"
	"fmt"

	"tour-storefront/internal/domain/cart"
)

type State string

const (
	StatePending             State = "pending"
	StateAvailabilityChecked State = "availability_checked"
	StateHeld                State = "held"
	StateBooked              State = "booked"
	StateFailed              State = "failed"
)

type Step string

const (
	StepNone         Step = ""
	StepAvailability Step = "availability"
	StepHold         Step = "hold"
	StepPayment      Step = "payment"
	StepBooking      Step = "booking"
)

var ErrInvalidTransition = errors.New("invalid checkout item transition")

// Item tracks one cart line through Pending -> AvailabilityChecked -> Held -> Booked | Failed.
type Item struct {
	index         int
	line          cart.LineItem
	state         State
	holdID        string
	reservationID string
	failedAt      Step
	reason        string
}

func NewItem(index int, line cart.LineItem) *Item {
	return &Item{index: index, line: line, state: StatePending}
}

func (i *Item) Index() int              { return i.index }
func (i *Item) Line() cart.LineItem     { return i.line }
func (i *Item) State() State            { return i.state }
func (i *Item) HoldID() string          { return i.holdID }
func (i *Item) ReservationID() string   { return i.reservationID }
func (i *Item) FailedAt() Step          { return i.failedAt }
func (i *Item) FailureReason() string   { return i.reason }
func (i *Item) IsTerminal() bool        { return i.state == StateBooked || i.state == StateFailed }
func (i *Item) Is(states ...State) bool { return contains(states, i.state) }

func (i *Item) MarkAvailable() error {
	return i.transition(StatePending, StateAvailabilityChecked)
}

func (i *Item) MarkHeld(holdID string) error {
	if holdID == "" {
		return fmt.Errorf("%w: empty hold id", ErrInvalidTransition)
	}
	if err := i.transition(StateAvailabilityChecked, StateHeld); err != nil {
		return err
	}
	i.holdID = holdID
	return nil
}

func (i *Item) MarkBooked(reservationID string) error {
	if err := i.transition(StateHeld, StateBooked); err != nil {
		return err
	}
	i.reservationID = reservationID
	return nil
}

func (i *Item) Fail(step Step, reason string) error {
	if i.IsTerminal() {
		return fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, i.state)
	}
	i.state = StateFailed
	i.failedAt = step
	i.reason = reason
	return nil
}

func (i *Item) transition(from, to State) error {
	if i.state != from {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, i.state, to)
	}
	i.state = to
	return nil
}

func contains(states []State, s State) bool {
	for _, st := range states {
		if st == s {
			return true
		}
	}
	return false
}

// Lines returns the cart lines of items currently in one of the given states.
func Lines(items []*Item, states ...State) []cart.LineItem {
	var out []cart.LineItem
	for _, it := range items {
		if it.Is(states...) {
			out = append(out, it.Line())
		}
	}
	return out
}

func Count(items []*Item, states ...State) int {
	n := 0
	for _, it := range items {
		if it.Is(states...) {
			n++
		}
	}
	return n
}

package checkout

import (
	"errors"
	"strings"
)

// Policy decides what happens when an item fails before payment.
type Policy string

const (
	// PolicyPerItem charges only the items that were held and reports the rest.
	PolicyPerItem Policy = "per_item"
	// PolicyAllOrNothing stops before payment on the first availability or hold failure.
	PolicyAllOrNothing Policy = "all_or_nothing"
)

var ErrInvalidPolicy = errors.New("invalid checkout failure policy")

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyPerItem, PolicyAllOrNothing:
		return p, nil
	case "":
		return PolicyPerItem, nil
	default:
		return "", ErrInvalidPolicy
	}
}

func (p Policy) AbortsOnFirstFailure() bool {
	return p == PolicyAllOrNothing
}

package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrNotANumber = errors.New("value is not a number")

	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// Count decodes a traveler count from a number or numeric string, keeping only the
// leading integer part: "2", 2 and 2.9 all become 2.
type Count int

func (c *Count) UnmarshalJSON(data []byte) error {
	text, err := scalarText(data)
	if err != nil {
		return err
	}
	digits := leadingInt.FindString(text)
	if digits == "" {
		return ErrNotANumber
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return ErrNotANumber
	}
	*c = Count(n)
	return nil
}

func (c *Count) Int() int {
	if c == nil {
		return 0
	}
	return int(*c)
}

// Amount decodes a price from a number or numeric string, ignoring trailing characters.
type Amount struct {
	decimal.Decimal
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	text, err := scalarText(data)
	if err != nil {
		return err
	}
	num := leadingFloat.FindString(text)
	if num == "" {
		return ErrNotANumber
	}
	d, err := decimal.NewFromString(num)
	if err != nil {
		return ErrNotANumber
	}
	a.Decimal = d
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// Text accepts either a JSON string or a number and keeps its textual form.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	text, err := scalarText(data)
	if err != nil {
		return err
	}
	*t = Text(text)
	return nil
}

func (t Text) String() string {
	return strings.TrimSpace(string(t))
}

func scalarText(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", ErrNotANumber
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	case '{', '[', 't', 'f':
		return "", ErrNotANumber
	default:
		return string(data), nil
	}
}

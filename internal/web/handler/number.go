package handler

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// ErrNotNumeric is returned when a Number holds text that is not a number.
var ErrNotNumeric = errors.New("value is not numeric")

// Number is a numeric body field kept as text. It decodes from a JSON
// number, a JSON string or a form value, so "4350", 4350 and "1,200" are
// all accepted. Conversion happens where the value is stored.
type Number string

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	switch {
	case bytes.Equal(b, []byte("null")):
		*n = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err //nolint:wrapcheck
		}

		*n = Number(s)
	default:
		*n = Number(b)
	}

	return nil
}

// digits strips blanks and thousands separators.
func (n Number) digits() string {
	return strings.ReplaceAll(strings.TrimSpace(string(n)), ",", "")
}

// Float returns the value as float64. An empty Number is 0.
func (n Number) Float() (float64, error) {
	s := n.digits()
	if s == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, string(n))
	}

	return v, nil
}

// ID returns the value as an optional row id. An empty Number is nil.
func (n Number) ID() (*uint64, error) {
	s := n.digits()
	if s == "" {
		return nil, nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotNumeric, string(n))
	}

	return &v, nil
}

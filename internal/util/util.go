package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidNumber is returned by ParseNumber for values that are not finite numbers.
var ErrInvalidNumber = errors.New("invalid number")

// ErrInvalidDate is returned by ParseDate for values in neither RFC 3339 nor date-only form.
var ErrInvalidDate = errors.New("invalid date")

// Number is a payload number that also accepts numeric strings. Invalid input is
// recorded instead of failing the decode, so callers choose between rejecting
// and coercing it.
type Number struct {
	Value   float64
	Present bool // The field was supplied with a non-null value.
	Valid   bool // The supplied value parsed as a finite number.
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	n.Present = true

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	switch v := raw.(type) {
	case float64:
		n.Value, n.Valid = v, true
	case string:
		if f, err := ParseNumber(v); err == nil {
			n.Value, n.Valid = f, true
		}
	}

	return nil
}

// UnmarshalParam implements echo.BindUnmarshaler for form values.
func (n *Number) UnmarshalParam(param string) error {
	*n = Number{Present: true}
	if f, err := ParseNumber(param); err == nil {
		n.Value, n.Valid = f, true
	}

	return nil
}

// NonNegative returns the value when it is valid and not negative, otherwise 0.
func (n Number) NonNegative() float64 {
	if !n.Valid || n.Value < 0 {
		return 0
	}

	return n.Value
}

// Finite returns f, or 0 when f is NaN or infinite.
func Finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return f
}

// WholeNumber truncates f to a non-negative int64, saturating at math.MaxInt64.
// NaN and negative values map to 0.
func WholeNumber(f float64) int64 {
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	default:
		return int64(f)
	}
}

// ParseNumber parses a decimal string into a finite float64.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidNumber
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.Wrapf(ErrInvalidNumber, "%q", s)
	}

	return f, nil
}

// ParseDate accepts an RFC 3339 timestamp or a YYYY-MM-DD date (UTC midnight).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}

	return time.Time{}, errors.Wrapf(ErrInvalidDate, "%q", s)
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}

// Package coerce converts between the raw text stored in an XML document
// and the domain types the EcoSpold schemas declare. Parsing follows the
// XSD lexical spaces (booleans accept 1/0 as well as true/false, floats
// accept exponent notation); formatting produces one canonical text form
// per type.
package coerce

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date and timestamp layouts. xsd:dateTime allows an optional zone;
// time.Parse accepts fractional seconds without them appearing in the
// layout, so two timestamp layouts cover the lexical space.
const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02T15:04:05"
	timestampZoned  = "2006-01-02T15:04:05Z07:00"
)

// Float64 parses raw text as an xsd:double value.
func Float64(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("coerce float %q: %w", raw, err)
	}
	return v, nil
}

// Int parses raw text as a base-10 integer.
func Int(raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("coerce int %q: %w", raw, err)
	}
	return v, nil
}

// Bool parses raw text as an xsd:boolean: true/false case-insensitively,
// plus the numeric forms 1/0.
func Bool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("coerce bool %q: not in xsd:boolean lexical space", raw)
	}
}

// Date parses raw text as an xsd:date value (YYYY-MM-DD).
func Date(raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("coerce date %q: %w", raw, err)
	}
	return t, nil
}

// Timestamp parses raw text as an xsd:dateTime value, with or without a
// zone designator.
func Timestamp(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if t, err := time.Parse(timestampZoned, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("coerce timestamp %q: %w", raw, err)
	}
	return t, nil
}

// FormatFloat64 returns the canonical text form of a float value.
func FormatFloat64(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatInt returns the canonical text form of an integer value.
func FormatInt(v int) string {
	return strconv.Itoa(v)
}

// FormatBool returns the canonical lowercase text form of a boolean.
func FormatBool(v bool) string {
	return strconv.FormatBool(v)
}

// FormatDate returns the canonical text form of an xsd:date value.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatTimestamp returns the canonical text form of an xsd:dateTime
// value, including the zone designator.
func FormatTimestamp(t time.Time) string {
	return t.Format(timestampZoned)
}

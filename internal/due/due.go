// Package due normalizes loosely formatted due-date input into a canonical token.
package due

import (
	"strings"
	"time"
)

// dateLayout is the accepted absolute form: day-month-year, e.g. "25-12-2025".
const dateLayout = "02-01-2006"

// Kind classifies a due-date token.
type Kind int

const (
	// None means no date was supplied.
	None Kind = iota

	// Today and Tomorrow are relative keywords resolved by the task store.
	Today
	Tomorrow

	// Date is a valid day-month-year date, passed through unchanged.
	Date

	// Unparsed means a date was supplied but not recognized. It degrades to
	// no due date on submission, but stays distinguishable from None so
	// callers can tell user error from intentional omission.
	Unparsed
)

// Token is the normalized form of a raw due-date string.
type Token struct {
	Kind Kind
	Raw  string
}

// Normalize converts a raw due-date string into a Token. It never fails:
// unrecognized input yields an Unparsed token.
func Normalize(raw string) Token {
	if raw == "" {
		return Token{Kind: None}
	}
	switch strings.ToLower(raw) {
	case "today":
		return Token{Kind: Today, Raw: raw}
	case "tomorrow":
		return Token{Kind: Tomorrow, Raw: raw}
	}
	if _, err := time.Parse(dateLayout, raw); err == nil {
		return Token{Kind: Date, Raw: raw}
	}
	return Token{Kind: Unparsed, Raw: raw}
}

// DueString returns the string submitted to the task store.
// None and Unparsed submit nothing.
func (t Token) DueString() string {
	switch t.Kind {
	case Today:
		return "today"
	case Tomorrow:
		return "tomorrow"
	case Date:
		return t.Raw
	default:
		return ""
	}
}

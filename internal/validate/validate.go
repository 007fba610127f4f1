// Package validate holds the format checks applied to request fields before
// they reach the recruitment core.
package validate

import (
	"fmt"
	"regexp"
	"time"
)

var (
	alphanumRe = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	nameRe     = regexp.MustCompile(`^[a-zA-ZÀ-ÖØ-öø-ÿ' ]+$`)
	emailRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	// national identity number: YYYYMMDD-XXXX
	personNumRe = regexp.MustCompile(`^[0-9]{8}-[0-9]{4}$`)
)

// Username accepts non-empty alphanumeric handles.
func Username(s string) error {
	if !alphanumRe.MatchString(s) {
		return fmt.Errorf("username must be alphanumeric")
	}
	return nil
}

// Name accepts letters plus apostrophe and space.
func Name(s string) error {
	if !nameRe.MatchString(s) {
		return fmt.Errorf("name contains invalid characters")
	}
	return nil
}

func Email(s string) error {
	if !emailRe.MatchString(s) {
		return fmt.Errorf("malformed email address")
	}
	return nil
}

func PersonNumber(s string) error {
	if !personNumRe.MatchString(s) {
		return fmt.Errorf("person number must match YYYYMMDD-XXXX")
	}
	return nil
}

// NonNegative rejects negative integers.
func NonNegative(n int64) error {
	if n < 0 {
		return fmt.Errorf("value must not be negative")
	}
	return nil
}

// Positive rejects zero and negative integers.
func Positive(n int64) error {
	if n <= 0 {
		return fmt.Errorf("value must be positive")
	}
	return nil
}

// ISODate accepts calendar dates in YYYY-MM-DD form.
func ISODate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}
	return nil
}

// DateRange accepts an ordered pair of ISO dates, from <= to.
func DateRange(from, to string) error {
	if err := ISODate(from); err != nil {
		return err
	}
	if err := ISODate(to); err != nil {
		return err
	}
	if from > to {
		return fmt.Errorf("from date is after to date")
	}
	return nil
}

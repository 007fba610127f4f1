package validate_test

import (
	"testing"

	"github.com/garnizeh/recruitd/internal/validate"
)

func TestUsername(t *testing.T) {
	for _, ok := range []string{"alice01", "Bob", "x9"} {
		if err := validate.Username(ok); err != nil {
			t.Errorf("Username(%q) should pass: %v", ok, err)
		}
	}
	for _, bad := range []string{"", "alice 01", "al-ice", "a@b"} {
		if err := validate.Username(bad); err == nil {
			t.Errorf("Username(%q) should fail", bad)
		}
	}
}

func TestName(t *testing.T) {
	for _, ok := range []string{"Alice", "O'Brien", "Anna Maria", "Åsa"} {
		if err := validate.Name(ok); err != nil {
			t.Errorf("Name(%q) should pass: %v", ok, err)
		}
	}
	for _, bad := range []string{"", "Alice1", "Bob!"} {
		if err := validate.Name(bad); err == nil {
			t.Errorf("Name(%q) should fail", bad)
		}
	}
}

func TestEmail(t *testing.T) {
	if err := validate.Email("alice@example.com"); err != nil {
		t.Errorf("valid email rejected: %v", err)
	}
	for _, bad := range []string{"", "alice", "alice@", "@example.com", "a b@c.d"} {
		if err := validate.Email(bad); err == nil {
			t.Errorf("Email(%q) should fail", bad)
		}
	}
}

func TestPersonNumber(t *testing.T) {
	if err := validate.PersonNumber("19900101-1234"); err != nil {
		t.Errorf("valid person number rejected: %v", err)
	}
	for _, bad := range []string{"", "19900101", "1990-01-01", "19900101-12x4"} {
		if err := validate.PersonNumber(bad); err == nil {
			t.Errorf("PersonNumber(%q) should fail", bad)
		}
	}
}

func TestISODate(t *testing.T) {
	if err := validate.ISODate("2024-02-29"); err != nil {
		t.Errorf("leap day rejected: %v", err)
	}
	for _, bad := range []string{"", "2024-13-01", "2023-02-29", "01-01-2024", "2024/01/01"} {
		if err := validate.ISODate(bad); err == nil {
			t.Errorf("ISODate(%q) should fail", bad)
		}
	}
}

func TestDateRange(t *testing.T) {
	if err := validate.DateRange("2024-01-01", "2024-03-01"); err != nil {
		t.Errorf("valid range rejected: %v", err)
	}
	if err := validate.DateRange("2024-03-01", "2024-01-01"); err == nil {
		t.Errorf("inverted range should fail")
	}
	if err := validate.DateRange("2024-01-01", "2024-01-01"); err != nil {
		t.Errorf("single-day range rejected: %v", err)
	}
}

func TestNonNegativeAndPositive(t *testing.T) {
	if err := validate.NonNegative(0); err != nil {
		t.Errorf("NonNegative(0) should pass: %v", err)
	}
	if err := validate.NonNegative(-1); err == nil {
		t.Errorf("NonNegative(-1) should fail")
	}
	if err := validate.Positive(0); err == nil {
		t.Errorf("Positive(0) should fail")
	}
	if err := validate.Positive(7); err != nil {
		t.Errorf("Positive(7) should pass: %v", err)
	}
}

// Package validate checks and normalizes contact field formats.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidPhone is returned by NormalizePhone for input that fails
// validation.
var ErrInvalidPhone = errors.New("invalid phone number")

// mobileCodes lists the recognized Ukrainian mobile operator codes in
// national form.
var mobileCodes = map[string]bool{
	"039": true, "050": true, "063": true, "066": true, "067": true,
	"068": true, "091": true, "092": true, "093": true, "094": true,
	"095": true, "096": true, "097": true, "098": true, "099": true,
}

var nonDigit = regexp.MustCompile(`\D`)

// cleanPhone strips separators, keeping a leading plus sign.
func cleanPhone(phone string) string {
	raw := strings.TrimSpace(phone)
	if strings.HasPrefix(raw, "+") {
		return "+" + nonDigit.ReplaceAllString(raw[1:], "")
	}
	return nonDigit.ReplaceAllString(raw, "")
}

// Phone validates a phone number in international (+380XXXXXXXXX) or
// national (0XXXXXXXXX) form. It returns false with a human-readable
// reason on failure.
func Phone(phone string) (bool, string) {
	cleaned := cleanPhone(phone)
	if cleaned == "" {
		return false, "phone number cannot be empty"
	}

	switch {
	case strings.HasPrefix(cleaned, "+380"):
		if len(cleaned) != 13 {
			return false, "international format should be +380XXXXXXXXX (9 digits after +380)"
		}
		code := "0" + cleaned[4:6]
		if !mobileCodes[code] {
			return false, fmt.Sprintf("invalid operator code: %s", code)
		}
		return true, ""
	case strings.HasPrefix(cleaned, "0"):
		if len(cleaned) != 10 {
			return false, "national format should be 0XXXXXXXXX (10 digits total)"
		}
		if !mobileCodes[cleaned[:3]] {
			return false, fmt.Sprintf("invalid operator code: %s", cleaned[:3])
		}
		return true, ""
	}
	return false, "phone number must start with +380 or 0"
}

// NormalizePhone converts any valid form to +380XXXXXXXXX.
func NormalizePhone(phone string) (string, error) {
	if ok, reason := Phone(phone); !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidPhone, reason)
	}
	cleaned := cleanPhone(phone)
	if strings.HasPrefix(cleaned, "0") {
		return "+380" + cleaned[1:], nil
	}
	return cleaned, nil
}

// FormatPhone renders a normalized number for display:
// +380501234567 becomes "+380 50 123 45 67".
func FormatPhone(phone string) string {
	if len(phone) != 13 || !strings.HasPrefix(phone, "+380") {
		return phone
	}
	d := phone[4:]
	return fmt.Sprintf("+380 %s %s %s %s", d[0:2], d[2:5], d[5:7], d[7:9])
}

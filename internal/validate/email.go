package validate

import (
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// domainTypos maps frequently mistyped mail domains to their likely
// intended spelling.
var domainTypos = map[string]string{
	"gmali.com":   "gmail.com",
	"gmai.com":    "gmail.com",
	"yaho.com":    "yahoo.com",
	"yahooo.com":  "yahoo.com",
	"hotmali.com": "hotmail.com",
	"outlok.com":  "outlook.com",
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Email validates an address in user@domain.ext form, including a
// check for common domain typos. It returns false with a reason on
// failure.
func Email(email string) (bool, string) {
	normalized := NormalizeEmail(email)
	if normalized == "" {
		return false, "email cannot be empty"
	}

	parts := strings.Split(normalized, "@")
	if len(parts) != 2 {
		return false, "email must have exactly one @ symbol"
	}
	local, domain := parts[0], parts[1]

	if local == "" || len(local) > 64 {
		return false, "email local part cannot be empty or exceed 64 characters"
	}
	if domain == "" {
		return false, "email domain cannot be empty"
	}
	if !strings.Contains(domain, ".") {
		return false, "email domain must contain a dot (.)"
	}
	domainParts := strings.Split(domain, ".")
	if len(domainParts[len(domainParts)-1]) < 2 {
		return false, "top-level domain must be at least 2 characters"
	}
	if !emailPattern.MatchString(normalized) {
		return false, "invalid email format, expected user@domain.ext"
	}
	if fix, ok := domainTypos[domain]; ok {
		return false, fmt.Sprintf("email domain may contain a typo, did you mean %s?", fix)
	}
	return true, ""
}

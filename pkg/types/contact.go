package types

import (
	"strings"
	"time"
)

// birthdayLayout is the date-only ISO-8601 form used on disk.
const birthdayLayout = "2006-01-02"

// Contact represents one entry in the address book.
type Contact struct {
	Name     string     // Full name (required).
	Phone    string     // Phone number, normalized to +380XXXXXXXXX.
	Email    string     // Email address (optional).
	Address  string     // Physical address (optional).
	Birthday *time.Time // Date of birth (optional, date precision).
}

// NewContact creates a contact, rejecting empty name or phone.
// Phone and email validation is the caller's responsibility; see
// internal/validate.
func NewContact(name, phone string) (*Contact, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(phone) == "" {
		return nil, ErrEmptyPhone
	}
	return &Contact{Name: name, Phone: phone}, nil
}

// DaysUntilBirthday returns the number of days until the next
// birthday, counted from today. The second result is false when no
// birthday is set.
func (c *Contact) DaysUntilBirthday() (int, bool) {
	return c.daysUntilBirthday(time.Now())
}

func (c *Contact) daysUntilBirthday(now time.Time) (int, bool) {
	if c.Birthday == nil {
		return 0, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	next := time.Date(today.Year(), c.Birthday.Month(), c.Birthday.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = time.Date(today.Year()+1, c.Birthday.Month(), c.Birthday.Day(), 0, 0, 0, 0, time.UTC)
	}
	return int(next.Sub(today).Hours() / 24), true
}

// ToRecord converts the contact to its storage representation.
// Optional fields are written as null to keep the on-disk shape stable.
func (c *Contact) ToRecord() Record {
	rec := Record{
		"name":     c.Name,
		"phone":    c.Phone,
		"email":    nil,
		"address":  nil,
		"birthday": nil,
	}
	if c.Email != "" {
		rec["email"] = c.Email
	}
	if c.Address != "" {
		rec["address"] = c.Address
	}
	if c.Birthday != nil {
		rec["birthday"] = c.Birthday.Format(birthdayLayout)
	}
	return rec
}

// ContactFromRecord reconstructs a contact from its storage
// representation. A malformed birthday value is dropped rather than
// failing the whole record.
func ContactFromRecord(rec Record) (*Contact, error) {
	c, err := NewContact(rec.Str("name"), rec.Str("phone"))
	if err != nil {
		return nil, err
	}
	c.Email = rec.Str("email")
	c.Address = rec.Str("address")
	if raw := rec.Str("birthday"); raw != "" {
		if t, err := time.Parse(birthdayLayout, raw); err == nil {
			c.Birthday = &t
		}
	}
	return c, nil
}

// Package service implements the contact and note business logic on
// top of the storage layer. Services hold their collections in memory
// and persist the full dataset after every mutation.
package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mkravets/assistant/internal/storage"
	"github.com/mkravets/assistant/internal/validate"
	"github.com/mkravets/assistant/pkg/types"
)

// contactsDataset is the storage dataset name for the address book.
const contactsDataset = "contacts"

// Contacts manages the address book.
type Contacts struct {
	store    *storage.Store
	contacts []*types.Contact
}

// NewContacts loads the address book from storage. Records that fail
// to convert are skipped rather than failing startup.
func NewContacts(store *storage.Store) *Contacts {
	c := &Contacts{store: store}
	for _, rec := range store.Load(contactsDataset) {
		contact, err := types.ContactFromRecord(rec)
		if err != nil {
			continue
		}
		c.contacts = append(c.contacts, contact)
	}
	return c
}

// save persists the whole address book.
func (c *Contacts) save() error {
	records := make([]types.Record, len(c.contacts))
	for i, contact := range c.contacts {
		records[i] = contact.ToRecord()
	}
	return c.store.Save(contactsDataset, records)
}

// Add validates, normalizes, and stores a new contact. The name must
// be unique within the address book.
func (c *Contacts) Add(name, phone, email, address string, birthday *time.Time) (*types.Contact, error) {
	normalized, err := validate.NormalizePhone(phone)
	if err != nil {
		return nil, err
	}
	if email != "" {
		if ok, reason := validate.Email(email); !ok {
			return nil, fmt.Errorf("invalid email: %s", reason)
		}
		email = validate.NormalizeEmail(email)
	}

	if c.findByName(name) != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrDuplicate, name)
	}

	contact, err := types.NewContact(name, normalized)
	if err != nil {
		return nil, err
	}
	contact.Email = email
	contact.Address = address
	contact.Birthday = birthday

	c.contacts = append(c.contacts, contact)
	if err := c.save(); err != nil {
		c.contacts = c.contacts[:len(c.contacts)-1]
		return nil, err
	}
	return contact, nil
}

// Search finds contacts whose name, phone, or email contains the query
// (case-insensitive).
func (c *Contacts) Search(query string) []*types.Contact {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var found []*types.Contact
	for _, contact := range c.contacts {
		if strings.Contains(strings.ToLower(contact.Name), query) ||
			strings.Contains(contact.Phone, query) ||
			strings.Contains(strings.ToLower(contact.Email), query) {
			found = append(found, contact)
		}
	}
	return found
}

// Get returns the contact with the exact name (case-insensitive).
func (c *Contacts) Get(name string) (*types.Contact, error) {
	if contact := c.findByName(name); contact != nil {
		return contact, nil
	}
	return nil, fmt.Errorf("%w: contact %q", types.ErrNotFound, name)
}

// ContactUpdate carries optional field changes for Edit; nil fields
// are left unchanged.
type ContactUpdate struct {
	Name     *string
	Phone    *string
	Email    *string
	Address  *string
	Birthday *time.Time
}

// Edit updates an existing contact, validating changed fields.
func (c *Contacts) Edit(name string, upd ContactUpdate) (*types.Contact, error) {
	contact := c.findByName(name)
	if contact == nil {
		return nil, fmt.Errorf("%w: contact %q", types.ErrNotFound, name)
	}

	// Every error path restores prev so a rejected update never
	// leaves the in-memory contact half-edited.
	prev := *contact
	if upd.Name != nil && strings.TrimSpace(*upd.Name) != "" {
		contact.Name = *upd.Name
	}
	if upd.Phone != nil && *upd.Phone != "" {
		normalized, err := validate.NormalizePhone(*upd.Phone)
		if err != nil {
			*contact = prev
			return nil, err
		}
		contact.Phone = normalized
	}
	if upd.Email != nil {
		if *upd.Email != "" {
			if ok, reason := validate.Email(*upd.Email); !ok {
				*contact = prev
				return nil, fmt.Errorf("invalid email: %s", reason)
			}
			contact.Email = validate.NormalizeEmail(*upd.Email)
		} else {
			contact.Email = ""
		}
	}
	if upd.Address != nil {
		contact.Address = *upd.Address
	}
	if upd.Birthday != nil {
		contact.Birthday = upd.Birthday
	}

	if err := c.save(); err != nil {
		*contact = prev
		return nil, err
	}
	return contact, nil
}

// Delete removes a contact by name.
func (c *Contacts) Delete(name string) error {
	for i, contact := range c.contacts {
		if strings.EqualFold(contact.Name, name) {
			c.contacts = append(c.contacts[:i], c.contacts[i+1:]...)
			return c.save()
		}
	}
	return fmt.Errorf("%w: contact %q", types.ErrNotFound, name)
}

// UpcomingBirthdays returns contacts whose birthday falls within the
// next days, soonest first.
func (c *Contacts) UpcomingBirthdays(days int) []*types.Contact {
	var upcoming []*types.Contact
	until := make(map[*types.Contact]int)
	for _, contact := range c.contacts {
		d, ok := contact.DaysUntilBirthday()
		if ok && d <= days {
			upcoming = append(upcoming, contact)
			until[contact] = d
		}
	}
	sort.Slice(upcoming, func(i, j int) bool {
		return until[upcoming[i]] < until[upcoming[j]]
	})
	return upcoming
}

// All returns the contacts sorted by name.
func (c *Contacts) All() []*types.Contact {
	out := append([]*types.Contact(nil), c.contacts...)
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// Count returns the number of contacts.
func (c *Contacts) Count() int { return len(c.contacts) }

func (c *Contacts) findByName(name string) *types.Contact {
	for _, contact := range c.contacts {
		if strings.EqualFold(contact.Name, name) {
			return contact
		}
	}
	return nil
}

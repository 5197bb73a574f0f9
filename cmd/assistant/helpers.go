// Shared helpers for assistant CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mkravets/assistant/internal/parser"
	"github.com/mkravets/assistant/internal/service"
	"github.com/mkravets/assistant/internal/storage"
	"github.com/mkravets/assistant/internal/validate"
	"github.com/mkravets/assistant/pkg/types"
)

// app bundles the store and services a command works with.
type app struct {
	store    *storage.Store
	contacts *service.Contacts
	notes    *service.Notes
	parser   *parser.Parser
	history  *parser.History
}

// newApp resolves the data directory, opens the store, and loads the
// services. The caller must defer a.close().
func newApp() (*app, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store, err := storage.Open(dataDir, storage.WithKeepCount(configKeepCount))
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	history := parser.NewHistory()
	return &app{
		store:    store,
		contacts: service.NewContacts(store),
		notes:    service.NewNotes(store),
		history:  history,
		parser: parser.New(parser.DefaultRegistry(),
			parser.WithThreshold(configThreshold),
			parser.WithHistory(history)),
	}, nil
}

func (a *app) close() {
	a.store.Close()
}

// printJSON renders v as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// printContact renders one contact for humans.
func printContact(c *types.Contact) {
	fmt.Printf("  %s\n", c.Name)
	fmt.Printf("    phone: %s\n", validate.FormatPhone(c.Phone))
	if c.Email != "" {
		fmt.Printf("    email: %s\n", c.Email)
	}
	if c.Address != "" {
		fmt.Printf("    address: %s\n", c.Address)
	}
	if c.Birthday != nil {
		fmt.Printf("    birthday: %s\n", c.Birthday.Format("2006-01-02"))
	}
}

// printNote renders one note for humans.
func printNote(n *types.Note) {
	title := n.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Printf("  [%.8s] %s\n", n.ID, title)
	fmt.Printf("    %s\n", n.Content)
	if len(n.Tags) > 0 {
		fmt.Printf("    tags: %v\n", n.Tags)
	}
	fmt.Printf("    updated: %s\n", n.UpdatedAt.Format(time.RFC3339))
}

// parseBirthday parses an optional YYYY-MM-DD flag value.
func parseBirthday(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid birthday %q, expected YYYY-MM-DD", s)
	}
	return &t, nil
}

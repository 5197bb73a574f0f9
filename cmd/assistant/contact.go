// Contact commands: add, list, search, edit, delete, plus birthdays.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkravets/assistant/internal/service"
)

var (
	contactName     string
	contactPhone    string
	contactEmail    string
	contactAddress  string
	contactBirthday string
	birthdaysAhead  int
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Manage contacts",
}

var contactAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new contact",
	Long: `Add creates a new contact with a validated phone number.

Example:
  assistant contact add --name "John Doe" --phone "050 123 45 67"
  assistant contact add --name "Olena" --phone +380671234567 --email olena@example.com`,
	RunE: runContactAdd,
}

var contactListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all contacts",
	RunE:  runContactList,
}

var contactSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search contacts by name, phone, or email",
	Args:  cobra.ExactArgs(1),
	RunE:  runContactSearch,
}

var contactEditCmd = &cobra.Command{
	Use:   "edit [name]",
	Short: "Edit an existing contact",
	Args:  cobra.ExactArgs(1),
	RunE:  runContactEdit,
}

var contactDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a contact",
	Args:  cobra.ExactArgs(1),
	RunE:  runContactDelete,
}

var birthdaysCmd = &cobra.Command{
	Use:   "birthdays",
	Short: "Show upcoming birthdays",
	RunE:  runBirthdays,
}

func init() {
	contactAddCmd.Flags().StringVar(&contactName, "name", "", "full name (required)")
	contactAddCmd.Flags().StringVar(&contactPhone, "phone", "", "phone number (required)")
	contactAddCmd.Flags().StringVar(&contactEmail, "email", "", "email address")
	contactAddCmd.Flags().StringVar(&contactAddress, "address", "", "physical address")
	contactAddCmd.Flags().StringVar(&contactBirthday, "birthday", "", "birthday (YYYY-MM-DD)")
	_ = contactAddCmd.MarkFlagRequired("name")
	_ = contactAddCmd.MarkFlagRequired("phone")

	contactEditCmd.Flags().StringVar(&contactName, "name", "", "new name")
	contactEditCmd.Flags().StringVar(&contactPhone, "phone", "", "new phone number")
	contactEditCmd.Flags().StringVar(&contactEmail, "email", "", "new email address")
	contactEditCmd.Flags().StringVar(&contactAddress, "address", "", "new physical address")
	contactEditCmd.Flags().StringVar(&contactBirthday, "birthday", "", "new birthday (YYYY-MM-DD)")

	birthdaysCmd.Flags().IntVar(&birthdaysAhead, "days", 7, "days ahead to look")

	contactCmd.AddCommand(contactAddCmd)
	contactCmd.AddCommand(contactListCmd)
	contactCmd.AddCommand(contactSearchCmd)
	contactCmd.AddCommand(contactEditCmd)
	contactCmd.AddCommand(contactDeleteCmd)
}

func runContactAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	birthday, err := parseBirthday(contactBirthday)
	if err != nil {
		return err
	}

	contact, err := a.contacts.Add(contactName, contactPhone, contactEmail, contactAddress, birthday)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(contact.ToRecord())
	}
	fmt.Printf("Added contact: %s\n", contact.Name)
	return nil
}

func runContactList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	contacts := a.contacts.All()
	if flagJSON {
		records := make([]any, len(contacts))
		for i, c := range contacts {
			records[i] = c.ToRecord()
		}
		return printJSON(records)
	}

	if len(contacts) == 0 {
		fmt.Println("No contacts yet.")
		return nil
	}
	fmt.Printf("%d contact(s):\n", len(contacts))
	for _, c := range contacts {
		printContact(c)
	}
	return nil
}

func runContactSearch(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	found := a.contacts.Search(args[0])
	if flagJSON {
		records := make([]any, len(found))
		for i, c := range found {
			records[i] = c.ToRecord()
		}
		return printJSON(records)
	}

	if len(found) == 0 {
		fmt.Printf("No contacts matching %q.\n", args[0])
		return nil
	}
	for _, c := range found {
		printContact(c)
	}
	return nil
}

func runContactEdit(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	upd := contactUpdateFromFlags(cmd)
	if contactBirthday != "" {
		birthday, err := parseBirthday(contactBirthday)
		if err != nil {
			return err
		}
		upd.Birthday = birthday
	}

	contact, err := a.contacts.Edit(args[0], upd)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(contact.ToRecord())
	}
	fmt.Printf("Updated contact: %s\n", contact.Name)
	return nil
}

func runContactDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.contacts.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted contact: %s\n", args[0])
	return nil
}

func runBirthdays(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	upcoming := a.contacts.UpcomingBirthdays(birthdaysAhead)
	if len(upcoming) == 0 {
		fmt.Printf("No birthdays in the next %d day(s).\n", birthdaysAhead)
		return nil
	}
	for _, c := range upcoming {
		days, _ := c.DaysUntilBirthday()
		fmt.Printf("  %s: in %d day(s)\n", c.Name, days)
	}
	return nil
}

// contactUpdateFromFlags builds a ContactUpdate from the flags the
// user actually set, so unset flags leave fields unchanged.
func contactUpdateFromFlags(cmd *cobra.Command) (upd service.ContactUpdate) {
	if cmd.Flags().Changed("name") {
		upd.Name = &contactName
	}
	if cmd.Flags().Changed("phone") {
		upd.Phone = &contactPhone
	}
	if cmd.Flags().Changed("email") {
		upd.Email = &contactEmail
	}
	if cmd.Flags().Changed("address") {
		upd.Address = &contactAddress
	}
	return upd
}

// Package types defines the Record storage contract, the Contact and
// Note entity types, and standard error values for the assistant.
package types

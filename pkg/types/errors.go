package types

import "errors"

// Standard errors returned by entity constructors and services.
var (
	ErrEmptyName    = errors.New("contact name cannot be empty")
	ErrEmptyPhone   = errors.New("contact phone cannot be empty")
	ErrEmptyContent = errors.New("note content cannot be empty")
	ErrNotFound     = errors.New("entity not found")
	ErrDuplicate    = errors.New("entity already exists")
)

package commands

import (
	"fmt"

	"ordersystem/internal/pkg/errs"
)

// ItemNotFoundError is returned by order creation when a requested item name
// does not resolve against the catalog. It identifies the first unresolved
// name in request order; nothing past that point was looked up or persisted.
type ItemNotFoundError struct {
	Name string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("item not found: %s", e.Name)
}

func (e *ItemNotFoundError) Unwrap() error {
	return errs.ErrObjectNotFound
}

// UserNameTakenError is returned by customer creation when the requested
// account name is already in use.
type UserNameTakenError struct {
	UserName string
}

func (e *UserNameTakenError) Error() string {
	return fmt.Sprintf("username already exists: %s", e.UserName)
}

func (e *UserNameTakenError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

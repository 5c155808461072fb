package customer

import (
	"errors"
	"time"

	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not created
// through the NewCustomer or RestoreCustomer factory methods.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is an account record referenced by orders. The order core only ever
// uses the identifier; everything else is plain field-level persistence.
//
// UserName is unique across customers; uniqueness is enforced by the create
// use case, not here.
type Customer struct {
	id          kernel.UUID
	firstName   string
	lastName    string
	userName    string
	password    string
	address     string
	addressType string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewCustomer creates a customer record. All fields are required.
func NewCustomer(
	id kernel.UUID,
	firstName, lastName, userName, password, address, addressType string,
) (*Customer, error) {
	now := time.Now().UTC()
	c := &Customer{
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setRequired(&c.firstName, "firstName", firstName),
		c.setRequired(&c.lastName, "lastName", lastName),
		c.setRequired(&c.userName, "userName", userName),
		c.setRequired(&c.password, "password", password),
		c.setRequired(&c.address, "address", address),
		c.setRequired(&c.addressType, "addressType", addressType),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a customer from persistence with stored timestamps.
func RestoreCustomer(
	id kernel.UUID,
	firstName, lastName, userName, password, address, addressType string,
	createdAt, updatedAt time.Time,
) (*Customer, error) {
	c, err := NewCustomer(id, firstName, lastName, userName, password, address, addressType)
	if err != nil {
		return nil, err
	}
	c.createdAt = createdAt
	c.updatedAt = updatedAt
	return c, nil
}

// Validate ensures the Customer instance was properly constructed through a factory method.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID { return c.id }

// FirstName returns the customer's first name.
func (c *Customer) FirstName() string { return c.firstName }

// LastName returns the customer's last name.
func (c *Customer) LastName() string { return c.lastName }

// UserName returns the unique account name.
func (c *Customer) UserName() string { return c.userName }

// Password returns the stored password value.
func (c *Customer) Password() string { return c.password }

// Address returns the customer's address.
func (c *Customer) Address() string { return c.address }

// AddressType returns the kind of address on file.
func (c *Customer) AddressType() string { return c.addressType }

// CreatedAt returns the creation timestamp.
func (c *Customer) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns the timestamp of the last mutation.
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }

// Patch applies the non-nil fields and refreshes the update timestamp.
// Empty strings are rejected for any supplied field.
func (c *Customer) Patch(firstName, lastName, userName, password, address, addressType *string) error {
	apply := func(dst *string, name string, v *string) error {
		if v == nil {
			return nil
		}
		return c.setRequired(dst, name, *v)
	}

	if err := errors.Join(
		apply(&c.firstName, "firstName", firstName),
		apply(&c.lastName, "lastName", lastName),
		apply(&c.userName, "userName", userName),
		apply(&c.password, "password", password),
		apply(&c.address, "address", address),
		apply(&c.addressType, "addressType", addressType),
	); err != nil {
		return err
	}

	c.updatedAt = time.Now().UTC()
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setRequired(dst *string, name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*dst = value
	return nil
}

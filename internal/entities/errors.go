package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderItemNotFound = errors.New("order item not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrUserNotFound      = errors.New("user not found")

	// ErrEmailTaken is returned when a user with the same email already exists.
	ErrEmailTaken = errors.New("email already registered")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnsupportedMedia   = errors.New("unsupported media type")

	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrInvalidOrder    = errors.New("invalid order")
)

// Order creation stages reported by OrderCreationError.
const (
	StageItems = "items"
	StageTotal = "total"
	StageOrder = "order"
)

// OrderCreationError describes a failed order submission.
// Line is the zero-based index of the failed request line and is only set
// for the items stage. Orphans lists order items that were persisted and
// are not referenced by any order.
type OrderCreationError struct {
	Stage   string
	Line    int
	Orphans []string
	Err     error
}

func (e *OrderCreationError) Error() string {
	if e.Err == nil {
		return e.Summary()
	}
	return e.Summary() + ": " + e.Err.Error()
}

// Summary is the error text without the underlying cause.
func (e *OrderCreationError) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "order creation failed at %s", e.Stage)
	if e.Stage == StageItems {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}
	if len(e.Orphans) > 0 {
		fmt.Fprintf(&b, ", %d orphaned items", len(e.Orphans))
	}
	return b.String()
}

func (e *OrderCreationError) Unwrap() error {
	return e.Err
}

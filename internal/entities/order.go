package entities

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

var orderStatuses = []OrderStatus{
	StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled,
}

// Valid reports whether s is a known label. Any label may follow any other.
func (s OrderStatus) Valid() bool {
	return slices.Contains(orderStatuses, s)
}

// OrderItem is one line of an order. Immutable after creation.
type OrderItem struct {
	ID        string
	ProductID string
	Quantity  int
}

type Shipping struct {
	Address1 string
	Address2 string
	City     string
	Zip      string
	Country  string
	Phone    string
}

type Order struct {
	ID          string
	OrderItems  []string
	Shipping    Shipping
	Status      OrderStatus
	TotalPrice  decimal.Decimal
	UserID      string
	DateOrdered time.Time
}

// OrderLine is a requested line before it is persisted.
type OrderLine struct {
	ProductID string
	Quantity  int
}

type CreateOrderRequest struct {
	Lines    []OrderLine
	Shipping Shipping
	Status   OrderStatus
	UserID   string
}

// OrderItemDetails is an order item with its product and category resolved.
// Product is nil when the referenced product no longer exists.
type OrderItemDetails struct {
	ID       string
	Quantity int
	Product  *Product
}

// OrderDetails is the read-side view of an order.
// User is nil when the referenced user no longer exists.
type OrderDetails struct {
	ID          string
	OrderItems  []OrderItemDetails
	Shipping    Shipping
	Status      OrderStatus
	TotalPrice  decimal.Decimal
	User        *UserRef
	DateOrdered time.Time
}

package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID              string
	Name            string
	Description     string
	RichDescription string
	Image           string
	Images          []string
	Brand           string
	Price           decimal.Decimal
	CategoryID      string
	CountInStock    int
	Rating          float64
	NumReviews      int
	IsFeatured      bool
	DateCreated     time.Time

	// Category is filled only by reads that join the category.
	Category *Category
}

// ProductFilter narrows product listings. Empty CategoryIDs means all.
type ProductFilter struct {
	CategoryIDs []string
}

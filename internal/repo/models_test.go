package repo

import (
	"database/sql"
	"testing"

	"github.com/SergeyBogomolovv/eshop-service/internal/entities"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderToDetails(t *testing.T) {
	row := Order{
		ID:               "o1",
		OrderItems:       pq.StringArray{"i1", "i2", "gone"},
		ShippingAddress1: "Main st. 1",
		City:             "Prague",
		Country:          "CZ",
		Phone:            "+420",
		Zip:              sql.NullString{String: "11000", Valid: true},
		Status:           string(entities.StatusPending),
		TotalPrice:       decimal.RequireFromString("25.5"),
		UserID:           "u1",
	}
	users := map[string]entities.UserRef{"u1": {ID: "u1", Name: "Ann", Email: "ann@example.com"}}
	items := map[string]OrderItem{
		"i1": {ID: "i1", ProductID: "p1", Quantity: 2},
		"i2": {ID: "i2", ProductID: "deleted", Quantity: 1},
	}
	products := map[string]entities.Product{"p1": {ID: "p1", Name: "Mug"}}

	got := OrderToDetails(row, users, items, products)

	assert.Equal(t, "o1", got.ID)
	assert.Equal(t, "11000", got.Shipping.Zip)
	assert.True(t, got.TotalPrice.Equal(decimal.RequireFromString("25.5")))
	require.NotNil(t, got.User)
	assert.Equal(t, "ann@example.com", got.User.Email)

	require.Len(t, got.OrderItems, 2, "missing order items are skipped")
	require.NotNil(t, got.OrderItems[0].Product)
	assert.Equal(t, "Mug", got.OrderItems[0].Product.Name)
	assert.Equal(t, 2, got.OrderItems[0].Quantity)
	assert.Nil(t, got.OrderItems[1].Product, "missing product is left empty")
}

func TestOrderToDetails_UnknownUser(t *testing.T) {
	got := OrderToDetails(Order{ID: "o1", UserID: "u1"}, nil, nil, nil)

	assert.Nil(t, got.User)
	assert.NotNil(t, got.OrderItems)
	assert.Empty(t, got.OrderItems)
}

func TestProductWithCategoryToEntity(t *testing.T) {
	tests := []struct {
		name         string
		row          ProductWithCategory
		wantCategory *entities.Category
	}{
		{
			name: "with category",
			row: ProductWithCategory{
				Product: Product{ID: "p1", CategoryID: "c1", Images: pq.StringArray{"a.png"}},
				CatID:   sql.NullString{String: "c1", Valid: true},
				CatName: sql.NullString{String: "Kitchen", Valid: true},
			},
			wantCategory: &entities.Category{ID: "c1", Name: "Kitchen"},
		},
		{
			name: "category deleted",
			row:  ProductWithCategory{Product: Product{ID: "p1", CategoryID: "c1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProductWithCategoryToEntity(tt.row)
			assert.Equal(t, "p1", got.ID)
			assert.Equal(t, "c1", got.CategoryID)
			assert.Equal(t, tt.wantCategory, got.Category)
		})
	}
}

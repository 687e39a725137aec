package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/eshop-service/internal/entities"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Category struct {
	ID    string         `db:"id"`
	Name  string         `db:"name"`
	Color sql.NullString `db:"color"`
	Icon  sql.NullString `db:"icon"`
	Image sql.NullString `db:"image"`
}

type Product struct {
	ID              string          `db:"id"`
	Name            string          `db:"name"`
	Description     string          `db:"description"`
	RichDescription sql.NullString  `db:"rich_description"`
	Image           sql.NullString  `db:"image"`
	Images          pq.StringArray  `db:"images"`
	Brand           sql.NullString  `db:"brand"`
	Price           decimal.Decimal `db:"price"`
	CategoryID      string          `db:"category_id"`
	CountInStock    int             `db:"count_in_stock"`
	Rating          float64         `db:"rating"`
	NumReviews      int             `db:"num_reviews"`
	IsFeatured      bool            `db:"is_featured"`
	DateCreated     time.Time       `db:"date_created"`
}

// ProductWithCategory is a product row left-joined with its category.
type ProductWithCategory struct {
	Product
	CatID    sql.NullString `db:"cat_id"`
	CatName  sql.NullString `db:"cat_name"`
	CatColor sql.NullString `db:"cat_color"`
	CatIcon  sql.NullString `db:"cat_icon"`
	CatImage sql.NullString `db:"cat_image"`
}

type User struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	Phone        string         `db:"phone"`
	IsAdmin      bool           `db:"is_admin"`
	Street       sql.NullString `db:"street"`
	Apartment    sql.NullString `db:"apartment"`
	Zip          sql.NullString `db:"zip"`
	City         sql.NullString `db:"city"`
	Country      sql.NullString `db:"country"`
}

type OrderItem struct {
	ID        string `db:"id"`
	ProductID string `db:"product_id"`
	Quantity  int    `db:"quantity"`
}

type Order struct {
	ID               string          `db:"id"`
	OrderItems       pq.StringArray  `db:"order_items"`
	ShippingAddress1 string          `db:"shipping_address1"`
	ShippingAddress2 string          `db:"shipping_address2"`
	City             string          `db:"city"`
	Zip              sql.NullString  `db:"zip"`
	Country          string          `db:"country"`
	Phone            string          `db:"phone"`
	Status           string          `db:"status"`
	TotalPrice       decimal.Decimal `db:"total_price"`
	UserID           string          `db:"user_id"`
	DateOrdered      time.Time       `db:"date_ordered"`
}

func CategoryToEntity(c Category) entities.Category {
	return entities.Category{
		ID:    c.ID,
		Name:  c.Name,
		Color: nullStringToString(c.Color),
		Icon:  nullStringToString(c.Icon),
		Image: nullStringToString(c.Image),
	}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		RichDescription: nullStringToString(p.RichDescription),
		Image:           nullStringToString(p.Image),
		Images:          []string(p.Images),
		Brand:           nullStringToString(p.Brand),
		Price:           p.Price,
		CategoryID:      p.CategoryID,
		CountInStock:    p.CountInStock,
		Rating:          p.Rating,
		NumReviews:      p.NumReviews,
		IsFeatured:      p.IsFeatured,
		DateCreated:     p.DateCreated,
	}
}

func ProductWithCategoryToEntity(p ProductWithCategory) entities.Product {
	product := ProductToEntity(p.Product)
	if p.CatID.Valid {
		product.Category = &entities.Category{
			ID:    p.CatID.String,
			Name:  nullStringToString(p.CatName),
			Color: nullStringToString(p.CatColor),
			Icon:  nullStringToString(p.CatIcon),
			Image: nullStringToString(p.CatImage),
		}
	}
	return product
}

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Phone:        u.Phone,
		IsAdmin:      u.IsAdmin,
		Street:       nullStringToString(u.Street),
		Apartment:    nullStringToString(u.Apartment),
		Zip:          nullStringToString(u.Zip),
		City:         nullStringToString(u.City),
		Country:      nullStringToString(u.Country),
	}
}

func OrderItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ID:        i.ID,
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
	}
}

func OrderToEntity(o Order) entities.Order {
	return entities.Order{
		ID:         o.ID,
		OrderItems: []string(o.OrderItems),
		Shipping: entities.Shipping{
			Address1: o.ShippingAddress1,
			Address2: o.ShippingAddress2,
			City:     o.City,
			Zip:      nullStringToString(o.Zip),
			Country:  o.Country,
			Phone:    o.Phone,
		},
		Status:      entities.OrderStatus(o.Status),
		TotalPrice:  o.TotalPrice,
		UserID:      o.UserID,
		DateOrdered: o.DateOrdered,
	}
}

// OrderToDetails assembles the read-side view from preloaded lookups.
// References missing from the lookups are left empty.
func OrderToDetails(
	o Order,
	users map[string]entities.UserRef,
	items map[string]OrderItem,
	products map[string]entities.Product,
) entities.OrderDetails {
	order := OrderToEntity(o)
	details := entities.OrderDetails{
		ID:          order.ID,
		Shipping:    order.Shipping,
		Status:      order.Status,
		TotalPrice:  order.TotalPrice,
		DateOrdered: order.DateOrdered,
		OrderItems:  make([]entities.OrderItemDetails, 0, len(order.OrderItems)),
	}

	if u, ok := users[o.UserID]; ok {
		details.User = &u
	}

	for _, id := range order.OrderItems {
		item, ok := items[id]
		if !ok {
			continue
		}
		line := entities.OrderItemDetails{ID: item.ID, Quantity: item.Quantity}
		if p, ok := products[item.ProductID]; ok {
			line.Product = &p
		}
		details.OrderItems = append(details.OrderItems, line)
	}

	return details
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

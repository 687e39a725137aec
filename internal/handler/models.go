package handler

import (
	"time"

	"github.com/SergeyBogomolovv/eshop-service/internal/entities"
	"github.com/shopspring/decimal"
)

// Category товарная категория
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
	Image string `json:"image,omitempty"`
}

// CategoryRequest тело запроса на создание или изменение категории
type CategoryRequest struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Image string `json:"image" validate:"omitempty,url"`
}

// Product товар
type Product struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	RichDescription string    `json:"richDescription,omitempty"`
	Image           string    `json:"image,omitempty"`
	Images          []string  `json:"images"`
	Brand           string    `json:"brand,omitempty"`
	Price           float64   `json:"price"`
	Category        any       `json:"category"`
	CountInStock    int       `json:"countInStock"`
	Rating          float64   `json:"rating"`
	NumReviews      int       `json:"numReviews"`
	IsFeatured      bool      `json:"isFeatured"`
	DateCreated     time.Time `json:"dateCreated"`
}

// ProductForm поля multipart-формы товара
type ProductForm struct {
	Name            string  `validate:"required"`
	Description     string  `validate:"required"`
	RichDescription string
	Brand           string
	Price           float64 `validate:"gte=0"`
	Category        string  `validate:"required,uuid"`
	CountInStock    int     `validate:"gte=0,lte=255"`
	Rating          float64 `validate:"gte=0"`
	NumReviews      int     `validate:"gte=0"`
	IsFeatured      bool
}

// User пользователь без хеша пароля
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IsAdmin   bool   `json:"isAdmin"`
	Street    string `json:"street,omitempty"`
	Apartment string `json:"apartment,omitempty"`
	Zip       string `json:"zip,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
}

// UserRequest тело запроса на создание или изменение пользователя
type UserRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password"`
	Phone     string `json:"phone" validate:"required"`
	IsAdmin   bool   `json:"isAdmin"`
	Street    string `json:"street"`
	Apartment string `json:"apartment"`
	Zip       string `json:"zip"`
	City      string `json:"city"`
	Country   string `json:"country"`
}

// LoginRequest учетные данные
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// OrderLine строка заказа в запросе
type OrderLine struct {
	Product  string `json:"product" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,gt=0,lte=2147483647"`
}

// CreateOrderRequest тело запроса на создание заказа
type CreateOrderRequest struct {
	OrderItems       []OrderLine `json:"orderItems" validate:"required,min=1,dive"`
	ShippingAddress1 string      `json:"shippingAddress1" validate:"required"`
	ShippingAddress2 string      `json:"shippingAddress2" validate:"required"`
	City             string      `json:"city" validate:"required"`
	Zip              string      `json:"zip"`
	Country          string      `json:"country" validate:"required"`
	Phone            string      `json:"phone" validate:"required"`
	Status           string      `json:"status" validate:"omitempty,oneof=Pending Processing Shipped Delivered Cancelled"`
	User             string      `json:"user" validate:"omitempty,uuid"`
}

// UpdateStatusRequest тело запроса на смену статуса заказа
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Processing Shipped Delivered Cancelled"`
}

// Order заказ со ссылками на позиции
type Order struct {
	ID               string    `json:"id"`
	OrderItems       []string  `json:"orderItems"`
	ShippingAddress1 string    `json:"shippingAddress1"`
	ShippingAddress2 string    `json:"shippingAddress2"`
	City             string    `json:"city"`
	Zip              string    `json:"zip,omitempty"`
	Country          string    `json:"country"`
	Phone            string    `json:"phone"`
	Status           string    `json:"status"`
	TotalPrice       float64   `json:"totalPrice"`
	User             string    `json:"user"`
	DateOrdered      time.Time `json:"dateOrdered"`
}

// OrderUser покупатель в развернутом заказе
type OrderUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderItemDetails позиция заказа с товаром и категорией
type OrderItemDetails struct {
	ID       string   `json:"id"`
	Quantity int      `json:"quantity"`
	Product  *Product `json:"product"`
}

// OrderDetails заказ с развернутыми пользователем, позициями и товарами
type OrderDetails struct {
	ID               string             `json:"id"`
	OrderItems       []OrderItemDetails `json:"orderItems"`
	ShippingAddress1 string             `json:"shippingAddress1"`
	ShippingAddress2 string             `json:"shippingAddress2"`
	City             string             `json:"city"`
	Zip              string             `json:"zip,omitempty"`
	Country          string             `json:"country"`
	Phone            string             `json:"phone"`
	Status           string             `json:"status"`
	TotalPrice       float64            `json:"totalPrice"`
	User             *OrderUser         `json:"user"`
	DateOrdered      time.Time          `json:"dateOrdered"`
}

func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func CategoryEntityToJSON(c entities.Category) Category {
	return Category{
		ID:    c.ID,
		Name:  c.Name,
		Color: c.Color,
		Icon:  c.Icon,
		Image: c.Image,
	}
}

func CategoryJSONToEntity(id string, c CategoryRequest) entities.Category {
	return entities.Category{
		ID:    id,
		Name:  c.Name,
		Color: c.Color,
		Icon:  c.Icon,
		Image: c.Image,
	}
}

// ProductEntityToJSON embeds the category when it was joined and falls back to its id.
func ProductEntityToJSON(p entities.Product) Product {
	images := p.Images
	if images == nil {
		images = []string{}
	}

	var category any = p.CategoryID
	if p.Category != nil {
		category = CategoryEntityToJSON(*p.Category)
	}

	return Product{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		RichDescription: p.RichDescription,
		Image:           p.Image,
		Images:          images,
		Brand:           p.Brand,
		Price:           money(p.Price),
		Category:        category,
		CountInStock:    p.CountInStock,
		Rating:          p.Rating,
		NumReviews:      p.NumReviews,
		IsFeatured:      p.IsFeatured,
		DateCreated:     p.DateCreated,
	}
}

func ProductFormToEntity(id string, f ProductForm) entities.Product {
	return entities.Product{
		ID:              id,
		Name:            f.Name,
		Description:     f.Description,
		RichDescription: f.RichDescription,
		Brand:           f.Brand,
		Price:           decimal.NewFromFloat(f.Price),
		CategoryID:      f.Category,
		CountInStock:    f.CountInStock,
		Rating:          f.Rating,
		NumReviews:      f.NumReviews,
		IsFeatured:      f.IsFeatured,
	}
}

func UserEntityToJSON(u entities.User) User {
	return User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		IsAdmin:   u.IsAdmin,
		Street:    u.Street,
		Apartment: u.Apartment,
		Zip:       u.Zip,
		City:      u.City,
		Country:   u.Country,
	}
}

func UserJSONToEntity(id string, u UserRequest) entities.User {
	return entities.User{
		ID:        id,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		IsAdmin:   u.IsAdmin,
		Street:    u.Street,
		Apartment: u.Apartment,
		Zip:       u.Zip,
		City:      u.City,
		Country:   u.Country,
	}
}

func CreateOrderJSONToEntity(o CreateOrderRequest) entities.CreateOrderRequest {
	lines := make([]entities.OrderLine, 0, len(o.OrderItems))
	for _, l := range o.OrderItems {
		lines = append(lines, entities.OrderLine{ProductID: l.Product, Quantity: l.Quantity})
	}

	return entities.CreateOrderRequest{
		Lines: lines,
		Shipping: entities.Shipping{
			Address1: o.ShippingAddress1,
			Address2: o.ShippingAddress2,
			City:     o.City,
			Zip:      o.Zip,
			Country:  o.Country,
			Phone:    o.Phone,
		},
		Status: entities.OrderStatus(o.Status),
		UserID: o.User,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := o.OrderItems
	if items == nil {
		items = []string{}
	}

	return Order{
		ID:               o.ID,
		OrderItems:       items,
		ShippingAddress1: o.Shipping.Address1,
		ShippingAddress2: o.Shipping.Address2,
		City:             o.Shipping.City,
		Zip:              o.Shipping.Zip,
		Country:          o.Shipping.Country,
		Phone:            o.Shipping.Phone,
		Status:           string(o.Status),
		TotalPrice:       money(o.TotalPrice),
		User:             o.UserID,
		DateOrdered:      o.DateOrdered,
	}
}

func OrderDetailsEntityToJSON(o entities.OrderDetails) OrderDetails {
	items := make([]OrderItemDetails, 0, len(o.OrderItems))
	for _, it := range o.OrderItems {
		item := OrderItemDetails{ID: it.ID, Quantity: it.Quantity}
		if it.Product != nil {
			p := ProductEntityToJSON(*it.Product)
			item.Product = &p
		}
		items = append(items, item)
	}

	var user *OrderUser
	if o.User != nil {
		user = &OrderUser{ID: o.User.ID, Name: o.User.Name, Email: o.User.Email}
	}

	return OrderDetails{
		ID:               o.ID,
		OrderItems:       items,
		ShippingAddress1: o.Shipping.Address1,
		ShippingAddress2: o.Shipping.Address2,
		City:             o.Shipping.City,
		Zip:              o.Shipping.Zip,
		Country:          o.Shipping.Country,
		Phone:            o.Shipping.Phone,
		Status:           string(o.Status),
		TotalPrice:       money(o.TotalPrice),
		User:             user,
		DateOrdered:      o.DateOrdered,
	}
}

func OrderDetailsListToJSON(orders []entities.OrderDetails) []OrderDetails {
	res := make([]OrderDetails, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderDetailsEntityToJSON(o))
	}
	return res
}

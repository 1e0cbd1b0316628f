package repository

import (
	"time"

	"greenhouse/entities"
)

// OrderRow is one line of the flattened orders+items+product join; item
// columns are nil for an order with no surviving items.
type OrderRow struct {
	OrderID     uint      `json:"order_id"`
	UserID      uint      `json:"user_id"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	ProductID   *uint     `json:"product_id"`
	Quantity    *int      `json:"quantity"`
	Price       *float64  `json:"price"`
	ProductName *string   `json:"product_name"`
}

type ShopRepository interface {
	ListProducts(userID *uint) ([]entities.Product, error)
	CreateProduct(p *entities.Product) error
	// DeleteProduct reports how many rows went away.
	DeleteProduct(id uint) (int64, error)
	// CreateOrder writes the order and all items in one transaction.
	CreateOrder(order *entities.Order, items []entities.OrderItem) error
	UserOrderRows(userID uint) ([]OrderRow, error)
}

package models

import "time"

// Product is a catalog entry. Price is stored in minor currency units.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Price       int64     `json:"price"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	InStock     bool      `json:"inStock"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Category groups products. The id is a slug derived from the name;
// "all" is reserved for the storefront's catch-all filter and is never
// assigned to a product.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// OrderItem is a line item holding a snapshot of the product at order
// time, not a reference into the catalog.
type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// OrderUser is the buyer snapshot embedded in an order.
type OrderUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

// Order is append-only: the API exposes no update or delete for it.
type Order struct {
	ID        string      `json:"id"`
	Products  []OrderItem `json:"products"`
	Total     int64       `json:"total"`
	User      OrderUser   `json:"user"`
	Status    string      `json:"status"`
	Timestamp time.Time   `json:"timestamp,omitzero"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// OrderStatusPending is the only status the API ever assigns.
const OrderStatusPending = "pending"

// User is a visitor record keyed by the Telegram user id.
type User struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name,omitempty"`
	Username  string    `json:"username,omitempty"`
	IsBot     bool      `json:"is_bot"`
	FirstSeen time.Time `json:"firstSeen"`
	LastSeen  time.Time `json:"lastSeen"`
}

// Stats is the admin dashboard aggregate. TotalUsers counts distinct
// buyers appearing in orders, not registered users.
type Stats struct {
	TotalProducts int   `json:"totalProducts"`
	TotalOrders   int   `json:"totalOrders"`
	TotalRevenue  int64 `json:"totalRevenue"`
	TotalUsers    int   `json:"totalUsers"`
}

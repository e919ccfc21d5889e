package model

import "time"

// User is the upstream user record returned by the who-am-I endpoint.
// Role is the authoritative privilege classification; the storefront never
// derives it from anywhere else.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Profile is the upstream profile payload: editable identity fields plus
// the user's order history.
type Profile struct {
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Orders []Order `json:"orders"`
}

// Order is a historical order as reported by the upstream profile endpoint.
type Order struct {
	ID        string      `json:"_id"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

// OrderItem is one line of a historical order.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

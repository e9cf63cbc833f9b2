package models

import "time"

type OrderStatus string

const (
	// Order statuses (admin-driven, any status may be set from any status)
	OrderStatusPending    OrderStatus = "Pending"    // Placed, awaiting processing
	OrderStatusProcessing OrderStatus = "Processing" // Being prepared
	OrderStatusShipped    OrderStatus = "Shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "Delivered"  // Customer received the item
	OrderStatusCancelled  OrderStatus = "Cancelled"  // Cancelled by admin
)

// Order is one checkout transaction. The ID is a human-readable string
// (prefix + random 6-digit suffix) and doubles as the primary key, so a
// suffix collision surfaces as a duplicate-key insert error.
type Order struct {
	ID            string      `gorm:"primaryKey;type:VARCHAR(32)" json:"id"`
	UserID        string      `gorm:"not null" json:"userId"` // "guest" for unauthenticated checkout
	OrderDate     time.Time   `json:"date"`
	Status        OrderStatus `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	TotalAmount   int         `json:"total"` // whole Rupees, inclusive of 3% tax
	PaymentMethod string      `json:"paymentMethod"`

	ShippingFirstName string `json:"-"`
	ShippingLastName  string `json:"-"`
	ShippingEmail     string `json:"-"`
	ShippingPhone     string `json:"-"`
	ShippingAddress   string `json:"-"`
	ShippingCity      string `json:"-"`
	ShippingState     string `json:"-"`
	ShippingZip       string `json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// OrderItem is a snapshot of one product at the moment of placement.
// Later catalog edits must never change a placed order's recorded
// name or price.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID   string  `gorm:"index;type:VARCHAR(32)" json:"-"`
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
}

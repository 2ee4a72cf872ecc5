package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by seller
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the item
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled while still pending
)

type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	UserID          uint        `gorm:"not null;index" json:"user_id"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount     float64     `json:"total_amount"`
	Status          OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	WhatsappNumber  string      `json:"whatsapp_number"`
	DeliveryAddress string      `json:"delivery_address"`
	CustomerNotes   string      `json:"customer_notes"`
	CreatedAt       time.Time   `json:"created_at"`
}

// OrderItem is a value snapshot of the perfume at order time. Product
// and brand names and the unit price are copied, so later catalog edits
// never alter a placed order.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"index" json:"order_id"`
	PerfumeID   uint    `json:"perfume_id"`
	ProductName string  `json:"product_name"`
	BrandName   string  `json:"brand_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}

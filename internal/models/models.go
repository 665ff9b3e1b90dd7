package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Password  string    `json:"password"`
	Role      Role      `json:"role"`
	IsBlocked bool      `json:"isBlocked,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Address struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	IsDefault    bool   `json:"isDefault"`
}

type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          decimal.Decimal   `json:"price"`
	Discount       int               `json:"discount"`
	Images         []string          `json:"images"`
	Category       string            `json:"category"`
	Subcategory    string            `json:"subcategory"`
	Sizes          []string          `json:"sizes"`
	Colors         []string          `json:"colors"`
	Stock          int               `json:"stock"`
	Rating         float64           `json:"rating"`
	Reviews        int               `json:"reviews"`
	Featured       bool              `json:"featured"`
	Trending       bool              `json:"trending"`
	Bestseller     bool              `json:"bestseller"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

// CartItem lines are keyed by (ProductID, Size, Color); the same triple never
// appears twice in a stored cart.
type CartItem struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
	Price     decimal.Decimal `json:"price"`
}

func (i CartItem) SameLine(o CartItem) bool {
	return i.ProductID == o.ProductID && i.Size == o.Size && i.Color == o.Color
}

type CouponType string

const (
	CouponPercentage CouponType = "percentage"
	CouponFixed      CouponType = "fixed"
)

type Coupon struct {
	ID          string           `json:"id"`
	Code        string           `json:"code"`
	Discount    decimal.Decimal  `json:"discount"`
	Type        CouponType       `json:"type"`
	MinPurchase decimal.Decimal  `json:"minPurchase"`
	MaxDiscount *decimal.Decimal `json:"maxDiscount,omitempty"`
	ExpiryDate  time.Time        `json:"expiryDate"`
	Active      bool             `json:"active"`
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

type OrderStatus string

// The usual forward sequence is pending -> confirmed -> packed -> shipped ->
// delivered, with cancelled reachable before delivery. The store does not
// enforce this; status is an admin-owned field.
const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPacked    OrderStatus = "packed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// Order is a snapshot: Items and ShippingAddress are copied at creation time
// and never track later edits to the cart or the address book.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Items           []CartItem      `json:"items"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Discount        decimal.Decimal `json:"discount"`
	DeliveryCharge  decimal.Decimal `json:"deliveryCharge"`
	FinalAmount     decimal.Decimal `json:"finalAmount"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	OrderStatus     OrderStatus     `json:"orderStatus"`
	ShippingAddress Address         `json:"shippingAddress"`
	CouponCode      string          `json:"couponCode,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type NotificationType string

const (
	NotificationOrder     NotificationType = "order"
	NotificationPromotion NotificationType = "promotion"
	NotificationSystem    NotificationType = "system"
)

type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}

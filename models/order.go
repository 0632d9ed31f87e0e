package models

import "time"

// DefaultOrderStatus is the status given to orders created without one.
const DefaultOrderStatus = "pending"

// Order is a customer order. OrderDetails and Promotions are loaded with the order.
type Order struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	CustomerID     uint          `gorm:"not null;index" json:"customer_id"`
	CustomerName   string        `gorm:"type:varchar(100)" json:"customer_name"`
	OrderDate      time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP;index" json:"order_date"`
	TrackingNumber string        `gorm:"type:varchar(100)" json:"tracking_number"`
	OrderStatus    string        `gorm:"type:varchar(50)" json:"order_status"`
	Status         string        `gorm:"type:varchar(50);not null;default:'pending'" json:"status"`
	TotalPrice     float64       `gorm:"type:decimal(10,2)" json:"total_price"`
	Description    string        `gorm:"type:varchar(300)" json:"description"`
	Customer       *Customer     `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	OrderDetails   []OrderDetail `gorm:"foreignKey:OrderID" json:"order_details"`
	Promotions     []Promotion   `gorm:"many2many:order_promotions" json:"promotions"`
}

// CreateOrderRequest is the payload for creating an order.
type CreateOrderRequest struct {
	CustomerID     uint    `json:"customer_id" binding:"required"`
	CustomerName   string  `json:"customer_name" binding:"required,notblank,max=100"`
	TrackingNumber string  `json:"tracking_number" binding:"max=100"`
	OrderStatus    string  `json:"order_status" binding:"max=50"`
	Status         string  `json:"status" binding:"max=50"`
	TotalPrice     float64 `json:"total_price"`
	Description    string  `json:"description" binding:"max=300"`
	PromotionIDs   []uint  `json:"promotion_ids" binding:"omitempty,dive,required"`
}

// OrderPatch carries the order fields to overwrite. A non-nil PromotionIDs
// replaces the order's whole promotion set.
type OrderPatch struct {
	CustomerID     *uint    `json:"customer_id" binding:"omitempty,gt=0"`
	CustomerName   *string  `json:"customer_name" binding:"omitempty,notblank,max=100"`
	TrackingNumber *string  `json:"tracking_number" binding:"omitempty,max=100"`
	OrderStatus    *string  `json:"order_status" binding:"omitempty,max=50"`
	Status         *string  `json:"status" binding:"omitempty,max=50"`
	TotalPrice     *float64 `json:"total_price"`
	Description    *string  `json:"description" binding:"omitempty,max=300"`
	PromotionIDs   *[]uint  `json:"promotion_ids"`
}

// Changes returns the column assignments for the fields present in the patch.
// PromotionIDs is an association, not a column, and is not included.
func (p *OrderPatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if p.CustomerID != nil {
		changes["customer_id"] = *p.CustomerID
	}
	if p.CustomerName != nil {
		changes["customer_name"] = *p.CustomerName
	}
	if p.TrackingNumber != nil {
		changes["tracking_number"] = *p.TrackingNumber
	}
	if p.OrderStatus != nil {
		changes["order_status"] = *p.OrderStatus
	}
	if p.Status != nil {
		changes["status"] = *p.Status
	}
	if p.TotalPrice != nil {
		changes["total_price"] = *p.TotalPrice
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	return changes
}

// OrderDetail is a single sandwich line on an order.
type OrderDetail struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OrderID    uint      `gorm:"not null;index" json:"order_id"`
	SandwichID uint      `gorm:"not null;index" json:"sandwich_id"`
	Amount     int       `gorm:"not null" json:"amount"`
	Order      *Order    `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	Sandwich   *Sandwich `gorm:"foreignKey:SandwichID" json:"sandwich,omitempty"`
}

// CreateOrderDetailRequest is the payload for adding a line to an order.
type CreateOrderDetailRequest struct {
	OrderID    uint `json:"order_id" binding:"required"`
	SandwichID uint `json:"sandwich_id" binding:"required"`
	Amount     int  `json:"amount"`
}

// OrderDetailPatch carries the order detail fields to overwrite.
type OrderDetailPatch struct {
	OrderID    *uint `json:"order_id" binding:"omitempty,gt=0"`
	SandwichID *uint `json:"sandwich_id" binding:"omitempty,gt=0"`
	Amount     *int  `json:"amount"`
}

// Changes returns the column assignments for the fields present in the patch.
func (p *OrderDetailPatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if p.OrderID != nil {
		changes["order_id"] = *p.OrderID
	}
	if p.SandwichID != nil {
		changes["sandwich_id"] = *p.SandwichID
	}
	if p.Amount != nil {
		changes["amount"] = *p.Amount
	}
	return changes
}

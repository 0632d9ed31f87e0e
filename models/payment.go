package models

// Payment settles an order. Each order has at most one payment.
type Payment struct {
	ID                uint    `gorm:"primaryKey" json:"id"`
	OrderID           uint    `gorm:"not null;uniqueIndex:uq_payments_order" json:"order_id"`
	CardInformation   string  `gorm:"type:varchar(100)" json:"card_information"`
	TransactionStatus string  `gorm:"type:varchar(50)" json:"transaction_status"`
	PaymentType       string  `gorm:"type:varchar(50)" json:"payment_type"`
	Amount            float64 `gorm:"type:decimal(10,2);not null;default:0" json:"amount"`
	Order             *Order  `gorm:"foreignKey:OrderID" json:"order,omitempty"`
}

// CreatePaymentRequest is the payload for recording a payment.
type CreatePaymentRequest struct {
	OrderID           uint    `json:"order_id" binding:"required"`
	CardInformation   string  `json:"card_information" binding:"required,notblank,max=100"`
	TransactionStatus string  `json:"transaction_status" binding:"required,max=50"`
	PaymentType       string  `json:"payment_type" binding:"required,max=50"`
	Amount            float64 `json:"amount" binding:"gte=0"`
}

// PaymentPatch carries the payment fields to overwrite.
type PaymentPatch struct {
	OrderID           *uint    `json:"order_id" binding:"omitempty,gt=0"`
	CardInformation   *string  `json:"card_information" binding:"omitempty,notblank,max=100"`
	TransactionStatus *string  `json:"transaction_status" binding:"omitempty,max=50"`
	PaymentType       *string  `json:"payment_type" binding:"omitempty,max=50"`
	Amount            *float64 `json:"amount" binding:"omitempty,gte=0"`
}

// Changes returns the column assignments for the fields present in the patch.
func (p *PaymentPatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if p.OrderID != nil {
		changes["order_id"] = *p.OrderID
	}
	if p.CardInformation != nil {
		changes["card_information"] = *p.CardInformation
	}
	if p.TransactionStatus != nil {
		changes["transaction_status"] = *p.TransactionStatus
	}
	if p.PaymentType != nil {
		changes["payment_type"] = *p.PaymentType
	}
	if p.Amount != nil {
		changes["amount"] = *p.Amount
	}
	return changes
}

// PaymentTotal is the response of the payments aggregate.
type PaymentTotal struct {
	Total float64 `json:"total"`
}

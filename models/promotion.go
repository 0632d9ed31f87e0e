package models

import "time"

// Promotion is a promotional code that can be applied to orders.
type Promotion struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	PromotionCode  string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_promotions_code" json:"promotion_code"`
	ExpirationDate time.Time `gorm:"not null" json:"expiration_date"`
	Orders         []Order   `gorm:"many2many:order_promotions" json:"orders,omitempty"`
}

// CreatePromotionRequest is the payload for creating a promotion.
type CreatePromotionRequest struct {
	PromotionCode  string    `json:"promotion_code" binding:"required,notblank,max=50"`
	ExpirationDate time.Time `json:"expiration_date" binding:"required"`
}

// PromotionPatch carries the promotion fields to overwrite.
type PromotionPatch struct {
	PromotionCode  *string    `json:"promotion_code" binding:"omitempty,notblank,max=50"`
	ExpirationDate *time.Time `json:"expiration_date"`
}

// Changes returns the column assignments for the fields present in the patch.
func (p *PromotionPatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if p.PromotionCode != nil {
		changes["promotion_code"] = *p.PromotionCode
	}
	if p.ExpirationDate != nil {
		changes["expiration_date"] = *p.ExpirationDate
	}
	return changes
}

package models

// Review is a customer's score and comment on a sandwich.
type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	SandwichID uint      `gorm:"not null;index" json:"sandwich_id"`
	ReviewText string    `gorm:"type:varchar(500)" json:"review_text"`
	Score      int       `gorm:"not null" json:"score"`
	Customer   *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Sandwich   *Sandwich `gorm:"foreignKey:SandwichID" json:"sandwich,omitempty"`
}

// CreateReviewRequest is the payload for posting a review.
type CreateReviewRequest struct {
	CustomerID uint   `json:"customer_id" binding:"required"`
	SandwichID uint   `json:"sandwich_id" binding:"required"`
	ReviewText string `json:"review_text" binding:"max=500"`
	Score      int    `json:"score"`
}

// ReviewPatch carries the review fields to overwrite.
type ReviewPatch struct {
	CustomerID *uint   `json:"customer_id" binding:"omitempty,gt=0"`
	SandwichID *uint   `json:"sandwich_id" binding:"omitempty,gt=0"`
	ReviewText *string `json:"review_text" binding:"omitempty,max=500"`
	Score      *int    `json:"score"`
}

// Changes returns the column assignments for the fields present in the patch.
func (p *ReviewPatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if p.CustomerID != nil {
		changes["customer_id"] = *p.CustomerID
	}
	if p.SandwichID != nil {
		changes["sandwich_id"] = *p.SandwichID
	}
	if p.ReviewText != nil {
		changes["review_text"] = *p.ReviewText
	}
	if p.Score != nil {
		changes["score"] = *p.Score
	}
	return changes
}

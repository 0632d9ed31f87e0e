package models

// Sandwich is a menu item.
type Sandwich struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	SandwichName string  `gorm:"type:varchar(100);not null" json:"sandwich_name"`
	Price        float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Calories     int     `json:"calories"`
	FoodCategory string  `gorm:"type:varchar(50)" json:"food_category"`
}

type CreateSandwichRequest struct {
	SandwichName string  `json:"sandwich_name" binding:"required,notblank,max=100"`
	Price        float64 `json:"price" binding:"gte=0"`
	Calories     int     `json:"calories" binding:"gte=0"`
	FoodCategory string  `json:"food_category" binding:"max=50"`
}

type SandwichPatch struct {
	SandwichName *string  `json:"sandwich_name" binding:"omitempty,notblank,max=100"`
	Price        *float64 `json:"price" binding:"omitempty,gte=0"`
	Calories     *int     `json:"calories" binding:"omitempty,gte=0"`
	FoodCategory *string  `json:"food_category" binding:"omitempty,max=50"`
}

func (p *SandwichPatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if p.SandwichName != nil {
		changes["sandwich_name"] = *p.SandwichName
	}
	if p.Price != nil {
		changes["price"] = *p.Price
	}
	if p.Calories != nil {
		changes["calories"] = *p.Calories
	}
	if p.FoodCategory != nil {
		changes["food_category"] = *p.FoodCategory
	}
	return changes
}

// Resource is an inventory item consumed by recipes.
type Resource struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Item   string `gorm:"type:varchar(100);not null" json:"item"`
	Amount int    `gorm:"not null;default:0" json:"amount"`
}

type CreateResourceRequest struct {
	Item   string `json:"item" binding:"required,notblank,max=100"`
	Amount int    `json:"amount"`
}

type ResourcePatch struct {
	Item   *string `json:"item" binding:"omitempty,notblank,max=100"`
	Amount *int    `json:"amount"`
}

func (p *ResourcePatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if p.Item != nil {
		changes["item"] = *p.Item
	}
	if p.Amount != nil {
		changes["amount"] = *p.Amount
	}
	return changes
}

// Recipe links a sandwich to the amount of a resource it needs.
// TimeToMake is in minutes.
type Recipe struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SandwichID uint      `gorm:"not null;index" json:"sandwich_id"`
	ResourceID uint      `gorm:"not null;index" json:"resource_id"`
	Amount     int       `gorm:"not null" json:"amount"`
	TimeToMake int       `json:"time_to_make"`
	Sandwich   *Sandwich `gorm:"foreignKey:SandwichID" json:"sandwich,omitempty"`
	Resource   *Resource `gorm:"foreignKey:ResourceID" json:"resource,omitempty"`
}

type CreateRecipeRequest struct {
	SandwichID uint `json:"sandwich_id" binding:"required"`
	ResourceID uint `json:"resource_id" binding:"required"`
	Amount     int  `json:"amount"`
	TimeToMake int  `json:"time_to_make" binding:"gte=0"`
}

type RecipePatch struct {
	SandwichID *uint `json:"sandwich_id" binding:"omitempty,gt=0"`
	ResourceID *uint `json:"resource_id" binding:"omitempty,gt=0"`
	Amount     *int  `json:"amount"`
	TimeToMake *int  `json:"time_to_make" binding:"omitempty,gte=0"`
}

func (p *RecipePatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if p.SandwichID != nil {
		changes["sandwich_id"] = *p.SandwichID
	}
	if p.ResourceID != nil {
		changes["resource_id"] = *p.ResourceID
	}
	if p.Amount != nil {
		changes["amount"] = *p.Amount
	}
	if p.TimeToMake != nil {
		changes["time_to_make"] = *p.TimeToMake
	}
	return changes
}

package models

// Customer is a shop customer. Email is unique across customers.
type Customer struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Email       string `gorm:"type:varchar(100);not null;uniqueIndex:uq_customers_email" json:"email"`
	PhoneNumber string `gorm:"type:varchar(20)" json:"phone_number"`
	Address     string `gorm:"type:varchar(300)" json:"address"`
}

// CreateCustomerRequest is the payload for creating a customer.
type CreateCustomerRequest struct {
	Name        string `json:"name" binding:"required,notblank,max=100"`
	Email       string `json:"email" binding:"required,email,max=100"`
	PhoneNumber string `json:"phone_number" binding:"max=20"`
	Address     string `json:"address" binding:"max=300"`
}

// CustomerPatch carries the customer fields to overwrite; nil fields are left untouched.
type CustomerPatch struct {
	Name        *string `json:"name" binding:"omitempty,notblank,max=100"`
	Email       *string `json:"email" binding:"omitempty,email,max=100"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,max=20"`
	Address     *string `json:"address" binding:"omitempty,max=300"`
}

// Changes returns the column assignments for the fields present in the patch.
func (p *CustomerPatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if p.Name != nil {
		changes["name"] = *p.Name
	}
	if p.Email != nil {
		changes["email"] = *p.Email
	}
	if p.PhoneNumber != nil {
		changes["phone_number"] = *p.PhoneNumber
	}
	if p.Address != nil {
		changes["address"] = *p.Address
	}
	return changes
}

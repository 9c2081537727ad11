package domain

// Account Model
type Account struct {
	ID       uint      `gorm:"primaryKey;autoIncrement:false" json:"account_id"`       // Primary key, supplied by the payment originator
	UserID   uint      `gorm:"index;not null" json:"user_id"`                          // Foreign key to the owning User
	Balance  float64   `gorm:"not null;default:0" json:"balance"`                      // Account balance
	Payments []Payment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // One-to-many relationship with Payment
}

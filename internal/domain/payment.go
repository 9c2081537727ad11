package domain

import "github.com/google/uuid"

// Payment Model
type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"-"`                                      // Primary key
	TransactionID uuid.UUID `gorm:"type:char(36);uniqueIndex;not null" json:"transaction_id"` // Unique identifier of the transaction in the third-party system
	AccountID     uint      `gorm:"index;not null" json:"account_id"`                         // Foreign key to the credited Account
	Amount        float64   `gorm:"not null" json:"amount"`                                   // Amount credited to the account
	Signature     string    `gorm:"not null" json:"-"`                                        // Authenticity token supplied with the payment
	CreatedAt     int64     `gorm:"autoCreateTime:milli" json:"-"`                            // Timestamp of creation in milliseconds
}

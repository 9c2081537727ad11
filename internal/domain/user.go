package domain

// User Model
type User struct {
	ID             uint      `gorm:"primaryKey" json:"user_id"`                              // Primary key
	Email          string    `gorm:"unique;not null" json:"email"`                           // Unique e-mail, also the login name
	FullName       string    `gorm:"not null" json:"full_name"`                              // Full name of the user
	IsAdmin        bool      `gorm:"default:false" json:"is_admin"`                          // Administrator flag
	HashedPassword string    `gorm:"not null" json:"-"`                                      // Bcrypt hash, never serialized
	Accounts       []Account `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // One-to-many relationship with Account
}

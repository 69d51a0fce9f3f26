package domain

import "time"

type User struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	Email         string    `json:"email" gorm:"uniqueIndex;not null"`
	Password      string    `json:"-" gorm:"not null"` // Never return password in JSON
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	WalletAddress string    `json:"wallet_address" gorm:"uniqueIndex;not null"` // stored lowercased
	RefreshToken  string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

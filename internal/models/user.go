package models

import "time"

// User represents a registered account that owns templates, favorites and
// generations.
type User struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Username     string    `json:"username" gorm:"type:varchar(50);uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255);not null"`
	FullName     string    `json:"full_name" gorm:"type:varchar(200);not null"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	OpenAIAPIKey *string   `json:"-" gorm:"type:varchar(255)"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName overrides the table name.
func (User) TableName() string {
	return "users"
}

package models

import "time"

// DefaultCategoryColor is applied when a category is created without an
// explicit color.
const DefaultCategoryColor = "#3B82F6"

// Category groups templates. Categories are global, not per-user, and a
// template references its category weakly (the reference may be absent).
type Category struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
	Description *string   `json:"description,omitempty" gorm:"type:varchar(500)"`
	Color       string    `json:"color" gorm:"type:varchar(7);not null;default:'#3B82F6'"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName overrides the table name.
func (Category) TableName() string {
	return "categories"
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

// PromptTemplate is a reusable prompt body with placeholder parameters.
// Keywords and parameter definitions are stored as JSON columns so their
// order survives a round-trip through the store. Parameter definitions are
// schema-less at this layer; the generation logic interprets them.
type PromptTemplate struct {
	ID          uint                                `json:"id" gorm:"primarykey"`
	Title       string                              `json:"title" gorm:"type:varchar(200);not null"`
	Description *string                             `json:"description,omitempty" gorm:"type:varchar(1000)"`
	Content     string                              `json:"content" gorm:"type:text;not null"`
	Keywords    datatypes.JSONSlice[string]         `json:"keywords"`
	Parameters  datatypes.JSONSlice[map[string]any] `json:"parameters"`
	IsPublic    bool                                `json:"is_public" gorm:"default:false"`
	IsActive    bool                                `json:"is_active" gorm:"default:true"`
	UsageCount  int                                 `json:"usage_count" gorm:"default:0"`
	UserID      uint                                `json:"user_id" gorm:"not null;index"`
	CategoryID  *uint                               `json:"category_id,omitempty" gorm:"index"`
	CreatedAt   time.Time                           `json:"created_at"`
	UpdatedAt   time.Time                           `json:"updated_at"`

	User     *User     `json:"-" gorm:"foreignKey:UserID"`
	Category *Category `json:"-" gorm:"foreignKey:CategoryID"`
}

// TableName overrides the table name.
func (PromptTemplate) TableName() string {
	return "prompt_templates"
}

// UserFavorite marks a template as bookmarked by a user. The (user, template)
// pair is unique: favoriting is a toggle, not a counter.
type UserFavorite struct {
	ID               uint      `json:"id" gorm:"primarykey"`
	UserID           uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_favorites_pair"`
	PromptTemplateID uint      `json:"prompt_template_id" gorm:"not null;uniqueIndex:idx_user_favorites_pair"`
	CreatedAt        time.Time `json:"created_at"`

	User           *User           `json:"-" gorm:"foreignKey:UserID"`
	PromptTemplate *PromptTemplate `json:"-" gorm:"foreignKey:PromptTemplateID"`
}

// TableName overrides the table name.
func (UserFavorite) TableName() string {
	return "user_favorites"
}

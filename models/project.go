package models

import (
	"time"
)

// Project groups a terrace, its support structure and the saved layouts
type Project struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID      string    `json:"user_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text;default:''"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations. User is a pointer so an unloaded owner is omitted from
	// responses instead of serializing as a zero-value object.
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Terraces []Terrace `json:"terraces,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Layouts  []Layout  `json:"layouts,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

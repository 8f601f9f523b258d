package models

import (
	"gorm.io/datatypes"
)

// Terrace is the polygonal surface a structure is built on.
// Vertices and obstacles are opaque JSON documents owned by the
// client-side editor; the server never interprets them.
type Terrace struct {
	ID        string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProjectID string         `json:"project_id" gorm:"type:uuid;not null;index"`
	Name      string         `json:"name" gorm:"default:'Terraza principal'"`
	Vertices  datatypes.JSON `json:"vertices" gorm:"type:jsonb;not null;default:'[]'"`  // [{x, y}, ...] in cm
	Obstacles datatypes.JSON `json:"obstacles" gorm:"type:jsonb;not null;default:'[]'"` // shape descriptors
	WidthCm   float64        `json:"width_cm" gorm:"default:0"`
	HeightCm  float64        `json:"height_cm" gorm:"default:0"`

	// Relations
	Structures []Structure `json:"structures,omitempty" gorm:"foreignKey:TerraceID;constraint:OnDelete:CASCADE"`
}

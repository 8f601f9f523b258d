package models

import (
	"time"

	"gorm.io/datatypes"
)

// Layout is an immutable snapshot of panel placement and canvas state.
// Saving always inserts a new row; the "current" layout is the most
// recently created one. Rows are never updated in place.
type Layout struct {
	ID             string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProjectID      string         `json:"project_id" gorm:"type:uuid;not null;index"`
	Name           string         `json:"name" gorm:"default:'Layout guardado'"`
	PanelPositions datatypes.JSON `json:"panel_positions" gorm:"type:jsonb;not null;default:'[]'"` // [{x, y, rotation, panel_id}, ...]
	CanvasData     datatypes.JSON `json:"canvas_data" gorm:"type:jsonb;default:'{}'"`
	MetadataInfo   datatypes.JSON `json:"metadata_info" gorm:"type:jsonb;default:'{}'"`
	CreatedAt      time.Time      `json:"created_at" gorm:"index"`
}

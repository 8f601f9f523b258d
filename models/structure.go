package models

import (
	"gorm.io/datatypes"
)

// Default structure parameters
const (
	DefaultMaterial    = "Acero S275"
	DefaultBeamProfile = "IPN-80"
	DefaultHeightCm    = 120.0
)

// Structure is the metal beam framework placed on a terrace.
// Beams are an opaque JSON list [{x1,y1,x2,y2,profile}, ...] consumed by
// the client renderer. The inclination beam index range is not validated
// against the beams list here.
type Structure struct {
	ID                   string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	TerraceID            string         `json:"terrace_id" gorm:"type:uuid;not null;index"`
	Name                 string         `json:"name" gorm:"default:'Estructura principal'"`
	Material             string         `json:"material" gorm:"default:'Acero S275'"`
	BeamProfile          string         `json:"beam_profile" gorm:"default:'IPN-80'"`
	Beams                datatypes.JSON `json:"beams" gorm:"type:jsonb;not null;default:'[]'"`
	HeightCm             float64        `json:"height_cm" gorm:"default:120"`
	BeamInclinationDeg   float64        `json:"beam_inclination_deg" gorm:"default:20"`
	InclinationStartBeam int            `json:"inclination_start_beam" gorm:"default:0"`
	InclinationEndBeam   int            `json:"inclination_end_beam" gorm:"default:-1"`
	ShowPostLabels       bool           `json:"show_post_labels" gorm:"default:true"`

	// Relations
	Panels []SolarPanel `json:"panels,omitempty" gorm:"foreignKey:StructureID;constraint:OnDelete:CASCADE"`
}

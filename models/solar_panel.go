package models

// Defaults model a generic 400W panel (99.2 x 165.6 cm)
const (
	DefaultPanelModelName   = "Panel genérico 400W"
	DefaultPanelWidthCm     = 99.2
	DefaultPanelHeightCm    = 165.6
	DefaultPanelDepthCm     = 3.5
	DefaultPanelWeightKg    = 21.0
	DefaultPanelPowerW      = 400
	DefaultPanelInclination = 20.0
)

// SolarPanel is a panel type/model attached to a structure, with a quantity
type SolarPanel struct {
	ID             string  `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StructureID    string  `json:"structure_id" gorm:"type:uuid;not null;index"`
	ModelName      string  `json:"model_name" gorm:"default:'Panel genérico 400W'"`
	WidthCm        float64 `json:"width_cm" gorm:"default:99.2"`
	HeightCm       float64 `json:"height_cm" gorm:"default:165.6"`
	DepthCm        float64 `json:"depth_cm" gorm:"default:3.5"`
	WeightKg       float64 `json:"weight_kg" gorm:"default:21"`
	PowerW         int     `json:"power_w" gorm:"default:400"`
	InclinationDeg float64 `json:"inclination_deg" gorm:"default:20"`
	Quantity       int     `json:"quantity" gorm:"default:1"`
}

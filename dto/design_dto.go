package dto

import (
	"gorm.io/datatypes"
)

// UpdateTerraceRequest carries a partial terrace update. Fields left nil
// are not touched; a value that does not coerce to the declared type
// fails the JSON bind and aborts the whole request.
type UpdateTerraceRequest struct {
	Name      *string         `json:"name"`
	Vertices  *datatypes.JSON `json:"vertices"`
	Obstacles *datatypes.JSON `json:"obstacles"`
	WidthCm   *float64        `json:"width_cm"`
	HeightCm  *float64        `json:"height_cm"`
}

// TerraceResponse is the full terrace snapshot
type TerraceResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Vertices  datatypes.JSON `json:"vertices"`
	Obstacles datatypes.JSON `json:"obstacles"`
	WidthCm   float64        `json:"width_cm"`
	HeightCm  float64        `json:"height_cm"`
}

// UpdateStructureRequest carries a partial structure update
type UpdateStructureRequest struct {
	Material             *string         `json:"material"`
	BeamProfile          *string         `json:"beam_profile"`
	Beams                *datatypes.JSON `json:"beams"`
	HeightCm             *float64        `json:"height_cm"`
	BeamInclinationDeg   *float64        `json:"beam_inclination_deg"`
	InclinationStartBeam *int            `json:"inclination_start_beam"`
	InclinationEndBeam   *int            `json:"inclination_end_beam"`
	ShowPostLabels       *bool           `json:"show_post_labels"`
}

// StructureResponse is the full structure snapshot
type StructureResponse struct {
	ID                   string         `json:"id"`
	Name                 string         `json:"name"`
	Material             string         `json:"material"`
	BeamProfile          string         `json:"beam_profile"`
	Beams                datatypes.JSON `json:"beams"`
	HeightCm             float64        `json:"height_cm"`
	BeamInclinationDeg   float64        `json:"beam_inclination_deg"`
	InclinationStartBeam int            `json:"inclination_start_beam"`
	InclinationEndBeam   int            `json:"inclination_end_beam"`
	ShowPostLabels       bool           `json:"show_post_labels"`
}

// CreatePanelRequest adds a panel type to the project's structure.
// Omitted fields fall back to the generic 400W panel defaults.
type CreatePanelRequest struct {
	ModelName      *string  `json:"model_name"`
	WidthCm        *float64 `json:"width_cm"`
	HeightCm       *float64 `json:"height_cm"`
	DepthCm        *float64 `json:"depth_cm"`
	WeightKg       *float64 `json:"weight_kg"`
	PowerW         *int     `json:"power_w"`
	InclinationDeg *float64 `json:"inclination_deg"`
	Quantity       *int     `json:"quantity"`
}

// PanelResponse is a single panel entry in the panel list
type PanelResponse struct {
	ID             string  `json:"id"`
	ModelName      string  `json:"model_name"`
	WidthCm        float64 `json:"width_cm"`
	HeightCm       float64 `json:"height_cm"`
	PowerW         int     `json:"power_w"`
	InclinationDeg float64 `json:"inclination_deg"`
	Quantity       int     `json:"quantity"`
	WeightKg       float64 `json:"weight_kg"`
}

// PanelListResponse wraps the panel list
type PanelListResponse struct {
	Panels []PanelResponse `json:"panels"`
}

// SaveLayoutRequest saves a new layout snapshot (always a new row)
type SaveLayoutRequest struct {
	Name           *string         `json:"name"`
	PanelPositions *datatypes.JSON `json:"panel_positions"`
	CanvasData     *datatypes.JSON `json:"canvas_data"`
	MetadataInfo   *datatypes.JSON `json:"metadata_info"`
}

// LayoutResponse is the latest layout snapshot. When no layout has been
// saved yet the handler returns the empty sentinel instead: id and name
// omitted, empty positions, empty objects.
type LayoutResponse struct {
	ID             string         `json:"id,omitempty"`
	Name           string         `json:"name,omitempty"`
	PanelPositions datatypes.JSON `json:"panel_positions"`
	CanvasData     datatypes.JSON `json:"canvas_data"`
	MetadataInfo   datatypes.JSON `json:"metadata_info"`
}

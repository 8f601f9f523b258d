package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/solarplanner-api/dto"
	"github.com/solarplanner-api/services"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DesignController serves the geometry documents consumed by the
// client-side canvas/3D editor: terrace, structure, panels and layouts.
// Responses follow the editor's wire contract: snapshots are returned
// flat and writes acknowledge with {status, id}.
type DesignController struct {
	designService *services.DesignService
}

// NewDesignController creates a new design controller
func NewDesignController(designService *services.DesignService) *DesignController {
	return &DesignController{designService: designService}
}

// identity pulls the caller's user id out of the request context
func identity(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return "", false
	}
	return userID.(string), true
}

// notFoundOr500 maps the collapsed not-found/forbidden outcome to 404
// and everything else to a generic server failure. Storage error text
// never reaches the client.
func notFoundOr500(c *gin.Context, err error, resource string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// GetTerrace returns the terrace snapshot of the project
func (dc *DesignController) GetTerrace(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}

	terrace, err := dc.designService.GetTerrace(c.Param("id"), userID)
	if err != nil {
		notFoundOr500(c, err, "terrace")
		return
	}

	c.JSON(http.StatusOK, dto.TerraceResponse{
		ID:        terrace.ID,
		Name:      terrace.Name,
		Vertices:  emptyArrayIfNil(terrace.Vertices),
		Obstacles: emptyArrayIfNil(terrace.Obstacles),
		WidthCm:   terrace.WidthCm,
		HeightCm:  terrace.HeightCm,
	})
}

// UpdateTerrace applies a partial terrace update. A body that fails to
// bind (e.g. a non-numeric width_cm) aborts the request before anything
// is written.
func (dc *DesignController) UpdateTerrace(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}

	var req dto.UpdateTerraceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	terrace, err := dc.designService.UpdateTerrace(c.Param("id"), userID, req)
	if err != nil {
		notFoundOr500(c, err, "terrace")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "id": terrace.ID})
}

// GetStructure returns the structure snapshot of the project
func (dc *DesignController) GetStructure(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}

	structure, err := dc.designService.GetStructure(c.Param("id"), userID)
	if err != nil {
		notFoundOr500(c, err, "structure")
		return
	}

	c.JSON(http.StatusOK, dto.StructureResponse{
		ID:                   structure.ID,
		Name:                 structure.Name,
		Material:             structure.Material,
		BeamProfile:          structure.BeamProfile,
		Beams:                emptyArrayIfNil(structure.Beams),
		HeightCm:             structure.HeightCm,
		BeamInclinationDeg:   structure.BeamInclinationDeg,
		InclinationStartBeam: structure.InclinationStartBeam,
		InclinationEndBeam:   structure.InclinationEndBeam,
		ShowPostLabels:       structure.ShowPostLabels,
	})
}

// UpdateStructure applies a partial structure update
func (dc *DesignController) UpdateStructure(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}

	var req dto.UpdateStructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	structure, err := dc.designService.UpdateStructure(c.Param("id"), userID, req)
	if err != nil {
		notFoundOr500(c, err, "structure")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "id": structure.ID})
}

// ListPanels returns all panels of the project's structure
func (dc *DesignController) ListPanels(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}

	panels, err := dc.designService.ListPanels(c.Param("id"), userID)
	if err != nil {
		notFoundOr500(c, err, "project")
		return
	}

	response := dto.PanelListResponse{Panels: make([]dto.PanelResponse, 0, len(panels))}
	for _, p := range panels {
		response.Panels = append(response.Panels, dto.PanelResponse{
			ID:             p.ID,
			ModelName:      p.ModelName,
			WidthCm:        p.WidthCm,
			HeightCm:       p.HeightCm,
			PowerW:         p.PowerW,
			InclinationDeg: p.InclinationDeg,
			Quantity:       p.Quantity,
			WeightKg:       p.WeightKg,
		})
	}

	c.JSON(http.StatusOK, response)
}

// AddPanel appends a new panel type, applying defaults for omitted fields
func (dc *DesignController) AddPanel(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}

	var req dto.CreatePanelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	panel, err := dc.designService.AddPanel(c.Param("id"), userID, req)
	if err != nil {
		notFoundOr500(c, err, "structure")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "ok", "id": panel.ID})
}

// GetLayout returns the latest saved layout, or the empty sentinel
// document when the project has no layout yet
func (dc *DesignController) GetLayout(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}

	layout, err := dc.designService.GetLatestLayout(c.Param("id"), userID)
	if err != nil {
		notFoundOr500(c, err, "project")
		return
	}

	// No layout saved yet: answer with the empty sentinel, not an error
	if layout == nil {
		c.JSON(http.StatusOK, dto.LayoutResponse{
			PanelPositions: datatypes.JSON([]byte("[]")),
			CanvasData:     datatypes.JSON([]byte("{}")),
			MetadataInfo:   datatypes.JSON([]byte("{}")),
		})
		return
	}

	c.JSON(http.StatusOK, dto.LayoutResponse{
		ID:             layout.ID,
		Name:           layout.Name,
		PanelPositions: emptyArrayIfNil(layout.PanelPositions),
		CanvasData:     emptyObjectIfNil(layout.CanvasData),
		MetadataInfo:   emptyObjectIfNil(layout.MetadataInfo),
	})
}

// SaveLayout stores a new layout snapshot; every save creates a new row
func (dc *DesignController) SaveLayout(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}

	var req dto.SaveLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	layout, err := dc.designService.SaveLayout(c.Param("id"), userID, req)
	if err != nil {
		notFoundOr500(c, err, "project")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "ok", "id": layout.ID})
}

func emptyArrayIfNil(doc datatypes.JSON) datatypes.JSON {
	if len(doc) == 0 {
		return datatypes.JSON([]byte("[]"))
	}
	return doc
}

func emptyObjectIfNil(doc datatypes.JSON) datatypes.JSON {
	if len(doc) == 0 {
		return datatypes.JSON([]byte("{}"))
	}
	return doc
}

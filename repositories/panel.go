package repositories

import (
	"github.com/solarplanner-api/models"
	"gorm.io/gorm"
)

// PanelRepository handles database operations for solar panels
type PanelRepository struct {
	db *gorm.DB
}

// NewPanelRepository creates a new panel repository instance
func NewPanelRepository(db *gorm.DB) *PanelRepository {
	return &PanelRepository{db: db}
}

// FindByStructureID retrieves all panels attached to a structure
func (r *PanelRepository) FindByStructureID(structureID string) ([]models.SolarPanel, error) {
	var panels []models.SolarPanel
	result := r.db.Where("structure_id = ?", structureID).Order("id").Find(&panels)
	return panels, result.Error
}

// Create inserts a new panel row
func (r *PanelRepository) Create(panel models.SolarPanel) (models.SolarPanel, error) {
	result := r.db.Create(&panel)
	return panel, result.Error
}

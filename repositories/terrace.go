package repositories

import (
	"github.com/solarplanner-api/models"
	"gorm.io/gorm"
)

// TerraceRepository handles database operations for terraces
type TerraceRepository struct {
	db *gorm.DB
}

// NewTerraceRepository creates a new terrace repository instance
func NewTerraceRepository(db *gorm.DB) *TerraceRepository {
	return &TerraceRepository{db: db}
}

// FindByProjectID retrieves the terrace of a project. Projects carry
// exactly one terrace by construction, but absence is tolerated and
// surfaces as ErrRecordNotFound.
func (r *TerraceRepository) FindByProjectID(projectID string) (models.Terrace, error) {
	var terrace models.Terrace
	result := r.db.First(&terrace, "project_id = ?", projectID)
	return terrace, result.Error
}

// Updates applies the given column set to a terrace
func (r *TerraceRepository) Updates(id string, columns map[string]interface{}) error {
	result := r.db.Model(&models.Terrace{}).Where("id = ?", id).Updates(columns)
	return result.Error
}

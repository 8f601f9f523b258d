package repositories

import (
	"github.com/solarplanner-api/models"
	"gorm.io/gorm"
)

// StructureRepository handles database operations for structures
type StructureRepository struct {
	db *gorm.DB
}

// NewStructureRepository creates a new structure repository instance
func NewStructureRepository(db *gorm.DB) *StructureRepository {
	return &StructureRepository{db: db}
}

// FindByProjectID retrieves the structure belonging to a project's terrace
func (r *StructureRepository) FindByProjectID(projectID string) (models.Structure, error) {
	var structure models.Structure
	result := r.db.Where(
		"terrace_id IN (?)",
		r.db.Model(&models.Terrace{}).Select("id").Where("project_id = ?", projectID),
	).First(&structure)
	return structure, result.Error
}

// Updates applies the given column set to a structure
func (r *StructureRepository) Updates(id string, columns map[string]interface{}) error {
	result := r.db.Model(&models.Structure{}).Where("id = ?", id).Updates(columns)
	return result.Error
}

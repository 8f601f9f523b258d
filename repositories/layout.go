package repositories

import (
	"github.com/solarplanner-api/models"
	"gorm.io/gorm"
)

// LayoutRepository handles database operations for layout snapshots
type LayoutRepository struct {
	db *gorm.DB
}

// NewLayoutRepository creates a new layout repository instance
func NewLayoutRepository(db *gorm.DB) *LayoutRepository {
	return &LayoutRepository{db: db}
}

// FindLatestByProjectID retrieves the most recently saved layout.
// The id tiebreak keeps "latest" stable when two saves land on the
// same timestamp.
func (r *LayoutRepository) FindLatestByProjectID(projectID string) (models.Layout, error) {
	var layout models.Layout
	result := r.db.Where("project_id = ?", projectID).
		Order("created_at DESC, id DESC").
		First(&layout)
	return layout, result.Error
}

// Create inserts a new layout row. Layouts are append-only: saves never
// update an existing row.
func (r *LayoutRepository) Create(layout models.Layout) (models.Layout, error) {
	result := r.db.Create(&layout)
	return layout, result.Error
}

// CountByProjectID counts the saved layouts of a project
func (r *LayoutRepository) CountByProjectID(projectID string) (int64, error) {
	var count int64
	result := r.db.Model(&models.Layout{}).Where("project_id = ?", projectID).Count(&count)
	return count, result.Error
}

package repositories

import (
	"github.com/google/uuid"
	"github.com/solarplanner-api/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// FindOwned retrieves a project by ID scoped to its owner. A project that
// belongs to another user yields the same ErrRecordNotFound as a missing
// one; callers never learn which it was. Ids that are not valid uuids
// take the same path instead of reaching the uuid column and failing as
// a storage error.
func (r *ProjectRepository) FindOwned(id, userID string) (models.Project, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Project{}, gorm.ErrRecordNotFound
	}

	var project models.Project
	result := r.db.First(&project, "id = ? AND user_id = ?", id, userID)
	return project, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := r.db.Create(&project)
	return project, result.Error
}

// Update modifies an existing project
func (r *ProjectRepository) Update(project models.Project) error {
	result := r.db.Save(&project)
	return result.Error
}

// Delete removes a project and everything it owns in one transaction:
// layouts, panels, structures, terraces, then the project row itself.
// All deletes are hard; nothing is soft-deleted.
func (r *ProjectRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Layout{}).Error; err != nil {
			return err
		}
		if err := tx.Where(
			"structure_id IN (?)",
			tx.Model(&models.Structure{}).Select("id").Where(
				"terrace_id IN (?)",
				tx.Model(&models.Terrace{}).Select("id").Where("project_id = ?", id),
			),
		).Delete(&models.SolarPanel{}).Error; err != nil {
			return err
		}
		if err := tx.Where(
			"terrace_id IN (?)",
			tx.Model(&models.Terrace{}).Select("id").Where("project_id = ?", id),
		).Delete(&models.Structure{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Terrace{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Project{}, "id = ?", id)
		return result.Error
	})
}

// DB returns the database instance, used when a service needs its own transaction
func (r *ProjectRepository) DB() *gorm.DB {
	return r.db
}

// FindWithPagination retrieves the user's projects with pagination, filtering and sorting
func (r *ProjectRepository) FindWithPagination(
	page, pageSize int,
	sortBy, sortOrder string,
	userID string,
	search string) ([]models.Project, int64, error) {

	var projects []models.Project
	var totalCount int64

	db := r.db.Model(&models.Project{}).Where("user_id = ?", userID)

	// Search functionality
	if search != "" {
		searchPattern := "%" + search + "%"
		db = db.Where("(name ILIKE ? OR description ILIKE ?)", searchPattern, searchPattern)
	}

	// Count total records (with the same filter)
	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	// Calculate offset for pagination
	offset := (page - 1) * pageSize

	// Sort and paginate
	orderString := sortBy + " " + sortOrder
	if err := db.Order(orderString).Limit(pageSize).Offset(offset).Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, totalCount, nil
}

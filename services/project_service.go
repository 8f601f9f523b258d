package services

import (
	"github.com/solarplanner-api/dto"
	"github.com/solarplanner-api/models"
	"github.com/solarplanner-api/repositories"
	"gorm.io/datatypes"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
}

// NewProjectService creates a new project service instance
func NewProjectService(projectRepo *repositories.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// GetOwnedProject retrieves a project only if the given user owns it.
// A project owned by someone else is reported exactly like a missing
// one; callers cannot tell "forbidden" from "not found".
func (s *ProjectService) GetOwnedProject(projectID, userID string) (models.Project, error) {
	return s.projectRepo.FindOwned(projectID, userID)
}

// ListProjects retrieves the user's projects with pagination, filtering and sorting
func (s *ProjectService) ListProjects(filter dto.ProjectFilter) (dto.ProjectListResponse, error) {
	var response dto.ProjectListResponse

	// Set defaults if not provided
	if filter.Page <= 0 {
		filter.Page = 1
	}

	if filter.PageSize <= 0 {
		filter.PageSize = 10
	}

	if filter.SortBy == "" {
		filter.SortBy = "updated_at"
	}

	if filter.SortOrder == "" {
		filter.SortOrder = "desc"
	}

	// Validate sort order
	if filter.SortOrder != "asc" && filter.SortOrder != "desc" {
		filter.SortOrder = "desc"
	}

	// Valid sort columns (whitelist approach for security)
	validSortColumns := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"name":       true,
	}

	if !validSortColumns[filter.SortBy] {
		filter.SortBy = "updated_at"
	}

	projects, totalCount, err := s.projectRepo.FindWithPagination(
		filter.Page,
		filter.PageSize,
		filter.SortBy,
		filter.SortOrder,
		filter.UserID,
		filter.Search,
	)

	if err != nil {
		return response, err
	}

	// Calculate total pages
	totalPages := int(totalCount) / filter.PageSize
	if int(totalCount)%filter.PageSize > 0 {
		totalPages++
	}

	response = dto.ProjectListResponse{
		Projects:   projects,
		TotalCount: totalCount,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}

	return response, nil
}

// CreateProject creates a new project together with its empty terrace and
// structure. All three rows are created in one transaction so a project
// is never observable without its terrace/structure chain.
func (s *ProjectService) CreateProject(project models.Project) (models.Project, error) {
	db := s.projectRepo.DB().Begin()
	defer func() {
		if r := recover(); r != nil {
			db.Rollback()
		}
	}()

	// Create project
	if err := db.Create(&project).Error; err != nil {
		db.Rollback()
		return project, err
	}

	// Create empty terrace
	terrace := models.Terrace{
		ProjectID: project.ID,
		Name:      "Terraza principal",
		Vertices:  datatypes.JSON([]byte("[]")),
		Obstacles: datatypes.JSON([]byte("[]")),
	}

	if err := db.Create(&terrace).Error; err != nil {
		db.Rollback()
		return project, err
	}

	// Create empty structure
	structure := models.Structure{
		TerraceID:            terrace.ID,
		Name:                 "Estructura principal",
		Material:             models.DefaultMaterial,
		BeamProfile:          models.DefaultBeamProfile,
		Beams:                datatypes.JSON([]byte("[]")),
		HeightCm:             models.DefaultHeightCm,
		BeamInclinationDeg:   20.0,
		InclinationStartBeam: 0,
		InclinationEndBeam:   -1,
		ShowPostLabels:       true,
	}

	if err := db.Create(&structure).Error; err != nil {
		db.Rollback()
		return project, err
	}

	// Commit the transaction
	if err := db.Commit().Error; err != nil {
		return project, err
	}

	return project, nil
}

// UpdateProject updates an existing project's name and description
func (s *ProjectService) UpdateProject(projectID, userID string, req dto.UpdateProjectRequest) (models.Project, error) {
	project, err := s.projectRepo.FindOwned(projectID, userID)
	if err != nil {
		return models.Project{}, err
	}

	project.Name = req.Name
	project.Description = req.Description

	if err := s.projectRepo.Update(project); err != nil {
		return models.Project{}, err
	}

	return project, nil
}

// DeleteProject removes a project and cascades the delete to its
// terraces, structures, panels and layouts
func (s *ProjectService) DeleteProject(projectID, userID string) error {
	project, err := s.projectRepo.FindOwned(projectID, userID)
	if err != nil {
		return err
	}

	return s.projectRepo.Delete(project.ID)
}

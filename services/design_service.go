package services

import (
	"errors"

	"github.com/solarplanner-api/dto"
	"github.com/solarplanner-api/models"
	"github.com/solarplanner-api/repositories"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DesignService handles the geometry documents of a project: the terrace,
// its structure, the panel list and the saved layouts. Every operation
// checks project ownership first; a foreign or missing project surfaces
// as gorm.ErrRecordNotFound.
type DesignService struct {
	projectRepo   *repositories.ProjectRepository
	terraceRepo   *repositories.TerraceRepository
	structureRepo *repositories.StructureRepository
	panelRepo     *repositories.PanelRepository
	layoutRepo    *repositories.LayoutRepository
}

// NewDesignService creates a new design service instance
func NewDesignService(
	projectRepo *repositories.ProjectRepository,
	terraceRepo *repositories.TerraceRepository,
	structureRepo *repositories.StructureRepository,
	panelRepo *repositories.PanelRepository,
	layoutRepo *repositories.LayoutRepository,
) *DesignService {
	return &DesignService{
		projectRepo:   projectRepo,
		terraceRepo:   terraceRepo,
		structureRepo: structureRepo,
		panelRepo:     panelRepo,
		layoutRepo:    layoutRepo,
	}
}

// GetTerrace returns the terrace of an owned project
func (s *DesignService) GetTerrace(projectID, userID string) (models.Terrace, error) {
	project, err := s.projectRepo.FindOwned(projectID, userID)
	if err != nil {
		return models.Terrace{}, err
	}
	return s.terraceRepo.FindByProjectID(project.ID)
}

// UpdateTerrace applies a partial update to the terrace. Only fields
// present in the request are written; the rest keep their values.
func (s *DesignService) UpdateTerrace(projectID, userID string, req dto.UpdateTerraceRequest) (models.Terrace, error) {
	terrace, err := s.GetTerrace(projectID, userID)
	if err != nil {
		return models.Terrace{}, err
	}

	columns := map[string]interface{}{}
	if req.Name != nil {
		columns["name"] = *req.Name
	}
	if req.Vertices != nil {
		columns["vertices"] = *req.Vertices
	}
	if req.Obstacles != nil {
		columns["obstacles"] = *req.Obstacles
	}
	if req.WidthCm != nil {
		columns["width_cm"] = *req.WidthCm
	}
	if req.HeightCm != nil {
		columns["height_cm"] = *req.HeightCm
	}

	if len(columns) > 0 {
		if err := s.terraceRepo.Updates(terrace.ID, columns); err != nil {
			return models.Terrace{}, err
		}
	}

	return terrace, nil
}

// GetStructure returns the structure of an owned project
func (s *DesignService) GetStructure(projectID, userID string) (models.Structure, error) {
	project, err := s.projectRepo.FindOwned(projectID, userID)
	if err != nil {
		return models.Structure{}, err
	}
	return s.structureRepo.FindByProjectID(project.ID)
}

// UpdateStructure applies a partial update to the structure
func (s *DesignService) UpdateStructure(projectID, userID string, req dto.UpdateStructureRequest) (models.Structure, error) {
	structure, err := s.GetStructure(projectID, userID)
	if err != nil {
		return models.Structure{}, err
	}

	columns := map[string]interface{}{}
	if req.Material != nil {
		columns["material"] = *req.Material
	}
	if req.BeamProfile != nil {
		columns["beam_profile"] = *req.BeamProfile
	}
	if req.Beams != nil {
		columns["beams"] = *req.Beams
	}
	if req.HeightCm != nil {
		columns["height_cm"] = *req.HeightCm
	}
	if req.BeamInclinationDeg != nil {
		columns["beam_inclination_deg"] = *req.BeamInclinationDeg
	}
	if req.InclinationStartBeam != nil {
		columns["inclination_start_beam"] = *req.InclinationStartBeam
	}
	if req.InclinationEndBeam != nil {
		columns["inclination_end_beam"] = *req.InclinationEndBeam
	}
	if req.ShowPostLabels != nil {
		columns["show_post_labels"] = *req.ShowPostLabels
	}

	if len(columns) > 0 {
		if err := s.structureRepo.Updates(structure.ID, columns); err != nil {
			return models.Structure{}, err
		}
	}

	return structure, nil
}

// ListPanels returns all panels of the project's structure. A project
// without a structure yields an empty list, not an error.
func (s *DesignService) ListPanels(projectID, userID string) ([]models.SolarPanel, error) {
	project, err := s.projectRepo.FindOwned(projectID, userID)
	if err != nil {
		return nil, err
	}

	structure, err := s.structureRepo.FindByProjectID(project.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.SolarPanel{}, nil
		}
		return nil, err
	}

	return s.panelRepo.FindByStructureID(structure.ID)
}

// AddPanel appends a new panel type to the project's structure, filling
// defaults for any omitted field
func (s *DesignService) AddPanel(projectID, userID string, req dto.CreatePanelRequest) (models.SolarPanel, error) {
	structure, err := s.GetStructure(projectID, userID)
	if err != nil {
		return models.SolarPanel{}, err
	}

	panel := models.SolarPanel{
		StructureID:    structure.ID,
		ModelName:      models.DefaultPanelModelName,
		WidthCm:        models.DefaultPanelWidthCm,
		HeightCm:       models.DefaultPanelHeightCm,
		DepthCm:        models.DefaultPanelDepthCm,
		WeightKg:       models.DefaultPanelWeightKg,
		PowerW:         models.DefaultPanelPowerW,
		InclinationDeg: models.DefaultPanelInclination,
		Quantity:       1,
	}

	if req.ModelName != nil {
		panel.ModelName = *req.ModelName
	}
	if req.WidthCm != nil {
		panel.WidthCm = *req.WidthCm
	}
	if req.HeightCm != nil {
		panel.HeightCm = *req.HeightCm
	}
	if req.DepthCm != nil {
		panel.DepthCm = *req.DepthCm
	}
	if req.WeightKg != nil {
		panel.WeightKg = *req.WeightKg
	}
	if req.PowerW != nil {
		panel.PowerW = *req.PowerW
	}
	if req.InclinationDeg != nil {
		panel.InclinationDeg = *req.InclinationDeg
	}
	if req.Quantity != nil {
		panel.Quantity = *req.Quantity
	}

	return s.panelRepo.Create(panel)
}

// GetLatestLayout returns the most recently saved layout of the project.
// A nil layout with a nil error means the project exists but has no
// layout yet; the handler answers with the empty sentinel document.
func (s *DesignService) GetLatestLayout(projectID, userID string) (*models.Layout, error) {
	project, err := s.projectRepo.FindOwned(projectID, userID)
	if err != nil {
		return nil, err
	}

	layout, err := s.layoutRepo.FindLatestByProjectID(project.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &layout, nil
}

// SaveLayout inserts a new layout snapshot. Every save is a new row;
// earlier snapshots are kept as implicit version history.
func (s *DesignService) SaveLayout(projectID, userID string, req dto.SaveLayoutRequest) (models.Layout, error) {
	project, err := s.projectRepo.FindOwned(projectID, userID)
	if err != nil {
		return models.Layout{}, err
	}

	layout := models.Layout{
		ProjectID:      project.ID,
		Name:           "Layout guardado",
		PanelPositions: datatypes.JSON([]byte("[]")),
		CanvasData:     datatypes.JSON([]byte("{}")),
		MetadataInfo:   datatypes.JSON([]byte("{}")),
	}

	if req.Name != nil {
		layout.Name = *req.Name
	}
	if req.PanelPositions != nil {
		layout.PanelPositions = *req.PanelPositions
	}
	if req.CanvasData != nil {
		layout.CanvasData = *req.CanvasData
	}
	if req.MetadataInfo != nil {
		layout.MetadataInfo = *req.MetadataInfo
	}

	return s.layoutRepo.Create(layout)
}

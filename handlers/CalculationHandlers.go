package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/models"
	"backend/services"
	"backend/storage"
	"backend/utils"
)

// configFromRequest overlays request fields on the default config.
func configFromRequest(req models.CalculateRequest) services.CalculationConfig {
	config := services.DefaultCalculationConfig()
	if req.QualityTier != nil {
		config.QualityTier = *req.QualityTier
	}
	if req.IncludeWaste != nil {
		config.IncludeWaste = *req.IncludeWaste
	}
	if req.StudSpacing != nil {
		config.StudSpacing = *req.StudSpacing
	}
	return config
}

func summarize(results []services.CalculationResult) []models.CalculationSummary {
	summaries := make([]models.CalculationSummary, 0, len(results))
	for _, r := range results {
		summaries = append(summaries, models.CalculationSummary{
			Description: r.Description,
			TotalCost:   r.TotalCost,
			CostPerSqft: r.CostPerSqft,
			ItemCount:   len(r.Materials.Items),
			Notes:       r.Notes,
		})
	}
	return summaries
}

// CalculateProjectMaterials godoc
// @Summary      Calculate a material estimate for a project
// @Tags         calculations
// @Accept       json
// @Produce      json
// @Param        project_id  path      string                  true  "Project ID"
// @Param        body        body      models.CalculateRequest true  "Options"
// @Success      200         {object}  models.APIResponse
// @Router       /api/v1/projects/{project_id}/calculate [post]
func CalculateProjectMaterials(store storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CalculateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		if req.StudSpacing != nil && *req.StudSpacing <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "stud_spacing must be positive")
			return
		}

		project, err := store.Get(c.Param("project_id"))
		if err != nil {
			utils.JSONError(c, http.StatusOK, "Project not found")
			return
		}

		config := configFromRequest(req)
		results := services.CalculateProject(project, config)

		totalCost := services.TotalProjectCost(results)
		totalSqft := project.TotalLivingArea().Value()
		costPerSqft := 0.0
		if totalSqft > 0 {
			costPerSqft = totalCost / totalSqft
		}

		utils.JSONSuccess(c, http.StatusOK, models.ProjectEstimate{
			ProjectID:   project.ID,
			ProjectName: project.Name,
			QualityTier: config.QualityTier,
			TotalCost:   totalCost,
			TotalSqft:   totalSqft,
			CostPerSqft: costPerSqft,
			Categories:  summarize(results),
		})
	}
}

// CalculateFloorMaterials godoc
// @Summary      Calculate a material estimate for one floor
// @Tags         calculations
// @Accept       json
// @Produce      json
// @Param        project_id  path      string                  true  "Project ID"
// @Param        floor_id    path      string                  true  "Floor ID"
// @Param        body        body      models.CalculateRequest true  "Options"
// @Success      200         {object}  models.APIResponse
// @Router       /api/v1/projects/{project_id}/floors/{floor_id}/calculate [post]
func CalculateFloorMaterials(store storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CalculateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		if req.StudSpacing != nil && *req.StudSpacing <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "stud_spacing must be positive")
			return
		}

		project, err := store.Get(c.Param("project_id"))
		if err != nil {
			utils.JSONError(c, http.StatusOK, "Project not found")
			return
		}

		floor := project.GetFloorPlan(c.Param("floor_id"))
		if floor == nil {
			utils.JSONError(c, http.StatusOK, "Floor plan not found")
			return
		}

		config := configFromRequest(req)
		results := services.CalculateFloorPlan(*floor, config)

		totalCost := services.TotalProjectCost(results)
		totalSqft := floor.TotalLivingArea().Value()
		costPerSqft := 0.0
		if totalSqft > 0 {
			costPerSqft = totalCost / totalSqft
		}

		utils.JSONSuccess(c, http.StatusOK, models.FloorEstimate{
			FloorID:     floor.ID,
			FloorName:   floor.Name,
			QualityTier: config.QualityTier,
			TotalCost:   totalCost,
			TotalSqft:   totalSqft,
			CostPerSqft: costPerSqft,
			Categories:  summarize(results),
		})
	}
}

package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/models"
	"backend/storage"
	"backend/utils"
)

// AddFloorPlan godoc
// @Summary      Add a floor plan to a project
// @Tags         floors
// @Accept       json
// @Produce      json
// @Param        project_id  path      string                        true  "Project ID"
// @Param        body        body      models.CreateFloorPlanRequest true  "Floor plan"
// @Success      201         {object}  models.APIResponse
// @Failure      404         {object}  models.APIResponse
// @Router       /api/v1/projects/{project_id}/floors [post]
func AddFloorPlan(store storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateFloorPlanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}

		floorPlan := models.NewFloorPlan(req.Name)
		if req.Level != nil {
			floorPlan.Level = *req.Level
		}

		_, err := store.Update(c.Param("project_id"), func(p *models.Project) error {
			p.AddFloorPlan(floorPlan)
			return nil
		})
		if err != nil {
			utils.JSONError(c, http.StatusNotFound, "Project not found")
			return
		}

		utils.JSONSuccess(c, http.StatusCreated, floorPlan)
	}
}

// GetFloorPlans godoc
// @Summary      Get floor plans for a project
// @Tags         floors
// @Produce      json
// @Param        project_id  path      string  true  "Project ID"
// @Success      200         {object}  models.APIResponse
// @Router       /api/v1/projects/{project_id}/floors [get]
func GetFloorPlans(store storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, err := store.Get(c.Param("project_id"))
		if err != nil {
			utils.JSONError(c, http.StatusOK, "Project not found")
			return
		}
		utils.JSONSuccess(c, http.StatusOK, project.FloorPlans)
	}
}

// ImportFloorPlan godoc
// @Summary      Import a floor plan from a JSON definition
// @Tags         floors
// @Accept       json
// @Produce      json
// @Param        project_id  path      string  true  "Project ID"
// @Param        body        body      object  true  "Floor plan definition"
// @Success      201         {object}  models.APIResponse
// @Failure      400         {object}  models.APIResponse
// @Failure      404         {object}  models.APIResponse
// @Router       /api/v1/projects/{project_id}/floors/import [post]
func ImportFloorPlan(store storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}

		def, err := models.ParseFloorPlanDefinition(body)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}

		floorPlan, warnings := def.ToFloorPlan()

		_, err = store.Update(c.Param("project_id"), func(p *models.Project) error {
			p.AddFloorPlan(floorPlan)
			return nil
		})
		if err != nil {
			utils.JSONError(c, http.StatusNotFound, "Project not found")
			return
		}

		utils.JSONSuccess(c, http.StatusCreated, models.ImportedFloorPlan{
			FloorPlan: floorPlan,
			Warnings:  warnings,
		})
	}
}

// ExampleFloorPlanDefinition godoc
// @Summary      Get an example floor plan definition
// @Tags         floors
// @Produce      json
// @Success      200  {object}  object
// @Router       /api/v1/floorplans/example [get]
func ExampleFloorPlanDefinition() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(models.ExampleFloorPlanJSON()))
	}
}

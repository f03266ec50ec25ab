package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/models"
	"backend/storage"
	"backend/utils"
)

// AddWall godoc
// @Summary      Add a wall to a floor plan
// @Tags         walls
// @Accept       json
// @Produce      json
// @Param        project_id  path      string                   true  "Project ID"
// @Param        floor_id    path      string                   true  "Floor ID"
// @Param        body        body      models.CreateWallRequest true  "Wall"
// @Success      201         {object}  models.APIResponse
// @Failure      404         {object}  models.APIResponse
// @Router       /api/v1/projects/{project_id}/floors/{floor_id}/walls [post]
func AddWall(store storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateWallRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}

		wall := models.NewWall(req.WallType,
			models.NewPoint(req.StartX, req.StartY),
			models.NewPoint(req.EndX, req.EndY))

		floorID := c.Param("floor_id")
		_, err := store.Update(c.Param("project_id"), func(p *models.Project) error {
			floor := p.GetFloorPlan(floorID)
			if floor == nil {
				return errFloorNotFound
			}
			floor.AddWall(wall)
			return nil
		})
		if errors.Is(err, errFloorNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Floor plan not found")
			return
		}
		if err != nil {
			utils.JSONError(c, http.StatusNotFound, "Project not found")
			return
		}

		utils.JSONSuccess(c, http.StatusCreated, wall)
	}
}

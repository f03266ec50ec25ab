package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/models"
	"backend/storage"
	"backend/utils"
)

var errFloorNotFound = errors.New("floor plan not found")

// AddRoom godoc
// @Summary      Add a room to a floor plan
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        project_id  path      string                   true  "Project ID"
// @Param        floor_id    path      string                   true  "Floor ID"
// @Param        body        body      models.CreateRoomRequest true  "Room"
// @Success      201         {object}  models.APIResponse
// @Failure      404         {object}  models.APIResponse
// @Router       /api/v1/projects/{project_id}/floors/{floor_id}/rooms [post]
func AddRoom(store storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}

		room := models.NewRoom(req.Name, req.RoomType,
			models.NewFeetInches(req.LengthFeet, req.LengthInches),
			models.NewFeetInches(req.WidthFeet, req.WidthInches))

		if req.PositionX != nil && req.PositionY != nil {
			room.Position = models.NewPoint(*req.PositionX, *req.PositionY)
		}
		if req.CeilingHeightFeet != nil && req.CeilingHeightInches != nil {
			room.Ceiling = models.StandardCeiling(
				models.NewFeetInches(*req.CeilingHeightFeet, *req.CeilingHeightInches))
		}

		floorID := c.Param("floor_id")
		_, err := store.Update(c.Param("project_id"), func(p *models.Project) error {
			floor := p.GetFloorPlan(floorID)
			if floor == nil {
				return errFloorNotFound
			}
			floor.AddRoom(room)
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

		utils.JSONSuccess(c, http.StatusCreated, room)
	}
}

// GetRooms godoc
// @Summary      Get rooms for a floor plan
// @Tags         rooms
// @Produce      json
// @Param        project_id  path      string  true  "Project ID"
// @Param        floor_id    path      string  true  "Floor ID"
// @Success      200         {object}  models.APIResponse
// @Router       /api/v1/projects/{project_id}/floors/{floor_id}/rooms [get]
func GetRooms(store storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
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
		utils.JSONSuccess(c, http.StatusOK, floor.Rooms)
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/models"
	"backend/utils"
)

// ListMaterials godoc
// @Summary      List the material catalog
// @Tags         materials
// @Produce      json
// @Success      200  {object}  models.APIResponse
// @Router       /api/v1/materials [get]
func ListMaterials() gin.HandlerFunc {
	return func(c *gin.Context) {
		materials := models.AllMaterials()
		summaries := make([]models.MaterialSummary, 0, len(materials))
		for _, m := range materials {
			summaries = append(summaries, models.NewMaterialSummary(m))
		}
		utils.JSONSuccess(c, http.StatusOK, summaries)
	}
}

// ListMaterialsByCategory godoc
// @Summary      List materials in one category
// @Tags         materials
// @Produce      json
// @Param        category  path      string  true  "Category"
// @Success      200       {object}  models.APIResponse
// @Router       /api/v1/materials/{category} [get]
func ListMaterialsByCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := models.ParseMaterialCategory(c.Param("category"))
		if err != nil {
			utils.JSONError(c, http.StatusOK, "Unknown category")
			return
		}

		materials := models.MaterialsByCategory(category)
		summaries := make([]models.MaterialSummary, 0, len(materials))
		for _, m := range materials {
			summaries = append(summaries, models.NewMaterialSummary(m))
		}
		utils.JSONSuccess(c, http.StatusOK, summaries)
	}
}

// ListRoomTypes godoc
// @Summary      List the selectable room types
// @Tags         materials
// @Produce      json
// @Success      200  {object}  models.APIResponse
// @Router       /api/v1/room-types [get]
func ListRoomTypes() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Basement, attic, mechanical and other are internal-only.
		hidden := map[models.RoomType]bool{
			models.Basement:   true,
			models.Attic:      true,
			models.Mechanical: true,
			models.OtherRoom:  true,
		}

		types := make([]models.RoomTypeSummary, 0)
		for _, rt := range models.AllRoomTypes() {
			if hidden[rt] {
				continue
			}
			types = append(types, models.RoomTypeSummary{
				ID:   string(rt),
				Name: rt.DisplayName(),
			})
		}
		utils.JSONSuccess(c, http.StatusOK, types)
	}
}

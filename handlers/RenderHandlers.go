package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/services"
	"backend/storage"
	"backend/utils"
)

func rendererFromQuery(c *gin.Context) *services.SvgRenderer {
	config := services.DefaultRenderConfig()
	if scheme := c.Query("scheme"); scheme != "" {
		config.Colors = services.ColorSchemeByName(scheme)
	}
	if c.Query("labels") == "false" {
		config.ShowLabels = false
	}
	if c.Query("grid") == "false" {
		config.ShowGrid = false
	}
	return services.NewSvgRendererWithConfig(config)
}

// RenderFloorPlanSVG godoc
// @Summary      Render a floor plan as SVG
// @Tags         render
// @Produce      image/svg+xml
// @Param        project_id  path   string  true   "Project ID"
// @Param        floor_id    path   string  true   "Floor ID"
// @Param        scheme      query  string  false  "Color scheme (default, blueprint, color_coded)"
// @Success      200  {file}  file  "SVG image"
// @Failure      404  {object}  models.APIResponse
// @Router       /api/v1/projects/{project_id}/floors/{floor_id}/render.svg [get]
func RenderFloorPlanSVG(store storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, err := store.Get(c.Param("project_id"))
		if err != nil {
			utils.JSONError(c, http.StatusNotFound, "Project not found")
			return
		}
		floor := project.GetFloorPlan(c.Param("floor_id"))
		if floor == nil {
			utils.JSONError(c, http.StatusNotFound, "Floor plan not found")
			return
		}

		svg := rendererFromQuery(c).Render(*floor)
		c.Data(http.StatusOK, "image/svg+xml", []byte(svg))
	}
}

// RenderFloorPlanHTML godoc
// @Summary      Render a floor plan as a standalone HTML page
// @Tags         render
// @Produce      text/html
// @Param        project_id  path   string  true   "Project ID"
// @Param        floor_id    path   string  true   "Floor ID"
// @Param        scheme      query  string  false  "Color scheme (default, blueprint, color_coded)"
// @Success      200  {file}  file  "HTML page"
// @Failure      404  {object}  models.APIResponse
// @Router       /api/v1/projects/{project_id}/floors/{floor_id}/render.html [get]
func RenderFloorPlanHTML(store storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, err := store.Get(c.Param("project_id"))
		if err != nil {
			utils.JSONError(c, http.StatusNotFound, "Project not found")
			return
		}
		floor := project.GetFloorPlan(c.Param("floor_id"))
		if floor == nil {
			utils.JSONError(c, http.StatusNotFound, "Floor plan not found")
			return
		}

		html := rendererFromQuery(c).RenderHTML(*floor, floor.Name)
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
	}
}

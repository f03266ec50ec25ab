package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/models"
	"backend/storage"
	"backend/utils"
)

// Version reported by the health endpoint.
const Version = "1.0.0"

// HealthCheck godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  object
// @Router       /api/v1/health [get]
func HealthCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": Version,
		})
	}
}

// ListProjects godoc
// @Summary      List all projects
// @Tags         projects
// @Produce      json
// @Success      200  {object}  models.APIResponse
// @Router       /api/v1/projects [get]
func ListProjects(store storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		projects := store.List()
		summaries := make([]models.ProjectSummary, 0, len(projects))
		for _, p := range projects {
			summaries = append(summaries, models.NewProjectSummary(p))
		}
		utils.JSONSuccess(c, http.StatusOK, summaries)
	}
}

// CreateProject godoc
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreateProjectRequest  true  "Project"
// @Success      201   {object}  models.APIResponse
// @Failure      400   {object}  models.APIResponse
// @Router       /api/v1/projects [post]
func CreateProject(store storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}

		project := models.NewProject(req.Name)
		project.Description = req.Description

		if err := store.Insert(project); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
			return
		}

		utils.JSONSuccess(c, http.StatusCreated, models.NewProjectSummary(project))
	}
}

// GetProject godoc
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        project_id  path      string  true  "Project ID"
// @Success      200         {object}  models.APIResponse
// @Router       /api/v1/projects/{project_id} [get]
func GetProject(store storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, err := store.Get(c.Param("project_id"))
		if err != nil {
			utils.JSONError(c, http.StatusOK, "Project not found")
			return
		}
		utils.JSONSuccess(c, http.StatusOK, project)
	}
}

// DeleteProject godoc
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Param        project_id  path      string  true  "Project ID"
// @Success      200         {object}  models.APIResponse
// @Router       /api/v1/projects/{project_id} [delete]
func DeleteProject(store storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Delete(c.Param("project_id")); err != nil {
			utils.JSONError(c, http.StatusOK, "Project not found")
			return
		}
		utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
	}
}

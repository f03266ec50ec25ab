package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"backend/models"
	"backend/storage"
	"backend/utils"
)

// GenerateProjectQRCode godoc
// @Summary      Generate a QR code with the project summary
// @Tags         exports
// @Param        project_id  path  string  true  "Project ID"
// @Success      200  {file}  file  "PNG image"
// @Failure      404  {object}  models.APIResponse
// @Router       /api/v1/projects/{project_id}/qr [get]
func GenerateProjectQRCode(store storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, err := store.Get(c.Param("project_id"))
		if err != nil {
			utils.JSONError(c, http.StatusNotFound, "Project not found")
			return
		}

		payload, err := json.Marshal(models.NewProjectSummary(project))
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to encode project summary")
			return
		}

		qr, err := qrcode.New(string(payload), qrcode.Medium)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to generate QR code")
			return
		}

		png, err := qr.PNG(512)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to render QR code")
			return
		}

		c.Data(http.StatusOK, "image/png", png)
	}
}

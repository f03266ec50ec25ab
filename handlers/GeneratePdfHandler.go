package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"backend/models"
	"backend/services"
	"backend/storage"
	"backend/utils"
)

// GenerateEstimatePDF godoc
// @Summary      Generate a material estimate PDF
// @Tags         exports
// @Param        project_id  path   string  true   "Project ID"
// @Param        tier        query  string  false  "Quality tier"
// @Success      200  "PDF file"
// @Failure      404  {object}  models.APIResponse
// @Router       /api/v1/projects/{project_id}/estimate_pdf [get]
func GenerateEstimatePDF(store storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, err := store.Get(c.Param("project_id"))
		if err != nil {
			utils.JSONError(c, http.StatusNotFound, "Project not found")
			return
		}

		titleCaser := cases.Title(language.Und)

		config := services.DefaultCalculationConfig()
		if tier := c.Query("tier"); tier != "" {
			config.QualityTier = models.QualityTier(tier)
		}

		results := services.CalculateProject(project, config)
		totalCost := services.TotalProjectCost(results)
		totalSqft := project.TotalLivingArea().Value()

		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetMargins(10, 10, 10)
		pdf.SetFont("Arial", "", 10)

		pdf.SetFont("Arial", "B", 18)
		pdf.Cell(190, 10, "MATERIAL ESTIMATE")
		pdf.Ln(12)

		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(190, 8, project.Name)
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 10)
		if project.Description != "" {
			pdf.MultiCell(190, 6, project.Description, "", "L", false)
			pdf.Ln(2)
		}
		pdf.Cell(95, 6, fmt.Sprintf("Quality Tier: %s", titleCaser.String(string(config.QualityTier))))
		pdf.Cell(95, 6, fmt.Sprintf("Living Area: %.0f sq ft", totalSqft))
		pdf.Ln(6)
		pdf.Cell(95, 6, fmt.Sprintf("Bedrooms: %d", project.BedroomCount()))
		pdf.Cell(95, 6, fmt.Sprintf("Bathrooms: %.1f", project.BathroomCount()))
		pdf.Ln(10)

		// Category table
		pdf.SetFont("Arial", "B", 11)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(90, 8, "Category", "1", 0, "L", true, 0, "")
		pdf.CellFormat(25, 8, "Items", "1", 0, "C", true, 0, "")
		pdf.CellFormat(35, 8, "Cost/SqFt", "1", 0, "C", true, 0, "")
		pdf.CellFormat(40, 8, "Total", "1", 1, "C", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		for _, result := range results {
			perSqft := "-"
			if result.CostPerSqft != nil {
				perSqft = fmt.Sprintf("$%.2f", *result.CostPerSqft)
			}
			pdf.CellFormat(90, 8, result.Description, "1", 0, "L", false, 0, "")
			pdf.CellFormat(25, 8, fmt.Sprintf("%d", len(result.Materials.Items)), "1", 0, "C", false, 0, "")
			pdf.CellFormat(35, 8, perSqft, "1", 0, "C", false, 0, "")
			pdf.CellFormat(40, 8, fmt.Sprintf("$%.2f", result.TotalCost), "1", 1, "R", false, 0, "")
		}

		pdf.Ln(5)
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(150, 8, "Estimated Total")
		pdf.CellFormat(40, 8, fmt.Sprintf("$%.2f", totalCost), "1", 1, "R", false, 0, "")
		if totalSqft > 0 {
			pdf.Cell(150, 8, "Cost per Square Foot")
			pdf.CellFormat(40, 8, fmt.Sprintf("$%.2f", totalCost/totalSqft), "1", 1, "R", false, 0, "")
		}

		pdf.SetY(-20)
		pdf.SetFont("Arial", "I", 8)
		pdf.Cell(190, 6, "Quantities include standard waste factors. Prices are estimates only.")
		pdf.Ln(5)
		pdf.Cell(190, 6, "Generated on: "+time.Now().Format("2006-01-02 15:04:05"))

		c.Header("Content-Type", "application/pdf")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=estimate_%s.pdf", project.ID))
		if err := pdf.Output(c.Writer); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to generate PDF")
			return
		}
	}
}

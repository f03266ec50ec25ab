package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"backend/models"
	"backend/services"
	"backend/storage"
	"backend/utils"
)

// estimateConfig reads the optional tier query parameter.
func estimateConfig(c *gin.Context) services.CalculationConfig {
	config := services.DefaultCalculationConfig()
	if tier := c.Query("tier"); tier != "" {
		config.QualityTier = models.QualityTier(tier)
	}
	return config
}

// ExportEstimateCSV godoc
// @Summary      Export the material estimate as CSV
// @Tags         exports
// @Produce      text/csv
// @Param        project_id  path   string  true   "Project ID"
// @Param        tier        query  string  false  "Quality tier"
// @Success      200  {file}  file  "CSV file"
// @Failure      404  {object}  models.APIResponse
// @Router       /api/v1/projects/{project_id}/export_csv [get]
func ExportEstimateCSV(store storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, err := store.Get(c.Param("project_id"))
		if err != nil {
			utils.JSONError(c, http.StatusNotFound, "Project not found")
			return
		}

		config := estimateConfig(c)
		results := services.CalculateProject(project, config)

		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", fmt.Sprintf("attachment;filename=estimate_%s.csv", project.ID))

		writer := csv.NewWriter(c.Writer)
		defer writer.Flush()

		header := []string{"Category", "Material", "Unit", "Location", "Quantity", "QuantityWithWaste", "UnitPrice", "TotalCost"}
		if err := writer.Write(header); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Error writing CSV header")
			return
		}

		for _, result := range results {
			for _, item := range result.Materials.Items {
				row := []string{
					result.Description,
					item.Material.Name,
					item.Material.Unit.Abbreviation(),
					item.Location,
					strconv.FormatFloat(item.Quantity, 'f', 2, 64),
					strconv.FormatFloat(item.QuantityWithWaste(), 'f', 2, 64),
					strconv.FormatFloat(item.Material.PriceForTier(config.QualityTier), 'f', 2, 64),
					strconv.FormatFloat(item.TotalCost(config.QualityTier), 'f', 2, 64),
				}
				if err := writer.Write(row); err != nil {
					utils.JSONError(c, http.StatusInternalServerError, "Error writing CSV row")
					return
				}
			}
		}
	}
}

// ExportEstimateXLSX godoc
// @Summary      Export the material estimate as an Excel workbook
// @Tags         exports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        project_id  path   string  true   "Project ID"
// @Param        tier        query  string  false  "Quality tier"
// @Success      200  {file}  file  "XLSX file"
// @Failure      404  {object}  models.APIResponse
// @Router       /api/v1/projects/{project_id}/export_xlsx [get]
func ExportEstimateXLSX(store storage.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, err := store.Get(c.Param("project_id"))
		if err != nil {
			utils.JSONError(c, http.StatusNotFound, "Project not found")
			return
		}

		config := estimateConfig(c)
		results := services.CalculateProject(project, config)
		totalCost := services.TotalProjectCost(results)
		totalSqft := project.TotalLivingArea().Value()

		f := excelize.NewFile()
		defer func() {
			if err := f.Close(); err != nil {
				utils.JSONError(c, http.StatusInternalServerError, "Error closing Excel file")
			}
		}()

		summarySheet := "Summary"
		index, err := f.NewSheet(summarySheet)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Error creating summary sheet")
			return
		}
		f.SetActiveSheet(index)
		f.DeleteSheet("Sheet1") // Delete default sheet

		f.SetCellValue(summarySheet, "A1", "Material Estimate Summary")
		f.SetCellValue(summarySheet, "A2", "Project")
		f.SetCellValue(summarySheet, "B2", project.Name)
		f.SetCellValue(summarySheet, "A3", "Quality Tier")
		f.SetCellValue(summarySheet, "B3", string(config.QualityTier))
		f.SetCellValue(summarySheet, "A4", "Living Area (sq ft)")
		f.SetCellValue(summarySheet, "B4", totalSqft)
		f.SetCellValue(summarySheet, "A5", "Estimated Total")
		f.SetCellValue(summarySheet, "B5", totalCost)
		if totalSqft > 0 {
			f.SetCellValue(summarySheet, "A6", "Cost per Square Foot")
			f.SetCellValue(summarySheet, "B6", totalCost/totalSqft)
		}

		f.SetCellValue(summarySheet, "A8", "Category Breakdown:")
		for i, result := range results {
			rowCell, _ := excelize.CoordinatesToCellName(1, 9+i)
			costCell, _ := excelize.CoordinatesToCellName(2, 9+i)
			f.SetCellValue(summarySheet, rowCell, result.Description)
			f.SetCellValue(summarySheet, costCell, result.TotalCost)
		}

		titleStyle, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Size: 14},
		})
		if err == nil {
			f.SetCellStyle(summarySheet, "A1", "A1", titleStyle)
		}

		// Materials sheet with every line item
		materialsSheet := "Materials"
		if _, err := f.NewSheet(materialsSheet); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Error creating materials sheet")
			return
		}

		headers := []string{"Category", "Material", "Unit", "Location", "Quantity", "Qty w/ Waste", "Unit Price", "Total Cost"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(materialsSheet, cell, h)
		}
		headerStyle, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true},
			Fill: excelize.Fill{Type: "pattern", Color: []string{"F0F0F0"}, Pattern: 1},
		})
		if err == nil {
			endCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
			f.SetCellStyle(materialsSheet, "A1", endCell, headerStyle)
		}

		row := 2
		for _, result := range results {
			for _, item := range result.Materials.Items {
				values := []interface{}{
					result.Description,
					item.Material.Name,
					item.Material.Unit.Abbreviation(),
					item.Location,
					item.Quantity,
					item.QuantityWithWaste(),
					item.Material.PriceForTier(config.QualityTier),
					item.TotalCost(config.QualityTier),
				}
				for i, v := range values {
					cell, _ := excelize.CoordinatesToCellName(i+1, row)
					f.SetCellValue(materialsSheet, cell, v)
				}
				row++
			}
		}

		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment;filename=estimate_%s.xlsx", project.ID))
		if err := f.Write(c.Writer); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Error writing Excel file")
			return
		}
	}
}

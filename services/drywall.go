package services

import (
	"fmt"
	"math"

	"backend/models"
)

// SheetsNeeded rounds an area up to whole sheets.
func SheetsNeeded(sqft, sheetSqft float64) float64 {
	return math.Ceil(sqft / sheetSqft)
}

// DrywallForRoom covers wall and ceiling area. Wet rooms get cement
// board instead of standard drywall.
func DrywallForRoom(room models.Room, config CalculationConfig) models.MaterialList {
	list := models.NewMaterialList(fmt.Sprintf("%s - Drywall", room.Name))

	totalSqft := room.WallArea().Value() + room.CeilingArea().Value()

	var board models.Material
	if room.RoomType.IsWetRoom() {
		board = models.MustMaterialByID(models.MatCementBoard)
	} else {
		board = models.MustMaterialByID(models.MatDrywall12)
	}

	sheetCoverage := board.Coverage
	if sheetCoverage == 0 {
		sheetCoverage = 32.0
	}

	item := models.NewMaterialLineItem(board, SheetsNeeded(totalSqft, sheetCoverage)).
		WithLocation(room.Name)
	if config.IncludeWaste {
		item = item.WithWaste(config.SheetGoodsWasteFactor)
	}
	list.AddItem(item)

	// Roughly one box of screws per 500 sqft.
	screwBoxes := math.Ceil(totalSqft / 500.0)
	list.AddItem(models.NewMaterialLineItem(models.MustMaterialByID(models.MatDrywallScrews), screwBoxes))

	return list
}

// DrywallForFloorPlan takes off drywall for every enclosed room.
func DrywallForFloorPlan(floorPlan models.FloorPlan, config CalculationConfig) CalculationResult {
	name := fmt.Sprintf("%s - Drywall", floorPlan.Name)
	combined := models.NewMaterialList(name)

	for _, room := range floorPlan.Rooms {
		if room.RoomType.IsOutdoor() {
			continue
		}
		combined.Merge(DrywallForRoom(room, config))
	}

	return NewCalculationResult(name, combined, config).
		WithSqft(floorPlan.TotalLivingArea().Value())
}

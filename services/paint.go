package services

import (
	"fmt"
	"math"

	"backend/models"
)

// PaintForRoom takes off wall paint, primer, ceiling and trim paint
// for one room. Unfinished spaces return an empty list.
func PaintForRoom(room models.Room, config CalculationConfig) models.MaterialList {
	list := models.NewMaterialList(fmt.Sprintf("%s - Paint", room.Name))

	if room.RoomType.IsOutdoor() || room.RoomType == models.Garage {
		return list
	}

	wallSqft := room.WallArea().Value()
	ceilingSqft := room.CeilingArea().Value()

	// Two coats on walls at ~400 sqft per gallon.
	wallGallons := math.Ceil(wallSqft * 2.0 / 400.0)
	wallItem := models.NewMaterialLineItem(models.MustMaterialByID(models.MatWallPaint), wallGallons).
		WithLocation(room.Name)
	if config.IncludeWaste {
		wallItem = wallItem.WithWaste(config.PaintWasteFactor)
	}
	list.AddItem(wallItem)

	primerGallons := math.Ceil(wallSqft / 350.0)
	list.AddItem(models.NewMaterialLineItem(models.MustMaterialByID(models.MatPrimer), primerGallons).
		WithLocation(room.Name))

	ceilingGallons := math.Ceil(ceilingSqft / 400.0)
	ceilingItem := models.NewMaterialLineItem(models.MustMaterialByID(models.MatCeilingPaint), ceilingGallons).
		WithLocation(room.Name)
	if config.IncludeWaste {
		ceilingItem = ceilingItem.WithWaste(config.PaintWasteFactor)
	}
	list.AddItem(ceilingItem)

	// Trim coverage estimated at a 4" reveal along the perimeter.
	trimSqft := room.Perimeter().Value() * 0.33 * 2.0
	trimGallons := math.Max(math.Ceil(trimSqft/400.0), 1.0)
	list.AddItem(models.NewMaterialLineItem(models.MustMaterialByID(models.MatTrimPaint), trimGallons).
		WithLocation(room.Name))

	return list
}

// PaintForFloorPlan takes off paint for every finished room.
func PaintForFloorPlan(floorPlan models.FloorPlan, config CalculationConfig) CalculationResult {
	name := fmt.Sprintf("%s - Paint", floorPlan.Name)
	combined := models.NewMaterialList(name)

	for _, room := range floorPlan.Rooms {
		combined.Merge(PaintForRoom(room, config))
	}

	return NewCalculationResult(name, combined, config).
		WithSqft(floorPlan.TotalLivingArea().Value())
}

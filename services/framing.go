package services

import (
	"fmt"
	"math"

	"backend/models"
)

// StudsNeeded counts studs for a wall at the given spacing.
// Bays plus one end stud, plus two for corners/intersections.
func StudsNeeded(wallLength models.LinearFeet, studSpacing int) int {
	lengthInches := wallLength.Value() * 12.0
	baseStuds := int(math.Ceil(lengthInches/float64(studSpacing))) + 1
	return baseStuds + 2
}

// PlateLength is single bottom plate plus double top plate.
func PlateLength(wallLength models.LinearFeet) models.LinearFeet {
	return models.LinearFeet(wallLength.Value() * 3.0)
}

// HeaderForOpening sizes a doubled header: opening width plus 6"
// for king studs, times two plies.
func HeaderForOpening(openingWidth models.FeetInches) models.LinearFeet {
	headerLength := openingWidth.ToDecimalFeet() + 0.5
	return models.LinearFeet(headerLength * 2.0)
}

// WallFramingMaterials takes off studs, plates and headers for one wall.
func WallFramingMaterials(wall models.Wall, config CalculationConfig) models.MaterialList {
	list := models.NewMaterialList("Wall Framing")
	wallLength := wall.Length()

	// Exterior walls frame with 2x6, interior with 2x4.
	var studMaterial, plateMaterial models.Material
	if wall.WallType.IsExterior() {
		studMaterial = models.MustMaterialByID(models.MatStud2x6x8)
		plateMaterial = models.MustMaterialByID(models.MatPlate2x6)
	} else {
		studMaterial = models.MustMaterialByID(models.MatStud2x4x8)
		plateMaterial = models.MustMaterialByID(models.MatPlate2x4)
	}

	studItem := models.NewMaterialLineItem(studMaterial, float64(StudsNeeded(wallLength, config.StudSpacing)))
	if config.IncludeWaste {
		studItem = studItem.WithWaste(config.LumberWasteFactor)
	}
	list.AddItem(studItem)

	plateItem := models.NewMaterialLineItem(plateMaterial, PlateLength(wallLength).Value())
	if config.IncludeWaste {
		plateItem = plateItem.WithWaste(config.LumberWasteFactor)
	}
	list.AddItem(plateItem)

	headerMaterial := models.MustMaterialByID(models.MatHeader2x10)
	for _, door := range wall.Doors {
		headerLf := HeaderForOpening(door.Width)
		list.AddItem(models.NewMaterialLineItem(headerMaterial, headerLf.Value()).
			WithLocation("Door header"))
	}
	for _, window := range wall.Windows {
		headerLf := HeaderForOpening(window.Width)
		list.AddItem(models.NewMaterialLineItem(headerMaterial, headerLf.Value()).
			WithLocation("Window header"))
	}

	return list
}

// FramingForFloorPlan takes off framing for every wall on the floor.
func FramingForFloorPlan(floorPlan models.FloorPlan, config CalculationConfig) CalculationResult {
	name := fmt.Sprintf("%s - Wall Framing", floorPlan.Name)
	combined := models.NewMaterialList(name)

	for _, wall := range floorPlan.Walls {
		wallList := WallFramingMaterials(wall, config)
		combined.Merge(wallList)
	}

	return NewCalculationResult(name, combined, config).
		WithSqft(floorPlan.TotalFloorArea().Value())
}

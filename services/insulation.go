package services

import (
	"backend/models"
)

// ExteriorWallInsulation batts the wall area. Load-bearing and
// non-bearing exterior walls take R-19, everything else R-13.
func ExteriorWallInsulation(wall models.Wall, wallHeight models.FeetInches, config CalculationConfig) models.MaterialList {
	list := models.NewMaterialList("Wall Insulation")

	var batt models.Material
	switch wall.WallType {
	case models.ExteriorLoadBearing, models.ExteriorNonBearing:
		batt = models.MustMaterialByID(models.MatBattR19)
	default:
		batt = models.MustMaterialByID(models.MatBattR13)
	}

	wallSqft := wall.Length().Value() * wallHeight.ToDecimalFeet()
	item := models.NewMaterialLineItem(batt, wallSqft)
	if config.IncludeWaste {
		item = item.WithWaste(config.LumberWasteFactor)
	}
	list.AddItem(item)

	return list
}

// AtticInsulation blows R-38 over the whole ceiling area.
func AtticInsulation(ceilingSqft models.SquareFeet, config CalculationConfig) models.MaterialList {
	list := models.NewMaterialList("Attic Insulation")

	item := models.NewMaterialLineItem(models.MustMaterialByID(models.MatBattR38), ceilingSqft.Value()).
		WithLocation("Attic")
	if config.IncludeWaste {
		item = item.WithWaste(config.LumberWasteFactor)
	}
	list.AddItem(item)

	return list
}

package services

import (
	"fmt"

	"backend/models"
)

// flooringMaterialFor picks the floor covering by room use.
func flooringMaterialFor(roomType models.RoomType) models.Material {
	switch roomType {
	case models.MasterBath, models.FullBath, models.HalfBath, models.PowderRoom:
		return models.MustMaterialByID(models.MatTilePorcelain)
	case models.Kitchen, models.Laundry, models.MudRoom:
		return models.MustMaterialByID(models.MatLvp)
	case models.MasterSuite, models.Bedroom, models.GuestRoom, models.Nursery:
		return models.MustMaterialByID(models.MatCarpet)
	case models.LivingRoom, models.FamilyRoom, models.GreatRoom, models.DiningRoom,
		models.Office, models.Study, models.Library:
		return models.MustMaterialByID(models.MatHardwoodOak)
	case models.Garage, models.Workshop, models.Basement:
		return models.MustMaterialByID(models.MatLvp)
	case models.Porch, models.Deck, models.Patio, models.Screened:
		return models.MustMaterialByID(models.MatTilePorcelain)
	default:
		return models.MustMaterialByID(models.MatLvp)
	}
}

// needsUnderlayment is true for rooms getting hardwood or LVP over
// subfloor rather than slab or carpet pad.
func needsUnderlayment(roomType models.RoomType) bool {
	switch roomType {
	case models.LivingRoom, models.FamilyRoom, models.GreatRoom, models.DiningRoom,
		models.Office, models.Study, models.Library,
		models.Kitchen, models.Laundry, models.MudRoom:
		return true
	default:
		return false
	}
}

// FlooringForRoom takes off floor covering for one room.
func FlooringForRoom(room models.Room, config CalculationConfig) models.MaterialList {
	list := models.NewMaterialList(fmt.Sprintf("%s - Flooring", room.Name))
	floorSqft := room.FloorArea().Value()

	item := models.NewMaterialLineItem(flooringMaterialFor(room.RoomType), floorSqft).
		WithLocation(room.Name)
	if config.IncludeWaste {
		item = item.WithWaste(config.FlooringWasteFactor)
	}
	list.AddItem(item)

	if needsUnderlayment(room.RoomType) {
		underItem := models.NewMaterialLineItem(models.MustMaterialByID(models.MatUnderlayment), floorSqft).
			WithLocation(room.Name)
		if config.IncludeWaste {
			underItem = underItem.WithWaste(config.FlooringWasteFactor)
		}
		list.AddItem(underItem)
	}

	return list
}

// FlooringForFloorPlan takes off flooring for every room, outdoor
// surfaces included.
func FlooringForFloorPlan(floorPlan models.FloorPlan, config CalculationConfig) CalculationResult {
	name := fmt.Sprintf("%s - Flooring", floorPlan.Name)
	combined := models.NewMaterialList(name)

	for _, room := range floorPlan.Rooms {
		combined.Merge(FlooringForRoom(room, config))
	}

	return NewCalculationResult(name, combined, config).
		WithSqft(floorPlan.TotalFloorArea().Value())
}

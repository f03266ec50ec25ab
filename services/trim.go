package services

import (
	"fmt"

	"backend/models"
)

// crownRooms are the formal spaces that get crown moulding at
// premium tiers.
func crownRooms(roomType models.RoomType) bool {
	switch roomType {
	case models.LivingRoom, models.FamilyRoom, models.GreatRoom, models.DiningRoom,
		models.MasterSuite, models.Office, models.Foyer, models.Lounge:
		return true
	default:
		return false
	}
}

// TrimForRoom takes off baseboard and crown for one room.
func TrimForRoom(room models.Room, config CalculationConfig) models.MaterialList {
	list := models.NewMaterialList(fmt.Sprintf("%s - Trim", room.Name))
	perimeter := room.Perimeter().Value()

	// Painted MDF at the lower tiers, stain-grade wood above.
	var baseboard models.Material
	switch config.QualityTier {
	case models.TierPremium, models.TierLuxury:
		baseboard = models.MustMaterialByID(models.MatBaseboardWood)
	default:
		baseboard = models.MustMaterialByID(models.MatBaseboardMdf)
	}

	baseItem := models.NewMaterialLineItem(baseboard, perimeter).
		WithLocation(room.Name)
	if config.IncludeWaste {
		baseItem = baseItem.WithWaste(config.LumberWasteFactor)
	}
	list.AddItem(baseItem)

	if crownRooms(room.RoomType) &&
		(config.QualityTier == models.TierPremium || config.QualityTier == models.TierLuxury) {
		crownItem := models.NewMaterialLineItem(models.MustMaterialByID(models.MatCrownMoulding), perimeter).
			WithLocation(room.Name)
		if config.IncludeWaste {
			crownItem = crownItem.WithWaste(config.LumberWasteFactor)
		}
		list.AddItem(crownItem)
	}

	return list
}

// TrimForFloorPlan takes off trim room by room plus casing sets for
// every door and window on the floor.
func TrimForFloorPlan(floorPlan models.FloorPlan, config CalculationConfig) CalculationResult {
	name := fmt.Sprintf("%s - Trim", floorPlan.Name)
	combined := models.NewMaterialList(name)

	for _, room := range floorPlan.Rooms {
		if room.RoomType.IsOutdoor() || room.RoomType == models.Garage {
			continue
		}
		combined.Merge(TrimForRoom(room, config))
	}

	doorCount := 0
	windowCount := 0
	for _, wall := range floorPlan.Walls {
		doorCount += len(wall.Doors)
		windowCount += len(wall.Windows)
	}

	if doorCount > 0 {
		combined.AddItem(models.NewMaterialLineItem(
			models.MustMaterialByID(models.MatDoorCasing), float64(doorCount)))
	}
	if windowCount > 0 {
		combined.AddItem(models.NewMaterialLineItem(
			models.MustMaterialByID(models.MatWindowCasing), float64(windowCount)))
	}

	return NewCalculationResult(name, combined, config).
		WithSqft(floorPlan.TotalLivingArea().Value())
}

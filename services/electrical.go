package services

import (
	"fmt"
	"math"

	"backend/models"
)

// outletsForRoom applies the code minimum of one receptacle per
// 12 feet of wall plus use-specific extras.
func outletsForRoom(room models.Room) int {
	base := int(math.Ceil(room.Perimeter().Value() / 12.0))
	switch room.RoomType {
	case models.Kitchen:
		return base + 8
	case models.Office, models.Study:
		return base + 4
	case models.MasterBath, models.FullBath:
		return base + 2
	case models.Garage, models.Workshop:
		return base + 6
	case models.Laundry:
		return base + 3
	default:
		return base
	}
}

// needsGfci marks rooms where receptacles must be GFCI protected.
func needsGfci(roomType models.RoomType) bool {
	switch roomType {
	case models.Kitchen, models.MasterBath, models.FullBath, models.HalfBath,
		models.PowderRoom, models.Laundry, models.Garage:
		return true
	default:
		return false
	}
}

// switchesForRoom returns single-pole and 3-way switch counts.
func switchesForRoom(roomType models.RoomType) (singlePole, threeWay int) {
	switch roomType {
	case models.MasterSuite, models.MasterBath:
		return 2, 2
	case models.Bedroom, models.GuestRoom:
		return 1, 1
	case models.LivingRoom, models.FamilyRoom, models.GreatRoom:
		return 2, 2
	case models.Kitchen, models.DiningRoom:
		return 2, 1
	case models.Hallway, models.Foyer:
		return 0, 2
	case models.Garage:
		return 2, 1
	default:
		return 1, 0
	}
}

// recessedLightsForRoom spaces cans by room use.
func recessedLightsForRoom(room models.Room) int {
	var sqftPerLight float64
	switch room.RoomType {
	case models.Kitchen, models.MasterBath, models.FullBath:
		sqftPerLight = 20.0
	case models.Office, models.Study:
		sqftPerLight = 25.0
	case models.Closet, models.WalkInCloset:
		sqftPerLight = 40.0
	case models.Garage, models.Workshop:
		sqftPerLight = 50.0
	default:
		sqftPerLight = 30.0
	}
	return int(math.Ceil(room.FloorArea().Value() / sqftPerLight))
}

// ElectricalForRoom takes off devices, boxes and wire for one room.
func ElectricalForRoom(room models.Room, config CalculationConfig) models.MaterialList {
	list := models.NewMaterialList(fmt.Sprintf("%s - Electrical", room.Name))

	outlets := outletsForRoom(room)
	if needsGfci(room.RoomType) {
		gfci := outlets / 3
		if gfci < 1 {
			gfci = 1
		}
		list.AddItem(models.NewMaterialLineItem(
			models.MustMaterialByID(models.MatOutletGfci), float64(gfci)).
			WithLocation(room.Name))
		if regular := outlets - gfci; regular > 0 {
			list.AddItem(models.NewMaterialLineItem(
				models.MustMaterialByID(models.MatOutletStandard), float64(regular)).
				WithLocation(room.Name))
		}
	} else {
		list.AddItem(models.NewMaterialLineItem(
			models.MustMaterialByID(models.MatOutletStandard), float64(outlets)).
			WithLocation(room.Name))
	}

	singlePole, threeWay := switchesForRoom(room.RoomType)
	if singlePole > 0 {
		list.AddItem(models.NewMaterialLineItem(
			models.MustMaterialByID(models.MatSwitchSingle), float64(singlePole)))
	}
	if threeWay > 0 {
		list.AddItem(models.NewMaterialLineItem(
			models.MustMaterialByID(models.MatSwitch3Way), float64(threeWay)))
	}

	lights := recessedLightsForRoom(room)
	if lights > 0 {
		list.AddItem(models.NewMaterialLineItem(
			models.MustMaterialByID(models.MatRecessedLight), float64(lights)).
			WithLocation(room.Name))
	}

	boxes := outlets + singlePole + threeWay + lights
	list.AddItem(models.NewMaterialLineItem(
		models.MustMaterialByID(models.MatElectricalBox), float64(boxes)))

	// ~15 ft of 14/2 per light leg, ~20 ft of 12/2 per receptacle,
	// plus dedicated kitchen circuits.
	wire142 := float64(lights) * 15.0
	wire122 := float64(outlets) * 20.0
	if room.RoomType == models.Kitchen {
		wire122 += 100.0
	}
	if wire142 > 0 {
		list.AddItem(models.NewMaterialLineItem(
			models.MustMaterialByID(models.MatRomex142), wire142))
	}
	if wire122 > 0 {
		list.AddItem(models.NewMaterialLineItem(
			models.MustMaterialByID(models.MatRomex122), wire122))
	}

	return list
}

// ElectricalForFloorPlan takes off every finished room plus the
// panel and breakers for the floor.
func ElectricalForFloorPlan(floorPlan models.FloorPlan, config CalculationConfig) CalculationResult {
	name := fmt.Sprintf("%s - Electrical", floorPlan.Name)
	combined := models.NewMaterialList(name)

	for _, room := range floorPlan.Rooms {
		if room.RoomType.IsOutdoor() {
			continue
		}
		combined.Merge(ElectricalForRoom(room, config))
	}

	combined.AddItem(models.NewMaterialLineItem(
		models.MustMaterialByID(models.MatPanel200A), 1.0))

	circuits := float64(len(floorPlan.Rooms)) * 2.5
	combined.AddItem(models.NewMaterialLineItem(
		models.MustMaterialByID(models.MatBreaker15A), math.Ceil(circuits*0.4)))
	combined.AddItem(models.NewMaterialLineItem(
		models.MustMaterialByID(models.MatBreaker20A), math.Ceil(circuits*0.6)))

	return NewCalculationResult(name, combined, config).
		WithSqft(floorPlan.TotalLivingArea().Value())
}

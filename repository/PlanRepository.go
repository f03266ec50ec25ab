package repository

import (
	"backend/models"
)

// FloorPlanBuilder assembles a floor plan with a fluent API. Bad
// dimension strings fall back to zero rather than failing the build.
type FloorPlanBuilder struct {
	name        string
	description string
	level       int
	rooms       []models.Room
	walls       []models.Wall
}

func NewFloorPlanBuilder(name string) *FloorPlanBuilder {
	return &FloorPlanBuilder{name: name, level: 1}
}

func (b *FloorPlanBuilder) Description(description string) *FloorPlanBuilder {
	b.description = description
	return b
}

func (b *FloorPlanBuilder) Level(level int) *FloorPlanBuilder {
	b.level = level
	return b
}

// Room adds a room with explicit feet/inch dimensions.
func (b *FloorPlanBuilder) Room(name string, roomType models.RoomType, x, y float64,
	lengthFt, lengthIn, widthFt, widthIn int) *FloorPlanBuilder {
	room := models.NewRoom(name, roomType,
		models.NewFeetInches(lengthFt, lengthIn),
		models.NewFeetInches(widthFt, widthIn))
	room.Position = models.NewPoint(x, y)
	b.rooms = append(b.rooms, room)
	return b
}

// RoomStr adds a room with architectural dimension strings like 14'-6".
func (b *FloorPlanBuilder) RoomStr(name string, roomType models.RoomType, x, y float64,
	length, width string) *FloorPlanBuilder {
	lengthFi, err := models.ParseFeetInches(length)
	if err != nil {
		lengthFi = models.FeetInches{}
	}
	widthFi, err := models.ParseFeetInches(width)
	if err != nil {
		widthFi = models.FeetInches{}
	}

	room := models.NewRoom(name, roomType, lengthFi, widthFi)
	room.Position = models.NewPoint(x, y)
	b.rooms = append(b.rooms, room)
	return b
}

func (b *FloorPlanBuilder) ExteriorWall(x1, y1, x2, y2 float64) *FloorPlanBuilder {
	b.walls = append(b.walls, models.NewWall(models.ExteriorLoadBearing,
		models.NewPoint(x1, y1), models.NewPoint(x2, y2)))
	return b
}

func (b *FloorPlanBuilder) InteriorWall(x1, y1, x2, y2 float64) *FloorPlanBuilder {
	b.walls = append(b.walls, models.NewWall(models.InteriorPartition,
		models.NewPoint(x1, y1), models.NewPoint(x2, y2)))
	return b
}

func (b *FloorPlanBuilder) Build() models.FloorPlan {
	plan := models.NewFloorPlan(b.name)
	plan.Description = b.description
	plan.Level = b.level

	for _, room := range b.rooms {
		plan.AddRoom(room)
	}
	for _, wall := range b.walls {
		plan.AddWall(wall)
	}
	return plan
}

// LuxuryFarmhousePlan is the sample plan: a large single-story
// farmhouse with four bedrooms, a 2-car garage and wraparound porches.
func LuxuryFarmhousePlan() models.FloorPlan {
	return NewFloorPlanBuilder("Luxury Farmhouse").
		Description("Large single-story luxury farmhouse with 4 bedrooms, vaulted ceilings, and extensive outdoor living").
		Level(1).
		// Left wing
		RoomStr("2 Car Garage", models.Garage, 0, 0, `25'-2"`, `31'-9"`).
		RoomStr("Bedroom 2", models.Bedroom, 28, 0, `14'-2"`, `14'-5"`).
		RoomStr("Bath 3", models.FullBath, 28, 14.5, `8'-0"`, `8'-0"`).
		RoomStr("WIC", models.WalkInCloset, 36, 14.5, `6'-0"`, `8'-0"`).
		RoomStr("Bath 2", models.FullBath, 42, 0, `8'-0"`, `10'-0"`).
		RoomStr("Bedroom 3", models.Bedroom, 28, 24, `17'-3"`, `13'-4"`).
		RoomStr("Laundry", models.Laundry, 45, 24, `12'-0"`, `7'-0"`).
		RoomStr("Powder Room", models.PowderRoom, 57, 24, `6'-0"`, `7'-0"`).
		RoomStr("Mud Room", models.MudRoom, 28, 40, `11'-4"`, `7'-5"`).
		RoomStr("Bath 4", models.FullBath, 40, 40, `6'-0"`, `8'-0"`).
		RoomStr("WIC", models.WalkInCloset, 46, 40, `6'-0"`, `8'-0"`).
		RoomStr("Bedroom 4", models.Bedroom, 28, 52, `18'-4"`, `13'-11"`).
		// Center section
		RoomStr("Breakfast Nook", models.BreakfastNook, 50, 0, `14'-1"`, `14'-9"`).
		RoomStr("Kitchen", models.Kitchen, 64, 0, `14'-0"`, `14'-9"`).
		RoomStr("Pantry", models.Pantry, 64, 15, `8'-0"`, `8'-0"`).
		RoomStr("Butler's Pantry", models.ButlersPantry, 52, 40, `15'-10"`, `9'-0"`).
		RoomStr("Family Room", models.FamilyRoom, 78, 15, `16'-6"`, `15'-2"`).
		RoomStr("Front Hall", models.Foyer, 68, 40, `10'-2"`, `12'-5"`).
		RoomStr("Dining Room", models.DiningRoom, 52, 52, `18'-4"`, `14'-6"`).
		RoomStr("Foyer", models.Foyer, 70, 52, `11'-4"`, `13'-4"`).
		RoomStr("Lounge", models.Lounge, 82, 52, `14'-2"`, `12'-2"`).
		RoomStr("Bar", models.Bar, 96, 40, `14'-4"`, `9'-0"`).
		// Right wing
		RoomStr("Office", models.Office, 96, 15, `12'-0"`, `12'-0"`).
		RoomStr("Office Porch", models.Porch, 96, 0, `11'-4"`, `10'-8"`).
		RoomStr("Master Suite", models.MasterSuite, 110, 15, `17'-8"`, `22'-8"`).
		RoomStr("WIC", models.WalkInCloset, 110, 40, `12'-0"`, `8'-0"`).
		RoomStr("WIC", models.WalkInCloset, 122, 40, `12'-0"`, `8'-0"`).
		RoomStr("Master Bath", models.MasterBath, 122, 48, `12'-0"`, `14'-0"`).
		// Outdoor spaces
		RoomStr("Breakfast Porch", models.Porch, 64, -12, `13'-4"`, `12'-4"`).
		RoomStr("Outdoor Living", models.Patio, 78, -15, `28'-2"`, `15'-4"`).
		RoomStr("Master Porch", models.Porch, 110, -10, `19'-2"`, `10'-0"`).
		RoomStr("Side Porch", models.Porch, 134, 15, `10'-0"`, `32'-0"`).
		RoomStr("Front Porch", models.Porch, 52, 70, `56'-8"`, `12'-4"`).
		// Simplified exterior perimeter
		ExteriorWall(0, 0, 144, 0).
		ExteriorWall(144, 0, 144, 82).
		ExteriorWall(144, 82, 0, 82).
		ExteriorWall(0, 82, 0, 0).
		Build()
}

// LuxuryFarmhousePlanDetailed layers the drawing's ceiling callouts
// over the base plan.
func LuxuryFarmhousePlanDetailed() models.FloorPlan {
	plan := LuxuryFarmhousePlan()

	for i := range plan.Rooms {
		switch plan.Rooms[i].Name {
		case "Family Room":
			plan.Rooms[i].Ceiling = models.VaultedCeiling(models.NewFeetInches(9, 0), 7)
		case "Outdoor Living", "Master Suite", "Master Porch":
			plan.Rooms[i].Ceiling = models.VaultedCeiling(models.NewFeetInches(10, 0), 6)
		case "Front Porch", "Breakfast Porch":
			plan.Rooms[i].Ceiling = models.StandardCeiling(models.NewFeetInches(12, 8))
		}
	}

	return plan
}

package repository

import (
	"testing"

	"backend/models"
)

func TestFloorPlanBuilder(t *testing.T) {
	plan := NewFloorPlanBuilder("Test Plan").
		Level(1).
		Description("Test description").
		Room("Living Room", models.LivingRoom, 0, 0, 20, 0, 15, 0).
		Room("Kitchen", models.Kitchen, 20, 0, 15, 0, 12, 0).
		InteriorWall(20, 0, 20, 15).
		Build()

	if plan.Name != "Test Plan" || plan.Level != 1 {
		t.Errorf("plan = %q level %d", plan.Name, plan.Level)
	}
	if len(plan.Rooms) != 2 || len(plan.Walls) != 1 {
		t.Errorf("rooms = %d, walls = %d", len(plan.Rooms), len(plan.Walls))
	}
}

func TestRoomStrParsing(t *testing.T) {
	plan := NewFloorPlanBuilder("Test").
		RoomStr("Master", models.MasterSuite, 0, 0, `17'-8"`, `22'-8"`).
		Build()

	if len(plan.Rooms) != 1 {
		t.Fatalf("rooms = %d", len(plan.Rooms))
	}
	room := plan.Rooms[0]
	if room.Length != models.NewFeetInches(17, 8) {
		t.Errorf("Length = %v", room.Length)
	}
	if room.Width != models.NewFeetInches(22, 8) {
		t.Errorf("Width = %v", room.Width)
	}
}

func TestRoomStrBadDimensionFallsBackToZero(t *testing.T) {
	plan := NewFloorPlanBuilder("Test").
		RoomStr("Broken", models.Office, 0, 0, "not a length", "10'-0\"").
		Build()

	if plan.Rooms[0].Length != models.NewFeetInches(0, 0) {
		t.Errorf("Length = %v", plan.Rooms[0].Length)
	}
}

func TestLuxuryFarmhousePlan(t *testing.T) {
	plan := LuxuryFarmhousePlan()

	if plan.Name != "Luxury Farmhouse" {
		t.Errorf("Name = %q", plan.Name)
	}
	if len(plan.Rooms) != 33 {
		t.Errorf("rooms = %d, want 33", len(plan.Rooms))
	}
	if len(plan.Walls) != 4 {
		t.Errorf("walls = %d, want 4", len(plan.Walls))
	}

	var master *models.Room
	for i := range plan.Rooms {
		if plan.Rooms[i].Name == "Master Suite" {
			master = &plan.Rooms[i]
		}
	}
	if master == nil {
		t.Fatal("Master Suite missing")
	}
	if master.Length != models.NewFeetInches(17, 8) || master.Width != models.NewFeetInches(22, 8) {
		t.Errorf("master dims = %v x %v", master.Length, master.Width)
	}

	if plan.BedroomCount() != 4 {
		t.Errorf("bedrooms = %d, want 4", plan.BedroomCount())
	}

	total := plan.TotalFloorArea().Value()
	living := plan.TotalLivingArea().Value()
	if total < 4000 {
		t.Errorf("total area = %v, want a large house", total)
	}
	if living < 3000 || living >= total {
		t.Errorf("living area = %v of %v", living, total)
	}
}

func TestLuxuryFarmhousePlanDetailed(t *testing.T) {
	plan := LuxuryFarmhousePlanDetailed()

	ceilings := map[string]models.CeilingHeight{}
	for _, room := range plan.Rooms {
		ceilings[room.Name] = room.Ceiling
	}

	if got := ceilings["Family Room"]; got != models.VaultedCeiling(models.NewFeetInches(9, 0), 7) {
		t.Errorf("Family Room ceiling = %+v", got)
	}
	if got := ceilings["Master Porch"]; got != models.VaultedCeiling(models.NewFeetInches(10, 0), 6) {
		t.Errorf("Master Porch ceiling = %+v", got)
	}
	if got := ceilings["Front Porch"]; got != models.StandardCeiling(models.NewFeetInches(12, 8)) {
		t.Errorf("Front Porch ceiling = %+v", got)
	}
}

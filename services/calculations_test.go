package services

import (
	"math"
	"strings"
	"testing"

	"backend/models"
)

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func findItem(list models.MaterialList, materialID string) (models.MaterialLineItem, bool) {
	for _, item := range list.Items {
		if item.Material.ID == materialID {
			return item, true
		}
	}
	return models.MaterialLineItem{}, false
}

func sumQuantity(list models.MaterialList, materialID string) float64 {
	total := 0.0
	for _, item := range list.Items {
		if item.Material.ID == materialID {
			total += item.Quantity
		}
	}
	return total
}

func TestStudsNeeded(t *testing.T) {
	tests := []struct {
		lengthFeet float64
		spacing    int
		want       int
	}{
		{10, 16, 11},
		{20, 16, 18},
		{8, 24, 7},
		{12, 16, 12},
	}
	for _, tt := range tests {
		got := StudsNeeded(models.LinearFeet(tt.lengthFeet), tt.spacing)
		if got != tt.want {
			t.Errorf("StudsNeeded(%v', %d) = %d, want %d", tt.lengthFeet, tt.spacing, got, tt.want)
		}
	}
}

func TestPlateLength(t *testing.T) {
	if got := PlateLength(models.LinearFeet(20)); !nearlyEqual(got.Value(), 60) {
		t.Errorf("PlateLength(20) = %v, want 60", got)
	}
}

func TestHeaderForOpening(t *testing.T) {
	if got := HeaderForOpening(models.NewFeetInches(3, 0)); !nearlyEqual(got.Value(), 7) {
		t.Errorf("HeaderForOpening(3') = %v, want 7", got)
	}
	if got := HeaderForOpening(models.NewFeetInches(6, 0)); !nearlyEqual(got.Value(), 13) {
		t.Errorf("HeaderForOpening(6') = %v, want 13", got)
	}
}

func TestWallFramingMaterials(t *testing.T) {
	config := DefaultCalculationConfig()

	exterior := models.NewWall(models.ExteriorLoadBearing,
		models.NewPoint(0, 0), models.NewPoint(240, 0)) // 20 feet in inches
	exterior.AddDoor(models.ExteriorEntry, models.NewFeetInches(4, 0))

	list := WallFramingMaterials(exterior, config)

	studs, ok := findItem(list, models.MatStud2x6x8)
	if !ok {
		t.Fatal("no 2x6 studs on exterior wall")
	}
	if studs.Quantity != 18 {
		t.Errorf("studs = %v, want 18", studs.Quantity)
	}
	if !nearlyEqual(studs.WasteFactor, config.LumberWasteFactor) {
		t.Errorf("stud waste = %v", studs.WasteFactor)
	}

	plates, ok := findItem(list, models.MatPlate2x6)
	if !ok || !nearlyEqual(plates.Quantity, 60) {
		t.Errorf("plates = %+v", plates)
	}

	header, ok := findItem(list, models.MatHeader2x10)
	if !ok || !nearlyEqual(header.Quantity, 7) {
		t.Errorf("header = %+v", header)
	}
	if header.Location != "Door header" {
		t.Errorf("header location = %q", header.Location)
	}
	if !nearlyEqual(header.WasteFactor, 1.0) {
		t.Errorf("header carries waste: %v", header.WasteFactor)
	}

	interior := models.NewWall(models.InteriorPartition,
		models.NewPoint(0, 0), models.NewPoint(120, 0)) // 10 feet in inches
	interiorList := WallFramingMaterials(interior, config)
	if _, ok := findItem(interiorList, models.MatStud2x4x8); !ok {
		t.Error("interior wall should frame with 2x4")
	}
}

func TestSheetsNeeded(t *testing.T) {
	if got := SheetsNeeded(500, 32); got != 16 {
		t.Errorf("SheetsNeeded(500, 32) = %v, want 16", got)
	}
	if got := SheetsNeeded(32, 32); got != 1 {
		t.Errorf("SheetsNeeded(32, 32) = %v, want 1", got)
	}
}

func TestDrywallForRoom(t *testing.T) {
	config := DefaultCalculationConfig()

	bedroom := models.NewRoom("Bedroom", models.Bedroom,
		models.NewFeetInches(12, 0), models.NewFeetInches(10, 0))
	list := DrywallForRoom(bedroom, config)

	// 396 wall + 120 ceiling = 516 sqft -> 17 sheets at 32 SF.
	sheets, ok := findItem(list, models.MatDrywall12)
	if !ok || sheets.Quantity != 17 {
		t.Errorf("sheets = %+v", sheets)
	}
	if sheets.Location != "Bedroom" {
		t.Errorf("location = %q", sheets.Location)
	}

	screws, ok := findItem(list, models.MatDrywallScrews)
	if !ok || screws.Quantity != 2 {
		t.Errorf("screws = %+v", screws)
	}
	if !nearlyEqual(screws.WasteFactor, 1.0) {
		t.Errorf("screws carry waste: %v", screws.WasteFactor)
	}

	bath := models.NewRoom("Master Bath", models.MasterBath,
		models.NewFeetInches(10, 0), models.NewFeetInches(8, 0))
	bathList := DrywallForRoom(bath, config)
	if _, ok := findItem(bathList, models.MatCementBoard); !ok {
		t.Error("wet room should get cement board")
	}
	if _, ok := findItem(bathList, models.MatDrywall12); ok {
		t.Error("wet room should not get standard drywall")
	}
}

func TestDrywallSkipsOutdoorRooms(t *testing.T) {
	plan := models.NewFloorPlan("Main")
	plan.AddRoom(models.NewRoom("Office", models.Office,
		models.NewFeetInches(10, 0), models.NewFeetInches(10, 0)))
	plan.AddRoom(models.NewRoom("Back Porch", models.Porch,
		models.NewFeetInches(12, 0), models.NewFeetInches(8, 0)))

	result := DrywallForFloorPlan(plan, DefaultCalculationConfig())
	for _, item := range result.Materials.Items {
		if item.Location == "Back Porch" {
			t.Errorf("porch got drywall: %+v", item)
		}
	}
}

func TestInsulationSelection(t *testing.T) {
	config := DefaultCalculationConfig()
	height := models.NewFeetInches(9, 0)

	exterior := models.NewWall(models.ExteriorLoadBearing,
		models.NewPoint(0, 0), models.NewPoint(240, 0)) // 20 feet in inches
	list := ExteriorWallInsulation(exterior, height, config)
	item, ok := findItem(list, models.MatBattR19)
	if !ok || !nearlyEqual(item.Quantity, 180) {
		t.Errorf("exterior insulation = %+v", item)
	}

	foundation := models.NewWall(models.Foundation,
		models.NewPoint(0, 0), models.NewPoint(240, 0))
	if _, ok := findItem(ExteriorWallInsulation(foundation, height, config), models.MatBattR13); !ok {
		t.Error("foundation wall should take R-13")
	}

	attic := AtticInsulation(models.SquareFeet(1200), config)
	if item, ok := findItem(attic, models.MatBattR38); !ok || !nearlyEqual(item.Quantity, 1200) {
		t.Errorf("attic insulation = %+v", item)
	}
}

func TestFlooringSelection(t *testing.T) {
	tests := []struct {
		roomType models.RoomType
		wantID   string
	}{
		{models.MasterBath, models.MatTilePorcelain},
		{models.Kitchen, models.MatLvp},
		{models.Bedroom, models.MatCarpet},
		{models.LivingRoom, models.MatHardwoodOak},
		{models.Garage, models.MatLvp},
		{models.Porch, models.MatTilePorcelain},
		{models.Hallway, models.MatLvp},
	}
	for _, tt := range tests {
		got := flooringMaterialFor(tt.roomType)
		if got.ID != tt.wantID {
			t.Errorf("flooring for %s = %s, want %s", tt.roomType, got.ID, tt.wantID)
		}
	}
}

func TestFlooringUnderlayment(t *testing.T) {
	config := DefaultCalculationConfig()

	kitchen := models.NewRoom("Kitchen", models.Kitchen,
		models.NewFeetInches(14, 0), models.NewFeetInches(12, 0))
	list := FlooringForRoom(kitchen, config)
	under, ok := findItem(list, models.MatUnderlayment)
	if !ok || !nearlyEqual(under.Quantity, 168) {
		t.Errorf("underlayment = %+v", under)
	}

	bedroom := models.NewRoom("Bedroom", models.Bedroom,
		models.NewFeetInches(12, 0), models.NewFeetInches(10, 0))
	if _, ok := findItem(FlooringForRoom(bedroom, config), models.MatUnderlayment); ok {
		t.Error("carpeted room should not get underlayment")
	}
}

func TestTrimBaseboardByTier(t *testing.T) {
	room := models.NewRoom("Living Room", models.LivingRoom,
		models.NewFeetInches(16, 0), models.NewFeetInches(14, 0))

	standard := DefaultCalculationConfig()
	list := TrimForRoom(room, standard)
	base, ok := findItem(list, models.MatBaseboardMdf)
	if !ok || !nearlyEqual(base.Quantity, 60) {
		t.Errorf("standard baseboard = %+v", base)
	}
	if _, ok := findItem(list, models.MatCrownMoulding); ok {
		t.Error("standard tier should not get crown")
	}

	luxury := DefaultCalculationConfig()
	luxury.QualityTier = models.TierLuxury
	luxList := TrimForRoom(room, luxury)
	if _, ok := findItem(luxList, models.MatBaseboardWood); !ok {
		t.Error("luxury tier should get wood baseboard")
	}
	if _, ok := findItem(luxList, models.MatCrownMoulding); !ok {
		t.Error("luxury living room should get crown")
	}
}

func TestTrimCasingCounts(t *testing.T) {
	plan := models.NewFloorPlan("Main")
	plan.AddRoom(models.NewRoom("Office", models.Office,
		models.NewFeetInches(10, 0), models.NewFeetInches(10, 0)))

	wall := models.NewWall(models.ExteriorLoadBearing,
		models.NewPoint(0, 0), models.NewPoint(40, 0))
	wall.AddDoor(models.ExteriorEntry, models.NewFeetInches(4, 0))
	wall.AddDoor(models.InteriorSingle, models.NewFeetInches(12, 0))
	wall.AddWindow(models.DoubleHung, models.NewFeetInches(20, 0),
		models.NewFeetInches(3, 0), models.NewFeetInches(5, 0))
	plan.AddWall(wall)

	result := TrimForFloorPlan(plan, DefaultCalculationConfig())
	doorCasing, ok := findItem(result.Materials, models.MatDoorCasing)
	if !ok || doorCasing.Quantity != 2 {
		t.Errorf("door casing = %+v", doorCasing)
	}
	windowCasing, ok := findItem(result.Materials, models.MatWindowCasing)
	if !ok || windowCasing.Quantity != 1 {
		t.Errorf("window casing = %+v", windowCasing)
	}
}

func TestPaintForRoom(t *testing.T) {
	config := DefaultCalculationConfig()

	bedroom := models.NewRoom("Bedroom", models.Bedroom,
		models.NewFeetInches(12, 0), models.NewFeetInches(10, 0))
	list := PaintForRoom(bedroom, config)

	// 396 wall sqft, two coats at 400/gal -> 2 gallons.
	wall, ok := findItem(list, models.MatWallPaint)
	if !ok || wall.Quantity != 2 {
		t.Errorf("wall paint = %+v", wall)
	}

	primer, ok := findItem(list, models.MatPrimer)
	if !ok || primer.Quantity != 2 {
		t.Errorf("primer = %+v", primer)
	}
	if !nearlyEqual(primer.WasteFactor, 1.0) {
		t.Errorf("primer carries waste: %v", primer.WasteFactor)
	}

	ceiling, ok := findItem(list, models.MatCeilingPaint)
	if !ok || ceiling.Quantity != 1 {
		t.Errorf("ceiling paint = %+v", ceiling)
	}

	trim, ok := findItem(list, models.MatTrimPaint)
	if !ok || trim.Quantity != 1 {
		t.Errorf("trim paint = %+v", trim)
	}
}

func TestPaintSkipsGarageAndOutdoor(t *testing.T) {
	config := DefaultCalculationConfig()

	garage := models.NewRoom("Garage", models.Garage,
		models.NewFeetInches(24, 0), models.NewFeetInches(24, 0))
	if list := PaintForRoom(garage, config); len(list.Items) != 0 {
		t.Errorf("garage got paint: %+v", list.Items)
	}

	deck := models.NewRoom("Deck", models.Deck,
		models.NewFeetInches(16, 0), models.NewFeetInches(12, 0))
	if list := PaintForRoom(deck, config); len(list.Items) != 0 {
		t.Errorf("deck got paint: %+v", list.Items)
	}
}

func TestElectricalForKitchen(t *testing.T) {
	config := DefaultCalculationConfig()

	kitchen := models.NewRoom("Kitchen", models.Kitchen,
		models.NewFeetInches(14, 0), models.NewFeetInches(12, 0))
	list := ElectricalForRoom(kitchen, config)

	// Perimeter 52' -> 5 base outlets + 8 kitchen extras = 13.
	gfci := sumQuantity(list, models.MatOutletGfci)
	regular := sumQuantity(list, models.MatOutletStandard)
	if gfci != 4 || regular != 9 {
		t.Errorf("outlets = %v gfci + %v regular, want 4 + 9", gfci, regular)
	}

	// 168 sqft at 20 sqft per can -> 9 recessed lights.
	if lights := sumQuantity(list, models.MatRecessedLight); lights != 9 {
		t.Errorf("lights = %v, want 9", lights)
	}

	// 13 outlets + 3 switches + 9 lights.
	if boxes := sumQuantity(list, models.MatElectricalBox); boxes != 25 {
		t.Errorf("boxes = %v, want 25", boxes)
	}

	// 13 outlets x 20' + 100' dedicated = 360.
	if wire := sumQuantity(list, models.MatRomex122); !nearlyEqual(wire, 360) {
		t.Errorf("12/2 wire = %v, want 360", wire)
	}
	if wire := sumQuantity(list, models.MatRomex142); !nearlyEqual(wire, 135) {
		t.Errorf("14/2 wire = %v, want 135", wire)
	}
}

func TestElectricalSwitchTable(t *testing.T) {
	tests := []struct {
		roomType   models.RoomType
		singlePole int
		threeWay   int
	}{
		{models.MasterSuite, 2, 2},
		{models.Bedroom, 1, 1},
		{models.Kitchen, 2, 1},
		{models.Hallway, 0, 2},
		{models.Garage, 2, 1},
		{models.Closet, 1, 0},
	}
	for _, tt := range tests {
		single, three := switchesForRoom(tt.roomType)
		if single != tt.singlePole || three != tt.threeWay {
			t.Errorf("switchesForRoom(%s) = %d, %d; want %d, %d",
				tt.roomType, single, three, tt.singlePole, tt.threeWay)
		}
	}
}

func TestElectricalFloorAddsPanel(t *testing.T) {
	plan := models.NewFloorPlan("Main")
	for i := 0; i < 4; i++ {
		plan.AddRoom(models.NewRoom("Bedroom", models.Bedroom,
			models.NewFeetInches(12, 0), models.NewFeetInches(10, 0)))
	}

	result := ElectricalForFloorPlan(plan, DefaultCalculationConfig())
	if panel := sumQuantity(result.Materials, models.MatPanel200A); panel != 1 {
		t.Errorf("panel = %v, want 1", panel)
	}
	// 4 rooms x 2.5 circuits = 10 -> 4 x 15A + 6 x 20A.
	if brk := sumQuantity(result.Materials, models.MatBreaker15A); brk != 4 {
		t.Errorf("15A breakers = %v, want 4", brk)
	}
	if brk := sumQuantity(result.Materials, models.MatBreaker20A); brk != 6 {
		t.Errorf("20A breakers = %v, want 6", brk)
	}
}

func TestCalculateFloorPlanOrder(t *testing.T) {
	plan := models.NewFloorPlan("Main Floor")
	plan.AddRoom(models.NewRoom("Living Room", models.LivingRoom,
		models.NewFeetInches(18, 0), models.NewFeetInches(14, 0)))
	plan.AddWall(models.NewWall(models.ExteriorLoadBearing,
		models.NewPoint(0, 0), models.NewPoint(18, 0)))

	results := CalculateFloorPlan(plan, DefaultCalculationConfig())
	if len(results) != 6 {
		t.Fatalf("results = %d, want 6", len(results))
	}

	wantSuffixes := []string{"Wall Framing", "Drywall", "Flooring", "Trim", "Paint", "Electrical"}
	for i, want := range wantSuffixes {
		if !strings.HasSuffix(results[i].Description, want) {
			t.Errorf("results[%d] = %q, want suffix %q", i, results[i].Description, want)
		}
	}
}

func TestCalculateProjectAndBreakdown(t *testing.T) {
	project := models.NewProject("Test House")
	plan := models.NewFloorPlan("Main Floor")
	plan.AddRoom(models.NewRoom("Living Room", models.LivingRoom,
		models.NewFeetInches(18, 0), models.NewFeetInches(14, 0)))
	project.AddFloorPlan(plan)

	results := CalculateProject(project, DefaultCalculationConfig())
	if len(results) != 6 {
		t.Fatalf("results = %d, want 6", len(results))
	}

	total := TotalProjectCost(results)
	if total <= 0 {
		t.Errorf("total = %v", total)
	}

	breakdown := CostBreakdownByCategory(results)
	if len(breakdown) != 6 {
		t.Errorf("breakdown categories = %d, want 6", len(breakdown))
	}
	sum := 0.0
	for _, cost := range breakdown {
		sum += cost
	}
	if !nearlyEqual(sum, total) {
		t.Errorf("breakdown sum = %v, total = %v", sum, total)
	}
}

func TestCalculationResultCostPerSqft(t *testing.T) {
	plan := models.NewFloorPlan("Main")
	plan.AddRoom(models.NewRoom("Office", models.Office,
		models.NewFeetInches(10, 0), models.NewFeetInches(10, 0)))

	result := DrywallForFloorPlan(plan, DefaultCalculationConfig())
	if result.CostPerSqft == nil {
		t.Fatal("CostPerSqft not set")
	}
	want := result.TotalCost / 100.0
	if !nearlyEqual(*result.CostPerSqft, want) {
		t.Errorf("CostPerSqft = %v, want %v", *result.CostPerSqft, want)
	}

	empty := models.NewFloorPlan("Empty")
	if r := DrywallForFloorPlan(empty, DefaultCalculationConfig()); r.CostPerSqft != nil {
		t.Errorf("empty floor CostPerSqft = %v", *r.CostPerSqft)
	}
}

package models

import (
	"fmt"
	"strings"
)

// MaterialCategory groups materials for take-offs and reporting.
type MaterialCategory string

const (
	CategoryLumber      MaterialCategory = "lumber"
	CategorySheetGoods  MaterialCategory = "sheet_goods"
	CategoryFlooring    MaterialCategory = "flooring"
	CategoryRoofing     MaterialCategory = "roofing"
	CategoryInsulation  MaterialCategory = "insulation"
	CategoryElectrical  MaterialCategory = "electrical"
	CategoryPlumbing    MaterialCategory = "plumbing"
	CategoryHvac        MaterialCategory = "hvac"
	CategoryDoors       MaterialCategory = "doors"
	CategoryWindows     MaterialCategory = "windows"
	CategoryTrim        MaterialCategory = "trim"
	CategoryPaint       MaterialCategory = "paint"
	CategoryHardware    MaterialCategory = "hardware"
	CategoryConcrete    MaterialCategory = "concrete"
	CategoryFasteners   MaterialCategory = "fasteners"
	CategorySiding      MaterialCategory = "siding"
	CategoryCabinetry   MaterialCategory = "cabinetry"
	CategoryCountertops MaterialCategory = "countertops"
	CategoryAppliances  MaterialCategory = "appliances"
)

// DisplayName is the human-readable category label.
func (mc MaterialCategory) DisplayName() string {
	switch mc {
	case CategoryLumber:
		return "Lumber"
	case CategorySheetGoods:
		return "Sheet Goods"
	case CategoryFlooring:
		return "Flooring"
	case CategoryRoofing:
		return "Roofing"
	case CategoryInsulation:
		return "Insulation"
	case CategoryElectrical:
		return "Electrical"
	case CategoryPlumbing:
		return "Plumbing"
	case CategoryHvac:
		return "HVAC"
	case CategoryDoors:
		return "Doors"
	case CategoryWindows:
		return "Windows"
	case CategoryTrim:
		return "Trim & Millwork"
	case CategoryPaint:
		return "Paint & Finishes"
	case CategoryHardware:
		return "Hardware"
	case CategoryConcrete:
		return "Concrete & Masonry"
	case CategoryFasteners:
		return "Fasteners"
	case CategorySiding:
		return "Exterior Siding"
	case CategoryCabinetry:
		return "Cabinetry"
	case CategoryCountertops:
		return "Countertops"
	case CategoryAppliances:
		return "Appliances"
	default:
		return string(mc)
	}
}

// ParseMaterialCategory maps a request string to a category.
func ParseMaterialCategory(s string) (MaterialCategory, error) {
	switch strings.ToLower(s) {
	case "lumber":
		return CategoryLumber, nil
	case "sheetgoods", "sheet_goods":
		return CategorySheetGoods, nil
	case "flooring":
		return CategoryFlooring, nil
	case "roofing":
		return CategoryRoofing, nil
	case "insulation":
		return CategoryInsulation, nil
	case "electrical":
		return CategoryElectrical, nil
	case "plumbing":
		return CategoryPlumbing, nil
	case "hvac":
		return CategoryHvac, nil
	case "doors":
		return CategoryDoors, nil
	case "windows":
		return CategoryWindows, nil
	case "trim":
		return CategoryTrim, nil
	case "paint":
		return CategoryPaint, nil
	case "hardware":
		return CategoryHardware, nil
	case "concrete":
		return CategoryConcrete, nil
	case "fasteners":
		return CategoryFasteners, nil
	case "siding":
		return CategorySiding, nil
	case "cabinetry":
		return CategoryCabinetry, nil
	case "countertops":
		return CategoryCountertops, nil
	case "appliances":
		return CategoryAppliances, nil
	default:
		return "", fmt.Errorf("unknown material category: %s", s)
	}
}

// MaterialUnit is the unit a material is sold in.
type MaterialUnit string

const (
	UnitEach       MaterialUnit = "each"
	UnitLinearFoot MaterialUnit = "linear_foot"
	UnitSquareFoot MaterialUnit = "square_foot"
	UnitBoardFoot  MaterialUnit = "board_foot"
	UnitCubicYard  MaterialUnit = "cubic_yard"
	UnitBundle     MaterialUnit = "bundle"
	UnitRoll       MaterialUnit = "roll"
	UnitGallon     MaterialUnit = "gallon"
	UnitBag        MaterialUnit = "bag"
	UnitBox        MaterialUnit = "box"
	UnitSheet      MaterialUnit = "sheet"
	UnitPair       MaterialUnit = "pair"
)

// Abbreviation is the short form used on reports.
func (mu MaterialUnit) Abbreviation() string {
	switch mu {
	case UnitEach:
		return "ea"
	case UnitLinearFoot:
		return "LF"
	case UnitSquareFoot:
		return "SF"
	case UnitBoardFoot:
		return "BF"
	case UnitCubicYard:
		return "CY"
	case UnitBundle:
		return "bdl"
	case UnitRoll:
		return "roll"
	case UnitGallon:
		return "gal"
	case UnitBag:
		return "bag"
	case UnitBox:
		return "box"
	case UnitSheet:
		return "sht"
	case UnitPair:
		return "pr"
	default:
		return string(mu)
	}
}

// Material is a priced catalog entry.
type Material struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Category MaterialCategory `json:"category"`
	Unit     MaterialUnit     `json:"unit"`
	// Per-unit prices by quality tier.
	PriceEconomy  float64 `json:"price_economy"`
	PriceStandard float64 `json:"price_standard"`
	PricePremium  float64 `json:"price_premium"`
	PriceLuxury   float64 `json:"price_luxury"`
	Description   string  `json:"description,omitempty"`
	// Typical coverage per unit, e.g. one gallon covers 400 SF.
	Coverage     float64      `json:"coverage,omitempty"`
	CoverageUnit MaterialUnit `json:"coverage_unit,omitempty"`
}

// NewMaterial derives tier prices from the standard price.
func NewMaterial(id, name string, category MaterialCategory, unit MaterialUnit, price float64) Material {
	return Material{
		ID:            id,
		Name:          name,
		Category:      category,
		Unit:          unit,
		PriceEconomy:  price * 0.75,
		PriceStandard: price,
		PricePremium:  price * 1.5,
		PriceLuxury:   price * 2.5,
	}
}

func (m Material) WithTieredPricing(economy, standard, premium, luxury float64) Material {
	m.PriceEconomy = economy
	m.PriceStandard = standard
	m.PricePremium = premium
	m.PriceLuxury = luxury
	return m
}

func (m Material) WithCoverage(coverage float64, unit MaterialUnit) Material {
	m.Coverage = coverage
	m.CoverageUnit = unit
	return m
}

func (m Material) WithDescription(description string) Material {
	m.Description = description
	return m
}

// PriceForTier returns the per-unit price for the tier.
func (m Material) PriceForTier(tier QualityTier) float64 {
	switch tier {
	case TierEconomy:
		return m.PriceEconomy
	case TierPremium:
		return m.PricePremium
	case TierLuxury:
		return m.PriceLuxury
	default:
		return m.PriceStandard
	}
}

// MaterialLineItem is one material with a quantity on a take-off.
type MaterialLineItem struct {
	Material Material `json:"material"`
	Quantity float64  `json:"quantity"`
	// Waste factor, e.g. 1.1 = 10% waste.
	WasteFactor float64 `json:"waste_factor"`
	Location    string  `json:"location,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

func NewMaterialLineItem(material Material, quantity float64) MaterialLineItem {
	return MaterialLineItem{
		Material:    material,
		Quantity:    quantity,
		WasteFactor: 1.0,
	}
}

func (li MaterialLineItem) WithWaste(factor float64) MaterialLineItem {
	li.WasteFactor = factor
	return li
}

func (li MaterialLineItem) WithLocation(location string) MaterialLineItem {
	li.Location = location
	return li
}

func (li MaterialLineItem) WithNotes(notes string) MaterialLineItem {
	li.Notes = notes
	return li
}

// QuantityWithWaste applies the waste factor.
func (li MaterialLineItem) QuantityWithWaste() float64 {
	return li.Quantity * li.WasteFactor
}

// TotalCost is the extended cost at the given tier.
func (li MaterialLineItem) TotalCost(tier QualityTier) float64 {
	return li.QuantityWithWaste() * li.Material.PriceForTier(tier)
}

// MaterialList is a named take-off for a project, floor, or trade.
type MaterialList struct {
	Name  string             `json:"name"`
	Items []MaterialLineItem `json:"items"`
}

func NewMaterialList(name string) MaterialList {
	return MaterialList{Name: name, Items: []MaterialLineItem{}}
}

func (ml *MaterialList) AddItem(item MaterialLineItem) {
	ml.Items = append(ml.Items, item)
}

func (ml *MaterialList) Add(material Material, quantity float64) {
	ml.Items = append(ml.Items, NewMaterialLineItem(material, quantity))
}

func (ml MaterialList) ItemsByCategory(category MaterialCategory) []MaterialLineItem {
	var out []MaterialLineItem
	for _, item := range ml.Items {
		if item.Material.Category == category {
			out = append(out, item)
		}
	}
	return out
}

func (ml MaterialList) TotalCost(tier QualityTier) float64 {
	total := 0.0
	for _, item := range ml.Items {
		total += item.TotalCost(tier)
	}
	return total
}

func (ml MaterialList) CostByCategory(category MaterialCategory, tier QualityTier) float64 {
	total := 0.0
	for _, item := range ml.Items {
		if item.Material.Category == category {
			total += item.TotalCost(tier)
		}
	}
	return total
}

// Merge appends the items of another list into this one.
func (ml *MaterialList) Merge(other MaterialList) {
	ml.Items = append(ml.Items, other.Items...)
}

// Catalog material IDs referenced by the calculators.
const (
	MatStud2x4x8      = "LUM-2x4-8"
	MatStud2x4x10     = "LUM-2x4-10"
	MatStud2x6x8      = "LUM-2x6-8"
	MatStud2x6x10     = "LUM-2x6-10"
	MatPlate2x4       = "LUM-2x4-PLT"
	MatPlate2x6       = "LUM-2x6-PLT"
	MatHeader2x10     = "LUM-2x10-HDR"
	MatHeader2x12     = "LUM-2x12-HDR"
	MatLvlBeam        = "LUM-LVL"
	MatOsb716         = "SHT-OSB-7/16"
	MatPlywood12      = "SHT-PLY-1/2"
	MatPlywood34      = "SHT-PLY-3/4"
	MatDrywall12      = "SHT-DW-1/2"
	MatDrywall58      = "SHT-DW-5/8"
	MatCementBoard    = "SHT-CB"
	MatBattR13        = "INS-R13"
	MatBattR19        = "INS-R19"
	MatBattR38        = "INS-R38"
	MatSprayFoam      = "INS-SPF-CC"
	MatRigidFoam      = "INS-RIGID-1"
	MatHardwoodOak    = "FLR-OAK"
	MatEngineeredWood = "FLR-ENG"
	MatLvp            = "FLR-LVP"
	MatTileCeramic    = "FLR-TILE-CER"
	MatTilePorcelain  = "FLR-TILE-POR"
	MatCarpet         = "FLR-CARPET"
	MatUnderlayment   = "FLR-UNDER"
	MatBaseboardMdf   = "TRM-BASE-MDF"
	MatBaseboardWood  = "TRM-BASE-WOOD"
	MatCrownMoulding  = "TRM-CROWN"
	MatDoorCasing     = "TRM-CASE"
	MatWindowCasing   = "TRM-WIN"
	MatChairRail      = "TRM-CHAIR"
	MatWallPaint      = "PNT-INT-WALL"
	MatCeilingPaint   = "PNT-INT-CEIL"
	MatPrimer         = "PNT-PRIMER"
	MatExteriorPaint  = "PNT-EXT"
	MatTrimPaint      = "PNT-TRIM"
	MatStain          = "PNT-STAIN"
	MatRomex142       = "ELEC-14-2"
	MatRomex122       = "ELEC-12-2"
	MatOutletStandard = "ELEC-OUT-STD"
	MatOutletGfci     = "ELEC-OUT-GFCI"
	MatSwitchSingle   = "ELEC-SW-1"
	MatSwitch3Way     = "ELEC-SW-3"
	MatElectricalBox  = "ELEC-BOX"
	MatBreaker15A     = "ELEC-BRK-15"
	MatBreaker20A     = "ELEC-BRK-20"
	MatPanel200A      = "ELEC-PNL-200"
	MatRecessedLight  = "ELEC-REC"
	MatFramingNails   = "FAST-NAIL-FR"
	MatDrywallScrews  = "FAST-SCR-DW"
)

// catalog is the standard materials table. Built once at startup;
// all lookups hand out copies so callers cannot mutate it.
var catalog = buildCatalog()

var catalogByID = func() map[string]int {
	index := make(map[string]int, len(catalog))
	for i, m := range catalog {
		index[m.ID] = i
	}
	return index
}()

func buildCatalog() []Material {
	return []Material{
		// Lumber
		NewMaterial(MatStud2x4x8, "2x4x8' Stud", CategoryLumber, UnitEach, 4.50).
			WithTieredPricing(3.50, 4.50, 6.00, 8.00).
			WithDescription("Kiln-dried SPF stud grade"),
		NewMaterial(MatStud2x4x10, "2x4x10' Stud", CategoryLumber, UnitEach, 5.75).
			WithTieredPricing(4.50, 5.75, 7.50, 10.00),
		NewMaterial(MatStud2x6x8, "2x6x8' Stud", CategoryLumber, UnitEach, 7.50).
			WithTieredPricing(6.00, 7.50, 10.00, 14.00).
			WithDescription("Kiln-dried SPF stud grade"),
		NewMaterial(MatStud2x6x10, "2x6x10' Stud", CategoryLumber, UnitEach, 9.25).
			WithTieredPricing(7.50, 9.25, 12.00, 16.00),
		NewMaterial(MatPlate2x4, "2x4 Plate Stock", CategoryLumber, UnitLinearFoot, 0.60).
			WithTieredPricing(0.45, 0.60, 0.80, 1.10),
		NewMaterial(MatPlate2x6, "2x6 Plate Stock", CategoryLumber, UnitLinearFoot, 0.95).
			WithTieredPricing(0.75, 0.95, 1.25, 1.75),
		NewMaterial(MatHeader2x10, "2x10 Header Stock", CategoryLumber, UnitLinearFoot, 1.85).
			WithTieredPricing(1.50, 1.85, 2.50, 3.50),
		NewMaterial(MatHeader2x12, "2x12 Header Stock", CategoryLumber, UnitLinearFoot, 2.25).
			WithTieredPricing(1.85, 2.25, 3.00, 4.25),
		NewMaterial(MatLvlBeam, "LVL Beam", CategoryLumber, UnitLinearFoot, 4.50).
			WithTieredPricing(3.75, 4.50, 5.50, 7.00).
			WithDescription("Laminated Veneer Lumber"),

		// Sheet goods
		NewMaterial(MatOsb716, "7/16\" OSB Sheathing", CategorySheetGoods, UnitSheet, 14.00).
			WithTieredPricing(12.00, 14.00, 18.00, 24.00).
			WithDescription("4x8 sheet, wall sheathing").
			WithCoverage(32.0, UnitSquareFoot),
		NewMaterial(MatPlywood12, "1/2\" CDX Plywood", CategorySheetGoods, UnitSheet, 28.00).
			WithTieredPricing(24.00, 28.00, 35.00, 45.00).
			WithCoverage(32.0, UnitSquareFoot),
		NewMaterial(MatPlywood34, "3/4\" CDX Plywood", CategorySheetGoods, UnitSheet, 42.00).
			WithTieredPricing(36.00, 42.00, 52.00, 65.00).
			WithDescription("Subfloor grade").
			WithCoverage(32.0, UnitSquareFoot),
		NewMaterial(MatDrywall12, "1/2\" Drywall", CategorySheetGoods, UnitSheet, 12.00).
			WithTieredPricing(10.00, 12.00, 15.00, 20.00).
			WithDescription("4x8 standard drywall").
			WithCoverage(32.0, UnitSquareFoot),
		NewMaterial(MatDrywall58, "5/8\" Drywall", CategorySheetGoods, UnitSheet, 14.00).
			WithTieredPricing(12.00, 14.00, 18.00, 24.00).
			WithDescription("4x8 fire-rated drywall").
			WithCoverage(32.0, UnitSquareFoot),
		NewMaterial(MatCementBoard, "1/2\" Cement Board", CategorySheetGoods, UnitSheet, 18.00).
			WithTieredPricing(15.00, 18.00, 22.00, 28.00).
			WithDescription("3x5 backer board for tile").
			WithCoverage(15.0, UnitSquareFoot),

		// Insulation
		NewMaterial(MatBattR13, "R-13 Fiberglass Batt", CategoryInsulation, UnitSquareFoot, 0.50).
			WithTieredPricing(0.40, 0.50, 0.75, 1.00).
			WithDescription("3.5\" thick for 2x4 walls"),
		NewMaterial(MatBattR19, "R-19 Fiberglass Batt", CategoryInsulation, UnitSquareFoot, 0.65).
			WithTieredPricing(0.55, 0.65, 0.90, 1.25).
			WithDescription("6.25\" thick for 2x6 walls"),
		NewMaterial(MatBattR38, "R-38 Fiberglass Batt", CategoryInsulation, UnitSquareFoot, 1.10).
			WithTieredPricing(0.90, 1.10, 1.50, 2.00).
			WithDescription("12\" thick for attic"),
		NewMaterial(MatSprayFoam, "Closed Cell Spray Foam", CategoryInsulation, UnitSquareFoot, 2.50).
			WithTieredPricing(2.00, 2.50, 3.25, 4.50).
			WithDescription("Per inch of thickness"),
		NewMaterial(MatRigidFoam, "1\" Rigid Foam Board", CategoryInsulation, UnitSheet, 22.00).
			WithTieredPricing(18.00, 22.00, 28.00, 36.00).
			WithDescription("4x8 XPS or EPS board").
			WithCoverage(32.0, UnitSquareFoot),

		// Flooring
		NewMaterial(MatHardwoodOak, "Oak Hardwood Flooring", CategoryFlooring, UnitSquareFoot, 6.00).
			WithTieredPricing(4.00, 6.00, 9.00, 15.00).
			WithDescription("3/4\" solid oak, unfinished"),
		NewMaterial(MatEngineeredWood, "Engineered Hardwood", CategoryFlooring, UnitSquareFoot, 5.00).
			WithTieredPricing(3.50, 5.00, 8.00, 12.00),
		NewMaterial(MatLvp, "Luxury Vinyl Plank", CategoryFlooring, UnitSquareFoot, 3.50).
			WithTieredPricing(2.00, 3.50, 5.50, 8.00),
		NewMaterial(MatTileCeramic, "Ceramic Tile", CategoryFlooring, UnitSquareFoot, 2.50).
			WithTieredPricing(1.50, 2.50, 5.00, 12.00),
		NewMaterial(MatTilePorcelain, "Porcelain Tile", CategoryFlooring, UnitSquareFoot, 4.00).
			WithTieredPricing(2.50, 4.00, 8.00, 18.00),
		NewMaterial(MatCarpet, "Carpet with Pad", CategoryFlooring, UnitSquareFoot, 4.00).
			WithTieredPricing(2.50, 4.00, 7.00, 12.00),
		NewMaterial(MatUnderlayment, "Flooring Underlayment", CategoryFlooring, UnitSquareFoot, 0.50).
			WithTieredPricing(0.30, 0.50, 0.80, 1.25),

		// Trim
		NewMaterial(MatBaseboardMdf, "MDF Baseboard 3.25\"", CategoryTrim, UnitLinearFoot, 1.00).
			WithTieredPricing(0.75, 1.00, 1.50, 2.50),
		NewMaterial(MatBaseboardWood, "Wood Baseboard 3.25\"", CategoryTrim, UnitLinearFoot, 2.00).
			WithTieredPricing(1.50, 2.00, 3.50, 6.00),
		NewMaterial(MatCrownMoulding, "Crown Moulding 4.5\"", CategoryTrim, UnitLinearFoot, 2.50).
			WithTieredPricing(1.75, 2.50, 4.50, 8.00),
		NewMaterial(MatDoorCasing, "Door Casing Set", CategoryTrim, UnitEach, 25.00).
			WithTieredPricing(18.00, 25.00, 45.00, 80.00).
			WithDescription("Both sides of door opening"),
		NewMaterial(MatWindowCasing, "Window Casing Set", CategoryTrim, UnitEach, 30.00).
			WithTieredPricing(22.00, 30.00, 55.00, 95.00),
		NewMaterial(MatChairRail, "Chair Rail", CategoryTrim, UnitLinearFoot, 1.75).
			WithTieredPricing(1.25, 1.75, 3.00, 5.50),

		// Paint
		NewMaterial(MatWallPaint, "Interior Wall Paint", CategoryPaint, UnitGallon, 35.00).
			WithTieredPricing(25.00, 35.00, 55.00, 85.00).
			WithDescription("Eggshell/satin finish").
			WithCoverage(400.0, UnitSquareFoot),
		NewMaterial(MatCeilingPaint, "Interior Ceiling Paint", CategoryPaint, UnitGallon, 30.00).
			WithTieredPricing(22.00, 30.00, 45.00, 70.00).
			WithDescription("Flat white").
			WithCoverage(400.0, UnitSquareFoot),
		NewMaterial(MatPrimer, "Primer", CategoryPaint, UnitGallon, 28.00).
			WithTieredPricing(20.00, 28.00, 40.00, 55.00).
			WithCoverage(350.0, UnitSquareFoot),
		NewMaterial(MatExteriorPaint, "Exterior Paint", CategoryPaint, UnitGallon, 45.00).
			WithTieredPricing(32.00, 45.00, 65.00, 95.00).
			WithCoverage(350.0, UnitSquareFoot),
		NewMaterial(MatTrimPaint, "Trim Paint (Semi-Gloss)", CategoryPaint, UnitGallon, 40.00).
			WithTieredPricing(28.00, 40.00, 60.00, 90.00).
			WithCoverage(400.0, UnitSquareFoot),
		NewMaterial(MatStain, "Wood Stain", CategoryPaint, UnitGallon, 35.00).
			WithTieredPricing(25.00, 35.00, 50.00, 75.00).
			WithCoverage(300.0, UnitSquareFoot),

		// Doors
		NewMaterial("DR-INT-HC", "Interior Hollow Core Door", CategoryDoors, UnitEach, 65.00).
			WithTieredPricing(45.00, 65.00, 120.00, 200.00).
			WithDescription("6-panel, primed"),
		NewMaterial("DR-INT-SC", "Interior Solid Core Door", CategoryDoors, UnitEach, 150.00).
			WithTieredPricing(100.00, 150.00, 250.00, 450.00),
		NewMaterial("DR-EXT-STL", "Exterior Steel Entry Door", CategoryDoors, UnitEach, 350.00).
			WithTieredPricing(250.00, 350.00, 600.00, 1200.00),
		NewMaterial("DR-EXT-FG", "Exterior Fiberglass Door", CategoryDoors, UnitEach, 450.00).
			WithTieredPricing(300.00, 450.00, 800.00, 1800.00),
		NewMaterial("DR-SLIDE", "Sliding Glass Door 6'", CategoryDoors, UnitEach, 650.00).
			WithTieredPricing(450.00, 650.00, 1200.00, 2500.00),
		NewMaterial("DR-FRENCH", "French Doors (Pair)", CategoryDoors, UnitEach, 800.00).
			WithTieredPricing(550.00, 800.00, 1500.00, 3500.00),
		NewMaterial("DR-BIFOLD", "Bi-Fold Closet Door", CategoryDoors, UnitEach, 85.00).
			WithTieredPricing(55.00, 85.00, 150.00, 280.00),
		NewMaterial("DR-GARAGE", "Garage Door 16x7", CategoryDoors, UnitEach, 1200.00).
			WithTieredPricing(800.00, 1200.00, 2200.00, 4500.00),

		// Windows
		NewMaterial("WIN-DH-VIN", "Double Hung Vinyl Window", CategoryWindows, UnitEach, 275.00).
			WithTieredPricing(180.00, 275.00, 450.00, 800.00).
			WithDescription("Standard 3'x4' size"),
		NewMaterial("WIN-DH-WOOD", "Double Hung Wood Window", CategoryWindows, UnitEach, 450.00).
			WithTieredPricing(300.00, 450.00, 750.00, 1400.00),
		NewMaterial("WIN-CASE", "Casement Window", CategoryWindows, UnitEach, 350.00).
			WithTieredPricing(250.00, 350.00, 550.00, 950.00),
		NewMaterial("WIN-PIC", "Picture Window", CategoryWindows, UnitEach, 400.00).
			WithTieredPricing(280.00, 400.00, 700.00, 1200.00),
		NewMaterial("WIN-BAY", "Bay Window", CategoryWindows, UnitEach, 1500.00).
			WithTieredPricing(1000.00, 1500.00, 2500.00, 5000.00),
		NewMaterial("WIN-SKY", "Skylight", CategoryWindows, UnitEach, 600.00).
			WithTieredPricing(400.00, 600.00, 1100.00, 2200.00),

		// Electrical
		NewMaterial(MatRomex142, "14/2 Romex Wire", CategoryElectrical, UnitLinearFoot, 0.45).
			WithTieredPricing(0.35, 0.45, 0.55, 0.70).
			WithDescription("15 amp circuits"),
		NewMaterial(MatRomex122, "12/2 Romex Wire", CategoryElectrical, UnitLinearFoot, 0.65).
			WithTieredPricing(0.50, 0.65, 0.80, 1.00).
			WithDescription("20 amp circuits"),
		NewMaterial(MatOutletStandard, "Standard Outlet", CategoryElectrical, UnitEach, 3.00).
			WithTieredPricing(2.00, 3.00, 8.00, 20.00),
		NewMaterial(MatOutletGfci, "GFCI Outlet", CategoryElectrical, UnitEach, 18.00).
			WithTieredPricing(12.00, 18.00, 30.00, 50.00),
		NewMaterial(MatSwitchSingle, "Single Pole Switch", CategoryElectrical, UnitEach, 3.00).
			WithTieredPricing(2.00, 3.00, 10.00, 25.00),
		NewMaterial(MatSwitch3Way, "3-Way Switch", CategoryElectrical, UnitEach, 5.00).
			WithTieredPricing(3.50, 5.00, 15.00, 35.00),
		NewMaterial(MatElectricalBox, "Electrical Box", CategoryElectrical, UnitEach, 2.00).
			WithTieredPricing(1.50, 2.00, 3.50, 6.00),
		NewMaterial(MatBreaker15A, "15A Circuit Breaker", CategoryElectrical, UnitEach, 8.00).
			WithTieredPricing(6.00, 8.00, 12.00, 18.00),
		NewMaterial(MatBreaker20A, "20A Circuit Breaker", CategoryElectrical, UnitEach, 10.00).
			WithTieredPricing(8.00, 10.00, 15.00, 22.00),
		NewMaterial(MatPanel200A, "200A Main Panel", CategoryElectrical, UnitEach, 350.00).
			WithTieredPricing(250.00, 350.00, 500.00, 750.00),
		NewMaterial(MatRecessedLight, "Recessed Light (Can)", CategoryElectrical, UnitEach, 25.00).
			WithTieredPricing(15.00, 25.00, 50.00, 100.00),

		// Fasteners
		NewMaterial(MatFramingNails, "Framing Nails (16d)", CategoryFasteners, UnitBox, 45.00).
			WithTieredPricing(35.00, 45.00, 55.00, 70.00).
			WithDescription("5 lb box"),
		NewMaterial(MatDrywallScrews, "Drywall Screws 1-5/8\"", CategoryFasteners, UnitBox, 12.00).
			WithTieredPricing(9.00, 12.00, 15.00, 20.00).
			WithDescription("1 lb box"),
		NewMaterial("FAST-SCR-DK", "Deck Screws 3\"", CategoryFasteners, UnitBox, 35.00).
			WithTieredPricing(28.00, 35.00, 45.00, 60.00).
			WithDescription("5 lb box"),
		NewMaterial("FAST-ADH", "Construction Adhesive", CategoryFasteners, UnitEach, 6.00).
			WithTieredPricing(4.50, 6.00, 8.00, 12.00).
			WithDescription("28 oz tube"),
		NewMaterial("FAST-TIE", "Simpson Strong-Tie", CategoryFasteners, UnitEach, 3.50).
			WithTieredPricing(2.50, 3.50, 4.50, 6.00),
	}
}

// AllMaterials returns a copy of the standard catalog.
func AllMaterials() []Material {
	out := make([]Material, len(catalog))
	copy(out, catalog)
	return out
}

// MaterialByID looks up one catalog entry.
func MaterialByID(id string) (Material, bool) {
	if i, ok := catalogByID[id]; ok {
		return catalog[i], true
	}
	return Material{}, false
}

// MustMaterialByID panics on an unknown ID. The calculators only
// reference the constants above, so a miss is a programming error.
func MustMaterialByID(id string) Material {
	m, ok := MaterialByID(id)
	if !ok {
		panic(fmt.Sprintf("unknown material id: %s", id))
	}
	return m
}

// MaterialsByCategory returns the catalog entries in one category.
func MaterialsByCategory(category MaterialCategory) []Material {
	var out []Material
	for _, m := range catalog {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

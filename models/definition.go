package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FloorPlanDefinition is the external JSON shape for a floor plan.
// Dimensions are architectural strings so plans stay hand-editable.
type FloorPlanDefinition struct {
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	Level         int              `json:"level"`
	OverallLength string           `json:"overall_length,omitempty"`
	OverallWidth  string           `json:"overall_width,omitempty"`
	Rooms         []RoomDefinition `json:"rooms"`
	Walls         []WallDefinition `json:"walls"`
}

// RoomDefinition describes one room in a plan file.
type RoomDefinition struct {
	Name     string `json:"name"`
	RoomType string `json:"type"`
	// Position of the bottom-left corner.
	X       float64            `json:"x"`
	Y       float64            `json:"y"`
	Length  string             `json:"length"`
	Width   string             `json:"width"`
	Ceiling *CeilingDefinition `json:"ceiling,omitempty"`
	Notes   string             `json:"notes,omitempty"`
}

// CeilingDefinition accepts either a plain height string or an object
// with a "type" discriminator for vaulted and tray ceilings.
type CeilingDefinition struct {
	Standard        string
	CeilingType     string
	MinHeight       string
	Pitch           int
	PerimeterHeight string
	CenterHeight    string
	TrayWidth       string
}

type ceilingObject struct {
	CeilingType     string `json:"type"`
	MinHeight       string `json:"min_height,omitempty"`
	Pitch           int    `json:"pitch,omitempty"`
	PerimeterHeight string `json:"perimeter_height,omitempty"`
	CenterHeight    string `json:"center_height,omitempty"`
	TrayWidth       string `json:"tray_width,omitempty"`
}

func (cd *CeilingDefinition) UnmarshalJSON(data []byte) error {
	var height string
	if err := json.Unmarshal(data, &height); err == nil {
		*cd = CeilingDefinition{Standard: height}
		return nil
	}

	var obj ceilingObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*cd = CeilingDefinition{
		CeilingType:     obj.CeilingType,
		MinHeight:       obj.MinHeight,
		Pitch:           obj.Pitch,
		PerimeterHeight: obj.PerimeterHeight,
		CenterHeight:    obj.CenterHeight,
		TrayWidth:       obj.TrayWidth,
	}
	if cd.TrayWidth == "" {
		cd.TrayWidth = `2'-0"`
	}
	return nil
}

func (cd CeilingDefinition) MarshalJSON() ([]byte, error) {
	if cd.Standard != "" {
		return json.Marshal(cd.Standard)
	}
	return json.Marshal(ceilingObject{
		CeilingType:     cd.CeilingType,
		MinHeight:       cd.MinHeight,
		Pitch:           cd.Pitch,
		PerimeterHeight: cd.PerimeterHeight,
		CenterHeight:    cd.CenterHeight,
		TrayWidth:       cd.TrayWidth,
	})
}

// WallDefinition describes one wall segment in a plan file.
type WallDefinition struct {
	WallType string             `json:"type"`
	Start    PointDefinition    `json:"start"`
	End      PointDefinition    `json:"end"`
	Height   string             `json:"height,omitempty"`
	Doors    []DoorDefinition   `json:"doors,omitempty"`
	Windows  []WindowDefinition `json:"windows,omitempty"`
}

type PointDefinition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type DoorDefinition struct {
	DoorType string `json:"type"`
	Position string `json:"position"`
	Width    string `json:"width,omitempty"`
	Height   string `json:"height,omitempty"`
}

type WindowDefinition struct {
	WindowType string `json:"type"`
	Position   string `json:"position"`
	Width      string `json:"width"`
	Height     string `json:"height"`
	SillHeight string `json:"sill_height,omitempty"`
}

// ParseFloorPlanDefinition decodes a JSON plan definition.
func ParseFloorPlanDefinition(data []byte) (FloorPlanDefinition, error) {
	var def FloorPlanDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return FloorPlanDefinition{}, err
	}
	return def, nil
}

// ToJSON serializes the definition with indentation.
func (def FloorPlanDefinition) ToJSON() ([]byte, error) {
	return json.MarshalIndent(def, "", "  ")
}

// ToFloorPlan converts the definition into a FloorPlan. Every fallback
// taken during conversion (unknown types, unparseable dimensions) is
// reported in the returned warnings.
func (def FloorPlanDefinition) ToFloorPlan() (FloorPlan, []string) {
	warnings := []string{}

	plan := NewFloorPlan(def.Name)
	plan.Description = def.Description
	plan.Level = def.Level

	for _, roomDef := range def.Rooms {
		room, w := roomDef.ToRoom()
		warnings = append(warnings, w...)
		plan.AddRoom(room)
	}

	for _, wallDef := range def.Walls {
		wall, w := wallDef.ToWall()
		warnings = append(warnings, w...)
		plan.AddWall(wall)
	}

	if def.OverallLength != "" {
		if fi, err := ParseFeetInches(def.OverallLength); err == nil {
			plan.OverallLength = fi
		} else {
			warnings = append(warnings,
				fmt.Sprintf("plan %q: unparseable overall_length %q, keeping computed value", def.Name, def.OverallLength))
		}
	}
	if def.OverallWidth != "" {
		if fi, err := ParseFeetInches(def.OverallWidth); err == nil {
			plan.OverallWidth = fi
		} else {
			warnings = append(warnings,
				fmt.Sprintf("plan %q: unparseable overall_width %q, keeping computed value", def.Name, def.OverallWidth))
		}
	}

	return plan, warnings
}

// ParseRoomTypeString maps a plan-file room type string, accepting
// common aliases. Unknown strings map to OtherRoom with ok=false.
func ParseRoomTypeString(s string) (RoomType, bool) {
	switch strings.ToLower(s) {
	case "living_room", "livingroom":
		return LivingRoom, true
	case "family_room", "familyroom":
		return FamilyRoom, true
	case "great_room", "greatroom":
		return GreatRoom, true
	case "lounge":
		return Lounge, true
	case "foyer":
		return Foyer, true
	case "hallway":
		return Hallway, true
	case "master_suite", "mastersuite":
		return MasterSuite, true
	case "bedroom":
		return Bedroom, true
	case "guest_room", "guestroom":
		return GuestRoom, true
	case "nursery":
		return Nursery, true
	case "master_bath", "masterbath":
		return MasterBath, true
	case "full_bath", "fullbath", "bathroom":
		return FullBath, true
	case "half_bath", "halfbath":
		return HalfBath, true
	case "powder_room", "powderroom":
		return PowderRoom, true
	case "kitchen":
		return Kitchen, true
	case "dining_room", "diningroom", "dining":
		return DiningRoom, true
	case "breakfast_nook", "breakfastnook", "nook":
		return BreakfastNook, true
	case "pantry":
		return Pantry, true
	case "butlers_pantry", "butlerspantry":
		return ButlersPantry, true
	case "bar":
		return Bar, true
	case "laundry":
		return Laundry, true
	case "mud_room", "mudroom":
		return MudRoom, true
	case "utility":
		return Utility, true
	case "storage":
		return StorageRoom, true
	case "closet":
		return Closet, true
	case "walk_in_closet", "walkincloset", "wic":
		return WalkInCloset, true
	case "office":
		return Office, true
	case "study":
		return Study, true
	case "library":
		return Library, true
	case "porch":
		return Porch, true
	case "deck":
		return Deck, true
	case "patio":
		return Patio, true
	case "sunroom":
		return Sunroom, true
	case "screened", "screened_porch":
		return Screened, true
	case "garage":
		return Garage, true
	case "carport":
		return Carport, true
	case "workshop":
		return Workshop, true
	case "basement":
		return Basement, true
	case "attic":
		return Attic, true
	case "mechanical":
		return Mechanical, true
	case "other":
		return OtherRoom, true
	default:
		return OtherRoom, false
	}
}

// ParseWallTypeString maps a plan-file wall type string. Unknown
// strings map to InteriorPartition with ok=false.
func ParseWallTypeString(s string) (WallType, bool) {
	switch strings.ToLower(s) {
	case "exterior_load_bearing", "exterior_loadbearing", "exterior":
		return ExteriorLoadBearing, true
	case "exterior_non_bearing", "exterior_nonbearing":
		return ExteriorNonBearing, true
	case "interior_load_bearing", "interior_loadbearing":
		return InteriorLoadBearing, true
	case "interior_partition", "interior", "partition":
		return InteriorPartition, true
	case "half_wall", "halfwall":
		return HalfWall, true
	case "pony_wall", "ponywall":
		return PonyWall, true
	case "foundation":
		return Foundation, true
	default:
		return InteriorPartition, false
	}
}

// ParseDoorTypeString maps a plan-file door type string. Unknown
// strings map to InteriorSingle with ok=false.
func ParseDoorTypeString(s string) (DoorType, bool) {
	switch strings.ToLower(s) {
	case "interior_single", "single":
		return InteriorSingle, true
	case "interior_double", "double":
		return InteriorDouble, true
	case "pocket":
		return PocketDoor, true
	case "barn":
		return BarnDoor, true
	case "bi_fold", "bifold":
		return BiFold, true
	case "exterior_entry", "entry", "exterior":
		return ExteriorEntry, true
	case "french":
		return FrenchDoor, true
	case "sliding":
		return SlidingDoor, true
	case "garage":
		return GarageDoor, true
	default:
		return InteriorSingle, false
	}
}

// ParseWindowTypeString maps a plan-file window type string. Unknown
// strings map to DoubleHung with ok=false.
func ParseWindowTypeString(s string) (WindowType, bool) {
	switch strings.ToLower(s) {
	case "double_hung", "doublehung":
		return DoubleHung, true
	case "single_hung", "singlehung":
		return SingleHung, true
	case "casement":
		return Casement, true
	case "awning":
		return Awning, true
	case "fixed", "picture":
		return FixedWindow, true
	case "sliding":
		return SlidingWindow, true
	case "bay":
		return BayWindow, true
	case "bow":
		return BowWindow, true
	case "skylight":
		return Skylight, true
	default:
		return DoubleHung, false
	}
}

// ToRoom converts a room definition, reporting fallbacks.
func (rd RoomDefinition) ToRoom() (Room, []string) {
	var warnings []string

	roomType, ok := ParseRoomTypeString(rd.RoomType)
	if !ok {
		warnings = append(warnings,
			fmt.Sprintf("room %q: unknown room type %q, using other", rd.Name, rd.RoomType))
	}

	length, err := ParseFeetInches(rd.Length)
	if err != nil {
		warnings = append(warnings,
			fmt.Sprintf("room %q: unparseable length %q, using 0", rd.Name, rd.Length))
	}
	width, err := ParseFeetInches(rd.Width)
	if err != nil {
		warnings = append(warnings,
			fmt.Sprintf("room %q: unparseable width %q, using 0", rd.Name, rd.Width))
	}

	room := NewRoom(rd.Name, roomType, length, width)
	room.Position = NewPoint(rd.X, rd.Y)

	ceiling, w := rd.parseCeiling(roomType)
	warnings = append(warnings, w...)
	room.Ceiling = ceiling

	if rd.Notes != "" {
		room.Notes = rd.Notes
	}

	return room, warnings
}

func (rd RoomDefinition) parseCeiling(roomType RoomType) (CeilingHeight, []string) {
	var warnings []string

	if rd.Ceiling == nil {
		return roomType.DefaultCeilingHeight(), nil
	}
	cd := *rd.Ceiling

	parse := func(field, value string, fallback FeetInches) FeetInches {
		fi, err := ParseFeetInches(value)
		if err != nil {
			warnings = append(warnings,
				fmt.Sprintf("room %q: unparseable ceiling %s %q, using %s", rd.Name, field, value, fallback))
			return fallback
		}
		return fi
	}

	switch {
	case cd.Standard != "":
		return StandardCeiling(parse("height", cd.Standard, NewFeetInches(9, 0))), warnings
	case strings.EqualFold(cd.CeilingType, "vaulted"):
		minHeight := parse("min_height", cd.MinHeight, NewFeetInches(9, 0))
		return VaultedCeiling(minHeight, cd.Pitch), warnings
	case strings.EqualFold(cd.CeilingType, "tray"):
		perimeter := parse("perimeter_height", cd.PerimeterHeight, NewFeetInches(9, 0))
		center := parse("center_height", cd.CenterHeight, NewFeetInches(10, 0))
		width := parse("tray_width", cd.TrayWidth, NewFeetInches(2, 0))
		return TrayCeiling(perimeter, center, width), warnings
	default:
		warnings = append(warnings,
			fmt.Sprintf("room %q: unknown ceiling type %q, using room default", rd.Name, cd.CeilingType))
		return roomType.DefaultCeilingHeight(), warnings
	}
}

// ToWall converts a wall definition with its openings, reporting fallbacks.
func (wd WallDefinition) ToWall() (Wall, []string) {
	var warnings []string

	wallType, ok := ParseWallTypeString(wd.WallType)
	if !ok {
		warnings = append(warnings,
			fmt.Sprintf("wall at (%g,%g): unknown wall type %q, using interior_partition",
				wd.Start.X, wd.Start.Y, wd.WallType))
	}

	wall := NewWall(wallType, NewPoint(wd.Start.X, wd.Start.Y), NewPoint(wd.End.X, wd.End.Y))

	if wd.Height != "" {
		if fi, err := ParseFeetInches(wd.Height); err == nil {
			wall.Height = &fi
		} else {
			warnings = append(warnings,
				fmt.Sprintf("wall at (%g,%g): unparseable height %q, ignoring",
					wd.Start.X, wd.Start.Y, wd.Height))
		}
	}

	for _, dd := range wd.Doors {
		doorType, ok := ParseDoorTypeString(dd.DoorType)
		if !ok {
			warnings = append(warnings,
				fmt.Sprintf("door on wall at (%g,%g): unknown door type %q, using interior_single",
					wd.Start.X, wd.Start.Y, dd.DoorType))
		}
		position, err := ParseFeetInches(dd.Position)
		if err != nil {
			warnings = append(warnings,
				fmt.Sprintf("door on wall at (%g,%g): unparseable position %q, using 0",
					wd.Start.X, wd.Start.Y, dd.Position))
		}
		wall.AddDoor(doorType, position)
		door := &wall.Doors[len(wall.Doors)-1]
		if dd.Width != "" {
			if fi, err := ParseFeetInches(dd.Width); err == nil {
				door.Width = fi
			} else {
				warnings = append(warnings,
					fmt.Sprintf("door on wall at (%g,%g): unparseable width %q, keeping standard",
						wd.Start.X, wd.Start.Y, dd.Width))
			}
		}
		if dd.Height != "" {
			if fi, err := ParseFeetInches(dd.Height); err == nil {
				door.Height = fi
			} else {
				warnings = append(warnings,
					fmt.Sprintf("door on wall at (%g,%g): unparseable height %q, keeping standard",
						wd.Start.X, wd.Start.Y, dd.Height))
			}
		}
	}

	for _, wnd := range wd.Windows {
		windowType, ok := ParseWindowTypeString(wnd.WindowType)
		if !ok {
			warnings = append(warnings,
				fmt.Sprintf("window on wall at (%g,%g): unknown window type %q, using double_hung",
					wd.Start.X, wd.Start.Y, wnd.WindowType))
		}
		position, err := ParseFeetInches(wnd.Position)
		if err != nil {
			warnings = append(warnings,
				fmt.Sprintf("window on wall at (%g,%g): unparseable position %q, using 0",
					wd.Start.X, wd.Start.Y, wnd.Position))
		}
		width, err := ParseFeetInches(wnd.Width)
		if err != nil {
			warnings = append(warnings,
				fmt.Sprintf("window on wall at (%g,%g): unparseable width %q, using 0",
					wd.Start.X, wd.Start.Y, wnd.Width))
		}
		height, err := ParseFeetInches(wnd.Height)
		if err != nil {
			warnings = append(warnings,
				fmt.Sprintf("window on wall at (%g,%g): unparseable height %q, using 0",
					wd.Start.X, wd.Start.Y, wnd.Height))
		}
		wall.AddWindow(windowType, position, width, height)
		if wnd.SillHeight != "" {
			window := &wall.Windows[len(wall.Windows)-1]
			if fi, err := ParseFeetInches(wnd.SillHeight); err == nil {
				window.SillHeight = fi
			} else {
				warnings = append(warnings,
					fmt.Sprintf("window on wall at (%g,%g): unparseable sill height %q, keeping default",
						wd.Start.X, wd.Start.Y, wnd.SillHeight))
			}
		}
	}

	return wall, warnings
}

// ExampleFloorPlanJSON is a small documented plan definition used by
// the import endpoint's example route.
func ExampleFloorPlanJSON() string {
	def := FloorPlanDefinition{
		Name:          "Example Floor Plan",
		Description:   "A simple example floor plan",
		Level:         1,
		OverallLength: `60'-0"`,
		OverallWidth:  `40'-0"`,
		Rooms: []RoomDefinition{
			{
				Name:     "Living Room",
				RoomType: "living_room",
				X:        0, Y: 0,
				Length:  `20'-0"`,
				Width:   `15'-0"`,
				Ceiling: &CeilingDefinition{Standard: `9'-0"`},
				Notes:   "Main living area",
			},
			{
				Name:     "Kitchen",
				RoomType: "kitchen",
				X:        20, Y: 0,
				Length: `15'-0"`,
				Width:  `12'-0"`,
			},
			{
				Name:     "Master Suite",
				RoomType: "master_suite",
				X:        0, Y: 15,
				Length: `18'-0"`,
				Width:  `16'-0"`,
				Ceiling: &CeilingDefinition{
					CeilingType: "vaulted",
					MinHeight:   `9'-0"`,
					Pitch:       6,
				},
			},
		},
		Walls: []WallDefinition{
			{
				WallType: "exterior",
				Start:    PointDefinition{X: 0, Y: 0},
				End:      PointDefinition{X: 60, Y: 0},
			},
			{
				WallType: "interior",
				Start:    PointDefinition{X: 20, Y: 0},
				End:      PointDefinition{X: 20, Y: 15},
				Doors: []DoorDefinition{
					{DoorType: "interior_single", Position: `5'-0"`},
				},
			},
		},
	}

	data, err := def.ToJSON()
	if err != nil {
		return ""
	}
	return string(data)
}

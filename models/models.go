package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// NewID generates an entity identifier.
func NewID() string {
	return uuid.New().String()
}

// RoomType classifies rooms for defaults and take-off rules.
type RoomType string

const (
	// Living spaces
	LivingRoom RoomType = "living_room"
	FamilyRoom RoomType = "family_room"
	GreatRoom  RoomType = "great_room"
	Lounge     RoomType = "lounge"
	Foyer      RoomType = "foyer"
	Hallway    RoomType = "hallway"

	// Bedrooms
	MasterSuite RoomType = "master_suite"
	Bedroom     RoomType = "bedroom"
	GuestRoom   RoomType = "guest_room"
	Nursery     RoomType = "nursery"

	// Bathrooms
	MasterBath RoomType = "master_bath"
	FullBath   RoomType = "full_bath"
	HalfBath   RoomType = "half_bath"
	PowderRoom RoomType = "powder_room"

	// Kitchen & dining
	Kitchen       RoomType = "kitchen"
	DiningRoom    RoomType = "dining_room"
	BreakfastNook RoomType = "breakfast_nook"
	Pantry        RoomType = "pantry"
	ButlersPantry RoomType = "butlers_pantry"
	Bar           RoomType = "bar"

	// Utility
	Laundry      RoomType = "laundry"
	MudRoom      RoomType = "mud_room"
	Utility      RoomType = "utility"
	StorageRoom  RoomType = "storage"
	Closet       RoomType = "closet"
	WalkInCloset RoomType = "walk_in_closet"

	// Work spaces
	Office  RoomType = "office"
	Study   RoomType = "study"
	Library RoomType = "library"

	// Outdoor
	Porch    RoomType = "porch"
	Deck     RoomType = "deck"
	Patio    RoomType = "patio"
	Sunroom  RoomType = "sunroom"
	Screened RoomType = "screened"

	// Garage
	Garage   RoomType = "garage"
	Carport  RoomType = "carport"
	Workshop RoomType = "workshop"

	// Other
	Basement   RoomType = "basement"
	Attic      RoomType = "attic"
	Mechanical RoomType = "mechanical"
	OtherRoom  RoomType = "other"
)

// AllRoomTypes lists every room type in declaration order.
func AllRoomTypes() []RoomType {
	return []RoomType{
		LivingRoom, FamilyRoom, GreatRoom, Lounge, Foyer, Hallway,
		MasterSuite, Bedroom, GuestRoom, Nursery,
		MasterBath, FullBath, HalfBath, PowderRoom,
		Kitchen, DiningRoom, BreakfastNook, Pantry, ButlersPantry, Bar,
		Laundry, MudRoom, Utility, StorageRoom, Closet, WalkInCloset,
		Office, Study, Library,
		Porch, Deck, Patio, Sunroom, Screened,
		Garage, Carport, Workshop,
		Basement, Attic, Mechanical, OtherRoom,
	}
}

// DefaultCeilingHeight returns the typical ceiling for the room type.
func (rt RoomType) DefaultCeilingHeight() CeilingHeight {
	switch rt {
	case Garage, Carport, Workshop:
		return StandardCeiling(NewFeetInches(10, 0))
	case Basement, Mechanical:
		return StandardCeiling(NewFeetInches(8, 0))
	case Porch, Deck, Patio:
		return StandardCeiling(NewFeetInches(10, 0))
	case MasterSuite, GreatRoom, FamilyRoom:
		return VaultedCeiling(NewFeetInches(9, 0), 7)
	default:
		return StandardCeiling(NewFeetInches(9, 0))
	}
}

// IsOutdoor reports whether the room is an outdoor/exterior space.
func (rt RoomType) IsOutdoor() bool {
	switch rt {
	case Porch, Deck, Patio, Screened, Carport:
		return true
	}
	return false
}

// IsWetRoom reports whether the room needs waterproofing.
func (rt RoomType) IsWetRoom() bool {
	switch rt {
	case MasterBath, FullBath, HalfBath, PowderRoom, Kitchen, Laundry, ButlersPantry:
		return true
	}
	return false
}

// DisplayName is the human-readable room type label.
func (rt RoomType) DisplayName() string {
	switch rt {
	case LivingRoom:
		return "Living Room"
	case FamilyRoom:
		return "Family Room"
	case GreatRoom:
		return "Great Room"
	case Lounge:
		return "Lounge"
	case Foyer:
		return "Foyer"
	case Hallway:
		return "Hallway"
	case MasterSuite:
		return "Master Suite"
	case Bedroom:
		return "Bedroom"
	case GuestRoom:
		return "Guest Room"
	case Nursery:
		return "Nursery"
	case MasterBath:
		return "Master Bath"
	case FullBath:
		return "Full Bath"
	case HalfBath:
		return "Half Bath"
	case PowderRoom:
		return "Powder Room"
	case Kitchen:
		return "Kitchen"
	case DiningRoom:
		return "Dining Room"
	case BreakfastNook:
		return "Breakfast Nook"
	case Pantry:
		return "Pantry"
	case ButlersPantry:
		return "Butler's Pantry"
	case Bar:
		return "Bar"
	case Laundry:
		return "Laundry"
	case MudRoom:
		return "Mud Room"
	case Utility:
		return "Utility"
	case StorageRoom:
		return "Storage"
	case Closet:
		return "Closet"
	case WalkInCloset:
		return "Walk-in Closet"
	case Office:
		return "Office"
	case Study:
		return "Study"
	case Library:
		return "Library"
	case Porch:
		return "Porch"
	case Deck:
		return "Deck"
	case Patio:
		return "Patio"
	case Sunroom:
		return "Sunroom"
	case Screened:
		return "Screened Porch"
	case Garage:
		return "Garage"
	case Carport:
		return "Carport"
	case Workshop:
		return "Workshop"
	case Basement:
		return "Basement"
	case Attic:
		return "Attic"
	case Mechanical:
		return "Mechanical"
	default:
		return "Other"
	}
}

// WallType classifies wall construction.
type WallType string

const (
	ExteriorLoadBearing WallType = "exterior_load_bearing"
	ExteriorNonBearing  WallType = "exterior_non_bearing"
	InteriorLoadBearing WallType = "interior_load_bearing"
	InteriorPartition   WallType = "interior_partition"
	HalfWall            WallType = "half_wall"
	PonyWall            WallType = "pony_wall"
	Foundation          WallType = "foundation"
)

// StudDepth is the typical framing depth for the wall type.
func (wt WallType) StudDepth() FeetInches {
	switch wt {
	case ExteriorLoadBearing, ExteriorNonBearing:
		return NewFeetInches(0, 6) // 2x6
	case InteriorLoadBearing:
		return NewFeetInches(0, 6)
	case Foundation:
		return NewFeetInches(0, 8) // 8" concrete
	default:
		return NewFeetInches(0, 4) // 2x4
	}
}

func (wt WallType) IsExterior() bool {
	switch wt {
	case ExteriorLoadBearing, ExteriorNonBearing, Foundation:
		return true
	}
	return false
}

func (wt WallType) IsLoadBearing() bool {
	switch wt {
	case ExteriorLoadBearing, InteriorLoadBearing, Foundation:
		return true
	}
	return false
}

// DoorType classifies doors.
type DoorType string

const (
	InteriorSingle DoorType = "interior_single"
	InteriorDouble DoorType = "interior_double"
	PocketDoor     DoorType = "pocket"
	BarnDoor       DoorType = "barn"
	BiFold         DoorType = "bi_fold"
	ExteriorEntry  DoorType = "exterior_entry"
	FrenchDoor     DoorType = "french"
	SlidingDoor    DoorType = "sliding"
	GarageDoor     DoorType = "garage"
)

// StandardWidth is the stock width for the door type.
func (dt DoorType) StandardWidth() FeetInches {
	switch dt {
	case InteriorSingle, PocketDoor, BarnDoor:
		return NewFeetInches(2, 8)
	case InteriorDouble:
		return NewFeetInches(5, 4)
	case BiFold:
		return NewFeetInches(4, 0)
	case ExteriorEntry:
		return NewFeetInches(3, 0)
	case FrenchDoor, SlidingDoor:
		return NewFeetInches(6, 0)
	case GarageDoor:
		return NewFeetInches(16, 0)
	default:
		return NewFeetInches(2, 8)
	}
}

// StandardHeight is the stock height for the door type.
func (dt DoorType) StandardHeight() FeetInches {
	if dt == GarageDoor {
		return NewFeetInches(7, 0)
	}
	return NewFeetInches(6, 8)
}

// WindowType classifies windows.
type WindowType string

const (
	DoubleHung    WindowType = "double_hung"
	SingleHung    WindowType = "single_hung"
	Casement      WindowType = "casement"
	Awning        WindowType = "awning"
	FixedWindow   WindowType = "fixed"
	SlidingWindow WindowType = "sliding"
	BayWindow     WindowType = "bay"
	BowWindow     WindowType = "bow"
	Skylight      WindowType = "skylight"
)

// SwingDirection for hinged doors.
type SwingDirection string

const (
	SwingLeft  SwingDirection = "left"
	SwingRight SwingDirection = "right"
	SwingIn    SwingDirection = "in"
	SwingOut   SwingDirection = "out"
)

// Point is a 2D coordinate in inches.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// DistanceTo returns the distance to another point in inches.
func (p Point) DistanceTo(other Point) float64 {
	dx := other.X - p.X
	dy := other.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func (p Point) XFeetInches() FeetInches {
	return FeetInchesFromInches(int(math.Round(p.X)))
}

func (p Point) YFeetInches() FeetInches {
	return FeetInchesFromInches(int(math.Round(p.Y)))
}

// Door is an opening on a wall.
type Door struct {
	ID       string     `json:"id"`
	DoorType DoorType   `json:"door_type"`
	Width    FeetInches `json:"width"`
	Height   FeetInches `json:"height"`
	// Position along the wall from its start point.
	Position       FeetInches     `json:"position"`
	WallID         string         `json:"wall_id"`
	SwingDirection SwingDirection `json:"swing_direction,omitempty"`
}

func NewDoor(doorType DoorType, wallID string, position FeetInches) Door {
	return Door{
		ID:             NewID(),
		DoorType:       doorType,
		Width:          doorType.StandardWidth(),
		Height:         doorType.StandardHeight(),
		Position:       position,
		WallID:         wallID,
		SwingDirection: SwingLeft,
	}
}

// RoughOpeningWidth is the framed opening width (door width + 2").
func (d Door) RoughOpeningWidth() FeetInches {
	return FeetInchesFromInches(d.Width.ToInches() + 2)
}

// RoughOpeningHeight is the framed opening height (door height + 2").
func (d Door) RoughOpeningHeight() FeetInches {
	return FeetInchesFromInches(d.Height.ToInches() + 2)
}

// Window is a glazed opening on a wall.
type Window struct {
	ID         string     `json:"id"`
	WindowType WindowType `json:"window_type"`
	Width      FeetInches `json:"width"`
	Height     FeetInches `json:"height"`
	// Height from floor to bottom of window.
	SillHeight FeetInches `json:"sill_height"`
	Position   FeetInches `json:"position"`
	WallID     string     `json:"wall_id"`
}

func NewWindow(windowType WindowType, wallID string, position, width, height FeetInches) Window {
	return Window{
		ID:         NewID(),
		WindowType: windowType,
		Width:      width,
		Height:     height,
		SillHeight: NewFeetInches(3, 0),
		Position:   position,
		WallID:     wallID,
	}
}

func (w Window) RoughOpeningWidth() FeetInches {
	return FeetInchesFromInches(w.Width.ToInches() + 1)
}

func (w Window) RoughOpeningHeight() FeetInches {
	return FeetInchesFromInches(w.Height.ToInches() + 1)
}

// Wall is a wall segment between two points (coordinates in inches).
type Wall struct {
	ID       string   `json:"id"`
	WallType WallType `json:"wall_type"`
	Start    Point    `json:"start"`
	End      Point    `json:"end"`
	// Height overrides the room ceiling when set.
	Height  *FeetInches `json:"height,omitempty"`
	Doors   []Door      `json:"doors"`
	Windows []Window    `json:"windows"`
}

func NewWall(wallType WallType, start, end Point) Wall {
	return Wall{
		ID:       NewID(),
		WallType: wallType,
		Start:    start,
		End:      end,
		Doors:    []Door{},
		Windows:  []Window{},
	}
}

// Length of the wall in linear feet.
func (w Wall) Length() LinearFeet {
	return LinearFeet(w.Start.DistanceTo(w.End) / 12.0)
}

func (w Wall) LengthFeetInches() FeetInches {
	return FeetInchesFromInches(int(math.Round(w.Start.DistanceTo(w.End))))
}

// AddDoor appends a stock door and returns its ID.
func (w *Wall) AddDoor(doorType DoorType, position FeetInches) string {
	door := NewDoor(doorType, w.ID, position)
	w.Doors = append(w.Doors, door)
	return door.ID
}

// AddWindow appends a window and returns its ID.
func (w *Wall) AddWindow(windowType WindowType, position, width, height FeetInches) string {
	window := NewWindow(windowType, w.ID, position, width, height)
	w.Windows = append(w.Windows, window)
	return window.ID
}

func (w Wall) TotalDoorWidth() FeetInches {
	total := FeetInches{}
	for _, d := range w.Doors {
		total = total.Add(d.Width)
	}
	return total
}

func (w Wall) TotalWindowWidth() FeetInches {
	total := FeetInches{}
	for _, win := range w.Windows {
		total = total.Add(win.Width)
	}
	return total
}

// Clone deep-copies the wall including its openings.
func (w Wall) Clone() Wall {
	out := w
	if w.Height != nil {
		h := *w.Height
		out.Height = &h
	}
	out.Doors = append([]Door(nil), w.Doors...)
	out.Windows = append([]Window(nil), w.Windows...)
	return out
}

// Room is a rectangular room placed on a floor plan.
type Room struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	RoomType RoomType      `json:"room_type"`
	Length   FeetInches    `json:"length"`
	Width    FeetInches    `json:"width"`
	Ceiling  CeilingHeight `json:"ceiling"`
	// Position of the room's bottom-left corner, in inches.
	Position Point    `json:"position"`
	WallIDs  []string `json:"wall_ids"`
	Notes    string   `json:"notes,omitempty"`
}

func NewRoom(name string, roomType RoomType, length, width FeetInches) Room {
	return Room{
		ID:       NewID(),
		Name:     name,
		RoomType: roomType,
		Length:   length,
		Width:    width,
		Ceiling:  roomType.DefaultCeilingHeight(),
		WallIDs:  []string{},
	}
}

func (r Room) FloorArea() SquareFeet {
	return SquareFeetFromDimensions(r.Length, r.Width)
}

func (r Room) Perimeter() LinearFeet {
	return LinearFeetFrom(r.Length.Add(r.Width).Mul(2))
}

// WallArea is perimeter times wall height, for paint and drywall.
func (r Room) WallArea() SquareFeet {
	return SquareFeet(r.Perimeter().Value() * r.Ceiling.MinHeight().ToDecimalFeet())
}

// CeilingArea approximates sloped ceilings with pitch factors.
func (r Room) CeilingArea() SquareFeet {
	floor := r.FloorArea().Value()
	switch r.Ceiling.Kind {
	case CeilingVaulted:
		return SquareFeet(floor * (1.0 + float64(r.Ceiling.Pitch)/24.0))
	case CeilingCathedral:
		return SquareFeet(floor * 1.3)
	case CeilingTray:
		return SquareFeet(floor * 1.1)
	default:
		return SquareFeet(floor)
	}
}

func (r Room) WithPosition(position Point) Room {
	r.Position = position
	return r
}

func (r Room) WithCeiling(ceiling CeilingHeight) Room {
	r.Ceiling = ceiling
	return r
}

func (r Room) WithNotes(notes string) Room {
	r.Notes = notes
	return r
}

// Clone deep-copies the room.
func (r Room) Clone() Room {
	out := r
	out.WallIDs = append([]string(nil), r.WallIDs...)
	return out
}

// FloorPlan is one floor of a project.
type FloorPlan struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// Floor level: 0 = ground, 1 = second floor, -1 = basement.
	Level         int        `json:"level"`
	Rooms         []Room     `json:"rooms"`
	Walls         []Wall     `json:"walls"`
	OverallLength FeetInches `json:"overall_length"`
	OverallWidth  FeetInches `json:"overall_width"`
}

func NewFloorPlan(name string) FloorPlan {
	return FloorPlan{
		ID:    NewID(),
		Name:  name,
		Rooms: []Room{},
		Walls: []Wall{},
	}
}

// AddRoom appends the room and refreshes overall dimensions.
func (fp *FloorPlan) AddRoom(room Room) string {
	fp.Rooms = append(fp.Rooms, room)
	fp.RecalculateDimensions()
	return room.ID
}

func (fp *FloorPlan) AddWall(wall Wall) string {
	fp.Walls = append(fp.Walls, wall)
	return wall.ID
}

func (fp *FloorPlan) GetRoom(id string) *Room {
	for i := range fp.Rooms {
		if fp.Rooms[i].ID == id {
			return &fp.Rooms[i]
		}
	}
	return nil
}

func (fp *FloorPlan) GetWall(id string) *Wall {
	for i := range fp.Walls {
		if fp.Walls[i].ID == id {
			return &fp.Walls[i]
		}
	}
	return nil
}

func (fp FloorPlan) TotalFloorArea() SquareFeet {
	total := SquareFeet(0)
	for _, r := range fp.Rooms {
		total += r.FloorArea()
	}
	return total
}

// TotalLivingArea excludes garages and outdoor spaces.
func (fp FloorPlan) TotalLivingArea() SquareFeet {
	total := SquareFeet(0)
	for _, r := range fp.Rooms {
		if r.RoomType.IsOutdoor() || r.RoomType == Garage {
			continue
		}
		total += r.FloorArea()
	}
	return total
}

func (fp FloorPlan) RoomsByType(roomType RoomType) []Room {
	var out []Room
	for _, r := range fp.Rooms {
		if r.RoomType == roomType {
			out = append(out, r)
		}
	}
	return out
}

func (fp FloorPlan) CountRooms(roomType RoomType) int {
	count := 0
	for _, r := range fp.Rooms {
		if r.RoomType == roomType {
			count++
		}
	}
	return count
}

func (fp FloorPlan) BedroomCount() int {
	count := 0
	for _, r := range fp.Rooms {
		switch r.RoomType {
		case MasterSuite, Bedroom, GuestRoom:
			count++
		}
	}
	return count
}

// BathroomCount counts full baths as 1 and half baths as 0.5.
func (fp FloorPlan) BathroomCount() float32 {
	var count float32
	for _, r := range fp.Rooms {
		switch r.RoomType {
		case MasterBath, FullBath:
			count += 1.0
		case HalfBath, PowderRoom:
			count += 0.5
		}
	}
	return count
}

// RecalculateDimensions refreshes the overall bounding box from rooms.
func (fp *FloorPlan) RecalculateDimensions() {
	var maxX, maxY float64
	for _, room := range fp.Rooms {
		endX := room.Position.X + float64(room.Length.ToInches())
		endY := room.Position.Y + float64(room.Width.ToInches())
		maxX = math.Max(maxX, endX)
		maxY = math.Max(maxY, endY)
	}
	fp.OverallLength = FeetInchesFromInches(int(math.Round(maxX)))
	fp.OverallWidth = FeetInchesFromInches(int(math.Round(maxY)))
}

// Clone deep-copies the floor plan and everything on it.
func (fp FloorPlan) Clone() FloorPlan {
	out := fp
	out.Rooms = make([]Room, len(fp.Rooms))
	for i, r := range fp.Rooms {
		out.Rooms[i] = r.Clone()
	}
	out.Walls = make([]Wall, len(fp.Walls))
	for i, w := range fp.Walls {
		out.Walls[i] = w.Clone()
	}
	return out
}

// Project groups the floor plans of one building.
type Project struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	FloorPlans  []FloorPlan     `json:"floor_plans"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Settings    ProjectSettings `json:"settings"`
}

func NewProject(name string) Project {
	now := time.Now().UTC()
	return Project{
		ID:         NewID(),
		Name:       name,
		FloorPlans: []FloorPlan{},
		CreatedAt:  now,
		UpdatedAt:  now,
		Settings:   DefaultProjectSettings(),
	}
}

// AddFloorPlan appends the floor and bumps the update timestamp.
func (p *Project) AddFloorPlan(fp FloorPlan) string {
	p.FloorPlans = append(p.FloorPlans, fp)
	p.UpdatedAt = time.Now().UTC()
	return fp.ID
}

func (p *Project) GetFloorPlan(id string) *FloorPlan {
	for i := range p.FloorPlans {
		if p.FloorPlans[i].ID == id {
			return &p.FloorPlans[i]
		}
	}
	return nil
}

func (p Project) GetFloorByLevel(level int) *FloorPlan {
	for i := range p.FloorPlans {
		if p.FloorPlans[i].Level == level {
			return &p.FloorPlans[i]
		}
	}
	return nil
}

func (p Project) TotalArea() SquareFeet {
	total := SquareFeet(0)
	for _, fp := range p.FloorPlans {
		total += fp.TotalFloorArea()
	}
	return total
}

func (p Project) TotalLivingArea() SquareFeet {
	total := SquareFeet(0)
	for _, fp := range p.FloorPlans {
		total += fp.TotalLivingArea()
	}
	return total
}

func (p Project) BedroomCount() int {
	count := 0
	for _, fp := range p.FloorPlans {
		count += fp.BedroomCount()
	}
	return count
}

func (p Project) BathroomCount() float32 {
	var count float32
	for _, fp := range p.FloorPlans {
		count += fp.BathroomCount()
	}
	return count
}

// Clone deep-copies the project.
func (p Project) Clone() Project {
	out := p
	out.FloorPlans = make([]FloorPlan, len(p.FloorPlans))
	for i, fp := range p.FloorPlans {
		out.FloorPlans[i] = fp.Clone()
	}
	return out
}

// QualityTier drives material selection and pricing.
type QualityTier string

const (
	TierEconomy  QualityTier = "economy"
	TierStandard QualityTier = "standard"
	TierPremium  QualityTier = "premium"
	TierLuxury   QualityTier = "luxury"
)

// ProjectSettings are project-wide defaults.
type ProjectSettings struct {
	DefaultCeilingHeight FeetInches  `json:"default_ceiling_height"`
	DefaultInteriorWall  WallType    `json:"default_interior_wall"`
	DefaultExteriorWall  WallType    `json:"default_exterior_wall"`
	StudSpacing          int         `json:"stud_spacing"`
	Region               string      `json:"region"`
	QualityTier          QualityTier `json:"quality_tier"`
}

func DefaultProjectSettings() ProjectSettings {
	return ProjectSettings{
		DefaultCeilingHeight: NewFeetInches(9, 0),
		DefaultInteriorWall:  InteriorPartition,
		DefaultExteriorWall:  ExteriorLoadBearing,
		StudSpacing:          16,
		Region:               "US",
		QualityTier:          TierStandard,
	}
}

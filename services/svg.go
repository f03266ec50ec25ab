package services

import (
	"fmt"
	"strconv"
	"strings"

	"backend/models"
)

// RenderConfig controls scale, annotations and theme for SVG output.
type RenderConfig struct {
	// Pixels per foot.
	Scale float64
	// Padding around the plan in pixels.
	Padding         float64
	WallStrokeWidth float64
	ShowLabels      bool
	ShowDimensions  bool
	ShowGrid        bool
	// Grid spacing in feet.
	GridSpacingFeet   int
	Colors            ColorScheme
	FontFamily        string
	LabelFontSize     float64
	DimensionFontSize float64
}

func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Scale:             10.0,
		Padding:           50.0,
		WallStrokeWidth:   4.0,
		ShowLabels:        true,
		ShowDimensions:    true,
		ShowGrid:          true,
		GridSpacingFeet:   5,
		Colors:            DefaultColorScheme(),
		FontFamily:        "Arial, sans-serif",
		LabelFontSize:     12.0,
		DimensionFontSize: 10.0,
	}
}

// ColorScheme holds every paint color used by the renderer.
type ColorScheme struct {
	Background    string
	Grid          string
	ExteriorWall  string
	InteriorWall  string
	LivingRoom    string
	Bedroom       string
	Bathroom      string
	Kitchen       string
	Utility       string
	Outdoor       string
	Garage        string
	DefaultRoom   string
	Door          string
	Window        string
	LabelText     string
	DimensionText string
	RoomStroke    string
}

func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Background:    "#ffffff",
		Grid:          "#e0e0e0",
		ExteriorWall:  "#2c3e50",
		InteriorWall:  "#34495e",
		LivingRoom:    "#fffde7",
		Bedroom:       "#e3f2fd",
		Bathroom:      "#e8f5e9",
		Kitchen:       "#fff3e0",
		Utility:       "#f5f5f5",
		Outdoor:       "#c8e6c9",
		Garage:        "#eceff1",
		DefaultRoom:   "#fafafa",
		Door:          "#8b4513",
		Window:        "#4fc3f7",
		LabelText:     "#212121",
		DimensionText: "#757575",
		RoomStroke:    "#999999",
	}
}

// BlueprintColorScheme is a dark drafting-table theme.
func BlueprintColorScheme() ColorScheme {
	return ColorScheme{
		Background:    "#0f0f23",
		Grid:          "#1a1a3a",
		ExteriorWall:  "#00ff88",
		InteriorWall:  "#00cc66",
		LivingRoom:    "rgba(255, 255, 100, 0.15)",
		Bedroom:       "rgba(100, 150, 255, 0.15)",
		Bathroom:      "rgba(100, 255, 150, 0.15)",
		Kitchen:       "rgba(255, 200, 100, 0.15)",
		Utility:       "rgba(150, 150, 150, 0.15)",
		Outdoor:       "rgba(100, 200, 150, 0.15)",
		Garage:        "rgba(120, 120, 150, 0.15)",
		DefaultRoom:   "rgba(200, 200, 200, 0.1)",
		Door:          "#ff6600",
		Window:        "#00aaff",
		LabelText:     "#00ff88",
		DimensionText: "#888888",
		RoomStroke:    "#555555",
	}
}

// ColorCodedScheme tints each room by use, presentation style.
func ColorCodedScheme() ColorScheme {
	return ColorScheme{
		Background:    "#ffffff",
		Grid:          "#e0e0e0",
		ExteriorWall:  "#1a1a1a",
		InteriorWall:  "#333333",
		LivingRoom:    "#fffde7",
		Bedroom:       "#bbdefb",
		Bathroom:      "#c8e6c9",
		Kitchen:       "#ffe0b2",
		Utility:       "#e0e0e0",
		Outdoor:       "#b2dfdb",
		Garage:        "#cfd8dc",
		DefaultRoom:   "#fff9c4",
		Door:          "#5d4037",
		Window:        "#29b6f6",
		LabelText:     "#212121",
		DimensionText: "#616161",
		RoomStroke:    "#666666",
	}
}

// ColorSchemeByName maps the scheme query parameter values.
func ColorSchemeByName(name string) ColorScheme {
	switch strings.ToLower(name) {
	case "blueprint":
		return BlueprintColorScheme()
	case "color_coded", "colorcoded":
		return ColorCodedScheme()
	default:
		return DefaultColorScheme()
	}
}

// SvgRenderer draws a floor plan as a scaled 2D SVG.
type SvgRenderer struct {
	config RenderConfig
}

func NewSvgRenderer() *SvgRenderer {
	return &SvgRenderer{config: DefaultRenderConfig()}
}

func NewSvgRendererWithConfig(config RenderConfig) *SvgRenderer {
	return &SvgRenderer{config: config}
}

func (r *SvgRenderer) roomColor(roomType models.RoomType) string {
	c := r.config.Colors
	switch roomType {
	case models.LivingRoom, models.FamilyRoom, models.GreatRoom,
		models.Lounge, models.Foyer, models.Hallway:
		return c.LivingRoom
	case models.MasterSuite, models.Bedroom, models.GuestRoom, models.Nursery:
		return c.Bedroom
	case models.MasterBath, models.FullBath, models.HalfBath, models.PowderRoom:
		return c.Bathroom
	case models.Kitchen, models.DiningRoom, models.BreakfastNook, models.Bar:
		return c.Kitchen
	case models.Pantry, models.ButlersPantry, models.Laundry, models.MudRoom,
		models.Utility, models.StorageRoom, models.Closet, models.WalkInCloset:
		return c.Utility
	case models.Porch, models.Deck, models.Patio, models.Sunroom, models.Screened:
		return c.Outdoor
	case models.Garage, models.Carport, models.Workshop:
		return c.Garage
	default:
		return c.DefaultRoom
	}
}

func (r *SvgRenderer) feetToPx(feet float64) float64 {
	return feet * r.config.Scale
}

func (r *SvgRenderer) fiToPx(fi models.FeetInches) float64 {
	return r.feetToPx(fi.ToDecimalFeet())
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Render draws the full floor plan.
func (r *SvgRenderer) Render(floorPlan models.FloorPlan) string {
	width := r.fiToPx(floorPlan.OverallLength) + r.config.Padding*2.0
	height := r.fiToPx(floorPlan.OverallWidth) + r.config.Padding*2.0

	var svg strings.Builder
	fmt.Fprintf(&svg,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		px(width), px(height), px(width), px(height))

	svg.WriteString(r.renderStyles())

	fmt.Fprintf(&svg, `<rect width="100%%" height="100%%" fill="%s"/>`, r.config.Colors.Background)

	if r.config.ShowGrid {
		svg.WriteString(r.renderGrid(width, height))
	}

	for _, room := range floorPlan.Rooms {
		svg.WriteString(r.renderRoom(room))
	}
	for _, wall := range floorPlan.Walls {
		svg.WriteString(r.renderWall(wall))
	}

	svg.WriteString("</svg>")
	return svg.String()
}

func (r *SvgRenderer) renderStyles() string {
	return fmt.Sprintf(`
<style>
    .room-label {
        font-family: %s;
        font-size: %spx;
        font-weight: bold;
        text-anchor: middle;
        fill: %s;
    }
    .dimension {
        font-family: %s;
        font-size: %spx;
        text-anchor: middle;
        fill: %s;
    }
    .exterior-wall {
        stroke: %s;
        stroke-width: %s;
        fill: none;
    }
    .interior-wall {
        stroke: %s;
        stroke-width: %s;
        fill: none;
    }
    .door {
        stroke: %s;
        stroke-width: 2;
        fill: none;
    }
    .window {
        stroke: %s;
        stroke-width: 3;
    }
</style>
`,
		r.config.FontFamily,
		px(r.config.LabelFontSize),
		r.config.Colors.LabelText,
		r.config.FontFamily,
		px(r.config.DimensionFontSize),
		r.config.Colors.DimensionText,
		r.config.Colors.ExteriorWall,
		px(r.config.WallStrokeWidth),
		r.config.Colors.InteriorWall,
		px(r.config.WallStrokeWidth*0.75),
		r.config.Colors.Door,
		r.config.Colors.Window,
	)
}

func (r *SvgRenderer) renderGrid(width, height float64) string {
	spacing := r.feetToPx(float64(r.config.GridSpacingFeet))

	var grid strings.Builder
	fmt.Fprintf(&grid,
		`<defs><pattern id="grid" width="%s" height="%s" patternUnits="userSpaceOnUse">`,
		px(spacing), px(spacing))
	fmt.Fprintf(&grid,
		`<path d="M %s 0 L 0 0 0 %s" fill="none" stroke="%s" stroke-width="0.5"/>`,
		px(spacing), px(spacing), r.config.Colors.Grid)
	grid.WriteString("</pattern></defs>")
	fmt.Fprintf(&grid, `<rect width="%s" height="%s" fill="url(#grid)"/>`, px(width), px(height))

	return grid.String()
}

func (r *SvgRenderer) renderRoom(room models.Room) string {
	x := r.fiToPx(room.Position.XFeetInches()) + r.config.Padding
	y := r.fiToPx(room.Position.YFeetInches()) + r.config.Padding
	w := r.fiToPx(room.Length)
	h := r.fiToPx(room.Width)

	var svg strings.Builder
	fmt.Fprintf(&svg,
		`<rect x="%s" y="%s" width="%s" height="%s" fill="%s" stroke="%s" stroke-width="1"/>`,
		px(x), px(y), px(w), px(h), r.roomColor(room.RoomType), r.config.Colors.RoomStroke)

	if r.config.ShowLabels {
		cx := x + w/2.0
		cy := y + h/2.0

		fmt.Fprintf(&svg, `<text x="%s" y="%s" class="room-label">%s</text>`,
			px(cx), px(cy-5.0), strings.ToUpper(room.Name))

		if r.config.ShowDimensions {
			fmt.Fprintf(&svg, `<text x="%s" y="%s" class="dimension">%s x %s</text>`,
				px(cx), px(cy+12.0), room.Length.ArchString(), room.Width.ArchString())
		}
	}

	return svg.String()
}

func (r *SvgRenderer) renderWall(wall models.Wall) string {
	x1 := r.feetToPx(wall.Start.X) + r.config.Padding
	y1 := r.feetToPx(wall.Start.Y) + r.config.Padding
	x2 := r.feetToPx(wall.End.X) + r.config.Padding
	y2 := r.feetToPx(wall.End.Y) + r.config.Padding

	class := "interior-wall"
	if wall.WallType.IsExterior() {
		class = "exterior-wall"
	}

	var svg strings.Builder
	fmt.Fprintf(&svg, `<line x1="%s" y1="%s" x2="%s" y2="%s" class="%s"/>`,
		px(x1), px(y1), px(x2), px(y2), class)

	for _, door := range wall.Doors {
		svg.WriteString(r.renderDoor(door, wall))
	}
	for _, window := range wall.Windows {
		svg.WriteString(r.renderWindow(window, wall))
	}

	return svg.String()
}

// openingPoint interpolates a position along the wall.
func (r *SvgRenderer) openingPoint(wall models.Wall, position models.FeetInches) (float64, float64) {
	x1 := r.feetToPx(wall.Start.X) + r.config.Padding
	y1 := r.feetToPx(wall.Start.Y) + r.config.Padding
	x2 := r.feetToPx(wall.End.X) + r.config.Padding
	y2 := r.feetToPx(wall.End.Y) + r.config.Padding

	t := 0.0
	if length := wall.Length().Value(); length > 0 {
		t = position.ToDecimalFeet() / length
	}
	return x1 + (x2-x1)*t, y1 + (y2-y1)*t
}

func (r *SvgRenderer) renderDoor(door models.Door, wall models.Wall) string {
	doorX, doorY := r.openingPoint(wall, door.Position)
	doorWidth := r.fiToPx(door.Width)

	// Quarter-circle swing arc.
	return fmt.Sprintf(`<path d="M %s %s A %s %s 0 0 1 %s %s" class="door"/>`,
		px(doorX), px(doorY), px(doorWidth), px(doorWidth),
		px(doorX+doorWidth), px(doorY+doorWidth))
}

func (r *SvgRenderer) renderWindow(window models.Window, wall models.Wall) string {
	windowX, windowY := r.openingPoint(wall, window.Position)
	windowWidth := r.fiToPx(window.Width)

	horizontal := wall.Start.Y-wall.End.Y < 0.1 && wall.End.Y-wall.Start.Y < 0.1
	if horizontal {
		return fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" class="window"/>`,
			px(windowX), px(windowY), px(windowX+windowWidth), px(windowY))
	}
	return fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" class="window"/>`,
		px(windowX), px(windowY), px(windowX), px(windowY+windowWidth))
}

// RenderHTML wraps the SVG in a standalone page with a summary line.
func (r *SvgRenderer) RenderHTML(floorPlan models.FloorPlan, title string) string {
	svg := r.Render(floorPlan)
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body {
            margin: 0;
            padding: 20px;
            background: #f5f5f5;
            font-family: Arial, sans-serif;
        }
        .container {
            max-width: 100%%;
            overflow-x: auto;
        }
        h1 {
            color: #333;
            margin-bottom: 10px;
        }
        .info {
            color: #666;
            margin-bottom: 20px;
        }
        svg {
            background: white;
            box-shadow: 0 2px 8px rgba(0,0,0,0.1);
        }
    </style>
</head>
<body>
    <h1>%s</h1>
    <div class="info">
        Total Area: %.0f sq ft | Rooms: %d | Level: %d
    </div>
    <div class="container">
        %s
    </div>
</body>
</html>`,
		title, title,
		floorPlan.TotalFloorArea().Value(),
		len(floorPlan.Rooms),
		floorPlan.Level,
		svg)
}

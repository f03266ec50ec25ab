package services

import (
	"strings"
	"testing"

	"backend/models"
)

func TestSvgRendererBasics(t *testing.T) {
	plan := models.NewFloorPlan("Simple Plan")
	plan.AddRoom(models.NewRoom("Room 1", models.Bedroom,
		models.NewFeetInches(12, 0), models.NewFeetInches(10, 0)))

	svg := NewSvgRenderer().Render(plan)

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
		t.Errorf("svg not well formed:\n%s", svg)
	}
	if !strings.Contains(svg, "ROOM 1") {
		t.Error("room label missing")
	}
	if !strings.Contains(svg, `12' x 10'`) {
		t.Error("dimension annotation missing")
	}
	if !strings.Contains(svg, `url(#grid)`) {
		t.Error("grid missing")
	}
}

func TestSvgRendererWallsAndOpenings(t *testing.T) {
	plan := models.NewFloorPlan("Openings")
	plan.AddRoom(models.NewRoom("Living Room", models.LivingRoom,
		models.NewFeetInches(20, 0), models.NewFeetInches(15, 0)))

	wall := models.NewWall(models.ExteriorLoadBearing,
		models.NewPoint(0, 0), models.NewPoint(240, 0)) // 20 feet in inches
	wall.AddDoor(models.ExteriorEntry, models.NewFeetInches(4, 0))
	wall.AddWindow(models.DoubleHung, models.NewFeetInches(10, 0),
		models.NewFeetInches(3, 0), models.NewFeetInches(5, 0))
	plan.AddWall(wall)

	svg := NewSvgRenderer().Render(plan)

	if !strings.Contains(svg, `class="exterior-wall"`) {
		t.Error("exterior wall missing")
	}
	if !strings.Contains(svg, `class="door"`) {
		t.Error("door arc missing")
	}
	if !strings.Contains(svg, `class="window"`) {
		t.Error("window line missing")
	}
}

func TestSvgRendererHidesAnnotations(t *testing.T) {
	config := DefaultRenderConfig()
	config.ShowLabels = false
	config.ShowGrid = false

	plan := models.NewFloorPlan("Plain")
	plan.AddRoom(models.NewRoom("Office", models.Office,
		models.NewFeetInches(10, 0), models.NewFeetInches(10, 0)))

	svg := NewSvgRendererWithConfig(config).Render(plan)
	if strings.Contains(svg, "OFFICE") {
		t.Error("label rendered with labels disabled")
	}
	if strings.Contains(svg, "url(#grid)") {
		t.Error("grid rendered with grid disabled")
	}
}

func TestColorSchemeByName(t *testing.T) {
	if got := ColorSchemeByName("blueprint"); got.Background != "#0f0f23" {
		t.Errorf("blueprint background = %q", got.Background)
	}
	if got := ColorSchemeByName("color_coded"); got.Bedroom != "#bbdefb" {
		t.Errorf("color_coded bedroom = %q", got.Bedroom)
	}
	if got := ColorSchemeByName("anything"); got.Background != "#ffffff" {
		t.Errorf("default background = %q", got.Background)
	}
}

func TestRenderHTML(t *testing.T) {
	plan := models.NewFloorPlan("Main Floor")
	plan.AddRoom(models.NewRoom("Kitchen", models.Kitchen,
		models.NewFeetInches(14, 0), models.NewFeetInches(12, 0)))

	html := NewSvgRenderer().RenderHTML(plan, "My House")
	if !strings.Contains(html, "<!DOCTYPE html>") {
		t.Error("not a standalone page")
	}
	if !strings.Contains(html, "<title>My House</title>") {
		t.Error("title missing")
	}
	if !strings.Contains(html, "Total Area: 168 sq ft") {
		t.Errorf("summary line missing:\n%s", html)
	}
}

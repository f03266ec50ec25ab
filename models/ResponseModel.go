package models

import "time"

// APIResponse is the envelope every endpoint returns.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func SuccessResponse(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

func ErrorResponseBody(message string) APIResponse {
	return APIResponse{Success: false, Error: message}
}

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required" example:"Smith Residence"`
	Description string `json:"description" example:"Two-story farmhouse"`
}

type CreateFloorPlanRequest struct {
	Name  string `json:"name" binding:"required" example:"Main Floor"`
	Level *int   `json:"level" example:"0"`
}

type CreateRoomRequest struct {
	Name                string   `json:"name" binding:"required" example:"Master Suite"`
	RoomType            RoomType `json:"room_type" binding:"required" example:"master_suite"`
	LengthFeet          int      `json:"length_feet" example:"17"`
	LengthInches        int      `json:"length_inches" example:"8"`
	WidthFeet           int      `json:"width_feet" example:"22"`
	WidthInches         int      `json:"width_inches" example:"8"`
	PositionX           *float64 `json:"position_x" example:"110"`
	PositionY           *float64 `json:"position_y" example:"15"`
	CeilingHeightFeet   *int     `json:"ceiling_height_feet" example:"9"`
	CeilingHeightInches *int     `json:"ceiling_height_inches" example:"0"`
}

type CreateWallRequest struct {
	WallType WallType `json:"wall_type" binding:"required" example:"exterior_load_bearing"`
	StartX   float64  `json:"start_x" example:"0"`
	StartY   float64  `json:"start_y" example:"0"`
	EndX     float64  `json:"end_x" example:"144"`
	EndY     float64  `json:"end_y" example:"0"`
}

type CalculateRequest struct {
	QualityTier  *QualityTier `json:"quality_tier" example:"standard"`
	IncludeWaste *bool        `json:"include_waste" example:"true"`
	StudSpacing  *int         `json:"stud_spacing" example:"16"`
}

// ProjectSummary is the list/creation view of a project.
type ProjectSummary struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	FloorCount    int       `json:"floor_count"`
	TotalSqft     float64   `json:"total_sqft"`
	BedroomCount  int       `json:"bedroom_count"`
	BathroomCount float32   `json:"bathroom_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewProjectSummary(p Project) ProjectSummary {
	return ProjectSummary{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		FloorCount:    len(p.FloorPlans),
		TotalSqft:     p.TotalLivingArea().Value(),
		BedroomCount:  p.BedroomCount(),
		BathroomCount: p.BathroomCount(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// CalculationSummary is the per-trade rollup inside an estimate.
type CalculationSummary struct {
	Description string   `json:"description"`
	TotalCost   float64  `json:"total_cost"`
	CostPerSqft *float64 `json:"cost_per_sqft"`
	ItemCount   int      `json:"item_count"`
	Notes       []string `json:"notes"`
}

// ProjectEstimate is the response of the project calculate endpoint.
type ProjectEstimate struct {
	ProjectID   string               `json:"project_id"`
	ProjectName string               `json:"project_name"`
	QualityTier QualityTier          `json:"quality_tier"`
	TotalCost   float64              `json:"total_cost"`
	TotalSqft   float64              `json:"total_sqft"`
	CostPerSqft float64              `json:"cost_per_sqft"`
	Categories  []CalculationSummary `json:"categories"`
}

// FloorEstimate is the response of the floor calculate endpoint.
type FloorEstimate struct {
	FloorID     string               `json:"floor_id"`
	FloorName   string               `json:"floor_name"`
	QualityTier QualityTier          `json:"quality_tier"`
	TotalCost   float64              `json:"total_cost"`
	TotalSqft   float64              `json:"total_sqft"`
	CostPerSqft float64              `json:"cost_per_sqft"`
	Categories  []CalculationSummary `json:"categories"`
}

// MaterialSummary is the catalog view with all tier prices.
type MaterialSummary struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Category      MaterialCategory `json:"category"`
	Unit          string           `json:"unit"`
	PriceEconomy  float64          `json:"price_economy"`
	PriceStandard float64          `json:"price_standard"`
	PricePremium  float64          `json:"price_premium"`
	PriceLuxury   float64          `json:"price_luxury"`
}

func NewMaterialSummary(m Material) MaterialSummary {
	return MaterialSummary{
		ID:            m.ID,
		Name:          m.Name,
		Category:      m.Category,
		Unit:          m.Unit.Abbreviation(),
		PriceEconomy:  m.PriceEconomy,
		PriceStandard: m.PriceStandard,
		PricePremium:  m.PricePremium,
		PriceLuxury:   m.PriceLuxury,
	}
}

// RoomTypeSummary is one entry of the room type reference list.
type RoomTypeSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ImportedFloorPlan is the import endpoint response: the converted
// plan plus every fallback taken while decoding the definition.
type ImportedFloorPlan struct {
	FloorPlan FloorPlan `json:"floor_plan"`
	Warnings  []string  `json:"warnings"`
}

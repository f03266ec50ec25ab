package services

import "backend/models"

// CalculateFloorPlan runs every trade take-off for one floor.
func CalculateFloorPlan(floorPlan models.FloorPlan, config CalculationConfig) []CalculationResult {
	return []CalculationResult{
		FramingForFloorPlan(floorPlan, config),
		DrywallForFloorPlan(floorPlan, config),
		FlooringForFloorPlan(floorPlan, config),
		TrimForFloorPlan(floorPlan, config),
		PaintForFloorPlan(floorPlan, config),
		ElectricalForFloorPlan(floorPlan, config),
	}
}

// CalculateProject runs the take-off across all floors.
func CalculateProject(project models.Project, config CalculationConfig) []CalculationResult {
	var results []CalculationResult
	for _, floorPlan := range project.FloorPlans {
		results = append(results, CalculateFloorPlan(floorPlan, config)...)
	}
	return results
}

// TotalProjectCost sums every trade's rollup.
func TotalProjectCost(results []CalculationResult) float64 {
	total := 0.0
	for _, result := range results {
		total += result.TotalCost
	}
	return total
}

// CostBreakdownByCategory maps trade description to its cost.
func CostBreakdownByCategory(results []CalculationResult) map[string]float64 {
	breakdown := make(map[string]float64)
	for _, result := range results {
		breakdown[result.Description] += result.TotalCost
	}
	return breakdown
}

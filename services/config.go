package services

import "backend/models"

// CalculationConfig controls take-off quantities and pricing.
type CalculationConfig struct {
	// Stud spacing in inches, typically 16 or 24.
	StudSpacing int
	QualityTier models.QualityTier
	// IncludeWaste toggles the waste factors below.
	IncludeWaste          bool
	LumberWasteFactor     float64
	SheetGoodsWasteFactor float64
	FlooringWasteFactor   float64
	PaintWasteFactor      float64
}

// DefaultCalculationConfig matches standard residential practice.
func DefaultCalculationConfig() CalculationConfig {
	return CalculationConfig{
		StudSpacing:           16,
		QualityTier:           models.TierStandard,
		IncludeWaste:          true,
		LumberWasteFactor:     1.10,
		SheetGoodsWasteFactor: 1.10,
		FlooringWasteFactor:   1.10,
		PaintWasteFactor:      1.15,
	}
}

// CalculationResult is one trade's take-off with its cost rollup.
type CalculationResult struct {
	Description string
	Materials   models.MaterialList
	// Total cost at the configured quality tier.
	TotalCost   float64
	CostPerSqft *float64
	Notes       []string
}

// NewCalculationResult prices the list at the config's tier.
func NewCalculationResult(description string, materials models.MaterialList, config CalculationConfig) CalculationResult {
	return CalculationResult{
		Description: description,
		Materials:   materials,
		TotalCost:   materials.TotalCost(config.QualityTier),
		Notes:       []string{},
	}
}

// WithSqft attaches a cost-per-square-foot figure when sqft is positive.
func (r CalculationResult) WithSqft(sqft float64) CalculationResult {
	if sqft > 0 {
		perSqft := r.TotalCost / sqft
		r.CostPerSqft = &perSqft
	}
	return r
}

func (r *CalculationResult) AddNote(note string) {
	r.Notes = append(r.Notes, note)
}

package models

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Measurement parse errors.
var (
	ErrInvalidFeet   = errors.New("invalid feet value")
	ErrInvalidInches = errors.New("invalid inches value")
	ErrInvalidFormat = errors.New("invalid measurement format")
)

// FeetInches is an architectural measurement such as 14'-6".
// Inches is kept in the 0-11 range by the constructors.
type FeetInches struct {
	Feet   int `json:"feet"`
	Inches int `json:"inches"`
}

// NewFeetInches normalizes the inches component into 0-11.
func NewFeetInches(feet, inches int) FeetInches {
	total := feet*12 + inches
	return FeetInches{Feet: total / 12, Inches: total % 12}
}

func FeetInchesFromFeet(feet int) FeetInches {
	return FeetInches{Feet: feet}
}

func FeetInchesFromInches(inches int) FeetInches {
	return NewFeetInches(0, inches)
}

// FeetInchesFromDecimal converts decimal feet, e.g. 14.5 = 14'-6".
func FeetInchesFromDecimal(decimalFeet float64) FeetInches {
	totalInches := int(math.Round(decimalFeet * 12.0))
	return NewFeetInches(0, totalInches)
}

func (fi FeetInches) ToInches() int {
	return fi.Feet*12 + fi.Inches
}

func (fi FeetInches) ToDecimalFeet() float64 {
	return float64(fi.Feet) + float64(fi.Inches)/12.0
}

func (fi FeetInches) ToMeters() float64 {
	return fi.ToDecimalFeet() * 0.3048
}

func (fi FeetInches) ToCentimeters() float64 {
	return fi.ToMeters() * 100.0
}

func (fi FeetInches) Add(other FeetInches) FeetInches {
	return FeetInchesFromInches(fi.ToInches() + other.ToInches())
}

func (fi FeetInches) Sub(other FeetInches) FeetInches {
	return FeetInchesFromInches(fi.ToInches() - other.ToInches())
}

func (fi FeetInches) Mul(scalar int) FeetInches {
	return FeetInchesFromInches(fi.ToInches() * scalar)
}

func (fi FeetInches) Div(scalar int) FeetInches {
	return FeetInchesFromInches(fi.ToInches() / scalar)
}

// ParseFeetInches parses architectural notation. Accepted forms:
// 14'-6", 14'-6, 14'6, 14-6, 14, 14.5 (decimal feet).
func ParseFeetInches(s string) (FeetInches, error) {
	s = strings.TrimSpace(s)

	if idx := strings.IndexByte(s, '\''); idx >= 0 {
		feet, err := strconv.Atoi(s[:idx])
		if err != nil {
			return FeetInches{}, ErrInvalidFeet
		}
		inchesPart := strings.TrimSuffix(strings.TrimPrefix(s[idx+1:], "-"), "\"")
		inches := 0
		if inchesPart != "" {
			inches, err = strconv.Atoi(inchesPart)
			if err != nil {
				return FeetInches{}, ErrInvalidInches
			}
		}
		return NewFeetInches(feet, inches), nil
	}

	if idx := strings.IndexByte(s, '-'); idx > 0 {
		feet, err := strconv.Atoi(s[:idx])
		if err != nil {
			return FeetInches{}, ErrInvalidFeet
		}
		inches, err := strconv.Atoi(strings.TrimSuffix(s[idx+1:], "\""))
		if err != nil {
			return FeetInches{}, ErrInvalidInches
		}
		return NewFeetInches(feet, inches), nil
	}

	if feet, err := strconv.Atoi(s); err == nil {
		return FeetInchesFromFeet(feet), nil
	}

	if decimal, err := strconv.ParseFloat(s, 64); err == nil {
		return FeetInchesFromDecimal(decimal), nil
	}

	return FeetInches{}, ErrInvalidFormat
}

// ArchString formats the measurement in architectural notation,
// e.g. 14' or 14'-6".
func (fi FeetInches) ArchString() string {
	if fi.Inches == 0 {
		return fmt.Sprintf("%d'", fi.Feet)
	}
	return fmt.Sprintf("%d'-%d\"", fi.Feet, fi.Inches)
}

func (fi FeetInches) String() string {
	return fi.ArchString()
}

// SquareFeet is an area in square feet.
type SquareFeet float64

// SquareFeetFromDimensions multiplies two measurements.
func SquareFeetFromDimensions(length, width FeetInches) SquareFeet {
	return SquareFeet(length.ToDecimalFeet() * width.ToDecimalFeet())
}

func (sf SquareFeet) Value() float64 {
	return float64(sf)
}

func (sf SquareFeet) ToSquareMeters() float64 {
	return float64(sf) * 0.092903
}

func (sf SquareFeet) String() string {
	return fmt.Sprintf("%.2f sq ft", float64(sf))
}

// LinearFeet is a running length, used for trim, plates, wire.
type LinearFeet float64

func LinearFeetFrom(fi FeetInches) LinearFeet {
	return LinearFeet(fi.ToDecimalFeet())
}

func (lf LinearFeet) Value() float64 {
	return float64(lf)
}

func (lf LinearFeet) ToMeters() float64 {
	return float64(lf) * 0.3048
}

// PiecesNeeded returns how many stock pieces of the given length
// cover this run, rounding up.
func (lf LinearFeet) PiecesNeeded(pieceLength float64) int {
	return int(math.Ceil(float64(lf) / pieceLength))
}

func (lf LinearFeet) String() string {
	return fmt.Sprintf("%.2f LF", float64(lf))
}

// CeilingKind discriminates CeilingHeight variants.
type CeilingKind string

const (
	CeilingStandard  CeilingKind = "standard"
	CeilingVaulted   CeilingKind = "vaulted"
	CeilingCathedral CeilingKind = "cathedral"
	CeilingTray      CeilingKind = "tray"
)

// CeilingHeight describes a flat, vaulted, cathedral or tray ceiling.
// Only the fields of the active kind are meaningful.
type CeilingHeight struct {
	Kind CeilingKind `json:"kind"`
	// Standard flat height, or the wall height for vaulted/cathedral.
	Height    FeetInches `json:"height,omitempty"`
	MaxHeight FeetInches `json:"max_height,omitempty"`
	// Pitch as rise over 12 (7 means 7/12) for vaulted ceilings.
	Pitch int `json:"pitch,omitempty"`
	// Tray ceilings carry a raised center.
	CenterHeight FeetInches `json:"center_height,omitempty"`
	TrayWidth    FeetInches `json:"tray_width,omitempty"`
}

func StandardCeiling(height FeetInches) CeilingHeight {
	return CeilingHeight{Kind: CeilingStandard, Height: height}
}

func VaultedCeiling(minHeight FeetInches, pitch int) CeilingHeight {
	return CeilingHeight{Kind: CeilingVaulted, Height: minHeight, Pitch: pitch}
}

func CathedralCeiling(minHeight, maxHeight FeetInches) CeilingHeight {
	return CeilingHeight{Kind: CeilingCathedral, Height: minHeight, MaxHeight: maxHeight}
}

func TrayCeiling(perimeterHeight, centerHeight, trayWidth FeetInches) CeilingHeight {
	return CeilingHeight{
		Kind:         CeilingTray,
		Height:       perimeterHeight,
		CenterHeight: centerHeight,
		TrayWidth:    trayWidth,
	}
}

// DefaultCeiling is a standard 9' ceiling.
func DefaultCeiling() CeilingHeight {
	return StandardCeiling(NewFeetInches(9, 0))
}

// MinHeight is the height at the walls.
func (ch CeilingHeight) MinHeight() FeetInches {
	return ch.Height
}

// AverageHeight estimates the mean ceiling height for calculations.
func (ch CeilingHeight) AverageHeight() FeetInches {
	switch ch.Kind {
	case CeilingVaulted:
		// Assume an 8ft half-span, so 4ft of run to the ridge.
		risePerFoot := float64(ch.Pitch) / 12.0
		return FeetInchesFromDecimal(ch.Height.ToDecimalFeet() + risePerFoot*4.0)
	case CeilingCathedral:
		avg := (ch.Height.ToDecimalFeet() + ch.MaxHeight.ToDecimalFeet()) / 2.0
		return FeetInchesFromDecimal(avg)
	case CeilingTray:
		// Weight towards the perimeter since the tray is usually smaller.
		avg := ch.Height.ToDecimalFeet()*0.7 + ch.CenterHeight.ToDecimalFeet()*0.3
		return FeetInchesFromDecimal(avg)
	default:
		return ch.Height
	}
}

func (ch CeilingHeight) String() string {
	switch ch.Kind {
	case CeilingVaulted:
		return fmt.Sprintf("%d/12 Vaulted (%s)", ch.Pitch, ch.Height)
	case CeilingCathedral:
		return fmt.Sprintf("Cathedral %s-%s", ch.Height, ch.MaxHeight)
	case CeilingTray:
		return fmt.Sprintf("Tray %s / %s", ch.Height, ch.CenterHeight)
	default:
		return fmt.Sprintf("%s CLG", ch.Height)
	}
}

// Package soil approximates the usable soil volume of a plant container.
package soil

import "math"

const (
	// MillilitersPerCubicInch converts cubic inches to milliliters
	MillilitersPerCubicInch = 16.387

	// DerivedHeightRatio is applied to the diameter when no height is known
	DerivedHeightRatio = 0.75

	// MinDimensionInches floors diameter and height to avoid degenerate volumes
	MinDimensionInches = 1.0
)

// EstimateHeight returns the container height to use, deriving it from the
// diameter as round(0.75 × diameter) when height is nil.
func EstimateHeight(diameterInches float64, heightInches *float64) float64 {
	var h float64
	if heightInches != nil {
		h = *heightInches
	} else {
		h = math.Round(DerivedHeightRatio * diameterInches)
	}
	return math.Max(h, MinDimensionInches)
}

// EstimateVolumeML models the container as a cylinder and returns its volume in milliliters
func EstimateVolumeML(diameterInches float64, heightInches *float64) float64 {
	d := math.Max(diameterInches, MinDimensionInches)
	h := EstimateHeight(d, heightInches)
	r := d / 2
	return math.Pi * r * r * h * MillilitersPerCubicInch
}

package planparse

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/osse101/PlantCare_Go/internal/domain"
)

// Milliliters per unit
const (
	MLPerLiter      = 1000.0
	MLPerCup        = 236.6
	MLPerFluidOunce = 29.57
	MLPerTablespoon = 14.79
	MLPerTeaspoon   = 4.93
)

const quantityExpr = `\d+\s+\d+\s*/\s*\d+|\d+\s*/\s*\d+|\d+(?:\.\d+)?|one|two|three|four|five|six|seven|eight|nine|ten|half(?:\s+an?)?|an?`

// Longer spellings must precede their prefixes
const volumeUnitExpr = `milliliters?|millilitres?|mls?|liters?|litres?|l|cups?|fl\.?\s*oz|fluid\s+ounces?|ounces?|oz|tablespoons?|tbsps?|teaspoons?|tsps?`

var fractionPattern = regexp.MustCompile(`^(?:(\d+)\s+)?(\d+)\s*/\s*(\d+)$`)

var waterAmountPattern = regexp.MustCompile(`\b(` + quantityExpr + `)(?:\s*(?:-|to)\s*(` + quantityExpr + `))?\s*(` + volumeUnitExpr + `)\b`)

// volumeUnit maps a matched unit spelling to milliliters
func volumeUnit(u string) float64 {
	switch {
	case strings.HasPrefix(u, "ml"), strings.HasPrefix(u, "millilit"):
		return 1
	case u == "l", strings.HasPrefix(u, "lit"):
		return MLPerLiter
	case strings.HasPrefix(u, "cup"):
		return MLPerCup
	case strings.HasPrefix(u, "fl"), strings.HasPrefix(u, "oz"), strings.HasPrefix(u, "ounce"):
		return MLPerFluidOunce
	case strings.HasPrefix(u, "tablespoon"), strings.HasPrefix(u, "tbsp"):
		return MLPerTablespoon
	case strings.HasPrefix(u, "teaspoon"), strings.HasPrefix(u, "tsp"):
		return MLPerTeaspoon
	default:
		return 0
	}
}

// ParseWaterAmount reads a per-watering volume such as "250 ml",
// "1½ cups" or "two to three tablespoons" and converts it to milliliters,
// rounded to 0.1 ml. Text without a recognizable volume unit yields ok == false.
func ParseWaterAmount(text string) (domain.WaterAmount, bool) {
	s := Normalize(text)
	m := waterAmountPattern.FindStringSubmatch(s)
	if m == nil {
		return domain.WaterAmount{}, false
	}

	qty, ok := parseQuantity(m[1])
	if !ok {
		return domain.WaterAmount{}, false
	}
	if m[2] != "" {
		if upper, ok := parseQuantity(m[2]); ok {
			qty = (qty + upper) / 2
		}
	}

	ml := math.Round(qty*volumeUnit(m[3])*10) / 10
	if ml <= 0 {
		return domain.WaterAmount{}, false
	}
	return domain.WaterAmount{Amount: ml, Unit: domain.UnitMilliliters}, true
}

// parseQuantity reads "250", "1.5", "3/4", "1 1/2", "two", "a" or "half a"
func parseQuantity(q string) (float64, bool) {
	q = strings.TrimSpace(q)
	switch {
	case q == "a" || q == "an":
		return 1, true
	case strings.HasPrefix(q, "half"):
		return 0.5, true
	}
	if v, ok := wordNumbers[q]; ok {
		return v, true
	}

	whole := 0.0
	m := fractionPattern.FindStringSubmatch(q)
	if m == nil {
		v, err := strconv.ParseFloat(q, 64)
		return v, err == nil
	}
	if m[1] != "" {
		whole, _ = strconv.ParseFloat(m[1], 64)
	}
	n, _ := strconv.ParseFloat(m[2], 64)
	d, _ := strconv.ParseFloat(m[3], 64)
	if d == 0 {
		return 0, false
	}
	return whole + n/d, true
}

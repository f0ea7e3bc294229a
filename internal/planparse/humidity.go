package planparse

import (
	"math"
	"regexp"
	"strings"

	"github.com/osse101/PlantCare_Go/internal/domain"
)

// Qualitative humidity levels, in percent
const (
	HighHumidityPercent   = 70
	MediumHumidityPercent = 50
	LowHumidityPercent    = 35
)

// ratioCeiling is the largest unitless value read as a 0-1 ratio
const ratioCeiling = 1.0

type humidityWord struct {
	pattern *regexp.Regexp
	percent int
}

// humidityWords are checked in priority order. "humid" is matched as a whole
// word so "low humidity" is not read as high.
var humidityWords = []humidityWord{
	{regexp.MustCompile(`\b(?:high|humid|moist)\b`), HighHumidityPercent},
	{regexp.MustCompile(`\b(?:medium|moderate|average|normal)\b`), MediumHumidityPercent},
	{regexp.MustCompile(`\b(?:low|dry|arid)\b`), LowHumidityPercent},
}

// ParseHumidity reads a humidity preference as a percentage clamped to
// [20,90]. Explicit numbers win over words; a range is averaged and a
// unitless value of at most 1 is treated as a ratio.
func ParseHumidity(text string) (int, bool) {
	s := Normalize(text)
	if s == "" {
		return 0, false
	}

	if v, ok := pickValue(s, extractNumbers(s)); ok {
		if v <= ratioCeiling && !strings.Contains(s, "%") {
			v *= 100
		}
		return clampHumidity(int(math.Round(v))), true
	}

	for _, w := range humidityWords {
		if w.pattern.MatchString(s) {
			return w.percent, true
		}
	}
	return 0, false
}

func clampHumidity(v int) int {
	return min(max(v, domain.MinHumidityPercent), domain.MaxHumidityPercent)
}

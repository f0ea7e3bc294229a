package planparse

import (
	"regexp"

	"github.com/osse101/PlantCare_Go/internal/domain"
)

// negatedDirect strips phrases like "avoid direct sun" or "protect from harsh
// afternoon direct light" so they do not read as a request for direct light.
var negatedDirect = regexp.MustCompile(`\b(?:avoid(?:ing)?|no|not|never|away from|out of|protect(?:ed)? from|shield(?:ed)? from)\s+(?:\w+\s+){0,3}?(?:direct|full sun)\b(?:\s+(?:sun(?:light|shine)?|light|rays))?`)

type lightRule struct {
	pattern *regexp.Regexp
	level   domain.LightLevel
}

// lightRules are checked in priority order. "direct" must be a whole word so
// "indirect" falls through to the bright rule.
var lightRules = []lightRule{
	{regexp.MustCompile(`\bdirect\b|\bfull sun\b`), domain.LightDirect},
	{regexp.MustCompile(`\bbright\b|\bindirect\b`), domain.LightBrightIndirect},
	{regexp.MustCompile(`\blow\b|\bshade\b|\bdim\b`), domain.LightLow},
	{regexp.MustCompile(`\bmedium\b|\bmoderate\b`), domain.LightMedium},
}

// ParseLightLevel reads a light description as a light level
func ParseLightLevel(text string) (domain.LightLevel, bool) {
	s := negatedDirect.ReplaceAllString(Normalize(text), " ")
	for _, r := range lightRules {
		if r.pattern.MatchString(s) {
			return r.level, true
		}
	}
	return "", false
}

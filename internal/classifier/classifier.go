// Package classifier maps free-text botanical identifiers onto watering-behavior categories.
package classifier

import (
	"strings"

	"github.com/osse101/PlantCare_Go/internal/domain"
)

// Classify returns the watering-behavior category for a plant described by
// its common names, family and scientific name. Any of them may be empty.
func Classify(commonNames []string, family, scientificName string) domain.PlantCategory {
	parts := make([]string, 0, len(commonNames)+2)
	parts = append(parts, commonNames...)
	parts = append(parts, family, scientificName)
	text := strings.ToLower(strings.Join(parts, " "))

	for _, set := range categoryKeywords {
		for _, kw := range set.Keywords {
			if strings.Contains(text, kw) {
				return set.Category
			}
		}
	}
	return DefaultCategory
}

// ClassifyPlant classifies using the botanical fields of a stored plant
func ClassifyPlant(p domain.Plant) domain.PlantCategory {
	return Classify(p.CommonNames, p.Family, p.ScientificName)
}

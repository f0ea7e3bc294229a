package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/PlantCare_Go/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		common     []string
		family     string
		scientific string
		expected   domain.PlantCategory
	}{
		{"empty input defaults to foliage", nil, "", "", domain.CategoryFoliage},
		{"unknown name defaults to foliage", []string{"Fiddle Leaf Fig"}, "Moraceae", "Ficus lyrata", domain.CategoryFoliage},
		{"cactus by family", nil, "Cactaceae", "", domain.CategoryCactus},
		{"succulent by genus", []string{"Hens and chicks"}, "", "Echeveria elegans", domain.CategorySucculent},
		{"succulent wins over cactus", []string{"succulent cactus mix"}, "", "", domain.CategorySucculent},
		{"fern by common name", []string{"Boston Fern"}, "", "Nephrolepis exaltata", domain.CategoryFern},
		{"orchid by scientific name", nil, "", "Phalaenopsis amabilis", domain.CategoryOrchid},
		{"herb claims rosemary before flowering sees rose", []string{"Rosemary"}, "", "", domain.CategoryHerb},
		{"flowering beats tropical", []string{"Tropical flower"}, "", "", domain.CategoryFlowering},
		{"peace lily is flowering even though aroid", []string{"Peace Lily"}, "Araceae", "Spathiphyllum wallisii", domain.CategoryFlowering},
		{"tropical by genus", []string{"Swiss cheese plant"}, "Araceae", "Monstera deliciosa", domain.CategoryTropical},
		{"case insensitive", []string{"GOLDEN POTHOS"}, "", "", domain.CategoryTropical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.common, tt.family, tt.scientific))
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	names := []string{"Christmas Cactus"}
	first := Classify(names, "Cactaceae", "Schlumbergera")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(names, "Cactaceae", "Schlumbergera"))
	}
}

func TestClassifyPlant(t *testing.T) {
	p := domain.Plant{CommonNames: []string{"Sweet basil"}, ScientificName: "Ocimum basilicum"}
	assert.Equal(t, domain.CategoryHerb, ClassifyPlant(p))
}

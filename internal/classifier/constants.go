package classifier

import "github.com/osse101/PlantCare_Go/internal/domain"

// keywordSet pairs a category with the substrings that identify it
type keywordSet struct {
	Category domain.PlantCategory
	Keywords []string
}

// categoryKeywords is evaluated top to bottom and the first hit wins.
// The order matters: "flowering tropical" must land on flowering, and
// "rosemary" must be claimed by herb before flowering sees "rose".
var categoryKeywords = []keywordSet{
	{
		Category: domain.CategorySucculent,
		Keywords: []string{
			"succulent", "crassulaceae", "echeveria", "sedum", "aloe", "haworthia",
			"jade", "crassula", "sempervivum", "kalanchoe", "agave", "string of pearls",
		},
	},
	{
		Category: domain.CategoryCactus,
		Keywords: []string{
			"cactus", "cacti", "cactaceae", "opuntia", "mammillaria", "echinopsis",
			"prickly pear", "saguaro", "schlumbergera",
		},
	},
	{
		Category: domain.CategoryFern,
		Keywords: []string{
			"fern", "polypodiaceae", "nephrolepis", "adiantum", "maidenhair",
			"asplenium", "pteris", "davallia", "platycerium",
		},
	},
	{
		Category: domain.CategoryOrchid,
		Keywords: []string{
			"orchid", "orchidaceae", "phalaenopsis", "dendrobium", "cattleya",
			"oncidium", "vanda", "paphiopedilum",
		},
	},
	{
		Category: domain.CategoryHerb,
		Keywords: []string{
			"herb", "basil", "mint", "rosemary", "thyme", "parsley", "cilantro",
			"oregano", "sage", "chive", "dill", "lavender", "lamiaceae",
		},
	},
	{
		Category: domain.CategoryFlowering,
		Keywords: []string{
			"flower", "bloom", "rose", "begonia", "african violet", "saintpaulia",
			"geranium", "pelargonium", "hibiscus", "anthurium", "peace lily",
			"spathiphyllum", "gardenia", "azalea",
		},
	},
	{
		Category: domain.CategoryTropical,
		Keywords: []string{
			"tropical", "monstera", "philodendron", "pothos", "epipremnum", "calathea",
			"maranta", "alocasia", "colocasia", "araceae", "strelitzia",
			"bird of paradise", "palm", "arecaceae", "banana",
		},
	},
}

// DefaultCategory is returned when no keyword matches
const DefaultCategory = domain.CategoryFoliage

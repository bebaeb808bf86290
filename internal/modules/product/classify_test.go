package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, "bebidas", Classify("Café", DefaultRules))
	assert.Equal(t, "bebidas", Classify("café", DefaultRules))
	assert.Equal(t, Classify("CAFÉ duplo", DefaultRules), Classify("café duplo", DefaultRules))
}

func TestClassifyBuckets(t *testing.T) {
	cases := map[string]string{
		"Água 0.5L":          "bebidas",
		"Sopa do dia":        "sopas",
		"Sandes de queijo":   "sandes",
		"Tosta mista":        "sandes",
		"Bolo de chocolate":  "sobremesas",
		"Bacalhau à Brás":    "pratos",
		"Azeitonas temperas": "entradas",
	}
	for name, want := range cases {
		assert.Equal(t, want, Classify(name, DefaultRules), name)
	}
}

func TestClassifyFirstMatchWinsAndDefault(t *testing.T) {
	// "Sumo de bolo" hits bebidas before sobremesas: rule order decides.
	assert.Equal(t, "bebidas", Classify("Sumo de bolo", DefaultRules))
	assert.Equal(t, DefaultCategory, Classify("Artigo misterioso", DefaultRules))
	assert.Equal(t, DefaultCategory, Classify("", DefaultRules))
}

package product

import "strings"

// Rule maps a set of name keywords to a category bucket. Rules are tried in
// order and the first keyword hit wins, so broader buckets go last.
type Rule struct {
	Category string
	Keywords []string
}

// DefaultCategory is returned when no rule matches.
const DefaultCategory = "outros"

// DefaultRules is the Portuguese menu taxonomy the frontend expects. The
// table is plain data so another locale can swap it without touching the
// normalizer.
var DefaultRules = []Rule{
	{Category: "bebidas", Keywords: []string{
		"café", "cafe", "água", "agua", "sumo", "chá", "galão", "galao",
		"cerveja", "vinho", "refrigerante", "leite", "limonada",
	}},
	{Category: "sopas", Keywords: []string{"sopa", "caldo", "creme de"}},
	{Category: "sandes", Keywords: []string{
		"sandes", "sanduíche", "sanduiche", "tosta", "baguete", "wrap",
	}},
	{Category: "entradas", Keywords: []string{
		"entrada", "petisco", "azeitonas", "pão", "pao", "rissol", "croquete",
	}},
	{Category: "sobremesas", Keywords: []string{
		"sobremesa", "bolo", "doce", "gelado", "tarte", "pudim", "mousse",
		"pastel de nata",
	}},
	{Category: "pratos", Keywords: []string{
		"prato", "bife", "frango", "peixe", "bacalhau", "arroz", "massa",
		"francesinha", "hambúrguer", "hamburguer",
	}},
}

// Classify infers a category from the product name, case-insensitively.
func Classify(name string, rules []Rule) string {
	n := strings.ToLower(name)
	for _, r := range rules {
		for _, k := range r.Keywords {
			if strings.Contains(n, k) {
				return r.Category
			}
		}
	}
	return DefaultCategory
}

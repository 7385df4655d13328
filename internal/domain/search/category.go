package search

import "strings"

// Category is the canonical category of a request.
type Category string

// Known categories. CategoryOther is the fallback when no rule matches.
const (
	CategoryPharmacy   Category = "Farmácia"
	CategoryHospital   Category = "Hospital"
	CategoryTireShop   Category = "Borracharia"
	CategoryGasStation Category = "Posto de Combustível"
	CategoryMarket     Category = "Mercado"
	CategoryBakery     Category = "Padaria"
	CategoryRestaurant Category = "Restaurante"
	CategoryLocksmith  Category = "Chaveiro"
	CategoryMechanic   Category = "Oficina"
	CategoryOther      Category = "Outros"
)

// tireShopKeyword widens recall for tire shops, which are rarely tagged with a provider type.
const tireShopKeyword = "borracharia pneu"

type categoryRule struct {
	keywords []string // folded
	category Category
}

// categoryRules is evaluated top to bottom; the first rule with a matching keyword wins,
// so more specific categories come first (tire shop before mechanic, pharmacy before market).
var categoryRules = []categoryRule{
	{keywords: []string{"farmacia", "drogaria", "remedio", "medicamento"}, category: CategoryPharmacy},
	{keywords: []string{"hospital", "pronto socorro", "pronto-socorro", "emergencia"}, category: CategoryHospital},
	{keywords: []string{"borracharia", "pneu"}, category: CategoryTireShop},
	{keywords: []string{"posto", "combustivel", "gasolina", "etanol", "diesel"}, category: CategoryGasStation},
	{keywords: []string{"mercado", "mercearia", "hortifruti", "atacad"}, category: CategoryMarket},
	{keywords: []string{"padaria", "confeitaria", "pao"}, category: CategoryBakery},
	{keywords: []string{"restaurante", "lanchonete", "pizzaria", "hamburgueria", "comida"}, category: CategoryRestaurant},
	{keywords: []string{"chaveiro"}, category: CategoryLocksmith},
	{keywords: []string{"oficina", "mecanic"}, category: CategoryMechanic},
}

type providerTypeRule struct {
	keywords     []string // folded
	providerType string
}

// providerTypeRules maps request terms to the places provider's type vocabulary.
// Terms without an entry (tire shops among them) are searched by keyword.
var providerTypeRules = []providerTypeRule{
	{keywords: []string{"farmacia", "drogaria"}, providerType: "pharmacy"},
	{keywords: []string{"hospital", "pronto socorro", "pronto-socorro"}, providerType: "hospital"},
	{keywords: []string{"posto", "combustivel", "gasolina"}, providerType: "gas_station"},
	{keywords: []string{"supermercado", "mercado"}, providerType: "supermarket"},
	{keywords: []string{"padaria"}, providerType: "bakery"},
	{keywords: []string{"restaurante"}, providerType: "restaurant"},
	{keywords: []string{"chaveiro"}, providerType: "locksmith"},
	{keywords: []string{"oficina", "mecanic"}, providerType: "car_repair"},
}

// MapCategory returns the canonical category for a free-text request.
func MapCategory(freeText string) Category {
	text := Fold(freeText)
	if text == "" {
		return CategoryOther
	}

	for _, rule := range categoryRules {
		if containsAny(text, rule.keywords) {
			return rule.category
		}
	}

	return CategoryOther
}

// MapToProviderType returns the provider type code for a request, or "" when the
// caller should fall back to keyword search.
func MapToProviderType(freeText string) string {
	text := Fold(freeText)
	if text == "" {
		return ""
	}

	for _, rule := range providerTypeRules {
		if containsAny(text, rule.keywords) {
			return rule.providerType
		}
	}

	return ""
}

// SearchKeyword is the keyword sent on untyped searches.
func SearchKeyword(category Category, query string) string {
	if category == CategoryTireShop {
		return tireShopKeyword
	}

	return strings.TrimSpace(query)
}

// Categories lists every category in rule order followed by the fallback.
func Categories() []Category {
	categories := make([]Category, 0, len(categoryRules)+1)
	for _, rule := range categoryRules {
		categories = append(categories, rule.category)
	}

	return append(categories, CategoryOther)
}

// IsKnown reports whether c is one of the declared categories.
func (c Category) IsKnown() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}

	return false
}

func (c Category) String() string {
	return string(c)
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}

	return false
}

package mailparse

import "strings"

// Category is the closed set of spending categories an expense can carry.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryShopping      Category = "Shopping"
	CategoryEntertainment Category = "Entertainment"
	CategoryBills         Category = "Bills"
	CategoryHealth        Category = "Health"
	CategoryOther         Category = "Other"
)

// Categories lists every category MapToCategory can resolve to.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryShopping,
		CategoryEntertainment,
		CategoryBills,
		CategoryHealth,
		CategoryOther,
	}
}

type categoryRule struct {
	category Category
	keywords []string
}

// categoryRules is evaluated top to bottom; the first matching rule wins.
// The order encodes the tie-breaks the keywords alone cannot: ride-specific
// markers beat Food, Food beats the bare "grab" fallback (so GrabFood is
// Food), and the fallback beats Shopping (so GrabMart is Transport).
var categoryRules = []categoryRule{
	{CategoryTransport, []string{"grabcar", "grabbike", "taxi", "ride"}},
	{CategoryFood, []string{"food", "restaurant", "cafe", "coffee"}},
	{CategoryTransport, []string{"grab"}},
	{CategoryShopping, []string{"shopping", "mart", "retail", "store"}},
	{CategoryEntertainment, []string{"movie", "game", "subscription"}},
	{CategoryBills, []string{"bill", "utility", "internet", "phone"}},
	{CategoryHealth, []string{"hospital", "pharmacy", "medical", "clinic"}},
}

// MapToCategory derives a spending category from a transaction type label and
// merchant name by case-insensitive keyword matching. It is pure and total:
// inputs that match no rule resolve to Other.
func MapToCategory(txType, merchant string) Category {
	haystack := strings.ToLower(txType + " " + merchant)
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(haystack, keyword) {
				return rule.category
			}
		}
	}
	return CategoryOther
}

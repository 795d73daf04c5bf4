package matcher

import "strings"

// categoryKeywords maps categories to name fragments, checked in order;
// the first matching category wins.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"Protein", []string{"chicken", "beef", "pork", "lamb", "turkey", "duck", "mince", "steak", "sausage", "bacon", "ham", "tofu", "egg"}},
	{"Dairy", []string{"milk", "cream", "butter", "cheese", "yogurt", "yoghurt", "creme"}},
	{"Produce", []string{"onion", "garlic", "potato", "carrot", "celery", "tomato", "lettuce", "spinach", "cabbage", "pepper", "mushroom", "broccoli", "cauliflower", "zucchini", "cucumber", "herb", "parsley", "coriander", "basil"}},
	{"Fruit", []string{"apple", "banana", "orange", "lemon", "lime", "berry", "berries", "mango", "pineapple", "grape", "melon", "peach", "pear"}},
	{"Pantry", []string{"flour", "sugar", "rice", "pasta", "noodle", "oil", "vinegar", "stock", "sauce", "tin", "can", "bean", "lentil", "bread"}},
	{"Spices", []string{"salt", "spice", "cumin", "paprika", "cinnamon", "turmeric", "oregano", "thyme", "chili", "chilli", "curry", "powder"}},
	{"Seafood", []string{"fish", "salmon", "tuna", "prawn", "shrimp", "crab", "lobster", "mussel", "oyster", "squid", "anchovy"}},
}

// InferCategory guesses an ingredient category from its name.
// Unrecognized names land in "Other".
func InferCategory(name string) string {
	n := strings.ToLower(name)
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(n, kw) {
				return entry.category
			}
		}
	}
	return "Other"
}

// unitKeywords maps stock units to name fragments, checked in order.
var unitKeywords = []struct {
	unit     string
	keywords []string
}{
	{"ml", []string{"milk", "cream", "oil", "juice", "vinegar", "stock", "sauce", "water", "wine"}},
	{"g", []string{"flour", "sugar", "rice", "butter", "cheese", "mince", "salt", "powder"}},
	{"each", []string{"egg", "lemon", "lime", "onion", "avocado", "capsicum", "loaf", "tin", "can"}},
	{"bunch", []string{"parsley", "coriander", "basil", "mint", "dill", "chives", "spring onion", "asparagus"}},
}

// InferUnit guesses the stocking unit from an ingredient name, defaulting
// to grams.
func InferUnit(name string) string {
	n := strings.ToLower(name)
	for _, entry := range unitKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(n, kw) {
				return entry.unit
			}
		}
	}
	return "g"
}

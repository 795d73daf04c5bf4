// Package units converts ingredient quantities between kitchen measurement
// units and prices recipe lines whose unit differs from the unit the
// ingredient is costed in. Conversion only ever happens within a single
// family (mass, volume, count); cross-family conversion is undefined and
// reported as an error, never approximated.
package units

import (
	"errors"
	"fmt"
)

// Family identifies the physical family a unit belongs to.
type Family string

const (
	FamilyMass    Family = "mass"
	FamilyVolume  Family = "volume"
	FamilyCount   Family = "count"
	FamilyUnknown Family = "unknown"
)

// ErrNoConversion is returned when no conversion exists between two units:
// cross-family pairs, count units, or unknown units.
var ErrNoConversion = errors.New("no conversion between units")

// IncompatibleUnitsError reports a costing request whose recipe unit cannot
// be converted into the unit the ingredient is priced in.
type IncompatibleUnitsError struct {
	RecipeUnit     string
	IngredientUnit string
}

func (e *IncompatibleUnitsError) Error() string {
	return fmt.Sprintf("incompatible units: recipe uses %q but ingredient is priced per %q", e.RecipeUnit, e.IngredientUnit)
}

type unitDef struct {
	family Family
	toBase float64 // grams for mass, milliliters for volume
}

// unitTable maps unit names to family and base-unit ratio.
// Count units carry no ratio; they are only identity-comparable.
var unitTable = map[string]unitDef{
	// mass (base = g)
	"g":  {family: FamilyMass, toBase: 1},
	"kg": {family: FamilyMass, toBase: 1000},
	"lb": {family: FamilyMass, toBase: 453.592},
	"oz": {family: FamilyMass, toBase: 28.3495},

	// volume (base = ml)
	"ml":   {family: FamilyVolume, toBase: 1},
	"l":    {family: FamilyVolume, toBase: 1000},
	"tsp":  {family: FamilyVolume, toBase: 4.92892},
	"tbsp": {family: FamilyVolume, toBase: 14.7868},
	"cup":  {family: FamilyVolume, toBase: 236.588},

	// count (no inter-conversion)
	"each":  {family: FamilyCount},
	"bunch": {family: FamilyCount},
	"case":  {family: FamilyCount},
}

// TypeOf returns the family a unit belongs to, or FamilyUnknown.
func TypeOf(unit string) Family {
	def, ok := unitTable[unit]
	if !ok {
		return FamilyUnknown
	}
	return def.family
}

// Compatible reports whether two units share a known family.
func Compatible(a, b string) bool {
	fa := TypeOf(a)
	return fa != FamilyUnknown && fa == TypeOf(b)
}

// Convert converts a quantity from one unit to another through the family
// base unit. Equal units short-circuit to the input quantity. Count units
// never convert, even to each other.
func Convert(quantity float64, fromUnit, toUnit string) (float64, error) {
	if fromUnit == toUnit {
		return quantity, nil
	}

	from, ok := unitTable[fromUnit]
	if !ok {
		return 0, ErrNoConversion
	}
	to, ok := unitTable[toUnit]
	if !ok {
		return 0, ErrNoConversion
	}
	if from.family != to.family || from.family == FamilyCount {
		return 0, ErrNoConversion
	}

	return quantity * from.toBase / to.toBase, nil
}

// IngredientCost prices a recipe line: recipeQty in recipeUnit of an
// ingredient costed at costPerUnit per ingredientUnit. When the units
// differ and cannot be converted it returns *IncompatibleUnitsError;
// callers that want the legacy direct-multiplication behavior must opt
// in via IngredientCostWithFallback.
func IngredientCost(recipeQty float64, recipeUnit string, costPerUnit float64, ingredientUnit string) (float64, error) {
	if recipeUnit == ingredientUnit {
		return recipeQty * costPerUnit, nil
	}

	converted, err := Convert(recipeQty, recipeUnit, ingredientUnit)
	if err != nil {
		return 0, &IncompatibleUnitsError{RecipeUnit: recipeUnit, IngredientUnit: ingredientUnit}
	}
	return converted * costPerUnit, nil
}

// IngredientCostWithFallback behaves like IngredientCost but on
// incompatible units multiplies the mismatched quantities directly.
// fellBack is true when that happened; the result is then only as good
// as the caller's tolerance for unit confusion and must be surfaced.
func IngredientCostWithFallback(recipeQty float64, recipeUnit string, costPerUnit float64, ingredientUnit string) (cost float64, fellBack bool) {
	c, err := IngredientCost(recipeQty, recipeUnit, costPerUnit, ingredientUnit)
	if err != nil {
		return recipeQty * costPerUnit, true
	}
	return c, false
}

// FormatQuantity renders a quantity with unit-appropriate precision:
// 3 decimals for the large units (kg, l, lb), 1 for the small base
// units (g, ml, oz), 2 otherwise.
func FormatQuantity(quantity float64, unit string) string {
	switch unit {
	case "kg", "l", "lb":
		return fmt.Sprintf("%.3f %s", quantity, unit)
	case "g", "ml", "oz":
		return fmt.Sprintf("%.1f %s", quantity, unit)
	default:
		return fmt.Sprintf("%.2f %s", quantity, unit)
	}
}

// ConversionExplanation renders a human-readable "X unit = Y unit" string
// for UI transparency. Returns "" when no conversion actually occurred.
func ConversionExplanation(quantity float64, fromUnit string, converted float64, toUnit string) string {
	if fromUnit == toUnit {
		return ""
	}
	return fmt.Sprintf("%s = %s", FormatQuantity(quantity, fromUnit), FormatQuantity(converted, toUnit))
}

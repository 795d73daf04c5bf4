package units

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

// ── TypeOf / Compatible ──

func TestTypeOf(t *testing.T) {
	cases := []struct {
		unit string
		want Family
	}{
		{"g", FamilyMass},
		{"kg", FamilyMass},
		{"lb", FamilyMass},
		{"oz", FamilyMass},
		{"ml", FamilyVolume},
		{"l", FamilyVolume},
		{"tsp", FamilyVolume},
		{"tbsp", FamilyVolume},
		{"cup", FamilyVolume},
		{"each", FamilyCount},
		{"bunch", FamilyCount},
		{"case", FamilyCount},
		{"xyz", FamilyUnknown},
		{"", FamilyUnknown},
	}
	for _, c := range cases {
		if got := TypeOf(c.unit); got != c.want {
			t.Errorf("TypeOf(%q)=%s, want %s", c.unit, got, c.want)
		}
	}
}

func TestCompatible(t *testing.T) {
	if !Compatible("g", "kg") {
		t.Error("g and kg should be compatible")
	}
	if !Compatible("tsp", "cup") {
		t.Error("tsp and cup should be compatible")
	}
	if Compatible("g", "ml") {
		t.Error("cross-family units must not be compatible")
	}
	if Compatible("xyz", "xyz") {
		t.Error("unknown units must not be compatible, even with themselves")
	}
}

// ── Convert ──

func TestConvert_MassRoundNumbers(t *testing.T) {
	got, err := Convert(1, "kg", "g")
	if err != nil {
		t.Fatalf("Convert(1, kg, g) failed: %v", err)
	}
	if !almostEqual(got, 1000) {
		t.Errorf("Convert(1, kg, g)=%v, want 1000", got)
	}

	got, err = Convert(1000, "g", "kg")
	if err != nil {
		t.Fatalf("Convert(1000, g, kg) failed: %v", err)
	}
	if !almostEqual(got, 1) {
		t.Errorf("Convert(1000, g, kg)=%v, want 1", got)
	}
}

func TestConvert_Identity(t *testing.T) {
	// equal units short-circuit; this works even for count and unknown units
	for _, unit := range []string{"g", "each", "xyz"} {
		got, err := Convert(7.5, unit, unit)
		if err != nil {
			t.Fatalf("Convert identity on %q failed: %v", unit, err)
		}
		if got != 7.5 {
			t.Errorf("Convert identity on %q = %v, want 7.5", unit, got)
		}
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"kg", "g"}, {"lb", "oz"}, {"kg", "lb"},
		{"l", "ml"}, {"cup", "tbsp"}, {"tsp", "l"},
	}
	for _, p := range pairs {
		there, err := Convert(3.25, p[0], p[1])
		if err != nil {
			t.Fatalf("Convert(3.25, %s, %s) failed: %v", p[0], p[1], err)
		}
		back, err := Convert(there, p[1], p[0])
		if err != nil {
			t.Fatalf("Convert back (%s, %s) failed: %v", p[1], p[0], err)
		}
		if math.Abs(back-3.25) > 1e-9 {
			t.Errorf("round trip %s<->%s drifted: got %v", p[0], p[1], back)
		}
	}
}

func TestConvert_NoConversion(t *testing.T) {
	cases := [][2]string{
		{"each", "g"},    // count to mass
		{"g", "each"},    // mass to count
		{"each", "case"}, // count units never convert
		{"g", "ml"},      // cross family
		{"xyz", "g"},     // unknown
		{"g", "xyz"},
	}
	for _, c := range cases {
		if _, err := Convert(1, c[0], c[1]); !errors.Is(err, ErrNoConversion) {
			t.Errorf("Convert(1, %s, %s): expected ErrNoConversion, got %v", c[0], c[1], err)
		}
	}
}

// ── IngredientCost ──

func TestIngredientCost_SameUnit(t *testing.T) {
	got, err := IngredientCost(2, "kg", 4.5, "kg")
	if err != nil {
		t.Fatalf("IngredientCost failed: %v", err)
	}
	if !almostEqual(got, 9) {
		t.Errorf("IngredientCost=%v, want 9", got)
	}
}

func TestIngredientCost_Converted(t *testing.T) {
	// 500 g at $10/kg = $5
	got, err := IngredientCost(500, "g", 10, "kg")
	if err != nil {
		t.Fatalf("IngredientCost failed: %v", err)
	}
	if !almostEqual(got, 5) {
		t.Errorf("IngredientCost(500g @ $10/kg)=%v, want 5", got)
	}
}

func TestIngredientCost_Incompatible(t *testing.T) {
	_, err := IngredientCost(2, "each", 3, "kg")
	var incompat *IncompatibleUnitsError
	if !errors.As(err, &incompat) {
		t.Fatalf("expected IncompatibleUnitsError, got %v", err)
	}
	if incompat.RecipeUnit != "each" || incompat.IngredientUnit != "kg" {
		t.Errorf("error carries wrong units: %+v", incompat)
	}
}

func TestIngredientCostWithFallback(t *testing.T) {
	cost, fellBack := IngredientCostWithFallback(2, "each", 3, "kg")
	if !fellBack {
		t.Error("expected fallback on incompatible units")
	}
	if !almostEqual(cost, 6) {
		t.Errorf("fallback cost=%v, want 6 (direct multiplication)", cost)
	}

	cost, fellBack = IngredientCostWithFallback(500, "g", 10, "kg")
	if fellBack {
		t.Error("compatible units must not fall back")
	}
	if !almostEqual(cost, 5) {
		t.Errorf("cost=%v, want 5", cost)
	}
}

// ── formatting ──

func TestFormatQuantity(t *testing.T) {
	cases := []struct {
		qty  float64
		unit string
		want string
	}{
		{1.5, "kg", "1.500 kg"},
		{2, "l", "2.000 l"},
		{0.25, "lb", "0.250 lb"},
		{100.25, "g", "100.2 g"}, // %.1f rounds half to even
		{30, "ml", "30.0 ml"},
		{3, "tbsp", "3.00 tbsp"},
		{2, "each", "2.00 each"},
	}
	for _, c := range cases {
		if got := FormatQuantity(c.qty, c.unit); got != c.want {
			t.Errorf("FormatQuantity(%v, %q)=%q, want %q", c.qty, c.unit, got, c.want)
		}
	}
}

func TestConversionExplanation(t *testing.T) {
	got := ConversionExplanation(500, "g", 0.5, "kg")
	if got != "500.0 g = 0.500 kg" {
		t.Errorf("ConversionExplanation=%q", got)
	}

	if got := ConversionExplanation(500, "g", 500, "g"); got != "" {
		t.Errorf("no conversion should yield empty explanation, got %q", got)
	}
}

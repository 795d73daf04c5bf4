package matcher

import (
	"math"
	"testing"
)

// ── Normalize ──

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Fresh Tomatoes", "tomato"},
		{"chopped  Onions", "onion"},
		{"Berries", "berry"},
		{"Watercress", "watercress"}, // -ss is never stripped
		{"dried chili", "chili"},
		{"  Milk ", "milk"},
		{"fresh", "fresh"}, // all stop words: fall back to raw words
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q)=%q, want %q", c.in, got, c.want)
		}
	}
}

func TestSingularize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"tomatoes", "tomato"},
		{"berries", "berry"},
		{"cases", "case"}, // -ses drops only the trailing s
		{"carrots", "carrot"},
		{"cress", "cress"},
		{"egg", "egg"},
	}
	for _, c := range cases {
		if got := singularize(c.in); got != c.want {
			t.Errorf("singularize(%q)=%q, want %q", c.in, got, c.want)
		}
	}
}

// ── FindSimilar ──

func TestFindSimilar_ExactAfterNormalization(t *testing.T) {
	candidates := []Ingredient{{ID: "1", Name: "Tomato"}}

	matches := FindSimilar("tomatoes", candidates, 0)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Similarity != 1.0 || matches[0].MatchType != MatchExact {
		t.Errorf("expected exact 1.0, got %v %s", matches[0].Similarity, matches[0].MatchType)
	}
}

func TestFindSimilar_Partial(t *testing.T) {
	candidates := []Ingredient{{ID: "1", Name: "Chicken Stock"}}

	matches := FindSimilar("stock", candidates, 0)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].MatchType != MatchPartial || matches[0].Similarity != 0.85 {
		t.Errorf("expected partial 0.85, got %s %v", matches[0].MatchType, matches[0].Similarity)
	}
}

func TestFindSimilar_Alias(t *testing.T) {
	candidates := []Ingredient{{ID: "1", Name: "Onion"}}

	matches := FindSimilar("shallot", candidates, 0)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].MatchType != MatchAlias || matches[0].Similarity != 0.8 {
		t.Errorf("expected alias 0.8, got %s %v", matches[0].MatchType, matches[0].Similarity)
	}
}

func TestFindSimilar_AliasCilantro(t *testing.T) {
	candidates := []Ingredient{{ID: "1", Name: "Coriander"}}

	matches := FindSimilar("cilantro", candidates, 0)
	if len(matches) != 1 || matches[0].MatchType != MatchAlias {
		t.Fatalf("expected alias match for cilantro/coriander, got %+v", matches)
	}
}

func TestFindSimilar_Fuzzy(t *testing.T) {
	candidates := []Ingredient{{ID: "1", Name: "Onion"}}

	// transposition typo: no exact/partial/alias rule fires
	matches := FindSimilar("onoin", candidates, 0)
	if len(matches) != 1 {
		t.Fatalf("expected 1 fuzzy match, got %d", len(matches))
	}
	if matches[0].MatchType != MatchSimilar {
		t.Errorf("expected similar match, got %s", matches[0].MatchType)
	}
	if math.Abs(matches[0].Similarity-0.6) > 1e-9 {
		t.Errorf("similarity=%v, want 0.6 (2 edits over 5 runes)", matches[0].Similarity)
	}
}

func TestFindSimilar_BelowThreshold(t *testing.T) {
	candidates := []Ingredient{{ID: "1", Name: "Saffron"}}

	matches := FindSimilar("dishwashing liquid", candidates, 0)
	if len(matches) != 0 {
		t.Errorf("expected no matches, got %+v", matches)
	}
}

func TestFindSimilar_SortedStable(t *testing.T) {
	candidates := []Ingredient{
		{ID: "1", Name: "Saffron"},
		{ID: "2", Name: "Tomato Paste"},
		{ID: "3", Name: "Tomato"},
		{ID: "4", Name: "Roma Tomato"},
	}

	matches := FindSimilar("tomato", candidates, 0)
	if len(matches) < 3 {
		t.Fatalf("expected at least 3 matches, got %d", len(matches))
	}
	if matches[0].ID != "3" {
		t.Errorf("exact match should rank first, got %s", matches[0].ID)
	}
	// the two partials tie at 0.85; stable sort keeps input order
	if matches[1].ID != "2" || matches[2].ID != "4" {
		t.Errorf("tied partials should keep input order, got %s then %s", matches[1].ID, matches[2].ID)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Similarity > matches[i-1].Similarity {
			t.Errorf("matches not sorted descending at %d", i)
		}
	}
}

func TestFindSimilar_EmptyTerm(t *testing.T) {
	if got := FindSimilar("  ", []Ingredient{{ID: "1", Name: "Tomato"}}, 0); got != nil {
		t.Errorf("blank term should yield nil, got %+v", got)
	}
}

// ── levenshtein / similarity ──

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flour", "flour", 0},
		{"flour", "floor", 1},
	}
	for _, c := range cases {
		if got := levenshtein(c.a, c.b); got != c.want {
			t.Errorf("levenshtein(%q,%q)=%d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	if got := similarity("flour", "floor"); math.Abs(got-0.8) > 1e-9 {
		t.Errorf("similarity(flour,floor)=%v, want 0.8", got)
	}
	if got := similarity("", "abc"); got != 0 {
		t.Errorf("empty string similarity should be 0, got %v", got)
	}
}

// ── inference ──

func TestInferCategory(t *testing.T) {
	cases := []struct{ name, want string }{
		{"chicken breast", "Protein"},
		{"Whole Milk", "Dairy"},
		{"Roma Tomato", "Produce"},
		{"Lemon", "Fruit"},
		{"Plain Flour", "Pantry"},
		{"Smoked Paprika", "Spices"},
		{"Atlantic Salmon", "Seafood"},
		{"unknown item", "Other"},
	}
	for _, c := range cases {
		if got := InferCategory(c.name); got != c.want {
			t.Errorf("InferCategory(%q)=%q, want %q", c.name, got, c.want)
		}
	}
}

func TestInferUnit(t *testing.T) {
	cases := []struct{ name, want string }{
		{"Olive Oil", "ml"},
		{"Plain Flour", "g"},
		{"Free Range Eggs", "each"},
		{"Fresh Basil", "bunch"},
		{"mystery thing", "g"},
	}
	for _, c := range cases {
		if got := InferUnit(c.name); got != c.want {
			t.Errorf("InferUnit(%q)=%q, want %q", c.name, got, c.want)
		}
	}
}

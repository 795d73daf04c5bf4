// Package matcher ranks catalog ingredients against free-text names such
// as OCR-extracted invoice lines or manual search input. Matching is a
// fixed priority ladder: exact equality, substring containment, a small
// alias table of known synonyms, then normalized Levenshtein similarity.
package matcher

import (
	"sort"
	"strings"
)

// Ingredient is the minimal candidate shape.
type Ingredient struct {
	ID   string
	Name string
}

// MatchType labels which rule produced a match.
type MatchType string

const (
	MatchExact   MatchType = "exact"
	MatchPartial MatchType = "partial"
	MatchAlias   MatchType = "alias"
	MatchSimilar MatchType = "similar"
)

// Match is one ranked candidate.
type Match struct {
	ID         string
	Name       string
	Similarity float64 // [0,1]
	MatchType  MatchType
}

// DefaultThreshold is the minimum Levenshtein similarity for fuzzy matches.
const DefaultThreshold = 0.4

// stopWords are preparation/state descriptors stripped before comparison.
var stopWords = map[string]bool{
	"fresh":   true,
	"dried":   true,
	"chopped": true,
	"diced":   true,
	"sliced":  true,
	"minced":  true,
	"grated":  true,
	"ground":  true,
	"whole":   true,
	"frozen":  true,
	"raw":     true,
	"cooked":  true,
	"organic": true,
	"large":   true,
	"small":   true,
	"medium":  true,
}

// aliasTable maps base ingredients to their common synonyms. Both the
// search term and candidate must land (by substring) in the same row.
var aliasTable = map[string][]string{
	"onion":     {"onions", "shallot", "shallots", "red onion", "brown onion", "spring onion"},
	"tomato":    {"tomatoes", "roma tomato", "cherry tomato", "tinned tomato", "passata"},
	"potato":    {"potatoes", "spud", "spuds", "new potato"},
	"garlic":    {"garlic clove", "garlic cloves", "garlic bulb"},
	"chicken":   {"chicken breast", "chicken thigh", "chicken wing", "chicken drumstick"},
	"beef":      {"beef mince", "ground beef", "minced beef", "beef chuck", "steak"},
	"pork":      {"pork belly", "pork loin", "pork shoulder", "bacon"},
	"butter":    {"unsalted butter", "salted butter"},
	"cream":     {"heavy cream", "double cream", "thickened cream", "whipping cream"},
	"milk":      {"whole milk", "full cream milk", "skim milk"},
	"flour":     {"plain flour", "all purpose flour", "all-purpose flour", "bread flour"},
	"sugar":     {"caster sugar", "granulated sugar", "white sugar", "brown sugar"},
	"oil":       {"olive oil", "vegetable oil", "canola oil", "sunflower oil"},
	"pepper":    {"black pepper", "peppercorn", "peppercorns", "white pepper"},
	"chili":     {"chilli", "chilies", "chillies", "red chili", "chili pepper"},
	"coriander": {"cilantro", "coriander leaves", "fresh coriander"},
}

// Normalize lowercases, strips stop words, collapses whitespace and
// singularizes the trailing word of an ingredient name.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	words := strings.Fields(s)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if stopWords[w] {
			continue
		}
		kept = append(kept, w)
	}
	if len(kept) == 0 {
		// everything was a stop word; fall back to the raw words
		kept = words
	}

	for i, w := range kept {
		kept[i] = singularize(w)
	}

	return strings.Join(kept, " ")
}

// singularize applies the plural rules cheap enough to run per word:
// -ies -> y, -es -> drop (except -ses), trailing -s -> drop (except -ss).
func singularize(w string) string {
	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 3:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "ses"):
		return w[:len(w)-1]
	case strings.HasSuffix(w, "es") && len(w) > 2:
		return w[:len(w)-2]
	case strings.HasSuffix(w, "ss"):
		return w
	case strings.HasSuffix(w, "s") && len(w) > 1:
		return w[:len(w)-1]
	default:
		return w
	}
}

// FindSimilar ranks candidates against a search term. The first qualifying
// rule wins per candidate; results are sorted descending by similarity with
// stable order for ties. threshold <= 0 selects DefaultThreshold.
func FindSimilar(term string, candidates []Ingredient, threshold float64) []Match {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	rawTerm := strings.ToLower(strings.TrimSpace(term))
	normTerm := Normalize(term)
	if rawTerm == "" {
		return nil
	}

	var matches []Match
	for _, cand := range candidates {
		rawCand := strings.ToLower(strings.TrimSpace(cand.Name))
		normCand := Normalize(cand.Name)

		switch {
		case rawTerm == rawCand || normTerm == normCand:
			matches = append(matches, Match{ID: cand.ID, Name: cand.Name, Similarity: 1.0, MatchType: MatchExact})

		case strings.Contains(rawCand, rawTerm) || strings.Contains(rawTerm, rawCand):
			matches = append(matches, Match{ID: cand.ID, Name: cand.Name, Similarity: 0.85, MatchType: MatchPartial})

		case sharedAlias(rawTerm, rawCand):
			matches = append(matches, Match{ID: cand.ID, Name: cand.Name, Similarity: 0.8, MatchType: MatchAlias})

		default:
			sim := similarity(rawTerm, rawCand)
			if normSim := similarity(normTerm, normCand); normSim > sim {
				sim = normSim
			}
			if sim >= threshold {
				matches = append(matches, Match{ID: cand.ID, Name: cand.Name, Similarity: sim, MatchType: MatchSimilar})
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	return matches
}

// sharedAlias reports whether both names appear (by substring) within the
// same alias-table row, counting the base ingredient itself as a member.
func sharedAlias(a, b string) bool {
	for base, aliases := range aliasTable {
		inRow := func(s string) bool {
			if strings.Contains(s, base) || strings.Contains(base, s) {
				return true
			}
			for _, alias := range aliases {
				if strings.Contains(s, alias) || strings.Contains(alias, s) {
					return true
				}
			}
			return false
		}
		if inRow(a) && inRow(b) {
			return true
		}
	}
	return false
}

// similarity is Levenshtein distance normalized to [0,1].
func similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	return 1 - float64(levenshtein(a, b))/float64(maxLen)
}

// levenshtein computes edit distance with the two-row dynamic program.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	ar := []rune(a)
	br := []rune(b)
	if len(ar) == 0 {
		return len(br)
	}
	if len(br) == 0 {
		return len(ar)
	}

	prev := make([]int, len(br)+1)
	cur := make([]int, len(br)+1)
	for j := 0; j <= len(br); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(ar); i++ {
		cur[0] = i
		for j := 1; j <= len(br); j++ {
			cost := 0
			if ar[i-1] != br[j-1] {
				cost = 1
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			cur[j] = m
		}
		prev, cur = cur, prev
	}
	return prev[len(br)]
}

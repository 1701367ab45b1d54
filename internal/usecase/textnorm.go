package usecase

import (
	"regexp"
	"strings"
)

// Compiled regex patterns for name normalization
var (
	// Strips everything that is not a lowercase letter, digit, or whitespace
	nonAlphanumericPattern = regexp.MustCompile(`[^a-z0-9\s]`)

	// Collapses runs of whitespace to a single space
	multiSpacePattern = regexp.MustCompile(`\s+`)

	// Matches common variant filler words ("Oreo Original" vs "Oreo")
	variantWordPattern = regexp.MustCompile(`\b(original|classic|traditional|regular)\b`)

	// Matches amounts with a unit, like "500g", "1.5 l", "12 oz"
	unitAmountPattern = regexp.MustCompile(`\b\d+\s*(g|kg|ml|l|oz|lb)\b`)

	// Matches standalone packaging words
	packagingWordPattern = regexp.MustCompile(`\b(pack|jar|bottle|can|box)\b`)
)

// NormalizeName canonicalizes a product display name into the key used for
// duplicate detection. Two records whose names normalize to the same key
// are considered the same logical product.
//
// Whitespace is collapsed before token removal and only trimmed at the
// ends afterwards, so removal may leave interior double spaces; this is
// deterministic and fine for key equality.
func NormalizeName(name string) string {
	if name == "" {
		return ""
	}

	s := strings.ToLower(name)
	s = nonAlphanumericPattern.ReplaceAllString(s, "")
	s = multiSpacePattern.ReplaceAllString(s, " ")
	s = variantWordPattern.ReplaceAllString(s, "")
	s = unitAmountPattern.ReplaceAllString(s, "")
	s = packagingWordPattern.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// EditDistance calculates the Levenshtein distance between two strings.
// Insertion, deletion, and substitution each cost 1.
func EditDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len([]rune(s2))
	}
	if len(s2) == 0 {
		return len([]rune(s1))
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	// Use two rows instead of the full matrix for space efficiency
	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

// Similarity returns a ratio in [0,1] of how similar two strings are:
// (longer length - edit distance) / longer length. Two empty strings are
// fully similar by convention, guarding the division by zero.
func Similarity(a, b string) float64 {
	la := len([]rune(a))
	lb := len([]rune(b))
	longer := la
	if lb > la {
		longer = lb
	}
	if longer == 0 {
		return 1
	}
	return float64(longer-EditDistance(a, b)) / float64(longer)
}

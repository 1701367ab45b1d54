package usecase

import (
	"testing"

	"github.com/ecoshelf/backend/internal/domain"
)

func fullRecord() domain.ProductRecord {
	carbon := 120.0
	return domain.ProductRecord{
		Code:               "737628064502",
		ProductName:        "Rice Noodles with Vegetables",
		Brands:             "Thai Kitchen",
		NutritionGrade:     "c",
		EcoscoreGrade:      "b",
		CarbonFootprint100: &carbon,
		ImageSmallURL:      "https://images.example.org/front_small.jpg",
	}
}

func TestQualityScore(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(*domain.ProductRecord)
		want   int
	}{
		{
			name:   "complete record reaches the maximum",
			modify: func(p *domain.ProductRecord) {},
			want:   MaxQualityScore,
		},
		{
			name:   "missing image drops two",
			modify: func(p *domain.ProductRecord) { p.ImageSmallURL = "" },
			want:   7,
		},
		{
			name:   "missing eco grade drops two",
			modify: func(p *domain.ProductRecord) { p.EcoscoreGrade = "" },
			want:   7,
		},
		{
			name:   "missing nutrition grade drops two",
			modify: func(p *domain.ProductRecord) { p.NutritionGrade = "" },
			want:   7,
		},
		{
			name:   "missing carbon figure drops one",
			modify: func(p *domain.ProductRecord) { p.CarbonFootprint100 = nil },
			want:   8,
		},
		{
			name: "zero carbon figure still counts as present",
			modify: func(p *domain.ProductRecord) {
				zero := 0.0
				p.CarbonFootprint100 = &zero
			},
			want: MaxQualityScore,
		},
		{
			name:   "short name drops one",
			modify: func(p *domain.ProductRecord) { p.ProductName = "Rice" },
			want:   8,
		},
		{
			name:   "missing brand drops one",
			modify: func(p *domain.ProductRecord) { p.Brands = "" },
			want:   8,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := fullRecord()
			tc.modify(&p)
			got := QualityScore(&p)
			if got != tc.want {
				t.Errorf("QualityScore() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestQualityScore_Bounds(t *testing.T) {
	empty := domain.ProductRecord{}
	if got := QualityScore(&empty); got != 0 {
		t.Errorf("QualityScore(empty) = %d, want 0", got)
	}

	full := fullRecord()
	if got := QualityScore(&full); got != MaxQualityScore {
		t.Errorf("QualityScore(full) = %d, want %d", got, MaxQualityScore)
	}
}

// Adding any one qualifying field must never decrease the score.
func TestQualityScore_Monotonic(t *testing.T) {
	carbon := 42.0
	additions := []struct {
		name   string
		modify func(*domain.ProductRecord)
	}{
		{"image", func(p *domain.ProductRecord) { p.ImageSmallURL = "https://images.example.org/x.jpg" }},
		{"eco grade", func(p *domain.ProductRecord) { p.EcoscoreGrade = "a" }},
		{"nutrition grade", func(p *domain.ProductRecord) { p.NutritionGrade = "b" }},
		{"carbon figure", func(p *domain.ProductRecord) { p.CarbonFootprint100 = &carbon }},
		{"long name", func(p *domain.ProductRecord) { p.ProductName = "Wholegrain Spelt Crackers" }},
		{"brand", func(p *domain.ProductRecord) { p.Brands = "Alnatura" }},
	}

	p := domain.ProductRecord{}
	prev := QualityScore(&p)
	for _, add := range additions {
		add.modify(&p)
		got := QualityScore(&p)
		if got < prev {
			t.Errorf("adding %s decreased score from %d to %d", add.name, prev, got)
		}
		prev = got
	}
}

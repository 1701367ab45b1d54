package usecase

import (
	"fmt"
	"math"
	"strings"

	"github.com/ecoshelf/backend/internal/domain"
)

// Carbon score mapping: 0 kg CO2e/kg scores 100, 10 kg scores 0,
// saturating outside that range.
const carbonPenaltyPerKg = 10.0

// Icon counts run 0-5; eco and packaging divide their 0-100 score by 20,
// carbon uses discrete bands. The two schemes are intentionally different.
const iconScaleDivisor = 20.0

// Ring/severity colors keyed by score band
const (
	colorGreen      = "#4CAF50"
	colorLightGreen = "#8BC34A"
	colorAmber      = "#FFC107"
	colorOrange     = "#FF9800"
	colorRed        = "#F44336"
	colorDarkGreen  = "#2E7D32"
	colorNeutral    = "#ccc"
	colorGrayGrade  = "#aaa"
)

const noDataDescription = "No data available."

// SustainabilityScorer turns a product's raw ecological fields into
// normalized per-metric scores, an aggregate score, and qualitative
// descriptions. It is stateless; every call is self-contained.
type SustainabilityScorer struct{}

// NewSustainabilityScorer creates a new sustainability scorer
func NewSustainabilityScorer() *SustainabilityScorer {
	return &SustainabilityScorer{}
}

// Assess computes the full sustainability view of one product. Absent
// fields degrade to "no data" metrics; a record with no ecological data at
// all yields an unavailable overall score, never an error.
func (s *SustainabilityScorer) Assess(p *domain.ProductRecord) *domain.SustainabilityAssessment {
	eco := ecoScore(p)
	carbon := carbonScore(p)
	packaging := p.PackagingScore()

	overall := aggregateScore(eco, carbon, packaging)

	return &domain.SustainabilityAssessment{
		Overall:            overall,
		OverallDescription: overallDescription(overall),
		RingColor:          RingColor(overall),
		Eco: domain.MetricAssessment{
			Score:       eco,
			IconCount:   linearIconCount(eco),
			Description: ecoDescription(eco),
		},
		Carbon: domain.MetricAssessment{
			Score:       carbon,
			IconCount:   carbonIconCount(p.CO2PerKg()),
			Description: carbonDescription(p.CO2PerKg()),
		},
		Packaging: domain.MetricAssessment{
			Score:       packaging,
			IconCount:   linearIconCount(packaging),
			Description: packagingDescription(packaging),
		},
	}
}

// OverallScore computes just the aggregate score for ranking purposes.
// Returns domain.OverallUnavailable when no metric carries data, which
// sorts below every real score.
func (s *SustainabilityScorer) OverallScore(p *domain.ProductRecord) int {
	return aggregateScore(ecoScore(p), carbonScore(p), p.PackagingScore())
}

// ecoScore is the externally supplied 0-100 environmental-impact metric,
// used as-is when present.
func ecoScore(p *domain.ProductRecord) *float64 {
	return p.EcoscoreScore
}

// carbonScore derives a 0-100 score from the total CO2e per kg via a
// linear penalty, clamped to the scale.
func carbonScore(p *domain.ProductRecord) *float64 {
	c := p.CO2PerKg()
	if c == nil {
		return nil
	}
	score := 100 - carbonPenaltyPerKg*(*c)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return &score
}

// aggregateScore averages whichever metric scores are available, rounded
// to the nearest integer. Unavailable metrics are ignored, not zeroed.
func aggregateScore(scores ...*float64) int {
	sum := 0.0
	n := 0
	for _, s := range scores {
		if s == nil {
			continue
		}
		sum += *s
		n++
	}
	if n == 0 {
		return domain.OverallUnavailable
	}
	return int(math.Round(sum / float64(n)))
}

// linearIconCount maps a 0-100 score to 0-5 icons by dividing by 20.
func linearIconCount(score *float64) int {
	if score == nil {
		return 0
	}
	count := int(math.Round(*score / iconScaleDivisor))
	if count < 0 {
		count = 0
	}
	if count > 5 {
		count = 5
	}
	return count
}

// carbonIconCount maps CO2e per kg to 1-5 icons via discrete bands
// (lower emissions earn more icons). 0 icons means no data.
func carbonIconCount(co2 *float64) int {
	if co2 == nil {
		return 0
	}
	c := *co2
	switch {
	case c < 1:
		return 5
	case c <= 3:
		return 4
	case c <= 5:
		return 3
	case c <= 10:
		return 2
	default:
		return 1
	}
}

func ecoDescription(score *float64) string {
	if score == nil {
		return noDataDescription
	}
	switch {
	case *score >= 80:
		return "Excellent Eco-Score! This product has a low environmental impact."
	case *score >= 60:
		return "Good Eco-Score. This product is fairly sustainable."
	default:
		return "Low Eco-Score. Consider more sustainable alternatives."
	}
}

func carbonDescription(co2 *float64) string {
	if co2 == nil {
		return noDataDescription
	}
	c := *co2
	switch {
	case c < 1:
		return fmt.Sprintf("Excellent! With CO2 emissions of %.2f kg CO2e/kg, this product has a very low carbon footprint.", c)
	case c <= 3:
		return fmt.Sprintf("Good! With CO2 emissions of %.2f kg CO2e/kg, this product is relatively low in CO2 emissions.", c)
	case c <= 5:
		return "Moderate CO2 emissions. Consider alternatives with lower impact!"
	case c <= 10:
		return "High CO2 emissions. Look for greener options."
	default:
		return "Very high CO2 emissions. Avoid if possible."
	}
}

func packagingDescription(score *float64) string {
	if score == nil {
		return noDataDescription
	}
	switch {
	case *score >= 90:
		return "Excellent! Packaging is highly recyclable and eco-friendly."
	case *score >= 70:
		return "Good! Packaging is mostly recyclable with minimal waste."
	case *score >= 50:
		return "Moderate. Packaging is partially recyclable, but could be improved."
	case *score >= 30:
		return "Low. Packaging is mostly non-recyclable and generates waste."
	default:
		return "Poor. Packaging is not recyclable and has a high environmental impact."
	}
}

func overallDescription(score int) string {
	if score == domain.OverallUnavailable {
		return "No overall sustainability data available."
	}
	switch {
	case score >= 90:
		return "Outstanding sustainability!"
	case score >= 75:
		return "Very good sustainability."
	case score >= 60:
		return "Good sustainability."
	case score >= 40:
		return "Moderate sustainability. Could be improved."
	case score >= 20:
		return "Low sustainability. Consider alternatives."
	default:
		return "Very low sustainability. Avoid if possible."
	}
}

// RingColor maps an aggregate score to the severity color shown around
// the rating ring. The unavailable sentinel maps to a neutral color.
func RingColor(score int) string {
	if score == domain.OverallUnavailable {
		return colorNeutral
	}
	switch {
	case score >= 80:
		return colorGreen
	case score >= 60:
		return colorLightGreen
	case score >= 40:
		return colorAmber
	case score >= 20:
		return colorOrange
	default:
		return colorRed
	}
}

// GradeColor maps a raw A-E letter grade (case-insensitive, "A+" allowed)
// to its badge color. Unknown or missing grades map to gray.
func GradeColor(grade string) string {
	switch strings.ToUpper(grade) {
	case "A+":
		return colorDarkGreen
	case "A":
		return colorGreen
	case "B":
		return colorLightGreen
	case "C":
		return colorAmber
	case "D":
		return colorOrange
	case "E":
		return colorRed
	default:
		return colorGrayGrade
	}
}

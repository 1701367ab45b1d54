package usecase

import "github.com/ecoshelf/backend/internal/domain"

// Quality weights for record completeness checks
const (
	weightImage          = 2 // front image present
	weightEcoGrade       = 2 // ecological grade present
	weightNutritionGrade = 2 // nutritional grade present
	weightCarbonData     = 1 // carbon footprint field present (zero counts)
	weightLongName       = 1 // display name longer than 10 characters
	weightBrand          = 1 // brand present

	// MaxQualityScore is the sum of all weights above.
	MaxQualityScore = 9
)

// QualityScore assigns a heuristic completeness score to a single record.
// Each check is independent; the score is used only as a ranking tie-break
// signal and is never shown to the end user.
func QualityScore(p *domain.ProductRecord) int {
	score := 0

	if p.ImageSmallURL != "" {
		score += weightImage
	}
	if p.EcoscoreGrade != "" {
		score += weightEcoGrade
	}
	if p.NutritionGrade != "" {
		score += weightNutritionGrade
	}
	if p.CarbonFootprint100 != nil {
		score += weightCarbonData
	}
	if len(p.ProductName) > 10 {
		score += weightLongName
	}
	if p.Brands != "" {
		score += weightBrand
	}

	return score
}

package domain

import "time"

// OverallUnavailable is the sentinel aggregate score used when none of the
// three metrics carry data. It sorts below every real score.
const OverallUnavailable = -1

// MetricAssessment is the normalized view of one sustainability metric.
// Score is nil when the underlying field is absent; IconCount is 0-5
// (0 meaning no data) and Description is the qualitative band text.
type MetricAssessment struct {
	Score       *float64 `json:"score"`
	IconCount   int      `json:"iconCount"`
	Description string   `json:"description"`
}

// SustainabilityAssessment is the derived, ephemeral sustainability view of
// a single product. It is recomputed on every call and never stored.
type SustainabilityAssessment struct {
	Overall            int              `json:"overall"` // 0-100, or OverallUnavailable
	OverallDescription string           `json:"overallDescription"`
	RingColor          string           `json:"ringColor"`
	Eco                MetricAssessment `json:"eco"`
	Carbon             MetricAssessment `json:"carbon"`
	Packaging          MetricAssessment `json:"packaging"`
}

// HasOverall reports whether at least one metric contributed to the
// aggregate score.
func (a *SustainabilityAssessment) HasOverall() bool {
	return a.Overall != OverallUnavailable
}

// ProductDetail bundles a product with its sustainability assessment for
// the detail view.
type ProductDetail struct {
	Product    ProductRecord            `json:"product"`
	Assessment SustainabilityAssessment `json:"assessment"`
	Source     string                   `json:"source"` // "OpenFoodFacts" or "Cache"
	CachedAt   time.Time                `json:"cachedAt,omitempty"`
}

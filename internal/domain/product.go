package domain

// ProductRecord represents a single product as decoded from the Open Food
// Facts search or product APIs. Every field except Code may be missing in
// the wild; numeric fields use pointers so absence is distinguishable from
// zero.
type ProductRecord struct {
	Code               string        `json:"code"`
	ProductName        string        `json:"product_name"`
	Brands             string        `json:"brands"`
	Packaging          string        `json:"packaging"`
	Quantity           string        `json:"quantity"`
	NutritionGrade     string        `json:"nutrition_grades"`
	EcoscoreGrade      string        `json:"ecoscore_grade"`
	EcoscoreScore      *float64      `json:"ecoscore_score"`
	CarbonFootprint100 *float64      `json:"carbon_footprint_100g"`
	EcoscoreData       *EcoscoreData `json:"ecoscore_data"`
	CountriesTags      []string      `json:"countries_tags"`
	ImageSmallURL      string        `json:"image_front_small_url"`
	ImageURL           string        `json:"image_front_url"`
}

// EcoscoreData is the nested ecological breakdown attached to a product.
type EcoscoreData struct {
	Agribalyse  *Agribalyse  `json:"agribalyse"`
	Adjustments *Adjustments `json:"adjustments"`
}

// Agribalyse holds lifecycle analysis figures.
type Agribalyse struct {
	CO2Total *float64 `json:"co2_total"` // kg CO2e per kg of product
}

// Adjustments holds the per-component corrections applied to the eco score.
type Adjustments struct {
	Packaging *PackagingAdjustment `json:"packaging"`
}

// PackagingAdjustment carries the packaging sub-score (0-100).
type PackagingAdjustment struct {
	Score *float64 `json:"score"`
}

// CO2PerKg returns the total CO2-equivalent per kg, or nil when the
// lifecycle breakdown is absent.
func (p *ProductRecord) CO2PerKg() *float64 {
	if p.EcoscoreData == nil || p.EcoscoreData.Agribalyse == nil {
		return nil
	}
	return p.EcoscoreData.Agribalyse.CO2Total
}

// PackagingScore returns the packaging sub-score, or nil when absent.
func (p *ProductRecord) PackagingScore() *float64 {
	if p.EcoscoreData == nil || p.EcoscoreData.Adjustments == nil || p.EcoscoreData.Adjustments.Packaging == nil {
		return nil
	}
	return p.EcoscoreData.Adjustments.Packaging.Score
}

// HasCountryTag reports whether the record is tagged as available in the
// given country (e.g. "en:singapore").
func (p *ProductRecord) HasCountryTag(tag string) bool {
	for _, t := range p.CountriesTags {
		if t == tag {
			return true
		}
	}
	return false
}

// SearchResponse is the envelope returned by the Open Food Facts search API.
type SearchResponse struct {
	Products []ProductRecord `json:"products"`
	Count    int             `json:"count"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// ProductResponse is the envelope returned by the product-by-code API.
type ProductResponse struct {
	Status  int            `json:"status"`
	Product *ProductRecord `json:"product"`
}

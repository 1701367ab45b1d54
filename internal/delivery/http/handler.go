package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ecoshelf/backend/internal/domain"
	"github.com/ecoshelf/backend/internal/usecase"
)

// ProductService is the slice of the usecase layer the handlers depend on.
type ProductService interface {
	SearchProducts(ctx context.Context, query string) ([]domain.ProductRecord, error)
	GetProduct(ctx context.Context, code string) (*domain.ProductDetail, error)
	Assess(p *domain.ProductRecord) *domain.SustainabilityAssessment
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	products ProductService
}

// NewHandler creates a new HTTP handler
func NewHandler(products ProductService) *Handler {
	return &Handler{products: products}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "ecoshelf-backend",
		"version": "1.0.0",
	})
}

// productSummary is one row of the curated search result list.
type productSummary struct {
	Code          string   `json:"code"`
	ProductName   string   `json:"productName"`
	Brand         string   `json:"brand,omitempty"`
	ImageURL      string   `json:"imageUrl,omitempty"`
	EcoGrade      string   `json:"ecoGrade,omitempty"`
	EcoGradeColor string   `json:"ecoGradeColor"`
	NutriGrade    string   `json:"nutriGrade,omitempty"`
	CarbonPer100g *float64 `json:"carbonPer100g,omitempty"`
	Overall       int      `json:"overall"`
	OverallColor  string   `json:"overallColor"`
}

// SearchProducts handles GET /api/v1/products/search?q=<query>
func (h *Handler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if strings.TrimSpace(query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
		return
	}

	records, err := h.products.SearchProducts(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream search failed"})
		return
	}

	summaries := make([]productSummary, 0, len(records))
	for i := range records {
		summaries = append(summaries, h.summarize(&records[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"query":    query,
		"count":    len(summaries),
		"products": summaries,
	})
}

// GetProduct handles GET /api/v1/products/:code
func (h *Handler) GetProduct(c *gin.Context) {
	code := c.Param("code")

	detail, err := h.products.GetProduct(c.Request.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "upstream lookup failed"})
		}
		return
	}

	c.JSON(http.StatusOK, detail)
}

// summarize shapes one record for the list view, attaching its aggregate
// sustainability score and display colors.
func (h *Handler) summarize(p *domain.ProductRecord) productSummary {
	assessment := h.products.Assess(p)

	// Records often carry a comma-separated brand list; show the first
	brand := p.Brands
	if idx := strings.Index(brand, ","); idx >= 0 {
		brand = brand[:idx]
	}
	brand = strings.TrimSpace(brand)

	return productSummary{
		Code:          p.Code,
		ProductName:   p.ProductName,
		Brand:         brand,
		ImageURL:      p.ImageSmallURL,
		EcoGrade:      p.EcoscoreGrade,
		EcoGradeColor: usecase.GradeColor(p.EcoscoreGrade),
		NutriGrade:    p.NutritionGrade,
		CarbonPer100g: p.CarbonFootprint100,
		Overall:       assessment.Overall,
		OverallColor:  assessment.RingColor,
	}
}

package usecase

import (
	"log"
	"sort"

	"github.com/ecoshelf/backend/internal/domain"
)

// TieBreakPolicy selects how records with equal ranking scores are ordered.
type TieBreakPolicy string

const (
	// TieBreakStable keeps ties in their original relative order.
	TieBreakStable TieBreakPolicy = "stable"
	// TieBreakQuality orders ties by descending record quality score,
	// falling back to original order.
	TieBreakQuality TieBreakPolicy = "quality"
)

// TraceFunc observes the pipeline after each stage. Attached by callers
// that want to inspect intermediate curation state; defaults to a no-op.
type TraceFunc func(stage string, records []domain.ProductRecord)

// CuratorConfig holds configuration for the result curator
type CuratorConfig struct {
	CountryTag         string // e.g. "en:singapore"; empty disables the country check
	ResultCap          int
	TieBreak           TieBreakPolicy
	RankScore          func(*domain.ProductRecord) int // ranking key; defaults to the aggregate sustainability score
	Trace              TraceFunc
	EnableDebugLogging bool
}

// ResultCurator turns a raw, noisy search response into a bounded,
// deduplicated, ranked result list. Each Curate call is self-contained:
// no caching, no shared state, no mutation of the input.
type ResultCurator struct {
	countryTag         string
	resultCap          int
	tieBreak           TieBreakPolicy
	rankScore          func(*domain.ProductRecord) int
	trace              TraceFunc
	enableDebugLogging bool
}

// NewResultCurator creates a new result curator with the given configuration
func NewResultCurator(config CuratorConfig) *ResultCurator {
	resultCap := config.ResultCap
	if resultCap <= 0 {
		resultCap = 15
	}

	tieBreak := config.TieBreak
	if tieBreak == "" {
		tieBreak = TieBreakStable
	}

	rankScore := config.RankScore
	if rankScore == nil {
		scorer := NewSustainabilityScorer()
		rankScore = scorer.OverallScore
	}

	trace := config.Trace
	if trace == nil {
		trace = func(string, []domain.ProductRecord) {}
	}

	return &ResultCurator{
		countryTag:         config.CountryTag,
		resultCap:          resultCap,
		tieBreak:           tieBreak,
		rankScore:          rankScore,
		trace:              trace,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Curate filters raw records to eligible ones, collapses duplicates, ranks
// by descending score, and truncates to the configured cap.
func (c *ResultCurator) Curate(records []domain.ProductRecord) []domain.ProductRecord {
	filtered := c.filter(records)
	c.trace("filter", filtered)

	deduped := DedupeByName(filtered)
	c.trace("dedupe", deduped)

	c.rank(deduped)
	c.trace("rank", deduped)

	if len(deduped) > c.resultCap {
		deduped = deduped[:c.resultCap]
	}
	c.trace("truncate", deduped)

	if c.enableDebugLogging {
		log.Printf("[CURATE] %d raw -> %d filtered -> %d returned", len(records), len(filtered), len(deduped))
	}

	return deduped
}

// filter keeps records with a display name, the configured country tag,
// and at least one numeric ecological signal to rank on.
func (c *ResultCurator) filter(records []domain.ProductRecord) []domain.ProductRecord {
	result := make([]domain.ProductRecord, 0, len(records))
	for _, r := range records {
		if r.ProductName == "" {
			continue
		}
		if c.countryTag != "" && !r.HasCountryTag(c.countryTag) {
			continue
		}
		if r.EcoscoreScore == nil && r.CarbonFootprint100 == nil {
			continue
		}
		result = append(result, r)
	}
	return result
}

// rank sorts records in place, descending by ranking score. The sort is
// stable, so equal scores keep input order; the quality policy inserts the
// record quality score as a secondary key first.
func (c *ResultCurator) rank(records []domain.ProductRecord) {
	type rankedRecord struct {
		record  domain.ProductRecord
		score   int
		quality int
	}

	ranked := make([]rankedRecord, len(records))
	for i := range records {
		ranked[i] = rankedRecord{record: records[i], score: c.rankScore(&records[i])}
		if c.tieBreak == TieBreakQuality {
			ranked[i].quality = QualityScore(&records[i])
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].quality > ranked[j].quality
	})

	for i := range ranked {
		records[i] = ranked[i].record
	}
}

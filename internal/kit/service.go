package kit

import (
	"context"
	"log"

	"github.com/Valentin1965/VoltStore/internal/core"
	"github.com/Valentin1965/VoltStore/internal/currency"
)

const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// Recommendation is the engine output: a kit plus its aggregated price and
// which path produced it.
type Recommendation struct {
	RecommendationResult
	TotalEUR float64 `json:"total_eur"`
	Source   string  `json:"source"`
}

// Service runs the AI path first and falls back to the deterministic
// selector on any recommendation error. The user always gets a kit.
type Service struct {
	ai      *AIClient
	catalog core.CatalogReader
}

func NewService(ai *AIClient, catalog core.CatalogReader) *Service {
	return &Service{ai: ai, catalog: catalog}
}

func (s *Service) Recommend(ctx context.Context, cfg Configuration, loc currency.Locale) (*Recommendation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// A catalog read failure only degrades the inventory context; the
	// fallback selector has defaults for everything.
	items, err := s.catalog.InStockItems(ctx, string(loc))
	if err != nil {
		log.Printf("kit: catalog read failed, continuing without inventory: %v", err)
		items = nil
	}

	result, rerr := s.ai.Recommend(ctx, cfg, items)
	if rerr == nil {
		return &Recommendation{
			RecommendationResult: *result,
			TotalEUR:             result.TotalEUR(),
			Source:               SourceAI,
		}, nil
	}

	log.Printf("kit: ai path failed (%s), using fallback selector", rerr.Kind)

	fallback := SelectFallback(cfg, items, loc)
	return &Recommendation{
		RecommendationResult: fallback,
		TotalEUR:             fallback.TotalEUR(),
		Source:               SourceFallback,
	}, nil
}

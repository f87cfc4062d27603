package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Valentin1965/VoltStore/internal/llm"
)

// Provider quotes a fresh EUR-based rate set.
type Provider interface {
	FetchRates(ctx context.Context) (ExchangeRates, error)
}

// QuoteProvider asks the generation service for current quotes. There is no
// dedicated FX vendor; the same credential and rate limits apply as for
// recommendations.
type QuoteProvider struct {
	llm llm.Client
}

func NewQuoteProvider(client llm.Client) *QuoteProvider {
	return &QuoteProvider{llm: client}
}

func buildQuotePrompt() string {
	return `You are a currency data service.

Return the current market exchange rate of 1 EUR in DKK, NOK, SEK and USD.

Output MUST be a single valid JSON object and nothing else:
{
  "DKK": number,
  "NOK": number,
  "SEK": number,
  "USD": number
}`
}

func (p *QuoteProvider) FetchRates(ctx context.Context) (ExchangeRates, error) {
	raw, err := p.llm.GenerateJSON(ctx, buildQuotePrompt())
	if err != nil {
		return ExchangeRates{}, err
	}

	var quoted struct {
		DKK *float64 `json:"DKK"`
		NOK *float64 `json:"NOK"`
		SEK *float64 `json:"SEK"`
		USD *float64 `json:"USD"`
	}
	if err := json.Unmarshal([]byte(llm.StripCodeFence(raw)), &quoted); err != nil {
		return ExchangeRates{}, errors.New("invalid quote JSON")
	}

	// DKK, NOK and SEK are required; USD falls back to a stable constant.
	for name, v := range map[string]*float64{"DKK": quoted.DKK, "NOK": quoted.NOK, "SEK": quoted.SEK} {
		if v == nil || *v <= 0 {
			return ExchangeRates{}, fmt.Errorf("quote missing or non-positive %s", name)
		}
	}

	usd := 1.08
	if quoted.USD != nil && *quoted.USD > 0 {
		usd = *quoted.USD
	}

	return ExchangeRates{
		EUR:       1.0,
		DKK:       *quoted.DKK,
		NOK:       *quoted.NOK,
		SEK:       *quoted.SEK,
		USD:       usd,
		Timestamp: time.Now().UnixMilli(),
	}, nil
}

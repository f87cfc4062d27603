package kit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Valentin1965/VoltStore/internal/core"
	"github.com/Valentin1965/VoltStore/internal/llm"
)

// maxInventoryContext caps how many catalog items go into the prompt so it
// cannot grow without bound.
const maxInventoryContext = 15

// AIClient obtains a catalog-aware recommendation from the generation
// service and validates it strictly. One request per invocation, no retries;
// backoff is the caller's concern.
type AIClient struct {
	llm llm.Client
}

func NewAIClient(client llm.Client) *AIClient {
	return &AIClient{llm: client}
}

func buildPrompt(cfg Configuration, inventory []core.CatalogItem) string {
	var b strings.Builder

	b.WriteString("As a Solar Energy Expert, design a system for:\n")
	fmt.Fprintf(&b, "Object: %s, Monthly Usage: %s, Primary Goal: %s, Budget Level: %s.\n\n",
		cfg.ObjectType, cfg.Usage, cfg.Purpose, cfg.Budget)

	if len(inventory) > 0 {
		b.WriteString("Available stock items (id | name | price EUR | category):\n")
		for _, it := range inventory {
			fmt.Fprintf(&b, "%s | %s | %.2f | %s\n", it.ID, it.Name, it.PriceEUR, it.Category)
		}
		b.WriteString("\nPrefer components from the stock list above.\n")
	}

	b.WriteString(`
Output MUST be a single valid JSON object and nothing else:
{
  "title": "string",
  "description": "string",
  "components": [
    {"id": "string (optional)", "name": "string", "price": number, "quantity": integer >= 1, "alternatives": []}
  ]
}
Components names should remain in English technical terms. Prices in EUR.`)

	return b.String()
}

// Recommend issues exactly one generation request and validates the payload.
// Any violation maps onto the error taxonomy; the caller must fall back on
// any non-nil error.
func (a *AIClient) Recommend(ctx context.Context, cfg Configuration, inventory []core.CatalogItem) (*RecommendationResult, *RecommendationError) {
	if len(inventory) > maxInventoryContext {
		inventory = inventory[:maxInventoryContext]
	}

	raw, err := a.llm.GenerateJSON(ctx, buildPrompt(cfg, inventory))
	if err != nil {
		return nil, classifyLLMError(err)
	}

	result, rerr := parseAndValidate(raw)
	if rerr != nil {
		return nil, rerr
	}
	return result, nil
}

func classifyLLMError(err error) *RecommendationError {
	var rateLimited *llm.RateLimitError
	switch {
	case errors.Is(err, llm.ErrMissingCredential), errors.Is(err, llm.ErrBlockedCredential):
		return &RecommendationError{Kind: ErrMissingCredential, cause: err}
	case errors.As(err, &rateLimited):
		return &RecommendationError{Kind: ErrRateLimited, RetryAfter: rateLimited.RetryAfter, cause: err}
	default:
		return &RecommendationError{Kind: ErrTransport, cause: err}
	}
}

// rawComponent tolerates numeric strings on the wire but rejects everything
// that does not coerce cleanly.
type rawComponent struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Price        json.RawMessage `json:"price"`
	Quantity     json.RawMessage `json:"quantity"`
	Alternatives []rawComponent  `json:"alternatives"`
}

func parseAndValidate(raw string) (*RecommendationResult, *RecommendationError) {
	var payload struct {
		Title       string          `json:"title"`
		Description string          `json:"description"`
		Components  *[]rawComponent `json:"components"`
	}

	if err := json.Unmarshal([]byte(llm.StripCodeFence(raw)), &payload); err != nil {
		return nil, &RecommendationError{Kind: ErrInvalidResponse, cause: err}
	}
	if payload.Components == nil {
		return nil, &RecommendationError{Kind: ErrInvalidResponse, cause: errors.New("components missing")}
	}
	if len(*payload.Components) == 0 {
		return nil, &RecommendationError{Kind: ErrEmptyResult}
	}

	components := make([]KitComponent, 0, len(*payload.Components))
	for _, rc := range *payload.Components {
		c, err := validateComponent(rc)
		if err != nil {
			return nil, &RecommendationError{Kind: ErrInvalidResponse, cause: err}
		}
		components = append(components, c)
	}

	return &RecommendationResult{
		Title:       payload.Title,
		Description: payload.Description,
		Components:  components,
	}, nil
}

func validateComponent(rc rawComponent) (KitComponent, error) {
	price, err := coerceNumber(rc.Price)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return KitComponent{}, fmt.Errorf("component %q: invalid price", rc.Name)
	}

	qtyFloat, err := coerceNumber(rc.Quantity)
	if err != nil || qtyFloat < 1 || qtyFloat != math.Trunc(qtyFloat) {
		return KitComponent{}, fmt.Errorf("component %q: invalid quantity", rc.Name)
	}

	id := rc.ID
	if id == "" {
		id = "ai-" + uuid.New().String()[:8]
	}

	alternatives := make([]KitComponent, 0, len(rc.Alternatives))
	for _, ra := range rc.Alternatives {
		alt, err := validateComponent(ra)
		if err != nil {
			return KitComponent{}, err
		}
		alternatives = append(alternatives, alt)
	}

	return KitComponent{
		ID:           id,
		Name:         rc.Name,
		PriceEUR:     price,
		Quantity:     int(qtyFloat),
		Alternatives: alternatives,
	}, nil
}

// coerceNumber accepts JSON numbers and numeric strings, nothing else.
func coerceNumber(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 {
		return 0, errors.New("missing")
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strconv.ParseFloat(strings.TrimSpace(s), 64)
	}

	return 0, errors.New("not numeric")
}

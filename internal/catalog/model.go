package catalog

import (
	"encoding/json"
	"time"
)

// LocalizedText holds per-locale display text keyed by locale code. Plain
// strings on the wire are accepted and treated as English.
type LocalizedText map[string]string

func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*t = LocalizedText{"en": plain}
		return nil
	}

	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*t = m
	return nil
}

// Resolve returns the text for a locale, falling back to English and then to
// any available translation.
func (t LocalizedText) Resolve(locale string) string {
	if t == nil {
		return ""
	}
	if v, ok := t[locale]; ok && v != "" {
		return v
	}
	if v, ok := t["en"]; ok && v != "" {
		return v
	}
	for _, v := range t {
		if v != "" {
			return v
		}
	}
	return ""
}

// Product is the catalog entity. Prices are in EUR, the base currency.
type Product struct {
	ID          string        `json:"id"`
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
	PriceEUR    float64       `json:"price"`
	Category    string        `json:"category"`
	Image       *string       `json:"image"`
	Images      []string      `json:"images"`
	Stock       int           `json:"stock"`
	IsActive    bool          `json:"is_active"`
	IsLeader    bool          `json:"is_leader"`
	CreatedAt   time.Time     `json:"created_at"`
}

// InStock reports whether the product can be recommended or sold right away.
func (p Product) InStock() bool {
	return p.IsActive && p.Stock > 0
}

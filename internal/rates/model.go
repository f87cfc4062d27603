package rates

import "time"

// ExchangeRates is the process-wide EUR-based rate set.
// EUR is the base currency and is always 1.0.
type ExchangeRates struct {
	EUR       float64 `json:"EUR"`
	DKK       float64 `json:"DKK"`
	NOK       float64 `json:"NOK"`
	SEK       float64 `json:"SEK"`
	USD       float64 `json:"USD"`
	Timestamp int64   `json:"timestamp"` // epoch ms of last successful refresh
}

// StableRates is the built-in fallback used when nothing is persisted yet.
func StableRates() ExchangeRates {
	return ExchangeRates{
		EUR:       1.0,
		DKK:       7.46,
		NOK:       11.38,
		SEK:       11.23,
		USD:       1.08,
		Timestamp: time.Now().UnixMilli(),
	}
}

// Rate returns the conversion rate for a currency code.
// Unknown codes fall back to 1.0 (EUR) rather than failing.
func (r ExchangeRates) Rate(code string) float64 {
	switch code {
	case "EUR":
		return 1.0
	case "DKK":
		return r.DKK
	case "NOK":
		return r.NOK
	case "SEK":
		return r.SEK
	case "USD":
		return r.USD
	default:
		return 1.0
	}
}

// normalize pins the base currency. Applied on every write path.
func (r ExchangeRates) normalize() ExchangeRates {
	r.EUR = 1.0
	return r
}

// PartialRates carries an explicit partial update. Nil fields are untouched.
type PartialRates struct {
	DKK *float64 `json:"DKK"`
	NOK *float64 `json:"NOK"`
	SEK *float64 `json:"SEK"`
	USD *float64 `json:"USD"`
}

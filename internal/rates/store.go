package rates

// Versioned keys: bumping the suffix safely invalidates old records after a
// schema change.
const (
	ratesKey    = "voltstore_rates_v5"
	suppressKey = "voltstore_rate_suppress_v5"
)

// Store persists rates and the suppression deadline across restarts.
// Cache depends ONLY on this interface.
type Store interface {
	LoadRates() (ExchangeRates, bool)
	SaveRates(r ExchangeRates) error
	LoadSuppressUntil() (int64, bool)
	SaveSuppressUntil(deadline int64) error
}

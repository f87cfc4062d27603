package currency

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/Valentin1965/VoltStore/internal/rates"
)

// Locale is the closed set of UI locales the store ships.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleDA Locale = "da"
	LocaleNO Locale = "no"
	LocaleSV Locale = "sv"
)

// localeInfo is the per-locale display record: currency code, symbol and the
// language tag driving digit grouping.
type localeInfo struct {
	code   string
	symbol string
	tag    language.Tag
}

var localeTable = map[Locale]localeInfo{
	LocaleEN: {code: "EUR", symbol: "€", tag: language.AmericanEnglish},
	LocaleDA: {code: "DKK", symbol: "DKK ", tag: language.Danish},
	LocaleNO: {code: "NOK", symbol: "NOK ", tag: language.Norwegian},
	LocaleSV: {code: "SEK", symbol: "SEK ", tag: language.Swedish},
}

// ParseLocale maps arbitrary input onto a supported locale, defaulting to
// English.
func ParseLocale(s string) Locale {
	loc := Locale(s)
	if _, ok := localeTable[loc]; ok {
		return loc
	}
	return LocaleEN
}

// Code returns the display currency code for the locale.
func Code(loc Locale) string {
	return infoFor(loc).code
}

func infoFor(loc Locale) localeInfo {
	if info, ok := localeTable[loc]; ok {
		return info
	}
	return localeTable[LocaleEN]
}

// Convert converts a EUR amount at the given rate, rounded to whole units.
// Degenerate amounts (NaN, ±Inf) convert as 0.
func Convert(amountEUR float64, rate float64) int64 {
	if math.IsNaN(amountEUR) || math.IsInf(amountEUR, 0) {
		amountEUR = 0
	}
	return decimal.NewFromFloat(amountEUR).
		Mul(decimal.NewFromFloat(rate)).
		Round(0).
		IntPart()
}

// Format renders a EUR amount in the locale's display currency: symbol plus
// the integer-rounded converted amount with locale digit grouping. No
// sub-unit amounts are shown.
func Format(amountEUR float64, loc Locale, r rates.ExchangeRates) string {
	info := infoFor(loc)
	converted := Convert(amountEUR, r.Rate(info.code))

	p := message.NewPrinter(info.tag)
	return info.symbol + p.Sprint(number.Decimal(converted))
}

package currency

import (
	"math"
	"strings"
	"testing"

	"github.com/Valentin1965/VoltStore/internal/rates"
)

func testRates() rates.ExchangeRates {
	return rates.ExchangeRates{EUR: 1.0, DKK: 7.46, NOK: 11.38, SEK: 11.23, USD: 1.08}
}

// digits strips grouping separators so amounts compare across locales.
func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestConvertRoundsToInteger(t *testing.T) {
	if got := Convert(100, 1.08); got != 108 {
		t.Fatalf("Convert(100, 1.08) = %d, want 108", got)
	}
	if got := Convert(3300, 7.46); got != 24618 {
		t.Fatalf("Convert(3300, 7.46) = %d, want 24618", got)
	}
	if got := Convert(0.4, 1.0); got != 0 {
		t.Fatalf("Convert(0.4, 1.0) = %d, want 0", got)
	}
}

func TestConvertDegenerateAmounts(t *testing.T) {
	if got := Convert(math.NaN(), 7.46); got != 0 {
		t.Fatalf("NaN amount must convert as 0, got %d", got)
	}
	if got := Convert(math.Inf(1), 7.46); got != 0 {
		t.Fatalf("Inf amount must convert as 0, got %d", got)
	}
}

func TestUnknownCurrencyFallsBackToEUR(t *testing.T) {
	r := testRates()
	if r.Rate("GBP") != 1.0 {
		t.Fatalf("unknown code must fall back to rate 1.0")
	}
}

func TestFormatDanishKit(t *testing.T) {
	got := Format(3300, LocaleDA, testRates())
	if !strings.HasPrefix(got, "DKK ") {
		t.Fatalf("expected DKK prefix, got %q", got)
	}
	if digits(got) != "24618" {
		t.Fatalf("expected 24618 DKK for 3300 EUR at 7.46, got %q", got)
	}
}

func TestFormatAmountStableAcrossLocales(t *testing.T) {
	r := testRates()

	// The converted integer must not depend on the grouping style.
	en := Format(100, LocaleEN, r)
	if digits(en) != "100" {
		t.Fatalf("EUR format changed the amount: %q", en)
	}

	want := digits(Format(1234567, LocaleDA, r))
	for _, loc := range []Locale{LocaleDA} {
		if digits(Format(1234567, loc, r)) != want {
			t.Fatalf("amount differs for locale %s", loc)
		}
	}
}

func TestParseLocale(t *testing.T) {
	if ParseLocale("da") != LocaleDA {
		t.Fatalf("da must parse")
	}
	if ParseLocale("uk") != LocaleEN {
		t.Fatalf("unknown locale must default to en")
	}
	if Code(LocaleSV) != "SEK" {
		t.Fatalf("sv locale displays SEK")
	}
}

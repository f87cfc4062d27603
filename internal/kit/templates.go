package kit

import "github.com/Valentin1965/VoltStore/internal/currency"

// kitCopy is the title/description pair shown with a fallback kit.
type kitCopy struct {
	Title       string
	Description string
}

// copyTable is the static budget × locale template table. Missing locales
// fall back to English.
var copyTable = map[BudgetTier]map[currency.Locale]kitCopy{
	BudgetEconomy: {
		currency.LocaleEN: {
			Title:       "Essential Energy Kit",
			Description: "A budget-friendly starter system covering the basics of backup power.",
		},
		currency.LocaleDA: {
			Title:       "Essentielt energisæt",
			Description: "Et budgetvenligt startsystem, der dækker det grundlæggende nødstrømsbehov.",
		},
		currency.LocaleNO: {
			Title:       "Grunnleggende energipakke",
			Description: "Et budsjettvennlig startsystem som dekker grunnleggende reservestrøm.",
		},
		currency.LocaleSV: {
			Title:       "Grundläggande energipaket",
			Description: "Ett budgetvänligt startsystem som täcker grundläggande reservkraft.",
		},
	},
	BudgetOptimal: {
		currency.LocaleEN: {
			Title:       "Balanced Energy Kit",
			Description: "The best price-to-performance system for everyday independence.",
		},
		currency.LocaleDA: {
			Title:       "Balanceret energisæt",
			Description: "Systemet med det bedste forhold mellem pris og ydelse til daglig uafhængighed.",
		},
		currency.LocaleNO: {
			Title:       "Balansert energipakke",
			Description: "Systemet med best forhold mellom pris og ytelse for daglig uavhengighet.",
		},
		currency.LocaleSV: {
			Title:       "Balanserat energipaket",
			Description: "Systemet med bäst pris i förhållande till prestanda för daglig självständighet.",
		},
	},
	BudgetPremium: {
		currency.LocaleEN: {
			Title:       "Premium Energy Kit",
			Description: "Top-tier components for maximum capacity and long-term autonomy.",
		},
		currency.LocaleDA: {
			Title:       "Premium energisæt",
			Description: "Komponenter i topklasse med maksimal kapacitet og langsigtet autonomi.",
		},
		currency.LocaleNO: {
			Title:       "Premium energipakke",
			Description: "Komponenter i toppklasse for maksimal kapasitet og langsiktig autonomi.",
		},
		currency.LocaleSV: {
			Title:       "Premium energipaket",
			Description: "Komponenter i toppklass för maximal kapacitet och långsiktig autonomi.",
		},
	},
}

func copyFor(budget BudgetTier, loc currency.Locale) kitCopy {
	perLocale, ok := copyTable[budget]
	if !ok {
		perLocale = copyTable[BudgetOptimal]
	}
	if c, ok := perLocale[loc]; ok {
		return c
	}
	return perLocale[currency.LocaleEN]
}

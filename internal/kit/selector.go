package kit

import (
	"sort"

	"github.com/Valentin1965/VoltStore/internal/core"
	"github.com/Valentin1965/VoltStore/internal/currency"
)

// Built-in defaults keep the selector total even when a category is out of
// stock across the board.
var (
	defaultInverter = core.CatalogItem{
		ID:       "default-inverter",
		Name:     "Hybrid Inverter 5kW",
		PriceEUR: 1190,
		Category: core.CategoryInverters,
	}
	defaultBattery = core.CatalogItem{
		ID:       "default-battery",
		Name:     "LiFePO4 Battery 5kWh",
		PriceEUR: 1490,
		Category: core.CategoryBatteries,
	}
)

// SelectFallback deterministically assembles a kit from the in-stock catalog.
// It cannot fail: empty categories are substituted with defaults, so the
// result always carries at least one component.
func SelectFallback(cfg Configuration, items []core.CatalogItem, loc currency.Locale) RecommendationResult {
	inverter := pickByBudget(filterCategory(items, core.CategoryInverters), cfg.Budget, defaultInverter)
	battery := pickByBudget(filterCategory(items, core.CategoryBatteries), cfg.Budget, defaultBattery)

	invQty, batQty := quantities(cfg)

	text := copyFor(cfg.Budget, loc)

	return RecommendationResult{
		Title:       text.Title,
		Description: text.Description,
		Components: []KitComponent{
			{
				ID:           inverter.ID,
				Name:         inverter.Name,
				PriceEUR:     inverter.PriceEUR,
				Quantity:     invQty,
				Alternatives: []KitComponent{},
			},
			{
				ID:           battery.ID,
				Name:         battery.Name,
				PriceEUR:     battery.PriceEUR,
				Quantity:     batQty,
				Alternatives: []KitComponent{},
			},
		},
	}
}

func filterCategory(items []core.CatalogItem, category string) []core.CatalogItem {
	var out []core.CatalogItem
	for _, it := range items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

// pickByBudget sorts ascending by price and selects Economy→cheapest,
// Premium→most expensive, Optimal→index n/2. For even n that is the upper of
// the two middle elements; changing this rounding changes which product
// "Optimal" buys.
func pickByBudget(items []core.CatalogItem, budget BudgetTier, fallback core.CatalogItem) core.CatalogItem {
	if len(items) == 0 {
		return fallback
	}

	sorted := make([]core.CatalogItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PriceEUR < sorted[j].PriceEUR
	})

	switch budget {
	case BudgetEconomy:
		return sorted[0]
	case BudgetPremium:
		return sorted[len(sorted)-1]
	default:
		return sorted[len(sorted)/2]
	}
}

// quantities derives component counts from the questionnaire: base 1 per
// category, ×2 for both on Business objects, and an additional ×2 on
// batteries at the highest usage tier. The multipliers compound.
func quantities(cfg Configuration) (inverters, batteries int) {
	inverters, batteries = 1, 1

	if cfg.ObjectType == ObjectBusiness {
		inverters *= 2
		batteries *= 2
	}
	if cfg.Usage == UsageOver600 {
		batteries *= 2
	}
	return inverters, batteries
}

package core

import "context"

// Catalog categories shared by the storefront and the engine.
const (
	CategoryChargingStations = "Charging Stations"
	CategoryInverters        = "Inverters"
	CategoryBatteries        = "Batteries"
	CategorySolarPanels      = "Solar Panels"
	CategoryKits             = "Kits"
)

// CatalogItem is the slim read model the recommendation engine works with.
type CatalogItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	PriceEUR float64 `json:"price"`
	Category string  `json:"category"`
	Stock    int     `json:"stock"`
}

// CatalogReader exposes read-only, in-stock catalog access.
// The engine never mutates the catalog.
type CatalogReader interface {
	InStockItems(ctx context.Context, locale string) ([]CatalogItem, error)
}

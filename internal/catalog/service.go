package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Valentin1965/VoltStore/internal/core"
)

// Categories the storefront ships, in display order.
var Categories = []string{
	core.CategoryChargingStations,
	core.CategoryInverters,
	core.CategoryBatteries,
	core.CategorySolarPanels,
	core.CategoryKits,
}

func validCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Public reads
// --------------------------------------------------

// ListProducts returns active products, optionally filtered by category and
// a name search in the given locale.
func (s *Service) ListProducts(ctx context.Context, category, query, locale string) ([]Product, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]Product, 0, len(all))
	for _, p := range all {
		if !p.IsActive {
			continue
		}
		if category != "" && category != "All" && p.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name.Resolve(locale)), query) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// InStockItems implements core.CatalogReader for the recommendation engine:
// active, stocked products reduced to the slim read model.
func (s *Service) InStockItems(ctx context.Context, locale string) ([]core.CatalogItem, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var items []core.CatalogItem
	for _, p := range all {
		if !p.InStock() {
			continue
		}
		items = append(items, core.CatalogItem{
			ID:       p.ID,
			Name:     p.Name.Resolve(locale),
			PriceEUR: p.PriceEUR,
			Category: p.Category,
			Stock:    p.Stock,
		})
	}
	return items, nil
}

// --------------------------------------------------
// Admin writes
// --------------------------------------------------

func (s *Service) CreateProduct(ctx context.Context, p *Product) error {
	sanitize(p)

	if len(p.Name) == 0 {
		return errors.New("product name is required")
	}
	if !validCategory(p.Category) {
		return fmt.Errorf("unknown category %q", p.Category)
	}

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now()

	return s.repo.Create(ctx, p)
}

func (s *Service) UpdateProduct(ctx context.Context, p *Product) error {
	sanitize(p)

	if p.ID == "" {
		return errors.New("product id is required")
	}
	if !validCategory(p.Category) {
		return fmt.Errorf("unknown category %q", p.Category)
	}

	return s.repo.Update(ctx, p)
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// AttachImage records an uploaded image URL on the product.
func (s *Service) AttachImage(ctx context.Context, id, url string) error {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	p.Images = append(p.Images, url)
	if p.Image == nil {
		p.Image = &url
	}
	return s.repo.Update(ctx, p)
}

// CreateKitProduct materializes an accepted recommendation as a sellable
// product in the Kits category, priced at the kit total with stock 1.
func (s *Service) CreateKitProduct(ctx context.Context, title, description string, totalEUR float64) (string, error) {
	if title == "" {
		title = "Custom Energy Kit"
	}
	if totalEUR < 0 {
		return "", errors.New("kit total cannot be negative")
	}

	p := &Product{
		ID:          fmt.Sprintf("KIT-%s", strings.ToUpper(uuid.New().String()[:8])),
		Name:        LocalizedText{"en": title},
		Description: LocalizedText{"en": description},
		PriceEUR:    totalEUR,
		Category:    core.CategoryKits,
		Stock:       1,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return "", err
	}
	return p.ID, nil
}

// sanitize clamps untrusted numeric fields, mirroring what the storefront
// admin panel sends.
func sanitize(p *Product) {
	if p.PriceEUR < 0 {
		p.PriceEUR = 0
	}
	if p.Stock < 0 {
		p.Stock = 0
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	cleaned := p.Images[:0]
	for _, img := range p.Images {
		if strings.TrimSpace(img) != "" {
			cleaned = append(cleaned, img)
		}
	}
	p.Images = cleaned
}

package catalog

import (
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/comfitco/luxe-store/internal/models"
	"github.com/comfitco/luxe-store/internal/store"
)

type seedProduct struct {
	name     string
	price    int64
	image    string
	category models.Category
}

// defaultCatalog is the starter collection for an empty store: two
// listings per category.
var defaultCatalog = []seedProduct{
	{"Elegant Maxi Dress", 2499, "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=600&h=800&fit=crop", models.CategoryPartyWear},
	{"Casual Summer Dress", 1299, "https://images.unsplash.com/photo-1572804013309-59a88b7e92f1?w=600&h=800&fit=crop", models.CategoryCasual},
	{"Traditional Anarkali", 3499, "https://images.unsplash.com/photo-1583391733956-6c78276477e2?w=600&h=800&fit=crop", models.CategoryEthnic},
	{"Trendy Wrap Dress", 1899, "https://images.unsplash.com/photo-1496747611176-843222e1e57c?w=600&h=800&fit=crop", models.CategoryTrendy},
	{"Floral Print Dress", 1599, "https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?w=600&h=800&fit=crop", models.CategoryCasual},
	{"Sequin Party Dress", 4299, "https://images.unsplash.com/photo-1566174053879-31528523f8ae?w=600&h=800&fit=crop", models.CategoryPartyWear},
	{"Bohemian Maxi", 2199, "https://images.unsplash.com/photo-1509631179647-0177331693ae?w=600&h=800&fit=crop", models.CategoryTrendy},
	{"Classic Silk Saree", 5999, "https://images.unsplash.com/photo-1610030469983-98e550d6193c?w=600&h=800&fit=crop", models.CategoryEthnic},
}

// SeedDefaults inserts the default catalog when the store is empty. It is
// meant to run once, right after the first fetch: it checks the local
// snapshot, then independently counts rows in the store, and only then
// inserts each default sequentially through the same Add path an admin
// would use. Individual failures surface as notices and are neither
// retried nor rolled back; a partially seeded catalog is visible and
// correctable by an admin.
//
// Known limitation: two fresh clients starting against an empty table can
// both pass the checks and both seed. The store contract offers no
// transactional guard to prevent it.
func (s *Service) SeedDefaults(ctx context.Context) error {
	if len(s.Products()) > 0 {
		return nil
	}

	total, err := store.CountProducts(ctx, s.db)
	if err != nil {
		return fmt.Errorf("seed existence check: %w", err)
	}
	if total > 0 {
		return nil
	}

	log.Printf("empty catalog, seeding %d default products", len(defaultCatalog))
	for _, p := range defaultCatalog {
		s.Add(ctx, p.name, decimal.NewFromInt(p.price), p.image, p.category)
	}

	return nil
}

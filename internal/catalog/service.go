// Package catalog owns the product side of the storefront: the mirrored
// catalog snapshot, the admin create/delete writer and the one-time
// default seeding.
package catalog

import (
	"context"
	"database/sql"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/comfitco/luxe-store/internal/mirror"
	"github.com/comfitco/luxe-store/internal/models"
	"github.com/comfitco/luxe-store/internal/notice"
	"github.com/comfitco/luxe-store/internal/store"
)

// NotifyChannel is the Postgres notification channel carrying product
// table changes.
const NotifyChannel = "products_changes"

type Service struct {
	db    *sql.DB
	board *notice.Board
	ch    *mirror.Channel[models.Product]
}

func NewService(db *sql.DB, events mirror.Events, board *notice.Board) *Service {
	s := &Service{db: db, board: board}
	s.ch = mirror.New("products", func(ctx context.Context) ([]models.Product, error) {
		return store.ListProducts(ctx, db)
	}, events, board)
	return s
}

// Start runs the initial fetch and begins following change events.
func (s *Service) Start(ctx context.Context) { s.ch.Start(ctx) }

// Stop releases the change subscription. Idempotent.
func (s *Service) Stop() { s.ch.Stop() }

// Products returns the current catalog snapshot, newest first.
func (s *Service) Products() []models.Product { return s.ch.Snapshot() }

// ProductsByCategory filters the snapshot to one category.
func (s *Service) ProductsByCategory(category models.Category) []models.Product {
	all := s.ch.Snapshot()
	filtered := all[:0]
	for _, p := range all {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (s *Service) Loading() bool { return s.ch.Loading() }

// Add inserts one listing and reports whether the store accepted it. The
// snapshot is not spliced here: the canonical row only exists after the
// round trip, and the change listener refreshes the whole snapshot once
// the store confirms the write.
func (s *Service) Add(ctx context.Context, name string, price decimal.Decimal, image string, category models.Category) bool {
	if _, err := store.InsertProduct(ctx, s.db, name, price, image, category); err != nil {
		log.Printf("add product: %v", err)
		s.board.Errorf("Failed to add product")
		return false
	}
	s.board.Infof("Product added successfully!")
	return true
}

// Remove deletes one listing by id. On rejection nothing is removed
// locally, so the snapshot never shows a row as gone before the store
// confirms it. A missing id is a silent no-op.
func (s *Service) Remove(ctx context.Context, id uuid.UUID) {
	if err := store.DeleteProduct(ctx, s.db, id); err != nil {
		log.Printf("delete product: %v", err)
		s.board.Errorf("Failed to delete product")
		return
	}
	s.board.Infof("Product deleted successfully!")
}

// Package orders owns the order side of the storefront: the mirrored
// order history, the checkout writer and the checkout state machine.
package orders

import (
	"context"
	"database/sql"
	"log"

	"github.com/google/uuid"

	"github.com/comfitco/luxe-store/internal/mirror"
	"github.com/comfitco/luxe-store/internal/models"
	"github.com/comfitco/luxe-store/internal/notice"
	"github.com/comfitco/luxe-store/internal/store"
)

// NotifyChannel is the Postgres notification channel carrying order
// table changes.
const NotifyChannel = "orders_changes"

// OrderForm carries the customer's entries from the order form. The
// caller owns it; a failed submit leaves it untouched so nothing the
// customer typed is lost.
type OrderForm struct {
	CustomerName string
	MobileNumber string
	Address      string
	Size         models.Size
	Quantity     int
	Message      string
}

type Service struct {
	db    *sql.DB
	board *notice.Board
	ch    *mirror.Channel[models.Order]
}

func NewService(db *sql.DB, events mirror.Events, board *notice.Board) *Service {
	s := &Service{db: db, board: board}
	s.ch = mirror.New("orders", func(ctx context.Context) ([]models.Order, error) {
		return store.ListOrders(ctx, db)
	}, events, board)
	return s
}

// Start runs the initial fetch and begins following change events.
func (s *Service) Start(ctx context.Context) { s.ch.Start(ctx) }

// Stop releases the change subscription. Idempotent.
func (s *Service) Stop() { s.ch.Stop() }

// Orders returns the order history snapshot, newest first.
func (s *Service) Orders() []models.Order { return s.ch.Snapshot() }

func (s *Service) Loading() bool { return s.ch.Loading() }

// Place submits one order carrying a value snapshot of the product at
// order time, so the order survives a later deletion of the product. It
// reports whether the store accepted the write; the snapshot is
// refreshed through the change listener, never spliced here.
func (s *Service) Place(ctx context.Context, product models.Product, form OrderForm) bool {
	_, err := store.InsertOrder(ctx, s.db, store.NewOrder{
		ProductID:    uuid.NullUUID{UUID: product.ID, Valid: true},
		ProductName:  product.Name,
		ProductImage: product.Image,
		ProductPrice: product.Price,
		CustomerName: form.CustomerName,
		MobileNumber: form.MobileNumber,
		Address:      form.Address,
		Size:         form.Size,
		Quantity:     form.Quantity,
		Message:      form.Message,
	})
	if err != nil {
		log.Printf("place order: %v", err)
		s.board.Errorf("Failed to place order")
		return false
	}
	return true
}

package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comfitco/luxe-store/internal/models"
)

const (
	testTimeout = time.Second
	testTick    = time.Millisecond
)

type placerFunc func(ctx context.Context, product models.Product, form OrderForm) bool

func (f placerFunc) Place(ctx context.Context, product models.Product, form OrderForm) bool {
	return f(ctx, product, form)
}

func testProduct() models.Product {
	return models.Product{
		ID:       uuid.New(),
		Name:     "Casual Summer Dress",
		Price:    decimal.NewFromInt(1299),
		Category: models.CategoryCasual,
	}
}

func testForm() OrderForm {
	return OrderForm{
		CustomerName: "Asha",
		MobileNumber: "9876543210",
		Address:      "12 Rose Lane",
		Size:         models.SizeM,
		Quantity:     1,
	}
}

func TestCheckoutHappyPath(t *testing.T) {
	var placed []models.Product
	c := NewCheckout(placerFunc(func(ctx context.Context, p models.Product, f OrderForm) bool {
		placed = append(placed, p)
		return true
	}))

	require.Equal(t, StateIdle, c.State())

	product := testProduct()
	c.Select(product)
	require.Equal(t, StateFormOpen, c.State())
	selected, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, product.ID, selected.ID)

	require.True(t, c.Submit(context.Background(), testForm()))
	assert.Equal(t, StateSuccess, c.State())
	_, ok = c.Selected()
	assert.False(t, ok, "selection cleared after success")
	require.Len(t, placed, 1)
	assert.Equal(t, product.ID, placed[0].ID)

	c.Dismiss()
	assert.Equal(t, StateIdle, c.State())
}

func TestCheckoutFailedSubmitReturnsToForm(t *testing.T) {
	c := NewCheckout(placerFunc(func(ctx context.Context, p models.Product, f OrderForm) bool {
		return false
	}))

	product := testProduct()
	c.Select(product)

	require.False(t, c.Submit(context.Background(), testForm()))
	assert.Equal(t, StateFormOpen, c.State())

	// The selection survives a failure so the customer can retry.
	selected, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, product.ID, selected.ID)
}

func TestCheckoutSubmitWithoutSelectionIsNoOp(t *testing.T) {
	called := false
	c := NewCheckout(placerFunc(func(ctx context.Context, p models.Product, f OrderForm) bool {
		called = true
		return true
	}))

	assert.False(t, c.Submit(context.Background(), testForm()))
	assert.False(t, called)
	assert.Equal(t, StateIdle, c.State())
}

func TestCheckoutRejectsConcurrentSubmit(t *testing.T) {
	block := make(chan struct{})
	c := NewCheckout(placerFunc(func(ctx context.Context, p models.Product, f OrderForm) bool {
		<-block
		return true
	}))

	c.Select(testProduct())

	done := make(chan bool, 1)
	go func() { done <- c.Submit(context.Background(), testForm()) }()

	require.Eventually(t, func() bool { return c.State() == StateSubmitting }, testTimeout, testTick)

	// Second submit while one is in flight is rejected outright.
	assert.False(t, c.Submit(context.Background(), testForm()))

	close(block)
	assert.True(t, <-done)
	assert.Equal(t, StateSuccess, c.State())
}

func TestCheckoutCancelClosesForm(t *testing.T) {
	c := NewCheckout(placerFunc(func(ctx context.Context, p models.Product, f OrderForm) bool {
		return true
	}))

	c.Select(testProduct())
	c.Cancel()
	assert.Equal(t, StateIdle, c.State())
	_, ok := c.Selected()
	assert.False(t, ok)

	// Cancel outside formOpen is ignored.
	c.Cancel()
	assert.Equal(t, StateIdle, c.State())
}

func TestCheckoutSelectIgnoredWhileActive(t *testing.T) {
	c := NewCheckout(placerFunc(func(ctx context.Context, p models.Product, f OrderForm) bool {
		return true
	}))

	first := testProduct()
	other := testProduct()
	c.Select(first)
	c.Select(other)

	selected, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, first.ID, selected.ID)
}

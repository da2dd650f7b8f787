package orders

import (
	"context"
	"sync"

	"github.com/comfitco/luxe-store/internal/models"
)

// Placer submits a finished order form for one product.
type Placer interface {
	Place(ctx context.Context, product models.Product, form OrderForm) bool
}

type CheckoutState string

const (
	StateIdle       CheckoutState = "idle"
	StateFormOpen   CheckoutState = "formOpen"
	StateSubmitting CheckoutState = "submitting"
	StateSuccess    CheckoutState = "success"
)

// Checkout is one customer session's ordering flow:
//
//	idle -> formOpen -> submitting -> success -> idle
//	                        `-> formOpen (failed submit)
//
// Only one submission can be in flight at a time, and a failed submit
// returns to the open form without discarding anything the caller holds.
type Checkout struct {
	mu      sync.Mutex
	placer  Placer
	state   CheckoutState
	product *models.Product
}

func NewCheckout(placer Placer) *Checkout {
	return &Checkout{placer: placer, state: StateIdle}
}

func (c *Checkout) State() CheckoutState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Selected returns the product the form is open for, if any.
func (c *Checkout) Selected() (models.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.product == nil {
		return models.Product{}, false
	}
	return *c.product, true
}

// Select opens the order form for product. Ignored unless idle.
func (c *Checkout) Select(product models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateIdle {
		return
	}
	c.product = &product
	c.state = StateFormOpen
}

// Cancel closes the form without ordering. Ignored unless the form is open.
func (c *Checkout) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateFormOpen {
		return
	}
	c.product = nil
	c.state = StateIdle
}

// Submit sends the order for the selected product. Submitting with no
// open form or no selection is a guarded no-op, not an error, and a
// second submit while one is in flight is rejected. On success the
// selection is cleared; on failure the form stays open.
func (c *Checkout) Submit(ctx context.Context, form OrderForm) bool {
	c.mu.Lock()
	if c.state != StateFormOpen || c.product == nil {
		c.mu.Unlock()
		return false
	}
	product := *c.product
	c.state = StateSubmitting
	c.mu.Unlock()

	ok := c.placer.Place(ctx, product, form)

	c.mu.Lock()
	defer c.mu.Unlock()
	if ok {
		c.state = StateSuccess
		c.product = nil
	} else {
		c.state = StateFormOpen
	}
	return ok
}

// Dismiss acknowledges the confirmation. Ignored unless in success.
func (c *Checkout) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateSuccess {
		return
	}
	c.state = StateIdle
}

package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/mkoval-dev/bookmarket-backend/internal/catalog"
	"github.com/mkoval-dev/bookmarket-backend/pkg/kvstore"
	"github.com/mkoval-dev/bookmarket-backend/pkg/logger"
	"github.com/mkoval-dev/bookmarket-backend/pkg/observer"
)

// LineItem binds a product to a quantity. Quantity is always >= 1; removal
// is the only way to drop a line item.
type LineItem struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Ledger is the cart: at most one line item per product id, insertion order
// preserved, every mutation written through to durable storage.
type Ledger struct {
	mu      sync.RWMutex
	items   []LineItem
	storage kvstore.Store
	hub     *observer.Hub
	logg    *logger.Logger
}

// NewLedger seeds the ledger from storage. An absent value means a fresh
// cart; a corrupt value is logged and treated the same way rather than
// failing construction.
func NewLedger(ctx context.Context, storage kvstore.Store, hub *observer.Hub, logg *logger.Logger) *Ledger {
	ledger := &Ledger{storage: storage, hub: hub, logg: logg}

	raw, err := storage.Get(ctx, kvstore.KeyCart)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) && logg != nil {
			logg.Warn(logg.WithField(ctx, "key", kvstore.KeyCart), "cart storage unreadable, starting empty")
		}
		return ledger
	}

	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		if logg != nil {
			logg.Warn(logg.WithField(ctx, "key", kvstore.KeyCart), "stored cart is corrupt, starting empty")
		}
		return ledger
	}
	ledger.items = items
	return ledger
}

// Add increments the line item for the product, inserting it with quantity 1
// when absent. Always succeeds; there is no stock-limit enforcement.
func (l *Ledger) Add(ctx context.Context, product catalog.Product) {
	l.mu.Lock()
	found := false
	for i := range l.items {
		if l.items[i].ID == product.ID {
			l.items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		l.items = append(l.items, LineItem{Product: product, Quantity: 1})
	}
	l.persistLocked(ctx)
	l.mu.Unlock()

	l.hub.Publish(observer.Event{Store: "cart", Op: "add"})
}

// Remove deletes the line item if present; no-op otherwise.
func (l *Ledger) Remove(ctx context.Context, productID string) {
	l.mu.Lock()
	filtered := l.items[:0]
	for _, item := range l.items {
		if item.ID != productID {
			filtered = append(filtered, item)
		}
	}
	l.items = filtered
	l.persistLocked(ctx)
	l.mu.Unlock()

	l.hub.Publish(observer.Event{Store: "cart", Op: "remove"})
}

// UpdateQuantity replaces the stored quantity. Quantities below 1 are
// silently ignored: this path never zeroes a line item.
func (l *Ledger) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	if quantity < 1 {
		return
	}

	l.mu.Lock()
	for i := range l.items {
		if l.items[i].ID == productID {
			l.items[i].Quantity = quantity
			break
		}
	}
	l.persistLocked(ctx)
	l.mu.Unlock()

	l.hub.Publish(observer.Event{Store: "cart", Op: "update_quantity"})
}

// Items returns a snapshot of the ledger in insertion order.
func (l *Ledger) Items() []LineItem {
	l.mu.RLock()
	defer l.mu.RUnlock()
	snapshot := make([]LineItem, len(l.items))
	copy(snapshot, l.items)
	return snapshot
}

// Count is the sum of quantities across all line items.
func (l *Ledger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	total := 0
	for _, item := range l.items {
		total += item.Quantity
	}
	return total
}

// Subtotal is the sum of price times quantity across all line items.
func (l *Ledger) Subtotal() decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	total := decimal.Zero
	for _, item := range l.items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// persistLocked writes the full serialized ledger through to storage. The
// write is best effort: in-memory state stays authoritative and a storage
// failure is logged, not surfaced.
func (l *Ledger) persistLocked(ctx context.Context) {
	payload, err := json.Marshal(l.items)
	if err != nil {
		if l.logg != nil {
			l.logg.Error(ctx, "marshal cart for storage", err)
		}
		return
	}
	if err := l.storage.Set(ctx, kvstore.KeyCart, string(payload)); err != nil {
		if l.logg != nil {
			l.logg.Error(ctx, "write cart to storage", err)
		}
	}
}

package services

import (
	"context"
	"errors"
	"sync"

	"restaurant-cart/models"
	"restaurant-cart/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// CartSlot is the durable key-value slot a cart is persisted into.
type CartSlot interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// CatalogSource returns the authoritative product catalog.
type CatalogSource interface {
	FetchProducts(ctx context.Context) ([]models.Product, error)
}

type CartStoreOptions struct {
	Key     string
	Slot    CartSlot
	Catalog CatalogSource
	Logger  *logrus.Entry
	NewID   func() string
}

// CartStore holds one shopper's cart. Mutations never fail: unknown line ids
// are ignored and persistence errors are only logged.
type CartStore struct {
	mu         sync.Mutex
	key        string
	slot       CartSlot
	catalog    CatalogSource
	log        *logrus.Entry
	newID      func() string
	items      []models.CartItem
	isCartOpen bool
	loaded     map[string]struct{}
	reconciled chan struct{}
	// unread is set while the slot could not be read; the slot is not written
	// until a retry succeeds.
	unread bool
}

// NewCartStore restores the cart persisted under opts.Key and, when anything was
// restored, starts a background check of the restored lines against the catalog.
// If the slot cannot be read the store starts empty and retries the read on its
// next use.
func NewCartStore(ctx context.Context, opts CartStoreOptions) *CartStore {
	if opts.NewID == nil {
		opts.NewID = func() string { return uuid.NewString() }
	}
	log := opts.Logger
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	s := &CartStore{
		key:        opts.Key,
		slot:       opts.Slot,
		catalog:    opts.Catalog,
		log:        log.WithField("key", opts.Key),
		newID:      opts.NewID,
		items:      []models.CartItem{},
		loaded:     map[string]struct{}{},
		reconciled: make(chan struct{}),
	}
	close(s.reconciled)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.unread = true
	s.restoreLocked(context.WithoutCancel(ctx))
	return s
}

// restoreLocked reads the slot if it has not been read yet. Restored lines are
// placed ahead of any lines added in the meantime, and those lines are written
// back once the slot contents are known. It reports whether the read succeeded.
func (s *CartStore) restoreLocked(ctx context.Context) bool {
	if !s.unread {
		return true
	}

	data, err := s.slot.Load(ctx, s.key)
	if err != nil && !errors.Is(err, repositories.ErrSlotEmpty) {
		s.log.WithError(err).Warn("cart slot unreadable, will retry before writing")
		return false
	}
	s.unread = false

	pending := len(s.items) > 0
	if err == nil {
		s.adoptLocked(ctx, data)
	}
	if pending {
		s.persistLocked()
	}
	return true
}

func (s *CartStore) adoptLocked(ctx context.Context, data []byte) {
	restored, err := DecodeCart(data, s.newID)
	if err != nil {
		s.log.WithError(err).Warn("discarding malformed persisted cart")
		if err := s.slot.Delete(ctx, s.key); err != nil {
			s.log.WithError(err).Error("failed to erase malformed cart slot")
		}
		return
	}
	if len(restored) == 0 {
		return
	}

	for _, it := range restored {
		s.loaded[it.ID] = struct{}{}
	}
	s.items = append(restored, s.items...)
	s.log.WithField("lines", len(restored)).Debug("cart restored")

	if s.catalog != nil {
		s.reconciled = make(chan struct{})
		go s.reconcile(ctx, s.reconciled)
	}
}

// ensureRestoredLocked retries a failed slot read before the store is used.
func (s *CartStore) ensureRestoredLocked() {
	s.restoreLocked(context.Background())
}

func (s *CartStore) reconcile(ctx context.Context, done chan struct{}) {
	defer close(done)

	products, err := s.catalog.FetchProducts(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.log.WithError(err).Warn("catalog unavailable, discarding restored cart")
		s.items = s.withoutLines(func(it models.CartItem) bool {
			_, restored := s.loaded[it.ID]
			return restored
		})
		s.loaded = map[string]struct{}{}
		if len(s.items) == 0 {
			if err := s.slot.Delete(context.Background(), s.key); err != nil {
				s.log.WithError(err).Error("failed to erase cart slot")
			}
			return
		}
		s.persistLocked()
		return
	}

	known := make(map[string]struct{}, len(products))
	for _, p := range products {
		known[p.ID] = struct{}{}
	}

	before := len(s.items)
	s.items = s.withoutLines(func(it models.CartItem) bool {
		if _, restored := s.loaded[it.ID]; !restored {
			return false
		}
		if _, ok := known[it.Product.ID]; ok {
			return false
		}
		s.log.WithFields(logrus.Fields{
			"line_id":    it.ID,
			"product_id": it.Product.ID,
		}).Info("dropping cart line for product no longer in catalog")
		return true
	})
	s.loaded = map[string]struct{}{}

	if len(s.items) != before {
		s.persistLocked()
	}
}

// Reconciled is closed once the restored cart has been checked against the catalog.
func (s *CartStore) Reconciled() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reconciled
}

func (s *CartStore) AddToCart(product models.Product) models.CartItem {
	base, err := ParsePrice(product.Price)
	if err != nil {
		s.log.WithError(err).WithField("product_id", product.ID).Warn("product has no usable price")
		base = decimal.Zero
	}
	item := models.CartItem{
		ID:            s.newID(),
		Product:       product,
		Quantity:      1,
		Modifications: []models.Modification{},
		CustomPrice:   CalculateCustomPrice(base, nil),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureRestoredLocked()
	s.items = append(s.items, item)
	s.persistLocked()
	return cloneItem(item)
}

func (s *CartStore) RemoveFromCart(lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureRestoredLocked()
	s.removeLocked(lineID)
}

// UpdateQuantity removes the line when quantity is zero or negative.
func (s *CartStore) UpdateQuantity(lineID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureRestoredLocked()

	if quantity <= 0 {
		s.removeLocked(lineID)
		return
	}
	idx := s.indexLocked(lineID)
	if idx < 0 {
		return
	}
	s.items[idx].Quantity = quantity
	s.persistLocked()
}

// UpdateItemModifications replaces the modification list of a line and reprices it.
func (s *CartStore) UpdateItemModifications(lineID string, mods []models.Modification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureRestoredLocked()

	idx := s.indexLocked(lineID)
	if idx < 0 {
		return
	}
	item := &s.items[idx]
	base, err := ParsePrice(item.Product.Price)
	if err != nil {
		s.log.WithError(err).WithField("line_id", lineID).Warn("product has no usable price")
		base = decimal.Zero
	}
	item.Modifications = cloneModifications(mods)
	item.CustomPrice = CalculateCustomPrice(base, item.Modifications)
	s.persistLocked()
}

// ClearCart empties the cart and its slot even when the slot could not be read.
func (s *CartStore) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unread = false
	s.items = []models.CartItem{}
	s.loaded = map[string]struct{}{}
	s.persistLocked()
}

func (s *CartStore) ToggleCartSidebar() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isCartOpen = !s.isCartOpen
	return s.isCartOpen
}

func (s *CartStore) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureRestoredLocked()
	return cloneItems(s.items)
}

func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureRestoredLocked()
	return itemCount(s.items)
}

func (s *CartStore) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureRestoredLocked()
	return subtotal(s.items)
}

// Total equals Subtotal; fees and taxes are added at checkout.
func (s *CartStore) Total() decimal.Decimal {
	return s.Subtotal()
}

func (s *CartStore) IsCartOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isCartOpen
}

// Summary reads every derived value under a single lock.
func (s *CartStore) Summary() models.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureRestoredLocked()
	sub := subtotal(s.items)
	return models.CartSummary{
		Items:      cloneItems(s.items),
		ItemCount:  itemCount(s.items),
		Subtotal:   sub,
		Total:      sub,
		IsCartOpen: s.isCartOpen,
	}
}

func (s *CartStore) indexLocked(lineID string) int {
	for i := range s.items {
		if s.items[i].ID == lineID {
			return i
		}
	}
	return -1
}

func (s *CartStore) removeLocked(lineID string) {
	idx := s.indexLocked(lineID)
	if idx < 0 {
		return
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	delete(s.loaded, lineID)
	s.persistLocked()
}

func (s *CartStore) withoutLines(drop func(models.CartItem) bool) []models.CartItem {
	kept := make([]models.CartItem, 0, len(s.items))
	for _, it := range s.items {
		if !drop(it) {
			kept = append(kept, it)
		}
	}
	return kept
}

func (s *CartStore) persistLocked() {
	if s.unread {
		s.log.Warn("cart slot still unreadable, keeping changes in memory")
		return
	}
	data, err := EncodeCart(s.items)
	if err != nil {
		s.log.WithError(err).Error("failed to encode cart")
		return
	}
	if err := s.slot.Save(context.Background(), s.key, data); err != nil {
		s.log.WithError(err).Error("failed to persist cart")
	}
}

func itemCount(items []models.CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

func subtotal(items []models.CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}

func cloneModifications(mods []models.Modification) []models.Modification {
	out := make([]models.Modification, len(mods))
	copy(out, mods)
	return out
}

func cloneItem(it models.CartItem) models.CartItem {
	it.Modifications = cloneModifications(it.Modifications)
	return it
}

func cloneItems(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(items))
	for i, it := range items {
		out[i] = cloneItem(it)
	}
	return out
}

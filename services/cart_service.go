package services

import (
	"log"
	"sync"

	"storefront/models"
	"storefront/repositories"
)

// CartService owns the cart state. Lines are ordered by insertion, unique by
// product id, and only change through the four mutations below. Every
// mutation writes the full state through the repository; a failed write is a
// warning, not a rollback — the in-memory state stays authoritative for the
// session.
type CartService struct {
	mu    sync.Mutex
	lines []models.CartLine
	repo  repositories.CartRepository
}

// NewCartService rehydrates from the repository. A missing or corrupt
// snapshot means an empty cart; startup is never blocked on bad data.
func NewCartService(repo repositories.CartRepository) *CartService {
	lines, err := repo.Load()
	if err != nil {
		lines = []models.CartLine{}
	}
	return &CartService{lines: lines, repo: repo}
}

// Add merges into an existing line for the same product id, or appends a new
// frozen copy of the product. A quantity below 1 defaults to 1.
func (s *CartService) Add(product models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == product.ID {
			s.lines[i].Quantity += quantity
			s.persist()
			return
		}
	}

	s.lines = append(s.lines, models.NewCartLine(product, quantity))
	s.persist()
}

// Remove deletes the line for the given product id. Absent id is a no-op.
func (s *CartService) Remove(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist()
			return
		}
	}
}

// SetQuantity overwrites the quantity verbatim, including values of zero or
// below. Callers are expected to stop decrementing at 1 and call Remove
// instead; the store does not enforce that policy. Absent id is a no-op.
func (s *CartService) SetQuantity(productID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == productID {
			s.lines[i].Quantity = quantity
			s.persist()
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = []models.CartLine{}
	s.persist()
}

// Snapshot returns a copy of the lines plus the derived aggregates.
func (s *CartService) Snapshot() models.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartLine, len(s.lines))
	copy(items, s.lines)

	totalItems := 0
	subtotal := 0.0
	for _, line := range s.lines {
		totalItems += line.Quantity
		subtotal += line.LineTotal()
	}

	return models.CartSnapshot{
		Items:      items,
		TotalItems: totalItems,
		Subtotal:   subtotal,
	}
}

// Contains reports whether the product id has a line, and its quantity.
func (s *CartService) Contains(productID int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, line := range s.lines {
		if line.ID == productID {
			return line.Quantity, true
		}
	}
	return 0, false
}

// persist writes the current state through the adapter. Called with the lock
// held, after every mutation.
func (s *CartService) persist() {
	if err := s.repo.Save(s.lines); err != nil {
		log.Printf("Warning: failed to persist cart: %v", err)
	}
}

package services_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/models"
	"storefront/repositories"
	"storefront/services"
)

// memoryCartRepository is an in-memory stand-in for the persistence adapter.
type memoryCartRepository struct {
	lines   []models.CartLine
	loadErr error
	saveErr error
	saves   int
}

func (r *memoryCartRepository) Save(lines []models.CartLine) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.lines = make([]models.CartLine, len(lines))
	copy(r.lines, lines)
	return nil
}

func (r *memoryCartRepository) Load() ([]models.CartLine, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.lines, nil
}

func testProduct(id int, title string, price float64) models.Product {
	return models.Product{
		ID:          id,
		Title:       title,
		Price:       price,
		Description: "desc",
		Category:    "electronics",
		Image:       "https://example.com/p.png",
		Rating:      models.Rating{Rate: 4.2, Count: 120},
	}
}

func newCart(t *testing.T) (*services.CartService, *memoryCartRepository) {
	t.Helper()
	repo := &memoryCartRepository{}
	return services.NewCartService(repo), repo
}

func TestAddNewProductCreatesSingleLine(t *testing.T) {
	cart, _ := newCart(t)

	cart.Add(testProduct(1, "Red Shirt", 9.99), 1)

	snap := cart.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 1, snap.Items[0].ID)
	assert.Equal(t, 1, snap.Items[0].Quantity)
}

func TestAddExistingProductMergesQuantity(t *testing.T) {
	cart, _ := newCart(t)
	cart.Add(testProduct(1, "Red Shirt", 9.99), 2)

	cart.Add(testProduct(1, "Red Shirt", 9.99), 3)

	snap := cart.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 5, snap.Items[0].Quantity)
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	cart, _ := newCart(t)

	cart.Add(testProduct(1, "Red Shirt", 9.99), 0)

	snap := cart.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 1, snap.Items[0].Quantity)
}

func TestRemoveIsIdempotent(t *testing.T) {
	cart, _ := newCart(t)
	cart.Add(testProduct(1, "Red Shirt", 9.99), 1)
	cart.Add(testProduct(2, "Blue Hat", 5), 1)

	cart.Remove(1)
	cart.Remove(1)

	snap := cart.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 2, snap.Items[0].ID)
}

func TestRemoveAbsentIDIsNoOp(t *testing.T) {
	cart, _ := newCart(t)
	cart.Add(testProduct(1, "Red Shirt", 9.99), 1)

	cart.Remove(99)

	assert.Len(t, cart.Snapshot().Items, 1)
}

func TestSetQuantityOverwrites(t *testing.T) {
	cart, _ := newCart(t)
	cart.Add(testProduct(1, "Red Shirt", 9.99), 1)

	cart.SetQuantity(1, 7)

	assert.Equal(t, 7, cart.Snapshot().Items[0].Quantity)
}

// The store writes non-positive quantities verbatim and never auto-removes;
// the quantity floor is enforced by the HTTP layer, as the screens did.
func TestSetQuantityZeroKeptVerbatim(t *testing.T) {
	cart, _ := newCart(t)
	cart.Add(testProduct(1, "Red Shirt", 9.99), 2)

	cart.SetQuantity(1, 0)

	snap := cart.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 0, snap.Items[0].Quantity)
}

func TestSetQuantityAbsentIDIsNoOp(t *testing.T) {
	cart, repo := newCart(t)
	cart.Add(testProduct(1, "Red Shirt", 9.99), 1)
	savesBefore := repo.saves

	cart.SetQuantity(99, 3)

	assert.Len(t, cart.Snapshot().Items, 1)
	assert.Equal(t, savesBefore, repo.saves, "no-op must not persist")
}

func TestClearEmptiesCart(t *testing.T) {
	cart, _ := newCart(t)
	cart.Add(testProduct(1, "Red Shirt", 9.99), 2)
	cart.Add(testProduct(2, "Blue Hat", 5), 1)

	cart.Clear()

	snap := cart.Snapshot()
	assert.Empty(t, snap.Items)
	assert.Zero(t, snap.TotalItems)
	assert.Zero(t, snap.Subtotal)
}

func TestSnapshotAggregates(t *testing.T) {
	cart, _ := newCart(t)
	cart.Add(testProduct(1, "Red Shirt", 9.99), 2)
	cart.Add(testProduct(2, "Blue Hat", 5), 1)

	snap := cart.Snapshot()
	assert.Equal(t, 3, snap.TotalItems)
	assert.InDelta(t, 24.98, snap.Subtotal, 0.0001)
}

func TestInsertionOrderPreservedAcrossMutations(t *testing.T) {
	cart, _ := newCart(t)
	cart.Add(testProduct(3, "C", 1), 1)
	cart.Add(testProduct(1, "A", 1), 1)
	cart.Add(testProduct(2, "B", 1), 1)

	cart.SetQuantity(1, 4)
	cart.Add(testProduct(3, "C", 1), 1)
	cart.Remove(1)

	snap := cart.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, 3, snap.Items[0].ID)
	assert.Equal(t, 2, snap.Items[1].ID)
}

func TestCartLineIsFrozenCopy(t *testing.T) {
	cart, _ := newCart(t)
	product := testProduct(1, "Red Shirt", 9.99)
	cart.Add(product, 1)

	// Later catalog changes never affect lines already in the cart.
	product.Price = 100
	product.Title = "changed"

	snap := cart.Snapshot()
	assert.Equal(t, "Red Shirt", snap.Items[0].Title)
	assert.InDelta(t, 9.99, snap.Items[0].Price, 0.0001)
}

func TestContains(t *testing.T) {
	cart, _ := newCart(t)
	cart.Add(testProduct(1, "Red Shirt", 9.99), 2)

	qty, ok := cart.Contains(1)
	assert.True(t, ok)
	assert.Equal(t, 2, qty)

	_, ok = cart.Contains(2)
	assert.False(t, ok)
}

func TestRehydratesFromRepository(t *testing.T) {
	repo := &memoryCartRepository{
		lines: []models.CartLine{
			models.NewCartLine(testProduct(5, "Saved", 3.5), 4),
		},
	}

	cart := services.NewCartService(repo)

	snap := cart.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 5, snap.Items[0].ID)
	assert.Equal(t, 4, snap.Items[0].Quantity)
}

func TestRehydrateFailsOpenToEmptyCart(t *testing.T) {
	repo := &memoryCartRepository{loadErr: errors.New("corrupt snapshot")}

	cart := services.NewCartService(repo)

	assert.Empty(t, cart.Snapshot().Items)
}

func TestMutationsPersist(t *testing.T) {
	cart, repo := newCart(t)

	cart.Add(testProduct(1, "Red Shirt", 9.99), 1)
	require.Len(t, repo.lines, 1)

	cart.SetQuantity(1, 3)
	assert.Equal(t, 3, repo.lines[0].Quantity)

	cart.Clear()
	assert.Empty(t, repo.lines)
}

// Two stores sharing one file play the roles of an app run and the next
// launch: the second rehydrates exactly what the first persisted.
func TestRehydrateAcrossRestarts(t *testing.T) {
	repo := repositories.NewFileCartRepository(filepath.Join(t.TempDir(), "cart.json"))

	first := services.NewCartService(repo)
	first.Add(testProduct(2, "Blue Hat", 5), 1)
	first.Add(testProduct(1, "Red Shirt", 9.99), 2)

	second := services.NewCartService(repo)

	assert.Equal(t, first.Snapshot(), second.Snapshot())
}

func TestPersistFailureKeepsInMemoryStateAuthoritative(t *testing.T) {
	repo := &memoryCartRepository{saveErr: errors.New("storage full")}
	cart := services.NewCartService(repo)

	cart.Add(testProduct(1, "Red Shirt", 9.99), 1)

	snap := cart.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 1, snap.Items[0].Quantity)
}

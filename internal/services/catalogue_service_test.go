package services_test

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mandi/internal/cache"
	"mandi/internal/domain"
	"mandi/internal/repos"
	"mandi/internal/services"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestCache() *cache.Cache {
	return cache.New(cache.NewMemory(), time.Hour)
}

func TestReconcile_CreatesUnseenNamesOnce(t *testing.T) {
	db := openTestDB(t)
	vegRepo := repos.NewVegetableRepo(db)
	svc := services.NewCatalogueService(vegRepo, newTestCache())

	first, err := svc.Reconcile([]domain.BillItem{{Name: "Kale", Quantity: 2, Price: 3.00}})
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.NotEmpty(t, first[0].VegetableID)
	assert.True(t, first[0].IsAvailable, "auto-created rows default to available")
	assert.False(t, first[0].HasFixedPrice)

	// Second sighting resolves to the same row, no duplicate insert.
	second, err := svc.Reconcile([]domain.BillItem{{Name: "Kale", Quantity: 5, Price: 2.80}})
	require.NoError(t, err)
	assert.Equal(t, first[0].VegetableID, second[0].VegetableID)

	rows, err := vegRepo.ListByNames([]string{"Kale"})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestReconcile_DuplicateNamesInOneBatchShareOneRow(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewCatalogueService(repos.NewVegetableRepo(db), newTestCache())

	resolved, err := svc.Reconcile([]domain.BillItem{
		{Name: "Tomato", Quantity: 3, Price: 2.00},
		{Name: "Tomato", Quantity: 2, Price: 2.00},
	})
	require.NoError(t, err)
	require.Len(t, resolved, 2, "duplicate names stay distinct line items")
	assert.Equal(t, resolved[0].VegetableID, resolved[1].VegetableID)

	rows, err := repos.NewVegetableRepo(db).ListByNames([]string{"Tomato"})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestReconcile_FixedPriceOverridesCallerPrice(t *testing.T) {
	db := openTestDB(t)
	vegRepo := repos.NewVegetableRepo(db)
	fixed := 2.50
	require.NoError(t, vegRepo.Insert(domain.Vegetable{
		ID: "veg-potato", Name: "Potato", IsAvailable: true,
		HasFixedPrice: true, FixedPrice: &fixed,
	}))
	svc := services.NewCatalogueService(vegRepo, newTestCache())

	resolved, err := svc.Reconcile([]domain.BillItem{{Name: "Potato", Quantity: 3, Price: 99}})
	require.NoError(t, err)
	assert.Equal(t, 2.50, resolved[0].Price)
	assert.True(t, resolved[0].HasFixedPrice)
}

func TestReconcile_CaseSensitiveNames(t *testing.T) {
	db := openTestDB(t)
	vegRepo := repos.NewVegetableRepo(db)
	svc := services.NewCatalogueService(vegRepo, newTestCache())

	a, err := svc.Reconcile([]domain.BillItem{{Name: "Spinach", Quantity: 1, Price: 1}})
	require.NoError(t, err)
	b, err := svc.Reconcile([]domain.BillItem{{Name: "spinach", Quantity: 1, Price: 1}})
	require.NoError(t, err)

	assert.NotEqual(t, a[0].VegetableID, b[0].VegetableID, "names match case-sensitively")
}

func TestReconcile_MixedKnownAndUnknown(t *testing.T) {
	db := openTestDB(t)
	vegRepo := repos.NewVegetableRepo(db)
	require.NoError(t, vegRepo.Insert(domain.Vegetable{ID: "veg-onion", Name: "Onion", IsAvailable: true}))
	svc := services.NewCatalogueService(vegRepo, newTestCache())

	resolved, err := svc.Reconcile([]domain.BillItem{
		{Name: "Onion", Quantity: 1, Price: 1.10},
		{Name: "Leek", Quantity: 2, Price: 4.00},
	})
	require.NoError(t, err)
	assert.Equal(t, "veg-onion", resolved[0].VegetableID)
	assert.NotEmpty(t, resolved[1].VegetableID)
	assert.Equal(t, 1.10, resolved[0].Price, "no override without a fixed price")
}

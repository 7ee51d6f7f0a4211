package pizza

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *FileRepo {
	t.Helper()
	return NewFileRepo(filepath.Join(t.TempDir(), "pizza_db.json"))
}

func testOrder(id string) Order {
	return Order{
		OrderID:  id,
		StoreID:  "s1",
		Items:    []OrderItem{{SKU: "margherita", Qty: 2}},
		Address:  "Kadıköy, İstanbul",
		Status:   StatusPreparing,
		EtaMin:   30,
		TotalEur: 18.9,
	}
}

func TestFileRepo_Seed(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	require.NoError(t, repo.Seed())

	stores := repo.ListStores()
	require.Len(t, stores, 2)
	assert.Equal(t, "s1", stores[0].ID)
	assert.Equal(t, "Luigi's", stores[0].Name)
	assert.Equal(t, 1.2, stores[0].DistanceKm)
	assert.Equal(t, "s2", stores[1].ID)
	assert.Equal(t, "SliceMaster", stores[1].Name)

	// Seeding again must not duplicate the stores.
	require.NoError(t, repo.Seed())
	assert.Len(t, repo.ListStores(), 2)
}

func TestFileRepo_AddStore(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	require.NoError(t, repo.AddStore(Store{ID: "s9", Name: "Napoli", DistanceKm: 0.4}))

	stores := repo.ListStores()
	require.Len(t, stores, 1)
	assert.Equal(t, "Napoli", stores[0].Name)
}

func TestFileRepo_PlaceAndGetOrder(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	require.NoError(t, repo.PlaceOrder(testOrder("ORD1")))
	require.NoError(t, repo.PlaceOrder(testOrder("ORD2")))

	order, found := repo.GetOrder("ORD2")
	require.True(t, found)
	assert.Equal(t, "ORD2", order.OrderID)
	assert.Equal(t, StatusPreparing, order.Status)
	assert.Equal(t, []OrderItem{{SKU: "margherita", Qty: 2}}, order.Items)

	orders := repo.ListOrders()
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD1", orders[0].OrderID)
	assert.Equal(t, "ORD2", orders[1].OrderID)
}

func TestFileRepo_GetOrder_AbsentIsNotAnError(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	_, found := repo.GetOrder("ORD404")
	assert.False(t, found)
}

func TestFileRepo_CancelOrder(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	require.NoError(t, repo.PlaceOrder(testOrder("ORD1")))

	cancelled, err := repo.CancelOrder("ORD1")
	require.NoError(t, err)
	assert.True(t, cancelled)

	order, found := repo.GetOrder("ORD1")
	require.True(t, found)
	assert.Equal(t, StatusCancelled, order.Status)

	// A second cancel still reports success with the status unchanged.
	cancelled, err = repo.CancelOrder("ORD1")
	require.NoError(t, err)
	assert.True(t, cancelled)

	order, _ = repo.GetOrder("ORD1")
	assert.Equal(t, StatusCancelled, order.Status)
}

func TestFileRepo_CancelOrder_UnknownLeavesCollectionUntouched(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	require.NoError(t, repo.PlaceOrder(testOrder("ORD1")))
	before := repo.ListOrders()

	cancelled, err := repo.CancelOrder("ORD404")
	require.NoError(t, err)
	assert.False(t, cancelled)
	assert.Equal(t, before, repo.ListOrders())
}

// Two repos on the same backing file observe each other's writes,
// because every operation reloads from disk first.
func TestFileRepo_ReloadsFromDiskTruth(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pizza_db.json")
	first := NewFileRepo(path)
	second := NewFileRepo(path)

	require.NoError(t, first.PlaceOrder(testOrder("ORD1")))

	order, found := second.GetOrder("ORD1")
	require.True(t, found)
	assert.Equal(t, "ORD1", order.OrderID)
}

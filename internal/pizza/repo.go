package pizza

import (
	"fmt"

	"github.com/slicelab/pizza-agent/internal/store"
	"github.com/slicelab/pizza-agent/pkg/log"
)

// FileRepo persists the pizza database as one JSON file.
//
// Every operation reloads the database from disk before acting, so the
// repository carries no durable in-process state and never drifts from
// disk truth between calls. The load→mutate→save cycles are not locked
// against other processes or repos on the same file; the last save
// wins.
type FileRepo struct {
	db *store.Store[DB]
}

// NewFileRepo creates a repository backed by the file at path.
func NewFileRepo(path string) *FileRepo {
	return &FileRepo{db: store.New[DB](path)}
}

// Seed inserts the demo stores when the store collection is empty.
// Subsequent runs leave an already-seeded database untouched.
func (r *FileRepo) Seed() error {
	if len(r.ListStores()) > 0 {
		return nil
	}
	seed := []Store{
		{ID: "s1", Name: "Luigi's", DistanceKm: 1.2},
		{ID: "s2", Name: "SliceMaster", DistanceKm: 2.5},
	}
	for _, s := range seed {
		if err := r.AddStore(s); err != nil {
			return fmt.Errorf("seed store %s: %w", s.ID, err)
		}
	}
	log.Info("Seeded %d pizza stores into %s", len(seed), r.db.Path())
	return nil
}

// ListStores returns the full store collection.
func (r *FileRepo) ListStores() []Store {
	return r.db.Load().Stores
}

// AddStore appends a store and persists the database.
func (r *FileRepo) AddStore(s Store) error {
	db := r.db.Load()
	db.Stores = append(db.Stores, s)
	return r.db.Save(db)
}

// ListOrders returns the full order collection.
func (r *FileRepo) ListOrders() []Order {
	return r.db.Load().Orders
}

// PlaceOrder appends an order and persists the database. The caller is
// responsible for generating the order id; no uniqueness check is
// performed here.
func (r *FileRepo) PlaceOrder(o Order) error {
	db := r.db.Load()
	db.Orders = append(db.Orders, o)
	return r.db.Save(db)
}

// GetOrder returns the first order with the given id. A missing order
// is a normal outcome, reported through the second return value.
func (r *FileRepo) GetOrder(orderID string) (Order, bool) {
	for _, o := range r.db.Load().Orders {
		if o.OrderID == orderID {
			return o, true
		}
	}
	return Order{}, false
}

// CancelOrder marks the order with the given id as cancelled and
// persists the database. Returns false without modifying anything when
// the id is unknown. Cancelling an already-cancelled order succeeds and
// leaves the status unchanged.
func (r *FileRepo) CancelOrder(orderID string) (bool, error) {
	db := r.db.Load()
	for i := range db.Orders {
		if db.Orders[i].OrderID == orderID {
			db.Orders[i].Status = StatusCancelled
			if err := r.db.Save(db); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

package pizza

// Order status values written by this system. Status is free-form on
// the wire; these are the two values the tools produce.
const (
	StatusPreparing = "Preparing"
	StatusCancelled = "Cancelled"
)

// Store is a pizza store a user can order from.
type Store struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	DistanceKm float64 `json:"distance_km"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	SKU string  `json:"sku"`
	Qty float64 `json:"qty"`
}

// Order is a placed pizza order.
//
// StoreID references Store.ID but is not validated against the store
// collection. Orders are never deleted; cancellation only flips Status.
type Order struct {
	OrderID  string      `json:"order_id"`
	StoreID  string      `json:"store_id"`
	Items    []OrderItem `json:"items"`
	Address  string      `json:"address"`
	Status   string      `json:"status"`
	EtaMin   int         `json:"eta_min"`
	TotalEur float64     `json:"total_eur"`
}

// DB is the aggregate persisted as one JSON document.
type DB struct {
	Stores []Store `json:"stores"`
	Orders []Order `json:"orders"`
}

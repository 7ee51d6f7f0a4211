package tools

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/slicelab/pizza-agent/internal/llm"
	"github.com/slicelab/pizza-agent/internal/pizza"
)

// Defaults applied to every placed order. This is a debug-grade
// storefront: no pricing or routing backend exists.
const (
	orderEtaMin   = 30
	orderTotalEur = 18.9
)

// newOrderID generates an order identifier the way the storefront
// always has: ORD plus a random number below 100000, with no collision
// detection.
func newOrderID() string {
	return fmt.Sprintf("ORD%d", rand.IntN(100000))
}

// ListStoresTool returns nearby pizza stores.
type ListStoresTool struct {
	repo *pizza.FileRepo
}

func NewListStoresTool(repo *pizza.FileRepo) *ListStoresTool {
	return &ListStoresTool{repo: repo}
}

func (t *ListStoresTool) Name() string { return "list_pizza_stores" }

func (t *ListStoresTool) Description() string { return "Returns nearby pizza stores." }

func (t *ListStoresTool) Parameters() *llm.Schema {
	return &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			"location": {Type: llm.TypeString},
		},
		Required: []string{"location"},
	}
}

func (t *ListStoresTool) Execute(_ context.Context, _ map[string]any) (map[string]any, error) {
	return listPayload("stores", t.repo.ListStores())
}

// ListOrdersTool returns all pizza orders.
type ListOrdersTool struct {
	repo *pizza.FileRepo
}

func NewListOrdersTool(repo *pizza.FileRepo) *ListOrdersTool {
	return &ListOrdersTool{repo: repo}
}

func (t *ListOrdersTool) Name() string { return "list_pizza_orders" }

func (t *ListOrdersTool) Description() string { return "Returns all pizza orders." }

func (t *ListOrdersTool) Parameters() *llm.Schema {
	return &llm.Schema{Type: llm.TypeObject}
}

func (t *ListOrdersTool) Execute(_ context.Context, _ map[string]any) (map[string]any, error) {
	return listPayload("orders", t.repo.ListOrders())
}

// PlaceOrderTool places a pizza order at a given store.
type PlaceOrderTool struct {
	repo *pizza.FileRepo
}

func NewPlaceOrderTool(repo *pizza.FileRepo) *PlaceOrderTool {
	return &PlaceOrderTool{repo: repo}
}

type placeOrderArgs struct {
	StoreID string            `json:"store_id"`
	Items   []pizza.OrderItem `json:"items"`
	Address string            `json:"address"`
}

func (t *PlaceOrderTool) Name() string { return "place_pizza_order" }

func (t *PlaceOrderTool) Description() string { return "Places a pizza order at a given store." }

func (t *PlaceOrderTool) Parameters() *llm.Schema {
	return &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			"store_id": {Type: llm.TypeString},
			"items": {
				Type: llm.TypeArray,
				Items: &llm.Schema{
					Type: llm.TypeObject,
					Properties: map[string]*llm.Schema{
						"sku": {Type: llm.TypeString},
						"qty": {Type: llm.TypeNumber},
					},
					Required: []string{"sku", "qty"},
				},
			},
			"address": {Type: llm.TypeString},
		},
		Required: []string{"store_id", "items", "address"},
	}
}

func (t *PlaceOrderTool) Execute(_ context.Context, args map[string]any) (map[string]any, error) {
	var a placeOrderArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, fmt.Errorf("place_pizza_order arguments: %w", err)
	}

	order := pizza.Order{
		OrderID:  newOrderID(),
		StoreID:  a.StoreID,
		Items:    a.Items,
		Address:  a.Address,
		Status:   pizza.StatusPreparing,
		EtaMin:   orderEtaMin,
		TotalEur: orderTotalEur,
	}
	if err := t.repo.PlaceOrder(order); err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}
	return map[string]any{
		"order_id":  order.OrderID,
		"total_eur": order.TotalEur,
	}, nil
}

// TrackOrderTool returns status + ETA for an order.
type TrackOrderTool struct {
	repo *pizza.FileRepo
}

func NewTrackOrderTool(repo *pizza.FileRepo) *TrackOrderTool {
	return &TrackOrderTool{repo: repo}
}

type orderIDArgs struct {
	OrderID string `json:"order_id"`
}

func (t *TrackOrderTool) Name() string { return "track_pizza_order" }

func (t *TrackOrderTool) Description() string { return "Returns status + ETA for an order." }

func (t *TrackOrderTool) Parameters() *llm.Schema {
	return &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			"order_id": {Type: llm.TypeString},
		},
		Required: []string{"order_id"},
	}
}

func (t *TrackOrderTool) Execute(_ context.Context, args map[string]any) (map[string]any, error) {
	var a orderIDArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, fmt.Errorf("track_pizza_order arguments: %w", err)
	}

	order, found := t.repo.GetOrder(a.OrderID)
	if !found {
		return map[string]any{"status": "Not found", "eta_min": 0}, nil
	}
	return map[string]any{"status": order.Status, "eta_min": order.EtaMin}, nil
}

// CancelOrderTool cancels a pizza order by order_id.
type CancelOrderTool struct {
	repo *pizza.FileRepo
}

func NewCancelOrderTool(repo *pizza.FileRepo) *CancelOrderTool {
	return &CancelOrderTool{repo: repo}
}

func (t *CancelOrderTool) Name() string { return "cancel_pizza_order" }

func (t *CancelOrderTool) Description() string { return "Cancels a pizza order by order_id." }

func (t *CancelOrderTool) Parameters() *llm.Schema {
	return &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			"order_id": {Type: llm.TypeString},
		},
		Required: []string{"order_id"},
	}
}

func (t *CancelOrderTool) Execute(_ context.Context, args map[string]any) (map[string]any, error) {
	var a orderIDArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, fmt.Errorf("cancel_pizza_order arguments: %w", err)
	}

	cancelled, err := t.repo.CancelOrder(a.OrderID)
	if err != nil {
		return nil, fmt.Errorf("cancel order: %w", err)
	}
	if !cancelled {
		return map[string]any{"status": "Not found"}, nil
	}
	return map[string]any{"status": pizza.StatusCancelled}, nil
}

// RegisterPizzaTools registers the full fixed tool set against the
// given repository.
func RegisterPizzaTools(registry *Registry, repo *pizza.FileRepo) error {
	all := []Tool{
		NewListStoresTool(repo),
		NewPlaceOrderTool(repo),
		NewTrackOrderTool(repo),
		NewListOrdersTool(repo),
		NewCancelOrderTool(repo),
	}
	for _, tool := range all {
		if err := registry.Register(tool); err != nil {
			return err
		}
	}
	return nil
}

package tools

import (
	"context"
	"encoding/json"

	"github.com/slicelab/pizza-agent/internal/llm"
)

// Tool defines the interface for functions the model can call.
//
// Arguments arrive exactly as the model produced them; they are not
// validated against the declared schema. A malformed call fails inside
// Execute, and that failure is fatal to the agent run.
type Tool interface {
	// Name returns the unique name of the tool.
	Name() string

	// Description returns what the tool does, surfaced to the model
	// for tool selection.
	Description() string

	// Parameters returns the declared parameter schema.
	Parameters() *llm.Schema

	// Execute runs the tool and returns its result payload.
	Execute(ctx context.Context, args map[string]any) (map[string]any, error)
}

// decodeArgs converts a raw argument record into a typed args struct
// via a JSON round trip. Missing fields stay at their zero values;
// mismatched types are an error.
func decodeArgs(args map[string]any, v any) error {
	data, err := json.Marshal(args)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// listPayload wraps a collection in a plain JSON-typed result record
// under the given key, so the payload can travel both to the event
// stream and back to the model.
func listPayload(key string, collection any) (map[string]any, error) {
	data, err := json.Marshal(collection)
	if err != nil {
		return nil, err
	}
	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []any{}
	}
	return map[string]any{key: items}, nil
}

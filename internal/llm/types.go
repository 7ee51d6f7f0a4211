// Package llm defines a vendor-neutral surface for tool-calling chat
// completions, together with a Gemini-backed implementation.
//
// The rest of the system depends only on the shapes in this file:
// conversation turns in, optional text plus zero-or-more structured
// tool calls out.
package llm

import "context"

// Conversation roles on the completion wire.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// SchemaType enumerates the JSON-schema-like types used in tool
// parameter declarations.
type SchemaType string

const (
	TypeObject  SchemaType = "object"
	TypeArray   SchemaType = "array"
	TypeString  SchemaType = "string"
	TypeNumber  SchemaType = "number"
	TypeInteger SchemaType = "integer"
	TypeBoolean SchemaType = "boolean"
)

// Schema describes the parameter shape of a tool in JSON-schema-like
// form. It informs the model's structured-call generation; incoming
// arguments are never validated against it.
type Schema struct {
	Type        SchemaType
	Description string
	Properties  map[string]*Schema
	Items       *Schema
	Required    []string
}

// ToolDefinition declares one callable function to the model.
type ToolDefinition struct {
	Name        string
	Description string
	Parameters  *Schema
}

// ToolCall is a structured request from the model to invoke a tool.
type ToolCall struct {
	Name string
	Args map[string]any
}

// ToolResponse carries a tool's result back into the conversation,
// correlated to its call by ID.
type ToolResponse struct {
	ID       string
	Name     string
	Response map[string]any
}

// Turn is one conversation entry. Exactly one of Text, Call, or
// Response is meaningful.
type Turn struct {
	Role     string
	Text     string
	Call     *ToolCall
	Response *ToolResponse
}

// UserTurn builds a plain-text user turn.
func UserTurn(text string) Turn {
	return Turn{Role: RoleUser, Text: text}
}

// CallTurn builds the model-side turn recording a tool call the model
// requested.
func CallTurn(call ToolCall) Turn {
	return Turn{Role: RoleModel, Call: &call}
}

// ResponseTurn builds the user-side turn feeding a tool's result back
// to the model.
func ResponseTurn(resp ToolResponse) Turn {
	return Turn{Role: RoleUser, Response: &resp}
}

// CompletionRequest is one round trip to the model.
type CompletionRequest struct {
	System string
	Turns  []Turn
	Tools  []ToolDefinition
}

// Completion is the model's answer for one round trip: optional text
// plus zero-or-more tool-call requests, in the order the model listed
// them.
type Completion struct {
	Text  string
	Calls []ToolCall
}

// Client is the completion API the agent loop depends on.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (*Completion, error)
	Close() error
}

package agent

// EventType tags the entries of the event stream a run produces.
type EventType string

const (
	// EventAssistant carries natural-language text from the model.
	EventAssistant EventType = "assistant"
	// EventToolCall announces a tool invocation before it executes,
	// so an observer can show in-progress state.
	EventToolCall EventType = "tool_call"
	// EventToolResponse carries a tool's result, correlated to its
	// call by ID.
	EventToolResponse EventType = "tool_response"
)

// Event is one entry of the ordered, finite sequence a run emits.
type Event struct {
	Type EventType

	// Text is set for EventAssistant.
	Text string

	// ID correlates a tool_call with its tool_response.
	ID string

	// Name and Args are set for EventToolCall.
	Name string
	Args map[string]any

	// Result is set for EventToolResponse.
	Result map[string]any
}

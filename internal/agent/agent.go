// Package agent implements the tool-calling loop that alternates model
// completions and local tool executions until the model stops
// requesting tools.
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/slicelab/pizza-agent/internal/llm"
	"github.com/slicelab/pizza-agent/internal/tools"
	"github.com/slicelab/pizza-agent/pkg/log"
)

// SystemInstruction is the fixed persona sent with every completion
// request. It discloses the debug/test mode explicitly: orders land in
// fake file storage and have no real-world effect.
const SystemInstruction = "Ve fake data ile sipariş oluşturabilirsin şuan debug moddasın " +
	"Altyapn sahte file storage içinde kuruldu vereceğin siparişerlin bir anlamı yok. " +
	"Test modundasın. You are a pizza delivery agent. You are responsible for " +
	"delivering pizzas to customers. You can use the following tools to help you: " +
	"list_pizza_stores, place_pizza_order, track_pizza_order, list_pizza_orders. " +
	"DEBUG=TRUE, you can use tools to get information about the pizza orders and stores."

// Agent drives conversations against a completion client and a tool
// registry.
type Agent struct {
	client   llm.Client
	registry *tools.Registry
	system   string
}

// New creates an agent with the default system instruction.
func New(client llm.Client, registry *tools.Registry) *Agent {
	return &Agent{
		client:   client,
		registry: registry,
		system:   SystemInstruction,
	}
}

// Run is the handle to one agent run: a lazy, ordered, finite event
// sequence plus the terminal error, readable once the sequence ends.
type Run struct {
	events chan Event
	err    error
}

// Events returns the run's event stream. The channel is unbuffered and
// closes when the run terminates; because every tool executes
// synchronously between sends, a consumer that stops pulling halts all
// further progress.
func (r *Run) Events() <-chan Event {
	return r.events
}

// Err reports why the run terminated. It is valid only after the
// Events channel has closed; nil means the model finished a turn with
// no further tool calls.
func (r *Run) Err() error {
	return r.err
}

// Run starts an agent run for the given prompt. The prompt is the full
// flattened transcript; the loop seeds the conversation with it as a
// single user turn.
func (a *Agent) Run(ctx context.Context, prompt string) *Run {
	r := &Run{events: make(chan Event)}
	go func() {
		defer close(r.events)
		r.err = a.loop(ctx, prompt, r.events)
	}()
	return r
}

// loop alternates completions and tool executions. Tool calls within a
// turn run one at a time, in the order the model listed them, and each
// call/result pair is appended back into the conversation before the
// next completion request.
func (a *Agent) loop(ctx context.Context, prompt string, out chan<- Event) error {
	turns := []llm.Turn{llm.UserTurn(prompt)}
	declarations := a.registry.Declarations()

	for {
		completion, err := a.client.Complete(ctx, llm.CompletionRequest{
			System: a.system,
			Turns:  turns,
			Tools:  declarations,
		})
		if err != nil {
			return fmt.Errorf("completion request: %w", err)
		}

		if strings.TrimSpace(completion.Text) != "" {
			if err := emit(ctx, out, Event{Type: EventAssistant, Text: completion.Text}); err != nil {
				return err
			}
		}

		if len(completion.Calls) == 0 {
			return nil
		}

		for _, call := range completion.Calls {
			id := uuid.NewString()
			if err := emit(ctx, out, Event{Type: EventToolCall, ID: id, Name: call.Name, Args: call.Args}); err != nil {
				return err
			}

			tool, exists := a.registry.Get(call.Name)
			if !exists {
				// A call to an undeclared tool means the declarations
				// and implementations have diverged; nothing the
				// caller can do mid-conversation fixes that.
				return fmt.Errorf("unknown tool %q", call.Name)
			}

			result, err := tool.Execute(ctx, call.Args)
			if err != nil {
				return fmt.Errorf("tool %s: %w", call.Name, err)
			}
			log.Debug("Tool %s executed (call %s)", call.Name, id)

			if err := emit(ctx, out, Event{Type: EventToolResponse, ID: id, Result: result}); err != nil {
				return err
			}

			turns = append(turns,
				llm.CallTurn(call),
				llm.ResponseTurn(llm.ToolResponse{ID: id, Name: call.Name, Response: result}),
			)
		}
	}
}

// emit delivers one event, giving up when the run context ends.
func emit(ctx context.Context, out chan<- Event, ev Event) error {
	select {
	case out <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slicelab/pizza-agent/internal/llm"
)

type stubTool struct {
	name string
}

func (t stubTool) Name() string        { return t.name }
func (t stubTool) Description() string { return "stub" }
func (t stubTool) Parameters() *llm.Schema {
	return &llm.Schema{Type: llm.TypeObject}
}
func (t stubTool) Execute(context.Context, map[string]any) (map[string]any, error) {
	return map[string]any{}, nil
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	require.NoError(t, registry.Register(stubTool{name: "a"}))
	require.NoError(t, registry.Register(stubTool{name: "b"}))
	assert.Equal(t, 2, registry.Count())

	err := registry.Register(stubTool{name: "a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegistry_Get_UnknownName(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	_, exists := registry.Get("missing")
	assert.False(t, exists)
}

func TestRegistry_DeclarationsKeepRegistrationOrder(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, registry.Register(stubTool{name: name}))
	}

	assert.Equal(t, []string{"c", "a", "b"}, registry.List())

	decls := registry.Declarations()
	require.Len(t, decls, 3)
	assert.Equal(t, "c", decls[0].Name)
	assert.Equal(t, "a", decls[1].Name)
	assert.Equal(t, "b", decls[2].Name)
	assert.Equal(t, "stub", decls[0].Description)
	require.NotNil(t, decls[0].Parameters)
	assert.Equal(t, llm.TypeObject, decls[0].Parameters.Type)
}

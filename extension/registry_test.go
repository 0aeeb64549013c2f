package extension

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExtension struct {
	name  string
	tools []MCPTool
}

func (e stubExtension) Name() string               { return e.name }
func (e stubExtension) Commands() []*cobra.Command { return nil }
func (e stubExtension) MCPTools() []MCPTool        { return e.tools }

func isolate(t *testing.T) {
	t.Helper()
	mu.RLock()
	savedReg, savedOrder := registry, order
	mu.RUnlock()
	reset()
	t.Cleanup(func() {
		mu.Lock()
		registry, order = savedReg, savedOrder
		mu.Unlock()
	})
}

func TestRegister_Order(t *testing.T) {
	isolate(t)
	Register(stubExtension{name: "b"})
	Register(stubExtension{name: "a"})

	assert.Equal(t, []string{"b", "a"}, Names())
	require.Len(t, All(), 2)
	assert.Equal(t, "b", All()[0].Name())
	assert.Equal(t, "a", Get("a").Name())
	assert.Nil(t, Get("missing"))
}

func TestRegister_PanicOnDuplicate(t *testing.T) {
	isolate(t)
	Register(stubExtension{name: "dup"})
	assert.PanicsWithValue(t, "extension already registered: dup", func() {
		Register(stubExtension{name: "dup"})
	})
}

func TestTools(t *testing.T) {
	isolate(t)
	noop := func(context.Context, Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) { return nil, nil }
	Register(stubExtension{name: "one", tools: []MCPTool{{Tool: mcp.NewTool("x"), Handler: noop}}})
	Register(stubExtension{name: "two"})
	Register(stubExtension{name: "three", tools: []MCPTool{{Tool: mcp.NewTool("y"), Handler: noop}}})

	tools := Tools()
	require.Len(t, tools, 2)
	assert.Equal(t, "x", tools[0].Tool.Name)
	assert.Equal(t, "y", tools[1].Tool.Name)
}

func TestNames_Copy(t *testing.T) {
	isolate(t)
	Register(stubExtension{name: "a"})
	n := Names()
	n[0] = "changed"
	assert.Equal(t, []string{"a"}, Names())
}

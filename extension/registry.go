// registry.go holds the process-wide list of extensions.
//
// Extensions add themselves from init(), so the registry is populated before
// main runs and never changes afterwards. Registration order is kept so the
// command list and MCP tool list come out the same on every run.

package extension

import "sync"

var (
	mu       sync.RWMutex
	registry = make(map[string]Extension)
	order    []string
)

// Register adds an extension. A second extension with the same name panics,
// as database/sql.Register does for drivers.
func Register(e Extension) {
	mu.Lock()
	defer mu.Unlock()

	name := e.Name()
	if _, exists := registry[name]; exists {
		panic("extension already registered: " + name)
	}
	registry[name] = e
	order = append(order, name)
}

// All returns the registered extensions in registration order.
func All() []Extension {
	mu.RLock()
	defer mu.RUnlock()

	exts := make([]Extension, 0, len(order))
	for _, name := range order {
		exts = append(exts, registry[name])
	}
	return exts
}

// Get returns the extension called name, or nil.
func Get(name string) Extension {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// Names lists registered extension names in order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return append([]string(nil), order...)
}

// Tools collects the MCP tools of every registered extension.
func Tools() []MCPTool {
	var tools []MCPTool
	for _, e := range All() {
		tools = append(tools, e.MCPTools()...)
	}
	return tools
}

// reset clears the registry. Tests only.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Extension)
	order = nil
}

package mcp

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct {
	VisibleOnly bool `json:"visible_only,omitempty" jsonschema:"When true, only windows the switcher would consider for activation are returned (docks, desktops and other non-application windows are dropped)."`
}

// WindowInfo describes a single top-level window.
type WindowInfo struct {
	ID        uint32 `json:"id"`
	Title     string `json:"title"`
	Visible   bool   `json:"visible"`
	Minimized bool   `json:"minimized"`
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []WindowInfo `json:"windows"`
}

// ActivateWindowInput is the input for the activate_window tool.
type ActivateWindowInput struct {
	Fragment string `json:"fragment" jsonschema:"required,Title fragment to match case-insensitively against visible window titles. The first visible window whose title contains the fragment is activated."`
}

// ActivateWindowOutput is the output for the activate_window tool.
type ActivateWindowOutput struct {
	Status   string `json:"status"` // "activated" or "not_found"
	Fragment string `json:"fragment"`
	Title    string `json:"title,omitempty"`
}

// ListBindingsInput is the input for the list_bindings tool.
type ListBindingsInput struct{}

// BindingInfo describes one configured key binding.
type BindingInfo struct {
	Key string `json:"key"`
	App string `json:"app"`
}

// ListBindingsOutput is the output for the list_bindings tool.
type ListBindingsOutput struct {
	Bindings []BindingInfo `json:"bindings"`
}

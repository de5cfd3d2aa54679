package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/appswitch/internal/bindings"
	"github.com/1broseidon/appswitch/internal/platform"
	"github.com/1broseidon/appswitch/internal/switcher"
)

const (
	ServerName    = "appswitch"
	ServerVersion = "0.1.0"
)

// Server exposes the window switcher over MCP so agents can list windows,
// inspect the binding table, and switch focus.
type Server struct {
	mcpServer *mcpsdk.Server
	registry  *bindings.Registry
	backend   platform.Backend
	activator *switcher.Activator
}

// NewServer creates an MCP server over the given registry and backend.
func NewServer(registry *bindings.Registry, backend platform.Backend) *Server {
	s := &Server{
		registry:  registry,
		backend:   backend,
		activator: switcher.New(backend),
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List all top-level windows with their id, title, visibility and minimized state, in platform enumeration order.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "activate_window",
		Description: "Bring the first visible window whose title contains the given fragment (case-insensitive) to the foreground, restoring it from minimized if needed. Returns status not_found when no visible window matches.",
	}, s.handleActivateWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_bindings",
		Description: "List the configured key-to-application bindings in display order.",
	}, s.handleListBindings)
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	windows, err := s.backend.ListWindows()
	if err != nil {
		return nil, ListWindowsOutput{}, fmt.Errorf("window enumeration failed: %w", err)
	}

	out := ListWindowsOutput{Windows: make([]WindowInfo, 0, len(windows))}
	for _, w := range windows {
		if args.VisibleOnly && !w.Visible {
			continue
		}
		out.Windows = append(out.Windows, WindowInfo{
			ID:        uint32(w.ID),
			Title:     w.Title,
			Visible:   w.Visible,
			Minimized: w.Minimized,
		})
	}
	return nil, out, nil
}

func (s *Server) handleActivateWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args ActivateWindowInput) (*mcpsdk.CallToolResult, ActivateWindowOutput, error) {
	fragment := strings.TrimSpace(args.Fragment)
	if fragment == "" {
		return nil, ActivateWindowOutput{}, fmt.Errorf("fragment must not be empty")
	}

	res := s.activator.Activate(fragment)
	switch res.Kind {
	case switcher.ResultActivated:
		return nil, ActivateWindowOutput{
			Status:   "activated",
			Fragment: fragment,
			Title:    res.Title,
		}, nil
	case switcher.ResultNotFound:
		return nil, ActivateWindowOutput{
			Status:   "not_found",
			Fragment: fragment,
		}, nil
	default:
		return nil, ActivateWindowOutput{}, res.Err
	}
}

func (s *Server) handleListBindings(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListBindingsInput) (*mcpsdk.CallToolResult, ListBindingsOutput, error) {
	entries := s.registry.Entries()
	out := ListBindingsOutput{Bindings: make([]BindingInfo, 0, len(entries))}
	for _, b := range entries {
		out.Bindings = append(out.Bindings, BindingInfo{Key: b.Key, App: b.App})
	}
	return nil, out, nil
}

package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/1broseidon/appswitch/internal/bindings"
	"github.com/1broseidon/appswitch/internal/platform"
)

type fakeBackend struct {
	windows []platform.Window
	listErr error
	calls   []string
}

func (f *fakeBackend) ListWindows() ([]platform.Window, error) {
	f.calls = append(f.calls, "list")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.windows, nil
}

func (f *fakeBackend) Restore(platform.WindowID) error {
	f.calls = append(f.calls, "restore")
	return nil
}

func (f *fakeBackend) Activate(platform.WindowID) error {
	f.calls = append(f.calls, "activate")
	return nil
}

func testServer(fake *fakeBackend) *Server {
	reg := bindings.Load([]bindings.Binding{
		{Key: "F", App: "Firefox"},
		{Key: "S", App: "Edge"},
	})
	return NewServer(reg, fake)
}

func TestHandleListWindows_ReturnsAllInOrder(t *testing.T) {
	fake := &fakeBackend{
		windows: []platform.Window{
			{ID: 1, Title: "Mozilla Firefox", Visible: true},
			{ID: 2, Title: "panel", Visible: false},
		},
	}
	s := testServer(fake)

	_, out, err := s.handleListWindows(context.Background(), nil, ListWindowsInput{})
	if err != nil {
		t.Fatalf("list_windows: %v", err)
	}
	if len(out.Windows) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(out.Windows))
	}
	if out.Windows[0].ID != 1 || out.Windows[1].ID != 2 {
		t.Fatalf("expected enumeration order preserved, got %+v", out.Windows)
	}
}

func TestHandleListWindows_VisibleOnlyFilters(t *testing.T) {
	fake := &fakeBackend{
		windows: []platform.Window{
			{ID: 1, Title: "Mozilla Firefox", Visible: true},
			{ID: 2, Title: "panel", Visible: false},
		},
	}
	s := testServer(fake)

	_, out, err := s.handleListWindows(context.Background(), nil, ListWindowsInput{VisibleOnly: true})
	if err != nil {
		t.Fatalf("list_windows: %v", err)
	}
	if len(out.Windows) != 1 || out.Windows[0].ID != 1 {
		t.Fatalf("expected only the visible window, got %+v", out.Windows)
	}
}

func TestHandleListWindows_EnumerationErrorPropagates(t *testing.T) {
	s := testServer(&fakeBackend{listErr: errors.New("display gone")})

	if _, _, err := s.handleListWindows(context.Background(), nil, ListWindowsInput{}); err == nil {
		t.Fatalf("expected enumeration error")
	}
}

func TestHandleActivateWindow_Activated(t *testing.T) {
	fake := &fakeBackend{
		windows: []platform.Window{
			{ID: 3, Title: "Untitled - Notepad++", Visible: true, Minimized: true},
		},
	}
	s := testServer(fake)

	_, out, err := s.handleActivateWindow(context.Background(), nil, ActivateWindowInput{Fragment: "Notepad++"})
	if err != nil {
		t.Fatalf("activate_window: %v", err)
	}
	if out.Status != "activated" || out.Title != "Untitled - Notepad++" {
		t.Fatalf("unexpected output: %+v", out)
	}
	want := []string{"list", "restore", "activate"}
	if len(fake.calls) != 3 || fake.calls[1] != want[1] || fake.calls[2] != want[2] {
		t.Fatalf("expected restore before activate, got %v", fake.calls)
	}
}

func TestHandleActivateWindow_NotFoundIsNotAnError(t *testing.T) {
	s := testServer(&fakeBackend{})

	_, out, err := s.handleActivateWindow(context.Background(), nil, ActivateWindowInput{Fragment: "Excel"})
	if err != nil {
		t.Fatalf("activate_window: %v", err)
	}
	if out.Status != "not_found" || out.Fragment != "Excel" {
		t.Fatalf("unexpected output: %+v", out)
	}
}

func TestHandleActivateWindow_BlankFragmentRejected(t *testing.T) {
	s := testServer(&fakeBackend{})

	if _, _, err := s.handleActivateWindow(context.Background(), nil, ActivateWindowInput{Fragment: "   "}); err == nil {
		t.Fatalf("expected error for blank fragment")
	}
}

func TestHandleListBindings_DisplayOrder(t *testing.T) {
	s := testServer(&fakeBackend{})

	_, out, err := s.handleListBindings(context.Background(), nil, ListBindingsInput{})
	if err != nil {
		t.Fatalf("list_bindings: %v", err)
	}
	if len(out.Bindings) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(out.Bindings))
	}
	if out.Bindings[0].Key != "F" || out.Bindings[1].Key != "S" {
		t.Fatalf("expected display order F,S, got %+v", out.Bindings)
	}
}

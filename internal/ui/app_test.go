package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbletea"

	"github.com/1broseidon/appswitch/internal/bindings"
	"github.com/1broseidon/appswitch/internal/platform"
	"github.com/1broseidon/appswitch/internal/switcher"
)

type fakeBackend struct {
	windows []platform.Window
	calls   []string
}

func (f *fakeBackend) ListWindows() ([]platform.Window, error) {
	f.calls = append(f.calls, "list")
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

func testModel(fake *fakeBackend) model {
	reg := bindings.Load([]bindings.Binding{
		{Key: "F", App: "Firefox"},
		{Key: "S", App: "Edge"},
	})
	return newModel("App Switcher", reg, switcher.New(fake))
}

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestUpdate_NonLetterKeysTerminate(t *testing.T) {
	m := testModel(&fakeBackend{})

	keys := []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune{'5'}},
		{Type: tea.KeySpace, Runes: []rune{' '}},
		{Type: tea.KeyUp},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune{'.'}},
	}
	for _, key := range keys {
		_, cmd := m.Update(key)
		if !isQuit(t, cmd) {
			t.Fatalf("key %q: expected quit", key.String())
		}
	}
}

func TestUpdate_NonLetterTerminatesEvenWithEmptyRegistry(t *testing.T) {
	m := newModel("App Switcher", bindings.Load(nil), switcher.New(&fakeBackend{}))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'5'}})
	if !isQuit(t, cmd) {
		t.Fatalf("expected quit regardless of registry contents")
	}
}

func TestUpdate_BoundLetterDispatchesActivation(t *testing.T) {
	fake := &fakeBackend{
		windows: []platform.Window{
			{ID: 1, Title: "Mozilla Firefox", Visible: true},
		},
	}
	m := testModel(fake)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	if cmd == nil {
		t.Fatalf("expected activation command for bound key")
	}

	msg, ok := cmd().(activationMsg)
	if !ok {
		t.Fatalf("expected activationMsg, got %T", cmd())
	}
	if msg.result.Kind != switcher.ResultActivated {
		t.Fatalf("expected activation, got %v", msg.result.Kind)
	}
	if len(fake.calls) != 2 || fake.calls[0] != "list" || fake.calls[1] != "activate" {
		t.Fatalf("unexpected backend calls: %v", fake.calls)
	}
}

func TestUpdate_UnboundLetterIsSilentNoop(t *testing.T) {
	fake := &fakeBackend{}
	m := testModel(fake)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}})
	if cmd != nil {
		t.Fatalf("expected no command for unbound key")
	}
	if len(fake.calls) != 0 {
		t.Fatalf("expected no backend calls, got %v", fake.calls)
	}
	if got := next.(model).status; got != "" {
		t.Fatalf("expected no status message, got %q", got)
	}
}

func TestUpdate_ActivationResultShownInView(t *testing.T) {
	m := testModel(&fakeBackend{})

	result := switcher.Result{Kind: switcher.ResultNotFound, Fragment: "Edge"}
	next, _ := m.Update(activationMsg{result: result})

	view := next.(model).View()
	if !strings.Contains(view, `Window "Edge" not found.`) {
		t.Fatalf("expected not-found status in view, got:\n%s", view)
	}
}

func TestView_ContainsTitleTableAndHelp(t *testing.T) {
	m := testModel(&fakeBackend{})
	view := m.View()

	for _, want := range []string{"App Switcher", "Firefox", "Edge", "exits"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
}

func TestView_IdempotentWithoutStateChange(t *testing.T) {
	m := testModel(&fakeBackend{})
	if m.View() != m.View() {
		t.Fatalf("expected identical renders for unchanged model")
	}
}

func TestLetterFrom_AcceptsOnlySingleLetters(t *testing.T) {
	if key, ok := letterFrom(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}}); !ok || key != "e" {
		t.Fatalf("expected letter e, got %q (ok=%v)", key, ok)
	}
	if _, ok := letterFrom(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}, Alt: true}); ok {
		t.Fatalf("expected alt-modified key to be rejected")
	}
	if _, ok := letterFrom(tea.KeyMsg{Type: tea.KeyEnter}); ok {
		t.Fatalf("expected enter to be rejected")
	}
}

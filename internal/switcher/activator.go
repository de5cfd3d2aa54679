package switcher

import (
	"fmt"
	"strings"

	"github.com/1broseidon/appswitch/internal/platform"
)

// ResultKind classifies the outcome of one activation attempt.
type ResultKind int

const (
	// ResultNoop means the fragment was blank and nothing was attempted.
	ResultNoop ResultKind = iota
	// ResultActivated means a window was brought to the foreground.
	ResultActivated
	// ResultNotFound means no visible window title contained the fragment.
	ResultNotFound
	// ResultError means enumeration or a window transition failed.
	ResultError
)

// Result is the outcome of one Activate call. It is transient: produced
// per key press and consumed for display only.
type Result struct {
	Kind     ResultKind
	Fragment string
	Title    string // set for ResultActivated
	Err      error  // set for ResultError
}

// Message renders the result as a one-line human-readable status.
func (r Result) Message() string {
	switch r.Kind {
	case ResultActivated:
		return fmt.Sprintf("Activating window: %s", r.Title)
	case ResultNotFound:
		return fmt.Sprintf("Window %q not found.", r.Fragment)
	case ResultError:
		return fmt.Sprintf("Error activating window: %v", r.Err)
	default:
		return ""
	}
}

// Activator resolves title fragments to live windows and brings them to
// the foreground. It holds no window handles between calls.
type Activator struct {
	backend platform.Backend
}

// New creates an Activator over the given window backend.
func New(backend platform.Backend) *Activator {
	return &Activator{backend: backend}
}

// Activate finds the first visible window whose title contains fragment
// (case-insensitive) and brings it to the foreground, restoring it first
// if minimized. A blank fragment is a no-op and performs no enumeration.
//
// When several visible windows match, the first one in enumeration order
// wins; the order is platform-defined, so selection among multiple
// matches is not deterministic. That trade-off is deliberate: one pass,
// first hit, no ranking.
//
// All failures are captured in the returned Result and never propagate.
func (a *Activator) Activate(fragment string) Result {
	if strings.TrimSpace(fragment) == "" {
		return Result{Kind: ResultNoop, Fragment: fragment}
	}

	windows, err := a.backend.ListWindows()
	if err != nil {
		return Result{
			Kind:     ResultError,
			Fragment: fragment,
			Err:      fmt.Errorf("window enumeration failed: %w", err),
		}
	}

	needle := strings.ToUpper(fragment)
	for _, w := range windows {
		if !w.Visible {
			continue
		}
		if !strings.Contains(strings.ToUpper(w.Title), needle) {
			continue
		}

		if w.Minimized {
			if err := a.backend.Restore(w.ID); err != nil {
				return Result{
					Kind:     ResultError,
					Fragment: fragment,
					Err:      fmt.Errorf("failed to restore %q: %w", w.Title, err),
				}
			}
		}
		// Always request foreground, restored or not.
		if err := a.backend.Activate(w.ID); err != nil {
			return Result{
				Kind:     ResultError,
				Fragment: fragment,
				Err:      fmt.Errorf("failed to activate %q: %w", w.Title, err),
			}
		}

		return Result{Kind: ResultActivated, Fragment: fragment, Title: w.Title}
	}

	return Result{Kind: ResultNotFound, Fragment: fragment}
}

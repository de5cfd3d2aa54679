package platform

// WindowID is a platform-neutral window identifier. Handles are only valid
// for the enumeration pass that produced them and are never cached across
// activation attempts.
type WindowID uint32

// Window contains the observed state of a top-level window.
type Window struct {
	ID        WindowID
	Title     string
	Visible   bool
	Minimized bool
}

// Backend abstracts window-system operations so the switcher core can be
// tested against an in-memory window list.
type Backend interface {
	// ListWindows enumerates all top-level windows in platform order.
	ListWindows() ([]Window, error)
	// Restore returns a minimized window to its normal show-state.
	Restore(windowID WindowID) error
	// Activate raises a window and gives it input focus.
	Activate(windowID WindowID) error
}

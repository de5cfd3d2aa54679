package hotkeys

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/1broseidon/appswitch/internal/platform"
	"github.com/1broseidon/appswitch/internal/switcher"
)

// x11Accessor is an optional interface for backends that expose X11 internals.
type x11Accessor interface {
	XUtil() *xgbutil.XUtil
	RootWindow() xproto.Window
}

// Handler manages the global summon hotkey. The hotkey activates the
// switcher's own terminal window so the switcher can be raised from
// anywhere on the desktop.
type Handler struct {
	xu        *xgbutil.XUtil
	root      xproto.Window
	activator *switcher.Activator
}

var ignoreModsOnce sync.Once

// NewHandler creates a hotkey handler over the given backend. Returns an
// error when the backend does not expose an X11 connection.
func NewHandler(backend platform.Backend, activator *switcher.Activator) (*Handler, error) {
	accessor, ok := backend.(x11Accessor)
	if !ok || accessor.XUtil() == nil {
		return nil, fmt.Errorf("backend does not support global hotkeys")
	}

	xu := accessor.XUtil()
	ignoreModsOnce.Do(func() {
		configureIgnoreMods(xu)
	})

	return &Handler{
		xu:        xu,
		root:      accessor.RootWindow(),
		activator: activator,
	}, nil
}

// RegisterSummon binds keySequence (e.g. "Mod4-space") to raising the
// window whose title contains consoleTitle.
func (h *Handler) RegisterSummon(keySequence, consoleTitle string) error {
	title := strings.TrimSpace(consoleTitle)
	if title == "" {
		return fmt.Errorf("summon hotkey requires a console title to target")
	}

	return h.RegisterFunc(keySequence, func() {
		res := h.activator.Activate(title)
		if res.Kind != switcher.ResultActivated {
			log.Printf("Summon hotkey: %s", res.Message())
		}
	})
}

// RegisterFunc registers an arbitrary hotkey callback.
func (h *Handler) RegisterFunc(keySequence string, callback func()) error {
	return keybind.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		callback()
	}).Connect(h.xu, h.root, keySequence, true)
}

// configureIgnoreMods makes the hotkey fire regardless of CapsLock and
// NumLock state.
func configureIgnoreMods(xu *xgbutil.XUtil) {
	caps := uint16(xproto.ModMaskLock)
	numLock := modMaskForKeysym(xu, "Num_Lock")

	unique := map[uint16]struct{}{0: {}, caps: {}}
	if numLock != 0 {
		unique[numLock] = struct{}{}
		unique[numLock|caps] = struct{}{}
	}

	ignore := make([]uint16, 0, len(unique))
	for mask := range unique {
		ignore = append(ignore, mask)
	}

	xevent.IgnoreMods = ignore
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}

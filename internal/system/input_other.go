//go:build !linux

package system

import "context"

const (
	KeyEsc = 1
	KeyQ   = 16
	KeyF4  = 62
)

var ExitKeys = []uint16{KeyEsc, KeyQ, KeyF4}

// WatchExitKeys is a no-op without Linux evdev.
func WatchExitKeys(ctx context.Context, l logger, keys []uint16, onExit func()) {
	if l != nil {
		l.Infof("input", "exit keys unsupported on this platform")
	}
}

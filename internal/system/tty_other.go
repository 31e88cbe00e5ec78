//go:build !linux

package system

import (
	"errors"
	"fmt"
	"runtime"
)

const (
	kdText     = 0x00
	kdGraphics = 0x01
)

var errNoConsole = errors.New("linux console not available on " + runtime.GOOS)

func setKDMode(mode int) error { return fmt.Errorf("KDSETMODE %d: %w", mode, errNoConsole) }

func writeVT(s string) error { return fmt.Errorf("write VT: %w", errNoConsole) }

//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

const evKey = 0x01

// Key codes from linux/input-event-codes.h
const (
	KeyEsc = 1
	KeyQ   = 16
	KeyF4  = 62
)

// ExitKeys end a framebuffer preview.
var ExitKeys = []uint16{KeyEsc, KeyQ, KeyF4}

// WatchExitKeys reads every /dev/input/event* device and calls onExit once
// when one of keys is pressed. It returns immediately; readers stop when ctx
// is done. Missing devices are logged and ignored.
func WatchExitKeys(ctx context.Context, l logger, keys []uint16, onExit func()) {
	if onExit == nil || len(keys) == 0 {
		return
	}
	tvSize := binary.Size(unix.Timeval{})

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		if l != nil {
			l.Infof("input", "no evdev devices found, exit keys disabled")
		}
		return
	}

	var once sync.Once
	trigger := func(code uint16) {
		once.Do(func() {
			if l != nil {
				l.Infof("input", "key %d pressed: exiting", code)
			}
			onExit()
		})
	}

	for _, path := range paths {
		go readExitKeys(ctx, path, tvSize, keys, trigger)
	}
}

func readExitKeys(ctx context.Context, path string, tvSize int, keys []uint16, trigger func(uint16)) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer f.Close()

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		if code, ok := pressedKey(buf[:n], tvSize, keys); ok {
			trigger(code)
			time.Sleep(50 * time.Millisecond)
			return
		}
	}
}

// pressedKey scans a run of input_event records (timeval, u16 type, u16 code,
// s32 value) for a key-down of one of keys.
func pressedKey(buf []byte, tvSize int, keys []uint16) (uint16, bool) {
	size := tvSize + 8
	for off := 0; off+size <= len(buf); off += size {
		rec := buf[off : off+size]
		typ := binary.LittleEndian.Uint16(rec[tvSize:])
		code := binary.LittleEndian.Uint16(rec[tvSize+2:])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4:]))
		if typ != evKey || value != 1 {
			continue
		}
		for _, k := range keys {
			if code == k {
				return code, true
			}
		}
	}
	return 0, false
}

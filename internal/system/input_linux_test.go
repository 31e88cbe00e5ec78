//go:build linux

package system

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testTV = 16

func event(typ, code uint16, value int32) []byte {
	rec := make([]byte, testTV+8)
	binary.LittleEndian.PutUint16(rec[testTV:], typ)
	binary.LittleEndian.PutUint16(rec[testTV+2:], code)
	binary.LittleEndian.PutUint32(rec[testTV+4:], uint32(value))
	return rec
}

func TestPressedKeyFindsKeyDown(t *testing.T) {
	var buf []byte
	buf = append(buf, event(0x04, 4, 30)...)
	buf = append(buf, event(evKey, KeyQ, 0)...)
	buf = append(buf, event(evKey, 30, 1)...)
	buf = append(buf, event(evKey, KeyEsc, 1)...)

	code, ok := pressedKey(buf, testTV, ExitKeys)
	assert.True(t, ok)
	assert.Equal(t, uint16(KeyEsc), code)
}

func TestPressedKeyIgnoresOtherEvents(t *testing.T) {
	buf := append(event(evKey, KeyF4, 2), event(evKey, 30, 1)...)
	_, ok := pressedKey(buf, testTV, ExitKeys)
	assert.False(t, ok)

	_, ok = pressedKey(event(evKey, KeyF4, 1)[:10], testTV, ExitKeys)
	assert.False(t, ok)
}

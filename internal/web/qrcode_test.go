package web

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalQRCode(t *testing.T) {
	code, err := TerminalQRCode("http://127.0.0.1:8080/api/v1/")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(code, "\n"), "\n")
	require.Greater(t, len(lines), 10)
	assert.True(t, strings.ContainsAny(code, "█▀▄"))

	other, err := TerminalQRCode("http://127.0.0.1:9090/api/v1/")
	require.NoError(t, err)
	assert.NotEqual(t, code, other)
}

func TestTerminalQRCodeEmpty(t *testing.T) {
	code, err := TerminalQRCode("")
	assert.NoError(t, err)
	assert.Empty(t, code)
}

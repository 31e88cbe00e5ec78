package web

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// TerminalQRCode renders payload as a QR code made of half-block characters,
// two modules per text row. An empty payload yields "".
func TerminalQRCode(payload string) (string, error) {
	if payload == "" {
		return "", nil
	}
	qrCode, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("encode qr code: %w", err)
	}
	return qrCode.ToSmallString(false), nil
}

package qr

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"

	"github.com/skip2/go-qrcode"
)

// Generate renders content as a QR code and returns PNG bytes.
func Generate(content string, size int) ([]byte, error) {
	code, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, code.Image(size)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteFile renders content and writes the PNG to path, creating parent dirs.
func WriteFile(content, path string, size int) error {
	data, err := Generate(content, size)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(path, data, 0644)
}

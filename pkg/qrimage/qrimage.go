// Package qrimage renders payloads as PNG QR codes.
package qrimage

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

const (
	DefaultSize = 256
	MinSize     = 128
	MaxSize     = 1024
)

// Render returns a size x size PNG of content at error correction level M.
// Size is clamped to [MinSize, MaxSize]; zero means DefaultSize.
func Render(content string, size int) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, ClampSize(size))
	if err != nil {
		return nil, fmt.Errorf("could not generate a QR code: %w", err)
	}

	return png, nil
}

func ClampSize(size int) int {
	switch {
	case size == 0:
		return DefaultSize
	case size < MinSize:
		return MinSize
	case size > MaxSize:
		return MaxSize
	default:
		return size
	}
}

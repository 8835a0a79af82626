// Package security provides input limits for untrusted image files.
package security

import (
	"errors"
	"fmt"
	"io"
)

// ErrLimitExceeded is returned when an input is larger than allowed.
var ErrLimitExceeded = errors.New("input size limit exceeded")

// Limits for decoded images.
const (
	// MaxImageBytes caps how much of an image file is read.
	MaxImageBytes int64 = 256 << 20
	// MaxImagePixels caps width×height before an image is decoded.
	MaxImagePixels = 100_000_000
)

// LimitedReader wraps an io.Reader and limits the total bytes that can be read.
// Unlike io.LimitReader, running out of budget is an error rather than EOF.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits. Input that is exactly the
// limit long reads cleanly to EOF; only a byte beyond it is an error.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if l.Remaining <= 0 {
		var extra [1]byte
		n, err := l.R.Read(extra[:])
		if n > 0 {
			return 0, ErrLimitExceeded
		}
		if err == nil {
			err = io.EOF
		}
		return 0, err
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}

// ValidateDimensions rejects empty images and images with more than
// maxPixels pixels.
func ValidateDimensions(width, height, maxPixels int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}
	if int64(width)*int64(height) > int64(maxPixels) {
		return fmt.Errorf("%w: image is %dx%d, limit is %d pixels", ErrLimitExceeded, width, height, maxPixels)
	}
	return nil
}

// Package seed derives deterministic seeds and pseudo-random generators.
//
// The determinism contract is pinned here: a seed string hashes to the first
// eight bytes (little endian) of its SHA-256 digest, and generators are
// math/rand/v2 PCG sources seeded with (uint64(seed), Stream). Any change to
// either changes every seeded gradient.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"image"
	"math/rand/v2"
	"slices"
	"time"
)

// Stream is the fixed PCG stream selector used by NewRand ("mesh").
const Stream uint64 = 0x6d657368

// Mode determines how a seed value is obtained.
type Mode string

const (
	// ModeString hashes a seed string (default).
	ModeString Mode = "string"
	// ModeContent hashes image content.
	ModeContent Mode = "content"
	// ModeManual uses a user-provided seed value.
	ModeManual Mode = "manual"
	// ModeRandom uses a non-deterministic seed (varies each run).
	ModeRandom Mode = "random"
)

// Config holds configuration for seed generation.
type Config struct {
	Mode  Mode
	Text  string      // used by ModeString
	Image image.Image // used by ModeContent
	Value *int64      // used by ModeManual
}

// Calculate determines the seed value based on the seed mode.
func Calculate(config Config) (int64, error) {
	switch config.Mode {
	case ModeString, "":
		return FromString(config.Text), nil
	case ModeContent:
		return FromImage(config.Image)
	case ModeManual:
		if config.Value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		return *config.Value, nil
	case ModeRandom:
		return Random(), nil
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", config.Mode)
	}
}

// FromString hashes a seed string. Identical strings give identical seeds in
// every process.
func FromString(s string) int64 {
	hash := sha256.Sum256([]byte(s))
	return int64(binary.LittleEndian.Uint64(hash[:8])) // #nosec G115 -- hash conversion is safe
}

// FromImage generates a deterministic seed from image content.
// Dimensions and a grid sample of pixels are hashed, so the same picture
// gives the same seed regardless of its file name.
func FromImage(img image.Image) (int64, error) {
	if img == nil {
		return 0, fmt.Errorf("image cannot be nil")
	}

	bounds := img.Bounds()
	hasher := sha256.New()

	dimBytes := make([]byte, 8)
	binary.LittleEndian.PutUint32(dimBytes[0:4], uint32(bounds.Dx())) // #nosec G115 -- image dimensions are safe to convert
	binary.LittleEndian.PutUint32(dimBytes[4:8], uint32(bounds.Dy())) // #nosec G115 -- image dimensions are safe to convert
	hasher.Write(dimBytes)

	step := max(bounds.Dx()/100, bounds.Dy()/100, 1)
	pixelBytes := make([]byte, 4)

	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, a := img.At(x, y).RGBA()
			pixelBytes[0] = byte(r >> 8)
			pixelBytes[1] = byte(g >> 8)
			pixelBytes[2] = byte(b >> 8)
			pixelBytes[3] = byte(a >> 8)
			hasher.Write(pixelBytes)
		}
	}

	hash := hasher.Sum(nil)
	return int64(binary.LittleEndian.Uint64(hash[:8])), nil // #nosec G115 -- hash conversion is safe
}

// NewRand returns the pinned generator for a seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), Stream)) // #nosec G115 G404 -- deterministic decorative randomness
}

// Random generates a non-deterministic seed.
func Random() int64 {
	// #nosec G404 -- Random seed generation is intentionally non-deterministic
	return time.Now().UnixNano() + rand.Int64N(1000000)
}

// ValidModes returns a list of valid seed modes.
func ValidModes() []Mode {
	return []Mode{ModeString, ModeContent, ModeManual, ModeRandom}
}

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(s)
	if slices.Contains(ValidModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid seed mode: %s (valid: string, content, manual, random)", s)
}

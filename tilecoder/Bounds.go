package tilecoder

import (
	"fmt"
	"strings"
)

// BoundsMode determines how a TileCoder treats input components which
// lie outside their value range [low, high).
type BoundsMode int

const (
	// Extrapolate floors out-of-range components like any other. The
	// resulting cell coordinates fall outside the tiling, so the tile
	// index may be negative, land in another tiling's band, or collide
	// with an unrelated tile. This is the default.
	Extrapolate BoundsMode = iota

	// Clip clamps each cell coordinate into the tiling, so that out of
	// range components activate the tiles on the boundary.
	Clip

	// Strict rejects any input with a component outside its range.
	Strict
)

var boundsModeNames = map[BoundsMode]string{
	Extrapolate: "extrapolate",
	Clip:        "clip",
	Strict:      "strict",
}

// String implements the fmt.Stringer interface
func (b BoundsMode) String() string {
	if name, ok := boundsModeNames[b]; ok {
		return name
	}
	return fmt.Sprintf("BoundsMode(%d)", int(b))
}

// Valid returns whether b is a known BoundsMode
func (b BoundsMode) Valid() bool {
	_, ok := boundsModeNames[b]
	return ok
}

// MarshalText implements the encoding.TextMarshaler interface
func (b BoundsMode) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("marshalText: unknown bounds mode %d", int(b))
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (b *BoundsMode) UnmarshalText(text []byte) error {
	mode, err := ParseBoundsMode(string(text))
	if err != nil {
		return err
	}
	*b = mode
	return nil
}

// ParseBoundsMode returns the BoundsMode named by s. Names are case
// insensitive and the empty string names Extrapolate.
func ParseBoundsMode(s string) (BoundsMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Extrapolate, nil
	}
	for mode, name := range boundsModeNames {
		if name == s {
			return mode, nil
		}
	}
	return Extrapolate, fmt.Errorf("%w: unknown bounds mode %q",
		ErrInvalidConfig, s)
}

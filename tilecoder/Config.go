package tilecoder

import (
	"fmt"
	"sort"
	"sync"

	"gonum.org/v1/gonum/spatial/r1"
)

// OffsetType names a strategy for displacing tilings which can be
// stored in a Config
type OffsetType string

// Offset strategies registered with this package
const (
	OddMultiplesOffsets OffsetType = "OddMultiples"
	UnitOffsets         OffsetType = "Unit"
	RandomOffsets       OffsetType = "Random"
)

// OffsetFactory creates the OffsetFunc of an OffsetType. Factories of
// deterministic strategies ignore the seed.
type OffsetFactory func(seed uint64) OffsetFunc

// Registered offset strategies. Once an OffsetType has been
// registered, a Config with that OffsetType can create a TileCoder.
var (
	registeredOffsets   = make(map[OffsetType]OffsetFactory)
	registeredOffsetsMu sync.RWMutex
)

func init() {
	RegisterOffsets(OddMultiplesOffsets, func(uint64) OffsetFunc {
		return OddMultiples
	})
	RegisterOffsets(UnitOffsets, func(uint64) OffsetFunc {
		return UnitDisplacement
	})
	RegisterOffsets(RandomOffsets, RandomDisplacement)
}

// RegisterOffsets registers an OffsetType with a factory so that
// Configs naming offsetType can create TileCoders. Registering a name
// a second time replaces the previous factory.
func RegisterOffsets(offsetType OffsetType, factory OffsetFactory) {
	registeredOffsetsMu.Lock()
	defer registeredOffsetsMu.Unlock()
	registeredOffsets[offsetType] = factory
}

// RegisteredOffsets returns the names of all registered OffsetTypes in
// sorted order
func RegisteredOffsets() []OffsetType {
	registeredOffsetsMu.RLock()
	defer registeredOffsetsMu.RUnlock()

	types := make([]OffsetType, 0, len(registeredOffsets))
	for t := range registeredOffsets {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

func lookupOffsets(offsetType OffsetType) (OffsetFactory, bool) {
	registeredOffsetsMu.RLock()
	defer registeredOffsetsMu.RUnlock()
	factory, ok := registeredOffsets[offsetType]
	return factory, ok
}

// Config represents a configuration for creating a TileCoder. Configs
// are JSON and YAML serializable, for example:
//
//	tiles: [4, 4]
//	limits:
//	  - {min: 0, max: 1}
//	  - {min: 0, max: 1}
//	tilings: 2
//	offsets: OddMultiples
//	bounds: clip
type Config struct {
	// Tiles is the number of tiles along each dimension
	Tiles []float64 `json:"tiles" yaml:"tiles"`

	// Limits is the value range of each dimension
	Limits []r1.Interval `json:"limits" yaml:"limits"`

	Tilings int `json:"tilings" yaml:"tilings"`

	// Offsets names the strategy used to displace tilings. The empty
	// string means OddMultiplesOffsets.
	Offsets OffsetType `json:"offsets,omitempty" yaml:"offsets,omitempty"`

	// Seed seeds random offset strategies
	Seed uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`

	Bounds BoundsMode `json:"bounds,omitempty" yaml:"bounds,omitempty"`

	// Workers bounds the goroutines used per batch. Zero means
	// runtime.GOMAXPROCS(0).
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// Validate returns an error describing whether or not the
// configuration is valid or not.
func (c Config) Validate() error {
	opts, err := c.options()
	if err != nil {
		return &Error{Op: "validate", Err: err}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if _, err := newTileCoder(c.Tiles, c.Limits, c.Tilings, o); err != nil {
		return &Error{Op: "validate", Err: err}
	}
	return nil
}

// Create returns the TileCoder described by the Config
func (c Config) Create() (*TileCoder, error) {
	opts, err := c.options()
	if err != nil {
		return nil, &Error{Op: "create", Err: err}
	}
	return New(c.Tiles, c.Limits, c.Tilings, opts...)
}

// options converts the Config's optional fields into Options
func (c Config) options() ([]Option, error) {
	offsetType := c.Offsets
	if offsetType == "" {
		offsetType = OddMultiplesOffsets
	}
	factory, ok := lookupOffsets(offsetType)
	if !ok {
		return nil, fmt.Errorf("%w: no offset strategy %q registered, "+
			"have %v", ErrInvalidConfig, offsetType, RegisteredOffsets())
	}
	if !c.Bounds.Valid() {
		return nil, fmt.Errorf("%w: unknown bounds mode %d",
			ErrInvalidConfig, int(c.Bounds))
	}
	if c.Workers < 0 {
		return nil, fmt.Errorf("%w: cannot use %d workers", ErrInvalidConfig,
			c.Workers)
	}

	opts := []Option{
		WithOffsets(factory(c.Seed)),
		WithBounds(c.Bounds),
	}
	if c.Workers > 0 {
		opts = append(opts, WithWorkers(c.Workers))
	}
	return opts, nil
}

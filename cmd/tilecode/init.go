package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/gotile/config"
	"github.com/samuelfneumann/gotile/tilecoder"
)

// InitCommand returns the command which writes a new TileCoder
// configuration file to the path given by the config flag
func InitCommand() *cobra.Command {
	var (
		tiles   []float64
		limits  []string
		tilings int
		offsets string
		seed    uint64
		bounds  string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a new configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := tilecoder.Config{
				Tiles:   tiles,
				Limits:  make([]r1.Interval, len(limits)),
				Tilings: tilings,
				Offsets: tilecoder.OffsetType(offsets),
				Seed:    seed,
				Workers: workers,
			}
			for i, l := range limits {
				var err error
				c.Limits[i], err = parseLimit(l)
				if err != nil {
					return err
				}
			}

			var err error
			c.Bounds, err = tilecoder.ParseBoundsMode(bounds)
			if err != nil {
				return err
			}
			if err := c.Validate(); err != nil {
				return err
			}

			if err := config.Save(configFile, c); err != nil {
				return err
			}
			if verbose {
				log.Printf("saved configuration to %v", configFile)
			}
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&tiles, "tiles", nil,
		"Number of tiles along each dimension")
	cmd.Flags().StringArrayVar(&limits, "limits", nil,
		"Value range min:max of a dimension, repeated once per dimension")
	cmd.Flags().IntVar(&tilings, "tilings", 1, "Number of tilings")
	cmd.Flags().StringVar(&offsets, "offsets", "",
		fmt.Sprintf("Offset strategy, one of %v", tilecoder.RegisteredOffsets()))
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed of random offset strategies")
	cmd.Flags().StringVar(&bounds, "bounds", "extrapolate",
		"Handling of values outside the limits: extrapolate, clip or strict")
	cmd.Flags().IntVar(&workers, "workers", 0,
		"Goroutines used per batch, 0 for GOMAXPROCS")
	cmd.MarkFlagRequired("tiles")
	cmd.MarkFlagRequired("limits")
	return cmd
}

// parseLimit parses a value range written as min:max
func parseLimit(s string) (r1.Interval, error) {
	bounds, err := parseFloats(strings.Split(s, ":"))
	if err != nil || len(bounds) != 2 {
		return r1.Interval{}, fmt.Errorf("limits %q: expected min:max", s)
	}
	return r1.Interval{Min: bounds[0], Max: bounds[1]}, nil
}

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/gotile/tilecoder"
	"github.com/samuelfneumann/gotile/utils/matutils"
)

// InfoCommand returns the command which prints the geometry of the
// configured TileCoder
func InfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the tiling geometry of a configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			tc, err := loadCoder()
			if err != nil {
				return err
			}
			writeInfo(cmd.OutOrStdout(), tc)
			return nil
		},
	}
}

// writeInfo prints the geometry of a TileCoder
func writeInfo(w io.Writer, tc *tilecoder.TileCoder) {
	fmt.Fprintf(w, "dimensions:       %d\n", tc.Dims())
	fmt.Fprintf(w, "tilings:          %d\n", tc.NumTilings())
	fmt.Fprintf(w, "tiles per tiling: %d %v\n", tc.TilesPerTiling(),
		tc.Resolutions())
	fmt.Fprintf(w, "total tiles:      %d\n", tc.NTiles())
	fmt.Fprintf(w, "limits:           %v\n", tc.Limits())
	fmt.Fprintf(w, "tiles per unit:   %v\n", tc.Norms())
	fmt.Fprintf(w, "bounds:           %v\n", tc.Bounds())

	// Offsets always form a non-empty rectangle
	m, err := matutils.FromRows(tc.Offsets())
	if err != nil {
		panic(err)
	}
	fmt.Fprintf(w, "offsets (tiling x dimension, in tiles):\n%v\n",
		matutils.Format(m))
}

package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/gotile/visualize"
)

// PlotCommand returns the command which renders the tilings of the
// configured TileCoder to an image
func PlotCommand() *cobra.Command {
	var (
		filename string
		x, y     int
		points   []string
	)

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render the tilings of a configuration to an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			tc, err := loadCoder()
			if err != nil {
				return err
			}

			vectors := make([][]float64, len(points))
			for i, p := range points {
				vectors[i], err = parseFloats(strings.Split(p, ","))
				if err != nil {
					return fmt.Errorf("point %q: %w", p, err)
				}
			}

			if err := visualize.Save(filename, tc, x, y, vectors); err != nil {
				return err
			}
			if verbose {
				log.Printf("saved tilings of dimensions (%d, %d) to %v", x, y,
					filename)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&filename, "out", "o", "tilings.png",
		"Image file to write, the format is taken from the extension")
	cmd.Flags().IntVar(&x, "x", 0, "Dimension on the horizontal axis")
	cmd.Flags().IntVar(&y, "y", 1, "Dimension on the vertical axis")
	cmd.Flags().StringArrayVar(&points, "point", nil,
		"Comma separated point whose active tiles are outlined, repeatable")
	return cmd
}

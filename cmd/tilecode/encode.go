package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/gotile/tilecoder"
	"github.com/samuelfneumann/gotile/utils/progressbar"
)

// Flags of the encode and decode commands
var (
	inFile       string
	outFile      string
	showProgress bool
	chunkSize    int
)

// progressWidth is the width of the progress bar in characters
const progressWidth = 40

func addStreamFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&inFile, "in", "i", "-",
		"Input CSV file, - for stdin")
	cmd.Flags().StringVarP(&outFile, "out", "o", "-",
		"Output CSV file, - for stdout")
	cmd.Flags().BoolVarP(&showProgress, "progress", "p", false,
		"Display a progress bar on stderr")
	cmd.Flags().IntVar(&chunkSize, "chunk", 4096,
		"Number of rows processed between progress updates")
}

// EncodeCommand returns the command which tile codes CSV rows of
// floats into CSV rows of tile indices
func EncodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Tile code CSV rows of floats into rows of tile indices",
		RunE: func(cmd *cobra.Command, args []string) error {
			tc, err := loadCoder()
			if err != nil {
				return err
			}
			return runStream(cmd, func(ctx context.Context, in io.Reader,
				out io.Writer, progress io.Writer) (int, error) {
				return encodeStream(ctx, tc, in, out, progress)
			})
		},
	}
	addStreamFlags(cmd)
	return cmd
}

// runStream opens the input and output of a command and runs fn on
// them
func runStream(cmd *cobra.Command, fn func(ctx context.Context,
	in io.Reader, out io.Writer, progress io.Writer) (int, error)) error {
	if chunkSize < 1 {
		return fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}

	in, err := openInput(inFile, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := openOutput(outFile, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	var progress io.Writer
	if showProgress {
		progress = os.Stderr
	}

	rows, err := fn(cmd.Context(), in, out, progress)
	if err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	if verbose {
		log.Printf("%v: processed %d rows", cmd.Name(), rows)
	}
	return nil
}

// encodeStream tile codes each CSV row of in and writes the indices of
// the active tiles as CSV rows to out. If progress is not nil, a
// progress bar is displayed on it. The number of rows is returned.
func encodeStream(ctx context.Context, tc *tilecoder.TileCoder, in io.Reader,
	out io.Writer, progress io.Writer) (int, error) {
	vectors, err := readFloats(in)
	if err != nil {
		return 0, err
	}

	w := csv.NewWriter(out)
	err = chunks(len(vectors), progress, func(start, stop int) error {
		indices, err := tc.EncodeContext(ctx, vectors[start:stop])
		if err != nil {
			return fmt.Errorf("rows starting at %d: %w", start, err)
		}
		return writeInts(w, indices)
	})
	if err != nil {
		return 0, err
	}

	w.Flush()
	return len(vectors), w.Error()
}

// chunks calls fn on consecutive chunks [start, stop) of n rows,
// updating a progress bar on progress after each chunk if progress is
// not nil
func chunks(n int, progress io.Writer, fn func(start, stop int) error) error {
	var bar *progressbar.ManualProgressBar
	if progress != nil {
		bar = progressbar.NewManualProgressBar(progress, progressWidth, n)
		defer bar.Close()
	}

	for start := 0; start < n; start += chunkSize {
		stop := min(start+chunkSize, n)
		if err := fn(start, stop); err != nil {
			return err
		}

		if bar != nil {
			bar.Add(stop - start)
			bar.Display()
		}
	}
	return nil
}

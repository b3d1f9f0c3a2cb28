package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/gotile/tilecoder"
)

// DecodeCommand returns the command which decodes CSV rows of tile
// indices into CSV rows of approximate vectors
func DecodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode CSV rows of tile indices into approximate vectors",
		RunE: func(cmd *cobra.Command, args []string) error {
			tc, err := loadCoder()
			if err != nil {
				return err
			}
			return runStream(cmd, func(ctx context.Context, in io.Reader,
				out io.Writer, progress io.Writer) (int, error) {
				return decodeStream(ctx, tc, in, out, progress)
			})
		},
	}
	addStreamFlags(cmd)
	return cmd
}

// decodeStream decodes each CSV row of tile indices of in and writes
// the reconstructed vectors as CSV rows to out. If progress is not
// nil, a progress bar is displayed on it. The number of rows is
// returned.
func decodeStream(ctx context.Context, tc *tilecoder.TileCoder, in io.Reader,
	out io.Writer, progress io.Writer) (int, error) {
	indices, err := readInts(in)
	if err != nil {
		return 0, err
	}

	w := csv.NewWriter(out)
	err = chunks(len(indices), progress, func(start, stop int) error {
		vectors, err := tc.DecodeContext(ctx, indices[start:stop])
		if err != nil {
			return fmt.Errorf("rows starting at %d: %w", start, err)
		}
		return writeFloats(w, vectors)
	})
	if err != nil {
		return 0, err
	}

	w.Flush()
	return len(indices), w.Error()
}

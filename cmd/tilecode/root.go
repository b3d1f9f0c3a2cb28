package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/gotile/config"
	"github.com/samuelfneumann/gotile/tilecoder"
)

// Flags shared by all commands
var (
	configFile string
	verbose    bool
)

// GetRootCommand returns the root command of tilecode with all
// subcommands registered
func GetRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "tilecode",
		Short:         "Tile code vectors and decode tile indices",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"TileCoder configuration file (.json, .yaml or .yml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log a summary of each command to stderr")
	root.MarkPersistentFlagRequired("config")

	root.AddCommand(InitCommand())
	root.AddCommand(InfoCommand())
	root.AddCommand(EncodeCommand())
	root.AddCommand(DecodeCommand())
	root.AddCommand(PlotCommand())
	return root
}

// loadCoder creates the TileCoder described by the configuration file
func loadCoder() (*tilecoder.TileCoder, error) {
	c, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	tc, err := c.Create()
	if err != nil {
		return nil, err
	}
	if verbose {
		log.Printf("loaded %v from %v", tc, configFile)
	}
	return tc, nil
}

// openInput opens the named file for reading, or stdin if name is
// empty or "-"
func openInput(name string, stdin io.Reader) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open input file: %w", err)
	}
	return f, nil
}

// nopWriteCloser adds a no-op Close method to an io.Writer
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// openOutput creates the named file for writing, or returns stdout if
// name is empty or "-"
func openOutput(name string, stdout io.Writer) (io.WriteCloser, error) {
	if name == "" || name == "-" {
		return nopWriteCloser{stdout}, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("could not open output file: %w", err)
	}
	return f, nil
}

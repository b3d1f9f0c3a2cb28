// Command tilecode tile codes vectors read from CSV files and decodes
// tile indices back into approximate vectors.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("tilecode: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := GetRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Fatal(err)
	}
}

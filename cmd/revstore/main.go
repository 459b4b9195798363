// revstore command line interface
// Document revision storage and textual diffing
package main

import (
	"os"

	"github.com/nainya/revstore/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

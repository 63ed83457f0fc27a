// Command checkoutctl prices item sequences from the command line using the
// same engine as the checkout service.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

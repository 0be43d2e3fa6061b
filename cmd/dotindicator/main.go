// Command dotindicator renders, simulates and validates dot indicator
// configurations.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/dotindicator/cmd/dotindicator/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

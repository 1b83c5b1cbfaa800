// main is the command-line entrypoint for driftwatch.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/driftwatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}

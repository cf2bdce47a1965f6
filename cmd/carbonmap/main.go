// Command carbonmap derives carbon intensity and energy mix views from a
// carbon map state snapshot.
package main

import (
	"fmt"
	"os"

	"github.com/rshade/carbonmap/internal/cli"
	"github.com/rshade/carbonmap/pkg/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	return cli.Execute(version.String())
}

// Command ornament renders nested circumscribed polygons to SVG, PNG or a window.
//
// Usage:
//
//	ornament render --config ornament.toml --backend svg --output ornament.svg
//	ornament render --backend window
//	ornament backends
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

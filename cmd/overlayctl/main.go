// Command overlayctl runs the overlay engine against scene files from the
// command line: Boolean overlays, spatial predicates, and string/slice
// partitioning. Grounded on arl-go-detour's cmd/recast entry point
// (main.go delegating straight into its cmd package's Execute).
package main

import "github.com/go-overlay/overlay/cmd/overlayctl/cmd"

func main() {
	cmd.Execute()
}

// Command cantor renders the Cantor set and Cantor dust, either to
// PNG/SVG files or in an interactive window.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}

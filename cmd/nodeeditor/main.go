// Command nodeeditor opens an Ebitengine window with a node graph whose node
// locations persist across sessions, and inspects saved settings files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Command flatbench compares traversing a pointer tree against traversing
// the same tree after it has been flattened.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

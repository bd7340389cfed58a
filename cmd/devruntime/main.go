// Command devruntime is a coding session timer that awards a trophy when the
// target duration is reached.
package main

import (
	"fmt"
	"os"

	"devruntime/internal/cli"
)

func main() {
	if err := cli.Execute(os.Stdout, os.Stderr); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "devruntime: %v\n", err)
		os.Exit(1)
	}
}

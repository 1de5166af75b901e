// Command ricebowl is an offline front end for the planning engine. It runs
// the same pure planner the API serves, against the embedded catalog, with no
// database or network required.
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

// Command rowstore loads a dataset into an in-memory table and runs one
// store operation against it.
package main

import (
	"os"

	"github.com/AwesomeAlexey/rowstore/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}

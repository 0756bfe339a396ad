// Command ahp computes Analytic Hierarchy Process priorities from a YAML
// problem file.
//
// Usage:
//
//	ahp compute -f problem.yaml [--format text|json] [--threshold 0.1] [--strict]
//	ahp scale      # print the Saaty scale and slider mapping
//	ahp template   # print an example problem file
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/ahp/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}

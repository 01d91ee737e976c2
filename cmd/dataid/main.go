// dataid inspects identifier schemas and resolves identifiers against queries.
//
// Usage:
//
//	dataid validate --schema=<path>
//	dataid filter  --ids=<path> --query=<k=v,...> [--schema=<path>]
//	dataid rank    --ids=<path> --query=<k=v,...> [--schema=<path>]
//	dataid resolve --ids=<path> [--query=<k=v,...>] [--schema=<path>] <key>...
//
// Query values: "*" is a wildcard, "a|b" lists alternatives, "(a;b)" is a
// tuple and numbers are read as numbers.
package main

import (
	"fmt"
	"os"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

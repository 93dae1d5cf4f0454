// Command moldcheck evaluates a single room measurement from the command line
// and prints the surface humidity risk, the SIA 180 compliance check and the
// fault attribution.
//
// Usage:
//
//	moldcheck eval --room-temp 20 --humidity "50,5" --surface-temp 15 --outdoor-temp -5
//	moldcheck eval --input reading.json --output yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

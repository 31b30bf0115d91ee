// Package main is the entry point for the suitegen CLI.
package main

import "suitegen.dev/pkg/suitegen/cmd"

func main() {
	cmd.Execute()
}

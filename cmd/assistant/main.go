// Package main provides the assistant CLI: a personal contact and
// note manager with JSON file persistence and a natural-language
// command shell.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

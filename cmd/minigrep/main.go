package main

import (
	"os"
)

// Entry point for the application
func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// Package main is the entry point for the iacscan CLI.
package main

import "iacscan.dev/pkg/iacscan/cmd"

func main() {
	cmd.Execute()
}

// Package main is the entry point for the bandquiz API.
package main

import "bandquiz/src/app/cli"

func main() {
	cli.Execute()
}

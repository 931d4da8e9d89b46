// Package main provides the demo CLI for the quantum algorithms library.
//
// Usage:
//
//	quantum factor -n 15 -a 7
//	quantum ipe --theta 1.5708 -m 3
//
// See --help for all available options.
package main

func main() {
	Execute()
}

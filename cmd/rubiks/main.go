// Rubiks - CLI for solving nxnxn Rubik's cube style puzzles.
package main

import (
	"github.com/ZackJorquera/Rubiks-cube-solver/internal/cli"
)

func main() {
	cli.Execute()
}

package main

import "github.com/sweeplab/minesweeper-go/internal/cli"

func main() {
	cli.Execute()
}

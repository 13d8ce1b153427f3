package main

import "festcal/internal/cli"

func main() {
	cli.Execute()
}

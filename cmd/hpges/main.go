package main

import "github.com/tdixon97/legend-pygeom-hpges/cli"

func main() {
	cli.Launch()
}

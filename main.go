package main

import "github.com/aerogeom/gocst/cmd"

func main() {
	cmd.Execute()
}

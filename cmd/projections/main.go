package main

import (
	"github.com/Carmen-Shannon/oxy-scenes/demos"
	"github.com/Carmen-Shannon/oxy-scenes/demos/projections"
)

func main() {
	demos.Run(projections.New())
}

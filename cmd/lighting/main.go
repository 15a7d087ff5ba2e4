package main

import (
	"github.com/Carmen-Shannon/oxy-scenes/demos"
	"github.com/Carmen-Shannon/oxy-scenes/demos/lighting"
)

func main() {
	demos.Run(lighting.New())
}

package main

import (
	"github.com/Carmen-Shannon/oxy-scenes/demos"
	"github.com/Carmen-Shannon/oxy-scenes/demos/lorenz"
)

func main() {
	demos.Run(lorenz.New())
}

package main

import (
	"github.com/Carmen-Shannon/oxy-scenes/demos"
	demoscene "github.com/Carmen-Shannon/oxy-scenes/demos/scene"
)

func main() {
	demos.Run(demoscene.New())
}

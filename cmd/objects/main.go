package main

import (
	"github.com/Carmen-Shannon/oxy-scenes/demos"
	"github.com/Carmen-Shannon/oxy-scenes/demos/objects"
)

func main() {
	demos.Run(objects.New())
}

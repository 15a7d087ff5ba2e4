// Package composite assembles primitives into scene objects: trees, rocks,
// streetlamps, houses, windmills and helicopters. Every builder pushes its
// own transform on the mesh builder and pops it before returning.
package composite

import (
	"github.com/Carmen-Shannon/oxy-scenes/common"
	"github.com/Carmen-Shannon/oxy-scenes/engine/model"
	"github.com/chewxy/math32"
)

// FacePalette colors the six box faces front, back, right, left, top, bottom.
var FacePalette = []model.Material{
	model.RGB(1, 0, 0),
	model.RGB(0, 0, 1),
	model.RGB(1, 1, 0),
	model.RGB(0, 1, 0),
	model.RGB(0, 1, 1),
	model.RGB(1, 0, 1),
}

// HousePalette shades the six faces of a house body in reds.
var HousePalette = []model.Material{
	model.RGB(0.80, 0.20, 0.25),
	model.RGB(0.70, 0.20, 0.25),
	model.RGB(0.78, 0.22, 0.28),
	model.RGB(0.66, 0.18, 0.22),
	model.RGB(0.85, 0.28, 0.32),
	model.RGB(0.55, 0.14, 0.16),
}

// DiskPalette colors the bottom, top and side of an extruded disk.
var DiskPalette = []model.Material{
	model.RGB(0.9, 0.9, 0.9),
	model.RGB(0.7, 0.7, 0.7),
	model.RGB(0.3, 0.6, 1),
}

// PrismPalette colors the front, back and sides of an extruded triangle.
var PrismPalette = []model.Material{
	model.RGB(0.95, 0.95, 0.95),
	model.RGB(0.75, 0.75, 0.75),
	model.RGB(0.25, 0.6, 1),
}

func gray(v float32) model.Material {
	return model.RGB(v, v, v)
}

// solid repeats m for every part index up to n.
func solid(m model.Material, n int) []model.Material {
	out := make([]model.Material, n)
	for i := range out {
		out[i] = m
	}
	return out
}

func sincosDeg(deg float32) (float32, float32) {
	return math32.Sincos(deg * common.Deg2Rad)
}

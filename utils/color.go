// File: utils/color.go
package utils

import "math/rand"

// Color is an RGBA color, carried by discs purely for a renderer to
// consume; physics code never reads it.
type Color struct {
	R, G, B, A uint8
}

// NewRandomColor picks a random opaque color, used for discs whose
// description doesn't set one.
func NewRandomColor() Color {
	return Color{
		R: uint8(rand.Intn(256)),
		G: uint8(rand.Intn(256)),
		B: uint8(rand.Intn(256)),
		A: 255,
	}
}

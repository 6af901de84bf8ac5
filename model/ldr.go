package model

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// ToLDR writes the model as LDraw: one type-1 line per placed brick
// (position, a 3x3 rotation matrix, color code, part id). A pure
// value-to-text function with no file I/O — the external CAD emitter
// builds directory trees and progress reporting around this.
//
// Placed bricks share their block's WorldPos/WorldAngle (see Assemble),
// so each brick's own center must be composed through the block
// transform here — the same LocalToWorld composition geom performs for
// collision testing — before the line is written.
func (m *Model) ToLDR(w io.Writer) error {
	const partID = "3001.dat" // standard 2x4 brick
	for i, pb := range m.Bricks {
		color := 4 // red, arbitrary default per block would require a palette; single color keeps this a pure geometry dump
		minX, minY, maxX, maxY := pb.Origin.Footprint()
		localCenter := r2.Vec{X: float64(minX+maxX) / 2, Y: float64(minY+maxY) / 2}
		center := pb.LocalToWorld(localCenter)
		x := center.X * 10 // LDraw units: 1 stud = 20 LDU, so a half-stud is 10
		z := center.Y * 10
		y := float64(pb.Origin.Level) * -24 // LDraw Y axis points down; levels stack upward
		angle := pb.WorldAngle
		if pb.Origin.Horizontal {
			// Part 3001's long axis is along z at identity; a horizontal
			// brick adds a quarter turn about the vertical axis.
			angle += math.Pi / 2
		}
		s, c := math.Sincos(angle)
		// 3x3 row-major rotation about the vertical (Y) axis.
		a, b, cc := c, 0.0, s
		d, e, f := 0.0, 1.0, 0.0
		g, h, j := -s, 0.0, c
		_, err := fmt.Fprintf(w, "1 %d %.4f %.4f %.4f %.6f %.6f %.6f %.6f %.6f %.6f %.6f %.6f %.6f %s // block %d brick %d\n",
			color, x, y, z, a, b, cc, d, e, f, g, h, j, partID, pb.BlockIndex, i)
		if err != nil {
			return err
		}
	}

	return nil
}

package model_test

import (
	"fmt"

	"github.com/katalvlaran/brickcount/brick"
	"github.com/katalvlaran/brickcount/catalog"
	"github.com/katalvlaran/brickcount/model"
)

// ExampleAssemble joins two single-brick blocks at a corner stud (the
// lower block's SE corner under the upper block's NW corner) at the
// rectilinear zero angle, and shows the placed brick count and the
// level offset the connection induces.
func ExampleAssemble() {
	blocks := []catalog.Block{
		{Size: 1, Index: 0, Bricks: []brick.Brick{brick.New(0, 0, 0, false)}},
		{Size: 1, Index: 1, Bricks: []brick.Brick{brick.New(0, 0, 0, false)}},
	}
	cpa := brick.ConnectionPoint{BrickIndex: 0, Corner: brick.SE, StudUp: true}
	cpb := brick.ConnectionPoint{BrickIndex: 0, Corner: brick.NW, StudUp: false}
	conn, err := model.NewConnection(0, 1, cpa, cpb, 0, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	m := model.Assemble(blocks, []model.Connection{conn})
	fmt.Println(len(m.Bricks), m.Bricks[1].Origin.Level, model.IsCyclicAt(m))
	// Output:
	// 2 1 false
}

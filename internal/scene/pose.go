package scene

import (
	"fmt"

	"github.com/san-kum/asciistage/internal/grid"
)

// Pose selects the limb arrangement and prop drawn with the figure.
type Pose int

const (
	PoseReading Pose = iota
	PoseWriting
	PoseCricket
)

// Poses lists every pose in stage order.
var Poses = []Pose{PoseReading, PoseWriting, PoseCricket}

func (p Pose) String() string {
	switch p {
	case PoseReading:
		return "reading"
	case PoseWriting:
		return "writing"
	case PoseCricket:
		return "cricket"
	}
	return fmt.Sprintf("pose(%d)", int(p))
}

type offset struct{ dx, dy int }

// poseSpec is the data attached to each pose variant.
type poseSpec struct {
	limbs []offset
	prop  func(g *grid.Grid, cx, baseY int)
}

func (p Pose) spec() poseSpec {
	switch p {
	case PoseReading:
		return poseSpec{limbs: readingArms, prop: drawBooks}
	case PoseWriting:
		return poseSpec{limbs: writingArms, prop: drawPen}
	case PoseCricket:
		return poseSpec{limbs: cricketArms, prop: drawCricket}
	}
	panic("scene: unhandled pose " + p.String())
}

var (
	readingArms = []offset{
		{1, -6}, {2, -6}, {3, -6}, {4, -6},
		{1, -5}, {2, -5}, {3, -5}, {4, -5}, {5, -5},
	}
	writingArms = []offset{
		{1, -6}, {2, -6}, {3, -6}, {4, -6}, {5, -6}, {6, -6},
		{1, -5}, {2, -5}, {3, -5},
		{-1, -6}, {-2, -5}, {-3, -4},
	}
	cricketArms = []offset{
		{1, -7}, {2, -8}, {3, -9}, {4, -10}, {4, -9}, {2, -7}, {3, -8},
	}
)

var booksPattern = []string{
	" _______ ",
	"/      /,",
	"/      //",
	"/______//",
	"(______(/",
}

var penPattern = []string{
	`   .".   `,
	`  /   \  `,
	`  |  ||  `,
	`  |  ||  `,
	`  |  |/  `,
	`  |__|   `,
	`  |==|   `,
	`  |  |   `,
	`  |  |   `,
	`  \__/   `,
	"   `     ",
}

var cricketPattern = []string{
	"__.|█|",
	"__.|█|",
	"__.|█|",
	"__.|█|",
	"__.|█|",
	"_▄.|█|▄",
	"_█████",
	"_█████",
	"_█████",
	"_█████",
	"_█████",
	"_█████",
	"_█████",
	"_█████_",
	"_█████_",
	"_▀███▀_",
}

func drawBooks(g *grid.Grid, cx, baseY int) {
	g.Stamp(cx+3, baseY-7, booksPattern)
}

func drawPen(g *grid.Grid, cx, baseY int) {
	g.Stamp(cx+3, baseY-10, penPattern)
}

func drawCricket(g *grid.Grid, cx, baseY int) {
	g.Stamp(cx+3, baseY-14, cricketPattern)
	g.Place(cx+15, baseY-8, grid.Object, 'o')
}

package scene

import "github.com/san-kum/asciistage/internal/grid"

// Vignette extent and baseline.
const (
	Cols     = 68
	Rows     = 22
	Baseline = 16
)

var (
	head = []offset{
		{-1, -12}, {0, -12}, {1, -12},
		{-2, -11}, {-1, -11}, {0, -11}, {1, -11}, {2, -11},
		{-2, -10}, {-1, -10}, {0, -10}, {1, -10}, {2, -10},
		{-1, -9}, {0, -9}, {1, -9},
	}
	hair = []offset{
		{-3, -12}, {-3, -11}, {-3, -10},
		{-2, -13}, {-1, -13}, {0, -13}, {1, -13},
	}
	hips = []offset{{-1, -2}, {0, -2}, {1, -2}}
	feet = []offset{{-2, 3}, {2, 3}}
)

func placeAll(g *grid.Grid, cx, baseY int, offs []offset) {
	for _, o := range offs {
		g.Place(cx+o.dx, baseY+o.dy, grid.Wash, 0)
	}
}

// ComposeFigure places the standing silhouette and the pose limbs as wash
// cells centred on column cx with feet near baseY.
func ComposeFigure(g *grid.Grid, cx, baseY int, pose Pose) {
	placeAll(g, cx, baseY, head)
	placeAll(g, cx, baseY, hair)
	for y := -8; y <= -3; y++ {
		g.Place(cx, baseY+y, grid.Wash, 0)
	}
	placeAll(g, cx, baseY, hips)
	for y := -1; y <= 3; y++ {
		g.Place(cx-1, baseY+y, grid.Wash, 0)
		g.Place(cx+1, baseY+y, grid.Wash, 0)
	}
	placeAll(g, cx, baseY, feet)

	placeAll(g, cx, baseY, pose.spec().limbs)
}

// Compose draws the figure for pose and then its prop.
func Compose(g *grid.Grid, cx, baseY int, pose Pose) {
	ComposeFigure(g, cx, baseY, pose)
	pose.spec().prop(g, cx, baseY)
}

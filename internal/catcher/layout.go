package catcher

import (
	"github.com/iburimskiy/shrubbery-seeker/internal/config"
	"github.com/iburimskiy/shrubbery-seeker/internal/fortune"
)

const (
	cx = float64(config.CenterX)
	cy = float64(config.CenterY)
	r  = float64(config.Radius)

	circleRadius   = 20
	gridDotRadius  = 15
	titleY         = 20
	subtitleY      = 50
	generateY      = 85
	playY          = 125
	promptY        = cy - 30
	optionsStartY  = cy + 5
	captionY       = cy + r + 30
	againY         = cy + r + 65
	numberHitRange = 18
)

var (
	screenCenter = Point{config.WindowWidth / 2, config.WindowHeight / 2}

	// Grid corners and midlines
	gx0, gy0 = cx - r, cy - r
	gx1, gy1 = cx + r, cy + r
	gmx, gmy = (gx0 + gx1) / 2, (gy0 + gy1) / 2
)

func diamond() []Point {
	return []Point{{cx, cy - r}, {cx + r, cy}, {cx, cy + r}, {cx - r, cy}}
}

// diamondCircles are the color circle centres inside the opened catcher.
func diamondCircles() [fortune.Slots]Point {
	return [fortune.Slots]Point{
		{cx - r/3, cy - r/3}, {cx + r/3, cy - r/3},
		{cx - r/3, cy + r/3}, {cx + r/3, cy + r/3},
	}
}

// outerTriangles are the grid's corner triangles, filled by round colors.
func outerTriangles() [fortune.Slots]Triangle {
	return [fortune.Slots]Triangle{
		{{gmx, gy0}, {gx0, gy0}, {gx0, gmy}},
		{{gmx, gy0}, {gx1, gy0}, {gx1, gmy}},
		{{gx0, gmy}, {gx0, gy1}, {gmx, gy1}},
		{{gx1, gmy}, {gx1, gy1}, {gmx, gy1}},
	}
}

// Quadrants are the grid's inner triangles that carry the numbers.
func Quadrants() [fortune.Slots]Triangle {
	return [fortune.Slots]Triangle{
		{{gmx, gy0}, {gx0, gmy}, {gmx, gmy}},
		{{gmx, gy0}, {gmx, gmy}, {gx1, gmy}},
		{{gmx, gmy}, {gx0, gmy}, {gmx, gy1}},
		{{gmx, gmy}, {gmx, gy1}, {gx1, gmy}},
	}
}

func (t Triangle) Centroid() Point {
	return Point{
		(t[0].X + t[1].X + t[2].X) / 3,
		(t[0].Y + t[1].Y + t[2].Y) / 3,
	}
}

// gridLines are the square's midlines and the inner diamond.
func gridLines() [][2]Point {
	return [][2]Point{
		{{gmx, gy0}, {gmx, gy1}},
		{{gx0, gmy}, {gx1, gmy}},
		{{gmx, gy0}, {gx0, gmy}},
		{{gmx, gy0}, {gx1, gmy}},
		{{gx0, gmy}, {gmx, gy1}},
		{{gx1, gmy}, {gmx, gy1}},
	}
}

// OptionCenter is the centre of the idx-th pick option in the side column.
func OptionCenter(idx int) Point {
	return Point{config.ColumnX, optionsStartY + float64(idx*config.OptionSpacing)}
}

func buttonRect(c Point) Rect {
	hw, hh := float64(config.ButtonWidth)/2, float64(config.ButtonHeight)/2
	return Rect{Min: Point{c.X - hw, c.Y - hh}, Max: Point{c.X + hw, c.Y + hh}}
}

var (
	StartButton    = buttonRect(screenCenter)
	GenerateButton = buttonRect(Point{config.ColumnX, generateY})
	PlayButton     = buttonRect(Point{config.ColumnX, playY})
	AgainButton    = buttonRect(Point{screenCenter.X, againY})
)
